package ltsio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NathanAmoussou/kanellakis-smolka-bisim/lts"
	"github.com/NathanAmoussou/kanellakis-smolka-bisim/ltsio"
)

func TestRead_SimpleTriples(t *testing.T) {
	res, err := ltsio.Read(strings.NewReader("s a s1\ns a s2\n"))
	require.NoError(t, err)
	require.NotNil(t, res.LTS)
	assert.Empty(t, res.Malformed)

	assert.Equal(t, lts.State("s"), res.LTS.Initial())
	assert.Equal(t, []lts.State{"s", "s1", "s2"}, res.LTS.States())
	assert.Equal(t, []lts.Action{"a"}, res.LTS.Actions())
	assert.Equal(t, []lts.State{"s1", "s2"}, res.LTS.Successors("s", "a"))
}

func TestRead_CommentsAndBlanks(t *testing.T) {
	input := `
# vending machine
s0 coin s1

   # indented comment
s1 brew s0
`
	res, err := ltsio.Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, res.Malformed)
	assert.Equal(t, lts.State("s0"), res.LTS.Initial())
	assert.Equal(t, 2, res.LTS.NumTransitions())
}

func TestRead_MalformedLinesAreWarnings(t *testing.T) {
	input := "s0 a s1\nnot-a-triple\ns1 b s2 extra\ns1 b s2\n"
	res, err := ltsio.Read(strings.NewReader(input))
	require.NoError(t, err)
	require.NotNil(t, res.LTS)
	assert.Equal(t, 2, res.LTS.NumTransitions())

	require.Len(t, res.Malformed, 2)
	assert.Equal(t, 2, res.Malformed[0].Line)
	assert.Equal(t, "not-a-triple", res.Malformed[0].Text)
	assert.Equal(t, 3, res.Malformed[1].Line)
	assert.Contains(t, res.Malformed[0].String(), "line 2")
}

func TestRead_EmptyInput(t *testing.T) {
	res, err := ltsio.Read(strings.NewReader(""))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ltsio.ErrNoValidTransitions)
}

func TestRead_OnlyCommentsAndGarbage(t *testing.T) {
	res, err := ltsio.Read(strings.NewReader("# nothing here\ngarbage\n"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ltsio.ErrNoValidTransitions)
}

func TestRead_InitialIsFirstValidSource(t *testing.T) {
	// The first line is malformed; the initial state comes from line 2.
	res, err := ltsio.Read(strings.NewReader("oops\nt0 a t1\ns0 a t0\n"))
	require.NoError(t, err)
	assert.Equal(t, lts.State("t0"), res.LTS.Initial())
}

func TestReadFile_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "machine.lts")
	require.NoError(t, os.WriteFile(path, []byte("s0 a s1\ns1 a s0\n"), 0o644))

	res, err := ltsio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, res.LTS.NumStates())
}

func TestReadFile_Missing(t *testing.T) {
	res, err := ltsio.ReadFile(filepath.Join(t.TempDir(), "absent.lts"))
	assert.Nil(t, res)
	assert.Error(t, err)
}

func TestReadYAML_Document(t *testing.T) {
	doc := `
states: [idle, ready]
actions: [coin, brew]
initial: idle
transitions:
  - {from: idle, action: coin, to: ready}
  - {from: ready, action: brew, to: idle}
`
	l, err := ltsio.ReadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, lts.State("idle"), l.Initial())
	assert.Equal(t, []lts.State{"ready"}, l.Successors("idle", "coin"))
}

func TestReadYAML_TransitionFreeSystemIsLegal(t *testing.T) {
	doc := "states: [alone]\ninitial: alone\n"
	l, err := ltsio.ReadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, l.NumStates())
	assert.Equal(t, 0, l.NumTransitions())
}

func TestReadYAML_BadDocument(t *testing.T) {
	l, err := ltsio.ReadYAML(strings.NewReader("states: {not: a, list: here}"))
	assert.Nil(t, l)
	assert.ErrorIs(t, err, ltsio.ErrBadDocument)
}

func TestReadYAML_UnknownFieldRejected(t *testing.T) {
	l, err := ltsio.ReadYAML(strings.NewReader("states: [a]\ninitial: a\nbogus: 1\n"))
	assert.Nil(t, l)
	assert.ErrorIs(t, err, ltsio.ErrBadDocument)
}

func TestReadYAML_StructuralErrorsPassThrough(t *testing.T) {
	l, err := ltsio.ReadYAML(strings.NewReader("states: [a]\ninitial: missing\n"))
	assert.Nil(t, l)
	assert.ErrorIs(t, err, lts.ErrInitialNotFound)
}

func TestReadAny_Dispatch(t *testing.T) {
	dir := t.TempDir()

	triple := filepath.Join(dir, "m.lts")
	require.NoError(t, os.WriteFile(triple, []byte("s0 a s1\n"), 0o644))
	res, err := ltsio.ReadAny(triple)
	require.NoError(t, err)
	assert.Equal(t, lts.State("s0"), res.LTS.Initial())

	yml := filepath.Join(dir, "m.yaml")
	require.NoError(t, os.WriteFile(yml, []byte("states: [x]\ninitial: x\n"), 0o644))
	res, err = ltsio.ReadAny(yml)
	require.NoError(t, err)
	assert.Equal(t, lts.State("x"), res.LTS.Initial())
	assert.Empty(t, res.Malformed)
}
