package ltsio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/NathanAmoussou/kanellakis-smolka-bisim/lts"
)

// Read loads an LTS from the whitespace-triple text format: one
// "src action tgt" transition per line. Blank lines and lines whose first
// non-blank character is '#' are skipped. Any other line that does not
// split into exactly three fields is recorded in Result.Malformed and
// skipped. The first valid line's source state becomes the initial state;
// states and actions are collected from the transition lines.
//
// Read fails with ErrNoValidTransitions when no line yields a transition,
// and passes through scanner and model-construction errors.
func Read(r io.Reader) (*Result, error) {
	var (
		transitions []lts.Transition
		malformed   []LineError
		states      []lts.State
		actions     []lts.Action
		initial     lts.State
	)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			malformed = append(malformed, LineError{Line: lineNo, Text: sc.Text()})
			continue
		}

		src, act, tgt := lts.State(fields[0]), lts.Action(fields[1]), lts.State(fields[2])
		if len(transitions) == 0 {
			initial = src
		}
		transitions = append(transitions, lts.Transition{From: src, Action: act, To: tgt})
		states = append(states, src, tgt)
		actions = append(actions, act)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ltsio: read: %w", err)
	}
	if len(transitions) == 0 {
		return nil, ErrNoValidTransitions
	}

	l, err := lts.New(states, actions, transitions, initial)
	if err != nil {
		return nil, err
	}

	return &Result{LTS: l, Malformed: malformed}, nil
}

// ReadFile loads the triple format from a file.
func ReadFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ltsio: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// ReadAny loads path, dispatching on its extension: .yaml and .yml go
// through the YAML document form, everything else through the triple
// format.
func ReadAny(path string) (*Result, error) {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		l, err := ReadYAMLFile(path)
		if err != nil {
			return nil, err
		}

		return &Result{LTS: l}, nil
	}

	return ReadFile(path)
}
