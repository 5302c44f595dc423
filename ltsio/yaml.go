package ltsio

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/NathanAmoussou/kanellakis-smolka-bisim/lts"
)

// document is the YAML form of an LTS description. Unlike the triple
// format, it declares the state set and alphabet explicitly, so it can
// describe a transition-free system.
//
//	states: [idle, ready]
//	actions: [coin, brew]
//	initial: idle
//	transitions:
//	  - {from: idle, action: coin, to: ready}
//	  - {from: ready, action: brew, to: idle}
type document struct {
	States      []string `yaml:"states"`
	Actions     []string `yaml:"actions"`
	Initial     string   `yaml:"initial"`
	Transitions []struct {
		From   string `yaml:"from"`
		Action string `yaml:"action"`
		To     string `yaml:"to"`
	} `yaml:"transitions"`
}

// ReadYAML loads an LTS from its YAML document form. Decode failures and
// unknown fields surface as ErrBadDocument; the decoded description is then
// validated by lts.New, whose errors pass through unchanged.
func ReadYAML(r io.Reader) (*lts.LTS, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	states := make([]lts.State, 0, len(doc.States))
	for _, s := range doc.States {
		states = append(states, lts.State(s))
	}
	actions := make([]lts.Action, 0, len(doc.Actions))
	for _, a := range doc.Actions {
		actions = append(actions, lts.Action(a))
	}
	transitions := make([]lts.Transition, 0, len(doc.Transitions))
	for _, tr := range doc.Transitions {
		transitions = append(transitions, lts.Transition{
			From:   lts.State(tr.From),
			Action: lts.Action(tr.Action),
			To:     lts.State(tr.To),
		})
	}

	return lts.New(states, actions, transitions, lts.State(doc.Initial))
}

// ReadYAMLFile loads the YAML document form from a file.
func ReadYAMLFile(path string) (*lts.LTS, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ltsio: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadYAML(f)
}
