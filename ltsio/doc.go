// Package ltsio loads lts.LTS models from textual descriptions in two
// formats.
//
// # Triple format (.lts)
//
// One transition per line, three whitespace-separated fields:
//
//	# a two-state machine
//	s0 coin s1
//	s1 brew s0
//
// Blank lines and '#' comments are skipped. The first valid line's source
// state is the initial state; the state set and alphabet are exactly what
// the transition lines mention. A line that is neither blank, comment, nor
// triple is recorded as a LineError warning and skipped; only an input with
// zero valid transitions is fatal (ErrNoValidTransitions), since the format
// has no way to declare a state without a transition.
//
// # YAML document form (.yaml/.yml)
//
// Explicit states, actions, initial and transitions lists. Because the
// declarations are explicit, this form can describe a valid transition-free
// (deadlocked) system, which the triple format cannot.
//
// # Errors
//
//   - ErrNoValidTransitions - triple input with nothing usable; fatal.
//   - ErrBadDocument        - YAML that does not decode into a description.
//   - lts.Err*              - structural validation failures from lts.New.
//
// Malformed triple lines are warnings carried in Result.Malformed, never an
// error: parsing continues as long as one valid transition exists.
package ltsio
