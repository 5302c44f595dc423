// Package ltsio loads labelled transition systems from their textual
// descriptions. This file declares the sentinel errors and the Result /
// LineError diagnostic types.
package ltsio

import (
	"errors"
	"fmt"

	"github.com/NathanAmoussou/kanellakis-smolka-bisim/lts"
)

// Sentinel errors for input loading.
var (
	// ErrNoValidTransitions indicates the input held zero parseable
	// transitions after skipping comments and blanks. Fatal for that file:
	// no LTS is produced.
	ErrNoValidTransitions = errors.New("ltsio: no valid transitions in input")

	// ErrBadDocument indicates a YAML document that did not decode into a
	// valid LTS description.
	ErrBadDocument = errors.New("ltsio: malformed document")
)

// LineError records one malformed input line. It is warning-level: the line
// is skipped and loading continues.
type LineError struct {
	// Line is the 1-based line number in the input.
	Line int

	// Text is the offending line, as read.
	Text string
}

// String renders the warning the way the CLI prints it.
func (e LineError) String() string {
	return fmt.Sprintf("line %d: %q is not a \"src action tgt\" triple", e.Line, e.Text)
}

// Result is the outcome of loading one LTS description.
type Result struct {
	// LTS is the validated model.
	LTS *lts.LTS

	// Malformed lists every skipped line, in input order. Non-empty
	// Malformed with a non-nil LTS means the load succeeded with warnings.
	Malformed []LineError
}
