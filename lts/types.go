// Package lts defines the immutable labelled-transition-system model:
// State, Action, Transition and the validated LTS container.
//
// This file declares the value types and the sentinel errors returned by New.
//
// Errors:
//
//	ErrEmptyStateSet   - the state set is empty.
//	ErrInitialNotFound - the initial state is not in the state set.
//	ErrUnknownState    - a transition references an undeclared state.
//	ErrUnknownAction   - a transition references an undeclared action.
package lts

import "errors"

// Sentinel errors for LTS construction. All of them indicate a structurally
// inconsistent model; New never returns a partial LTS alongside one.
var (
	// ErrEmptyStateSet indicates the declared state set is empty.
	ErrEmptyStateSet = errors.New("lts: state set is empty")

	// ErrInitialNotFound indicates the initial state is absent from the state set.
	ErrInitialNotFound = errors.New("lts: initial state not in state set")

	// ErrUnknownState indicates a transition endpoint outside the declared state set.
	ErrUnknownState = errors.New("lts: transition references unknown state")

	// ErrUnknownAction indicates a transition label outside the declared alphabet.
	ErrUnknownAction = errors.New("lts: transition references unknown action")
)

// State identifies a state. It carries no payload beyond identity.
type State string

// Action is a label from the finite action alphabet.
type Action string

// Transition is one labelled step From --Action--> To.
// Nondeterminism (same From/Action, different To), self-loops and cycles
// are all permitted.
type Transition struct {
	From   State
	Action Action
	To     State
}
