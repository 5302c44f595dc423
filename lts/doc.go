// Package lts provides the immutable in-memory model of a finite labelled
// transition system (LTS): a state set, a finite action alphabet, a labelled
// transition relation, and one designated initial state.
//
// # What
//
//   - State and Action are opaque string identifiers; Transition is the
//     ordered triple (From, Action, To).
//   - New validates the whole model up front and indexes transitions by
//     (source, action) exactly once; there is no mutation after construction.
//   - Accessors (States, Actions, Transitions, Successors) return sorted
//     copies, so every enumeration over an LTS is reproducible.
//
// # Why
//
//   - Partition refinement asks "which states does s reach via a?" many
//     times per pass; answering from a prebuilt index instead of re-scanning
//     the transition relation is what keeps refinement O(n·m).
//   - Immutability lets one LTS back any number of concurrent algorithm
//     runs without locks.
//
// # Determinism
//
// All enumeration surfaces are sorted lexicographically ascending. Two runs
// of any algorithm over the same LTS see states, actions and successors in
// the same order.
//
// # Errors
//
//   - ErrEmptyStateSet   - the state set is empty.
//   - ErrInitialNotFound - the initial state is not a member of the state set.
//   - ErrUnknownState    - a transition endpoint is not a declared state.
//   - ErrUnknownAction   - a transition label is not in the declared alphabet.
//
// Nondeterministic branching, self-loops, cycles and deadlocked states
// (no outgoing transitions) are all legal; so is a system with states but
// no transitions at all.
package lts
