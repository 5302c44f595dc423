package lts

import (
	"fmt"
	"sort"
)

// LTS is a finite labelled transition system: a state set, an action
// alphabet, a transition relation and one designated initial state.
//
// An LTS is immutable after New returns; all accessors hand out copies,
// so callers may share one instance across concurrent algorithm runs.
type LTS struct {
	states  map[State]struct{}
	actions map[Action]struct{}
	initial State

	// succ[(from)][action] = sorted successor states, deduplicated.
	// Built once here so algorithms never re-scan the transition relation.
	succ map[State]map[Action][]State

	numTransitions int
}

// New validates and constructs an LTS.
//
// It fails with ErrEmptyStateSet if states is empty, ErrInitialNotFound if
// initial is not among states, and ErrUnknownState/ErrUnknownAction if any
// transition references an undeclared state or action. Duplicate states,
// actions and transitions collapse (set semantics). A non-empty state set
// with zero transitions is a legal, deadlocked system.
//
// Complexity: O(n + m·log m) time for n states and m transitions
// (the log factor pays for sorted successor lists).
func New(states []State, actions []Action, transitions []Transition, initial State) (*LTS, error) {
	// 1. Validate the state set
	if len(states) == 0 {
		return nil, ErrEmptyStateSet
	}
	stateSet := make(map[State]struct{}, len(states))
	for _, s := range states {
		stateSet[s] = struct{}{}
	}
	if _, ok := stateSet[initial]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInitialNotFound, initial)
	}

	// 2. Collect the alphabet
	actionSet := make(map[Action]struct{}, len(actions))
	for _, a := range actions {
		actionSet[a] = struct{}{}
	}

	// 3. Validate transitions and build the (source, action) index
	succ := make(map[State]map[Action][]State, len(states))
	seen := make(map[Transition]struct{}, len(transitions))
	var t Transition
	for _, t = range transitions {
		if _, ok := stateSet[t.From]; !ok {
			return nil, fmt.Errorf("%w: source %q", ErrUnknownState, t.From)
		}
		if _, ok := stateSet[t.To]; !ok {
			return nil, fmt.Errorf("%w: target %q", ErrUnknownState, t.To)
		}
		if _, ok := actionSet[t.Action]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAction, t.Action)
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}

		byAction, ok := succ[t.From]
		if !ok {
			byAction = make(map[Action][]State)
			succ[t.From] = byAction
		}
		byAction[t.Action] = append(byAction[t.Action], t.To)
	}

	// 4. Sort successor lists for deterministic enumeration
	for _, byAction := range succ {
		for _, targets := range byAction {
			sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })
		}
	}

	return &LTS{
		states:         stateSet,
		actions:        actionSet,
		initial:        initial,
		succ:           succ,
		numTransitions: len(seen),
	}, nil
}

// Initial returns the designated initial state.
func (l *LTS) Initial() State { return l.initial }

// NumStates returns |S|.
func (l *LTS) NumStates() int { return len(l.states) }

// NumTransitions returns the number of distinct transitions.
func (l *LTS) NumTransitions() int { return l.numTransitions }

// HasState reports whether s belongs to the state set.
func (l *LTS) HasState(s State) bool {
	_, ok := l.states[s]
	return ok
}

// States returns all states, sorted lexicographically ascending.
func (l *LTS) States() []State {
	out := make([]State, 0, len(l.states))
	for s := range l.states {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Actions returns the action alphabet, sorted lexicographically ascending.
func (l *LTS) Actions() []Action {
	out := make([]Action, 0, len(l.actions))
	for a := range l.actions {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Transitions returns the full transition relation, sorted by
// (From, Action, To) for reproducible enumeration.
func (l *LTS) Transitions() []Transition {
	out := make([]Transition, 0, l.numTransitions)
	for from, byAction := range l.succ {
		for act, targets := range byAction {
			for _, to := range targets {
				out = append(out, Transition{From: from, Action: act, To: to})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.From != b.From {
			return a.From < b.From
		}
		if a.Action != b.Action {
			return a.Action < b.Action
		}

		return a.To < b.To
	})

	return out
}

// Successors returns the states reachable from s via a single a-labelled
// step, sorted ascending. The returned slice is a copy; nil means none.
// Complexity: O(k) for k successors.
func (l *LTS) Successors(s State, a Action) []State {
	byAction, ok := l.succ[s]
	if !ok {
		return nil
	}
	targets, ok := byAction[a]
	if !ok {
		return nil
	}
	out := make([]State, len(targets))
	copy(out, targets)

	return out
}

// EachSuccessor invokes visit for every state reachable from s via a,
// in ascending order, without copying the successor slice.
// Complexity: O(k) for k successors.
func (l *LTS) EachSuccessor(s State, a Action, visit func(State)) {
	byAction, ok := l.succ[s]
	if !ok {
		return
	}
	for _, to := range byAction[a] {
		visit(to)
	}
}
