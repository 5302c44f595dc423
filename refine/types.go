// Package refine implements Kanellakis–Smolka partition refinement over an
// lts.LTS. This file declares options, sentinel errors, and the Partition
// type returned by Refine.
package refine

import (
	"context"
	"errors"
	"sort"

	"github.com/NathanAmoussou/kanellakis-smolka-bisim/lts"
)

// Sentinel errors for refinement runs.
var (
	// ErrLTSNil is returned if a nil LTS pointer is passed to Refine or IsStable.
	ErrLTSNil = errors.New("refine: lts is nil")

	// ErrInvariantViolation indicates the partition bookkeeping broke during
	// refinement (a state missing or duplicated, or the pass bound exceeded).
	// It signals an algorithm bug, never bad user input.
	ErrInvariantViolation = errors.New("refine: partition invariant violated")
)

// BlockID identifies a block within one Partition. IDs are allocated
// deterministically during a run; they identify blocks by position in the
// split history, not by content.
type BlockID int

// Option configures refinement behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for one refinement run.
type Options struct {
	// Ctx allows cancellation between refinement passes.
	Ctx context.Context

	// OnSplit, if non-nil, is invoked after every successful split with the
	// parent block, the action that separated it, and the two result blocks
	// (left keeps the parent's ID, right is freshly allocated).
	OnSplit func(parent BlockID, act lts.Action, left, right BlockID)
}

// DefaultOptions returns Options with a background context and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnSplit: nil,
	}
}

// WithContext sets a custom context; refinement checks it between passes.
// Passing nil has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnSplit registers a callback observing every split as it happens.
func WithOnSplit(fn func(parent BlockID, act lts.Action, left, right BlockID)) Option {
	return func(o *Options) {
		o.OnSplit = fn
	}
}

// Partition maps every state of one LTS to exactly one block. It is built
// by Refine and read-only afterwards.
//
// The State→BlockID map is kept separate from the per-block member lists,
// so a split touches only the affected block's members. Member lists stay
// sorted ascending, which makes the smallest member the canonical
// representative of its block.
type Partition struct {
	blockOf map[lts.State]BlockID
	members map[BlockID][]lts.State
	nextID  BlockID
}

// newPartition creates the initial single-block partition over states.
// states must be sorted ascending (lts.States() guarantees this).
func newPartition(states []lts.State) *Partition {
	all := make([]lts.State, len(states))
	copy(all, states)
	blockOf := make(map[lts.State]BlockID, len(states))
	for _, s := range all {
		blockOf[s] = 0
	}

	return &Partition{
		blockOf: blockOf,
		members: map[BlockID][]lts.State{0: all},
		nextID:  1,
	}
}

// BlockOf returns the block containing s, and whether s is known.
func (p *Partition) BlockOf(s lts.State) (BlockID, bool) {
	id, ok := p.blockOf[s]
	return id, ok
}

// SameBlock reports whether s and t ended up in the same block.
// Unknown states are never in the same block as anything.
func (p *Partition) SameBlock(s, t lts.State) bool {
	bs, ok := p.blockOf[s]
	if !ok {
		return false
	}
	bt, ok := p.blockOf[t]

	return ok && bs == bt
}

// NumBlocks returns the number of blocks.
func (p *Partition) NumBlocks() int { return len(p.members) }

// Blocks returns the blocks' member lists in ascending BlockID order.
// Members within each block are sorted ascending; everything is copied.
func (p *Partition) Blocks() [][]lts.State {
	ids := make([]BlockID, 0, len(p.members))
	for id := range p.members {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([][]lts.State, 0, len(ids))
	for _, id := range ids {
		block := make([]lts.State, len(p.members[id]))
		copy(block, p.members[id])
		out = append(out, block)
	}

	return out
}

// Signature returns the sorted set of blocks reachable from s via a under
// this partition. Two states are a-equivalent under the partition iff their
// Signatures are equal.
func (p *Partition) Signature(l *lts.LTS, s lts.State, a lts.Action) []BlockID {
	return signature(l, s, a, p.blockOf)
}
