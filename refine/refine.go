package refine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/NathanAmoussou/kanellakis-smolka-bisim/lts"
)

// Refine computes the coarsest bisimulation partition of l.
//
// Two states land in the same final block iff they are strongly bisimilar
// within l. The run is sequential: every pass computes signatures against
// the partition as it stood when the pass began, and passes repeat until
// one completes without a split. The outer loop is bounded by |S| passes;
// exceeding the bound, like any partition bookkeeping breach, surfaces as
// ErrInvariantViolation.
//
// Complexity: O(n·m) time for n states and m transitions - each pass costs
// O(n + m) signature work against the prebuilt successor index, and a
// partition of n states admits at most n−1 splits.
func Refine(l *lts.LTS, opts ...Option) (*Partition, error) {
	// 1. Validate input and resolve options
	if l == nil {
		return nil, ErrLTSNil
	}
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	states := l.States()
	actions := l.Actions()

	// 2. Initial partition: one block holding every state
	p := newPartition(states)

	// 3. Fixpoint loop: one pass = one sweep over all (block, action) pairs
	maxPasses := len(states) + 1
	for pass := 0; ; pass++ {
		if pass >= maxPasses {
			return nil, fmt.Errorf("%w: no fixpoint after %d passes", ErrInvariantViolation, pass)
		}

		// Cancellation check between passes
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		// Signatures for this whole pass are computed against the
		// pass-start partition, not against blocks split mid-pass.
		snapshot := p.snapshot()
		changed := false

		for _, id := range p.blockIDs() {
			for _, act := range actions {
				left, right, split := p.split(l, id, act, snapshot)
				if split {
					changed = true
					if o.OnSplit != nil {
						o.OnSplit(id, act, left, right)
					}
					// Block replaced; the two halves are reexamined
					// next pass.
					break
				}
			}
		}

		if !changed {
			break // Stable
		}
	}

	// 4. Final bookkeeping check before handing the partition out
	if err := p.verify(l); err != nil {
		return nil, err
	}

	return p, nil
}

// IsStable reports whether p is a fixpoint of refinement over l: re-running
// the split predicate on every (block, action) pair produces no further
// split. The final partition of a successful Refine run is always stable.
func IsStable(l *lts.LTS, p *Partition) bool {
	if l == nil || p == nil {
		return false
	}
	actions := l.Actions()
	for _, id := range p.blockIDs() {
		members := p.members[id]
		for _, act := range actions {
			repKey := signatureKey(l, members[0], act, p.blockOf)
			for _, s := range members[1:] {
				if signatureKey(l, s, act, p.blockOf) != repKey {
					return false
				}
			}
		}
	}

	return true
}

// split partitions block id on action act against the snapshot State→BlockID
// view. The representative is the block's smallest state; members sharing
// its signature stay under id, the rest move to a fresh block. Reports the
// two result IDs and whether a split happened.
func (p *Partition) split(l *lts.LTS, id BlockID, act lts.Action, snapshot map[lts.State]BlockID) (left, right BlockID, ok bool) {
	members := p.members[id]
	if len(members) < 2 {
		return id, id, false
	}

	// Representative signature: smallest member, deterministic by sort order.
	repKey := signatureKey(l, members[0], act, snapshot)

	// Filtering preserves sort order in both halves.
	stay := make([]lts.State, 0, len(members))
	move := make([]lts.State, 0)
	var s lts.State
	for _, s = range members {
		if signatureKey(l, s, act, snapshot) == repKey {
			stay = append(stay, s)
		} else {
			move = append(move, s)
		}
	}
	if len(move) == 0 {
		return id, id, false
	}

	fresh := p.nextID
	p.nextID++
	p.members[id] = stay
	p.members[fresh] = move
	for _, s = range move {
		p.blockOf[s] = fresh
	}

	return id, fresh, true
}

// signature returns the deduplicated, ascending BlockID set reachable from
// s via act under the given State→BlockID view.
func signature(l *lts.LTS, s lts.State, act lts.Action, blockOf map[lts.State]BlockID) []BlockID {
	var ids []BlockID
	seen := make(map[BlockID]struct{})
	l.EachSuccessor(s, act, func(t lts.State) {
		id := blockOf[t]
		if _, dup := seen[id]; !dup {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	})
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// signatureKey renders a signature as a comparable string key.
func signatureKey(l *lts.LTS, s lts.State, act lts.Action, blockOf map[lts.State]BlockID) string {
	ids := signature(l, s, act, blockOf)
	if len(ids) == 0 {
		return ""
	}
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}

	return b.String()
}

// snapshot copies the State→BlockID map for pass-stable signature lookups.
func (p *Partition) snapshot() map[lts.State]BlockID {
	out := make(map[lts.State]BlockID, len(p.blockOf))
	for s, id := range p.blockOf {
		out[s] = id
	}

	return out
}

// blockIDs returns the current block IDs, ascending.
func (p *Partition) blockIDs() []BlockID {
	ids := make([]BlockID, 0, len(p.members))
	for id := range p.members {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// verify checks the partition invariant against l: every state of l sits in
// exactly one non-empty block, and the member lists agree with the
// State→BlockID map.
func (p *Partition) verify(l *lts.LTS) error {
	total := 0
	for id, members := range p.members {
		if len(members) == 0 {
			return fmt.Errorf("%w: empty block %d", ErrInvariantViolation, id)
		}
		total += len(members)
		for _, s := range members {
			if got, ok := p.blockOf[s]; !ok || got != id {
				return fmt.Errorf("%w: state %q listed in block %d but mapped to %d", ErrInvariantViolation, s, id, got)
			}
		}
	}
	if total != l.NumStates() || len(p.blockOf) != l.NumStates() {
		return fmt.Errorf("%w: partition covers %d states, lts has %d", ErrInvariantViolation, total, l.NumStates())
	}
	for _, s := range l.States() {
		if _, ok := p.blockOf[s]; !ok {
			return fmt.Errorf("%w: state %q missing from partition", ErrInvariantViolation, s)
		}
	}

	return nil
}
