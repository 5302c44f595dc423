// Package refine computes the coarsest strong-bisimulation partition of a
// finite labelled transition system using Kanellakis–Smolka partition
// refinement.
//
// # What
//
//   - Refine(l, opts...) starts from the single block {all states} and
//     repeatedly splits blocks until no (block, action) pair separates any
//     block's members; the result is a stable Partition.
//   - A split compares signatures: the set of blocks a state reaches via
//     one action under the current partition. A block's smallest state acts
//     as the representative; members matching its signature stay together,
//     the rest form a fresh block.
//   - Two states share a final block iff they are strongly bisimilar
//     within l.
//
// # Why
//
//   - Partition refinement is the classic polynomial decision procedure for
//     strong bisimilarity; the bisim package runs it once over a composed
//     system to compare two LTSs.
//
// # Determinism
//
// States, actions and block IDs are all enumerated in sorted order and the
// representative is the block's smallest member, so two runs over the same
// LTS produce identical partitions, block IDs included. The tie-break only
// fixes exploration order; the final partition is canonical regardless.
//
// # Sequencing
//
// The algorithm is single-threaded: every pass evaluates signatures against
// the partition as it stood at pass start, so block splits within a pass do
// not feed back into that pass. Each Refine call owns its Partition
// exclusively; concurrent calls over shared LTS values are safe.
//
// # Complexity (n = |states|, m = |transitions|)
//
//   - Time:   O(n·m)  (≤ n−1 splits; each pass O(n + m) via the successor index)
//   - Memory: O(n)    (block membership and the State→BlockID map)
//
// # Options
//
//   - WithContext(ctx): cancel between passes.
//   - WithOnSplit(fn):  observe every split (parent, action, both halves).
//
// # Errors
//
//   - ErrLTSNil             if l is nil.
//   - ErrInvariantViolation if partition bookkeeping breaks mid-run; this is
//     an algorithm bug surfacing, never a property of the input.
//   - context errors observed via WithContext.
package refine
