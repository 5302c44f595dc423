// Package bisim decides strong bisimilarity between the initial states of
// two finite labelled transition systems.
//
// # What
//
//   - Compose(a, b) forms the disjoint union of two systems, tagging every
//     state with its origin so identifiers never collide, unioning the
//     alphabets and transition relations, and adding no cross-system
//     transitions.
//   - Check(a, b, opts...) composes, runs one partition-refinement pass
//     structure over the union (refine.Refine), and reports bisimilar iff
//     the two tagged initial states share a final block. The Result keeps
//     the partition and the tagged initials for diagnostics.
//
// # Why
//
// Refining each system separately and comparing partitions does not decide
// bisimilarity between systems; refining their disjoint union does, because
// the coarsest bisimulation on the union relates states across the two
// halves exactly when they are bisimilar.
//
// # Edge cases
//
//   - Transition-free systems are valid; two deadlocked initial states are
//     trivially bisimilar.
//   - Alphabet symbols that label no transition never influence the verdict;
//     only enabled actions separate states.
//
// # Errors
//
//   - ErrNilLTS if either input is nil.
//   - refine.ErrInvariantViolation and context errors pass through from the
//     refinement run.
package bisim
