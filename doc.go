// Package bisimcheck decides strong bisimilarity between finite labelled
// transition systems via Kanellakis–Smolka partition refinement.
//
// The module is organized into one package per concern:
//
//	lts/    - immutable LTS model: states, actions, transitions, initial
//	          state, with validation and a (source, action) successor index
//	ltsio/  - loaders for the whitespace-triple .lts format and a YAML
//	          document form, with warning-level malformed-line diagnostics
//	refine/ - the coarsest-partition refinement loop: blocks, signatures,
//	          deterministic splits, fixpoint detection
//	bisim/  - the two-system check: disjoint tagged union, one refinement
//	          run, verdict from the final partition
//
// cmd/bisim is the command-line front end:
//
//	bisim model1.lts model2.lts
//	Bisimilar
//
// Everything is deterministic: sorted enumeration everywhere and a fixed
// representative rule make two runs over the same inputs byte-identical.
// The core is sequential and allocation-conscious; independent checks may
// run concurrently, since no package holds global mutable state.
package bisimcheck
