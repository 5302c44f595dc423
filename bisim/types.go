// Package bisim decides strong bisimilarity between two finite LTSs.
// This file declares options, errors, and the Result type.
package bisim

import (
	"context"
	"errors"

	"github.com/NathanAmoussou/kanellakis-smolka-bisim/lts"
	"github.com/NathanAmoussou/kanellakis-smolka-bisim/refine"
)

// ErrNilLTS is returned when either compared LTS pointer is nil.
var ErrNilLTS = errors.New("bisim: lts is nil")

// Option configures a bisimilarity check.
type Option func(*Options)

// Options holds parameters for one Check call.
type Options struct {
	// Ctx is forwarded to the underlying refinement run.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation. Passing nil has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result carries the verdict of one bisimilarity check plus the evidence
// behind it: the final partition of the composed system and the tagged
// initial states whose blocks decided the verdict.
type Result struct {
	// Bisimilar is true iff the two initial states are strongly bisimilar.
	Bisimilar bool

	// Left and Right are the tagged initial states of the first and second
	// input inside the composed system. Look them up in Partition for
	// diagnostics.
	Left, Right lts.State

	// Partition is the stable partition of the composed system.
	Partition *refine.Partition
}
