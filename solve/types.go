// Package solve defines configuration options and error values for the
// crossing search engine.
package solve

import (
	"errors"
	"math"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilParty indicates that a nil *puzzle.Party was passed to Solve.
	ErrNilParty = errors.New("solve: party is nil")

	// ErrNoSolution indicates that no goal configuration is reachable
	// within the cost bound. This is the documented normal outcome for
	// too-tight bounds (including zero and negative bounds), not a
	// failure of the engine; callers distinguish it with errors.Is.
	ErrNoSolution = errors.New("solve: no crossing plan within the cost bound")
)

// Options configures one Solve invocation.
//
// Bound – the maximum accumulated cost any explored path may reach.
//
//	Paths that would exceed it are pruned at successor generation.
//	Default is math.MaxInt64 (effectively unbounded). Non-positive
//	bounds are accepted: with every crossing cost strictly positive,
//	they simply make every move inadmissible, so a non-empty party
//	yields ErrNoSolution while an empty party is already a goal.
type Options struct {
	Bound int64 // maximum accumulated path cost
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithCostBound caps the accumulated cost of explored paths at bound.
// Any value is accepted; see Options.Bound for the non-positive case.
func WithCostBound(bound int64) Option {
	return func(o *Options) {
		o.Bound = bound
	}
}

// DefaultOptions returns the Options used when no functional options are
// supplied: an effectively unbounded search.
func DefaultOptions() Options {
	return Options{Bound: math.MaxInt64}
}
