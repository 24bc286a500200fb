// Package headloss defines options and error sentinels for single-sample
// head-loss totals over a core.Network.
package headloss

import (
	"errors"

	"github.com/katalvlaran/syscurve/colebrook"
)

// DefaultGravity is the gravitational acceleration used in the velocity-head
// term, in ft/s². All network dimensions must share the matching unit system;
// metric (meter-based) networks pass WithGravity(9.81).
const DefaultGravity = 32.2

// Sentinel errors returned by Total and Breakdown.
var (
	// ErrNilNetwork indicates a nil *core.Network was passed.
	ErrNilNetwork = errors.New("headloss: network is nil")

	// ErrNegativeFlow indicates a negative flow rate was requested. The model
	// is defined for Q ≥ 0; reversed flow is not a supported regime.
	ErrNegativeFlow = errors.New("headloss: flow rate must be non-negative")

	// ErrBadGravity indicates a non-positive gravity constant was supplied.
	ErrBadGravity = errors.New("headloss: gravity must be positive")
)

// Options configures head-loss evaluation.
//
// Gravity – gravitational acceleration for the v²/(2g) velocity-head term.
// Solver  – options forwarded to colebrook.Solve for every pipe.
type Options struct {
	Gravity float64
	Solver  []colebrook.Option
}

// Option is a functional option for configuring Total and Breakdown.
type Option func(*Options)

// WithGravity overrides the gravity constant (default 32.2 ft/s²).
// Must pass a positive value; zero or negative panics with ErrBadGravity.
func WithGravity(g float64) Option {
	return func(o *Options) {
		if g <= 0 {
			panic(ErrBadGravity.Error())
		}
		o.Gravity = g
	}
}

// WithSolver forwards options to the friction-factor solver, e.g. a tighter
// precision or a diagnostic iteration cap.
func WithSolver(opts ...colebrook.Option) Option {
	return func(o *Options) {
		o.Solver = append(o.Solver, opts...)
	}
}

// DefaultOptions returns production-safe defaults:
//
//   - Gravity: 32.2 (US customary, ft/s²)
//   - Solver:  colebrook defaults (precision 1e-4, cap 100)
func DefaultOptions() Options {
	return Options{Gravity: DefaultGravity}
}
