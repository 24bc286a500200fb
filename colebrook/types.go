// Package colebrook defines options and error sentinels for the iterative
// Colebrook–White friction-factor solver.
package colebrook

import "errors"

// Default solver parameters. Precision matches the classical hand-calculation
// tolerance; the iteration cap bounds fixed-point loops that oscillate or
// diverge on extreme inputs.
const (
	// DefaultPrecision is the convergence threshold on successive estimates.
	DefaultPrecision = 1e-4

	// DefaultMaxIterations caps the fixed-point loop.
	DefaultMaxIterations = 100

	// seed is the deliberately crude initial friction guess. The classical
	// fixed-point iteration contracts toward the root from this seed for
	// physically realistic turbulent-flow inputs.
	seed = 1.0
)

// Sentinel errors returned by Solve.
var (
	// ErrNotConverged indicates the iteration cap was reached before two
	// successive estimates agreed within the configured precision.
	ErrNotConverged = errors.New("colebrook: iteration did not converge")

	// ErrNumericDomain indicates an intermediate estimate became ≤ 0, making
	// the next iteration's square root undefined. Surfaced immediately rather
	// than letting NaN propagate.
	ErrNumericDomain = errors.New("colebrook: non-positive friction estimate")

	// ErrBadPrecision indicates a non-positive precision was supplied.
	ErrBadPrecision = errors.New("colebrook: precision must be positive")

	// ErrBadMaxIterations indicates a non-positive iteration cap was supplied.
	ErrBadMaxIterations = errors.New("colebrook: max iterations must be positive")
)

// Options configures the solver.
//
// Precision     – stop once |next − guess| < Precision. Must be > 0.
// MaxIterations – hard cap on fixed-point steps. Must be > 0.
// ReturnTrace   – if true, Solve also returns the successive approximations,
//
//	accepted value last, for convergence diagnostics.
type Options struct {
	Precision     float64
	MaxIterations int
	ReturnTrace   bool
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithPrecision overrides the convergence threshold.
// Must pass a positive value; zero or negative panics with ErrBadPrecision,
// since a non-positive threshold can never be met and would defeat the cap's
// purpose of guaranteeing termination with a meaningful result.
func WithPrecision(precision float64) Option {
	return func(o *Options) {
		if precision <= 0 {
			panic(ErrBadPrecision.Error())
		}
		o.Precision = precision
	}
}

// WithMaxIterations overrides the iteration cap.
// Must pass a positive value; zero or negative panics with ErrBadMaxIterations.
func WithMaxIterations(cap int) Option {
	return func(o *Options) {
		if cap <= 0 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = cap
	}
}

// WithTrace requests the full sequence of successive approximations in the
// Solve result. The last trace element is always the accepted factor.
func WithTrace() Option {
	return func(o *Options) {
		o.ReturnTrace = true
	}
}

// DefaultOptions returns production-safe defaults:
//
//   - Precision:     1e-4
//   - MaxIterations: 100
//   - ReturnTrace:   false
func DefaultOptions() Options {
	return Options{
		Precision:     DefaultPrecision,
		MaxIterations: DefaultMaxIterations,
		ReturnTrace:   false,
	}
}
