// Package colebrook solves the Colebrook–White equation for the Darcy
// friction factor of a single pipe.
//
// The Colebrook–White relation is implicit — the friction factor appears on
// both sides:
//
//	1/√f = -2·log10( (ε/D)/3.7 + 2.51/(Re·√f) )
//
// so it is solved by fixed-point iteration:
//
//  1. Start from a deliberately crude guess, f₀ = 1.
//  2. Compute next = -2·log10( (ε/D)/3.7 + 2.51/(Re·√guess) ).
//  3. Accept next once |next − guess| < precision; otherwise set
//     guess = next and repeat.
//
// Termination is guaranteed by a hard iteration cap: unguarded fixed-point
// iteration can oscillate or diverge on extreme inputs, and an unbounded
// loop is a worse failure mode than an explicit ErrNotConverged.
//
// Complexity:
//
//   - Time:  O(MaxIterations) worst case; realistic turbulent-flow inputs
//     converge in a handful of steps.
//   - Space: O(1), or O(iterations) when the trace is requested.
//
// Errors:
//
//	ErrNotConverged  — cap reached before the precision threshold was met;
//	                   wrapped with the pipe ID and the last estimate.
//	ErrNumericDomain — an estimate became ≤ 0, so the next √ is undefined;
//	                   wrapped with the pipe ID and the offending value.
//	core sentinels   — the pipe record itself is invalid.
package colebrook

import (
	"fmt"
	"math"

	"github.com/katalvlaran/syscurve/core"
)

// Solve computes the Darcy friction factor for pipe p by fixed-point
// iteration on the Colebrook–White relation. The factor depends only on the
// pipe's diameter, roughness and Reynolds number — not on the flow rate — so
// one converged value serves every sample of a curve sweep.
//
// Returns:
//
//   - factor: the accepted friction factor (dimensionless, > 0).
//   - trace:  successive approximations, accepted value last, if
//     WithTrace() was supplied; nil otherwise.
//   - err:    validation, domain, or convergence failure.
//
// Solve re-validates p, so callers building Pipe literals directly are
// still rejected here rather than producing NaN.
func Solve(p core.Pipe, opts ...Option) (factor float64, trace []float64, err error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the pipe record. Roughness ≥ 0, Diameter > 0 and
	//    Reynolds > 0 together keep the log10 argument strictly positive.
	if err = p.Validate(); err != nil {
		return 0, nil, err
	}

	// 3) Run the bounded fixed-point loop.
	s := solver{pipe: p, options: cfg}

	return s.run()
}

// solver holds the state of a single Solve execution. A fresh solver is
// created per call, so Solve is safe for concurrent use.
type solver struct {
	pipe    core.Pipe // read-only input record
	options Options   // resolved configuration
	trace   []float64 // successive estimates, only when ReturnTrace
}

// run iterates until convergence, a domain failure, or the cap.
func (s *solver) run() (float64, []float64, error) {
	// Precompute the roughness term: it is constant across iterations.
	roughTerm := (s.pipe.Roughness / s.pipe.Diameter) / 3.7

	if s.options.ReturnTrace {
		s.trace = make([]float64, 0, s.options.MaxIterations)
	}

	guess := seed
	var next float64
	for i := 0; i < s.options.MaxIterations; i++ {
		// One fixed-point step. The argument of log10 is strictly positive:
		// roughTerm ≥ 0 and the Reynolds term is > 0 while guess > 0.
		next = -2 * math.Log10(roughTerm+2.51/(s.pipe.Reynolds*math.Sqrt(guess)))
		if s.options.ReturnTrace {
			s.trace = append(s.trace, next)
		}

		// A non-positive estimate makes the next iteration's √ undefined.
		// Fail loudly instead of propagating NaN (reachable when ε/D is
		// large enough that the log10 argument reaches 1).
		if next <= 0 {
			return 0, nil, fmt.Errorf("%w: pipe %q estimate=%g at iteration %d",
				ErrNumericDomain, s.pipe.ID, next, i+1)
		}

		// Accept once successive estimates agree within the precision.
		if math.Abs(next-guess) < s.options.Precision {
			return next, s.trace, nil
		}
		guess = next
	}

	return 0, nil, fmt.Errorf("%w: pipe %q after %d iterations, last estimate=%g",
		ErrNotConverged, s.pipe.ID, s.options.MaxIterations, next)
}
