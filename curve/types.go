// Package curve defines the sample type, options and error sentinels for
// system-curve sweeps.
package curve

import (
	"errors"

	"github.com/katalvlaran/syscurve/headloss"
)

// Sentinel errors returned by New.
var (
	// ErrNilNetwork indicates a nil *core.Network was passed.
	ErrNilNetwork = errors.New("curve: network is nil")

	// ErrNonPositiveMaxFlow indicates MaxFlow was omitted or set ≤ 0.
	ErrNonPositiveMaxFlow = errors.New("curve: max flow rate must be positive")

	// ErrNonPositiveIncrement indicates Increment was omitted or set ≤ 0.
	// A positive increment is what guarantees every sweep terminates.
	ErrNonPositiveIncrement = errors.New("curve: flow increment must be positive")
)

// Point is one sample of the system curve: the total head loss of the
// network at one flow rate.
type Point struct {
	// Flow is the sampled flow rate, ≥ 0.
	Flow float64

	// Head is the total head loss at Flow, ≥ 0.
	Head float64
}

// Options configures a Generator.
//
// MaxFlow   – last flow rate to evaluate (the sweep covers 0..MaxFlow). > 0.
// Increment – flow-rate step between samples. > 0.
// HeadLoss  – options forwarded to headloss per sample (gravity constant,
//
//	solver precision/cap).
type Options struct {
	MaxFlow   float64
	Increment float64
	HeadLoss  []headloss.Option
}

// Option is a functional option for configuring New.
type Option func(*Options)

// MaxFlow sets the upper end of the sweep. Required; validated in New.
func MaxFlow(q float64) Option {
	return func(o *Options) {
		o.MaxFlow = q
	}
}

// Increment sets the flow-rate step between samples. Required; validated
// in New — a non-positive step could never terminate.
func Increment(dq float64) Option {
	return func(o *Options) {
		o.Increment = dq
	}
}

// WithHeadLoss forwards options to the per-sample head-loss evaluation,
// e.g. headloss.WithGravity(9.81) for metric networks or
// headloss.WithSolver(...) for solver tuning.
func WithHeadLoss(opts ...headloss.Option) Option {
	return func(o *Options) {
		o.HeadLoss = append(o.HeadLoss, opts...)
	}
}
