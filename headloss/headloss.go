// Package headloss evaluates the total hydraulic head loss of a network at
// one flow rate: Darcy–Weisbach friction losses summed over every pipe plus
// k-factor minor losses summed over every fitting.
//
// For a pipe at flow rate Q:
//
//	area          = π·D²/4
//	velocity      = Q / area
//	velocity head = v² / (2g)
//	friction loss = f·(L/D)·v²/(2g)      f from colebrook.Solve
//
// For a fitting, the velocity head is recomputed from the fitting's own
// diameter (reducers and expansions see their own velocity), then:
//
//	minor loss = k·v²/(2g)
//
// Each contribution is accumulated inside its own loop over all pipes and all
// fittings; the total is the sum of both accumulators.
//
// At Q = 0 every velocity is zero, so the total is exactly 0 — the friction
// factor itself depends only on the pipe record, never on Q, so the solver
// remains well-defined at zero flow.
//
// Complexity:
//
//   - Time:  O(P·I + F) per sample, P pipes, F fittings, I solver iterations.
//   - Space: O(1).
//
// Errors:
//
//	ErrNilNetwork   — nil network pointer.
//	ErrNegativeFlow — Q < 0.
//	colebrook.*     — solver failure, wrapped per pipe; the sample aborts and
//	                  the caller decides whether to skip or stop the sweep.
package headloss

import (
	"fmt"
	"math"

	"github.com/katalvlaran/syscurve/colebrook"
	"github.com/katalvlaran/syscurve/core"
)

// Total computes the total head loss of net at flow rate flow:
// friction losses over all pipes plus minor losses over all fittings.
//
// The computation is pure and holds no state across calls — samples at
// different flow rates may run concurrently over the same network.
func Total(net *core.Network, flow float64, opts ...Option) (float64, error) {
	friction, minor, err := Breakdown(net, flow, opts...)
	if err != nil {
		return 0, err
	}

	return friction + minor, nil
}

// Breakdown computes the same sample as Total but keeps the friction and
// minor contributions separate, which is what you want when deciding whether
// a steep system curve comes from pipe runs or from fittings.
func Breakdown(net *core.Network, flow float64, opts ...Option) (friction, minor float64, err error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if net == nil {
		return 0, 0, ErrNilNetwork
	}
	if flow < 0 {
		return 0, 0, fmt.Errorf("%w: Q=%g", ErrNegativeFlow, flow)
	}

	// 3) Friction losses: one term per pipe, accumulated across all pipes.
	var factor float64
	for _, p := range net.Pipes() {
		factor, _, err = colebrook.Solve(p, cfg.Solver...)
		if err != nil {
			return 0, 0, fmt.Errorf("headloss: pipe %q: %w", p.ID, err)
		}
		friction += factor * (p.Length / p.Diameter) * velocityHead(flow, p.Diameter, cfg.Gravity)
	}

	// 4) Minor losses: one term per fitting, each from the fitting's own
	//    diameter-derived velocity head.
	for _, f := range net.Fittings() {
		minor += f.K * velocityHead(flow, f.Diameter, cfg.Gravity)
	}

	return friction, minor, nil
}

// velocityHead returns v²/(2g) for flow rate q through a circular section of
// the given diameter.
func velocityHead(q, diameter, gravity float64) float64 {
	area := math.Pi * diameter * diameter / 4
	velocity := q / area

	return velocity * velocity / (2 * gravity)
}
