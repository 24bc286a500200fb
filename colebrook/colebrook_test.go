package colebrook_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/syscurve/colebrook"
	"github.com/katalvlaran/syscurve/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referencePipe is the canonical worked example: a 100-unit run of 10-unit
// diameter pipe, ε ≈ commercial steel, fully turbulent flow.
func referencePipe(t *testing.T) core.Pipe {
	t.Helper()
	p, err := core.NewPipe("p1", 100, 10, 0.0005, 1e6)
	require.NoError(t, err)

	return p
}

// TestSolve_Converges verifies the solver accepts the reference pipe, returns
// a positive factor, and omits the trace by default.
func TestSolve_Converges(t *testing.T) {
	f, trace, err := colebrook.Solve(referencePipe(t))
	require.NoError(t, err, "reference pipe must converge")

	assert.Greater(t, f, 0.0, "friction factor must be positive")
	assert.False(t, math.IsNaN(f), "friction factor must never be NaN")
	assert.Nil(t, trace, "trace must be nil unless requested")
}

// TestSolve_TraceProperties checks the diagnostic sequence: non-empty, bounded
// by the cap, accepted value last, and the final two estimates within the
// convergence precision of each other.
func TestSolve_TraceProperties(t *testing.T) {
	f, trace, err := colebrook.Solve(referencePipe(t), colebrook.WithTrace())
	require.NoError(t, err)

	require.NotEmpty(t, trace, "trace must hold the successive approximations")
	assert.LessOrEqual(t, len(trace), colebrook.DefaultMaxIterations)
	assert.Equal(t, f, trace[len(trace)-1], "last trace element is the accepted factor")

	require.GreaterOrEqual(t, len(trace), 2, "crude seed cannot converge in one step at default precision")
	gap := math.Abs(trace[len(trace)-1] - trace[len(trace)-2])
	assert.Less(t, gap, colebrook.DefaultPrecision, "accepted step must meet the precision threshold")

	for i, estimate := range trace {
		assert.Greater(t, estimate, 0.0, "estimate %d must stay positive", i)
	}
}

// TestSolve_Deterministic confirms repeated solves of the same pipe agree
// exactly — convergence failures and successes alike are reproducible, which
// is why the solver never retries internally.
func TestSolve_Deterministic(t *testing.T) {
	p := referencePipe(t)

	f1, _, err1 := colebrook.Solve(p)
	f2, _, err2 := colebrook.Solve(p)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, f1, f2, "identical inputs must produce identical factors")
}

// TestSolve_LoosePrecision verifies that a very loose threshold accepts the
// very first fixed-point step.
func TestSolve_LoosePrecision(t *testing.T) {
	f, trace, err := colebrook.Solve(referencePipe(t),
		colebrook.WithPrecision(10),
		colebrook.WithTrace(),
	)
	require.NoError(t, err)

	assert.Len(t, trace, 1, "threshold wider than the first step accepts immediately")
	assert.Equal(t, f, trace[0])
}

// TestSolve_IterationCap ensures ErrNotConverged surfaces when the cap is too
// tight for the precision — the bounded-loop correction over naive unguarded
// fixed-point iteration.
func TestSolve_IterationCap(t *testing.T) {
	for _, cap := range []int{1, 2} {
		_, _, err := colebrook.Solve(referencePipe(t), colebrook.WithMaxIterations(cap))
		assert.ErrorIs(t, err, colebrook.ErrNotConverged, "cap=%d cannot reach 1e-4 agreement", cap)
		assert.ErrorContains(t, err, `pipe "p1"`, "error must identify the offending pipe")
	}
}

// TestSolve_NumericDomain drives the log10 argument past 1 with an extreme
// relative roughness, so the first estimate is negative and the next √ would
// be undefined. The solver must fail loudly, not produce NaN.
func TestSolve_NumericDomain(t *testing.T) {
	rough, err := core.NewPipe("rough", 100, 1, 100, 1e6)
	require.NoError(t, err, "large roughness is constructible; failure is numeric, not configuration")

	f, _, err := colebrook.Solve(rough)
	assert.ErrorIs(t, err, colebrook.ErrNumericDomain)
	assert.ErrorContains(t, err, `pipe "rough"`)
	assert.Zero(t, f)
}

// TestSolve_InvalidPipe confirms Solve re-validates bare literals and returns
// the core sentinels before touching the numerics.
func TestSolve_InvalidPipe(t *testing.T) {
	_, _, err := colebrook.Solve(core.Pipe{ID: "bad", Length: 100, Diameter: 0, Roughness: 0.0005, Reynolds: 1e6})
	assert.ErrorIs(t, err, core.ErrNonPositiveDiameter)

	_, _, err = colebrook.Solve(core.Pipe{ID: "bad", Length: 100, Diameter: 10, Roughness: 0.0005, Reynolds: 0})
	assert.ErrorIs(t, err, core.ErrNonPositiveReynolds)
}

// TestOptions_PanicOnInvalid ensures invalid option arguments panic when the
// option is applied, before any iteration runs.
func TestOptions_PanicOnInvalid(t *testing.T) {
	p := referencePipe(t)

	assert.Panics(t, func() { _, _, _ = colebrook.Solve(p, colebrook.WithPrecision(0)) })
	assert.Panics(t, func() { _, _, _ = colebrook.Solve(p, colebrook.WithPrecision(-1e-4)) })
	assert.Panics(t, func() { _, _, _ = colebrook.Solve(p, colebrook.WithMaxIterations(0)) })
	assert.Panics(t, func() { _, _, _ = colebrook.Solve(p, colebrook.WithMaxIterations(-5)) })
}

// TestDefaultOptions pins the documented defaults.
func TestDefaultOptions(t *testing.T) {
	opts := colebrook.DefaultOptions()
	assert.Equal(t, 1e-4, opts.Precision)
	assert.Equal(t, 100, opts.MaxIterations)
	assert.False(t, opts.ReturnTrace)
}
