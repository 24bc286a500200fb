package curve_test

import (
	"testing"

	"github.com/katalvlaran/syscurve/core"
	"github.com/katalvlaran/syscurve/curve"
)

// benchmarkSweep builds a network with the given number of identical pipes
// and fittings, then traverses a 0..max sweep once per iteration.
func benchmarkSweep(b *testing.B, pipes, fittings int, max, dq float64) {
	ps := make([]core.Pipe, pipes)
	for i := range ps {
		p, err := core.NewPipe(string(rune('a'+i)), 100, 10, 0.0005, 1e6)
		if err != nil {
			b.Fatalf("NewPipe failed: %v", err)
		}
		ps[i] = p
	}
	fs := make([]core.Fitting, fittings)
	for i := range fs {
		f, err := core.NewFitting(string(rune('a'+i)), 10, 2.5)
		if err != nil {
			b.Fatalf("NewFitting failed: %v", err)
		}
		fs[i] = f
	}

	net, err := core.NewNetwork(ps, fs)
	if err != nil {
		b.Fatalf("NewNetwork failed: %v", err)
	}
	gen, err := curve.New(net, curve.MaxFlow(max), curve.Increment(dq))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		cur := gen.Points()
		for cur.Next() {
		}
		if err := cur.Err(); err != nil {
			b.Fatalf("sweep failed: %v", err)
		}
	}
}

// BenchmarkSweep_Reference benchmarks the worked example: 1 pipe, 1 fitting,
// 101 samples.
func BenchmarkSweep_Reference(b *testing.B) {
	benchmarkSweep(b, 1, 1, 100, 1)
}

// BenchmarkSweep_WideNetwork benchmarks a 10-pipe, 10-fitting line over the
// same grid.
func BenchmarkSweep_WideNetwork(b *testing.B) {
	benchmarkSweep(b, 10, 10, 100, 1)
}

// BenchmarkSweep_FineGrid benchmarks a fine 0.1-unit grid: 1001 samples.
func BenchmarkSweep_FineGrid(b *testing.B) {
	benchmarkSweep(b, 1, 1, 100, 0.1)
}
