// Package curve sweeps a network's total head loss across flow rates,
// producing the system curve that gets laid over a pump curve to find the
// operating point.
//
// The sweep samples flow rates 0, dq, 2·dq, … up to and including the largest
// multiple of dq that does not exceed the configured maximum. Each flow rate
// is an index multiplied by the increment — never a running sum — so no
// floating-point drift accumulates across samples and the point count is
// exactly ⌊max/dq⌋+1 when max is representable as a multiple of dq.
//
// Traversal is lazy and restartable: Points returns a fresh Cursor whose
// state lives entirely in the cursor, so two traversals — sequential or
// concurrent — are fully independent and yield identical sequences. The
// underlying Network is immutable and each sample is a pure function of its
// flow rate, so callers may also fan sample computation out across
// goroutines with one cursor per goroutine.
//
// Errors:
//
//	ErrNilNetwork, ErrNonPositiveMaxFlow, ErrNonPositiveIncrement —
//	  configuration errors, rejected by New before any sample is computed.
//	headloss/colebrook failures — surfaced per sample through Cursor.Err;
//	  the traversal stops and the caller decides whether to rebuild the
//	  network or abandon the curve.
package curve

import (
	"fmt"

	"github.com/katalvlaran/syscurve/core"
	"github.com/katalvlaran/syscurve/headloss"
)

// Generator produces system-curve traversals over one validated network.
// It is immutable after New and safe for concurrent use.
type Generator struct {
	net *core.Network
	cfg Options
}

// New validates the sweep configuration eagerly and returns a Generator.
//
// Required options: MaxFlow(q) and Increment(dq), both > 0. A bad spec is
// rejected here so a misconfigured sweep never partially produces points.
func New(net *core.Network, opts ...Option) (*Generator, error) {
	// 1) Build Options.
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate eagerly: network, then bounds.
	if net == nil {
		return nil, ErrNilNetwork
	}
	if cfg.MaxFlow <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrNonPositiveMaxFlow, cfg.MaxFlow)
	}
	if cfg.Increment <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrNonPositiveIncrement, cfg.Increment)
	}

	return &Generator{net: net, cfg: cfg}, nil
}

// Len reports how many samples one full traversal yields: the indices i with
// i·dq ≤ MaxFlow, i.e. ⌊MaxFlow/dq⌋+1 on exact multiples. It uses the same
// predicate as the Cursor, so Len always agrees with a completed traversal.
func (g *Generator) Len() int {
	n := int(g.cfg.MaxFlow / g.cfg.Increment)
	// Settle the boundary index against fp rounding of the division, in
	// either direction.
	for n > 0 && float64(n)*g.cfg.Increment > g.cfg.MaxFlow {
		n--
	}
	for float64(n+1)*g.cfg.Increment <= g.cfg.MaxFlow {
		n++
	}

	return n + 1
}

// Points starts a fresh traversal at flow rate 0. Every call returns an
// independent Cursor; traversals share no mutable state.
func (g *Generator) Points() *Cursor {
	return &Cursor{gen: g}
}

// All runs one full traversal and collects every point. It returns the
// points gathered so far plus the sample error, if any — a convenience for
// consumers (plotting, pump-curve comparison) that want the whole curve
// at once.
func (g *Generator) All() ([]Point, error) {
	pts := make([]Point, 0, g.Len())
	cur := g.Points()
	for cur.Next() {
		pts = append(pts, cur.Point())
	}

	return pts, cur.Err()
}

// Cursor is one in-progress traversal of the system curve. Use it like a
// database row iterator:
//
//	cur := gen.Points()
//	for cur.Next() {
//	    pt := cur.Point()
//	    // consume pt
//	}
//	if err := cur.Err(); err != nil {
//	    // the sample at which the sweep failed
//	}
//
// A Cursor is single-use and not safe for concurrent use by multiple
// goroutines; start one cursor per goroutine instead.
type Cursor struct {
	gen  *Generator
	next int   // index of the next sample
	pt   Point // most recent sample
	err  error // first failure, sticky
	done bool
}

// Next advances to the next sample, computing it on demand. It returns false
// once the sweep is exhausted or a sample fails; Err distinguishes the two.
func (c *Cursor) Next() bool {
	if c.done {
		return false
	}

	flow := float64(c.next) * c.gen.cfg.Increment
	if flow > c.gen.cfg.MaxFlow {
		c.done = true

		return false
	}

	head, err := headloss.Total(c.gen.net, flow, c.gen.cfg.HeadLoss...)
	if err != nil {
		c.err = fmt.Errorf("curve: sample Q=%g: %w", flow, err)
		c.done = true

		return false
	}

	c.pt = Point{Flow: flow, Head: head}
	c.next++

	return true
}

// Point returns the sample produced by the last successful Next.
func (c *Cursor) Point() Point { return c.pt }

// Err returns the error that stopped the traversal, or nil after a clean
// exhaustion.
func (c *Cursor) Err() error { return c.err }
