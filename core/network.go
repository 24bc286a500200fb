package core

import "fmt"

// Network is an ordered, immutable collection of pipes and fittings forming
// one series flow path. All elements contribute additively to the total head
// loss, so order does not change the physical result — but iteration order is
// insertion order, kept stable so floating-point summation is reproducible
// run to run.
//
// A validated *Network is safe for concurrent read-only use: it holds no
// mutable state and its accessors return copies.
type Network struct {
	pipes    []Pipe
	fittings []Fitting
}

// NewNetwork validates every record and returns an immutable Network.
//
// Each pipe and fitting is re-validated (so struct literals are caught here
// even if NewPipe/NewFitting were bypassed), and identifiers must be unique
// per kind. The input slices are copied; the caller may reuse them.
func NewNetwork(pipes []Pipe, fittings []Fitting) (*Network, error) {
	seenPipes := make(map[string]struct{}, len(pipes))
	for _, p := range pipes {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seenPipes[p.ID]; dup {
			return nil, fmt.Errorf("%w: pipe %q", ErrDuplicateID, p.ID)
		}
		seenPipes[p.ID] = struct{}{}
	}

	seenFittings := make(map[string]struct{}, len(fittings))
	for _, f := range fittings {
		if err := f.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seenFittings[f.ID]; dup {
			return nil, fmt.Errorf("%w: fitting %q", ErrDuplicateID, f.ID)
		}
		seenFittings[f.ID] = struct{}{}
	}

	n := &Network{
		pipes:    make([]Pipe, len(pipes)),
		fittings: make([]Fitting, len(fittings)),
	}
	copy(n.pipes, pipes)
	copy(n.fittings, fittings)

	return n, nil
}

// Pipes returns the pipes in insertion order. The returned slice is a copy;
// mutating it does not affect the Network.
func (n *Network) Pipes() []Pipe {
	out := make([]Pipe, len(n.pipes))
	copy(out, n.pipes)

	return out
}

// Fittings returns the fittings in insertion order. The returned slice is a
// copy; mutating it does not affect the Network.
func (n *Network) Fittings() []Fitting {
	out := make([]Fitting, len(n.fittings))
	copy(out, n.fittings)

	return out
}

// PipeCount reports the number of pipes in the network.
func (n *Network) PipeCount() int { return len(n.pipes) }

// FittingCount reports the number of fittings in the network.
func (n *Network) FittingCount() int { return len(n.fittings) }
