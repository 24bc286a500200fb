// Package core defines the central Pipe, Fitting, and Network types,
// and validates every record eagerly so a malformed network never reaches
// the numeric layers.
//
// This file declares Pipe, Fitting, sentinel errors, and the NewPipe /
// NewFitting constructors.
//
// Errors:
//
//	ErrEmptyID             - record identifier is the empty string.
//	ErrNonPositiveLength   - pipe length ≤ 0.
//	ErrNonPositiveDiameter - pipe or fitting diameter ≤ 0.
//	ErrNegativeRoughness   - equivalent roughness < 0.
//	ErrNonPositiveReynolds - Reynolds number ≤ 0.
//	ErrNegativeK           - minor-loss coefficient < 0.
//	ErrDuplicateID         - two records of the same kind share an ID.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for network construction.
var (
	// ErrEmptyID indicates that a Pipe or Fitting has an empty identifier.
	ErrEmptyID = errors.New("core: record ID is empty")

	// ErrNonPositiveLength indicates a pipe length ≤ 0.
	ErrNonPositiveLength = errors.New("core: pipe length must be positive")

	// ErrNonPositiveDiameter indicates a pipe or fitting diameter ≤ 0.
	// Diameters feed divisions and square roots downstream, so zero is a
	// configuration error, not a computable case.
	ErrNonPositiveDiameter = errors.New("core: diameter must be positive")

	// ErrNegativeRoughness indicates an equivalent roughness < 0.
	// Zero is valid (hydraulically smooth pipe).
	ErrNegativeRoughness = errors.New("core: equivalent roughness must be non-negative")

	// ErrNonPositiveReynolds indicates a Reynolds number ≤ 0.
	// The Colebrook–White relation divides by Re·√f.
	ErrNonPositiveReynolds = errors.New("core: Reynolds number must be positive")

	// ErrNegativeK indicates a minor-loss coefficient < 0.
	// Zero is valid (a fitting contributing no loss).
	ErrNegativeK = errors.New("core: minor-loss coefficient must be non-negative")

	// ErrDuplicateID indicates two pipes or two fittings share an identifier.
	ErrDuplicateID = errors.New("core: duplicate record ID")
)

// Pipe is one segment of the series flow path.
//
// All dimensional fields share one consistent unit system (typically US
// customary feet-based; any coherent system works as long as the gravity
// constant used downstream matches). The Reynolds number is precomputed per
// pipe and held constant for the model — it is not re-derived from the flow
// rate during a sweep.
//
// A Pipe is an immutable value: construct it with NewPipe and pass it by value.
type Pipe struct {
	// ID uniquely identifies this pipe within its Network.
	ID string

	// Length of the segment, > 0.
	Length float64

	// Diameter of the segment, > 0.
	Diameter float64

	// Roughness is the equivalent roughness ε of the pipe material, ≥ 0.
	Roughness float64

	// Reynolds is the precomputed Reynolds number for the pipe/flow, > 0.
	Reynolds float64
}

// Fitting is anything contributing minor losses to the flow path:
// valves, elbows, tees, meters.
//
// A Fitting is an immutable value: construct it with NewFitting.
type Fitting struct {
	// ID uniquely identifies this fitting within its Network.
	ID string

	// Diameter of the associated pipe, > 0. Typically equal to the diameter
	// of the pipe the fitting sits on, but carried separately so reducers
	// and expansions keep their own velocity head.
	Diameter float64

	// K is the minor-loss coefficient, ≥ 0.
	K float64
}

// NewPipe validates and returns a Pipe record.
//
// Validation (in order): non-empty ID, Length > 0, Diameter > 0,
// Roughness ≥ 0, Reynolds > 0. Each failure wraps the matching sentinel
// with the offending ID and value.
func NewPipe(id string, length, diameter, roughness, reynolds float64) (Pipe, error) {
	if id == "" {
		return Pipe{}, fmt.Errorf("%w: pipe", ErrEmptyID)
	}
	if length <= 0 {
		return Pipe{}, fmt.Errorf("%w: pipe %q length=%g", ErrNonPositiveLength, id, length)
	}
	if diameter <= 0 {
		return Pipe{}, fmt.Errorf("%w: pipe %q diameter=%g", ErrNonPositiveDiameter, id, diameter)
	}
	if roughness < 0 {
		return Pipe{}, fmt.Errorf("%w: pipe %q roughness=%g", ErrNegativeRoughness, id, roughness)
	}
	if reynolds <= 0 {
		return Pipe{}, fmt.Errorf("%w: pipe %q Reynolds=%g", ErrNonPositiveReynolds, id, reynolds)
	}

	return Pipe{
		ID:        id,
		Length:    length,
		Diameter:  diameter,
		Roughness: roughness,
		Reynolds:  reynolds,
	}, nil
}

// Validate re-checks the Pipe invariants. It exists for callers that build
// Pipe literals directly instead of going through NewPipe.
func (p Pipe) Validate() error {
	_, err := NewPipe(p.ID, p.Length, p.Diameter, p.Roughness, p.Reynolds)

	return err
}

// NewFitting validates and returns a Fitting record.
//
// Validation (in order): non-empty ID, Diameter > 0, K ≥ 0.
func NewFitting(id string, diameter, k float64) (Fitting, error) {
	if id == "" {
		return Fitting{}, fmt.Errorf("%w: fitting", ErrEmptyID)
	}
	if diameter <= 0 {
		return Fitting{}, fmt.Errorf("%w: fitting %q diameter=%g", ErrNonPositiveDiameter, id, diameter)
	}
	if k < 0 {
		return Fitting{}, fmt.Errorf("%w: fitting %q k=%g", ErrNegativeK, id, k)
	}

	return Fitting{ID: id, Diameter: diameter, K: k}, nil
}

// Validate re-checks the Fitting invariants, mirroring Pipe.Validate.
func (f Fitting) Validate() error {
	_, err := NewFitting(f.ID, f.Diameter, f.K)

	return err
}
