package framework

import (
	"fmt"
	"math"
)

// Bounds is an inclusive [L, H] range for a single dimension.
type Bounds struct {
	L float64
	H float64
}

// Clamp returns v limited to the range.
func (b Bounds) Clamp(v float64) float64 {
	return math.Max(b.L, math.Min(b.H, v))
}

// Contains reports whether v lies within the range.
func (b Bounds) Contains(v float64) bool {
	return v >= b.L && v <= b.H
}

// Width returns H-L.
func (b Bounds) Width() float64 {
	return b.H - b.L
}

// UniformBounds returns n copies of [l, h].
func UniformBounds(n int, l, h float64) []Bounds {
	b := make([]Bounds, n)
	for i := range n {
		b[i] = Bounds{L: l, H: h}
	}
	return b
}

// ValidateBounds checks that every range is finite and not inverted.
func ValidateBounds(bounds []Bounds) error {
	if len(bounds) == 0 {
		return fmt.Errorf("%w: no bounds given", ErrInvalidArgument)
	}
	for i, b := range bounds {
		if math.IsNaN(b.L) || math.IsNaN(b.H) || math.IsInf(b.L, 0) || math.IsInf(b.H, 0) {
			return fmt.Errorf("%w: bounds[%d] must be finite, got [%v, %v]", ErrInvalidArgument, i, b.L, b.H)
		}
		if b.L > b.H {
			return fmt.Errorf("%w: bounds[%d] is inverted, got [%v, %v]", ErrInvalidArgument, i, b.L, b.H)
		}
	}
	return nil
}

// Objective evaluates a point in the search space. Lower values are better.
// A failed evaluation must return a non-nil error, which aborts the run that
// requested it.
type Objective interface {
	Objective(x []float64) (float64, error)
}

// ObjectiveFunc adapts a plain function to the Objective interface.
type ObjectiveFunc func(x []float64) float64

func (fn ObjectiveFunc) Objective(x []float64) (float64, error) { return fn(x), nil }

// Dimensioned is implemented by objectives that accept a fixed number of
// variables. A value of zero means any dimensionality is accepted.
type Dimensioned interface {
	Dimensions() int
}

// Problem describes a single-objective benchmark with known optimum.
type Problem interface {
	Objective
	Dimensioned

	Name() string
	Bounds() []Bounds

	// Optimum returns one global minimiser and the minimum value.
	Optimum() (location []float64, value float64)
}
