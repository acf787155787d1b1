package sweep

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	DefaultPhasePoints   = 100
	DefaultVoltagePoints = 1000
	DefaultVoltageSpan   = 5.0
)

// DefaultVoltages is the fixed-voltage family used for multi-panel views.
var DefaultVoltages = []float64{0, 0.5, 1, 1.5, 2, 2.5}

// Grid is an ordered set of sample points. Order defines the x axis.
type Grid []float64

// Linspace returns n evenly spaced points over [start, stop], both included.
// A single point yields [start].
func Linspace(start, stop float64, n int) (Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrEmptyGrid, n)
	}
	if n == 1 {
		return Grid{start}, nil
	}
	return Grid(floats.Span(make([]float64, n), start, stop)), nil
}

// PhaseGrid is the input-phase grid [-2π, 2π] with 100 points.
func PhaseGrid() Grid {
	g, _ := Linspace(-2*math.Pi, 2*math.Pi, DefaultPhasePoints)
	return g
}

// VoltageGrid is the drive-voltage grid [-5, 5] with 1000 points.
func VoltageGrid() Grid {
	g, _ := Linspace(-DefaultVoltageSpan, DefaultVoltageSpan, DefaultVoltagePoints)
	return g
}

// Step returns the spacing of a uniform grid, or 0 for fewer than two points.
func (g Grid) Step() float64 {
	if len(g) < 2 {
		return 0
	}
	return g[1] - g[0]
}

func (g Grid) clone() []float64 {
	c := make([]float64, len(g))
	copy(c, g)
	return c
}
