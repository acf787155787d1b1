package sweep

import (
	"iter"
	"math/cmplx"

	"github.com/san-kum/mzsim/internal/modulator"
)

// TimeSample is one point of a time-domain sweep.
type TimeSample struct {
	Theta float64
	Ein   complex128
	Out   modulator.Output
}

// TimeSeries holds a collected time-domain sweep at fixed voltage V.
type TimeSeries struct {
	V     float64
	Theta []float64
	Ein   []complex128
	Eout  []complex128
	B1    []complex128
	B3    []complex128
	B4    []complex128
}

// Carrier is the unit-amplitude input field at phase theta.
func Carrier(theta float64) complex128 {
	return cmplx.Exp(complex(0, theta))
}

func timeSample(m *modulator.MZM, v, theta float64) TimeSample {
	ein := Carrier(theta)
	return TimeSample{Theta: theta, Ein: ein, Out: m.Modulate(ein, v)}
}

// TimeSamples lazily yields the time-domain sweep of m at voltage v.
func TimeSamples(m *modulator.MZM, v float64, grid Grid) iter.Seq[TimeSample] {
	return func(yield func(TimeSample) bool) {
		for _, theta := range grid {
			if !yield(timeSample(m, v, theta)) {
				return
			}
		}
	}
}

// Time collects the time-domain sweep of m at voltage v.
func Time(m *modulator.MZM, v float64, grid Grid) (*TimeSeries, error) {
	if len(grid) == 0 {
		return nil, ErrEmptyGrid
	}

	n := len(grid)
	s := &TimeSeries{
		V:     v,
		Theta: grid.clone(),
		Ein:   make([]complex128, n),
		Eout:  make([]complex128, n),
		B1:    make([]complex128, n),
		B3:    make([]complex128, n),
		B4:    make([]complex128, n),
	}

	parallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			p := timeSample(m, v, grid[i])
			s.Ein[i] = p.Ein
			s.Eout[i] = p.Out.Eout
			s.B1[i] = p.Out.B1
			s.B3[i] = p.Out.Arm3
			s.B4[i] = p.Out.Arm4
		}
	})

	return s, nil
}

func (s *TimeSeries) Len() int { return len(s.Theta) }

func (s *TimeSeries) Table() *Table {
	return mustTable(
		[]string{"theta", "re_ein", "im_ein", "re_eout", "im_eout", "re_b1", "re_b3", "re_b4"},
		s.Theta, Real(s.Ein), Imag(s.Ein), Real(s.Eout), Imag(s.Eout), Real(s.B1), Real(s.B3), Real(s.B4),
	)
}
