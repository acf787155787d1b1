package sweep

import (
	"iter"

	"github.com/san-kum/mzsim/internal/modulator"
)

type DualSample struct {
	Theta float64
	Ein   complex128
	Out   modulator.DualOutput
}

// DualSeries holds a collected IQ time-domain sweep at fixed (IV, QV).
type DualSeries struct {
	IV, QV, PV float64
	Theta      []float64
	Ein        []complex128
	Eout       []complex128
	Iout       []complex128
	Qout       []complex128
}

func dualSample(m *modulator.IQ, iv, qv, pv, theta float64) DualSample {
	ein := Carrier(theta)
	return DualSample{Theta: theta, Ein: ein, Out: m.Modulate(ein, iv, qv, pv)}
}

func DualTimeSamples(m *modulator.IQ, iv, qv, pv float64, grid Grid) iter.Seq[DualSample] {
	return func(yield func(DualSample) bool) {
		for _, theta := range grid {
			if !yield(dualSample(m, iv, qv, pv, theta)) {
				return
			}
		}
	}
}

func DualTime(m *modulator.IQ, iv, qv, pv float64, grid Grid) (*DualSeries, error) {
	if len(grid) == 0 {
		return nil, ErrEmptyGrid
	}

	n := len(grid)
	s := &DualSeries{
		IV:    iv,
		QV:    qv,
		PV:    pv,
		Theta: grid.clone(),
		Ein:   make([]complex128, n),
		Eout:  make([]complex128, n),
		Iout:  make([]complex128, n),
		Qout:  make([]complex128, n),
	}

	parallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			p := dualSample(m, iv, qv, pv, grid[i])
			s.Ein[i] = p.Ein
			s.Eout[i] = p.Out.Eout
			s.Iout[i] = p.Out.Iout
			s.Qout[i] = p.Out.Qout
		}
	})

	return s, nil
}

func (s *DualSeries) Len() int { return len(s.Theta) }

func (s *DualSeries) Table() *Table {
	return mustTable(
		[]string{"theta", "re_ein", "im_ein", "re_eout", "im_eout", "re_iout", "im_iout", "re_qout", "im_qout"},
		s.Theta, Real(s.Ein), Imag(s.Ein), Real(s.Eout), Imag(s.Eout), Real(s.Iout), Imag(s.Iout), Real(s.Qout), Imag(s.Qout),
	)
}
