package sweep

import (
	"fmt"
	"math/cmplx"

	"github.com/san-kum/mzsim/internal/modulator"
)

// TimeFamily runs a time-domain sweep for each fixed voltage, in order.
func TimeFamily(m *modulator.MZM, voltages []float64, grid Grid) ([]*TimeSeries, error) {
	if len(voltages) == 0 {
		return nil, fmt.Errorf("%w: no voltages", ErrEmptyGrid)
	}
	family := make([]*TimeSeries, len(voltages))
	for i, v := range voltages {
		s, err := Time(m, v, grid)
		if err != nil {
			return nil, err
		}
		family[i] = s
	}
	return family, nil
}

// DualFamily runs an IQ time-domain sweep for every (iv, qv) pair, row-major
// with iv as the outer index.
func DualFamily(m *modulator.IQ, ivs, qvs []float64, pv float64, grid Grid) ([]*DualSeries, error) {
	if len(ivs) == 0 || len(qvs) == 0 {
		return nil, fmt.Errorf("%w: need at least one I and one Q voltage", ErrEmptyGrid)
	}
	family := make([]*DualSeries, 0, len(ivs)*len(qvs))
	for _, iv := range ivs {
		for _, qv := range qvs {
			s, err := DualTime(m, iv, qv, pv, grid)
			if err != nil {
				return nil, err
			}
			family = append(family, s)
		}
	}
	return family, nil
}

// ConstellationSeries holds one IQ output point per (IV, QV) drive pair.
type ConstellationSeries struct {
	Ein  complex128
	PV   float64
	IV   []float64
	QV   []float64
	Eout []complex128
}

// Constellation maps every (iv, qv) pair to the IQ output for a fixed input
// field, row-major with iv as the outer index.
func Constellation(m *modulator.IQ, ein complex128, ivs, qvs []float64, pv float64) (*ConstellationSeries, error) {
	if len(ivs) == 0 || len(qvs) == 0 {
		return nil, fmt.Errorf("%w: need at least one I and one Q voltage", ErrEmptyGrid)
	}

	n := len(ivs) * len(qvs)
	s := &ConstellationSeries{
		Ein:  ein,
		PV:   pv,
		IV:   make([]float64, 0, n),
		QV:   make([]float64, 0, n),
		Eout: make([]complex128, 0, n),
	}
	for _, iv := range ivs {
		for _, qv := range qvs {
			s.IV = append(s.IV, iv)
			s.QV = append(s.QV, qv)
			s.Eout = append(s.Eout, m.Modulate(ein, iv, qv, pv).Eout)
		}
	}
	return s, nil
}

func (s *ConstellationSeries) Len() int { return len(s.Eout) }

func (s *ConstellationSeries) Table() *Table {
	abs := make([]float64, len(s.Eout))
	for i, z := range s.Eout {
		abs[i] = cmplx.Abs(z)
	}
	return mustTable(
		[]string{"iv", "qv", "re_eout", "im_eout", "abs_eout"},
		s.IV, s.QV, Real(s.Eout), Imag(s.Eout), abs,
	)
}
