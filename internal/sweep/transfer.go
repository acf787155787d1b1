package sweep

import (
	"iter"
	"math/cmplx"

	"github.com/san-kum/mzsim/internal/modulator"
)

type TransferSample struct {
	V         float64
	Eout      complex128
	Intensity float64
	Amplitude float64
}

// TransferSeries is the transfer function of one modulator for a fixed input
// field: normalized intensity |Eout|²/|Ein|² and amplitude |Eout|/|Ein|.
type TransferSeries struct {
	Ein       complex128
	Voltage   []float64
	Eout      []complex128
	Intensity []float64
	Amplitude []float64
}

func transferSample(m *modulator.MZM, ein complex128, inAbs, v float64) TransferSample {
	eout := m.Modulate(ein, v).Eout
	amp := cmplx.Abs(eout) / inAbs
	return TransferSample{V: v, Eout: eout, Intensity: amp * amp, Amplitude: amp}
}

// TransferSamples lazily yields the transfer function of m over grid. A zero
// ein yields NaN normalized quantities; Transfer rejects it instead.
func TransferSamples(m *modulator.MZM, ein complex128, grid Grid) iter.Seq[TransferSample] {
	inAbs := cmplx.Abs(ein)
	return func(yield func(TransferSample) bool) {
		for _, v := range grid {
			if !yield(transferSample(m, ein, inAbs, v)) {
				return
			}
		}
	}
}

func Transfer(m *modulator.MZM, ein complex128, grid Grid) (*TransferSeries, error) {
	if len(grid) == 0 {
		return nil, ErrEmptyGrid
	}
	inAbs := cmplx.Abs(ein)
	if inAbs == 0 {
		return nil, ErrZeroField
	}

	n := len(grid)
	s := &TransferSeries{
		Ein:       ein,
		Voltage:   grid.clone(),
		Eout:      make([]complex128, n),
		Intensity: make([]float64, n),
		Amplitude: make([]float64, n),
	}

	parallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			p := transferSample(m, ein, inAbs, grid[i])
			s.Eout[i] = p.Eout
			s.Intensity[i] = p.Intensity
			s.Amplitude[i] = p.Amplitude
		}
	})

	return s, nil
}

func (s *TransferSeries) Len() int { return len(s.Voltage) }

func (s *TransferSeries) Table() *Table {
	return mustTable(
		[]string{"voltage", "intensity", "amplitude", "re_eout", "im_eout"},
		s.Voltage, s.Intensity, s.Amplitude, Real(s.Eout), Imag(s.Eout),
	)
}
