package metrics

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/stat"
)

// ExtinctionRatio is the ratio of maximum to minimum transmission, in dB.
type ExtinctionRatio struct {
	name     string
	min, max float64
	samples  int
}

func NewExtinctionRatio() *ExtinctionRatio {
	return &ExtinctionRatio{name: "extinction_db"}
}

func (e *ExtinctionRatio) Name() string { return e.name }

func (e *ExtinctionRatio) Observe(x float64, ein, eout complex128) {
	t, ok := transmission(ein, eout)
	if !ok {
		return
	}
	if e.samples == 0 {
		e.min, e.max = t, t
	} else {
		e.min = math.Min(e.min, t)
		e.max = math.Max(e.max, t)
	}
	e.samples++
}

func (e *ExtinctionRatio) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return ExtinctionDB(e.max, e.min)
}

// ExtinctionDB is 10·log10(hi/lo) with lo floored at MinTransmission. It is 0
// when hi is not positive.
func ExtinctionDB(hi, lo float64) float64 {
	if hi <= 0 {
		return 0
	}
	return toDB(hi / math.Max(lo, MinTransmission))
}

func (e *ExtinctionRatio) Reset() {
	e.min, e.max = 0, 0
	e.samples = 0
}

type MeanTransmission struct {
	name    string
	samples []float64
}

func NewMeanTransmission() *MeanTransmission {
	return &MeanTransmission{name: "mean_transmission"}
}

func (m *MeanTransmission) Name() string { return m.name }

func (m *MeanTransmission) Observe(x float64, ein, eout complex128) {
	if t, ok := transmission(ein, eout); ok {
		m.samples = append(m.samples, t)
	}
}

func (m *MeanTransmission) Value() float64 {
	if len(m.samples) == 0 {
		return 0
	}
	return stat.Mean(m.samples, nil)
}

func (m *MeanTransmission) Reset() { m.samples = m.samples[:0] }

// PeakPower is the largest output power |Eout|², not normalized.
type PeakPower struct {
	name string
	peak float64
}

func NewPeakPower() *PeakPower {
	return &PeakPower{name: "peak_power"}
}

func (p *PeakPower) Name() string { return p.name }

func (p *PeakPower) Observe(x float64, ein, eout complex128) {
	a := cmplx.Abs(eout)
	p.peak = math.Max(p.peak, a*a)
}

func (p *PeakPower) Value() float64 { return p.peak }
func (p *PeakPower) Reset()         { p.peak = 0 }

// NullPosition is the x value of the first sample with the lowest transmission.
type NullPosition struct {
	name    string
	best    float64
	x       float64
	samples int
}

func NewNullPosition() *NullPosition {
	return &NullPosition{name: "null_voltage"}
}

func (n *NullPosition) Name() string { return n.name }

func (n *NullPosition) Observe(x float64, ein, eout complex128) {
	t, ok := transmission(ein, eout)
	if !ok {
		return
	}
	if n.samples == 0 || t < n.best {
		n.best, n.x = t, x
	}
	n.samples++
}

func (n *NullPosition) Value() float64 { return n.x }

func (n *NullPosition) Reset() {
	n.best, n.x = 0, 0
	n.samples = 0
}
