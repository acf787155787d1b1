package metrics

import (
	"math"
	"math/cmplx"
)

// Metric accumulates a scalar over the samples of a sweep. x is the sweep's
// independent variable (phase or voltage).
type Metric interface {
	Name() string
	Observe(x float64, ein, eout complex128)
	Value() float64
	Reset()
}

// MinTransmission floors the transmission used for dB ratios so a perfect
// null reports a finite 300 dB instead of +Inf.
const MinTransmission = 1e-30

// Observe feeds aligned series to every metric, after resetting them.
func Observe(ms []Metric, x []float64, ein, eout []complex128) {
	for _, m := range ms {
		m.Reset()
	}
	for i := range x {
		for _, m := range ms {
			m.Observe(x[i], ein[i], eout[i])
		}
	}
}

// transmission returns |eout|²/|ein|², false when ein is zero.
func transmission(ein, eout complex128) (float64, bool) {
	in := cmplx.Abs(ein)
	if in == 0 {
		return 0, false
	}
	r := cmplx.Abs(eout) / in
	return r * r, true
}

func toDB(ratio float64) float64 {
	return 10 * math.Log10(ratio)
}
