package modulator

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDualModulate_ComposesBranches(t *testing.T) {
	voltages := []float64{-1.5, -0.5, 0, 0.5, 1, 2}

	for _, ein := range fields {
		for _, iv := range voltages {
			for _, qv := range voltages {
				got := DualModulate(ein, iv, qv, QuadraturePhase)
				want := Modulate(ein/2, iv).Eout + Modulate(ein/2, qv).Eout*cmplx.Exp(complex(0, math.Pi/2))
				if !approxEqual(got.Eout, want, tol) {
					t.Errorf("DualModulate(%v, %v, %v).Eout = %v, want %v", ein, iv, qv, got.Eout, want)
				}
			}
		}
	}
}

func TestDualModulate_OutputIsBranchSum(t *testing.T) {
	out := DualModulate(2+2i, 0.3, -0.8, 1.1)
	assert.Equal(t, out.Iout+out.Qout, out.Eout)
}

func TestDualModulate_QuadratureAxes(t *testing.T) {
	// Q branch fully extinguished: output lies on the real axis.
	out := DualModulate(1, 0, 1, QuadraturePhase)
	assert.InDelta(t, 0.5, real(out.Eout), tol)
	assert.InDelta(t, 0, imag(out.Eout), tol)

	// I branch fully extinguished: output lies on the imaginary axis.
	out = DualModulate(1, 1, 0, QuadraturePhase)
	assert.InDelta(t, 0, real(out.Eout), tol)
	assert.InDelta(t, 0.5, imag(out.Eout), tol)
}

func TestDualModulate_QPSKCorners(t *testing.T) {
	tests := []struct {
		iv, qv float64
		want   complex128
	}{
		{0, 0, 0.5 + 0.5i},
		{2, 0, -0.5 + 0.5i},
		{0, 2, 0.5 - 0.5i},
		{2, 2, -0.5 - 0.5i},
	}

	for _, tt := range tests {
		got := DualModulate(1, tt.iv, tt.qv, QuadraturePhase).Eout
		if !approxEqual(got, tt.want, 1e-12) {
			t.Errorf("DualModulate(1, %v, %v) = %v, want %v", tt.iv, tt.qv, got, tt.want)
		}
	}
}

func TestNewIQ(t *testing.T) {
	iq, err := NewIQ(Device{Vpi: 2})
	require.NoError(t, err)
	assert.Equal(t, 2.0, iq.Device().Vpi)

	// With Vpi = 2 the Q branch nulls at qv = 2.
	out := iq.Modulate(1, 0, 2, QuadraturePhase)
	assert.InDelta(t, 0, cmplx.Abs(out.Qout), tol)

	_, err = NewIQ(Device{Vpi: 0})
	assert.ErrorIs(t, err, ErrInvalidVpi)
}
