package modulator

import "math/cmplx"

type DualOutput struct {
	Eout complex128
	Iout complex128
	Qout complex128
}

// IQ is a nested modulator: two MZMs on split copies of the input, the Q
// branch rotated by a fixed phase before recombination.
type IQ struct {
	i *MZM
	q *MZM
}

func NewIQ(device Device) (*IQ, error) {
	branch, err := NewMZM(device)
	if err != nil {
		return nil, err
	}
	return &IQ{i: branch, q: branch}, nil
}

var defaultIQ = &IQ{i: defaultMZM, q: defaultMZM}

func DefaultIQ() *IQ { return defaultIQ }

func (m *IQ) Device() Device { return m.i.device }

// Modulate drives the I branch with iv and the Q branch with qv; pv is the
// phase in radians applied to the Q branch output.
func (m *IQ) Modulate(ein complex128, iv, qv, pv float64) DualOutput {
	iin := ein / 2
	qin := ein / 2

	iout := m.i.Modulate(iin, iv).Eout
	qout := m.q.Modulate(qin, qv).Eout * cmplx.Exp(complex(0, pv))

	return DualOutput{
		Eout: iout + qout,
		Iout: iout,
		Qout: qout,
	}
}

// DualModulate runs ein through the default IQ modulator.
func DualModulate(ein complex128, iv, qv, pv float64) DualOutput {
	return defaultIQ.Modulate(ein, iv, qv, pv)
}
