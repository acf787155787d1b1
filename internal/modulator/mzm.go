package modulator

import (
	"math"
	"math/cmplx"
)

// Output is the full set of fields inside a single MZM for one drive voltage.
// B1 and B2 are the splitter outputs, Arm3 and Arm4 the phase-shifted arms.
type Output struct {
	Eout complex128
	B1   complex128
	B2   complex128
	Arm3 complex128
	Arm4 complex128
}

type MZM struct {
	device Device
}

// NewMZM returns a modulator for the given device, or an error wrapping
// ErrInvalidVpi / ErrInvalidDevice.
func NewMZM(device Device) (*MZM, error) {
	if err := device.Validate(); err != nil {
		return nil, err
	}
	return &MZM{device: device}, nil
}

var defaultMZM = &MZM{device: DefaultDevice()}

// Default returns the modulator with Vdc = 0 and Vpi = 1.
func Default() *MZM { return defaultMZM }

func (m *MZM) Device() Device { return m.device }

// Phase returns the phase shift applied to each arm, π·phi/2.
func (m *MZM) Phase(vrf float64) float64 {
	return math.Pi * m.device.Depth(vrf) / 2
}

func (m *MZM) Modulate(ein complex128, vrf float64) Output {
	half := m.Phase(vrf)

	b1 := ein / 2
	b2 := ein / 2
	arm3 := b1 * cmplx.Exp(complex(0, half))
	arm4 := b2 * cmplx.Exp(complex(0, -half))

	return Output{
		Eout: arm3 + arm4,
		B1:   b1,
		B2:   b2,
		Arm3: arm3,
		Arm4: arm4,
	}
}

// Transmission is the closed form of |Eout|²/|Ein|², cos²(π·phi/2).
func (m *MZM) Transmission(vrf float64) float64 {
	c := math.Cos(m.Phase(vrf))
	return c * c
}

// Modulate runs ein through the default device.
func Modulate(ein complex128, vrf float64) Output {
	return defaultMZM.Modulate(ein, vrf)
}
