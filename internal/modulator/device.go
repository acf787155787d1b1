package modulator

import "math"

const (
	DefaultVdc = 0.0
	DefaultVpi = 1.0

	// CarrierFrequency is the 1550 nm optical carrier in Hz. The transfer
	// functions operate on the slowly varying envelope and do not use it.
	CarrierFrequency = 193.5e12

	// QuadraturePhase is the I/Q recombination offset of an IQ modulator.
	QuadraturePhase = math.Pi / 2
)

// Device holds the electrical characteristics shared by every arm of a modulator.
type Device struct {
	Vdc float64 `yaml:"vdc" json:"vdc"`
	Vpi float64 `yaml:"vpi" json:"vpi"`
}

func DefaultDevice() Device {
	return Device{Vdc: DefaultVdc, Vpi: DefaultVpi}
}

// Validate rejects parameters that make the transfer function undefined.
func (d Device) Validate() error {
	if math.IsNaN(d.Vdc) || math.IsInf(d.Vdc, 0) {
		return &ConfigError{Field: "vdc", Value: d.Vdc, Wrapped: ErrInvalidDevice}
	}
	if math.IsNaN(d.Vpi) || math.IsInf(d.Vpi, 0) {
		return &ConfigError{Field: "vpi", Value: d.Vpi, Wrapped: ErrInvalidDevice}
	}
	if d.Vpi == 0 {
		return &ConfigError{Field: "vpi", Value: d.Vpi, Wrapped: ErrInvalidVpi}
	}
	return nil
}

// Depth returns the normalized modulation depth (vrf+Vdc)/Vpi.
func (d Device) Depth(vrf float64) float64 {
	return (vrf + d.Vdc) / d.Vpi
}
