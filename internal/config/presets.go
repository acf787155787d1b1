package config

import (
	"math"
	"sort"

	"github.com/san-kum/mzsim/internal/modulator"
)

// Drive levels whose cos-law amplitudes are ±1 and ±1/3, for 16-QAM.
var (
	qamInner = 2 / math.Pi * math.Acos(1.0/3)
	qamOuter = 2 / math.Pi * math.Acos(-1.0/3)
)

var unitDevice = modulator.DefaultDevice()

var Presets = map[string]map[string]*Config{
	ModeTime: {
		"peak": {
			Mode: ModeTime, Device: unitDevice,
			Drive: DriveConfig{Voltage: 0},
		},
		"quadrature": {
			Mode: ModeTime, Device: unitDevice,
			Drive: DriveConfig{Voltage: 0.5},
		},
		"null": {
			Mode: ModeTime, Device: unitDevice,
			Drive: DriveConfig{Voltage: 1},
		},
	},
	ModeTransfer: {
		"default": {
			Mode: ModeTransfer, Device: unitDevice,
			Input: InputConfig{Re: 2, Im: 2},
			Sweep: SweepConfig{Start: -5, Stop: 5, Points: 1000},
		},
		"wide": {
			Mode: ModeTransfer, Device: unitDevice,
			Input: InputConfig{Re: 1},
			Sweep: SweepConfig{Start: -10, Stop: 10, Points: 2000},
		},
		"biased": {
			Mode: ModeTransfer, Device: modulator.Device{Vdc: 0.5, Vpi: 1},
			Input: InputConfig{Re: 1},
			Sweep: SweepConfig{Start: -5, Stop: 5, Points: 1000},
		},
	},
	ModeDual: {
		"single": {
			Mode: ModeDual, Device: unitDevice,
			Drive: DriveConfig{IV: 0, QV: 1, Phase: modulator.QuadraturePhase},
		},
		"balanced": {
			Mode: ModeDual, Device: unitDevice,
			Drive: DriveConfig{IV: 0.5, QV: 0.5, Phase: modulator.QuadraturePhase},
		},
	},
	ModeFamily: {
		"default": {
			Mode: ModeFamily, Device: unitDevice,
			Drive: DriveConfig{Voltages: []float64{0, 0.5, 1, 1.5, 2, 2.5}},
		},
	},
	ModeDualFamily: {
		"grid": {
			Mode: ModeDualFamily, Device: unitDevice,
			Drive: DriveConfig{IVs: []float64{0, 0.5, 1}, QVs: []float64{0, 0.5, 1}, Phase: modulator.QuadraturePhase},
		},
	},
	ModeConstellation: {
		"qpsk": {
			Mode: ModeConstellation, Device: unitDevice,
			Input: InputConfig{Re: 1},
			Drive: DriveConfig{IVs: []float64{0, 2}, QVs: []float64{0, 2}, Phase: modulator.QuadraturePhase},
		},
		"16qam": {
			Mode: ModeConstellation, Device: unitDevice,
			Input: InputConfig{Re: 1},
			Drive: DriveConfig{
				IVs:   []float64{0, qamInner, qamOuter, 2},
				QVs:   []float64{0, qamInner, qamOuter, 2},
				Phase: modulator.QuadraturePhase,
			},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil if it does not exist.
func GetPreset(mode, preset string) *Config {
	modePresets, ok := Presets[mode]
	if !ok {
		return nil
	}
	cfg, ok := modePresets[preset]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(mode string) []string {
	modePresets, ok := Presets[mode]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modePresets))
	for name := range modePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
