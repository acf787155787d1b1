package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mzsim/internal/modulator"
	"github.com/san-kum/mzsim/internal/sweep"
)

const (
	ModeTime          = "time"
	ModeTransfer      = "transfer"
	ModeDual          = "dual"
	ModeFamily        = "family"
	ModeDualFamily    = "dual-family"
	ModeConstellation = "constellation"
)

const (
	DefaultMode      = ModeTime
	DefaultInputRe   = 1.0
	DefaultQuadPhase = modulator.QuadraturePhase
)

type Config struct {
	Mode   string           `yaml:"mode"`
	Device modulator.Device `yaml:"device"`
	Input  InputConfig      `yaml:"input"`
	Sweep  SweepConfig      `yaml:"sweep"`
	Drive  DriveConfig      `yaml:"drive"`
}

// InputConfig is the fixed input field used by transfer and constellation
// sweeps. Time-domain sweeps generate their own unit carrier.
type InputConfig struct {
	Re float64 `yaml:"re"`
	Im float64 `yaml:"im"`
}

// SweepConfig is the independent-variable grid. Zero Points selects the
// default grid of the mode.
type SweepConfig struct {
	Start  float64 `yaml:"start"`
	Stop   float64 `yaml:"stop"`
	Points int     `yaml:"points"`
}

type DriveConfig struct {
	Voltage  float64   `yaml:"voltage"`
	Voltages []float64 `yaml:"voltages"`
	IV       float64   `yaml:"iv"`
	QV       float64   `yaml:"qv"`
	IVs      []float64 `yaml:"ivs"`
	QVs      []float64 `yaml:"qvs"`
	Phase    float64   `yaml:"phase"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:   DefaultMode,
		Device: modulator.DefaultDevice(),
		Input:  InputConfig{Re: DefaultInputRe},
		Drive: DriveConfig{
			Voltages: append([]float64(nil), sweep.DefaultVoltages...),
			IVs:      []float64{0, 1},
			QVs:      []float64{0, 1},
			Phase:    DefaultQuadPhase,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of a copy of base; keys absent from the file keep
// the base values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy, so presets can be modified by callers.
func (c *Config) Clone() *Config {
	out := *c
	out.Drive.Voltages = append([]float64(nil), c.Drive.Voltages...)
	out.Drive.IVs = append([]float64(nil), c.Drive.IVs...)
	out.Drive.QVs = append([]float64(nil), c.Drive.QVs...)
	return &out
}

func (c *Config) Validate() error {
	if err := c.Device.Validate(); err != nil {
		return err
	}
	if c.Sweep.Points < 0 {
		return fmt.Errorf("sweep points must be non-negative, got %d", c.Sweep.Points)
	}
	for _, v := range []float64{c.Sweep.Start, c.Sweep.Stop, c.Input.Re, c.Input.Im, c.Drive.Voltage, c.Drive.IV, c.Drive.QV, c.Drive.Phase} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("config values must be finite, got %v", v)
		}
	}
	return nil
}

func (c *Config) Field() complex128 {
	return complex(c.Input.Re, c.Input.Im)
}

// Grid returns the configured grid, falling back to the phase grid for
// time-domain modes and the voltage grid for transfer sweeps.
func (c *Config) Grid() (sweep.Grid, error) {
	if c.Sweep.Points == 0 {
		if c.Mode == ModeTransfer {
			return sweep.VoltageGrid(), nil
		}
		return sweep.PhaseGrid(), nil
	}
	return sweep.Linspace(c.Sweep.Start, c.Sweep.Stop, c.Sweep.Points)
}
