package config

import (
	"errors"
	"math"
	"math/cmplx"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/mzsim/internal/modulator"
	"github.com/san-kum/mzsim/internal/sweep"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != ModeTime {
		t.Errorf("expected mode time, got %s", cfg.Mode)
	}
	if cfg.Device.Vpi != 1 || cfg.Device.Vdc != 0 {
		t.Errorf("expected unit device, got %+v", cfg.Device)
	}
	if cfg.Drive.Phase != math.Pi/2 {
		t.Errorf("expected quadrature phase, got %f", cfg.Drive.Phase)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestDefaultConfig_DoesNotShareVoltages(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Drive.Voltages[0] = 99
	if sweep.DefaultVoltages[0] == 99 {
		t.Error("DefaultConfig aliases sweep.DefaultVoltages")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mzsim.yaml")

	cfg := DefaultConfig()
	cfg.Mode = ModeTransfer
	cfg.Device = modulator.Device{Vdc: 0.25, Vpi: 3.5}
	cfg.Input = InputConfig{Re: 2, Im: -1}
	cfg.Sweep = SweepConfig{Start: -3, Stop: 3, Points: 61}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Mode != ModeTransfer {
		t.Errorf("expected mode transfer, got %s", loaded.Mode)
	}
	if loaded.Device != cfg.Device {
		t.Errorf("device = %+v, want %+v", loaded.Device, cfg.Device)
	}
	if loaded.Field() != 2-1i {
		t.Errorf("field = %v, want 2-1i", loaded.Field())
	}
	if loaded.Sweep != cfg.Sweep {
		t.Errorf("sweep = %+v, want %+v", loaded.Sweep, cfg.Sweep)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("mode: dual\ndrive:\n  iv: 0.5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Device.Vpi != modulator.DefaultVpi {
		t.Errorf("expected default vpi, got %f", cfg.Device.Vpi)
	}
	if cfg.Drive.IV != 0.5 {
		t.Errorf("expected iv 0.5, got %f", cfg.Drive.IV)
	}
}

func TestLoadOver_KeepsBaseAndLeavesItUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "over.yaml")
	if err := os.WriteFile(path, []byte("device:\n  vpi: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base := GetPreset(ModeTransfer, "default")
	cfg, err := LoadOver(path, base)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Device.Vpi != 2 {
		t.Errorf("expected vpi 2, got %f", cfg.Device.Vpi)
	}
	if cfg.Field() != 2+2i || cfg.Sweep.Points != 1000 {
		t.Errorf("preset values lost: field=%v points=%d", cfg.Field(), cfg.Sweep.Points)
	}
	if base.Device.Vpi != 1 {
		t.Errorf("base modified: vpi=%f", base.Device.Vpi)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Device.Vpi = 0
	if err := cfg.Validate(); !errors.Is(err, modulator.ErrInvalidVpi) {
		t.Errorf("expected ErrInvalidVpi, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Sweep.Points = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative points")
	}

	cfg = DefaultConfig()
	cfg.Drive.Voltage = math.NaN()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for NaN voltage")
	}
}

func TestGrid(t *testing.T) {
	cfg := DefaultConfig()
	grid, err := cfg.Grid()
	if err != nil {
		t.Fatal(err)
	}
	if len(grid) != sweep.DefaultPhasePoints {
		t.Errorf("time grid has %d points", len(grid))
	}

	cfg.Mode = ModeTransfer
	grid, _ = cfg.Grid()
	if len(grid) != sweep.DefaultVoltagePoints {
		t.Errorf("transfer grid has %d points", len(grid))
	}

	cfg.Sweep = SweepConfig{Start: 0, Stop: 1, Points: 11}
	grid, _ = cfg.Grid()
	if len(grid) != 11 || grid[10] != 1 {
		t.Errorf("custom grid = %v", grid)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset(ModeTime, "null")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Drive.Voltage != 1 {
		t.Errorf("expected voltage 1, got %f", cfg.Drive.Voltage)
	}

	cfg.Drive.Voltage = 7
	if GetPreset(ModeTime, "null").Drive.Voltage != 1 {
		t.Error("GetPreset returned a shared preset")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset(ModeTime, "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "null") != nil {
		t.Error("expected nil for nonexistent mode")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets(ModeConstellation)
	if len(presets) != 2 || presets[0] != "16qam" || presets[1] != "qpsk" {
		t.Errorf("unexpected constellation presets: %v", presets)
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent mode")
	}
}

func TestPresetsAreValid(t *testing.T) {
	for mode, presets := range Presets {
		for name, cfg := range presets {
			if cfg.Mode != mode {
				t.Errorf("%s/%s: mode %q", mode, name, cfg.Mode)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("%s/%s: %v", mode, name, err)
			}
		}
	}
}

func TestQAMLevels(t *testing.T) {
	iq := modulator.DefaultIQ()
	cfg := GetPreset(ModeConstellation, "16qam")

	levels := make(map[float64]bool)
	for _, iv := range cfg.Drive.IVs {
		out := iq.Modulate(1, iv, 1, modulator.QuadraturePhase)
		levels[math.Round(real(out.Iout)*6)/6] = true
		if cmplx.Abs(out.Qout) > 1e-12 {
			t.Errorf("Q branch should be nulled at qv=1")
		}
	}
	for _, want := range []float64{0.5, 1.0 / 6, -1.0 / 6, -0.5} {
		if !levels[math.Round(want*6)/6] {
			t.Errorf("missing I level %v in %v", want, levels)
		}
	}
}
