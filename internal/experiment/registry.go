package experiment

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/mzsim/internal/config"
	"github.com/san-kum/mzsim/internal/metrics"
	"github.com/san-kum/mzsim/internal/modulator"
	"github.com/san-kum/mzsim/internal/sweep"
)

var ErrUnknownMode = errors.New("experiment: unknown mode")

// RunFunc collects the panels of one sweep mode.
type RunFunc func(ctx context.Context, cfg *config.Config) ([]Panel, error)

type Registry struct {
	modes   map[string]RunFunc
	metrics map[string]func() []metrics.Metric
}

func NewRegistry() *Registry {
	r := &Registry{
		modes:   make(map[string]RunFunc),
		metrics: make(map[string]func() []metrics.Metric),
	}

	r.modes[config.ModeTime] = runTime
	r.modes[config.ModeTransfer] = runTransfer
	r.modes[config.ModeDual] = runDual
	r.modes[config.ModeFamily] = runFamily
	r.modes[config.ModeDualFamily] = runDualFamily
	r.modes[config.ModeConstellation] = runConstellation

	r.metrics[config.ModeTransfer] = func() []metrics.Metric {
		return []metrics.Metric{
			metrics.NewExtinctionRatio(),
			metrics.NewMeanTransmission(),
			metrics.NewPeakPower(),
			metrics.NewNullPosition(),
		}
	}

	return r
}

func (r *Registry) GetMode(name string) (RunFunc, error) {
	fn, ok := r.modes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, name)
	}
	return fn, nil
}

func (r *Registry) ListModes() []string {
	names := make([]string, 0, len(r.modes))
	for name := range r.modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics(mode string) []metrics.Metric {
	if fn, ok := r.metrics[mode]; ok {
		return fn()
	}
	return []metrics.Metric{
		metrics.NewMeanTransmission(),
		metrics.NewPeakPower(),
	}
}

func timePanel(s *sweep.TimeSeries) Panel {
	return Panel{
		Title: fmt.Sprintf("V=%.2f", s.V),
		Kind:  KindTime,
		Table: s.Table(),
		X:     s.Theta,
		Ein:   s.Ein,
		Eout:  s.Eout,
	}
}

func dualPanel(s *sweep.DualSeries) Panel {
	return Panel{
		Title: fmt.Sprintf("Iv=%.2f Qv=%.2f", s.IV, s.QV),
		Kind:  KindDual,
		Table: s.Table(),
		X:     s.Theta,
		Ein:   s.Ein,
		Eout:  s.Eout,
	}
}

func constant(z complex128, n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = z
	}
	return out
}

func runTime(ctx context.Context, cfg *config.Config) ([]Panel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mzm, err := modulator.NewMZM(cfg.Device)
	if err != nil {
		return nil, err
	}
	grid, err := cfg.Grid()
	if err != nil {
		return nil, err
	}
	s, err := sweep.Time(mzm, cfg.Drive.Voltage, grid)
	if err != nil {
		return nil, err
	}
	return []Panel{timePanel(s)}, nil
}

func runTransfer(ctx context.Context, cfg *config.Config) ([]Panel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mzm, err := modulator.NewMZM(cfg.Device)
	if err != nil {
		return nil, err
	}
	grid, err := cfg.Grid()
	if err != nil {
		return nil, err
	}
	s, err := sweep.Transfer(mzm, cfg.Field(), grid)
	if err != nil {
		return nil, err
	}
	return []Panel{{
		Title: fmt.Sprintf("Ein=%v", s.Ein),
		Kind:  KindTransfer,
		Table: s.Table(),
		X:     s.Voltage,
		Ein:   constant(s.Ein, s.Len()),
		Eout:  s.Eout,
	}}, nil
}

func runDual(ctx context.Context, cfg *config.Config) ([]Panel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	iq, err := modulator.NewIQ(cfg.Device)
	if err != nil {
		return nil, err
	}
	grid, err := cfg.Grid()
	if err != nil {
		return nil, err
	}
	s, err := sweep.DualTime(iq, cfg.Drive.IV, cfg.Drive.QV, cfg.Drive.Phase, grid)
	if err != nil {
		return nil, err
	}
	return []Panel{dualPanel(s)}, nil
}

func runFamily(ctx context.Context, cfg *config.Config) ([]Panel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mzm, err := modulator.NewMZM(cfg.Device)
	if err != nil {
		return nil, err
	}
	grid, err := cfg.Grid()
	if err != nil {
		return nil, err
	}
	family, err := sweep.TimeFamily(mzm, cfg.Drive.Voltages, grid)
	if err != nil {
		return nil, err
	}
	panels := make([]Panel, len(family))
	for i, s := range family {
		panels[i] = timePanel(s)
	}
	return panels, nil
}

func runDualFamily(ctx context.Context, cfg *config.Config) ([]Panel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	iq, err := modulator.NewIQ(cfg.Device)
	if err != nil {
		return nil, err
	}
	grid, err := cfg.Grid()
	if err != nil {
		return nil, err
	}
	family, err := sweep.DualFamily(iq, cfg.Drive.IVs, cfg.Drive.QVs, cfg.Drive.Phase, grid)
	if err != nil {
		return nil, err
	}
	panels := make([]Panel, len(family))
	for i, s := range family {
		panels[i] = dualPanel(s)
	}
	return panels, nil
}

func runConstellation(ctx context.Context, cfg *config.Config) ([]Panel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	iq, err := modulator.NewIQ(cfg.Device)
	if err != nil {
		return nil, err
	}
	s, err := sweep.Constellation(iq, cfg.Field(), cfg.Drive.IVs, cfg.Drive.QVs, cfg.Drive.Phase)
	if err != nil {
		return nil, err
	}
	return []Panel{{
		Title: fmt.Sprintf("%dx%d", len(cfg.Drive.IVs), len(cfg.Drive.QVs)),
		Kind:  KindConstellation,
		Table: s.Table(),
		X:     s.IV,
		Ein:   constant(s.Ein, s.Len()),
		Eout:  s.Eout,
	}}, nil
}
