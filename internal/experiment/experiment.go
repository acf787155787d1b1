package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/san-kum/mzsim/internal/config"
	"github.com/san-kum/mzsim/internal/metrics"
	"github.com/san-kum/mzsim/internal/sweep"
)

// Panel kinds, used by renderers to pick a chart type.
const (
	KindTime          = "time"
	KindTransfer      = "transfer"
	KindDual          = "dual"
	KindConstellation = "constellation"
)

// Panel is one collected series: a column table for storage and plotting plus
// the aligned complex fields the metrics observe.
type Panel struct {
	Title string
	Kind  string
	Table *sweep.Table
	X     []float64
	Ein   []complex128
	Eout  []complex128
}

type Result struct {
	Mode    string
	Panels  []Panel
	Metrics map[string]float64
	Elapsed time.Duration
}

type Experiment struct {
	cfg     *config.Config
	run     RunFunc
	metrics []metrics.Metric
	log     zerolog.Logger
}

func New(cfg *config.Config, log zerolog.Logger) *Experiment {
	return &Experiment{
		cfg: cfg,
		log: log.With().Str("component", "experiment").Str("mode", cfg.Mode).Logger(),
	}
}

// Setup validates the configuration and resolves the mode and its metrics.
func (e *Experiment) Setup(r *Registry) error {
	if err := e.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	run, err := r.GetMode(e.cfg.Mode)
	if err != nil {
		return err
	}
	e.run = run
	e.metrics = r.DefaultMetrics(e.cfg.Mode)
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.run == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	e.log.Debug().
		Float64("vpi", e.cfg.Device.Vpi).
		Float64("vdc", e.cfg.Device.Vdc).
		Msg("starting sweep")

	start := time.Now()
	panels, err := e.run(ctx, e.cfg)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Mode:    e.cfg.Mode,
		Panels:  panels,
		Metrics: make(map[string]float64),
		Elapsed: time.Since(start),
	}

	for i, p := range panels {
		metrics.Observe(e.metrics, p.X, p.Ein, p.Eout)
		for _, m := range e.metrics {
			key := m.Name()
			if len(panels) > 1 {
				key = fmt.Sprintf("%s[%d:%s]", m.Name(), i, p.Title)
			}
			result.Metrics[key] = m.Value()
		}
	}

	e.log.Info().
		Int("panels", len(panels)).
		Dur("elapsed", result.Elapsed).
		Msg("sweep complete")

	return result, nil
}
