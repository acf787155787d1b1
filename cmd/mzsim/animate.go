package main

import (
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/mzsim/internal/config"
	"github.com/san-kum/mzsim/internal/experiment"
	"github.com/san-kum/mzsim/internal/metrics"
	"github.com/san-kum/mzsim/internal/viz"
)

func runAnimate(cmd *cobra.Command, args []string) error {
	mode := config.ModeFamily
	if len(args) > 0 {
		mode = args[0]
	}
	if !slices.Contains(viz.ThemeNames(), themeName) {
		return fmt.Errorf("unknown theme: %s (available: %v)", themeName, viz.ThemeNames())
	}
	cfg, err := resolveConfig(cmd, mode)
	if err != nil {
		return err
	}

	result, err := execute(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	frames := make([]viz.Frame, len(result.Panels))
	ms := experiment.NewRegistry().DefaultMetrics(cfg.Mode)
	for i, p := range result.Panels {
		metrics.Observe(ms, p.X, p.Ein, p.Eout)
		values := make(map[string]float64, len(ms))
		for _, m := range ms {
			values[m.Name()] = m.Value()
		}
		frames[i] = viz.Frame{Title: p.Title, Kind: p.Kind, Table: p.Table, Metrics: values}
	}

	model := viz.NewModel(fmt.Sprintf("%s sweep", cfg.Mode), frames).WithTheme(themeName)
	if frameInterval > 0 {
		model = model.WithInterval(frameInterval)
	}

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
