package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/san-kum/mzsim/internal/config"
	"github.com/san-kum/mzsim/internal/experiment"
	"github.com/san-kum/mzsim/internal/plot"
	"github.com/san-kum/mzsim/internal/storage"
)

// resolveConfig layers defaults, preset, config file and explicitly set flags,
// in that order.
func resolveConfig(cmd *cobra.Command, mode string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		presetMode := mode
		if presetMode == "" {
			presetMode = config.DefaultMode
		}
		p := config.GetPreset(presetMode, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(presetMode))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if mode != "" {
		cfg.Mode = mode
	}

	flags := cmd.Flags()
	if flags.Changed("vpi") {
		cfg.Device.Vpi = vpi
	}
	if flags.Changed("vdc") {
		cfg.Device.Vdc = vdc
	}
	if flags.Changed("v") {
		cfg.Drive.Voltage = voltage
	}
	if flags.Changed("iv") {
		cfg.Drive.IV = iv
	}
	if flags.Changed("qv") {
		cfg.Drive.QV = qv
	}
	if flags.Changed("pv") {
		cfg.Drive.Phase = pv
	}
	if flags.Changed("re") {
		cfg.Input.Re = inRe
	}
	if flags.Changed("im") {
		cfg.Input.Im = inIm
	}
	if flags.Changed("start") {
		cfg.Sweep.Start = start
	}
	if flags.Changed("stop") {
		cfg.Sweep.Stop = stop
	}
	if flags.Changed("points") {
		cfg.Sweep.Points = points
	}
	if flags.Changed("voltages") {
		cfg.Drive.Voltages = voltages
	}
	if flags.Changed("ivs") {
		cfg.Drive.IVs = ivs
	}
	if flags.Changed("qvs") {
		cfg.Drive.QVs = qvs
	}

	return cfg, nil
}

func execute(ctx context.Context, cfg *config.Config) (*experiment.Result, error) {
	exp := experiment.New(cfg, log)
	if err := exp.Setup(experiment.NewRegistry()); err != nil {
		return nil, err
	}
	return exp.Run(ctx)
}

func runSweep(cmd *cobra.Command, args []string) error {
	mode := ""
	if len(args) > 0 {
		mode = args[0]
	}
	cfg, err := resolveConfig(cmd, mode)
	if err != nil {
		return err
	}

	fmt.Printf("running %s sweep...\n", cfg.Mode)
	result, err := execute(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", result.Elapsed)
	fmt.Printf("panels: %d\n", len(result.Panels))

	if !noSave {
		st := storage.New(dataDir, log)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg, result)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	if imageDir != "" {
		if err := os.MkdirAll(imageDir, 0755); err != nil {
			return err
		}
		for i, p := range result.Panels {
			path := filepath.Join(imageDir, fmt.Sprintf("%s_%03d.%s", result.Mode, i, imageFormat))
			if err := plot.SaveImage(path, p.Title, p.Kind, p.Table); err != nil {
				return fmt.Errorf("panel %d: %w", i, err)
			}
			log.Debug().Str("file", path).Msg("wrote image")
		}
		fmt.Printf("wrote %d %s file(s) to %s\n", len(result.Panels), imageFormat, imageDir)
	}

	printMetrics(result.Metrics)
	return nil
}

func printMetrics(m map[string]float64) {
	if len(m) == 0 {
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Println("\nmetrics:")
	for _, k := range keys {
		fmt.Printf("  %s: %.6g\n", k, m[k])
	}
}

func runConstellation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, config.ModeConstellation)
	if err != nil {
		return err
	}
	result, err := execute(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	for _, p := range result.Panels {
		if err := plot.Render(os.Stdout, p.Title, p.Kind, p.Table, plot.DefaultOptions()); err != nil {
			return err
		}
		for i := range p.Eout {
			fmt.Printf("  Iv=%-6.3g Qv=%-6.3g Eout=%.4f\n", p.Table.Columns[0][i], p.Table.Columns[1][i], p.Eout[i])
		}
	}
	return nil
}
