package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/mzsim/internal/analysis"
	"github.com/san-kum/mzsim/internal/modulator"
	"github.com/san-kum/mzsim/internal/plot"
	"github.com/san-kum/mzsim/internal/storage"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir, log)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODE\tTIME\tPANELS\tVPI\tVDC")

	for _, run := range runs {
		var device modulator.Device
		if run.Config != nil {
			device = run.Config.Device
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%g\t%g\n",
			run.ID,
			run.Mode,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			len(run.Panels),
			device.Vpi,
			device.Vdc,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir, log)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	panels, err := st.LoadPanels(runID)
	if err != nil {
		return err
	}

	if len(panels) == 0 {
		return fmt.Errorf("no data to plot")
	}

	if imageDir != "" {
		if err := os.MkdirAll(imageDir, 0755); err != nil {
			return err
		}
		for i, p := range panels {
			path := filepath.Join(imageDir, fmt.Sprintf("%s_%03d.%s", runID, i, imageFormat))
			if err := plot.SaveImage(path, p.Title, p.Kind, p.Table); err != nil {
				return err
			}
		}
		fmt.Printf("wrote %d %s file(s) to %s\n", len(panels), imageFormat, imageDir)
		return nil
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("mode: %s\n", meta.Mode)
	fmt.Printf("panels: %d\n\n", len(panels))

	for _, p := range panels {
		if err := plot.Render(os.Stdout, p.Title, p.Kind, p.Table, plot.DefaultOptions()); err != nil {
			return err
		}
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir, log)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir, log)
	panels, err := st.LoadPanels(args[0])
	if err != nil {
		return err
	}
	if panelIndex < 0 || panelIndex >= len(panels) {
		return fmt.Errorf("panel %d out of range (run has %d)", panelIndex, len(panels))
	}
	return storage.WriteCSV(os.Stdout, panels[panelIndex].Table)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir, log)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	panels, err := st.LoadPanels(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, panels)
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir, log)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	panels, err := st.LoadPanels(runID)
	if err != nil {
		return err
	}

	fmt.Printf("spectral analysis: %s\n", meta.ID)
	fmt.Printf("mode: %s\n\n", meta.Mode)

	for _, p := range panels {
		if err := analyzePanel(p); err != nil {
			log.Warn().Err(err).Str("panel", p.Title).Msg("skipping panel")
		}
	}
	return nil
}

func analyzePanel(p storage.Panel) error {
	col := "re_eout"
	if p.Kind == "transfer" {
		col = "intensity"
	}
	data, ok := p.Table.Column(col)
	if !ok {
		return fmt.Errorf("panel has no %s column", col)
	}
	x := p.Table.X()

	ps := analysis.PowerSpectrum(data)
	if len(ps) < 2 {
		return analysis.ErrTooShort
	}
	plotData := ps[:max(len(ps)/4, 2)]

	graph := asciigraph.Plot(plotData,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("power spectrum of %s (%s)", col, p.Title)),
	)
	fmt.Println(graph)
	fmt.Println()

	if len(x) < 2 || x[1] == x[0] {
		return analysis.ErrTooShort
	}
	dx := x[1] - x[0]
	freq, err := analysis.DominantFrequency(data, dx)
	if err != nil {
		return err
	}
	fmt.Printf("dominant frequency: %.4g per unit %s\n", freq, p.Table.Names[0])

	if p.Kind == "transfer" {
		est, err := analysis.EstimateVpi(x, data)
		if err != nil {
			return err
		}
		fmt.Printf("estimated vpi: %.4f V\n", est)
		fmt.Printf("extinction ratio: %.2f dB\n", analysis.ExtinctionRatioDB(data))
	}
	fmt.Println(strings.Repeat("─", 40))
	return nil
}
