package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/mzsim/internal/config"
	"github.com/san-kum/mzsim/internal/experiment"
	"github.com/san-kum/mzsim/internal/viz"
)

var (
	dataDir  string
	logLevel string
	log      zerolog.Logger

	configFile  string
	preset      string
	noSave      bool
	imageDir    string
	imageFormat string

	vpi, vdc      float64
	voltage       float64
	iv, qv, pv    float64
	inRe, inIm    float64
	start, stop   float64
	points        int
	voltages      []float64
	ivs, qvs      []float64
	panelIndex    int
	frameInterval time.Duration
	themeName     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "mzsim",
		Short:         "mach-zehnder modulator transfer-function lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
				Level(lvl).
				With().Timestamp().Logger()
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".mzsim", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run [mode]",
		Short: "run a sweep",
		Long:  "run a sweep; modes: " + strings.Join(experiment.NewRegistry().ListModes(), ", "),
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	addSweepFlags(runCmd)
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")
	runCmd.Flags().StringVar(&imageDir, "images", "", "write one image per panel into this directory")
	runCmd.Flags().StringVar(&imageFormat, "format", "png", "image format (png, svg)")

	constellationCmd := &cobra.Command{
		Use:   "constellation",
		Short: "print the IQ constellation as a scatter",
		Args:  cobra.NoArgs,
		RunE:  runConstellation,
	}
	addSweepFlags(constellationCmd)

	animateCmd := &cobra.Command{
		Use:   "animate [mode]",
		Short: "animate a sweep family in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnimate,
	}
	addSweepFlags(animateCmd)
	animateCmd.Flags().DurationVar(&frameInterval, "interval", 0, "frame interval (default 500ms)")
	animateCmd.Flags().StringVar(&themeName, "theme", viz.ThemeLab.Name,
		"color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&imageDir, "images", "", "write images into this directory instead of the terminal")
	plotCmd.Flags().StringVar(&imageFormat, "format", "png", "image format (png, svg)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export one panel of a run to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().IntVar(&panelIndex, "panel", 0, "panel index")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "spectral analysis of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [mode]",
		Short: "list available presets for a mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for mode: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	modesCmd := &cobra.Command{
		Use:   "modes",
		Short: "list sweep modes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, m := range experiment.NewRegistry().ListModes() {
				fmt.Println(m)
			}
		},
	}

	rootCmd.AddCommand(runCmd, constellationCmd, animateCmd, listCmd, plotCmd, exportCmd,
		exportCSVCmd, exportJSONCmd, analyzeCmd, presetsCmd, modesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addSweepFlags(cmd *cobra.Command) {
	def := config.DefaultConfig()
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
	f.Float64Var(&vpi, "vpi", def.Device.Vpi, "half-wave voltage")
	f.Float64Var(&vdc, "vdc", def.Device.Vdc, "dc bias voltage")
	f.Float64Var(&voltage, "v", def.Drive.Voltage, "rf drive voltage (time)")
	f.Float64Var(&iv, "iv", def.Drive.IV, "in-phase drive voltage (dual)")
	f.Float64Var(&qv, "qv", def.Drive.QV, "quadrature drive voltage (dual)")
	f.Float64Var(&pv, "pv", def.Drive.Phase, "quadrature phase in radians")
	f.Float64Var(&inRe, "re", def.Input.Re, "input field real part")
	f.Float64Var(&inIm, "im", def.Input.Im, "input field imaginary part")
	f.Float64Var(&start, "start", 0, "grid start")
	f.Float64Var(&stop, "stop", 0, "grid stop")
	f.IntVar(&points, "points", 0, "grid points (0 selects the mode default)")
	f.Float64SliceVar(&voltages, "voltages", def.Drive.Voltages, "voltage family")
	f.Float64SliceVar(&ivs, "ivs", def.Drive.IVs, "in-phase voltage set")
	f.Float64SliceVar(&qvs, "qvs", def.Drive.QVs, "quadrature voltage set")
}
