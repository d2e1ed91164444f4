package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/internal/config"
	"seehuhn.de/go/fractal/internal/logging"
	"seehuhn.de/go/fractal/internal/preview"
)

// app holds the state shared by all subcommands.  It is filled in by the
// root command before a subcommand runs.
type app struct {
	flags rootFlags

	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *fractal.Metrics
	preview  *preview.Renderer
}

// rootFlags holds the persistent flags shared by all subcommands.
type rootFlags struct {
	configPath   string
	logLevel     string
	previewWidth int
	dumpMetrics  bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "fractal",
		Short: "Render fractals in the terminal",
		Long: `Fractal renders the Mandelbrot set, the Koch snowflake, a Pythagoras
tree and animated Perlin noise, and shows the result as coloured text.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !a.flags.dumpMetrics {
				return nil
			}
			return writeMetrics(cmd.ErrOrStderr(), a.registry)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.flags.configPath, "config", "", "YAML configuration file")
	flags.StringVar(&a.flags.logLevel, "log-level", "warn", "log level (debug, info, warn or error)")
	flags.IntVar(&a.flags.previewWidth, "preview-width", 0, "preview width in terminal columns (default from config)")
	flags.BoolVar(&a.flags.dumpMetrics, "metrics", false, "print the collected metrics on exit")

	rootCmd.AddCommand(
		newMandelbrotCmd(a),
		newKochCmd(a),
		newTreeCmd(a),
		newNoiseCmd(a),
	)
	return rootCmd
}

// Execute runs the command line interface.
func Execute() {
	ctx, stop := signalContext(context.Background())
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	level, err := logging.ParseLevel(a.flags.logLevel)
	if err != nil {
		return err
	}
	a.logger = logging.NewWriter(cmd.ErrOrStderr(), level)

	path := a.flags.configPath
	a.cfg, err = config.Load(path)
	if err != nil {
		return err
	}
	if path != "" {
		a.logger.Debug("configuration loaded", "path", path)
	}

	if cmd.Flags().Changed("preview-width") {
		a.cfg.Preview.Width = a.flags.previewWidth
	}
	a.preview = newPreview(cmd.OutOrStdout(), a.cfg.Preview.Width)

	a.registry = prometheus.NewRegistry()
	a.metrics, err = fractal.NewMetrics(a.registry)
	return err
}

// newPreview uses the colours supported by the terminal if w is one, and
// plain characters otherwise.
func newPreview(w io.Writer, width int) *preview.Renderer {
	if f, ok := w.(*os.File); ok {
		return preview.NewWithProfile(width, termenv.NewOutput(f).EnvColorProfile())
	}
	return preview.NewWithProfile(width, termenv.Ascii)
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
