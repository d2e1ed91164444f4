package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/internal/config"
)

const progressInterval = 200 * time.Millisecond

// mandelbrotFlags holds the command line overrides of the configured view.
type mandelbrotFlags struct {
	x, y, scale  float64
	iterations   int
	threads      int
	color        string
	partition    string
	width        int
	height       int
	showProgress bool
}

func newMandelbrotCmd(a *app) *cobra.Command {
	var mf mandelbrotFlags
	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Render a view of the Mandelbrot set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMandelbrot(cmd, &mf)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&mf.x, "x", 0, "real part of the image centre")
	flags.Float64Var(&mf.y, "y", 0, "imaginary part of the image centre")
	flags.Float64Var(&mf.scale, "scale", 0, "distance between pixels in the complex plane")
	flags.IntVar(&mf.iterations, "iterations", 0, "maximal number of iterations")
	flags.IntVar(&mf.threads, "threads", 0, "number of work units")
	flags.StringVar(&mf.color, "color", "", "colour mode (linear, root or quadratic)")
	flags.StringVar(&mf.partition, "partition", "", "work unit layout (blocks or strips)")
	flags.IntVar(&mf.width, "width", 0, "image width in pixels")
	flags.IntVar(&mf.height, "height", 0, "image height in pixels")
	flags.BoolVar(&mf.showProgress, "progress", false, "report progress on standard error")
	return cmd
}

// apply copies the flags given on the command line into m.
func (mf *mandelbrotFlags) apply(cmd *cobra.Command, m *config.Mandelbrot) {
	changed := cmd.Flags().Changed
	if changed("x") {
		m.CenterX = mf.x
	}
	if changed("y") {
		m.CenterY = mf.y
	}
	if changed("scale") {
		m.Scale = mf.scale
	}
	if changed("iterations") {
		m.Iterations = mf.iterations
	}
	if changed("threads") {
		m.Threads = mf.threads
	}
	if changed("color") {
		m.Color = mf.color
	}
	if changed("partition") {
		m.Partition = mf.partition
	}
	if changed("width") {
		m.Width = mf.width
	}
	if changed("height") {
		m.Height = mf.height
	}
}

func (a *app) runMandelbrot(cmd *cobra.Command, mf *mandelbrotFlags) error {
	m := a.cfg.Mandelbrot
	mf.apply(cmd, &m)

	req, err := m.Request()
	if err != nil {
		return err
	}
	opts, err := m.EngineOptions()
	if err != nil {
		return err
	}
	opts = append(opts, fractal.WithLogger(a.logger), fractal.WithMetrics(a.metrics))
	engine := fractal.NewEngine(opts...)

	p := &fractal.Progress{}
	if mf.showProgress {
		done := make(chan struct{})
		defer close(done)
		go reportProgress(cmd.ErrOrStderr(), p, done)
	}

	a.logger.Info("rendering Mandelbrot set",
		"center", complex(req.CenterX, req.CenterY),
		"scale", req.Scale,
		"iterations", req.MaxIterations,
		"threads", req.Threads)
	ctx := cmd.Context()
	img, err := engine.RenderProgress(ctx, req, p)
	if err != nil {
		return err
	}
	if p.Cancelled() {
		return ctx.Err()
	}
	return a.preview.Render(cmd.OutOrStdout(), img)
}

func reportProgress(w io.Writer, p *fractal.Progress, done <-chan struct{}) {
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			fmt.Fprintf(w, "%5.1f%%\n", 100*p.Fraction())
		}
	}
}
