package main

import (
	"errors"
	"image"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"seehuhn.de/go/fractal"
)

var errEnough = errors.New("frame limit reached")

// noiseFlags holds the command line overrides of the noise settings.
type noiseFlags struct {
	seed   int64
	frames int
	period time.Duration
}

func newNoiseCmd(a *app) *cobra.Command {
	var nf noiseFlags
	cmd := &cobra.Command{
		Use:   "noise",
		Short: "Animate a Perlin noise field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runNoise(cmd, &nf)
		},
	}
	flags := cmd.Flags()
	flags.Int64Var(&nf.seed, "seed", 0, "noise seed")
	flags.IntVar(&nf.frames, "frames", 0, "number of frames (0 runs until interrupted)")
	flags.DurationVar(&nf.period, "period", 0, "time between frames")
	return cmd
}

func (a *app) runNoise(cmd *cobra.Command, nf *noiseFlags) error {
	n := a.cfg.Noise
	changed := cmd.Flags().Changed
	if changed("seed") {
		n.Seed = nf.seed
	}
	if changed("frames") {
		n.Frames = nf.frames
	}
	if changed("period") {
		n.Period = nf.period
	}

	field, err := fractal.NewNoiseField(n.Params())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	out := termenv.NewOutput(w)
	_, lines := a.preview.Size(n.Width*max(n.Zoom, 1), n.Height*max(n.Zoom, 1))

	count := 0
	err = field.Run(cmd.Context(), n.Width, n.Height, n.Period, func(img *image.Gray) error {
		if count > 0 {
			out.CursorPrevLine(lines)
		}
		if err := a.preview.Render(w, fractal.Upscale(img, n.Zoom)); err != nil {
			return err
		}
		count++
		a.logger.Debug("noise frame", "t", field.Time())
		if n.Frames > 0 && count >= n.Frames {
			return errEnough
		}
		return nil
	})
	if errors.Is(err, errEnough) {
		err = nil
	}
	return err
}
