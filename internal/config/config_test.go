package config

import (
	"errors"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/fractal"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fractal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefaultsMatchLibrary(t *testing.T) {
	cfg := Default()

	req, err := cfg.Mandelbrot.Request()
	require.NoError(t, err)
	assert.Equal(t, fractal.DefaultRequest(), req)

	koch, err := cfg.Koch.Scene()
	require.NoError(t, err)
	assert.Equal(t, fractal.DefaultKochScene(), koch)

	tree, err := cfg.Tree.Scene()
	require.NoError(t, err)
	want := fractal.DefaultTreeScene()
	assert.Equal(t, want.Start, tree.Start)
	assert.InDelta(t, want.Params.LeftAngle, tree.Params.LeftAngle, 1e-12)
	assert.InDelta(t, want.Params.RightAngle, tree.Params.RightAngle, 1e-12)
	assert.Equal(t, want.Depth, tree.Depth)

	assert.Equal(t, fractal.DefaultNoiseParams(), cfg.Noise.Params())
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
mandelbrot:
  center_x: -0.5
  iterations: "500"   # strings are converted
  color: quadratic
  partition: strips
  workers: 3
koch:
  depth: 4
  color: "#ff8000"
tree:
  left_angle: 30
noise:
  period: 250ms
  frames: 10
preview:
  width: 120
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, -0.5, cfg.Mandelbrot.CenterX)
	assert.Equal(t, 500, cfg.Mandelbrot.Iterations)
	assert.Equal(t, 0.005, cfg.Mandelbrot.Scale, "unset values keep their default")
	assert.Equal(t, 250*time.Millisecond, cfg.Noise.Period)
	assert.Equal(t, 10, cfg.Noise.Frames)
	assert.Equal(t, 120, cfg.Preview.Width)

	req, err := cfg.Mandelbrot.Request()
	require.NoError(t, err)
	assert.Equal(t, fractal.Quadratic, req.ColorMode)

	opts, err := cfg.Mandelbrot.EngineOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	koch, err := cfg.Koch.Scene()
	require.NoError(t, err)
	assert.Equal(t, 4, koch.Depth)
	assert.Equal(t, color.RGBA{R: 255, G: 128, A: 255}, koch.StrokeColor)

	tree, err := cfg.Tree.Scene()
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/6, tree.Params.LeftAngle, 1e-12)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"unknown section": "fractals:\n  depth: 3\n",
		"unknown key":     "koch:\n  dept: 3\n",
		"bad type":        "koch:\n  depth: [1, 2]\n",
		"bad yaml":        "koch: [\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestConversionErrors(t *testing.T) {
	cfg := Default()
	cfg.Mandelbrot.Color = "purple"
	_, err := cfg.Mandelbrot.Request()
	assert.True(t, errors.Is(err, fractal.ErrInvalidParameter))

	cfg = Default()
	cfg.Mandelbrot.Iterations = 0
	_, err = cfg.Mandelbrot.Request()
	assert.ErrorIs(t, err, fractal.ErrInvalidParameter)

	cfg = Default()
	cfg.Mandelbrot.Partition = "spiral"
	_, err = cfg.Mandelbrot.EngineOptions()
	assert.Error(t, err)

	cfg = Default()
	cfg.Koch.Color = "black"
	_, err = cfg.Koch.Scene()
	assert.Error(t, err)

	cfg = Default()
	cfg.Tree.RightAngle = 120
	_, err = cfg.Tree.Scene()
	assert.ErrorIs(t, err, fractal.ErrInvalidParameter)
}

func TestEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, "# nothing here\n"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
