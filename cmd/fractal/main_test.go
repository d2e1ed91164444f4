package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/fractal"
)

const halfBlock = "▀"

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fractal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMandelbrot(t *testing.T) {
	out, _, err := run(t, "mandelbrot",
		"--width", "40", "--height", "20", "--scale", "0.1",
		"--threads", "4", "--preview-width", "40")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 10)
	for _, l := range lines {
		assert.Equal(t, strings.Repeat(halfBlock, 40), l)
	}
}

func TestMandelbrotFlagsOverrideConfig(t *testing.T) {
	path := writeConfig(t, `
mandelbrot:
  width: 10
  height: 10
  scale: 0.3
  iterations: 20
`)
	out, _, err := run(t, "--config", path, "mandelbrot")
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(out, "\n"))

	out, stderr, err := run(t, "--config", path, "--log-level", "info",
		"mandelbrot", "--width", "24", "--height", "12", "--iterations", "50", "--progress")
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(out, "\n"))
	assert.Equal(t, 24*6, strings.Count(out, halfBlock))
	assert.Contains(t, stderr, "iterations=50")
	assert.Contains(t, stderr, "scale=0.3")
}

func TestMandelbrotStrips(t *testing.T) {
	_, _, err := run(t, "mandelbrot", "--width", "30", "--height", "30",
		"--scale", "0.1", "--threads", "7", "--partition", "strips")
	require.NoError(t, err)

	_, _, err = run(t, "mandelbrot", "--partition", "diagonal")
	assert.Error(t, err)
}

func TestMandelbrotMetrics(t *testing.T) {
	_, stderr, err := run(t, "--metrics", "mandelbrot",
		"--width", "16", "--height", "16", "--scale", "0.2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "fractal_pixels_total 256")
	assert.Contains(t, stderr, `fractal_renders_total{outcome="complete"} 1`)
}

func TestMandelbrotInvalid(t *testing.T) {
	_, _, err := run(t, "mandelbrot", "--iterations", "0")
	assert.ErrorIs(t, err, fractal.ErrInvalidParameter)

	_, _, err = run(t, "mandelbrot", "--color", "rainbow")
	assert.Error(t, err)
}

func TestMandelbrotCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"mandelbrot", "--width", "20", "--height", "20"})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.ExecuteContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestKoch(t *testing.T) {
	path := writeConfig(t, `
koch:
  width: 60
  height: 60
  start_x: 5
  start_y: 45
  length: 50
  line_width: 1
  color: "#ff0000"
`)
	out, stderr, err := run(t, "--config", path, "--log-level", "info", "koch", "--depth", "3")
	require.NoError(t, err)
	assert.Equal(t, 30, strings.Count(out, "\n"))
	assert.Contains(t, stderr, "drawing Koch snowflake")
	assert.Contains(t, stderr, "depth=3")

	_, _, err = run(t, "koch", "--color", "red")
	assert.Error(t, err)
}

func TestTree(t *testing.T) {
	path := writeConfig(t, `
tree:
  width: 70
  height: 70
  trunk_width: 5
  trunk_length: 14
`)
	out, _, err := run(t, "--config", path, "tree", "--depth", "6", "--left", "45", "--right", "45")
	require.NoError(t, err)
	assert.Equal(t, 35, strings.Count(out, "\n"))

	_, _, err = run(t, "--config", path, "tree", "--left=-10")
	assert.ErrorIs(t, err, fractal.ErrInvalidParameter)
}

func TestNoise(t *testing.T) {
	path := writeConfig(t, `
noise:
  width: 20
  height: 10
  zoom: 1
  period: 1ms
`)
	out, _, err := run(t, "--config", path, "noise", "--frames", "2", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, 2*20*5, strings.Count(out, halfBlock))
}

func TestNoiseZoom(t *testing.T) {
	path := writeConfig(t, `
noise:
  width: 10
  height: 10
  zoom: 3
  period: 1ms
  frames: 1
`)
	out, _, err := run(t, "--config", path, "noise")
	require.NoError(t, err)
	assert.Equal(t, 30*15, strings.Count(out, halfBlock))
}

func TestBadFlags(t *testing.T) {
	_, _, err := run(t, "--log-level", "loud", "koch")
	assert.Error(t, err)

	path := writeConfig(t, "mandelbrot:\n  colour: root\n")
	_, _, err = run(t, "--config", path, "mandelbrot")
	assert.Error(t, err, "unknown keys are rejected")
}
