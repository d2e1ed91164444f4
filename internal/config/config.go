// seehuhn.de/go/fractal - deterministic fractal generators
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config loads the settings of the fractal command from a YAML
// file.  Values missing from the file keep their defaults.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/fractal"
)

// Config holds the settings for all subcommands.
type Config struct {
	Mandelbrot Mandelbrot `mapstructure:"mandelbrot"`
	Koch       Koch       `mapstructure:"koch"`
	Tree       Tree       `mapstructure:"tree"`
	Noise      Noise      `mapstructure:"noise"`
	Preview    Preview    `mapstructure:"preview"`
}

// Mandelbrot configures the escape-time renderer.
type Mandelbrot struct {
	CenterX    float64 `mapstructure:"center_x"`
	CenterY    float64 `mapstructure:"center_y"`
	Scale      float64 `mapstructure:"scale"`
	Iterations int     `mapstructure:"iterations"`
	Threads    int     `mapstructure:"threads"`
	Color      string  `mapstructure:"color"` // linear, root or quadratic
	Width      int     `mapstructure:"width"`
	Height     int     `mapstructure:"height"`

	// Workers bounds the number of work units computed at the same time.
	// Zero means one per CPU.
	Workers   int    `mapstructure:"workers"`
	Partition string `mapstructure:"partition"` // blocks or strips
}

// Koch configures the snowflake scene.
type Koch struct {
	Width     int     `mapstructure:"width"`
	Height    int     `mapstructure:"height"`
	StartX    float64 `mapstructure:"start_x"`
	StartY    float64 `mapstructure:"start_y"`
	Depth     int     `mapstructure:"depth"`
	Length    float64 `mapstructure:"length"`
	LineWidth float64 `mapstructure:"line_width"`
	Color     string  `mapstructure:"color"` // #rrggbb
}

// Tree configures the Pythagoras tree scene.  Angles are in degrees.
type Tree struct {
	Width        int     `mapstructure:"width"`
	Height       int     `mapstructure:"height"`
	Depth        int     `mapstructure:"depth"`
	TrunkWidth   float64 `mapstructure:"trunk_width"`
	TrunkLength  float64 `mapstructure:"trunk_length"`
	WidthFactor  float64 `mapstructure:"width_factor"`
	LengthFactor float64 `mapstructure:"length_factor"`
	LeftAngle    float64 `mapstructure:"left_angle"`
	RightAngle   float64 `mapstructure:"right_angle"`
}

// Noise configures the animated Perlin noise.
type Noise struct {
	Seed        int64         `mapstructure:"seed"`
	Octaves     int           `mapstructure:"octaves"`
	Frequency   float64       `mapstructure:"frequency"`
	Lacunarity  float64       `mapstructure:"lacunarity"`
	Persistence float64       `mapstructure:"persistence"`
	Width       int           `mapstructure:"width"`
	Height      int           `mapstructure:"height"`
	Zoom        int           `mapstructure:"zoom"`
	Period      time.Duration `mapstructure:"period"`
	Frames      int           `mapstructure:"frames"` // 0 runs until interrupted
}

// Preview configures the terminal output.
type Preview struct {
	Width int `mapstructure:"width"` // in terminal columns
}

// Default returns the built-in settings.
func Default() *Config {
	req := fractal.DefaultRequest()
	koch := fractal.DefaultKochScene()
	tree := fractal.DefaultTreeScene()
	noise := fractal.DefaultNoiseParams()
	return &Config{
		Mandelbrot: Mandelbrot{
			CenterX:    req.CenterX,
			CenterY:    req.CenterY,
			Scale:      req.Scale,
			Iterations: req.MaxIterations,
			Threads:    req.Threads,
			Color:      req.ColorMode.String(),
			Width:      req.Width,
			Height:     req.Height,
			Partition:  fractal.LinearBlocks.String(),
		},
		Koch: Koch{
			Width:     koch.Width,
			Height:    koch.Height,
			StartX:    koch.Start.X,
			StartY:    koch.Start.Y,
			Depth:     koch.Depth,
			Length:    koch.Length,
			LineWidth: koch.StrokeWidth,
			Color:     "#000000",
		},
		Tree: Tree{
			Width:        tree.Width,
			Height:       tree.Height,
			Depth:        tree.Depth,
			TrunkWidth:   tree.TrunkWidth,
			TrunkLength:  tree.TrunkLength,
			WidthFactor:  tree.Params.WidthFactor,
			LengthFactor: tree.Params.LengthFactor,
			LeftAngle:    50,
			RightAngle:   40,
		},
		Noise: Noise{
			Seed:        noise.Seed,
			Octaves:     noise.Octaves,
			Frequency:   noise.Frequency,
			Lacunarity:  noise.Lacunarity,
			Persistence: noise.Persistence,
			Width:       400,
			Height:      400,
			Zoom:        2,
			Period:      70 * time.Millisecond,
		},
		Preview: Preview{
			Width: 80,
		},
	}
}

// Load reads the configuration file at path.  A missing file is not an
// error and gives the default settings.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.decode(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// decode applies the YAML document in data on top of cfg.
func (cfg *Config) decode(data []byte) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if raw == nil {
		return nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// Request converts the settings into a render request.
func (m Mandelbrot) Request() (fractal.Request, error) {
	mode, err := fractal.ParseColorMode(m.Color)
	if err != nil {
		return fractal.Request{}, err
	}
	req := fractal.Request{
		CenterX:       m.CenterX,
		CenterY:       m.CenterY,
		Scale:         m.Scale,
		MaxIterations: m.Iterations,
		Threads:       m.Threads,
		ColorMode:     mode,
		Width:         m.Width,
		Height:        m.Height,
	}
	return req, req.Validate()
}

// EngineOptions returns the engine settings.
func (m Mandelbrot) EngineOptions() ([]fractal.Option, error) {
	var opts []fractal.Option
	switch m.Partition {
	case "", fractal.LinearBlocks.String():
	case fractal.ColumnStrips.String():
		opts = append(opts, fractal.WithPartition(fractal.ColumnStrips))
	default:
		return nil, fmt.Errorf("unknown partition %q", m.Partition)
	}
	if m.Workers < 0 {
		return nil, fmt.Errorf("invalid number of workers %d", m.Workers)
	} else if m.Workers > 0 {
		opts = append(opts, fractal.WithWorkers(m.Workers))
	}
	return opts, nil
}

// Scene converts the settings into a snowflake scene.
func (k Koch) Scene() (fractal.KochScene, error) {
	c, err := parseColor(k.Color)
	if err != nil {
		return fractal.KochScene{}, err
	}
	return fractal.KochScene{
		Width:       k.Width,
		Height:      k.Height,
		Start:       fractal.TurtleState{X: k.StartX, Y: k.StartY},
		Depth:       k.Depth,
		Length:      k.Length,
		StrokeColor: c,
		StrokeWidth: k.LineWidth,
	}, nil
}

// Scene converts the settings into a tree scene, growing upwards from the
// middle of the bottom edge.
func (t Tree) Scene() (fractal.TreeScene, error) {
	params := fractal.TreeParams{
		WidthFactor:  t.WidthFactor,
		LengthFactor: t.LengthFactor,
		LeftAngle:    t.LeftAngle * math.Pi / 180,
		RightAngle:   t.RightAngle * math.Pi / 180,
	}
	if err := params.Validate(); err != nil {
		return fractal.TreeScene{}, err
	}
	return fractal.TreeScene{
		Width:  t.Width,
		Height: t.Height,
		Start: fractal.TurtleState{
			X:       float64(t.Width) / 2,
			Y:       float64(t.Height),
			Heading: 3 * math.Pi / 2,
		},
		Params:      params,
		Depth:       t.Depth,
		TrunkWidth:  t.TrunkWidth,
		TrunkLength: t.TrunkLength,
	}, nil
}

// Params converts the settings into noise parameters.
func (n Noise) Params() fractal.NoiseParams {
	return fractal.NoiseParams{
		Seed:        n.Seed,
		Octaves:     n.Octaves,
		Frequency:   n.Frequency,
		Lacunarity:  n.Lacunarity,
		Persistence: n.Persistence,
	}
}

func parseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
