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

package fractal

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/pdf/graphics"
)

// KochScene describes a Koch snowflake drawn onto a fresh canvas.
type KochScene struct {
	Width, Height int
	Start         TurtleState
	Depth         int
	Length        float64
	StrokeColor   color.RGBA
	StrokeWidth   float64
}

// DefaultKochScene returns a 600×600 snowflake of depth 9, with sides of
// length 500, drawn by a thin black line.
func DefaultKochScene() KochScene {
	return KochScene{
		Width:       600,
		Height:      600,
		Start:       TurtleState{X: 50, Y: 445},
		Depth:       9,
		Length:      500,
		StrokeColor: color.RGBA{A: 255},
		StrokeWidth: 0.1,
	}
}

// Render draws the scene on a white background.
func (s KochScene) Render() (*image.RGBA, error) {
	c, err := newSceneCanvas(s.Width, s.Height, s.Start)
	if err != nil {
		return nil, err
	}
	c.SetStrokeColor(s.StrokeColor)
	c.SetStrokeWidth(s.StrokeWidth)
	if err := KochSnowflake(c, s.Depth, s.Length); err != nil {
		return nil, err
	}
	return c.Image(), nil
}

// TreeScene describes a Pythagoras tree drawn onto a fresh canvas.
type TreeScene struct {
	Width, Height int
	Start         TurtleState
	Params        TreeParams
	Depth         int
	TrunkWidth    float64
	TrunkLength   float64
}

// DefaultTreeScene returns a 700×700 tree of depth 15, growing upwards from
// the middle of the bottom edge.
func DefaultTreeScene() TreeScene {
	return TreeScene{
		Width:       700,
		Height:      700,
		Start:       TurtleState{X: 350, Y: 700, Heading: 3 * math.Pi / 2},
		Params:      DefaultTreeParams(),
		Depth:       15,
		TrunkWidth:  50,
		TrunkLength: 140,
	}
}

// Render draws the scene on a white background.
func (s TreeScene) Render() (*image.RGBA, error) {
	c, err := newSceneCanvas(s.Width, s.Height, s.Start)
	if err != nil {
		return nil, err
	}
	err = PythagorasTree(c, s.Params, s.Depth, s.TrunkWidth, s.TrunkLength)
	if err != nil {
		return nil, err
	}
	return c.Image(), nil
}

func newSceneCanvas(width, height int, start TurtleState) (*Canvas, error) {
	c, err := NewCanvas(width, height, color.White)
	if err != nil {
		return nil, err
	}
	c.Cap = graphics.LineCapSquare
	c.SetState(start)
	return c, nil
}
