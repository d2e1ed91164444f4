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

// Package testcases contains geometry fixtures for the rasteriser which
// backs the turtle canvas.  Every fixture knows the exact area it should
// cover, so that implementations can be checked without reference images.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Shape is a path filled with the nonzero winding rule.
type Shape struct {
	Name   string        // lowercase a-z and _ only
	Path   *path.Data    // the geometry to fill
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	CTM    matrix.Matrix // zero value means identity

	// Area is the covered area in device pixels.  Shapes bounded by
	// curves are flattened before filling, so their area is only
	// approximate.
	Area float64
	Tol  float64 // allowed deviation of the total coverage from Area
}

// Line is a single stroked segment, as drawn by a turtle.
type Line struct {
	Name     string
	From, To vec.Vec2
	Width    float64
	Cap      graphics.LineCapStyle
	Size     int // the canvas is Size×Size pixels
	Area     float64
	Tol      float64
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
