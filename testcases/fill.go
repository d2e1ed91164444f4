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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var fillCases = []Shape{
	{
		Name:   "triangle",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Area:   880,
		Tol:    0.1,
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Area:   34 * 34,
		Tol:    0.1,
	},
	{
		Name:   "rectangle_fractional",
		Path:   rectangle(10.25, 10.5, 40.75, 30.5),
		Width:  64,
		Height: 64,
		Area:   30.5 * 20,
		Tol:    0.1,
	},
	{
		// both squares wind the same way, so the overlap is covered once
		Name:   "overlap_nonzero",
		Path:   overlappingSquares(10, 25, 30),
		Width:  64,
		Height: 64,
		Area:   900 + 900 - 225,
		Tol:    0.1,
	},
	{
		Name:   "clipped_top_left",
		Path:   rectangle(-10, -10, 20, 20),
		Width:  64,
		Height: 64,
		Area:   400,
		Tol:    0.1,
	},
	{
		Name:   "left_of_canvas",
		Path:   rectangle(-30, 10, 10, 20),
		Width:  64,
		Height: 64,
		Area:   100,
		Tol:    0.1,
	},
	{
		Name:   "outside",
		Path:   rectangle(70, 70, 90, 90),
		Width:  64,
		Height: 64,
		Area:   0,
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 25),
		Width:  64,
		Height: 64,
		Area:   math.Pi * 25 * 25,
		Tol:    15,
	},
	{
		Name:   "quadratic",
		Path:   quadraticCurve(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Area:   880 * 2 / 3,
		Tol:    10,
	},
}

var ctmCases = []Shape{
	{
		Name:   "scale_2x",
		Path:   rectangle(0, 0, 20, 20),
		Width:  128,
		Height: 128,
		CTM:    matrix.Scale(2, 2).Translate(24, 24),
		Area:   1600,
		Tol:    0.2,
	},
	{
		Name:   "rotate_45deg",
		Path:   rectangle(-10, -10, 10, 10),
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
		Area:   400,
		Tol:    0.1,
	},
	{
		Name:   "scale_2x_1y",
		Path:   rectangle(-10, -10, 10, 10),
		Width:  128,
		Height: 64,
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
		Area:   800,
		Tol:    0.1,
	},
}

func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// overlappingSquares builds two squares of side a, with top left corners
// at (x1, x1) and (x2, x2).
func overlappingSquares(x1, x2, a float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, x1)).
		LineTo(pt(x1+a, x1)).
		LineTo(pt(x1+a, x1+a)).
		LineTo(pt(x1, x1+a)).
		Close().
		MoveTo(pt(x2, x2)).
		LineTo(pt(x2+a, x2)).
		LineTo(pt(x2+a, x2+a)).
		LineTo(pt(x2, x2+a)).
		Close()
}

// quadraticCurve builds a closed shape with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close()
}

func circle(cx, cy, r float64) *path.Data {
	k := r * kappa
	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		Close()
}
