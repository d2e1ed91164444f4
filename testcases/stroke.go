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

	"seehuhn.de/go/pdf/graphics"
)

var lineCases = []Line{
	{
		Name:  "horizontal_butt",
		From:  pt(10, 32),
		To:    pt(54, 32),
		Width: 8,
		Cap:   graphics.LineCapButt,
		Size:  64,
		Area:  44 * 8,
		Tol:   0.1,
	},
	{
		Name:  "horizontal_square",
		From:  pt(10, 32),
		To:    pt(54, 32),
		Width: 8,
		Cap:   graphics.LineCapSquare,
		Size:  64,
		Area:  52 * 8,
		Tol:   0.1,
	},
	{
		Name:  "horizontal_round",
		From:  pt(10, 32),
		To:    pt(54, 32),
		Width: 8,
		Cap:   graphics.LineCapRound,
		Size:  64,
		Area:  44*8 + math.Pi*16,
		Tol:   4,
	},
	{
		Name:  "backwards",
		From:  pt(54, 32),
		To:    pt(10, 32),
		Width: 8,
		Cap:   graphics.LineCapButt,
		Size:  64,
		Area:  44 * 8,
		Tol:   0.1,
	},
	{
		Name:  "diagonal",
		From:  pt(10, 10),
		To:    pt(50, 40),
		Width: 4,
		Cap:   graphics.LineCapButt,
		Size:  64,
		Area:  50 * 4,
		Tol:   0.1,
	},
	{
		// the line width of the Koch snowflake view
		Name:  "hairline",
		From:  pt(5.5, 10),
		To:    pt(60.5, 50),
		Width: 0.1,
		Cap:   graphics.LineCapButt,
		Size:  64,
		Area:  math.Hypot(55, 40) * 0.1,
		Tol:   0.05,
	},
	{
		Name:  "clipped",
		From:  pt(-20, 32),
		To:    pt(84, 32),
		Width: 6,
		Cap:   graphics.LineCapButt,
		Size:  64,
		Area:  64 * 6,
		Tol:   0.1,
	},
	{
		Name:  "dot_round",
		From:  pt(32, 32),
		To:    pt(32, 32),
		Width: 10,
		Cap:   graphics.LineCapRound,
		Size:  64,
		Area:  math.Pi * 25,
		Tol:   6,
	},
	{
		Name:  "dot_square",
		From:  pt(32, 32),
		To:    pt(32, 32),
		Width: 10,
		Cap:   graphics.LineCapSquare,
		Size:  64,
		Area:  100,
		Tol:   0.1,
	},
	{
		Name:  "dot_butt",
		From:  pt(32, 32),
		To:    pt(32, 32),
		Width: 10,
		Cap:   graphics.LineCapButt,
		Size:  64,
		Area:  0,
	},
}
