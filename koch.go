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

import "math"

const piOver3 = math.Pi / 3

// KochCurve draws a Koch curve of the given recursion depth from the
// turtle's position along its heading.  The end points of the curve are
// length apart.  At depth 0 the curve is a single segment; each further
// level replaces every segment by four segments a third as long, with
// turns of +π/3, -2π/3 and +π/3 between them.
//
// Exactly 4^depth segments are drawn.  On return, the turtle heading is
// unchanged and the turtle is at the end of the curve.
func KochCurve(t Turtle, depth int, length float64) error {
	if err := checkKoch(depth, length); err != nil {
		return err
	}
	kochCurve(t, depth, length)
	return nil
}

// KochSnowflake draws three Koch curves, turning by -2π/3 after each of
// them.  This closes the snowflake and leaves the turtle where it started.
func KochSnowflake(t Turtle, depth int, length float64) error {
	if err := checkKoch(depth, length); err != nil {
		return err
	}
	for range 3 {
		kochCurve(t, depth, length)
		t.Rotate(-2 * piOver3)
	}
	return nil
}

func checkKoch(depth int, length float64) error {
	if depth < 0 {
		return invalidf("depth must be non-negative, got %d", depth)
	}
	if !(length > 0) || !isFinite(length) {
		return invalidf("length must be positive, got %g", length)
	}
	return nil
}

func kochCurve(t Turtle, depth int, length float64) {
	if depth == 0 {
		t.Move(length, true)
		return
	}

	length /= 3
	depth--
	kochCurve(t, depth, length)
	t.Rotate(piOver3)
	kochCurve(t, depth, length)
	t.Rotate(-2 * piOver3)
	kochCurve(t, depth, length)
	t.Rotate(piOver3)
	kochCurve(t, depth, length)
}
