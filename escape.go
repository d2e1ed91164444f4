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

// escapeRadius2 is the squared magnitude beyond which an orbit is taken to
// have escaped.
const escapeRadius2 = 4

// Iterations returns the escape time of c = x0 + i·y0 under the recurrence
// z ↦ z² + c, starting from z = 0.
//
// The result lies in [1, maxIterations]. A point whose orbit reaches
// |z|² ≥ 4 after the first step returns 1, a point which stays bounded
// for maxIterations steps returns maxIterations.  The function does not
// allocate and may be called concurrently.
func Iterations(x0, y0 float64, maxIterations int) int {
	var re, im, re2, im2 float64

	n := 0
	for re2+im2 < escapeRadius2 && n < maxIterations {
		im = 2*re*im + y0
		re = re2 - im2 + x0
		re2 = re * re
		im2 = im * im
		n++
	}
	return n
}
