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
	"math/rand/v2"
	"testing"
)

func TestIterationsBoundaries(t *testing.T) {
	cases := []struct {
		x, y float64
		max  int
		want int
	}{
		{0, 0, 1, 1},
		{0, 0, 2, 2},
		{0, 0, 100, 100},
		{2, 0, 1, 1},
		{2, 0, 100, 1},
		{-2, 0, 2, 1}, // |z₁|² = 4 is not < 4
		{-1, 0, 100, 100},
		{1, 1, 100, 2},
		{0.25, 0, 1000, 1000},
	}
	for _, c := range cases {
		got := Iterations(c.x, c.y, c.max)
		if got != c.want {
			t.Errorf("Iterations(%g, %g, %d) = %d, expected %d", c.x, c.y, c.max, got, c.want)
		}
	}
}

// Just right of the cusp at 1/4, orbits escape slowly.
func TestIterationsSlowEscape(t *testing.T) {
	n := Iterations(0.26, 0, 1000)
	if n <= 2 || n >= 1000 {
		t.Errorf("Iterations(0.26, 0, 1000) = %d, expected slow escape", n)
	}
}

func TestIterationsRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 10000 {
		x := rng.Float64()*4 - 2.5
		y := rng.Float64()*3 - 1.5
		m := 1 + rng.IntN(200)
		n := Iterations(x, y, m)
		if n < 1 || n > m {
			t.Fatalf("Iterations(%g, %g, %d) = %d out of range", x, y, m, n)
		}
	}
}
