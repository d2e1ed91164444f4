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
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestKochDepthZero(t *testing.T) {
	r := NewRecorder()
	if err := KochCurve(r, 0, 7.5); err != nil {
		t.Fatal(err)
	}
	if r.Count(CmdRotate, false) != 0 {
		t.Error("rotation at depth 0")
	}
	if len(r.Segments) != 1 || math.Abs(r.Segments[0].Length()-7.5) > 1e-12 {
		t.Errorf("segments %+v", r.Segments)
	}
}

func TestKochSegmentCount(t *testing.T) {
	for depth := range 7 {
		r := NewRecorder()
		if err := KochCurve(r, depth, 100); err != nil {
			t.Fatal(err)
		}
		want := 1 << (2 * depth)
		if got := r.Count(CmdMove, true); got != want {
			t.Errorf("depth %d: %d segments, expected %d", depth, got, want)
		}
		l := 100 / math.Pow(3, float64(depth))
		for _, s := range r.Segments {
			if math.Abs(s.Length()-l) > 1e-9 {
				t.Fatalf("depth %d: segment of length %g, expected %g", depth, s.Length(), l)
			}
		}

		// the curve ends at distance length along the initial heading
		end := r.State()
		if !near(vec.Vec2{X: end.X, Y: end.Y}, vec.Vec2{X: 100}) {
			t.Errorf("depth %d: curve ends at (%g, %g)", depth, end.X, end.Y)
		}
		if math.Abs(end.Heading) > 1e-12 {
			t.Errorf("depth %d: heading changed to %g", depth, end.Heading)
		}
	}
}

func TestKochSnowflakeCloses(t *testing.T) {
	start := TurtleState{X: 50, Y: 445, Heading: 0.3}
	r := NewRecorder()
	r.SetState(start)
	if err := KochSnowflake(r, 5, 500); err != nil {
		t.Fatal(err)
	}
	if got := r.Count(CmdMove, true); got != 3*1024 {
		t.Errorf("%d segments", got)
	}
	end := r.State()
	if math.Hypot(end.X-start.X, end.Y-start.Y) > 1e-9 {
		t.Errorf("snowflake ends at (%g, %g)", end.X, end.Y)
	}
	turn := math.Remainder(end.Heading-start.Heading, 2*math.Pi)
	if math.Abs(turn) > 1e-9 {
		t.Errorf("net rotation %g", turn)
	}
}

func TestKochInvalid(t *testing.T) {
	cases := []struct {
		depth  int
		length float64
	}{
		{-1, 10},
		{2, 0},
		{2, -5},
		{2, math.NaN()},
		{2, math.Inf(1)},
	}
	for _, c := range cases {
		r := NewRecorder()
		if err := KochCurve(r, c.depth, c.length); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("KochCurve(%d, %g): got %v", c.depth, c.length, err)
		}
		if err := KochSnowflake(r, c.depth, c.length); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("KochSnowflake(%d, %g): got %v", c.depth, c.length, err)
		}
		if len(r.Commands) != 0 {
			t.Error("commands issued for invalid input")
		}
	}
}
