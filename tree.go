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
	"image/color"
	"math"
)

// Ranges of the [TreeParams] fields.
const (
	MinTreeFactor = 0
	MaxTreeFactor = 1
	MinTreeAngle  = 0
	MaxTreeAngle  = math.Pi / 2
)

// The colours of the trunk and of the outermost twigs.
var (
	TreeTwigColor  = color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff} // green
	TreeTrunkColor = color.RGBA{R: 0x8b, G: 0x45, B: 0x13, A: 0xff} // saddle brown
)

// TreeParams describes the shape of a Pythagoras tree.
type TreeParams struct {
	// WidthFactor and LengthFactor give the size of a child branch,
	// relative to its parent.  Both must be in [0, 1].
	WidthFactor, LengthFactor float64

	// LeftAngle and RightAngle give the angles between a branch and its
	// two children.  Both must be in [0, π/2].
	LeftAngle, RightAngle float64
}

// DefaultTreeParams returns the parameters of the classic symmetric-ish
// tree: children are √2/2 the size of their parent, at angles of 50° and
// 40°.
func DefaultTreeParams() TreeParams {
	return TreeParams{
		WidthFactor:  math.Sqrt2 / 2,
		LengthFactor: math.Sqrt2 / 2,
		LeftAngle:    50 * math.Pi / 180,
		RightAngle:   40 * math.Pi / 180,
	}
}

// Validate checks that all parameters are within their ranges.
func (p TreeParams) Validate() error {
	switch {
	case !inRange(p.WidthFactor, MinTreeFactor, MaxTreeFactor):
		return invalidf("widthFactor %g not in [%g, %g]", p.WidthFactor, float64(MinTreeFactor), float64(MaxTreeFactor))
	case !inRange(p.LengthFactor, MinTreeFactor, MaxTreeFactor):
		return invalidf("lengthFactor %g not in [%g, %g]", p.LengthFactor, float64(MinTreeFactor), float64(MaxTreeFactor))
	case !inRange(p.LeftAngle, MinTreeAngle, MaxTreeAngle):
		return invalidf("leftAngle %g not in [%g, %g]", p.LeftAngle, float64(MinTreeAngle), MaxTreeAngle)
	case !inRange(p.RightAngle, MinTreeAngle, MaxTreeAngle):
		return invalidf("rightAngle %g not in [%g, %g]", p.RightAngle, float64(MinTreeAngle), MaxTreeAngle)
	}
	return nil
}

func inRange(x, lo, hi float64) bool {
	return x >= lo && x <= hi
}

// TreeColor returns the colour of the branches at recursion level n,
// where n counts down towards the twigs at level 0.  The colour moves from
// TreeTwigColor towards TreeTrunkColor by the factor 1 - 0.85^(n-2),
// clamped to [0, 1].
func TreeColor(n int) (color.RGBA, error) {
	if n < 0 {
		return color.RGBA{}, invalidf("level must be non-negative, got %d", n)
	}
	return treeColor(n), nil
}

func treeColor(n int) color.RGBA {
	return lerpRGBA(TreeTwigColor, TreeTrunkColor, 1-math.Pow(0.85, float64(n-2)))
}

// lerpRGBA interpolates between two colours.  Factors outside [0, 1]
// select the nearer end point.
func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// PythagorasTree draws a binary tree from the turtle's position along its
// heading.  The trunk has the given width and length and is drawn at
// recursion level depth; the branches of level n-1 start at the tip of
// their parent, turned by -LeftAngle and +RightAngle relative to it.
// Recursion stops below level 0, or as soon as a child would have zero
// width or length.
//
// On return the stroke colour and width are restored.  The turtle is back
// at its starting position and heading, unless a zero factor stopped the
// recursion, in which case it is left at the tip of the last branch drawn.
func PythagorasTree(t Turtle, p TreeParams, depth int, width, length float64) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if depth < 0 {
		return invalidf("depth must be non-negative, got %d", depth)
	}
	if !(width > 0) || !isFinite(width) {
		return invalidf("initial width must be positive, got %g", width)
	}
	if !(length > 0) || !isFinite(length) {
		return invalidf("initial length must be positive, got %g", length)
	}

	savedColor, savedWidth := t.StrokeColor(), t.StrokeWidth()
	p.branch(t, depth, width, length)
	t.SetStrokeColor(savedColor)
	t.SetStrokeWidth(savedWidth)
	return nil
}

func (p TreeParams) branch(t Turtle, n int, width, length float64) {
	if n == -1 {
		return
	}

	t.SetStrokeWidth(width)
	t.SetStrokeColor(treeColor(n))
	t.Move(length, true)

	childWidth, childLength := width*p.WidthFactor, length*p.LengthFactor
	if childWidth == 0 || childLength == 0 {
		// the turtle stays at the tip
		return
	}

	t.Rotate(-p.LeftAngle)
	p.branch(t, n-1, childWidth, childLength)
	t.Rotate(p.LeftAngle + p.RightAngle)
	p.branch(t, n-1, childWidth, childLength)
	t.Rotate(-p.RightAngle)

	// back to the base of the branch, so that the sibling starts from
	// the same point
	t.Move(-length, false)
}
