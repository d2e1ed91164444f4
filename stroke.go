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
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// StrokeSegment strokes the straight line from a to b, using the current
// Width and Cap, and emits the resulting coverage one scanline at a time.
//
// A segment of zero length is drawn as a dot for round caps, as an
// axis-aligned square for square caps, and not at all for butt caps.
func (r *Rasteriser) StrokeSegment(a, b vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	d := r.Width / 2
	if !(d > 0) {
		return
	}

	r.outline = r.outline[:0]
	v := b.Sub(a)
	l := v.Length()
	if l < zeroLengthThreshold {
		switch r.Cap {
		case graphics.LineCapRound:
			r.addArc(a, d, vec.Vec2{X: 1}, 2*math.Pi, true)
		case graphics.LineCapSquare:
			r.addSquare(a, vec.Vec2{X: 1}, d)
		}
		r.fillPolygon(r.outline, emit)
		return
	}

	T := v.Mul(1 / l)
	N := vec.Vec2{X: -T.Y, Y: T.X}
	r.outline = append(r.outline, a.Add(N.Mul(d)), b.Add(N.Mul(d)))
	r.addCap(b, T, d)
	r.outline = append(r.outline, b.Sub(N.Mul(d)), a.Sub(N.Mul(d)))
	r.addCap(a, T.Mul(-1), d)
	r.fillPolygon(r.outline, emit)
}

// addCap adds a line cap at P.  T is the unit tangent pointing away from
// the line, d is half the stroke width.
func (r *Rasteriser) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}

	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.outline = append(r.outline, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		// half circle from +N through T to -N
		r.addArc(P, d, N, -math.Pi, true)
	}
}

// addArc appends points on a circular arc around center.  startDir is the
// unit vector from the center to the start of the arc, sweep is the angle
// in radians (positive is counter-clockwise).
func (r *Rasteriser) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length())

	// A chord spanning the angle θ deviates from the circle by at most
	// r(1-cos(θ/2)), which gives θ = 2 acos(1-ε/r) for tolerance ε.
	n := 1
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 {
			n = int(math.Ceil(math.Abs(sweep) / step))
		}
	}
	// need at least a triangle for a full circle
	if math.Abs(sweep) >= 2*math.Pi {
		n = max(n, 4)
	}

	dt := sweep / float64(n)
	first := 0
	if !includeStart {
		first = 1
	}
	for i := first; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}

// addSquare appends the corners of a square with side 2d, centred at
// center and aligned with T.
func (r *Rasteriser) addSquare(center, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	r.outline = append(r.outline,
		center.Add(T.Mul(d)).Add(N.Mul(d)),
		center.Add(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Add(N.Mul(d)),
	)
}
