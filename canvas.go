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
	"image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"
)

// Canvas is a Turtle which draws directly into an RGBA image.  Turtle
// coordinates are pixel coordinates, with y pointing down, unless a
// different Transform is set.
//
// Segments are anti-aliased and composited over the existing image
// content.
type Canvas struct {
	pen

	// Cap is the line cap used for all segments.
	Cap graphics.LineCapStyle

	// Transform maps turtle coordinates to pixel coordinates.
	Transform matrix.Matrix

	img *image.RGBA
	r   *Rasteriser
}

// NewCanvas returns a width×height canvas filled with the background
// colour.  The turtle starts at the origin, heading along the x axis, with
// an opaque black stroke of width 1 and round caps.
func NewCanvas(width, height int, background color.Color) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, invalidf("canvas size must be positive, got %dx%d", width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	return &Canvas{
		pen:       newPen(),
		Cap:       graphics.LineCapRound,
		Transform: matrix.Identity,
		img:       img,
		r:         NewRasteriser(clip),
	}, nil
}

// Image returns the image the canvas draws into.  The image is shared, not
// copied.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Move implements [Turtle].
func (c *Canvas) Move(distance float64, draw bool) {
	from, to := c.advance(distance)
	if !draw || c.color.A == 0 {
		return
	}

	c.r.CTM = c.Transform
	c.r.Width = c.width
	c.r.Cap = c.Cap
	c.r.StrokeSegment(from, to, c.composite)
}

// composite blends the current stroke colour into one row of pixels,
// using coverage as additional alpha.
func (c *Canvas) composite(y, xMin int, coverage []float32) {
	// color.RGBA is alpha-premultiplied
	sr, sg, sb, sa := float32(c.color.R), float32(c.color.G), float32(c.color.B), float32(c.color.A)
	off := c.img.PixOffset(xMin, y)
	pix := c.img.Pix[off : off+4*len(coverage) : off+4*len(coverage)]
	for i, cov := range coverage {
		if cov == 0 {
			continue
		}
		k := 1 - cov*sa/255
		p := pix[4*i : 4*i+4 : 4*i+4]
		p[0] = blend(sr*cov, p[0], k)
		p[1] = blend(sg*cov, p[1], k)
		p[2] = blend(sb*cov, p[2], k)
		p[3] = blend(sa*cov, p[3], k)
	}
}

func blend(src float32, dst uint8, k float32) uint8 {
	v := src + float32(dst)*k + 0.5
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
