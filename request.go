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

// Limits and defaults for [Request] values.
const (
	MaxRequestIterations = 50000
	MaxRequestScale      = 0.1
	zoomFactor           = 0.9
)

// Request is a render request as issued by an interactive viewer: a view
// of the complex plane centred on (CenterX, CenterY), with Scale units per
// pixel along both axes.
type Request struct {
	CenterX, CenterY float64
	Scale            float64
	MaxIterations    int
	Threads          int
	ColorMode        ColorMode

	// Width and Height give the image size in pixels.
	Width, Height int
}

// DefaultRequest returns the initial view of the Mandelbrot set.
func DefaultRequest() Request {
	return Request{
		CenterX:       -0.75,
		CenterY:       0,
		Scale:         0.005,
		MaxIterations: 100,
		Threads:       1,
		ColorMode:     Linear,
		Width:         700,
		Height:        700,
	}
}

// Validate checks that the request can be rendered.
func (r Request) Validate() error {
	switch {
	case !(r.Scale > 0) || !isFinite(r.Scale):
		return invalidf("scale must be positive, got %g", r.Scale)
	case r.MaxIterations < 1 || r.MaxIterations > MaxRequestIterations:
		return invalidf("iterations must be in [1, %d], got %d", MaxRequestIterations, r.MaxIterations)
	case r.Threads < 1:
		return invalidf("threads must be positive, got %d", r.Threads)
	case r.Width <= 0 || r.Height <= 0:
		return invalidf("image size must be positive, got %dx%d", r.Width, r.Height)
	}
	return nil
}

// Spec converts the request into a RasterSpec.  The colour table is built
// from r.ColorMode.
func (r Request) Spec() (*RasterSpec, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	colors, err := NewColorTable(r.ColorMode, r.MaxIterations)
	if err != nil {
		return nil, err
	}
	return &RasterSpec{
		Width:         r.Width,
		Height:        r.Height,
		OriginX:       r.CenterX - float64(r.Width/2)*r.Scale,
		OriginY:       r.CenterY - float64(r.Height/2)*r.Scale,
		ScaleX:        r.Scale,
		ScaleY:        r.Scale,
		MaxIterations: r.MaxIterations,
		Colors:        colors,
	}, nil
}

// ZoomIn returns the request with the scale reduced by 10%.
func (r Request) ZoomIn() Request {
	r.Scale *= zoomFactor
	return r
}

// ZoomOut returns the request with the scale increased by 1/0.9, but not
// beyond MaxRequestScale.
func (r Request) ZoomOut() Request {
	r.Scale = min(r.Scale/zoomFactor, MaxRequestScale)
	return r
}

// Recenter returns the request with the view centred on pixel (px, py) of
// the current view.
func (r Request) Recenter(px, py float64) Request {
	r.CenterX += (px - float64(r.Width/2)) * r.Scale
	r.CenterY += (py - float64(r.Height/2)) * r.Scale
	return r
}
