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
	"fmt"
	"image"
	"image/color"
	"iter"
	"math"
)

// RasterSpec describes one escape-time render.  A RasterSpec must not be
// modified while a render using it is in progress.
type RasterSpec struct {
	// Width and Height give the size of the output raster in pixels.
	Width, Height int

	// OriginX and OriginY are the coordinates of pixel (0, 0) in the
	// complex plane.
	OriginX, OriginY float64

	// ScaleX and ScaleY give the distance in the complex plane between
	// neighbouring pixel columns and rows.  Both must be nonzero.
	ScaleX, ScaleY float64

	// MaxIterations bounds the escape-time iteration.
	MaxIterations int

	// Colors maps escape times to colours: a pixel with escape time n is
	// painted Colors[n-1].  The length must equal MaxIterations.
	Colors []color.RGBA
}

// Validate checks the invariants listed in the field documentation.
func (s *RasterSpec) Validate() error {
	switch {
	case s == nil:
		return invalidf("missing raster spec")
	case s.Width <= 0 || s.Height <= 0:
		return invalidf("raster size must be positive, got %dx%d", s.Width, s.Height)
	case s.ScaleX == 0 || !isFinite(s.ScaleX):
		return invalidf("scaleX must be finite and nonzero, got %g", s.ScaleX)
	case s.ScaleY == 0 || !isFinite(s.ScaleY):
		return invalidf("scaleY must be finite and nonzero, got %g", s.ScaleY)
	case s.MaxIterations < 1:
		return invalidf("maxIterations must be positive, got %d", s.MaxIterations)
	case len(s.Colors) != s.MaxIterations:
		return invalidf("color table has %d entries, want %d", len(s.Colors), s.MaxIterations)
	}
	return nil
}

// Pixel returns the colour of pixel (col, row).
func (s *RasterSpec) Pixel(col, row int) color.RGBA {
	x := s.OriginX + float64(col)*s.ScaleX
	y := s.OriginY + float64(row)*s.ScaleY
	return s.Colors[Iterations(x, y, s.MaxIterations)-1]
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Partition is a rule for splitting a raster into work units.
type Partition int

const (
	// LinearBlocks splits the row-major pixel sequence into contiguous
	// blocks of ceil(width·height/parallelism) pixels.
	LinearBlocks Partition = iota

	// ColumnStrips splits the raster into vertical strips of
	// width/parallelism columns.  The remainder columns are added to the
	// last strip.
	//
	// Deprecated: LinearBlocks balances the load at least as well and
	// also works when parallelism exceeds the raster width.
	ColumnStrips
)

func (p Partition) String() string {
	switch p {
	case LinearBlocks:
		return "blocks"
	case ColumnStrips:
		return "strips"
	default:
		return fmt.Sprintf("Partition(%d)", int(p))
	}
}

// WorkUnit is a disjoint slice of a raster, rendered by a single worker.
// For LinearBlocks, [Start, End) is a range of row-major pixel indices;
// for ColumnStrips it is a range of columns.
type WorkUnit struct {
	Partition  Partition
	Start, End int
}

func (u WorkUnit) String() string {
	return fmt.Sprintf("%s[%d:%d]", u.Partition, u.Start, u.End)
}

// Pixels iterates over the (col, row) coordinates covered by u, in the
// order a worker visits them.
func (u WorkUnit) Pixels(width, height int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if u.Partition == ColumnStrips {
			for col := u.Start; col < u.End; col++ {
				for row := range height {
					if !yield(col, row) {
						return
					}
				}
			}
			return
		}
		for p := u.Start; p < u.End; p++ {
			if !yield(p%width, p/width) {
				return
			}
		}
	}
}

// Len returns the number of pixels in u for a raster of the given height.
func (u WorkUnit) Len(height int) int {
	if u.Partition == ColumnStrips {
		return (u.End - u.Start) * height
	}
	return u.End - u.Start
}

// Units splits a width×height raster into at most parallelism work units.
// Empty units are omitted, so fewer units are returned when the raster is
// too small for the requested parallelism.
func (p Partition) Units(width, height, parallelism int) []WorkUnit {
	if width <= 0 || height <= 0 || parallelism <= 0 {
		return nil
	}

	var units []WorkUnit
	switch p {
	case ColumnStrips:
		n := min(parallelism, width)
		strip := width / n
		for i := range n {
			u := WorkUnit{Partition: ColumnStrips, Start: i * strip, End: (i + 1) * strip}
			if i == n-1 {
				u.End = width
			}
			units = append(units, u)
		}
	default:
		size := width * height
		block := (size + parallelism - 1) / parallelism
		for start := 0; start < size; start += block {
			units = append(units, WorkUnit{
				Partition: LinearBlocks,
				Start:     start,
				End:       min(start+block, size),
			})
		}
	}
	return units
}

// RGBASetter is a pixel sink for [GenerateInto].  SetRGBA is called
// concurrently for distinct pixels.  *image.RGBA implements this interface.
type RGBASetter interface {
	SetRGBA(x, y int, c color.RGBA)
}

// Generate renders spec using parallelism concurrent workers and the
// LinearBlocks partition.
//
// The call returns once every started worker has finished.  If the
// listener is cancelled during the render, the returned image is only
// partially filled; this is not an error.  If a worker fails, the partial
// image is returned together with the first *WorkerError.
func Generate(spec *RasterSpec, parallelism int, listener ProgressListener) (*image.RGBA, error) {
	var e Engine
	return e.Generate(spec, parallelism, listener)
}

// GenerateInto is like [Generate], but writes the pixels into dst using
// the given partition.
func GenerateInto(dst RGBASetter, spec *RasterSpec, parallelism int, partition Partition, listener ProgressListener) error {
	e := Engine{partition: partition}
	return e.GenerateInto(dst, spec, parallelism, listener)
}

// scanUnit renders the pixels of one work unit.  A panic inside the unit
// is converted into a *WorkerError.
func scanUnit(spec *RasterSpec, u WorkUnit, dst RGBASetter, listener ProgressListener) (n int64, err error) {
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("panic: %v", r)
			}
			err = &WorkerError{Unit: u, Err: cause}
		}
	}()

	for col, row := range u.Pixels(spec.Width, spec.Height) {
		if listener.Cancelled() {
			break
		}
		dst.SetRGBA(col, row, spec.Pixel(col, row))
		listener.Increment(1)
		n++
	}
	return n, nil
}
