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

// Package fractal implements deterministic fractal generators: a parallel
// escape-time renderer for the Mandelbrot set, turtle-graphics constructions
// for the Koch snowflake and the Pythagoras tree, and a time-varying Perlin
// noise field.
//
// The escape-time renderer splits the output raster into disjoint work
// units which are computed concurrently. Progress is reported through a
// [ProgressListener], and rendering can be cancelled cooperatively between
// pixels. The recursive generators describe their output as a sequence of
// [Turtle] commands; a [Canvas] turns these commands into an anti-aliased
// image, a [Recorder] keeps them for later use.
package fractal

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned (wrapped) when the arguments of an
// operation are rejected before any work starts.
var ErrInvalidParameter = errors.New("invalid parameter")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameter}, args...)...)
}

// WorkerError reports an unexpected fault inside one work unit of a raster
// render. Other work units are not affected by the failure.
type WorkerError struct {
	Unit WorkUnit
	Err  error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("work unit %s: %v", e.Unit, e.Err)
}

func (e *WorkerError) Unwrap() error {
	return e.Err
}
