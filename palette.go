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
	"image/color"
	"math"
	"strings"
)

// ColorMode selects how escape times are mapped to colours.
type ColorMode int

// These are the supported colour modes.  In every mode the colour
// intensity is a function of i/max, where i is the table index.
const (
	Linear    ColorMode = iota // i/max
	Root                       // sqrt(i/max)
	Quadratic                  // (i/max)^2
)

var colorModeNames = [...]string{
	Linear:    "linear",
	Root:      "root",
	Quadratic: "quadratic",
}

func (m ColorMode) String() string {
	if m < 0 || int(m) >= len(colorModeNames) {
		return fmt.Sprintf("ColorMode(%d)", int(m))
	}
	return colorModeNames[m]
}

// Next returns the mode following m in the cycle
// Linear → Root → Quadratic → Linear.
func (m ColorMode) Next() ColorMode {
	return (m + 1) % ColorMode(len(colorModeNames))
}

// ParseColorMode converts a mode name, as returned by [ColorMode.String],
// back into a ColorMode.  Case is ignored.
func ParseColorMode(s string) (ColorMode, error) {
	for m, name := range colorModeNames {
		if strings.EqualFold(s, name) {
			return ColorMode(m), nil
		}
	}
	return 0, invalidf("unknown color mode %q", s)
}

func (m ColorMode) intensity(t float64) float64 {
	switch m {
	case Root:
		return math.Sqrt(t)
	case Quadratic:
		return t * t
	default:
		return t
	}
}

// NeverEscaped is the colour stored in the last entry of every table
// built by [NewColorTable].
var NeverEscaped = color.RGBA{A: 255}

// NewColorTable builds the colour table for a render with the given
// iteration bound.  Entry i holds a pure red of intensity f(i/max), where f
// is given by the mode.  The last entry, used for points which never
// escape, is always [NeverEscaped].
func NewColorTable(mode ColorMode, maxIterations int) ([]color.RGBA, error) {
	if maxIterations < 1 {
		return nil, invalidf("maxIterations must be positive, got %d", maxIterations)
	}
	if mode < 0 || int(mode) >= len(colorModeNames) {
		return nil, invalidf("unknown color mode %d", int(mode))
	}

	colors := make([]color.RGBA, maxIterations)
	for i := range colors {
		v := mode.intensity(float64(i) / float64(maxIterations))
		colors[i] = color.RGBA{R: unitToByte(v), A: 255}
	}
	colors[maxIterations-1] = NeverEscaped
	return colors, nil
}

// unitToByte maps [0, 1] to [0, 255], clamping values outside the range.
func unitToByte(v float64) uint8 {
	return uint8(math.Round(max(0, min(1, v)) * 255))
}
