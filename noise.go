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
	"context"
	"image"
	"math"
	"sync"
	"time"

	"github.com/aquilax/go-perlin"
	xdraw "golang.org/x/image/draw"
)

// NoiseParams holds the parameters of the fractal Perlin noise.
type NoiseParams struct {
	Seed        int64
	Octaves     int
	Frequency   float64
	Lacunarity  float64
	Persistence float64
}

// DefaultNoiseParams returns eight octaves of noise with a base frequency of
// 0.01 per pixel, doubling the frequency and halving the amplitude with
// every octave.
func DefaultNoiseParams() NoiseParams {
	return NoiseParams{
		Seed:        2,
		Octaves:     8,
		Frequency:   0.01,
		Lacunarity:  2,
		Persistence: 0.5,
	}
}

// Validate checks that the parameters describe a usable noise function.
func (p NoiseParams) Validate() error {
	switch {
	case p.Octaves < 1 || p.Octaves > math.MaxInt32:
		return invalidf("octaves must be at least 1, got %d", p.Octaves)
	case !(p.Frequency > 0) || !isFinite(p.Frequency):
		return invalidf("frequency must be positive, got %g", p.Frequency)
	case !(p.Lacunarity > 0) || !isFinite(p.Lacunarity):
		return invalidf("lacunarity must be positive, got %g", p.Lacunarity)
	case !(p.Persistence > 0) || !isFinite(p.Persistence):
		return invalidf("persistence must be positive, got %g", p.Persistence)
	}
	return nil
}

// NoiseField produces a sequence of greyscale frames from three-dimensional
// Perlin noise, using the frame number as the third coordinate.
//
// Frames are normalised using the smallest and largest value seen so far,
// so that the brightness of later frames is stable.  A NoiseField is safe
// for concurrent use, but frames are produced one at a time.
type NoiseField struct {
	params NoiseParams
	noise  *perlin.Perlin

	mu       sync.Mutex
	t        int64
	min, max float64
}

// NewNoiseField returns a field at time 0.
func NewNoiseField(p NoiseParams) (*NoiseField, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	// go-perlin divides the amplitude by alpha and multiplies the
	// frequency by beta for every octave.
	noise := perlin.NewPerlin(1/p.Persistence, p.Lacunarity, int32(p.Octaves), p.Seed)
	return &NoiseField{
		params: p,
		noise:  noise,
		min:    math.MaxFloat64,
		max:    -math.MaxFloat64,
	}, nil
}

// Sample returns the noise value at the given point.
func (f *NoiseField) Sample(x, y, t float64) float64 {
	freq := f.params.Frequency
	return f.noise.Noise3D(x*freq, y*freq, t*freq)
}

// Time returns the time coordinate of the most recent frame.
func (f *NoiseField) Time() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

// Frame advances the time by one and returns the next frame.
func (f *NoiseField) Frame(width, height int) (*image.Gray, error) {
	if width <= 0 || height <= 0 {
		return nil, invalidf("frame size must be positive, got %dx%d", width, height)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.t++
	t := float64(f.t)
	values := make([]float64, width*height)
	lo, hi := f.min, f.max
	for y := range height {
		for x := range width {
			v := f.Sample(float64(x), float64(y), t)
			lo = min(lo, v)
			hi = max(hi, v)
			values[y*width+x] = v
		}
	}
	f.min, f.max = lo, hi

	img := image.NewGray(image.Rect(0, 0, width, height))
	scale := 0.0
	if hi > lo {
		scale = 255 / (hi - lo)
	}
	for i, v := range values {
		img.Pix[i] = uint8(math.Round((v - lo) * scale))
	}
	return img, nil
}

// Run produces frames of the given size at the given period, until ctx is
// done or emit returns an error.  Frames which take longer than period to
// compute delay the following frames, they are never skipped.
//
// Run returns nil when the context is cancelled, and the error from emit
// otherwise.
func (f *NoiseField) Run(ctx context.Context, width, height int, period time.Duration, emit func(*image.Gray) error) error {
	if period <= 0 {
		return invalidf("frame period must be positive, got %s", period)
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for ctx.Err() == nil {
		img, err := f.Frame(width, height)
		if err != nil {
			return err
		}
		if err := emit(img); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
	}
	return nil
}

// Upscale enlarges img by an integer factor, without interpolation.
func Upscale(img *image.Gray, factor int) *image.Gray {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
