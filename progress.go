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

import "sync/atomic"

// ProgressListener receives progress reports from a running render and
// tells the workers when to stop.  Implementations must be safe for
// concurrent use.
type ProgressListener interface {
	// Cancelled reports whether the render should stop.
	Cancelled() bool

	// Increment records that n more pixels have been completed.
	Increment(n int64)
}

// Progress is the standard ProgressListener.  It counts completed pixels
// against an expected total and carries a cancellation flag which the
// caller may set at any time.
//
// The zero value is ready to use.
type Progress struct {
	done      atomic.Int64
	total     atomic.Int64
	cancelled atomic.Bool
}

// NewProgress returns a Progress expecting total pixels.
func NewProgress(total int64) *Progress {
	p := &Progress{}
	p.total.Store(total)
	return p
}

// Expect sets the expected number of pixels.
func (p *Progress) Expect(total int64) *Progress {
	p.total.Store(total)
	return p
}

// Increment implements [ProgressListener].
func (p *Progress) Increment(n int64) {
	p.done.Add(n)
}

// Cancelled implements [ProgressListener].
func (p *Progress) Cancelled() bool {
	return p.cancelled.Load()
}

// Cancel asks all workers using p to stop.  Cancel is idempotent.
func (p *Progress) Cancel() {
	p.cancelled.Store(true)
}

// Done returns the number of pixels completed so far.
func (p *Progress) Done() int64 {
	return p.done.Load()
}

// Total returns the expected number of pixels.
func (p *Progress) Total() int64 {
	return p.total.Load()
}

// Fraction returns Done/Total, or 0 if no total is known.
func (p *Progress) Fraction() float64 {
	total := p.total.Load()
	if total <= 0 {
		return 0
	}
	return float64(p.done.Load()) / float64(total)
}
