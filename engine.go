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
	"log/slog"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Engine runs escape-time renders on a bounded pool of workers which is
// shared by all renders of the engine.  An Engine is safe for concurrent
// use.  The zero Engine runs every work unit on its own goroutine.
type Engine struct {
	pool      *semaphore.Weighted
	workers   int
	partition Partition
	logger    *slog.Logger
	metrics   *Metrics

	mu      sync.Mutex
	current *Progress
}

// Option configures an [Engine].
type Option func(*Engine)

// WithWorkers limits the number of work units which run at the same time,
// across all renders of the engine.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithPartition selects the partitioning strategy.  The default is
// LinearBlocks.
func WithPartition(p Partition) Option {
	return func(e *Engine) {
		e.partition = p
	}
}

// WithLogger sets the logger used for render lifecycle messages.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithMetrics makes the engine record render statistics in m.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// NewEngine returns an engine with a worker pool of GOMAXPROCS workers,
// unless [WithWorkers] specifies otherwise.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.workers > 0 {
		e.pool = semaphore.NewWeighted(int64(e.workers))
	}
	return e
}

func (e *Engine) log() *slog.Logger {
	if e.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.logger
}

// Generate renders spec into a new image, splitting the raster into
// parallelism work units.  See [Generate] for the semantics.
func (e *Engine) Generate(spec *RasterSpec, parallelism int, listener ProgressListener) (*image.RGBA, error) {
	if err := validateRender(spec, parallelism, listener); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, spec.Width, spec.Height))
	return img, e.render(img, spec, parallelism, listener)
}

// GenerateInto renders spec into dst.  See [Generate] for the semantics.
func (e *Engine) GenerateInto(dst RGBASetter, spec *RasterSpec, parallelism int, listener ProgressListener) error {
	if dst == nil {
		return invalidf("missing destination")
	}
	if err := validateRender(spec, parallelism, listener); err != nil {
		return err
	}
	return e.render(dst, spec, parallelism, listener)
}

func validateRender(spec *RasterSpec, parallelism int, listener ProgressListener) error {
	if parallelism < 1 {
		return invalidf("parallelism must be positive, got %d", parallelism)
	}
	if listener == nil {
		return invalidf("missing progress listener")
	}
	return spec.Validate()
}

func (e *Engine) render(dst RGBASetter, spec *RasterSpec, parallelism int, listener ProgressListener) error {
	if listener.Cancelled() {
		return nil
	}

	units := e.partition.Units(spec.Width, spec.Height, parallelism)
	logger := e.log()
	logger.Debug("render started",
		"width", spec.Width,
		"height", spec.Height,
		"iterations", spec.MaxIterations,
		"partition", e.partition,
		"units", len(units))
	start := time.Now()

	var g errgroup.Group
	for _, u := range units {
		if listener.Cancelled() {
			break
		}
		g.Go(func() error {
			if e.pool != nil {
				// Acquire only fails for a done context.
				_ = e.pool.Acquire(context.Background(), 1)
				defer e.pool.Release(1)
			}
			n, err := scanUnit(spec, u, dst, listener)
			if e.metrics != nil {
				e.metrics.pixels.Add(float64(n))
			}
			if err != nil {
				logger.Error("worker failed", "unit", u, "error", err)
			}
			return err
		})
	}
	err := g.Wait()

	elapsed := time.Since(start)
	outcome := outcomeComplete
	switch {
	case err != nil:
		outcome = outcomeFailed
	case listener.Cancelled():
		outcome = outcomeCancelled
	}
	if e.metrics != nil {
		e.metrics.observe(outcome, elapsed)
	}
	logger.Debug("render finished", "outcome", outcome, "elapsed", elapsed)

	return err
}

// Render starts the render described by req, after cancelling the render
// previously started by Render on the same engine.  The render is also
// cancelled when ctx is done.
//
// The returned Progress tells whether the render completed:
// if Progress.Cancelled reports true, the image is only partially filled.
func (e *Engine) Render(ctx context.Context, req Request) (*image.RGBA, *Progress, error) {
	p := &Progress{}
	img, err := e.RenderProgress(ctx, req, p)
	if img == nil {
		return nil, nil, err
	}
	return img, p, err
}

// RenderProgress is like [Engine.Render], but reports to p, so that the
// caller can watch the render while it runs.  The expected total of p is
// set to the number of pixels before work starts.
func (e *Engine) RenderProgress(ctx context.Context, req Request, p *Progress) (*image.RGBA, error) {
	if p == nil {
		return nil, invalidf("missing progress")
	}
	spec, err := req.Spec()
	if err != nil {
		return nil, err
	}

	p.Expect(int64(spec.Width) * int64(spec.Height))
	e.mu.Lock()
	if e.current != nil && e.current != p {
		e.current.Cancel()
	}
	e.current = p
	e.mu.Unlock()

	if ctx.Err() != nil {
		p.Cancel()
	}
	stop := context.AfterFunc(ctx, p.Cancel)
	defer stop()

	return e.Generate(spec, req.Threads, p)
}

// Cancel cancels the render most recently started by [Engine.Render].
func (e *Engine) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current != nil {
		e.current.Cancel()
	}
}
