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
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Render outcomes, used as the "outcome" label of fractal_renders_total.
const (
	outcomeComplete  = "complete"
	outcomeCancelled = "cancelled"
	outcomeFailed    = "failed"
)

// Metrics collects statistics about the renders of an [Engine].
type Metrics struct {
	pixels   prometheus.Counter
	renders  *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewMetrics creates the render metrics and registers them with reg.
// If reg is nil, the metrics are not registered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		pixels: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fractal_pixels_total",
			Help: "Number of escape-time pixels computed.",
		}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fractal_renders_total",
			Help: "Number of escape-time renders, by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fractal_render_duration_seconds",
			Help:    "Wall time of escape-time renders.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.pixels, m.renders, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(outcome string, elapsed time.Duration) {
	m.renders.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
}
