package fractal

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	if err != nil {
		t.Fatal(err)
	}
	e := NewEngine(WithMetrics(m))

	if _, err := e.Generate(testSpec(t, 10, 10), 3, NewProgress(0)); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Generate(testSpec(t, 10, 10), 1, &cancelAfter{limit: 10}); err != nil {
		t.Fatal(err)
	}
	err = e.GenerateInto(stringPanicSink{}, testSpec(t, 2, 2), 1, NewProgress(0))
	if err == nil {
		t.Fatal("missing error")
	}

	if got := testutil.ToFloat64(m.pixels); got != 110 {
		t.Errorf("pixels: got %g, expected 110", got)
	}
	for outcome, want := range map[string]float64{
		outcomeComplete:  1,
		outcomeCancelled: 1,
		outcomeFailed:    1,
	} {
		if got := testutil.ToFloat64(m.renders.WithLabelValues(outcome)); got != want {
			t.Errorf("renders{%s}: got %g, expected %g", outcome, got, want)
		}
	}
	if n := testutil.CollectAndCount(m.duration); n != 1 {
		t.Errorf("got %d duration series", n)
	}

	if _, err := NewMetrics(reg); err == nil {
		t.Error("second registration succeeded")
	}
}

func TestMetricsUnregistered(t *testing.T) {
	m, err := NewMetrics(nil)
	if err != nil {
		t.Fatal(err)
	}
	m.observe(outcomeComplete, 0)
	if got := testutil.ToFloat64(m.renders.WithLabelValues(outcomeComplete)); got != 1 {
		t.Errorf("got %g", got)
	}
}
