package fractal

import (
	"errors"
	"math"
	"testing"
)

func TestRequestSpec(t *testing.T) {
	spec, err := DefaultRequest().Spec()
	if err != nil {
		t.Fatal(err)
	}
	if spec.Width != 700 || spec.Height != 700 || spec.MaxIterations != 100 {
		t.Errorf("unexpected spec %+v", spec)
	}
	if math.Abs(spec.OriginX+2.5) > 1e-12 || math.Abs(spec.OriginY+1.75) > 1e-12 {
		t.Errorf("origin (%g, %g), expected (-2.5, -1.75)", spec.OriginX, spec.OriginY)
	}
	if spec.ScaleX != 0.005 || spec.ScaleY != 0.005 {
		t.Errorf("scale (%g, %g)", spec.ScaleX, spec.ScaleY)
	}
	if len(spec.Colors) != 100 || spec.Colors[99] != NeverEscaped {
		t.Error("wrong colour table")
	}
}

func TestRequestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(r *Request)
	}{
		{"zero scale", func(r *Request) { r.Scale = 0 }},
		{"negative scale", func(r *Request) { r.Scale = -1 }},
		{"NaN scale", func(r *Request) { r.Scale = math.NaN() }},
		{"no iterations", func(r *Request) { r.MaxIterations = 0 }},
		{"too many iterations", func(r *Request) { r.MaxIterations = 50001 }},
		{"no threads", func(r *Request) { r.Threads = 0 }},
		{"empty image", func(r *Request) { r.Width = 0 }},
		{"bad colour mode", func(r *Request) { r.ColorMode = -1 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := DefaultRequest()
			c.modify(&r)
			if _, err := r.Spec(); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("got %v", err)
			}
		})
	}
}

func TestRequestNavigation(t *testing.T) {
	r := DefaultRequest()

	if got := r.ZoomIn().Scale; math.Abs(got-0.0045) > 1e-15 {
		t.Errorf("ZoomIn: scale %g", got)
	}
	r.Scale = 0.095
	if got := r.ZoomOut().Scale; got != MaxRequestScale {
		t.Errorf("ZoomOut: scale %g, expected cap %g", got, MaxRequestScale)
	}

	r = DefaultRequest()
	if got := r.Recenter(350, 350); got != r {
		t.Errorf("click in the middle moved the view to %+v", got)
	}
	got := r.Recenter(450, 250)
	if math.Abs(got.CenterX+0.25) > 1e-12 || math.Abs(got.CenterY+0.5) > 1e-12 {
		t.Errorf("new centre (%g, %g), expected (-0.25, -0.5)", got.CenterX, got.CenterY)
	}
}
