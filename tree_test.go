package fractal

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestTreeBranchCount(t *testing.T) {
	for depth := range 10 {
		r := NewRecorder()
		if err := PythagorasTree(r, DefaultTreeParams(), depth, 50, 140); err != nil {
			t.Fatal(err)
		}
		want := 1<<(depth+1) - 1
		if got := len(r.Segments); got != want {
			t.Errorf("depth %d: %d branches, expected %d", depth, got, want)
		}
	}
}

// With a zero factor, children would be invisible: only the trunk is
// drawn, whatever the depth, and the turtle stays at its tip.
func TestTreeZeroFactor(t *testing.T) {
	for _, p := range []TreeParams{
		{WidthFactor: 0, LengthFactor: 0.7, LeftAngle: 0.5, RightAngle: 0.5},
		{WidthFactor: 0.7, LengthFactor: 0, LeftAngle: 0.5, RightAngle: 0.5},
	} {
		r := NewRecorder()
		if err := PythagorasTree(r, p, 12, 50, 140); err != nil {
			t.Fatal(err)
		}
		if len(r.Commands) != 1 {
			t.Fatalf("%+v: %d commands, expected 1", p, len(r.Commands))
		}
		if cmd := r.Commands[0]; cmd.Kind != CmdMove || !cmd.Draw || cmd.Value != 140 {
			t.Errorf("%+v: unexpected command %+v", p, cmd)
		}
		if len(r.Segments) != 1 {
			t.Errorf("%+v: %d segments", p, len(r.Segments))
		}
		if st := r.State(); math.Abs(st.X-140) > 1e-12 || math.Abs(st.Y) > 1e-12 {
			t.Errorf("%+v: turtle at (%g, %g), expected (140, 0)", p, st.X, st.Y)
		}
	}
}

func TestTreeRestoresTurtle(t *testing.T) {
	start := TurtleState{X: 350, Y: 700, Heading: 3 * math.Pi / 2}
	c := color.RGBA{B: 255, A: 255}

	r := NewRecorder()
	r.SetState(start)
	r.SetStrokeColor(c)
	r.SetStrokeWidth(0.5)
	if err := PythagorasTree(r, DefaultTreeParams(), 8, 50, 140); err != nil {
		t.Fatal(err)
	}

	end := r.State()
	if math.Hypot(end.X-start.X, end.Y-start.Y) > 1e-9 || math.Abs(end.Heading-start.Heading) > 1e-12 {
		t.Errorf("turtle ends at %+v, expected %+v", end, start)
	}
	if r.StrokeColor() != c || r.StrokeWidth() != 0.5 {
		t.Error("stroke attributes not restored")
	}

	trunk := r.Segments[0]
	if trunk.Width != 50 || math.Abs(trunk.Length()-140) > 1e-12 || trunk.Color != treeColor(8) {
		t.Errorf("trunk %+v", trunk)
	}
	// the first twig is the left-most leaf, at level 0
	twig := r.Segments[8]
	wantWidth := 50 * math.Pow(math.Sqrt2/2, 8)
	if math.Abs(twig.Width-wantWidth) > 1e-9 || twig.Color != TreeTwigColor {
		t.Errorf("twig %+v", twig)
	}
}

func TestTreeColor(t *testing.T) {
	cases := []struct {
		n    int
		want color.RGBA
	}{
		{0, TreeTwigColor}, // negative factor selects the twig colour
		{1, TreeTwigColor},
		{2, TreeTwigColor},
		{3, color.RGBA{R: 21, G: 119, B: 3, A: 255}},
	}
	for _, c := range cases {
		got, err := TreeColor(c.n)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("TreeColor(%d) = %v, expected %v", c.n, got, c.want)
		}
	}

	// deep trunks approach the trunk colour
	got, _ := TreeColor(100)
	if got != TreeTrunkColor {
		t.Errorf("TreeColor(100) = %v", got)
	}

	if _, err := TreeColor(-1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("TreeColor(-1): got %v", err)
	}
}

func TestTreeInvalid(t *testing.T) {
	good := DefaultTreeParams()
	cases := []struct {
		name          string
		p             TreeParams
		depth         int
		width, length float64
	}{
		{"width factor", TreeParams{1.5, 0.5, 0.5, 0.5}, 3, 1, 1},
		{"length factor", TreeParams{0.5, -0.1, 0.5, 0.5}, 3, 1, 1},
		{"left angle", TreeParams{0.5, 0.5, 2, 0.5}, 3, 1, 1},
		{"right angle", TreeParams{0.5, 0.5, 0.5, -1}, 3, 1, 1},
		{"NaN factor", TreeParams{math.NaN(), 0.5, 0.5, 0.5}, 3, 1, 1},
		{"depth", good, -1, 1, 1},
		{"width", good, 3, 0, 1},
		{"length", good, 3, 1, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := NewRecorder()
			err := PythagorasTree(r, c.p, c.depth, c.width, c.length)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("got %v", err)
			}
			if len(r.Commands) != 0 {
				t.Error("commands issued for invalid input")
			}
		})
	}
}
