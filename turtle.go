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
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Turtle is a cursor with a position and a heading, driven by relative
// commands.  The recursive generators in this package describe their
// output in terms of a Turtle.
type Turtle interface {
	// Move advances the cursor by distance along the current heading.  If
	// draw is true, a segment from the old to the new position is drawn
	// using the current stroke colour and width.  Negative distances move
	// backwards.
	Move(distance float64, draw bool)

	// Rotate adds angle (in radians) to the heading.
	Rotate(angle float64)

	StrokeColor() color.RGBA
	SetStrokeColor(c color.RGBA)
	StrokeWidth() float64
	SetStrokeWidth(w float64)
}

// TurtleState is the position and heading of a turtle.  A heading of 0
// points along the positive x axis, a heading of π/2 along the positive y
// axis.
type TurtleState struct {
	X, Y    float64
	Heading float64
}

// pen holds the state shared by the Turtle implementations of this
// package.
type pen struct {
	pos     vec.Vec2
	heading float64
	color   color.RGBA
	width   float64
}

func newPen() pen {
	return pen{color: color.RGBA{A: 255}, width: 1}
}

// advance moves the pen and returns the start and end point of the move.
func (p *pen) advance(distance float64) (from, to vec.Vec2) {
	from = p.pos
	dir := vec.Vec2{X: math.Cos(p.heading), Y: math.Sin(p.heading)}
	p.pos = from.Add(dir.Mul(distance))
	return from, p.pos
}

func (p *pen) Rotate(angle float64)        { p.heading += angle }
func (p *pen) StrokeColor() color.RGBA     { return p.color }
func (p *pen) SetStrokeColor(c color.RGBA) { p.color = c }
func (p *pen) StrokeWidth() float64        { return p.width }
func (p *pen) SetStrokeWidth(w float64)    { p.width = w }

// State returns the current position and heading.
func (p *pen) State() TurtleState {
	return TurtleState{X: p.pos.X, Y: p.pos.Y, Heading: p.heading}
}

// SetState moves the cursor to s without drawing.
func (p *pen) SetState(s TurtleState) {
	p.pos = vec.Vec2{X: s.X, Y: s.Y}
	p.heading = s.Heading
}

// Segment is a straight line drawn by a turtle.
type Segment struct {
	From, To vec.Vec2
	Color    color.RGBA
	Width    float64
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.To.Sub(s.From).Length()
}

// CommandKind distinguishes the turtle commands kept by a [Recorder].
type CommandKind int

const (
	CmdMove CommandKind = iota
	CmdRotate
)

// Command is one recorded turtle command.  For CmdMove, Value is the
// distance and Draw tells whether a segment was drawn; for CmdRotate,
// Value is the angle.
type Command struct {
	Kind  CommandKind
	Value float64
	Draw  bool
}

// Recorder is a Turtle which keeps every command it receives, together
// with the segments drawn.
//
// The zero value is not usable; use [NewRecorder].
type Recorder struct {
	pen
	Commands []Command
	Segments []Segment
}

// NewRecorder returns a Recorder at the origin, heading along the positive
// x axis, with an opaque black stroke of width 1.
func NewRecorder() *Recorder {
	return &Recorder{pen: newPen()}
}

// Move implements [Turtle].
func (r *Recorder) Move(distance float64, draw bool) {
	from, to := r.advance(distance)
	r.Commands = append(r.Commands, Command{Kind: CmdMove, Value: distance, Draw: draw})
	if draw {
		r.Segments = append(r.Segments, Segment{From: from, To: to, Color: r.color, Width: r.width})
	}
}

// Rotate implements [Turtle].
func (r *Recorder) Rotate(angle float64) {
	r.pen.Rotate(angle)
	r.Commands = append(r.Commands, Command{Kind: CmdRotate, Value: angle})
}

// Count returns the number of recorded commands of the given kind.
// If drawOnly is set, only moves which drew a segment are counted.
func (r *Recorder) Count(kind CommandKind, drawOnly bool) int {
	n := 0
	for _, c := range r.Commands {
		if c.Kind == kind && (!drawOnly || c.Draw) {
			n++
		}
	}
	return n
}

// Replay issues the recorded commands to t.  Stroke attributes are set
// from the recorded segments before each drawing move.
func (r *Recorder) Replay(t Turtle) {
	seg := 0
	for _, c := range r.Commands {
		switch c.Kind {
		case CmdRotate:
			t.Rotate(c.Value)
		case CmdMove:
			if c.Draw {
				t.SetStrokeColor(r.Segments[seg].Color)
				t.SetStrokeWidth(r.Segments[seg].Width)
				seg++
			}
			t.Move(c.Value, c.Draw)
		}
	}
}
