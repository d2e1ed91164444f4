// Package preview shows images in a terminal, using the upper half block
// character with separate foreground and background colours, so that
// every character cell shows two pixels.
package preview

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/muesli/termenv"
	xdraw "golang.org/x/image/draw"
)

const halfBlock = "▀"

// Renderer writes images as coloured text.
type Renderer struct {
	// Width is the maximal number of terminal columns used.  Images are
	// never enlarged.
	Width int

	profile termenv.Profile
}

// New returns a renderer for the colour profile of the terminal on
// standard output.
func New(width int) *Renderer {
	return NewWithProfile(width, termenv.ColorProfile())
}

// NewWithProfile returns a renderer using the given colour profile.
func NewWithProfile(width int, profile termenv.Profile) *Renderer {
	return &Renderer{Width: width, profile: profile}
}

// Size returns the number of columns and text lines used for an image of
// the given size.
func (r *Renderer) Size(width, height int) (cols, lines int) {
	if width <= 0 || height <= 0 || r.Width <= 0 {
		return 0, 0
	}
	cols = min(width, r.Width)
	rows := max(1, (height*cols+width/2)/width)
	return cols, (rows + 1) / 2
}

// Render writes img to w.
func (r *Renderer) Render(w io.Writer, img image.Image) error {
	b := img.Bounds()
	cols, lines := r.Size(b.Dx(), b.Dy())
	if cols == 0 {
		return fmt.Errorf("cannot preview %dx%d image in %d columns", b.Dx(), b.Dy(), r.Width)
	}

	small := image.NewRGBA(image.Rect(0, 0, cols, 2*lines))
	xdraw.ApproxBiLinear.Scale(small, small.Bounds(), img, b, xdraw.Src, nil)

	out := bufio.NewWriter(w)
	for line := range lines {
		for x := range cols {
			top := small.RGBAAt(x, 2*line)
			bottom := small.RGBAAt(x, 2*line+1)
			s := r.profile.String(halfBlock).
				Foreground(r.profile.Color(hex(top))).
				Background(r.profile.Color(hex(bottom)))
			out.WriteString(s.String())
		}
		out.WriteByte('\n')
	}
	return out.Flush()
}

// hex formats the colour as #rrggbb, ignoring transparency.
func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
