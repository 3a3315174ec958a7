// Package preview implements the live preview layer of freehand strokes on top of
// a gg drawing context.
package preview

import (
	"io"

	"github.com/gogpu/gg"

	"honnef.co/go/freehand"
)

// Canvas is a [freehand.Surface] that rasterizes the preview into an image. It
// starts out transparent, so it can be composited over a host's scene.
type Canvas struct {
	dc *gg.Context
}

var _ freehand.Surface = (*Canvas)(nil)

// NewCanvas returns a transparent canvas of the given size in pixels.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height)}
}

// Wrap returns a canvas that draws into an existing context.
func Wrap(dc *gg.Context) *Canvas {
	return &Canvas{dc: dc}
}

// Context returns the underlying drawing context.
func (c *Canvas) Context() *gg.Context { return c.dc }

func (c *Canvas) BeginPath() { c.dc.ClearPath() }

func (c *Canvas) MoveTo(p freehand.Point) { c.dc.MoveTo(p.X, p.Y) }

func (c *Canvas) LineTo(p freehand.Point) { c.dc.LineTo(p.X, p.Y) }

func (c *Canvas) CubicTo(c1, c2, p freehand.Point) {
	c.dc.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
}

func (c *Canvas) ClosePath() { c.dc.ClosePath() }

// Stroke paints the current path with b and clears it.
func (c *Canvas) Stroke(b freehand.Brush) error {
	c.dc.SetColor(b.Color)
	c.dc.SetStroke(StrokeStyle(b))
	return c.dc.Stroke()
}

// Clear erases the canvas back to transparency.
func (c *Canvas) Clear() {
	c.dc.ClearPath()
	c.dc.Clear()
}

// EncodePNG writes the current preview to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Close releases the drawing context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

// StrokeStyle translates a brush into gg stroke parameters. Colors and shadows
// are not part of a gg stroke and are left to the caller.
func StrokeStyle(b freehand.Brush) gg.Stroke {
	s := gg.Stroke{
		Width:      b.Width,
		MiterLimit: b.MiterLimit,
		Dash:       gg.NewDash(b.DashPattern...),
	}
	switch b.Cap {
	case freehand.ButtCap:
		s.Cap = gg.LineCapButt
	case freehand.SquareCap:
		s.Cap = gg.LineCapSquare
	default:
		s.Cap = gg.LineCapRound
	}
	switch b.Join {
	case freehand.BevelJoin:
		s.Join = gg.LineJoinBevel
	case freehand.MiterJoin:
		s.Join = gg.LineJoinMiter
	default:
		s.Join = gg.LineJoinRound
	}
	return s
}
