package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/freehand"
)

func alphaAt(c *Canvas, x, y int) uint32 {
	_, _, _, a := c.Context().Image().At(x, y).RGBA()
	return a
}

type nopHost struct{ objs []*freehand.PathObject }

func (h *nopHost) Add(obj *freehand.PathObject)         { h.objs = append(h.objs, obj) }
func (h *nopHost) RequestRender()                       {}
func (h *nopHost) PathCreated(obj *freehand.PathObject) {}

func TestCanvasPaintsAndClears(t *testing.T) {
	c := NewCanvas(64, 64)
	defer c.Close()

	assert.Zero(t, alphaAt(c, 32, 32))

	brush := freehand.DefaultBrush.WithWidth(6).WithColor(color.NRGBA{R: 0xff, A: 0xff})
	host := &nopHost{}
	s := freehand.NewSession(c, host, freehand.WithBrush(brush))
	s.Press(freehand.Pt(8, 32))
	for x := 12.0; x <= 56; x += 4 {
		s.Move(freehand.Pt(x, 32))
	}
	assert.NotZero(t, alphaAt(c, 32, 32), "stroke should be visible on the preview")
	assert.Zero(t, alphaAt(c, 32, 8), "pixels away from the stroke should stay transparent")

	_, ok := s.Release()
	require.True(t, ok)
	require.Len(t, host.objs, 1)
	assert.Zero(t, alphaAt(c, 32, 32), "preview should be cleared once the stroke is committed")
}

func TestCanvasDot(t *testing.T) {
	c := NewCanvas(32, 32)
	defer c.Close()

	s := freehand.NewSession(c, &nopHost{}, freehand.WithBrush(freehand.DefaultBrush.WithWidth(8)))
	s.Press(freehand.Pt(16, 16))
	assert.NotZero(t, alphaAt(c, 16, 16), "a click without motion should leave a mark")
}

func TestStrokeStyle(t *testing.T) {
	b := freehand.DefaultBrush.
		WithWidth(3).
		WithCap(freehand.SquareCap).
		WithJoin(freehand.BevelJoin).
		WithMiterLimit(4).
		WithDashes(5, 2)
	s := StrokeStyle(b)
	assert.Equal(t, 3.0, s.Width)
	assert.Equal(t, gg.LineCapSquare, s.Cap)
	assert.Equal(t, gg.LineJoinBevel, s.Join)
	assert.Equal(t, 4.0, s.MiterLimit)
	assert.NotNil(t, s.Dash)

	s = StrokeStyle(freehand.DefaultBrush)
	assert.Equal(t, gg.LineCapRound, s.Cap)
	assert.Equal(t, gg.LineJoinRound, s.Join)
	assert.Nil(t, s.Dash, "a brush without dashes strokes solid")
}

func TestCanvasEncodePNG(t *testing.T) {
	c := NewCanvas(16, 8)
	defer c.Close()

	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 8), img.Bounds())
}
