package scene

import (
	"io"

	"github.com/gogpu/gg"

	"honnef.co/go/freehand"
	"honnef.co/go/freehand/preview"
)

// render redraws all objects. c.mu must be held for writing.
func (c *Canvas) render() {
	c.renders++
	c.dc.ClearPath()
	c.dc.ClearWithColor(gg.FromColor(c.background))
	s := preview.Wrap(c.dc)
	for _, obj := range c.objects {
		drawObject(s, obj)
	}
}

// drawObject strokes obj in scene space, preceded by its shadow. Shadows are
// drawn as an offset copy of the stroke; blur is not rasterized.
func drawObject(s freehand.Surface, obj *freehand.PathObject) {
	path := obj.ScenePath()
	if sh := obj.Shadow; sh != nil && sh.AffectStroke {
		shadow := obj.Brush.WithColor(sh.Color)
		s.BeginPath()
		path.Translate(freehand.Vec(sh.OffsetX, sh.OffsetY)).Replay(s)
		if err := s.Stroke(shadow); err != nil {
			freehand.Logger().Warn("scene: drawing shadow failed", "id", obj.ID, "err", err)
		}
	}
	s.BeginPath()
	path.Replay(s)
	if err := s.Stroke(obj.Brush); err != nil {
		freehand.Logger().Warn("scene: drawing object failed", "id", obj.ID, "err", err)
	}
}

// WritePNG renders the scene and writes it to w as a PNG image.
func (c *Canvas) WritePNG(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.render()
	return c.dc.EncodePNG(w)
}
