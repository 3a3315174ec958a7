// Package scene is a minimal host for freehand sessions: it collects committed
// strokes, notifies listeners about them, and renders or exports the result.
package scene

import (
	"image"
	"image/color"
	"slices"
	"sync"

	"github.com/gogpu/gg"
	"github.com/google/uuid"

	"honnef.co/go/freehand"
	"honnef.co/go/freehand/preview"
)

// Canvas is a [freehand.Host]. Committed strokes are kept in insertion order and
// rendered into a raster on every render request.
//
// Sessions must be driven from one goroutine at a time, but the object
// collection and the exporters may be used concurrently with them.
type Canvas struct {
	width, height int
	background    color.NRGBA

	preview *preview.Canvas

	mu        sync.RWMutex
	objects   []*freehand.PathObject
	listeners []func(*freehand.PathObject)
	dc        *gg.Context
	renders   int
}

var _ freehand.Host = (*Canvas)(nil)

// NewCanvas returns an empty white scene of the given size, together with its
// own preview surface.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:      width,
		height:     height,
		background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		preview:    preview.NewCanvas(width, height),
		dc:         gg.NewContext(width, height),
	}
	c.dc.ClearWithColor(gg.FromColor(c.background))
	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// SetBackground changes the color the scene is rendered on. It takes effect on
// the next render.
func (c *Canvas) SetBackground(bg color.NRGBA) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.background = bg
}

// Preview returns the surface strokes in progress are painted on.
func (c *Canvas) Preview() *preview.Canvas { return c.preview }

// NewSession returns a session that previews on the canvas's preview surface and
// commits to the canvas.
func (c *Canvas) NewSession(opts ...freehand.Option) *freehand.Session {
	return freehand.NewSession(c.preview, c, opts...)
}

// Add inserts obj into the scene, assigning it an ID if it has none.
func (c *Canvas) Add(obj *freehand.PathObject) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if obj.ID == "" {
		obj.ID = uuid.NewString()
	}
	c.objects = append(c.objects, obj)
}

// Remove deletes the object with the given ID and reports whether it existed.
func (c *Canvas) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := slices.IndexFunc(c.objects, func(obj *freehand.PathObject) bool { return obj.ID == id })
	if i < 0 {
		return false
	}
	c.objects = slices.Delete(c.objects, i, i+1)
	return true
}

// Objects returns the committed strokes in insertion order.
func (c *Canvas) Objects() []*freehand.PathObject {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.objects)
}

// Object returns the object with the given ID.
func (c *Canvas) Object(id string) (*freehand.PathObject, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, obj := range c.objects {
		if obj.ID == id {
			return obj, true
		}
	}
	return nil, false
}

// OnPathCreated registers fn to be called for every committed stroke.
func (c *Canvas) OnPathCreated(fn func(*freehand.PathObject)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// PathCreated notifies the registered listeners.
func (c *Canvas) PathCreated(obj *freehand.PathObject) {
	c.mu.RLock()
	fns := slices.Clone(c.listeners)
	c.mu.RUnlock()
	for _, fn := range fns {
		fn(obj)
	}
}

// RequestRender redraws the scene.
func (c *Canvas) RequestRender() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.render()
}

// Renders returns how many times the scene has been rendered.
func (c *Canvas) Renders() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.renders
}

// Image returns a snapshot of the last rendered scene.
func (c *Canvas) Image() image.Image {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dc.Image()
}

// Close releases the drawing contexts.
func (c *Canvas) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	err := c.dc.Close()
	if perr := c.preview.Close(); err == nil {
		err = perr
	}
	return err
}
