package freehand

import "fmt"

// OriginX selects which horizontal edge of an object Left refers to.
type OriginX int

const (
	OriginLeft OriginX = iota
	OriginCenterX
	OriginRight
)

func (o OriginX) String() string {
	switch o {
	case OriginLeft:
		return "left"
	case OriginCenterX:
		return "center"
	case OriginRight:
		return "right"
	default:
		return fmt.Sprintf("OriginX(%d)", int(o))
	}
}

// OriginY selects which vertical edge of an object Top refers to.
type OriginY int

const (
	OriginTop OriginY = iota
	OriginCenterY
	OriginBottom
)

func (o OriginY) String() string {
	switch o {
	case OriginTop:
		return "top"
	case OriginCenterY:
		return "center"
	case OriginBottom:
		return "bottom"
	default:
		return fmt.Sprintf("OriginY(%d)", int(o))
	}
}

// PathObject is a committed stroke. Once handed to a [Host] it belongs to the
// host; the engine keeps no reference to it.
type PathObject struct {
	// ID is assigned by the host.
	ID string
	// Path is the stroke's geometry in path space.
	Path  Path
	Brush Brush
	// Shadow is a copy of the brush's shadow, if it has one.
	Shadow *Shadow

	OriginX OriginX
	OriginY OriginY
	// Left and Top position the object's origin in scene space.
	Left float64
	Top  float64
	// Width and Height are the extent of the path's bounding box.
	Width  float64
	Height float64
	// PathOffset is the center of the path's bounding box in path space. Scene
	// space is path space translated so that PathOffset lands on Center.
	PathOffset Point

	// Coords are the corners of the object in scene space, clockwise from the
	// top left. They are stale until SetCoords is called.
	Coords [4]Point
}

// Center returns the center of the object in scene space.
func (o *PathObject) Center() Point {
	x := o.Left
	switch o.OriginX {
	case OriginCenterX:
	case OriginRight:
		x -= o.Width / 2
	default:
		x += o.Width / 2
	}
	y := o.Top
	switch o.OriginY {
	case OriginCenterY:
	case OriginBottom:
		y -= o.Height / 2
	default:
		y += o.Height / 2
	}
	return Pt(x, y)
}

// SetPositionByOrigin positions the object so that its center lies at c.
func (o *PathObject) SetPositionByOrigin(c Point) {
	o.Left = c.X
	switch o.OriginX {
	case OriginCenterX:
	case OriginRight:
		o.Left += o.Width / 2
	default:
		o.Left -= o.Width / 2
	}
	o.Top = c.Y
	switch o.OriginY {
	case OriginCenterY:
	case OriginBottom:
		o.Top += o.Height / 2
	default:
		o.Top -= o.Height / 2
	}
}

// SetCoords recomputes Coords from the object's position and size.
func (o *PathObject) SetCoords() {
	c := o.Center()
	hw, hh := o.Width/2, o.Height/2
	o.Coords = [4]Point{
		Pt(c.X-hw, c.Y-hh),
		Pt(c.X+hw, c.Y-hh),
		Pt(c.X+hw, c.Y+hh),
		Pt(c.X-hw, c.Y+hh),
	}
}

// BoundingBox returns the object's extent in scene space.
func (o *PathObject) BoundingBox() Rect {
	c := o.Center()
	return Rect{
		X0: c.X - o.Width/2,
		Y0: c.Y - o.Height/2,
		X1: c.X + o.Width/2,
		Y1: c.Y + o.Height/2,
	}
}

// ScenePath returns the object's geometry translated into scene space.
func (o *PathObject) ScenePath() Path {
	return o.Path.Translate(o.Center().Sub(o.PathOffset))
}
