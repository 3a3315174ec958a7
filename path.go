package freehand

import (
	"fmt"
	"iter"
	"slices"
)

type CommandKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind CommandKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// Command is one drawing command of a path description. MoveTo and LineTo use
// P0; CubicTo uses P0 and P1 as handles and P2 as the end point.
type Command struct {
	Kind CommandKind
	P0   Point
	P1   Point
	P2   Point
}

func (cmd Command) String() string {
	switch cmd.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", cmd.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", cmd.P0)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", cmd.P0, cmd.P1, cmd.P2)
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidCommand"
	}
}

// EndPoint returns the point the pen rests at after the command, or false for
// [ClosePathKind].
func (cmd Command) EndPoint() (Point, bool) {
	switch cmd.Kind {
	case MoveToKind, LineToKind:
		return cmd.P0, true
	case CubicToKind:
		return cmd.P2, true
	default:
		return Point{}, false
	}
}

// IsDrawing reports whether the command produces visible geometry.
func (cmd Command) IsDrawing() bool {
	return cmd.Kind == LineToKind || cmd.Kind == CubicToKind
}

func (cmd Command) points() []Point {
	switch cmd.Kind {
	case MoveToKind, LineToKind:
		return []Point{cmd.P0}
	case CubicToKind:
		return []Point{cmd.P0, cmd.P1, cmd.P2}
	default:
		return nil
	}
}

// Translate returns the command moved by v.
func (cmd Command) Translate(v Vec2) Command {
	switch cmd.Kind {
	case MoveToKind, LineToKind:
		cmd.P0 = cmd.P0.Translate(v)
	case CubicToKind:
		cmd.P0 = cmd.P0.Translate(v)
		cmd.P1 = cmd.P1.Translate(v)
		cmd.P2 = cmd.P2.Translate(v)
	}
	return cmd
}

func MoveTo(pt Point) Command {
	return Command{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) Command {
	return Command{Kind: LineToKind, P0: pt}
}

func CubicTo(p1, p2, p3 Point) Command {
	return Command{Kind: CubicToKind, P0: p1, P1: p2, P2: p3}
}

func ClosePath() Command {
	return Command{Kind: ClosePathKind}
}

// Path is the description of one stroke: the ordered commands that were painted
// on the preview surface, and the source of truth for the committed object.
type Path []Command

// EmptyMarker is the canonical description of a stroke without geometry.
var EmptyMarker = Path{
	MoveTo(Point{}),
	CubicTo(Point{}, Point{}, Point{}),
	LineTo(Point{}),
}

// Push adds a command to the path.
func (p *Path) Push(cmd Command) {
	*p = append(*p, cmd)
}

func (p *Path) MoveTo(pt Point)          { p.Push(MoveTo(pt)) }
func (p *Path) LineTo(pt Point)          { p.Push(LineTo(pt)) }
func (p *Path) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }
func (p *Path) ClosePath()               { p.Push(ClosePath()) }

// Reset empties the path, keeping its storage.
func (p *Path) Reset() {
	*p = (*p)[:0]
}

// Clone returns a copy of the path that does not share storage with p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	return slices.Clone(p)
}

// Translate returns a copy of the path moved by v.
func (p Path) Translate(v Vec2) Path {
	out := make(Path, len(p))
	for i, cmd := range p {
		out[i] = cmd.Translate(v)
	}
	return out
}

// Commands returns an iterator over the path's commands.
func (p Path) Commands() iter.Seq[Command] { return slices.Values(p) }

// DrawingCount returns the number of commands that produce visible geometry.
func (p Path) DrawingCount() int {
	var n int
	for _, cmd := range p {
		if cmd.IsDrawing() {
			n++
		}
	}
	return n
}

// Segments returns an iterator over the visible segments of the path. Lines are
// returned as cubics whose handles coincide with their end points.
func (p Path) Segments() iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		var start, last Point
		for _, cmd := range p {
			switch cmd.Kind {
			case MoveToKind:
				start = cmd.P0
				last = cmd.P0
			case LineToKind:
				prev := last
				last = cmd.P0
				if !yield(CubicBez{prev, prev, cmd.P0, cmd.P0}) {
					return
				}
			case CubicToKind:
				prev := last
				last = cmd.P2
				if !yield(CubicBez{prev, cmd.P0, cmd.P1, cmd.P2}) {
					return
				}
			case ClosePathKind:
				if last != start {
					prev := last
					last = start
					if !yield(CubicBez{prev, prev, start, start}) {
						return
					}
				}
			default:
				panic(fmt.Sprintf("unhandled case %v", cmd.Kind))
			}
		}
	}
}

// BoundingBox returns the tight bounding box of the path's geometry. Move
// commands contribute their points, so that a path consisting only of moves still
// has a (degenerate) position.
func (p Path) BoundingBox() Rect {
	var bbox Rect
	first := true
	add := func(r Rect) {
		if first {
			first = false
			bbox = r
		} else {
			bbox = bbox.Union(r)
		}
	}
	for _, cmd := range p {
		if cmd.Kind == MoveToKind {
			add(NewRectFromPoints(cmd.P0, cmd.P0))
		}
	}
	for seg := range p.Segments() {
		add(seg.BoundingBox())
	}
	return bbox
}

// ControlBox returns a rectangle that conservatively encloses the path.
//
// Unlike [Path.BoundingBox], this uses control points directly rather than computing
// tight bounds for curve commands.
func (p Path) ControlBox() Rect {
	first := true
	var cbox Rect
	for _, cmd := range p {
		for _, pt := range cmd.points() {
			if first {
				first = false
				cbox = NewRectFromPoints(pt, pt)
			} else {
				cbox = cbox.UnionPoint(pt)
			}
		}
	}
	return cbox
}

// IsEmptyMarker reports whether the path carries no geometry: every coordinate
// of every command is zero. This includes [EmptyMarker] and the empty path.
func (p Path) IsEmptyMarker() bool {
	for _, cmd := range p {
		for _, pt := range cmd.points() {
			if !pt.IsZero() {
				return false
			}
		}
	}
	return true
}

// Replay issues the path's commands against a preview surface, without beginning
// or stroking the path.
func (p Path) Replay(s Surface) {
	for _, cmd := range p {
		switch cmd.Kind {
		case MoveToKind:
			s.MoveTo(cmd.P0)
		case LineToKind:
			s.LineTo(cmd.P0)
		case CubicToKind:
			s.CubicTo(cmd.P0, cmd.P1, cmd.P2)
		case ClosePathKind:
			s.ClosePath()
		default:
			panic(fmt.Sprintf("unhandled case %v", cmd.Kind))
		}
	}
}
