package freehand

import "fmt"

// Surface is the live preview layer a stroke is painted on while it is being
// drawn. Calls follow the immediate-mode model of 2D canvas APIs: a path is
// begun, built up with pen commands, and stroked.
//
// Errors returned by Stroke are logged and otherwise ignored; a failing preview
// never interrupts a stroke.
type Surface interface {
	BeginPath()
	MoveTo(p Point)
	LineTo(p Point)
	CubicTo(c1, c2, p Point)
	ClosePath()
	Stroke(b Brush) error
	// Clear erases everything painted on the surface.
	Clear()
}

type SurfaceOpKind int

const (
	BeginPathOp SurfaceOpKind = iota + 1
	MoveToOp
	LineToOp
	CubicToOp
	ClosePathOp
	StrokeOp
	ClearOp
)

func (k SurfaceOpKind) String() string {
	switch k {
	case BeginPathOp:
		return "BeginPath"
	case MoveToOp:
		return "MoveTo"
	case LineToOp:
		return "LineTo"
	case CubicToOp:
		return "CubicTo"
	case ClosePathOp:
		return "ClosePath"
	case StrokeOp:
		return "Stroke"
	case ClearOp:
		return "Clear"
	default:
		return fmt.Sprintf("SurfaceOpKind(%d)", int(k))
	}
}

// SurfaceOp is one call recorded by a [Recorder].
type SurfaceOp struct {
	Kind   SurfaceOpKind
	Points []Point
	// Brush is set for StrokeOp.
	Brush Brush
}

// Recorder is a Surface that records the calls made to it. It is what tests and
// headless hosts use in place of a real drawing context.
type Recorder struct {
	Ops []SurfaceOp

	pending Path
	painted Path
}

var _ Surface = (*Recorder)(nil)

func (r *Recorder) record(kind SurfaceOpKind, pts ...Point) {
	r.Ops = append(r.Ops, SurfaceOp{Kind: kind, Points: pts})
}

func (r *Recorder) BeginPath() {
	r.record(BeginPathOp)
	r.pending = r.pending[:0]
}

func (r *Recorder) MoveTo(p Point) {
	r.record(MoveToOp, p)
	r.pending.MoveTo(p)
}

func (r *Recorder) LineTo(p Point) {
	r.record(LineToOp, p)
	r.pending.LineTo(p)
}

func (r *Recorder) CubicTo(c1, c2, p Point) {
	r.record(CubicToOp, c1, c2, p)
	r.pending.CubicTo(c1, c2, p)
}

func (r *Recorder) ClosePath() {
	r.record(ClosePathOp)
}

func (r *Recorder) Stroke(b Brush) error {
	r.Ops = append(r.Ops, SurfaceOp{Kind: StrokeOp, Brush: b})
	r.painted = append(r.painted, r.pending...)
	return nil
}

func (r *Recorder) Clear() {
	r.record(ClearOp)
	r.pending = r.pending[:0]
	r.painted = nil
}

// Painted returns the commands stroked since the surface was last cleared.
func (r *Recorder) Painted() Path {
	return r.painted.Clone()
}

// Count returns how many calls of the given kind were recorded.
func (r *Recorder) Count(kind SurfaceOpKind) int {
	var n int
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
