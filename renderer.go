package freehand

import "fmt"

// DotWideningDivisor controls how far the two points of a click without motion
// are pulled apart: each moves by the brush width divided by this value, so that
// backends which skip zero-length paths still paint a dot.
const DotWideningDivisor = 1000

// Phase is what a render call does with the buffer it is given. It is decided
// once per call by [Classify].
type Phase int

const (
	// Nothing is buffered.
	PhaseEmpty Phase = iota
	// A single anchor, or an anchor and a distinct successor: the stroke has no
	// drawable segment yet.
	PhaseAnchor
	// Two identical points: a press without motion.
	PhaseDot
	// Three points: the first segment, which lacks a predecessor for its start
	// anchor.
	PhaseFirstSegment
	// Four points: one segment between the middle two.
	PhaseSegment
)

func (ph Phase) String() string {
	switch ph {
	case PhaseEmpty:
		return "empty"
	case PhaseAnchor:
		return "anchor"
	case PhaseDot:
		return "dot"
	case PhaseFirstSegment:
		return "first-segment"
	case PhaseSegment:
		return "segment"
	default:
		return fmt.Sprintf("Phase(%d)", int(ph))
	}
}

// Classify returns the phase of the buffer.
func Classify(buf *Buffer) Phase {
	switch n := buf.Len(); {
	case n == 0:
		return PhaseEmpty
	case n == 1:
		return PhaseAnchor
	case n == 2:
		if buf.At(0) == buf.At(1) {
			return PhaseDot
		}
		return PhaseAnchor
	case n == 3:
		return PhaseFirstSegment
	default:
		return PhaseSegment
	}
}

// Renderer turns the buffered tail of a stroke into smooth segments, one per
// call. Every command it draws is painted on its surface and appended to the
// stroke's path description, so the two never diverge.
type Renderer struct {
	surface Surface
	tension float64
	path    Path
}

// NewRenderer returns a renderer that paints on s. A tension of zero selects
// [DefaultTension].
func NewRenderer(s Surface, tension float64) *Renderer {
	if tension == 0 {
		tension = DefaultTension
	}
	return &Renderer{surface: s, tension: tension}
}

// Tension returns the tension handles are computed with.
func (r *Renderer) Tension() float64 { return r.tension }

// Path returns the description of everything drawn since the last reset. The
// returned path aliases the renderer's storage and is only valid until the next
// call to Render or Reset.
func (r *Renderer) Path() Path { return r.path }

// Reset discards the path description.
func (r *Renderer) Reset() { r.path.Reset() }

// Render consumes buf according to its phase and paints the result with brush.
// Points that have been fully consumed are evicted from the front of buf.
func (r *Renderer) Render(buf *Buffer, brush Brush) Phase {
	phase := Classify(buf)
	start := len(r.path)
	switch phase {
	case PhaseEmpty:
		return phase
	case PhaseAnchor:
		r.path.MoveTo(buf.At(0))
	case PhaseDot:
		buf.widen(brush.Width / DotWideningDivisor)
		r.path.MoveTo(buf.At(0))
		r.path.LineTo(buf.At(1))
		buf.Shift()
	case PhaseFirstSegment, PhaseSegment:
		if phase == PhaseFirstSegment {
			buf.unshift()
		}
		p0, p1, p2, p3 := buf.At(0), buf.At(1), buf.At(2), buf.At(3)
		h1 := ComputeHandles(p0, p1, p2, r.tension)
		h2 := ComputeHandles(p1, p2, p3, r.tension)
		r.path.MoveTo(p0)
		r.path.MoveTo(p1)
		r.path.CubicTo(h1.Out, h2.In, p2)
		buf.Shift()
	default:
		panic(fmt.Sprintf("unhandled case %v", phase))
	}
	r.paint(r.path[start:], brush)
	return phase
}

func (r *Renderer) paint(cmds Path, brush Brush) {
	r.surface.BeginPath()
	cmds.Replay(r.surface)
	if err := r.surface.Stroke(brush); err != nil {
		Logger().Warn("freehand: painting preview failed", "err", err)
	}
}
