package freehand

import "fmt"

// State is the lifecycle state of a [Session].
type State int

const (
	// No stroke is in progress.
	Idle State = iota
	// A stroke is being drawn.
	Capturing
	// A released stroke is being committed.
	Finalizing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Capturing:
		return "capturing"
	case Finalizing:
		return "finalizing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Option configures a [Session].
type Option func(*Session)

// WithBrush sets the brush strokes are drawn with. The default is [DefaultBrush].
func WithBrush(b Brush) Option {
	return func(s *Session) { s.brush = b.Clone() }
}

// WithTension overrides [DefaultTension].
func WithTension(t float64) Option {
	return func(s *Session) { s.tension = t }
}

// WithOrigin sets the origin convention of committed objects. The default is
// the top left corner.
func WithOrigin(x OriginX, y OriginY) Option {
	return func(s *Session) {
		s.finalizer.OriginX = x
		s.finalizer.OriginY = y
	}
}

// Session captures one stroke at a time: a press, any number of moves, and a
// release. Press and Move paint the smoothed stroke on the preview surface as it
// grows; Release commits it to the host.
//
// A Session is not safe for concurrent use. Hosts deliver pointer events to it
// one at a time, each handled to completion before the next.
type Session struct {
	state     State
	tension   float64
	brush     Brush
	active    Brush
	buf       Buffer
	renderer  *Renderer
	finalizer Finalizer
}

// NewSession returns an idle session that previews strokes on surface and
// commits them to host.
func NewSession(surface Surface, host Host, opts ...Option) *Session {
	s := &Session{
		tension: DefaultTension,
		brush:   DefaultBrush.Clone(),
		finalizer: Finalizer{
			Surface: surface,
			Host:    host,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.renderer = NewRenderer(surface, s.tension)
	return s
}

func (s *Session) State() State { return s.state }

// Brush returns the brush the next stroke will be drawn with.
func (s *Session) Brush() Brush { return s.brush.Clone() }

// SetBrush sets the brush for subsequent strokes. A stroke in progress keeps
// the brush it was started with.
func (s *Session) SetBrush(b Brush) { s.brush = b.Clone() }

// Path returns a copy of the current stroke's path description.
func (s *Session) Path() Path { return s.renderer.Path().Clone() }

// Press starts a stroke at p. Any state left over from an earlier stroke is
// abandoned.
func (s *Session) Press(p Point) {
	if s.state != Idle {
		Logger().Debug("freehand: press while not idle, abandoning stroke", "state", s.state)
	}
	s.Reset()
	s.active = s.brush.Clone()
	s.state = Capturing
	Logger().Debug("freehand: stroke started", "at", p)
	s.buf.Seed(p)
	s.renderer.Render(&s.buf, s.active)
}

// Move extends the stroke to p. It does nothing unless a stroke is in progress
// or if p repeats the previous sample.
func (s *Session) Move(p Point) {
	if s.state != Capturing {
		return
	}
	if !s.buf.Append(p) {
		return
	}
	s.renderer.Render(&s.buf, s.active)
}

// Release ends the stroke and commits it to the host. It reports false if no
// stroke was in progress or if the stroke had no geometry.
func (s *Session) Release() (*PathObject, bool) {
	if s.state != Capturing {
		return nil, false
	}
	s.state = Finalizing
	obj, ok := s.finalizer.Finalize(s.renderer.Path(), s.active)
	s.Reset()
	return obj, ok
}

// Cancel abandons the stroke in progress without committing it.
func (s *Session) Cancel() {
	if s.state != Capturing {
		return
	}
	Logger().Debug("freehand: stroke canceled", "commands", len(s.renderer.Path()))
	s.finalizer.Surface.ClosePath()
	s.finalizer.Surface.Clear()
	s.finalizer.Host.RequestRender()
	s.Reset()
}

// Reset empties the buffer and the path description and returns the session to
// idle. It does not touch the preview surface.
func (s *Session) Reset() {
	s.buf.Reset()
	s.renderer.Reset()
	s.state = Idle
}
