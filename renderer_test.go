package freehand

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"slices"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		pts  []Point
		want Phase
	}{
		{nil, PhaseEmpty},
		{[]Point{Pt(1, 1)}, PhaseAnchor},
		{[]Point{Pt(1, 1), Pt(2, 2)}, PhaseAnchor},
		{[]Point{Pt(1, 1), Pt(1, 1)}, PhaseDot},
		{[]Point{Pt(1, 1), Pt(2, 2), Pt(3, 3)}, PhaseFirstSegment},
		{[]Point{Pt(1, 1), Pt(2, 2), Pt(3, 3), Pt(4, 4)}, PhaseSegment},
	}
	for _, tt := range tests {
		buf := Buffer{pts: tt.pts}
		if got := Classify(&buf); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.pts, got, tt.want)
		}
	}
}

func TestRendererEmpty(t *testing.T) {
	rec := &Recorder{}
	r := NewRenderer(rec, 0)
	var buf Buffer
	if ph := r.Render(&buf, DefaultBrush); ph != PhaseEmpty {
		t.Errorf("got phase %v, want %v", ph, PhaseEmpty)
	}
	if len(rec.Ops) != 0 {
		t.Errorf("rendering an empty buffer painted %v", rec.Ops)
	}
	if len(r.Path()) != 0 {
		t.Errorf("rendering an empty buffer described %v", r.Path())
	}
}

func TestRendererThreePointStroke(t *testing.T) {
	rec := &Recorder{}
	r := NewRenderer(rec, DefaultTension)
	var buf Buffer
	var phases []Phase
	for _, p := range []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)} {
		buf.Append(p)
		phases = append(phases, r.Render(&buf, DefaultBrush))
	}
	diff(t, []Phase{PhaseAnchor, PhaseAnchor, PhaseFirstSegment}, phases)

	// The duplicated first point acts as the start anchor's predecessor.
	h1 := ComputeHandles(Pt(0, 0), Pt(0, 0), Pt(10, 0), DefaultTension)
	h2 := ComputeHandles(Pt(0, 0), Pt(10, 0), Pt(10, 10), DefaultTension)
	diff(t, Pt(4, 0), h1.Out)
	diff(t, Pt(10, -2), h2.In)

	want := Path{
		MoveTo(Pt(0, 0)),
		MoveTo(Pt(0, 0)),
		MoveTo(Pt(0, 0)),
		MoveTo(Pt(0, 0)),
		CubicTo(h1.Out, h2.In, Pt(10, 0)),
	}
	diff(t, want, r.Path())
	if got, want := r.Path().String(), "M 0 0 M 0 0 M 0 0 M 0 0 C 4 0, 10 -2, 10 0"; got != want {
		t.Errorf("got description %q, want %q", got, want)
	}
	diff(t, []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}, buf.Points())
}

func TestRendererDot(t *testing.T) {
	rec := &Recorder{}
	r := NewRenderer(rec, DefaultTension)
	var buf Buffer
	buf.Seed(Pt(5, 5))
	if ph := r.Render(&buf, DefaultBrush.WithWidth(10)); ph != PhaseDot {
		t.Fatalf("got phase %v, want %v", ph, PhaseDot)
	}
	want := Path{
		MoveTo(Pt(4.99, 5)),
		LineTo(Pt(5.01, 5)),
	}
	diff(t, want, r.Path(), approx)
	if n := r.Path().DrawingCount(); n != 1 {
		t.Errorf("got %d drawing commands, want 1", n)
	}
	diff(t, []Point{Pt(5.01, 5)}, buf.Points(), approx)
	diff(t, want, rec.Painted(), approx)
}

func TestRendererSlidingWindow(t *testing.T) {
	r := NewRenderer(&Recorder{}, DefaultTension)
	var buf Buffer
	pts := []Point{Pt(0, 0), Pt(10, 0), Pt(20, 5), Pt(30, 0), Pt(40, 10), Pt(50, 0)}
	for i, p := range pts {
		buf.Append(p)
		r.Render(&buf, DefaultBrush)
		if buf.Len() > 3 {
			t.Fatalf("after sample %d: %d points left in the buffer", i, buf.Len())
		}
	}
	diff(t, pts[len(pts)-3:], buf.Points())
	// one segment per sample, starting with the third
	if n := r.Path().DrawingCount(); n != len(pts)-2 {
		t.Errorf("got %d segments, want %d", n, len(pts)-2)
	}
}

func TestRendererContinuity(t *testing.T) {
	rec := &Recorder{}
	r := NewRenderer(rec, DefaultTension)
	var buf Buffer
	for i := range 50 {
		x := float64(i) * 3
		buf.Append(Pt(x, 20*math.Sin(x/10)+float64(i%3)))
		r.Render(&buf, DefaultBrush)
	}

	segs := slices.Collect(r.Path().Segments())
	if len(segs) < 2 {
		t.Fatalf("got %d segments, want many", len(segs))
	}
	for i := 1; i < len(segs); i++ {
		if segs[i].Start() != segs[i-1].End() {
			t.Errorf("segment %d starts at %v, previous one ends at %v", i, segs[i].Start(), segs[i-1].End())
		}
		_, end := segs[i-1].Tangents()
		start, _ := segs[i].Tangents()
		if c := end.Cross(start) / (end.Hypot() * start.Hypot()); math.Abs(c) > 1e-9 {
			t.Errorf("kink between segments %d and %d: normalized cross product %g", i-1, i, c)
		}
		if end.Dot(start) <= 0 {
			t.Errorf("segments %d and %d meet head-on", i-1, i)
		}
	}

	// what was painted is exactly what was described
	diff(t, r.Path(), rec.Painted())
	if b, s := rec.Count(BeginPathOp), rec.Count(StrokeOp); b != 50 || s != 50 {
		t.Errorf("got %d paths begun and %d stroked, want 50 each", b, s)
	}
}

func TestRendererReset(t *testing.T) {
	r := NewRenderer(&Recorder{}, DefaultTension)
	var buf Buffer
	buf.Append(Pt(1, 1))
	r.Render(&buf, DefaultBrush)
	r.Reset()
	r.Reset()
	if len(r.Path()) != 0 {
		t.Errorf("got %v after reset, want empty description", r.Path())
	}
}

type failingSurface struct{ Recorder }

func (*failingSurface) Stroke(Brush) error { return errors.New("context lost") }

func TestRendererLogsSurfaceErrors(t *testing.T) {
	var logs bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	r := NewRenderer(&failingSurface{}, DefaultTension)
	var buf Buffer
	buf.Append(Pt(1, 1))
	r.Render(&buf, DefaultBrush)
	diff(t, Path{MoveTo(Pt(1, 1))}, r.Path())
	if !strings.Contains(logs.String(), "context lost") {
		t.Errorf("surface error was not logged, got %q", logs.String())
	}
}
