package freehand

// Buffer holds the unconsumed tail of an in-progress stroke. Samples are appended
// as they are captured and evicted from the front once rendering has consumed
// them, so at most four points are live at any render call.
//
// The zero value is an empty buffer ready for use.
type Buffer struct {
	pts []Point
}

// Append adds p to the end of the buffer. It does nothing and returns false if p
// equals the last buffered point, which filters out redundant pointer events.
func (b *Buffer) Append(p Point) bool {
	if n := len(b.pts); n > 0 && b.pts[n-1] == p {
		return false
	}
	b.pts = append(b.pts, p)
	return true
}

// Seed empties the buffer and fills it with the dot candidate for a press at p:
// the press position followed by its first sample. This is the only way two equal
// points can follow each other in the buffer.
func (b *Buffer) Seed(p Point) {
	b.pts = append(b.pts[:0], p, p)
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	b.pts = b.pts[:0]
}

func (b *Buffer) Len() int { return len(b.pts) }

// At returns the i'th buffered point.
func (b *Buffer) At(i int) Point { return b.pts[i] }

// Last returns the most recently buffered point, or false if the buffer is empty.
func (b *Buffer) Last() (Point, bool) {
	if len(b.pts) == 0 {
		return Point{}, false
	}
	return b.pts[len(b.pts)-1], true
}

// Points returns a copy of the buffered points.
func (b *Buffer) Points() []Point {
	return append([]Point(nil), b.pts...)
}

// Shift evicts the front point.
func (b *Buffer) Shift() {
	if len(b.pts) == 0 {
		return
	}
	n := copy(b.pts, b.pts[1:])
	b.pts = b.pts[:n]
}

// unshift duplicates the front point, synthesizing a predecessor for the first
// segment of a stroke.
func (b *Buffer) unshift() {
	if len(b.pts) == 0 {
		return
	}
	b.pts = append(b.pts, Point{})
	copy(b.pts[1:], b.pts)
}

// widen pulls the first two points apart horizontally, by dx each.
func (b *Buffer) widen(dx float64) {
	b.pts[0].X -= dx
	b.pts[1].X += dx
}
