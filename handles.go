package freehand

// DefaultTension scales the handles computed by [ComputeHandles]. Curvature of
// committed strokes depends on its exact value.
const DefaultTension = 0.4

// Handles are the two Bézier control points of an anchor: In shapes the segment
// arriving at the anchor, Out the segment leaving it.
type Handles struct {
	In  Point
	Out Point
}

// ComputeHandles returns the handles of p1, given its neighbors p0 and p2.
//
// Both handles lie on the line through p1 in the direction of p1→p2, so the
// segments meeting at p1 share a tangent direction (G1 continuity). Their
// lengths are proportional to the distance to the respective neighbor, which
// keeps curvature tight where samples are dense and loose where they are sparse.
//
// A coincident triple has no direction; both handles then coincide with p1.
func ComputeHandles(p0, p1, p2 Point, tension float64) Handles {
	d01 := p1.Distance(p0)
	d12 := p2.Distance(p1)
	sum := d01 + d12
	if sum == 0 {
		return Handles{In: p1, Out: p1}
	}
	fIn := tension * d01 / sum
	fOut := tension * d12 / sum
	v := p2.Sub(p1)
	return Handles{
		In:  p1.Translate(v.Mul(fIn).Negate()),
		Out: p1.Translate(v.Mul(fOut)),
	}
}
