// Package freehand captures freehand strokes from a stream of pointer positions
// and smooths them into cubic Bézier paths, incrementally, while the pointer is
// still moving.
//
// A stroke is drawn in three steps. [Session.Press] starts it, [Session.Move]
// extends it by one sample, and [Session.Release] commits it. Each press and move
// paints the newest smooth segment on a preview [Surface], so feedback costs a
// constant amount of work per sample regardless of the stroke's length. On
// release, the stroke's [Path] description is turned into a [PathObject] and
// handed to the [Host].
//
// # Smoothing
//
// Samples go into a [Buffer], a sliding window holding at most four of them. Each
// render call draws one segment between the middle two samples of the window,
// with handles computed by [ComputeHandles] from each anchor's own neighbors.
// Both handles of an anchor lie on one line, so adjacent segments join without a
// kink. Handle lengths are proportional to the distance to the neighboring
// sample, scaled by [DefaultTension].
//
// Because a segment needs a successor to shape its end, the most recent sample is
// not drawn until the next one arrives.
//
// # Path descriptions
//
// A [Path] is a sequence of typed commands that mirrors exactly what was painted
// on the preview surface, and it is the only source of the committed geometry. Its
// interchange form is
//
//	M x y                   move
//	L x y                   line
//	C h1x h1y, h2x h2y, x y cubic Bézier
//	Z                       close
//
// as written by [Path.String] and read by [ParsePath].
//
// # Dots
//
// A press without motion buffers the same point twice. The renderer pulls the
// two copies apart by a fraction of the brush width (see [DotWideningDivisor]) and
// draws a short line, so that the click leaves a visible mark. A click whose
// description carries no nonzero coordinate at all is discarded (see
// [Path.IsEmptyMarker]).
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to receive debug records
// about session transitions and warnings about failing preview surfaces.
package freehand
