package geometry

import "math"

// Line is the geometry of a straight, closed segment from Start to End.
// A Line with Start == End is a single point.
type Line struct {
	Start Point2D `json:"start"`
	End   Point2D `json:"end"`
}

// NewLine creates a Line between two points.
func NewLine(start, end Point2D) Line {
	return Line{Start: start, End: end}
}

// Length returns the length of the segment.
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// Midpoint returns the point halfway along the segment.
func (l Line) Midpoint() Point2D {
	return lerp(l.Start, l.End, 0.5)
}

// PointAt returns the point at parameter t in [0, 1] along the segment.
func (l Line) PointAt(t float64) Point2D {
	return lerp(l.Start, l.End, t)
}

// IsDegenerate reports whether the segment has zero length.
func (l Line) IsDegenerate() bool {
	return l.Start == l.End
}

// parallelTolerance bounds the squared sine of the angle between two
// segments below which they are handled as parallel.
const parallelTolerance = 1e-12

// PointSegmentDistance returns the minimum distance between p and segment l.
func PointSegmentDistance(p Point2D, l Line) float64 {
	return p.Distance(closestOnSegment(p, l))
}

func closestOnSegment(p Point2D, l Line) Point2D {
	d := l.End.Sub(l.Start)
	l2 := d.Dot(d)
	if l2 == 0 {
		return l.Start
	}
	return l.PointAt(clamp01(p.Sub(l.Start).Dot(d) / l2))
}

func cross(u, v Point2D) float64 {
	return u.X*v.Y - u.Y*v.X
}

// ClosestPoints returns the closest pair of points between segments a and b
// and the distance separating them.
//
// The unconstrained closest points of the two supporting lines are computed
// parametrically, then the parameters are clamped to [0, 1]; whenever the
// parameter on b is clamped, the parameter on a is recomputed against the
// clamped point. Zero-length segments reduce to point-to-segment or
// point-to-point distances and never divide by zero. Parallel and nearly
// parallel segments are resolved from orientation tests and endpoints,
// since the parametric solution loses all precision there.
func ClosestPoints(a, b Line) (pa, pb Point2D, dist float64) {
	d1 := a.End.Sub(a.Start)
	d2 := b.End.Sub(b.Start)
	r := a.Start.Sub(b.Start)

	aa := d1.Dot(d1)
	ee := d2.Dot(d2)
	f := d2.Dot(r)

	var s, t float64
	switch {
	case aa == 0 && ee == 0:
		// Both segments are points.
		s, t = 0, 0
	case aa == 0:
		s = 0
		t = clamp01(f / ee)
	default:
		c := d1.Dot(r)
		if ee == 0 {
			t = 0
			s = clamp01(-c / aa)
			break
		}

		bb := d1.Dot(d2)
		denom := aa*ee - bb*bb
		if denom <= parallelTolerance*aa*ee {
			return nearlyParallel(a, b)
		}
		s = clamp01((bb*f - c*ee) / denom)

		t = (bb*s + f) / ee
		if t < 0 {
			t = 0
			s = clamp01(-c / aa)
		} else if t > 1 {
			t = 1
			s = clamp01((bb - c) / aa)
		}
	}

	pa = a.PointAt(s)
	pb = b.PointAt(t)
	return pa, pb, pa.Distance(pb)
}

func nearlyParallel(a, b Line) (pa, pb Point2D, dist float64) {
	d1 := a.End.Sub(a.Start)
	d2 := b.End.Sub(b.Start)

	// Signed offsets of each segment's endpoints from the other's line.
	o1, o2 := cross(d1, b.Start.Sub(a.Start)), cross(d1, b.End.Sub(a.Start))
	o3, o4 := cross(d2, a.Start.Sub(b.Start)), cross(d2, a.End.Sub(b.Start))
	if o1*o2 < 0 && o3*o4 < 0 {
		p := a.PointAt(o3 / (o3 - o4))
		return p, p, 0
	}

	dist = math.Inf(1)
	consider := func(p, q Point2D) {
		if d := p.Distance(q); d < dist {
			pa, pb, dist = p, q, d
		}
	}
	for _, p := range [2]Point2D{a.Start, a.End} {
		consider(p, closestOnSegment(p, b))
	}
	for _, q := range [2]Point2D{b.Start, b.End} {
		consider(closestOnSegment(q, a), q)
	}
	return pa, pb, dist
}

// SegmentDistance returns the exact minimum distance between segments a and b.
// The result is zero when the segments touch or intersect.
func SegmentDistance(a, b Line) float64 {
	_, _, d := ClosestPoints(a, b)
	return d
}

// SegmentsConflict reports whether segments a and b come strictly closer
// than buffer anywhere along their lengths.
func SegmentsConflict(a, b Line, buffer float64) bool {
	return SegmentDistance(a, b) < buffer
}

// LegacyConflict is the midpoint-and-endpoint heuristic: it compares only the
// two midpoints and the four endpoint pairs against buffer. It misses crossings
// away from those sample points and exists solely to reproduce the output of
// older deconfliction runs.
func LegacyConflict(a, b Line, buffer float64) bool {
	if a.Midpoint().Distance(b.Midpoint()) < buffer {
		return true
	}
	for _, p := range [2]Point2D{a.Start, a.End} {
		for _, q := range [2]Point2D{b.Start, b.End} {
			if p.Distance(q) < buffer {
				return true
			}
		}
	}
	return false
}
