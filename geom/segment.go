package geom

import (
	"fmt"
	"math"
)

// Segment is an ordered pair of points. The order is preserved as given;
// engines that need a canonical orientation (the sweep line, the segment
// tree) normalize on their own copies.
type Segment struct {
	P1, P2 Point
}

func Seg(p1, p2 Point) Segment {
	return Segment{p1, p2}
}

func (s Segment) Length() float64 {
	return s.P1.DistanceTo(s.P2)
}

func (s Segment) Midpoint() Point {
	return Point{(s.P1.X + s.P2.X) / 2, (s.P1.Y + s.P2.Y) / 2}
}

func (s Segment) String() string {
	return fmt.Sprintf("%s–%s", s.P1, s.P2)
}

// onSegment assumes p, q, r are collinear and checks whether q lies on the
// closed segment pr.
func onSegment(p, q, r Point) bool {
	return q.X <= math.Max(p.X, r.X)+Tolerance && q.X >= math.Min(p.X, r.X)-Tolerance &&
		q.Y <= math.Max(p.Y, r.Y)+Tolerance && q.Y >= math.Min(p.Y, r.Y)-Tolerance
}

// Intersects is the standard orientation test, including the collinear
// overlap special cases.
func (s Segment) Intersects(t Segment) bool {
	o1 := Orientation(s.P1, s.P2, t.P1)
	o2 := Orientation(s.P1, s.P2, t.P2)
	o3 := Orientation(t.P1, t.P2, s.P1)
	o4 := Orientation(t.P1, t.P2, s.P2)

	if o1 != o2 && o3 != o4 {
		return true
	}

	// Collinear cases: an endpoint of one segment lies on the other.
	if o1 == Collinear && onSegment(s.P1, t.P1, s.P2) {
		return true
	}
	if o2 == Collinear && onSegment(s.P1, t.P2, s.P2) {
		return true
	}
	if o3 == Collinear && onSegment(t.P1, s.P1, t.P2) {
		return true
	}
	if o4 == Collinear && onSegment(t.P1, s.P2, t.P2) {
		return true
	}
	return false
}

// IntersectionPoint solves the parametric intersection of the two segments.
// The second return value is false when the segments are parallel or the
// intersection parameter falls outside either segment. Collinear overlapping
// segments report no single intersection point.
func (s Segment) IntersectionPoint(t Segment) (Point, bool) {
	d1x := s.P2.X - s.P1.X
	d1y := s.P2.Y - s.P1.Y
	d2x := t.P2.X - t.P1.X
	d2y := t.P2.Y - t.P1.Y

	denom := d1x*d2y - d1y*d2x
	if math.Abs(denom) < Tolerance {
		return Point{}, false
	}

	u := ((t.P1.X-s.P1.X)*d2y - (t.P1.Y-s.P1.Y)*d2x) / denom
	v := ((t.P1.X-s.P1.X)*d1y - (t.P1.Y-s.P1.Y)*d1x) / denom
	if u < -Tolerance || u > 1+Tolerance || v < -Tolerance || v > 1+Tolerance {
		return Point{}, false
	}
	return Point{s.P1.X + u*d1x, s.P1.Y + u*d1y}, true
}

// DistanceToPoint is the perpendicular distance from p to the infinite line
// through the segment. QuickHull uses this to pick the farthest point; a
// degenerate (zero-length) segment falls back to point distance.
func (s Segment) DistanceToPoint(p Point) float64 {
	length := s.Length()
	if length < Tolerance {
		return s.P1.DistanceTo(p)
	}
	return math.Abs(Cross(s.P1, s.P2, p)) / length
}
