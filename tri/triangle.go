// Package tri implements the triangulation family: ear-clipping polygon
// triangulation, Bowyer–Watson Delaunay triangulation, the Voronoi diagram as
// the Delaunay dual, and a pedagogical Fortune beach-line sweep.
package tri

import (
	"fmt"
	"math"

	"github.com/stepgeom/stepgeom/geom"
)

// Triangle is three corner points. Unlike the input primitives, triangles
// are produced by the engines, never consumed from callers.
type Triangle struct {
	A, B, C geom.Point
}

func (t Triangle) Points() []geom.Point {
	return []geom.Point{t.A, t.B, t.C}
}

func (t Triangle) Area() float64 {
	return math.Abs(geom.Cross(t.A, t.B, t.C)) / 2
}

func (t Triangle) String() string {
	return fmt.Sprintf("△%s %s %s", t.A, t.B, t.C)
}

// HasVertex is tolerance-matched vertex membership.
func (t Triangle) HasVertex(p geom.Point) bool {
	return t.A.Eq(p) || t.B.Eq(p) || t.C.Eq(p)
}

// SharesEdgeWith reports whether the two triangles share exactly two
// vertices.
func (t Triangle) SharesEdgeWith(other Triangle) bool {
	shared := 0
	for _, p := range t.Points() {
		if other.HasVertex(p) {
			shared++
		}
	}
	return shared == 2
}

// ContainsPointStrictly tests strict interiority: boundary points do not
// count. The ear test needs this so that a ring vertex coinciding with an
// ear corner doesn't block the clip.
func (t Triangle) ContainsPointStrictly(p geom.Point) bool {
	d1 := geom.Cross(t.A, t.B, p)
	d2 := geom.Cross(t.B, t.C, p)
	d3 := geom.Cross(t.C, t.A, p)
	hasNeg := d1 < -geom.Tolerance || d2 < -geom.Tolerance || d3 < -geom.Tolerance
	hasPos := d1 > geom.Tolerance || d2 > geom.Tolerance || d3 > geom.Tolerance
	return !(hasNeg && hasPos) && !t.HasVertex(p) &&
		math.Abs(d1) > geom.Tolerance && math.Abs(d2) > geom.Tolerance && math.Abs(d3) > geom.Tolerance
}

// Circumcircle computes the center and radius of the circle through the
// three corners. A (near-)collinear triangle has no circumcircle; the
// documented fallback is the midpoint of the longest side, with half its
// length as radius.
func (t Triangle) Circumcircle() (center geom.Point, radius float64) {
	ax, ay := t.A.X, t.A.Y
	bx, by := t.B.X, t.B.Y
	cx, cy := t.C.X, t.C.Y
	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if math.Abs(d) < geom.Tolerance {
		side := t.longestSide()
		mid := side.Midpoint()
		return mid, side.Length() / 2
	}
	a2 := ax*ax + ay*ay
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy
	center = geom.Point{
		X: (a2*(by-cy) + b2*(cy-ay) + c2*(ay-by)) / d,
		Y: (a2*(cx-bx) + b2*(ax-cx) + c2*(bx-ax)) / d,
	}
	return center, center.DistanceTo(t.A)
}

func (t Triangle) longestSide() geom.Segment {
	sides := []geom.Segment{
		{P1: t.A, P2: t.B},
		{P1: t.B, P2: t.C},
		{P1: t.C, P2: t.A},
	}
	longest := sides[0]
	for _, s := range sides[1:] {
		if s.Length() > longest.Length() {
			longest = s
		}
	}
	return longest
}

// CircumcircleContains tests whether p falls inside the circumcircle, within
// tolerance. This is the "bad triangle" test of Bowyer–Watson.
func (t Triangle) CircumcircleContains(p geom.Point) bool {
	center, radius := t.Circumcircle()
	return center.DistanceTo(p) < radius+geom.Tolerance
}

// Edge is an undirected triangle edge; equality ignores orientation.
type Edge struct {
	P, Q geom.Point
}

func (e Edge) Eq(other Edge) bool {
	return (e.P.Eq(other.P) && e.Q.Eq(other.Q)) || (e.P.Eq(other.Q) && e.Q.Eq(other.P))
}

func (e Edge) Segment() geom.Segment {
	return geom.Segment{P1: e.P, P2: e.Q}
}

func (e Edge) String() string {
	return fmt.Sprintf("%s–%s", e.P, e.Q)
}

func (t Triangle) Edges() []Edge {
	return []Edge{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

func copyTriangles(in []Triangle) []Triangle {
	out := make([]Triangle, len(in))
	copy(out, in)
	return out
}
