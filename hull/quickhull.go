package hull

import (
	"fmt"

	"github.com/stepgeom/stepgeom/geom"
	"github.com/stepgeom/stepgeom/internal/inputset"
	"github.com/stepgeom/stepgeom/step"
)

// QuickHull computes the convex hull by divide and conquer: split on the
// extreme x points, then recursively peel off the farthest point from each
// dividing segment.
//
// The recursion returns the hull points strictly between its two anchors, in
// boundary order. The farthest point must be spliced between the left and
// right recursive results; inserting it anywhere else produces a
// self-intersecting boundary.
type QuickHull struct {
	inputset.PointSet
}

func NewQuickHull() *QuickHull {
	q := &QuickHull{}
	q.Init(q.build)
	return q
}

// Hull returns the final hull, computing the trace if needed.
func (q *QuickHull) Hull() []geom.Point {
	return finalHull(q.ComputeSteps())
}

func (q *QuickHull) build(b *step.Builder) {
	points := q.Points()
	if len(points) < 3 {
		b.Record(step.Diagnostic{Text: fmt.Sprintf("need at least 3 points for a convex hull, have %d", len(points))})
		return
	}

	// Extreme points in x are always on the hull. Ties broken by y so the
	// split is deterministic for any input order.
	minIdx, maxIdx := 0, 0
	for i, p := range points {
		lo, hi := points[minIdx], points[maxIdx]
		if p.X < lo.X || (geom.Equal(p.X, lo.X) && p.Y < lo.Y) {
			minIdx = i
		}
		if p.X > hi.X || (geom.Equal(p.X, hi.X) && p.Y > hi.Y) {
			maxIdx = i
		}
	}
	lo, hi := points[minIdx], points[maxIdx]
	if lo.Eq(hi) {
		b.Record(step.Diagnostic{Text: "all points coincide; no hull exists"})
		return
	}

	var above, below []geom.Point
	for _, p := range points {
		if p.Eq(lo) || p.Eq(hi) {
			continue
		}
		switch {
		case geom.Cross(lo, hi, p) > geom.Tolerance:
			above = append(above, p)
		case geom.Cross(lo, hi, p) < -geom.Tolerance:
			below = append(below, p)
		}
		// Points on the dividing line are interior to the hull edge and are
		// dropped outright.
	}
	b.Record(Snapshot{
		Text:        fmt.Sprintf("Split on extremes %s and %s: %d points above, %d below", lo, hi, len(above), len(below)),
		Hull:        []geom.Point{lo, hi},
		Unprocessed: append(snapshotHull(above), below...),
	})

	// Upper chain runs lo→hi, lower chain hi→lo, so concatenation walks the
	// boundary counterclockwise... or clockwise, depending on which side
	// "above" falls. Either way the order is consistent.
	hull := []geom.Point{lo}
	hull = append(hull, q.divide(b, above, lo, hi)...)
	hull = append(hull, hi)
	hull = append(hull, q.divide(b, below, hi, lo)...)

	if len(hull) < 3 {
		b.Record(step.Diagnostic{Text: "all points are collinear; no hull exists"})
		return
	}
	b.Record(Snapshot{
		Text: fmt.Sprintf("Recursion exhausted; hull complete with %d vertices", len(hull)),
		Hull: snapshotHull(hull),
		Done: true,
	})
}

// divide returns the hull points strictly between from and to, in boundary
// order, considering only pts (all on the outer side of from→to). The
// builder is the only side channel threaded through the recursion.
func (q *QuickHull) divide(b *step.Builder, pts []geom.Point, from, to geom.Point) []geom.Point {
	if len(pts) == 0 {
		return nil
	}

	edge := geom.Segment{P1: from, P2: to}
	farIdx := 0
	for i, p := range pts {
		if edge.DistanceToPoint(p) > edge.DistanceToPoint(pts[farIdx]) {
			farIdx = i
		}
	}
	far := pts[farIdx]
	b.Record(Snapshot{
		Text:        fmt.Sprintf("Farthest point from %s–%s is %s (distance %.4g)", from, to, far, edge.DistanceToPoint(far)),
		Hull:        []geom.Point{from, to},
		Unprocessed: snapshotHull(pts),
		Considered:  clonePoint(far),
	})

	// Partition the remaining points by the two new triangle edges. Points
	// inside the triangle from–far–to can never be on the hull and vanish
	// here.
	var outerLeft, outerRight []geom.Point
	for i, p := range pts {
		if i == farIdx {
			continue
		}
		if geom.Cross(from, far, p) > geom.Tolerance {
			outerLeft = append(outerLeft, p)
		} else if geom.Cross(far, to, p) > geom.Tolerance {
			outerRight = append(outerRight, p)
		}
	}

	// The insertion order is load-bearing: left recursion, then the farthest
	// point, then right recursion, so hull vertices emerge in boundary order.
	result := q.divide(b, outerLeft, from, far)
	result = append(result, far)
	return append(result, q.divide(b, outerRight, far, to)...)
}
