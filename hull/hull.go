// Package hull implements the convex hull engines: Graham Scan, Gift
// Wrapping (Jarvis march), and QuickHull. All three consume the same point
// set and, for the same input, produce the same hull point set, though the
// vertex order and starting point may differ.
package hull

import (
	"github.com/stepgeom/stepgeom/geom"
	"github.com/stepgeom/stepgeom/step"
)

// Snapshot is the hull-family step variant: the partial hull, the points not
// yet processed, and optionally the point under consideration. Done marks the
// terminal step, whose Hull is the finished polygon boundary.
type Snapshot struct {
	Text       string
	Backtrack  bool
	Hull       []geom.Point
	Unprocessed []geom.Point
	Considered *geom.Point
	Done       bool
}

func (s Snapshot) Describe() string {
	return s.Text
}

func (s Snapshot) IsBacktrack() bool {
	return s.Backtrack
}

func (s Snapshot) Events() step.EventSets {
	var ev step.EventSets
	for _, p := range s.Unprocessed {
		ev.Queue = append(ev.Queue, step.Item{Label: p.String(), Status: step.Pending})
	}
	if s.Considered != nil {
		ev.Queue = append(ev.Queue, step.Item{Label: s.Considered.String(), Status: step.Current})
	}
	for _, p := range s.Hull {
		if s.Done {
			ev.Output = append(ev.Output, step.Item{Label: p.String(), Status: step.Completed})
		} else {
			ev.Active = append(ev.Active, step.Item{Label: p.String(), Status: step.Active})
		}
	}
	return ev
}

// snapshotHull copies a partial hull so later mutation never reaches a
// recorded step.
func snapshotHull(hull []geom.Point) []geom.Point {
	out := make([]geom.Point, len(hull))
	copy(out, hull)
	return out
}

// clonePoint boxes a point for Snapshot.Considered.
func clonePoint(p geom.Point) *geom.Point {
	q := p
	return &q
}

// IsConvex checks that every consecutive vertex triple of the closed chain
// turns the same direction (collinear triples allowed). Exposed for tests
// and for consumers that want to sanity-check a hull before drawing it.
func IsConvex(hull []geom.Point) bool {
	n := len(hull)
	if n < 3 {
		return false
	}
	var dir geom.Turn = geom.Collinear
	for i := 0; i < n; i++ {
		turn := geom.Orientation(hull[i], hull[geom.CircularIndex(i+1, n)], hull[geom.CircularIndex(i+2, n)])
		if turn == geom.Collinear {
			continue
		}
		if dir == geom.Collinear {
			dir = turn
		} else if turn != dir {
			return false
		}
	}
	return true
}

// ContainsAll reports whether every point lies inside or on the boundary of
// the hull polygon.
func ContainsAll(hull []geom.Point, points []geom.Point) bool {
	if len(hull) < 3 {
		return false
	}
	poly := geom.ClosedPolygon(hull...)
	for _, p := range points {
		if !poly.ContainsPoint(p) {
			return false
		}
	}
	return true
}
