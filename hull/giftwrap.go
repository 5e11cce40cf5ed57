package hull

import (
	"fmt"

	"github.com/stepgeom/stepgeom/geom"
	"github.com/stepgeom/stepgeom/internal/inputset"
	"github.com/stepgeom/stepgeom/step"
)

// GiftWrap computes the convex hull by the Jarvis march: starting from the
// left-most point, repeatedly wrap to the most counterclockwise remaining
// point. Quadratic, but every inner comparison is recorded, which is the
// point of this engine: it is the easiest hull construction to follow step
// by step.
type GiftWrap struct {
	inputset.PointSet
}

func NewGiftWrap() *GiftWrap {
	g := &GiftWrap{}
	g.Init(g.build)
	return g
}

// Hull returns the final hull, computing the trace if needed.
func (g *GiftWrap) Hull() []geom.Point {
	return finalHull(g.ComputeSteps())
}

func (g *GiftWrap) build(b *step.Builder) {
	points := g.Points()
	if len(points) < 3 {
		b.Record(step.Diagnostic{Text: fmt.Sprintf("need at least 3 points for a convex hull, have %d", len(points))})
		return
	}

	// Start at the left-most point, which is guaranteed to be on the hull.
	startIdx := 0
	for i, p := range points {
		s := points[startIdx]
		if p.X < s.X || (geom.Equal(p.X, s.X) && p.Y < s.Y) {
			startIdx = i
		}
	}
	start := points[startIdx]
	b.Record(Snapshot{
		Text:        fmt.Sprintf("Starting wrap at left-most point %s", start),
		Hull:        []geom.Point{start},
		Unprocessed: snapshotHull(points),
	})

	hull := []geom.Point{start}
	current := start
	for {
		// Pick any other point as the initial candidate, then challenge it
		// with every point in turn.
		var best geom.Point
		haveBest := false
		for _, q := range points {
			if q.Eq(current) {
				continue
			}
			if !haveBest {
				best = q
				haveBest = true
				continue
			}
			wins := moreCounterClockwise(current, best, q)
			verdict := "keeps"
			if wins {
				verdict = "replaces"
			}
			b.Record(Snapshot{
				Text:        fmt.Sprintf("Compared %s against candidate %s: %s it", q, best, verdict),
				Hull:        snapshotHull(hull),
				Unprocessed: nil,
				Considered:  clonePoint(q),
			})
			if wins {
				best = q
			}
		}

		if best.Eq(start) {
			break
		}
		hull = append(hull, best)
		current = best
		b.Record(Snapshot{
			Text: fmt.Sprintf("Wrapped to %s", best),
			Hull: snapshotHull(hull),
		})

		// A wrap can never visit more vertices than there are points; if it
		// does, the orientation tests have become inconsistent.
		if len(hull) > len(points) {
			step.Fatalf("gift wrap failed to close after %d vertices", len(hull))
		}
	}

	if len(hull) < 3 {
		b.Record(step.Diagnostic{Text: "all points are collinear; no hull exists"})
		return
	}
	b.Record(Snapshot{
		Text: fmt.Sprintf("Wrap returned to start; hull complete with %d vertices", len(hull)),
		Hull: snapshotHull(hull),
		Done: true,
	})
}
