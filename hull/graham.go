package hull

import (
	"fmt"
	"math"
	"sort"

	"github.com/stepgeom/stepgeom/geom"
	"github.com/stepgeom/stepgeom/internal/inputset"
	"github.com/stepgeom/stepgeom/step"
)

// GrahamScan computes the convex hull by sorting points around a pivot and
// scanning with a stack. Each push and each pop is its own snapshot; pops
// carry the backtrack flag.
type GrahamScan struct {
	inputset.PointSet
}

func NewGrahamScan() *GrahamScan {
	g := &GrahamScan{}
	g.Init(g.build)
	return g
}

// Hull returns the final hull in counterclockwise order, computing the trace
// if needed. Nil when the input is insufficient.
func (g *GrahamScan) Hull() []geom.Point {
	return finalHull(g.ComputeSteps())
}

func (g *GrahamScan) build(b *step.Builder) {
	points := g.Points()
	if len(points) < 3 {
		b.Record(step.Diagnostic{Text: fmt.Sprintf("need at least 3 points for a convex hull, have %d", len(points))})
		return
	}

	// Pivot: bottom-most point, ties broken left-most.
	pivotIdx := 0
	for i, p := range points {
		pivot := points[pivotIdx]
		if p.Y < pivot.Y || (geom.Equal(p.Y, pivot.Y) && p.X < pivot.X) {
			pivotIdx = i
		}
	}
	pivot := points[pivotIdx]
	rest := append(points[:pivotIdx:pivotIdx], points[pivotIdx+1:]...)

	// Sort by polar angle around the pivot, ties by increasing distance. The
	// distance tie-break is what lets the scan silently drop collinear
	// duplicates of a hull direction.
	sort.SliceStable(rest, func(i, j int) bool {
		ai := rest[i].PolarAngleAround(pivot)
		aj := rest[j].PolarAngleAround(pivot)
		if !geom.Equal(ai, aj) {
			return ai < aj
		}
		return pivot.SquaredDistanceTo(rest[i]) < pivot.SquaredDistanceTo(rest[j])
	})

	b.Record(Snapshot{
		Text:        fmt.Sprintf("Picked pivot %s and sorted %d points by polar angle", pivot, len(rest)),
		Hull:        []geom.Point{pivot},
		Unprocessed: snapshotHull(rest),
	})

	stack := []geom.Point{pivot, rest[0]}
	b.Record(Snapshot{
		Text:        fmt.Sprintf("Pushed first sorted point %s", rest[0]),
		Hull:        snapshotHull(stack),
		Unprocessed: snapshotHull(rest[1:]),
	})

	for i, p := range rest[1:] {
		remaining := rest[i+2:]
		// Pop while the last two stack points and p turn clockwise or are
		// collinear.
		for len(stack) >= 2 && geom.Cross(stack[len(stack)-2], stack[len(stack)-1], p) <= geom.Tolerance {
			popped := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			b.Record(Snapshot{
				Text:        fmt.Sprintf("Popped %s: %s makes a non-left turn", popped, p),
				Backtrack:   true,
				Hull:        snapshotHull(stack),
				Unprocessed: snapshotHull(remaining),
				Considered:  clonePoint(p),
			})
		}
		stack = append(stack, p)
		b.Record(Snapshot{
			Text:        fmt.Sprintf("Pushed %s", p),
			Hull:        snapshotHull(stack),
			Unprocessed: snapshotHull(remaining),
		})
	}

	if len(stack) < 3 {
		// All input points collinear; the scan degenerates to a segment.
		b.Record(step.Diagnostic{Text: "all points are collinear; no hull exists"})
		return
	}

	b.Record(Snapshot{
		Text: fmt.Sprintf("Hull complete with %d vertices (counterclockwise)", len(stack)),
		Hull: snapshotHull(stack),
		Done: true,
	})
}

// finalHull extracts the hull of the terminal snapshot, shared by all three
// engines.
func finalHull(steps []step.Step) []geom.Point {
	for i := len(steps) - 1; i >= 0; i-- {
		if snap, ok := steps[i].Payload.(Snapshot); ok && snap.Done {
			return snap.Hull
		}
	}
	return nil
}

// moreCounterClockwise reports whether candidate is a strictly better gift
// wrap choice than best, as seen from current. It lives beside the Graham
// comparator so the two tie-break conventions can be read together: Graham
// breaks angle ties toward the pivot, gift wrapping away from the current
// point.
func moreCounterClockwise(current, best, candidate geom.Point) bool {
	cross := geom.Cross(current, best, candidate)
	if math.Abs(cross) < geom.Tolerance {
		return current.SquaredDistanceTo(candidate) > current.SquaredDistanceTo(best)
	}
	return cross > 0
}
