package sweep

import (
	"fmt"
	"math"

	"github.com/stepgeom/stepgeom/geom"
	"github.com/stepgeom/stepgeom/internal/inputset"
	"github.com/stepgeom/stepgeom/step"
)

// RectUnion sweeps rectangle x boundaries and accumulates the union area:
// between consecutive distinct event positions, the slab contributes
// Δx times the merged length of all active y intervals.
type RectUnion struct {
	inputset.RectSet
}

func NewRectUnion() *RectUnion {
	e := &RectUnion{}
	e.Init(func(b *step.Builder) {
		buildAreaSweep(b, e.RectSet.Rects(), "union", unionCoverage)
	})
	return e
}

// TotalArea returns the final union area, computing the trace if needed.
func (e *RectUnion) TotalArea() float64 {
	return finalArea(e.ComputeSteps())
}

// RectIntersection sweeps the same events but a slab only contributes where
// all active rectangles overlap: the common y interval is max(all y1) to
// min(all y2), clamped to zero, and at least two rectangles must be active.
type RectIntersection struct {
	inputset.RectSet
}

func NewRectIntersection() *RectIntersection {
	e := &RectIntersection{}
	e.Init(func(b *step.Builder) {
		buildAreaSweep(b, e.RectSet.Rects(), "intersection", intersectionCoverage)
	})
	return e
}

// TotalArea returns the final intersection area, computing the trace if
// needed.
func (e *RectIntersection) TotalArea() float64 {
	return finalArea(e.ComputeSteps())
}

func finalArea(steps []step.Step) float64 {
	for i := len(steps) - 1; i >= 0; i-- {
		if snap, ok := steps[i].Payload.(AreaSnapshot); ok {
			return snap.Total
		}
	}
	return 0
}

// coverageFunc computes the covered y intervals for the given active
// rectangles.
type coverageFunc func(rects []geom.Rect, active []int) []geom.Interval

func unionCoverage(rects []geom.Rect, active []int) []geom.Interval {
	intervals := make([]geom.Interval, 0, len(active))
	for _, idx := range active {
		intervals = append(intervals, rects[idx].YInterval())
	}
	return geom.MergeIntervals(intervals)
}

func intersectionCoverage(rects []geom.Rect, active []int) []geom.Interval {
	if len(active) < 2 {
		return nil
	}
	lo := math.Inf(-1)
	hi := math.Inf(1)
	for _, idx := range active {
		lo = math.Max(lo, rects[idx].Y1)
		hi = math.Min(hi, rects[idx].Y2)
	}
	if hi <= lo {
		return nil
	}
	return []geom.Interval{{Start: lo, End: hi}}
}

// buildAreaSweep is the skeleton shared by both rectangle sweeps; only the
// coverage rule differs.
func buildAreaSweep(b *step.Builder, rects []geom.Rect, kind string, coverage coverageFunc) {
	minimum := 1
	if kind == "intersection" {
		minimum = 2
	}
	if len(rects) < minimum {
		b.Record(step.Diagnostic{Text: fmt.Sprintf("need at least %d rectangles for %s area, have %d", minimum, kind, len(rects))})
		return
	}

	events := make([]Event, 0, 2*len(rects))
	for i, r := range rects {
		events = append(events, Event{X: r.X1, Kind: Start, Index: i})
		events = append(events, Event{X: r.X2, Kind: End, Index: i})
	}
	sortEvents(events)

	b.Record(AreaSnapshot{
		Text:      fmt.Sprintf("Sorted %d boundary events for %d rectangles (%s area)", len(events), len(rects), kind),
		SweepX:    math.Inf(-1),
		EventList: events,
		Rects:     rects,
	})

	var active []int
	var slabs []Slab
	total := 0.0
	prevX := events[0].X
	for evIdx, ev := range events {
		// Close out the slab between the previous event position and this
		// one using the active set as it stood inside that slab.
		if ev.X > prevX+geom.Tolerance && len(active) > 0 {
			covered := coverage(rects, active)
			height := geom.TotalLength(covered)
			if height > 0 {
				slab := Slab{X1: prevX, X2: ev.X, Height: height}
				slabs = append(slabs, slab)
				total += slab.Area()
				b.Record(AreaSnapshot{
					Text:      fmt.Sprintf("Slab x∈[%.6g, %.6g] covers height %.6g: +%.6g area, total %.6g", prevX, ev.X, height, slab.Area(), total),
					SweepX:    ev.X,
					EventList: events,
					NextEvent: evIdx,
					ActiveSet: copyInts(active),
					Rects:     rects,
					Covered:   covered,
					Slabs:     copySlabs(slabs),
					Total:     total,
				})
			}
		}
		prevX = ev.X

		switch ev.Kind {
		case Start:
			active = append(active, ev.Index)
		case End:
			for i, idx := range active {
				if idx == ev.Index {
					active = append(active[:i], active[i+1:]...)
					break
				}
			}
		}
		b.Record(AreaSnapshot{
			Text:      fmt.Sprintf("Processed %s; %d rectangles active", ev, len(active)),
			SweepX:    ev.X,
			EventList: events,
			NextEvent: evIdx,
			Current:   true,
			ActiveSet: copyInts(active),
			Rects:     rects,
			Covered:   coverage(rects, active),
			Slabs:     copySlabs(slabs),
			Total:     total,
		})
	}

	b.Record(AreaSnapshot{
		Text:      fmt.Sprintf("Sweep complete: total %s area %.6g over %d slabs", kind, total, len(slabs)),
		SweepX:    math.Inf(1),
		EventList: events,
		NextEvent: len(events),
		Rects:     rects,
		Slabs:     slabs,
		Total:     total,
		Done:      true,
	})
}
