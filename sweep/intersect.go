package sweep

import (
	"fmt"
	"math"
	"sort"

	"github.com/stepgeom/stepgeom/geom"
	"github.com/stepgeom/stepgeom/internal/inputset"
	"github.com/stepgeom/stepgeom/step"
)

// SegmentIntersection sweeps over segment endpoints, testing each newly
// started segment against everything currently active. This is the naive
// O(n²)-per-sweep variant; at teaching scale the quadratic inner loop is a
// feature, since every test becomes a visible comparison.
type SegmentIntersection struct {
	inputset.SegmentSet
}

func NewSegmentIntersection() *SegmentIntersection {
	e := &SegmentIntersection{}
	e.Init(e.build)
	return e
}

// Crossings returns all discovered intersections, computing the trace if
// needed.
func (e *SegmentIntersection) Crossings() []Crossing {
	steps := e.ComputeSteps()
	for i := len(steps) - 1; i >= 0; i-- {
		if snap, ok := steps[i].Payload.(IntersectSnapshot); ok {
			return snap.Found
		}
	}
	return nil
}

func (e *SegmentIntersection) build(b *step.Builder) {
	segments := e.Segments()
	if len(segments) < 2 {
		b.Record(step.Diagnostic{Text: fmt.Sprintf("need at least 2 segments to intersect, have %d", len(segments))})
		return
	}

	events := make([]Event, 0, 2*len(segments))
	for i, s := range segments {
		left, right := s.P1.X, s.P2.X
		if left > right {
			left, right = right, left
		}
		events = append(events, Event{X: left, Kind: Start, Index: i})
		events = append(events, Event{X: right, Kind: End, Index: i})
	}
	sortEvents(events)

	b.Record(IntersectSnapshot{
		Text:      fmt.Sprintf("Sorted %d endpoint events for %d segments", len(events), len(segments)),
		SweepX:    math.Inf(-1),
		EventList: events,
		Segments:  segments,
	})

	var active []int
	var found []Crossing
	for evIdx, ev := range events {
		switch ev.Kind {
		case Start:
			// Test the entering segment against every active one. An
			// intersection counts only at or right of the sweep position; the
			// pair was never tested before this event, so each crossing is
			// recorded exactly once.
			for _, other := range active {
				at, ok := crossingPoint(segments[ev.Index], segments[other])
				if !ok || at.X < ev.X-geom.Tolerance {
					continue
				}
				lo, hi := other, ev.Index
				if lo > hi {
					lo, hi = hi, lo
				}
				found = append(found, Crossing{A: lo, B: hi, At: at})
			}
			active = append(active, ev.Index)
			sort.Ints(active)
			b.Record(IntersectSnapshot{
				Text:      fmt.Sprintf("Segment #%d enters; tested against %d active, %d total intersections", ev.Index, len(active)-1, len(found)),
				SweepX:    ev.X,
				EventList: events,
				NextEvent: evIdx,
				Current:   true,
				ActiveSet: copyInts(active),
				Found:     copyCrossings(found),
				Segments:  segments,
			})
		case End:
			for i, idx := range active {
				if idx == ev.Index {
					active = append(active[:i], active[i+1:]...)
					break
				}
			}
			b.Record(IntersectSnapshot{
				Text:      fmt.Sprintf("Segment #%d leaves; %d remain active", ev.Index, len(active)),
				SweepX:    ev.X,
				EventList: events,
				NextEvent: evIdx,
				Current:   true,
				ActiveSet: copyInts(active),
				Found:     copyCrossings(found),
				Segments:  segments,
			})
		}
	}

	b.Record(IntersectSnapshot{
		Text:      fmt.Sprintf("Sweep complete: %d intersections", len(found)),
		SweepX:    math.Inf(1),
		EventList: events,
		NextEvent: len(events),
		ActiveSet: nil,
		Found:     found,
		Segments:  segments,
	})
}

// crossingPoint is Segment.IntersectionPoint extended to collinear overlaps,
// which it reports at the midpoint of the shared portion.
func crossingPoint(s, t geom.Segment) (geom.Point, bool) {
	if at, ok := s.IntersectionPoint(t); ok {
		return at, true
	}
	if !s.Intersects(t) {
		return geom.Point{}, false
	}
	// Parallel but touching: gather the endpoints each segment contributes to
	// the other and average the extremes.
	var onBoth []geom.Point
	for _, p := range []geom.Point{s.P1, s.P2} {
		if t.DistanceToPoint(p) < geom.Tolerance && onSpan(t, p) {
			onBoth = append(onBoth, p)
		}
	}
	for _, p := range []geom.Point{t.P1, t.P2} {
		if s.DistanceToPoint(p) < geom.Tolerance && onSpan(s, p) {
			onBoth = append(onBoth, p)
		}
	}
	if len(onBoth) == 0 {
		return geom.Point{}, false
	}
	mid := geom.Point{}
	for _, p := range onBoth {
		mid.X += p.X
		mid.Y += p.Y
	}
	mid.X /= float64(len(onBoth))
	mid.Y /= float64(len(onBoth))
	return mid, true
}

// onSpan checks that p falls within the segment's bounding span.
func onSpan(s geom.Segment, p geom.Point) bool {
	return p.X >= math.Min(s.P1.X, s.P2.X)-geom.Tolerance &&
		p.X <= math.Max(s.P1.X, s.P2.X)+geom.Tolerance &&
		p.Y >= math.Min(s.P1.Y, s.P2.Y)-geom.Tolerance &&
		p.Y <= math.Max(s.P1.Y, s.P2.Y)+geom.Tolerance
}
