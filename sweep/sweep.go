// Package sweep implements the sweep-line engines: pairwise segment
// intersection, rectangle union area, and rectangle intersection area. All
// three sort boundary events by x (start before end on ties) and sweep left
// to right over an active set of objects crossing the sweep line.
package sweep

import (
	"fmt"
	"sort"

	"github.com/stepgeom/stepgeom/geom"
	"github.com/stepgeom/stepgeom/step"
)

// EventKind tags a boundary event.
type EventKind int

const (
	Start EventKind = iota
	End
)

func (k EventKind) String() string {
	if k == Start {
		return "start"
	}
	return "end"
}

// Event is one x boundary of an input object, identified by its index into
// the engine's input collection.
type Event struct {
	X     float64
	Kind  EventKind
	Index int
}

func (e Event) String() string {
	return fmt.Sprintf("%s of #%d at x=%.6g", e.Kind, e.Index, e.X)
}

// sortEvents orders events by x, start before end on ties, then by input
// index. The full tie-break chain is what keeps traces byte-for-byte
// reproducible regardless of map-free but otherwise arbitrary input order.
func sortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !geom.Equal(a.X, b.X) {
			return a.X < b.X
		}
		if a.Kind != b.Kind {
			return a.Kind == Start
		}
		return a.Index < b.Index
	})
}

// queueItems projects the unprocessed tail of the event list, marking the
// event under the cursor as current.
func queueItems(events []Event, next int, hasCurrent bool) []step.Item {
	var items []step.Item
	for i := next; i < len(events); i++ {
		status := step.Pending
		if hasCurrent && i == next {
			status = step.Current
		}
		items = append(items, step.Item{Label: events[i].String(), Status: status})
	}
	return items
}

// Crossing is one discovered intersection, with references to both segment
// indices so a consumer can highlight the participants.
type Crossing struct {
	A, B int
	At   geom.Point
}

func (c Crossing) String() string {
	return fmt.Sprintf("#%d × #%d at %s", c.A, c.B, c.At)
}

// IntersectSnapshot is the step variant for the segment-intersection sweep.
type IntersectSnapshot struct {
	Text      string
	SweepX    float64
	EventList []Event
	NextEvent int  // index of the first unprocessed event
	Current   bool // whether the NextEvent is being processed in this step
	ActiveSet []int
	Found     []Crossing
	Segments  []geom.Segment
}

func (s IntersectSnapshot) Describe() string { return s.Text }

func (s IntersectSnapshot) Events() step.EventSets {
	ev := step.EventSets{Queue: queueItems(s.EventList, s.NextEvent, s.Current)}
	for _, idx := range s.ActiveSet {
		ev.Active = append(ev.Active, step.Item{Label: fmt.Sprintf("#%d %s", idx, s.Segments[idx]), Status: step.Active})
	}
	for _, c := range s.Found {
		ev.Output = append(ev.Output, step.Item{Label: c.String(), Status: step.Completed})
	}
	return ev
}

// AreaSnapshot is the step variant shared by the two rectangle-area sweeps.
type AreaSnapshot struct {
	Text      string
	SweepX    float64
	EventList []Event
	NextEvent int
	Current   bool
	ActiveSet []int
	Rects     []geom.Rect
	// Covered is the y coverage at the sweep position: the merged interval
	// list for the union sweep, or a single common-overlap interval for the
	// intersection sweep (empty when fewer than two rectangles are active).
	Covered []geom.Interval
	// Slabs are the finalized per-slab area contributions.
	Slabs []Slab
	Total float64
	Done  bool
}

// Slab is the area contribution of one x interval between consecutive
// distinct event positions.
type Slab struct {
	X1, X2 float64
	Height float64
}

func (sl Slab) Area() float64 {
	return (sl.X2 - sl.X1) * sl.Height
}

func (sl Slab) String() string {
	return fmt.Sprintf("slab x∈[%.6g, %.6g] h=%.6g area=%.6g", sl.X1, sl.X2, sl.Height, sl.Area())
}

func (s AreaSnapshot) Describe() string { return s.Text }

func (s AreaSnapshot) Events() step.EventSets {
	ev := step.EventSets{Queue: queueItems(s.EventList, s.NextEvent, s.Current)}
	for _, idx := range s.ActiveSet {
		ev.Active = append(ev.Active, step.Item{Label: fmt.Sprintf("#%d %s", idx, s.Rects[idx]), Status: step.Active})
	}
	for _, sl := range s.Slabs {
		status := step.Processed
		if s.Done {
			status = step.Completed
		}
		ev.Output = append(ev.Output, step.Item{Label: sl.String(), Status: status})
	}
	return ev
}

func copyInts(in []int) []int {
	out := make([]int, len(in))
	copy(out, in)
	return out
}

func copySlabs(in []Slab) []Slab {
	out := make([]Slab, len(in))
	copy(out, in)
	return out
}

func copyCrossings(in []Crossing) []Crossing {
	out := make([]Crossing, len(in))
	copy(out, in)
	return out
}
