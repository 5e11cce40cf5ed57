// Package dual implements the point–line duality engine: the bijective map
// taking the point (a, b) to the line y = a·x − b and the line y = m·x + c
// to the point (m, −c). The map preserves incidence, which is the whole
// point; the engine itself has no iterative state beyond recording each
// mapped pair.
package dual

import (
	"fmt"

	"github.com/stepgeom/stepgeom/geom"
	"github.com/stepgeom/stepgeom/step"
)

// Pair is one mapped primal/dual pair.
type Pair struct {
	// Exactly one of Point or Line is the primal object; PointPrimal says
	// which.
	Point       geom.Point
	Line        geom.DualLine
	PointPrimal bool
}

func (p Pair) String() string {
	if p.PointPrimal {
		return fmt.Sprintf("%s ↦ %s", p.Point, p.Line)
	}
	return fmt.Sprintf("%s ↦ %s", p.Line, p.Point)
}

// Snapshot is the duality step variant.
type Snapshot struct {
	Text          string
	PendingPoints []geom.Point
	PendingLines  []geom.DualLine
	Pairs         []Pair
	Done          bool
}

func (s Snapshot) Describe() string { return s.Text }

func (s Snapshot) Events() step.EventSets {
	var ev step.EventSets
	for _, p := range s.PendingPoints {
		ev.Queue = append(ev.Queue, step.Item{Label: p.String(), Status: step.Pending})
	}
	for _, l := range s.PendingLines {
		ev.Queue = append(ev.Queue, step.Item{Label: l.String(), Status: step.Pending})
	}
	for _, pair := range s.Pairs {
		status := step.Processed
		if s.Done {
			status = step.Completed
		}
		ev.Output = append(ev.Output, step.Item{Label: pair.String(), Status: status})
	}
	return ev
}

// Duality holds both input collections. It is the one engine with two input
// sets, so it manages them directly instead of embedding a single shared
// collection type.
type Duality struct {
	step.Trace
	points []geom.Point
	lines  []geom.DualLine
}

func NewDuality() *Duality {
	d := &Duality{}
	d.Init(d.build)
	return d
}

func (d *Duality) AddPoint(p geom.Point) {
	d.points = append(d.points, p)
	d.Invalidate()
}

func (d *Duality) RemovePoint(p geom.Point) bool {
	for i, item := range d.points {
		if item.Eq(p) {
			d.points = append(d.points[:i], d.points[i+1:]...)
			d.Invalidate()
			return true
		}
	}
	return false
}

func (d *Duality) AddLine(l geom.DualLine) {
	d.lines = append(d.lines, l)
	d.Invalidate()
}

func (d *Duality) RemoveLine(l geom.DualLine) bool {
	for i, item := range d.lines {
		if item.Eq(l) {
			d.lines = append(d.lines[:i], d.lines[i+1:]...)
			d.Invalidate()
			return true
		}
	}
	return false
}

func (d *Duality) Points() []geom.Point {
	out := make([]geom.Point, len(d.points))
	copy(out, d.points)
	return out
}

func (d *Duality) Lines() []geom.DualLine {
	out := make([]geom.DualLine, len(d.lines))
	copy(out, d.lines)
	return out
}

func (d *Duality) Clear() {
	d.points = nil
	d.lines = nil
	d.Invalidate()
}

// Pairs returns all mapped pairs, computing the trace if needed.
func (d *Duality) Pairs() []Pair {
	steps := d.ComputeSteps()
	for i := len(steps) - 1; i >= 0; i-- {
		if snap, ok := steps[i].Payload.(Snapshot); ok && snap.Done {
			return snap.Pairs
		}
	}
	return nil
}

func (d *Duality) build(b *step.Builder) {
	if len(d.points) == 0 && len(d.lines) == 0 {
		b.Record(step.Diagnostic{Text: "nothing to map; add points or lines"})
		return
	}

	b.Record(Snapshot{
		Text:          fmt.Sprintf("Mapping %d points and %d lines through the duality", len(d.points), len(d.lines)),
		PendingPoints: d.Points(),
		PendingLines:  d.Lines(),
	})

	var pairs []Pair
	for i, p := range d.points {
		pairs = append(pairs, Pair{Point: p, Line: p.Dual(), PointPrimal: true})
		b.Record(Snapshot{
			Text:          fmt.Sprintf("Point %s maps to line %s", p, p.Dual()),
			PendingPoints: d.Points()[i+1:],
			PendingLines:  d.Lines(),
			Pairs:         append([]Pair(nil), pairs...),
		})
	}
	for i, l := range d.lines {
		pairs = append(pairs, Pair{Point: l.Dual(), Line: l, PointPrimal: false})
		b.Record(Snapshot{
			Text:         fmt.Sprintf("Line %s maps to point %s", l, l.Dual()),
			PendingLines: d.Lines()[i+1:],
			Pairs:        append([]Pair(nil), pairs...),
		})
	}

	b.Record(Snapshot{
		Text:  fmt.Sprintf("Duality complete: %d pairs mapped", len(pairs)),
		Pairs: pairs,
		Done:  true,
	})
}
