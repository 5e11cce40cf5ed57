package tri

import (
	"fmt"
	"math"
	"sort"

	"github.com/stepgeom/stepgeom/geom"
	"github.com/stepgeom/stepgeom/internal/inputset"
	"github.com/stepgeom/stepgeom/step"
)

// Fortune is a pedagogical, partial rendition of Fortune's sweep: a
// horizontal sweep line descends through the site events and, at each one,
// the beach line is sampled as the envelope of the parabolic arcs whose
// focus is a processed site and whose directrix is the sweep line.
//
// Circle events (arc removal and Voronoi vertex emission) are deliberately
// not implemented; the final step says so. Full beach-line maintenance is a
// scoped extension, not missing intent.
type Fortune struct {
	inputset.PointSet
}

func NewFortune() *Fortune {
	f := &Fortune{}
	f.Init(f.build)
	return f
}

// beachSamples is the fixed horizontal sampling resolution of the beach
// line polyline.
const beachSamples = 200

// FortuneSnapshot is the Fortune-sweep step variant: sweep position,
// processed sites (the arcs), and the sampled beach-line polyline.
type FortuneSnapshot struct {
	Text      string
	SweepY    float64
	Pending   []geom.Point
	Processed []geom.Point
	Beach     []geom.Point
	Done      bool
}

func (s FortuneSnapshot) Describe() string { return s.Text }

func (s FortuneSnapshot) Events() step.EventSets {
	var ev step.EventSets
	for i, p := range s.Pending {
		status := step.Pending
		if i == 0 && !s.Done {
			status = step.Current
		}
		ev.Queue = append(ev.Queue, step.Item{Label: fmt.Sprintf("site event %s", p), Status: status})
	}
	for _, p := range s.Processed {
		ev.Active = append(ev.Active, step.Item{Label: fmt.Sprintf("arc of %s", p), Status: step.Active})
	}
	return ev
}

func (f *Fortune) build(b *step.Builder) {
	sites := f.Points()
	if len(sites) < 2 {
		b.Record(step.Diagnostic{Text: fmt.Sprintf("need at least 2 sites for a beach line, have %d", len(sites))})
		return
	}

	// Site events in descending y: the sweep starts above everything and
	// moves down. Ties broken by x, then input order via stable sort.
	ordered := append([]geom.Point(nil), sites...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !geom.Equal(ordered[i].Y, ordered[j].Y) {
			return ordered[i].Y > ordered[j].Y
		}
		return ordered[i].X < ordered[j].X
	})

	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, p := range sites {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
	}
	margin := math.Max(1, (maxX-minX)/4)

	b.Record(FortuneSnapshot{
		Text:    fmt.Sprintf("Queued %d site events in descending y", len(ordered)),
		SweepY:  math.Inf(1),
		Pending: append([]geom.Point(nil), ordered...),
	})

	for i := range ordered {
		site := ordered[i]
		// Nudge the directrix just below the new site so its brand-new
		// degenerate (vertical-ray) arc does not divide by zero.
		sweepY := site.Y - geom.Tolerance
		processed := ordered[:i+1]
		beach := sampleBeachLine(processed, sweepY, minX-margin, maxX+margin)
		b.Record(FortuneSnapshot{
			Text:      fmt.Sprintf("Site event %s: sweep at y=%.6g, beach line has %d arcs", site, site.Y, len(processed)),
			SweepY:    sweepY,
			Pending:   append([]geom.Point(nil), ordered[i+1:]...),
			Processed: append([]geom.Point(nil), processed...),
			Beach:     beach,
		})
	}

	finalY := ordered[len(ordered)-1].Y - margin
	b.Record(FortuneSnapshot{
		Text:      "All site events processed. Circle events (arc removal) are not implemented; the beach line shown is the final envelope",
		SweepY:    finalY,
		Processed: ordered,
		Beach:     sampleBeachLine(ordered, finalY, minX-margin, maxX+margin),
		Done:      true,
	})
}

// sampleBeachLine samples the beach line: at each x, the lowest point still
// equidistant-or-closer to some site than to the directrix. With the y axis
// pointing up and the sweep below the sites, that is the pointwise minimum
// of the upward-opening parabolas.
func sampleBeachLine(sites []geom.Point, directrix, x1, x2 float64) []geom.Point {
	if x2 <= x1 {
		return nil
	}
	beach := make([]geom.Point, 0, beachSamples+1)
	dx := (x2 - x1) / beachSamples
	for i := 0; i <= beachSamples; i++ {
		x := x1 + float64(i)*dx
		y := math.Inf(1)
		for _, s := range sites {
			if s.Y <= directrix {
				continue
			}
			py := parabolaY(s, directrix, x)
			if py < y {
				y = py
			}
		}
		if math.IsInf(y, 1) {
			continue
		}
		beach = append(beach, geom.Point{X: x, Y: y})
	}
	return beach
}

// parabolaY evaluates the arc with the given focus and directrix at x.
func parabolaY(focus geom.Point, directrix, x float64) float64 {
	d := focus.Y - directrix
	return ((x-focus.X)*(x-focus.X) + focus.Y*focus.Y - directrix*directrix) / (2 * d)
}
