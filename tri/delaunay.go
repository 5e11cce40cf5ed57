package tri

import (
	"fmt"
	"math"

	"github.com/stepgeom/stepgeom/geom"
	"github.com/stepgeom/stepgeom/internal/inputset"
	"github.com/stepgeom/stepgeom/step"
)

// Delaunay builds the Delaunay triangulation by Bowyer–Watson incremental
// insertion: start from a super triangle enclosing everything, insert points
// one at a time, carve out the triangles whose circumcircle contains the new
// point, and re-triangulate the hole around it.
type Delaunay struct {
	inputset.PointSet
}

func NewDelaunay() *Delaunay {
	d := &Delaunay{}
	d.Init(d.build)
	return d
}

// Triangles returns the final triangulation (super triangle removed),
// computing the trace if needed.
func (d *Delaunay) Triangles() []Triangle {
	steps := d.ComputeSteps()
	for i := len(steps) - 1; i >= 0; i-- {
		if snap, ok := steps[i].Payload.(DelaunaySnapshot); ok && snap.Done {
			return snap.Triangles
		}
	}
	return nil
}

// DelaunaySnapshot is the Delaunay step variant: the triangulation so far,
// the point being inserted, and during an insertion the bad triangles and
// the hole boundary they leave behind.
type DelaunaySnapshot struct {
	Text      string
	Pending   []geom.Point
	Current   *geom.Point
	Bad       []Triangle
	Hole      []Edge
	Triangles []Triangle
	Done      bool
}

func (s DelaunaySnapshot) Describe() string { return s.Text }

func (s DelaunaySnapshot) Events() step.EventSets {
	var ev step.EventSets
	for _, p := range s.Pending {
		ev.Queue = append(ev.Queue, step.Item{Label: p.String(), Status: step.Pending})
	}
	if s.Current != nil {
		ev.Queue = append(ev.Queue, step.Item{Label: s.Current.String(), Status: step.Current})
	}
	for _, t := range s.Bad {
		ev.Active = append(ev.Active, step.Item{Label: t.String(), Status: step.Rejected})
	}
	for _, e := range s.Hole {
		ev.Active = append(ev.Active, step.Item{Label: e.String(), Status: step.New})
	}
	for _, t := range s.Triangles {
		status := step.Processed
		if s.Done {
			status = step.Completed
		}
		ev.Output = append(ev.Output, step.Item{Label: t.String(), Status: status})
	}
	return ev
}

func (d *Delaunay) build(b *step.Builder) {
	delaunayTrace(b, d.Points())
}

// triangulatePoints is the pure form, used by the Voronoi engine's tests and
// anyone needing triangles without a trace.
func triangulatePoints(points []geom.Point) []Triangle {
	return delaunayTrace(nil, points)
}

func delaunayTrace(b *step.Builder, points []geom.Point) []Triangle {
	if len(points) < 3 {
		b.Record(step.Diagnostic{Text: fmt.Sprintf("need at least 3 points for a triangulation, have %d", len(points))})
		return nil
	}

	super := superTriangle(points)
	triangles := []Triangle{super}
	b.Record(DelaunaySnapshot{
		Text:      fmt.Sprintf("Created super triangle %s enclosing all %d points", super, len(points)),
		Pending:   append([]geom.Point(nil), points...),
		Triangles: copyTriangles(triangles),
	})

	for idx := range points {
		p := points[idx] // fresh copy; snapshots hold a pointer to it
		pending := points[idx+1:]

		// Bad triangles: circumcircle contains the new point.
		var bad []Triangle
		var good []Triangle
		for _, t := range triangles {
			if t.CircumcircleContains(p) {
				bad = append(bad, t)
			} else {
				good = append(good, t)
			}
		}
		b.Record(DelaunaySnapshot{
			Text:      fmt.Sprintf("Inserting %s: circumcircle test marks %d of %d triangles bad", p, len(bad), len(triangles)),
			Pending:   append([]geom.Point(nil), pending...),
			Current:   &p,
			Bad:       copyTriangles(bad),
			Triangles: copyTriangles(triangles),
		})

		// The hole boundary: edges appearing in exactly one bad triangle.
		hole := holeBoundary(bad)
		b.Record(DelaunaySnapshot{
			Text:      fmt.Sprintf("Removed bad triangles; hole boundary has %d edges", len(hole)),
			Pending:   append([]geom.Point(nil), pending...),
			Current:   &p,
			Hole:      hole,
			Triangles: copyTriangles(good),
		})

		// Re-triangulate by connecting the new point to each boundary edge.
		triangles = good
		for _, e := range hole {
			triangles = append(triangles, Triangle{A: e.P, B: e.Q, C: p})
		}
		b.Record(DelaunaySnapshot{
			Text:      fmt.Sprintf("Connected %s to the hole boundary: %d new triangles, %d total", p, len(hole), len(triangles)),
			Pending:   append([]geom.Point(nil), pending...),
			Triangles: copyTriangles(triangles),
		})
	}

	// Discard every triangle touching the super triangle.
	var final []Triangle
	for _, t := range triangles {
		if t.HasVertex(super.A) || t.HasVertex(super.B) || t.HasVertex(super.C) {
			continue
		}
		final = append(final, t)
	}
	b.Record(DelaunaySnapshot{
		Text:      fmt.Sprintf("Removed super-triangle remnants: %d Delaunay triangles", len(final)),
		Triangles: final,
		Done:      true,
	})
	return final
}

// superTriangle builds an enclosing triangle with a wide margin, so no
// circumcircle of an interior triangle can reach its vertices by accident.
func superTriangle(points []geom.Point) Triangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	d := math.Max(maxX-minX, maxY-minY)
	if d < 1 {
		d = 1
	}
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	return Triangle{
		A: geom.Point{X: cx - 20*d, Y: cy - d},
		B: geom.Point{X: cx + 20*d, Y: cy - d},
		C: geom.Point{X: cx, Y: cy + 20*d},
	}
}

// holeBoundary extracts the edges that appear in exactly one bad triangle.
// Edges shared by two bad triangles are interior to the hole and vanish.
func holeBoundary(bad []Triangle) []Edge {
	var boundary []Edge
	for i, t := range bad {
		for _, e := range t.Edges() {
			shared := false
			for j, other := range bad {
				if i == j {
					continue
				}
				for _, oe := range other.Edges() {
					if e.Eq(oe) {
						shared = true
						break
					}
				}
				if shared {
					break
				}
			}
			if !shared {
				boundary = append(boundary, e)
			}
		}
	}
	return boundary
}
