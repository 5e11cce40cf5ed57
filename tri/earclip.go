package tri

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/stepgeom/stepgeom/geom"
	"github.com/stepgeom/stepgeom/internal/inputset"
	"github.com/stepgeom/stepgeom/step"
)

// EarClip triangulates a simple polygon by repeatedly clipping ears: a
// convex corner whose triangle contains no other ring vertex. Ear clipping
// is undefined on self-intersecting polygons, so those are rejected up front
// with a single diagnostic step and never attempted.
type EarClip struct {
	inputset.PolygonInput
}

func NewEarClip() *EarClip {
	e := &EarClip{}
	e.Init(e.build)
	return e
}

// Triangles returns the final triangulation, computing the trace if needed.
// Nil when the polygon is invalid or incomplete.
func (e *EarClip) Triangles() []Triangle {
	steps := e.ComputeSteps()
	for i := len(steps) - 1; i >= 0; i-- {
		if snap, ok := steps[i].Payload.(ClipSnapshot); ok && snap.Done {
			return snap.Triangles
		}
	}
	return nil
}

func (e *EarClip) build(b *step.Builder) {
	earClipTrace(b, e.Polygon())
}

// Triangulate is the pure form of the ear-clipping engine, used by the art
// gallery engine and anyone else who wants triangles without a trace. An
// internal engine panic surfaces as an error here rather than a diagnostic
// step.
func Triangulate(poly *geom.Polygon) (triangles []Triangle, err error) {
	defer func() {
		if recovered := step.RecoverEngineError(recover()); recovered != nil {
			triangles = nil
			err = recovered
		}
	}()
	return earClipTrace(nil, poly)
}

// ClipSnapshot is the ear-clipping step variant: the surviving vertex ring,
// the candidate ear under test, and the triangles clipped so far.
type ClipSnapshot struct {
	Text      string
	Ring      []geom.Point
	Candidate *Triangle
	Rejected  bool
	Triangles []Triangle
	Done      bool
}

func (s ClipSnapshot) Describe() string { return s.Text }

func (s ClipSnapshot) Events() step.EventSets {
	var ev step.EventSets
	for _, p := range s.Ring {
		ev.Active = append(ev.Active, step.Item{Label: p.String(), Status: step.Active})
	}
	if s.Candidate != nil {
		status := step.Current
		if s.Rejected {
			status = step.Rejected
		}
		ev.Queue = append(ev.Queue, step.Item{Label: s.Candidate.String(), Status: status})
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

// InvalidPolygon is the terminal diagnostic for a self-intersecting input,
// carrying the intersection list so a consumer can highlight the crossings.
type InvalidPolygon struct {
	Crossings []geom.EdgeCrossing
}

func (s InvalidPolygon) Describe() string {
	return fmt.Sprintf("polygon is self-intersecting at %d edge pairs; triangulation is undefined", len(s.Crossings))
}

func (s InvalidPolygon) Events() step.EventSets {
	var ev step.EventSets
	for _, c := range s.Crossings {
		ev.Output = append(ev.Output, step.Item{
			Label:  fmt.Sprintf("edges %d and %d cross at %s", c.EdgeA, c.EdgeB, c.At),
			Status: step.Rejected,
		})
	}
	return ev
}

// earClipTrace is the engine core. The builder is the only side channel; a
// nil builder records nothing.
func earClipTrace(b *step.Builder, poly *geom.Polygon) ([]Triangle, error) {
	if !poly.IsComplete() || poly.VertexCount() < 3 {
		b.Record(step.Diagnostic{Text: fmt.Sprintf("polygon must be completed with at least 3 vertices, have %d", poly.VertexCount())})
		return nil, errors.Errorf("polygon must be completed with at least 3 vertices, have %d", poly.VertexCount())
	}
	if crossings := poly.SelfIntersections(); len(crossings) > 0 {
		b.Record(InvalidPolygon{Crossings: crossings})
		return nil, errors.Errorf("polygon is self-intersecting at %d edge pairs", len(crossings))
	}

	// The polygon's overall winding, determined once from the signed area,
	// decides which turn direction counts as convex.
	convexTurn := geom.CounterClockwise
	if poly.IsClockwise() {
		convexTurn = geom.Clockwise
	}
	ring := poly.Vertices()
	var triangles []Triangle

	b.Record(ClipSnapshot{
		Text: fmt.Sprintf("Polygon is simple with %d vertices (%s winding); clipping ears", len(ring), convexTurn),
		Ring: append([]geom.Point(nil), ring...),
	})

	for len(ring) > 3 {
		clipped := false
		for i := range ring {
			prev := ring[geom.CircularIndex(i-1, len(ring))]
			curr := ring[i]
			next := ring[geom.CircularIndex(i+1, len(ring))]
			candidate := Triangle{A: prev, B: curr, C: next}

			if geom.Orientation(prev, curr, next) != convexTurn {
				continue
			}
			blocked := false
			for j, other := range ring {
				if j == i || j == geom.CircularIndex(i-1, len(ring)) || j == geom.CircularIndex(i+1, len(ring)) {
					continue
				}
				if candidate.ContainsPointStrictly(other) {
					blocked = true
					b.Record(ClipSnapshot{
						Text:      fmt.Sprintf("Rejected ear at %s: vertex %s lies inside", curr, other),
						Ring:      append([]geom.Point(nil), ring...),
						Candidate: &candidate,
						Rejected:  true,
						Triangles: copyTriangles(triangles),
					})
					break
				}
			}
			if blocked {
				continue
			}

			triangles = append(triangles, candidate)
			ring = append(ring[:i:i], ring[i+1:]...)
			b.Record(ClipSnapshot{
				Text:      fmt.Sprintf("Clipped ear at %s; %d vertices remain", curr, len(ring)),
				Ring:      append([]geom.Point(nil), ring...),
				Candidate: &candidate,
				Triangles: copyTriangles(triangles),
			})
			clipped = true
			break
		}
		if !clipped {
			// A simple polygon always has at least two ears, so reaching this
			// means the tolerance classified every corner as blocked.
			step.Fatalf("no ear found in %d-vertex ring", len(ring))
		}
	}

	triangles = append(triangles, Triangle{A: ring[0], B: ring[1], C: ring[2]})
	b.Record(ClipSnapshot{
		Text:      fmt.Sprintf("Final 3 vertices form the last triangle; %d triangles total", len(triangles)),
		Ring:      append([]geom.Point(nil), ring...),
		Triangles: copyTriangles(triangles),
		Done:      true,
	})
	return triangles, nil
}
