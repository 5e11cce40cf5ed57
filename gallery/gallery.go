// Package gallery implements the art gallery engine: validate a simple
// polygon, triangulate it, 3-color the triangulation vertices, post guards
// on the smallest color class (Chvátal: at most ⌊n/3⌋ guards), and sample a
// visibility region around each guard.
package gallery

import (
	"fmt"
	"math"

	"github.com/stepgeom/stepgeom/geom"
	"github.com/stepgeom/stepgeom/internal/inputset"
	"github.com/stepgeom/stepgeom/step"
	"github.com/stepgeom/stepgeom/tri"
)

// visibilityAngles is the radial sampling resolution of a guard's
// visibility region.
const visibilityAngles = 100

// visibilitySteps is the number of incremental distance samples per ray.
const visibilitySteps = 50

// Uncolored marks a vertex not yet reached by the greedy coloring.
const Uncolored = -1

// ArtGallery consumes a polygon and produces guard positions with sampled
// visibility regions.
type ArtGallery struct {
	inputset.PolygonInput
}

func NewArtGallery() *ArtGallery {
	g := &ArtGallery{}
	g.Init(g.build)
	return g
}

// Snapshot is the art gallery step variant, shared across the validation,
// coloring, and guard phases.
type Snapshot struct {
	Text       string
	Vertices   []geom.Point
	Triangles  []tri.Triangle
	Colors     []int // per vertex, Uncolored until assigned
	Guards     []geom.Point
	Visibility [][]geom.Point // one sampled region per guard, in guard order
	Done       bool
}

func (s Snapshot) Describe() string { return s.Text }

func (s Snapshot) Events() step.EventSets {
	var ev step.EventSets
	for i, v := range s.Vertices {
		if len(s.Colors) > i && s.Colors[i] != Uncolored {
			ev.Active = append(ev.Active, step.Item{Label: fmt.Sprintf("%s color %d", v, s.Colors[i]), Status: step.Active})
		} else {
			ev.Queue = append(ev.Queue, step.Item{Label: v.String(), Status: step.Pending})
		}
	}
	for i, guard := range s.Guards {
		label := fmt.Sprintf("guard at %s", guard)
		if len(s.Visibility) > i {
			label = fmt.Sprintf("guard at %s (%d visibility samples)", guard, len(s.Visibility[i]))
		}
		status := step.Kept
		if s.Done {
			status = step.Completed
		}
		ev.Output = append(ev.Output, step.Item{Label: label, Status: status})
	}
	return ev
}

// Guards returns the selected guard positions, computing the trace if
// needed.
func (g *ArtGallery) Guards() []geom.Point {
	if snap := g.finalSnapshot(); snap != nil {
		return snap.Guards
	}
	return nil
}

// VisibilityRegions returns one sampled region per guard, computing the
// trace if needed.
func (g *ArtGallery) VisibilityRegions() [][]geom.Point {
	if snap := g.finalSnapshot(); snap != nil {
		return snap.Visibility
	}
	return nil
}

func (g *ArtGallery) finalSnapshot() *Snapshot {
	steps := g.ComputeSteps()
	for i := len(steps) - 1; i >= 0; i-- {
		if snap, ok := steps[i].Payload.(Snapshot); ok && snap.Done {
			return &snap
		}
	}
	return nil
}

func (g *ArtGallery) build(b *step.Builder) {
	poly := g.Polygon()
	if !poly.IsComplete() || poly.VertexCount() < 3 {
		b.Record(step.Diagnostic{Text: fmt.Sprintf("polygon must be completed with at least 3 vertices, have %d", poly.VertexCount())})
		return
	}
	if crossings := poly.SelfIntersections(); len(crossings) > 0 {
		b.Record(tri.InvalidPolygon{Crossings: crossings})
		return
	}

	vertices := poly.Vertices()
	triangles, err := tri.Triangulate(poly)
	if err != nil {
		b.Record(step.Diagnostic{Text: "triangulation failed: " + err.Error()})
		return
	}
	b.Record(Snapshot{
		Text:      fmt.Sprintf("Polygon is simple; triangulated into %d triangles", len(triangles)),
		Vertices:  vertices,
		Triangles: triangles,
		Colors:    uncoloredSlice(len(vertices)),
	})

	colors, colorSteps := threeColor(vertices, triangles)
	for _, cs := range colorSteps {
		b.Record(Snapshot{
			Text:      cs.text,
			Vertices:  vertices,
			Triangles: triangles,
			Colors:    cs.colors,
		})
	}

	// The smallest color class guards the gallery.
	var counts [3]int
	for _, c := range colors {
		if c != Uncolored {
			counts[c]++
		}
	}
	best := 0
	for c := 1; c < 3; c++ {
		if counts[c] < counts[best] {
			best = c
		}
	}
	var guards []geom.Point
	for i, c := range colors {
		if c == best {
			guards = append(guards, vertices[i])
		}
	}
	b.Record(Snapshot{
		Text:      fmt.Sprintf("Color classes sized %d/%d/%d; class %d posts %d guards (bound ⌊%d/3⌋ = %d)", counts[0], counts[1], counts[2], best, len(guards), len(vertices), len(vertices)/3),
		Vertices:  vertices,
		Triangles: triangles,
		Colors:    colors,
		Guards:    append([]geom.Point(nil), guards...),
	})

	var regions [][]geom.Point
	for _, guard := range guards {
		region := VisibilityRegion(poly, guard)
		regions = append(regions, region)
		b.Record(Snapshot{
			Text:       fmt.Sprintf("Sampled visibility region of guard %s: %d boundary samples", guard, len(region)),
			Vertices:   vertices,
			Triangles:  triangles,
			Colors:     colors,
			Guards:     append([]geom.Point(nil), guards...),
			Visibility: append([][]geom.Point(nil), regions...),
		})
	}

	b.Record(Snapshot{
		Text:       fmt.Sprintf("Art gallery solved: %d guards cover the polygon", len(guards)),
		Vertices:   vertices,
		Triangles:  triangles,
		Colors:     colors,
		Guards:     guards,
		Visibility: regions,
		Done:       true,
	})
}

func uncoloredSlice(n int) []int {
	colors := make([]int, n)
	for i := range colors {
		colors[i] = Uncolored
	}
	return colors
}

type coloringStep struct {
	text   string
	colors []int
}

// threeColor greedily colors the triangulation vertex graph triangle by
// triangle: seed the first triangle 0/1/2, then repeatedly pick a triangle
// adjacent to colored work and give any uncolored vertex the lowest color
// unused among its triangle-mates. A triangulation of a simple polygon is
// always 3-colorable this way.
func threeColor(vertices []geom.Point, triangles []tri.Triangle) ([]int, []coloringStep) {
	colors := uncoloredSlice(len(vertices))
	var trail []coloringStep
	if len(triangles) == 0 {
		return colors, trail
	}

	vertexIndex := func(p geom.Point) int {
		for i, v := range vertices {
			if v.Eq(p) {
				return i
			}
		}
		// Triangulation only ever emits input vertices; anything else means
		// the tolerance matching broke down.
		step.Fatalf("triangle vertex %s is not a polygon vertex", p)
		return -1
	}

	seed := triangles[0]
	for i, p := range seed.Points() {
		colors[vertexIndex(p)] = i
	}
	trail = append(trail, coloringStep{
		text:   fmt.Sprintf("Seeded first triangle %s with colors 0/1/2", seed),
		colors: append([]int(nil), colors...),
	})

	done := map[int]bool{0: true}
	for len(done) < len(triangles) {
		progressed := false
		for ti, t := range triangles {
			if done[ti] {
				continue
			}
			idxs := []int{vertexIndex(t.A), vertexIndex(t.B), vertexIndex(t.C)}
			colored := 0
			for _, vi := range idxs {
				if colors[vi] != Uncolored {
					colored++
				}
			}
			if colored < 2 {
				continue
			}
			for _, vi := range idxs {
				if colors[vi] != Uncolored {
					continue
				}
				used := [3]bool{}
				for _, other := range idxs {
					if other != vi && colors[other] != Uncolored {
						used[colors[other]] = true
					}
				}
				for c := 0; c < 3; c++ {
					if !used[c] {
						colors[vi] = c
						break
					}
				}
				trail = append(trail, coloringStep{
					text:   fmt.Sprintf("Colored vertex %s with %d via triangle %s", vertices[vi], colors[vi], t),
					colors: append([]int(nil), colors...),
				})
			}
			done[ti] = true
			progressed = true
		}
		if !progressed {
			// Disconnected adjacency can only come from degenerate slivers;
			// color the rest independently rather than spin.
			for ti := range triangles {
				if !done[ti] {
					done[ti] = true
				}
			}
		}
	}
	return colors, trail
}

// Visible reports whether target can be seen from origin inside the
// polygon: the target is inside, and the sight segment crosses no polygon
// edge away from its own endpoints.
func Visible(poly *geom.Polygon, origin, target geom.Point) bool {
	if !poly.ContainsPoint(target) {
		return false
	}
	sight := geom.Segment{P1: origin, P2: target}
	for _, edge := range poly.Edges() {
		at, ok := edge.IntersectionPoint(sight)
		if !ok {
			continue
		}
		if at.EqWithin(origin, geom.Tolerance*10) || at.EqWithin(target, geom.Tolerance*10) {
			continue
		}
		return false
	}
	// The midpoint check catches sight lines that leave and re-enter through
	// a reflex pocket without properly crossing an edge.
	return poly.ContainsPoint(sight.Midpoint())
}

// VisibilityRegion radially samples what the guard can see: fixed angular
// resolution, incremental distance steps per ray, each ray stopped at the
// first sample that exits the polygon or loses sight of the guard.
func VisibilityRegion(poly *geom.Polygon, guard geom.Point) []geom.Point {
	vertices := poly.Vertices()
	maxDist := 0.0
	for _, v := range vertices {
		maxDist = math.Max(maxDist, guard.DistanceTo(v))
	}
	if maxDist == 0 {
		return nil
	}

	var region []geom.Point
	for a := 0; a < visibilityAngles; a++ {
		angle := 2 * math.Pi * float64(a) / visibilityAngles
		dir := geom.Point{X: math.Cos(angle), Y: math.Sin(angle)}
		last := guard
		for s := 1; s <= visibilitySteps; s++ {
			dist := maxDist * float64(s) / visibilitySteps
			sample := geom.Point{X: guard.X + dir.X*dist, Y: guard.Y + dir.Y*dist}
			if !Visible(poly, guard, sample) {
				break
			}
			last = sample
		}
		region = append(region, last)
	}
	return region
}
