package geom

import (
	"math"

	"github.com/pkg/errors"
)

// Polygon is an ordered chain of vertices, closed once Complete has been
// called. Edges are derived from the vertices: n-1 edges while the chain is
// open, n once it closes.
type Polygon struct {
	vertices []Point
	complete bool
}

func NewPolygon(vertices ...Point) *Polygon {
	poly := &Polygon{}
	for _, v := range vertices {
		poly.AddVertex(v)
	}
	return poly
}

// ClosedPolygon builds and completes a polygon in one call. It panics on
// fewer than three vertices, since a caller passing a literal vertex list has
// no use for the error path.
func ClosedPolygon(vertices ...Point) *Polygon {
	poly := NewPolygon(vertices...)
	if err := poly.Complete(); err != nil {
		panic(err)
	}
	return poly
}

// AddVertex appends a vertex to the open chain. Adding to a completed
// polygon reopens it.
func (poly *Polygon) AddVertex(p Point) {
	poly.complete = false
	poly.vertices = append(poly.vertices, p)
}

// Complete closes the chain. A polygon needs at least three vertices before
// completion is permitted.
func (poly *Polygon) Complete() error {
	if len(poly.vertices) < 3 {
		return errors.Errorf("cannot complete polygon with %d vertices", len(poly.vertices))
	}
	poly.complete = true
	return nil
}

func (poly *Polygon) IsComplete() bool {
	return poly.complete
}

// Vertices returns a copy; the polygon's own slice is never aliased out.
func (poly *Polygon) Vertices() []Point {
	out := make([]Point, len(poly.vertices))
	copy(out, poly.vertices)
	return out
}

func (poly *Polygon) VertexCount() int {
	return len(poly.vertices)
}

func (poly *Polygon) Clear() {
	poly.vertices = nil
	poly.complete = false
}

// Edges recomputes the edge list from the current vertices. The closing edge
// exists only once the polygon is complete.
func (poly *Polygon) Edges() []Segment {
	n := len(poly.vertices)
	if n < 2 {
		return nil
	}
	count := n - 1
	if poly.complete {
		count = n
	}
	edges := make([]Segment, 0, count)
	for i := 0; i < count; i++ {
		edges = append(edges, Segment{poly.vertices[i], poly.vertices[CircularIndex(i+1, n)]})
	}
	return edges
}

// SignedArea is positive for counterclockwise winding (shoelace formula).
func (poly *Polygon) SignedArea() float64 {
	n := len(poly.vertices)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i, v := range poly.vertices {
		next := poly.vertices[CircularIndex(i+1, n)]
		area += v.X*next.Y - next.X*v.Y
	}
	return area / 2
}

func (poly *Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

func (poly *Polygon) IsClockwise() bool {
	return poly.SignedArea() < 0
}

// ContainsPoint is the even-odd crossing rule, treating the polygon as
// closed regardless of completion state. Boundary points count as inside
// within tolerance.
func (poly *Polygon) ContainsPoint(p Point) bool {
	n := len(poly.vertices)
	if n < 3 {
		return false
	}
	for i := range poly.vertices {
		edge := Segment{poly.vertices[i], poly.vertices[CircularIndex(i+1, n)]}
		if edge.DistanceToPoint(p) < Tolerance && onSegment(edge.P1, p, edge.P2) {
			return true
		}
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi, vj := poly.vertices[i], poly.vertices[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// EdgeCrossing is one self-intersection found by SelfIntersections.
type EdgeCrossing struct {
	EdgeA, EdgeB int // edge indices into Edges()
	At           Point
}

// SelfIntersections scans all non-adjacent edge pairs. O(n²), which is fine
// at teaching scale. Shared endpoints between adjacent edges are excluded;
// everything else that crosses is reported.
func (poly *Polygon) SelfIntersections() []EdgeCrossing {
	edges := poly.Edges()
	n := len(edges)
	var crossings []EdgeCrossing
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// Skip adjacent edges. When the polygon is complete, the first and
			// last edge are adjacent too.
			if j == i+1 || (poly.complete && i == 0 && j == n-1) {
				continue
			}
			if !edges[i].Intersects(edges[j]) {
				continue
			}
			at, ok := edges[i].IntersectionPoint(edges[j])
			if !ok {
				// Collinear overlap has no single crossing point; flag the
				// midpoint of the overlapping edge instead.
				at = edges[j].Midpoint()
			}
			crossings = append(crossings, EdgeCrossing{EdgeA: i, EdgeB: j, At: at})
		}
	}
	return crossings
}

// IsSimple reports whether the polygon has no self-intersections.
func (poly *Polygon) IsSimple() bool {
	return len(poly.SelfIntersections()) == 0
}

// Clone deep-copies the polygon, so mutations of one never reach the other.
func (poly *Polygon) Clone() *Polygon {
	return &Polygon{vertices: poly.Vertices(), complete: poly.complete}
}
