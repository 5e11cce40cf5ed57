package tri

import (
	"fmt"
	"sort"

	"github.com/stepgeom/stepgeom/geom"
	"github.com/stepgeom/stepgeom/internal/inputset"
	"github.com/stepgeom/stepgeom/step"
)

// Voronoi derives the Voronoi diagram from the Delaunay dual: every triangle
// circumcenter is a Voronoi vertex, triangles sharing an edge contribute a
// Voronoi edge between their circumcenters, and each site's cell is the
// polar-angle-sorted ring of circumcenters of its incident triangles.
//
// The engine internally drives a private Delaunay instance, freshly
// constructed on every recompute, and splices its steps in front of its own.
// That composition is one-directional; nothing else ever reads or mutates
// the sub-engine.
type Voronoi struct {
	inputset.PointSet
}

func NewVoronoi() *Voronoi {
	v := &Voronoi{}
	v.Init(v.build)
	return v
}

// Cell is one Voronoi site with the circumcenters of its incident Delaunay
// triangles, sorted by polar angle around the site.
type Cell struct {
	Site    geom.Point
	Corners []geom.Point
}

// VoronoiSnapshot is the Voronoi-dual step variant.
type VoronoiSnapshot struct {
	Text      string
	Sites     []geom.Point
	Triangles []Triangle
	Vertices  []geom.Point
	Edges     []geom.Segment
	Cells     []Cell
	Done      bool
}

func (s VoronoiSnapshot) Describe() string { return s.Text }

func (s VoronoiSnapshot) Events() step.EventSets {
	var ev step.EventSets
	for _, site := range s.Sites {
		ev.Queue = append(ev.Queue, step.Item{Label: site.String(), Status: step.Pending})
	}
	for _, v := range s.Vertices {
		ev.Active = append(ev.Active, step.Item{Label: v.String(), Status: step.Active})
	}
	for _, e := range s.Edges {
		status := step.Processed
		if s.Done {
			status = step.Completed
		}
		ev.Output = append(ev.Output, step.Item{Label: e.String(), Status: status})
	}
	for _, c := range s.Cells {
		status := step.Processed
		if s.Done {
			status = step.Completed
		}
		ev.Output = append(ev.Output, step.Item{Label: fmt.Sprintf("cell of %s (%d corners)", c.Site, len(c.Corners)), Status: status})
	}
	return ev
}

// Vertices returns the Voronoi vertices, computing the trace if needed.
func (v *Voronoi) Vertices() []geom.Point {
	if snap := v.finalSnapshot(); snap != nil {
		return snap.Vertices
	}
	return nil
}

// Edges returns the Voronoi edges, computing the trace if needed.
func (v *Voronoi) Edges() []geom.Segment {
	if snap := v.finalSnapshot(); snap != nil {
		return snap.Edges
	}
	return nil
}

// Cells returns the Voronoi cells, computing the trace if needed.
func (v *Voronoi) Cells() []Cell {
	if snap := v.finalSnapshot(); snap != nil {
		return snap.Cells
	}
	return nil
}

func (v *Voronoi) finalSnapshot() *VoronoiSnapshot {
	steps := v.ComputeSteps()
	for i := len(steps) - 1; i >= 0; i-- {
		if snap, ok := steps[i].Payload.(VoronoiSnapshot); ok && snap.Done {
			return &snap
		}
	}
	return nil
}

func (v *Voronoi) build(b *step.Builder) {
	sites := v.Points()
	if len(sites) < 3 {
		b.Record(step.Diagnostic{Text: fmt.Sprintf("need at least 3 sites for a Voronoi diagram, have %d", len(sites))})
		return
	}

	// Drive the private Delaunay sub-engine and splice its trace in front of
	// the dual-construction steps.
	sub := NewDelaunay()
	for _, p := range sites {
		sub.AddPoint(p)
	}
	b.Splice(sub.ComputeSteps())
	triangles := sub.Triangles()
	if len(triangles) == 0 {
		b.Record(step.Diagnostic{Text: "Delaunay triangulation is empty (collinear sites?); no Voronoi diagram"})
		return
	}

	// One Voronoi vertex per triangle circumcenter.
	vertices := make([]geom.Point, len(triangles))
	for i, t := range triangles {
		center, _ := t.Circumcircle()
		vertices[i] = center
	}
	b.Record(VoronoiSnapshot{
		Text:      fmt.Sprintf("Computed %d circumcenters as Voronoi vertices", len(vertices)),
		Sites:     sites,
		Triangles: triangles,
		Vertices:  append([]geom.Point(nil), vertices...),
	})

	// Triangles sharing an edge (two shared vertices) are Voronoi neighbors.
	var edges []geom.Segment
	for i := range triangles {
		for j := i + 1; j < len(triangles); j++ {
			if triangles[i].SharesEdgeWith(triangles[j]) {
				edges = append(edges, geom.Segment{P1: vertices[i], P2: vertices[j]})
			}
		}
	}
	b.Record(VoronoiSnapshot{
		Text:      fmt.Sprintf("Connected circumcenters of edge-sharing triangles: %d Voronoi edges", len(edges)),
		Sites:     sites,
		Triangles: triangles,
		Vertices:  append([]geom.Point(nil), vertices...),
		Edges:     append([]geom.Segment(nil), edges...),
	})

	// Cells: circumcenters of each site's incident triangles, ordered by
	// polar angle around the site.
	var cells []Cell
	for _, site := range sites {
		var corners []geom.Point
		for i, t := range triangles {
			if t.HasVertex(site) {
				corners = append(corners, vertices[i])
			}
		}
		if len(corners) == 0 {
			continue
		}
		site := site
		sort.SliceStable(corners, func(a, c int) bool {
			return corners[a].PolarAngleAround(site) < corners[c].PolarAngleAround(site)
		})
		cells = append(cells, Cell{Site: site, Corners: corners})
	}

	b.Record(VoronoiSnapshot{
		Text:     fmt.Sprintf("Voronoi diagram complete: %d vertices, %d edges, %d cells", len(vertices), len(edges), len(cells)),
		Sites:    sites,
		Vertices: vertices,
		Edges:    edges,
		Cells:    cells,
		Done:     true,
	})
}
