package tri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepgeom/stepgeom/geom"
)

// Every Voronoi vertex is a circumcenter: equidistant from the three
// vertices of some Delaunay triangle.
func TestVoronoiVerticesAreCircumcenters(t *testing.T) {
	v := NewVoronoi()
	addPoints(v, geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(2, 3), geom.Pt(2, -2))

	vertices := v.Vertices()
	require.NotEmpty(t, vertices)

	d := NewDelaunay()
	addPoints(d, geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(2, 3), geom.Pt(2, -2))
	triangles := d.Triangles()

	for _, vert := range vertices {
		matched := false
		for _, tri := range triangles {
			center, _ := tri.Circumcircle()
			if center.Eq(vert) {
				matched = true
				break
			}
		}
		assert.True(t, matched, "vertex %s is no circumcenter", vert)
	}
}

func TestVoronoiEdgesJoinAdjacentTriangles(t *testing.T) {
	v := NewVoronoi()
	addPoints(v, geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(2, 3), geom.Pt(2, -2))

	// Two triangles sharing an edge produce exactly one Voronoi edge
	assert.Len(t, v.Edges(), 1)
}

func TestVoronoiCellsPerSite(t *testing.T) {
	sites := []geom.Point{geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(2, 3), geom.Pt(2, -2)}
	v := NewVoronoi()
	addPoints(v, sites...)

	cells := v.Cells()
	require.NotEmpty(t, cells)
	for _, cell := range cells {
		found := false
		for _, s := range sites {
			if cell.Site.Eq(s) {
				found = true
			}
		}
		assert.True(t, found)
		assert.NotEmpty(t, cell.Corners)
	}
}

// The Voronoi trace embeds the full Delaunay trace before its own steps.
func TestVoronoiSplicesDelaunayTrace(t *testing.T) {
	v := NewVoronoi()
	addPoints(v, geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(2, 3))

	var delaunaySteps, voronoiSteps int
	for _, st := range v.ComputeSteps() {
		switch st.Payload.(type) {
		case DelaunaySnapshot:
			delaunaySteps++
		case VoronoiSnapshot:
			voronoiSteps++
		}
	}
	assert.Greater(t, delaunaySteps, 0)
	assert.Greater(t, voronoiSteps, 0)
}

func TestVoronoiTooFewSites(t *testing.T) {
	v := NewVoronoi()
	addPoints(v, geom.Pt(0, 0))

	assert.Nil(t, v.Vertices())
	assert.Nil(t, v.Cells())
}
