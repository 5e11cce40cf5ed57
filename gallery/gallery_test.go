package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepgeom/stepgeom/geom"
	"github.com/stepgeom/stepgeom/tri"
)

func TestArtGallerySquare(t *testing.T) {
	g := NewArtGallery()
	g.SetPolygon(geom.ClosedPolygon(geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(4, 4), geom.Pt(0, 4)))

	guards := g.Guards()
	require.Len(t, guards, 1)

	regions := g.VisibilityRegions()
	require.Len(t, regions, 1)
	assert.NotEmpty(t, regions[0])
}

// The guard count never exceeds ⌊n/3⌋.
func TestArtGalleryGuardBound(t *testing.T) {
	comb := geom.ClosedPolygon(
		geom.Pt(0, 0), geom.Pt(9, 0), geom.Pt(9, 4),
		geom.Pt(7, 4), geom.Pt(7, 2), geom.Pt(5, 2), geom.Pt(5, 4),
		geom.Pt(3, 4), geom.Pt(3, 2), geom.Pt(1, 2), geom.Pt(1, 4),
		geom.Pt(0, 4),
	)
	g := NewArtGallery()
	g.SetPolygon(comb)

	guards := g.Guards()
	require.NotEmpty(t, guards)
	assert.LessOrEqual(t, len(guards), comb.VertexCount()/3)
}

func TestArtGalleryRejectsSelfIntersecting(t *testing.T) {
	g := NewArtGallery()
	g.SetPolygon(geom.ClosedPolygon(geom.Pt(0, 0), geom.Pt(4, 4), geom.Pt(4, 0), geom.Pt(0, 4)))

	steps := g.ComputeSteps()
	require.Len(t, steps, 1)
	_, ok := steps[0].Payload.(tri.InvalidPolygon)
	assert.True(t, ok)
	assert.Nil(t, g.Guards())
}

func TestArtGalleryIncomplete(t *testing.T) {
	g := NewArtGallery()
	g.AddVertex(geom.Pt(0, 0))
	g.AddVertex(geom.Pt(1, 0))

	steps := g.ComputeSteps()
	require.Len(t, steps, 1)
	assert.Nil(t, g.Guards())
}

func TestThreeColoringIsProper(t *testing.T) {
	poly := geom.ClosedPolygon(
		geom.Pt(0, 0), geom.Pt(6, 0), geom.Pt(6, 4),
		geom.Pt(4, 4), geom.Pt(4, 2), geom.Pt(2, 2),
		geom.Pt(2, 4), geom.Pt(0, 4),
	)
	triangles, err := tri.Triangulate(poly)
	require.NoError(t, err)

	vertices := poly.Vertices()
	colors, _ := threeColor(vertices, triangles)
	for i, c := range colors {
		assert.Contains(t, []int{0, 1, 2}, c, "vertex %d uncolored", i)
	}
	// No triangle has two vertices of the same color
	lookup := func(p geom.Point) int {
		for i, v := range vertices {
			if v.Eq(p) {
				return colors[i]
			}
		}
		t.Fatalf("vertex %s not found", p)
		return -1
	}
	for _, tr := range triangles {
		a, b, c := lookup(tr.A), lookup(tr.B), lookup(tr.C)
		assert.NotEqual(t, a, b, tr)
		assert.NotEqual(t, b, c, tr)
		assert.NotEqual(t, a, c, tr)
	}
}

// Sampled interior points are visible from at least one guard.
func TestArtGalleryCoverage(t *testing.T) {
	poly := geom.ClosedPolygon(
		geom.Pt(0, 0), geom.Pt(6, 0), geom.Pt(6, 4),
		geom.Pt(4, 4), geom.Pt(4, 2), geom.Pt(2, 2),
		geom.Pt(2, 4), geom.Pt(0, 4),
	)
	g := NewArtGallery()
	g.SetPolygon(poly)
	guards := g.Guards()
	require.NotEmpty(t, guards)

	samples := []geom.Point{
		geom.Pt(1, 1), geom.Pt(3, 1), geom.Pt(5, 1),
		geom.Pt(1, 3), geom.Pt(5, 3),
	}
	for _, sample := range samples {
		covered := false
		for _, guard := range guards {
			if Visible(poly, guard, sample) {
				covered = true
				break
			}
		}
		assert.True(t, covered, "sample %s sees no guard", sample)
	}
}

func TestVisibleBlockedByReflexPocket(t *testing.T) {
	poly := geom.ClosedPolygon(
		geom.Pt(0, 0), geom.Pt(6, 0), geom.Pt(6, 4),
		geom.Pt(4, 4), geom.Pt(4, 2), geom.Pt(2, 2),
		geom.Pt(2, 4), geom.Pt(0, 4),
	)
	// The two prong tips cannot see each other across the notch
	assert.False(t, Visible(poly, geom.Pt(1, 3.5), geom.Pt(5, 3.5)))
	assert.True(t, Visible(poly, geom.Pt(1, 1), geom.Pt(5, 1)))
	// Points outside are never visible
	assert.False(t, Visible(poly, geom.Pt(1, 1), geom.Pt(3, 3)))
}
