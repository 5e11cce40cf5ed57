package tri

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stepgeom/stepgeom/geom"
)

func TestTriangleArea(t *testing.T) {
	tri := Triangle{A: geom.Pt(0, 0), B: geom.Pt(4, 0), C: geom.Pt(0, 3)}
	assert.InDelta(t, 6, tri.Area(), geom.Tolerance)
}

func TestTriangleContainsPointStrictly(t *testing.T) {
	tri := Triangle{A: geom.Pt(0, 0), B: geom.Pt(4, 0), C: geom.Pt(2, 4)}
	assert.True(t, tri.ContainsPointStrictly(geom.Pt(2, 1)))
	assert.False(t, tri.ContainsPointStrictly(geom.Pt(5, 5)))
	// Vertices and boundary points don't count
	assert.False(t, tri.ContainsPointStrictly(geom.Pt(0, 0)))
	assert.False(t, tri.ContainsPointStrictly(geom.Pt(2, 0)))
}

func TestCircumcircle(t *testing.T) {
	// Right triangle: circumcenter is the hypotenuse midpoint
	tri := Triangle{A: geom.Pt(0, 0), B: geom.Pt(4, 0), C: geom.Pt(0, 4)}
	center, radius := tri.Circumcircle()
	assert.True(t, center.Eq(geom.Pt(2, 2)))
	assert.InDelta(t, center.DistanceTo(geom.Pt(0, 0)), radius, geom.Tolerance)

	assert.True(t, tri.CircumcircleContains(geom.Pt(2, 2)))
	assert.False(t, tri.CircumcircleContains(geom.Pt(10, 10)))
}

func TestCircumcircleCollinearFallback(t *testing.T) {
	degenerate := Triangle{A: geom.Pt(0, 0), B: geom.Pt(2, 0), C: geom.Pt(4, 0)}
	center, radius := degenerate.Circumcircle()
	assert.True(t, center.Eq(geom.Pt(2, 0)))
	assert.InDelta(t, 2, radius, geom.Tolerance)
}

func TestSharesEdgeWith(t *testing.T) {
	a := Triangle{A: geom.Pt(0, 0), B: geom.Pt(4, 0), C: geom.Pt(2, 3)}
	b := Triangle{A: geom.Pt(4, 0), B: geom.Pt(0, 0), C: geom.Pt(2, -3)}
	c := Triangle{A: geom.Pt(10, 10), B: geom.Pt(12, 10), C: geom.Pt(11, 12)}
	assert.True(t, a.SharesEdgeWith(b))
	assert.False(t, a.SharesEdgeWith(c))
	// A triangle does not share an edge with itself in the two-vertex sense
	assert.False(t, a.SharesEdgeWith(a))
}

func TestEdgeEqUndirected(t *testing.T) {
	e1 := Edge{P: geom.Pt(0, 0), Q: geom.Pt(1, 1)}
	e2 := Edge{P: geom.Pt(1, 1), Q: geom.Pt(0, 0)}
	assert.True(t, e1.Eq(e2))
}
