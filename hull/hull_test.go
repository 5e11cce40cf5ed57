package hull

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepgeom/stepgeom/geom"
)

func addAll(e interface{ AddPoint(geom.Point) }, pts ...geom.Point) {
	for _, p := range pts {
		e.AddPoint(p)
	}
}

// Square with one interior point. The interior point gets pushed on the
// scan stack and popped again when the next hull vertex arrives.
func TestGrahamScanPopsInteriorPoint(t *testing.T) {
	g := NewGrahamScan()
	addAll(g, geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(4, 4), geom.Pt(0, 4), geom.Pt(2, 2))

	hull := g.Hull()
	require.Len(t, hull, 4)
	assert.True(t, hull[0].Eq(geom.Pt(0, 0)))
	assert.True(t, hull[1].Eq(geom.Pt(4, 0)))
	assert.True(t, hull[2].Eq(geom.Pt(4, 4)))
	assert.True(t, hull[3].Eq(geom.Pt(0, 4)))

	backtracks := 0
	for _, st := range g.ComputeSteps() {
		if st.Backtrack {
			backtracks++
			assert.Contains(t, st.Description, "Popped")
		}
	}
	assert.Equal(t, 1, backtracks)
}

func TestGrahamScanTooFewPoints(t *testing.T) {
	g := NewGrahamScan()
	addAll(g, geom.Pt(0, 0), geom.Pt(1, 1))

	steps := g.ComputeSteps()
	require.Len(t, steps, 1)
	assert.Nil(t, g.Hull())
}

func TestGrahamScanCollinear(t *testing.T) {
	g := NewGrahamScan()
	addAll(g, geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 2), geom.Pt(3, 3))

	assert.Nil(t, g.Hull())
	steps := g.ComputeSteps()
	last := steps[len(steps)-1]
	assert.Contains(t, last.Description, "collinear")
}

func hullPointSet(pts []geom.Point) map[string]bool {
	set := make(map[string]bool, len(pts))
	for _, p := range pts {
		set[p.String()] = true
	}
	return set
}

// All three engines must agree on the hull vertex set.
func TestEnginesAgree(t *testing.T) {
	input := []geom.Point{
		geom.Pt(0, 0), geom.Pt(6, 1), geom.Pt(7, 5), geom.Pt(3, 8),
		geom.Pt(-1, 4), geom.Pt(2, 2), geom.Pt(4, 4), geom.Pt(3, 1),
		geom.Pt(5, 6), geom.Pt(1, 6),
	}

	graham := NewGrahamScan()
	gift := NewGiftWrap()
	quick := NewQuickHull()
	addAll(graham, input...)
	addAll(gift, input...)
	addAll(quick, input...)

	want := hullPointSet(graham.Hull())
	require.NotEmpty(t, want)
	assert.Equal(t, want, hullPointSet(gift.Hull()), "gift wrap")
	assert.Equal(t, want, hullPointSet(quick.Hull()), "quickhull")

	for name, hull := range map[string][]geom.Point{
		"graham": graham.Hull(), "giftwrap": gift.Hull(), "quickhull": quick.Hull(),
	} {
		assert.True(t, IsConvex(hull), name)
		assert.True(t, ContainsAll(hull, input), name)
	}
}

func TestHullDeterminism(t *testing.T) {
	g := NewQuickHull()
	addAll(g, geom.Pt(0, 0), geom.Pt(5, 1), geom.Pt(3, 7), geom.Pt(1, 3), geom.Pt(4, 4))

	first := g.ComputeSteps()
	second := g.ComputeSteps()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Description, second[i].Description, fmt.Sprintf("step %d", i))
	}
}

func TestRemovePointRestoresHull(t *testing.T) {
	g := NewGrahamScan()
	addAll(g, geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(4, 4), geom.Pt(0, 4))
	before := g.Hull()

	// A far point becomes a hull vertex, then is removed again
	g.AddPoint(geom.Pt(10, 2))
	assert.Len(t, g.Hull(), 5)
	require.True(t, g.RemovePoint(geom.Pt(10, 2)))

	after := g.Hull()
	assert.Equal(t, hullPointSet(before), hullPointSet(after))
}

func TestClearEmptiesInput(t *testing.T) {
	g := NewGiftWrap()
	addAll(g, geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(2, 3))
	require.NotNil(t, g.Hull())

	g.Clear()
	assert.Equal(t, 0, g.PointCount())
	assert.Nil(t, g.Hull())
}

func TestQuickHullCollinearInterior(t *testing.T) {
	q := NewQuickHull()
	// Points on the hull edges must not survive into the hull
	addAll(q, geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(2, 0), geom.Pt(4, 4), geom.Pt(0, 4))

	hull := q.Hull()
	assert.Len(t, hull, 4)
	for _, p := range hull {
		assert.False(t, p.Eq(geom.Pt(2, 0)))
	}
}
