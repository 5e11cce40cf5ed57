package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepgeom/stepgeom/geom"
)

// Two unit-overlapping squares: union 4 + 4 - 1 = 7.
func TestRectUnionOverlappingSquares(t *testing.T) {
	e := NewRectUnion()
	e.AddRect(geom.NewRect(0, 0, 2, 2))
	e.AddRect(geom.NewRect(1, 1, 3, 3))
	assert.InDelta(t, 7, e.TotalArea(), geom.Tolerance)
}

func TestRectIntersectionOverlappingSquares(t *testing.T) {
	e := NewRectIntersection()
	e.AddRect(geom.NewRect(0, 0, 2, 2))
	e.AddRect(geom.NewRect(1, 1, 3, 3))
	assert.InDelta(t, 1, e.TotalArea(), geom.Tolerance)
}

func TestRectUnionDisjoint(t *testing.T) {
	e := NewRectUnion()
	e.AddRect(geom.NewRect(0, 0, 1, 1))
	e.AddRect(geom.NewRect(5, 5, 7, 6))
	assert.InDelta(t, 3, e.TotalArea(), geom.Tolerance)
}

func TestRectIntersectionDisjoint(t *testing.T) {
	e := NewRectIntersection()
	e.AddRect(geom.NewRect(0, 0, 1, 1))
	e.AddRect(geom.NewRect(5, 5, 7, 6))
	assert.InDelta(t, 0, e.TotalArea(), geom.Tolerance)
}

func TestRectUnionSingleRect(t *testing.T) {
	e := NewRectUnion()
	e.AddRect(geom.NewRect(0, 0, 3, 2))
	assert.InDelta(t, 6, e.TotalArea(), geom.Tolerance)
}

func TestRectIntersectionNeedsTwo(t *testing.T) {
	e := NewRectIntersection()
	e.AddRect(geom.NewRect(0, 0, 3, 2))

	steps := e.ComputeSteps()
	require.Len(t, steps, 1)
	assert.InDelta(t, 0, e.TotalArea(), geom.Tolerance)
}

// Input order must not affect the result.
func TestAreaPermutationInvariance(t *testing.T) {
	rects := []geom.Rect{
		geom.NewRect(0, 0, 4, 3),
		geom.NewRect(2, 1, 6, 5),
		geom.NewRect(-1, 2, 3, 4),
	}
	forward := NewRectUnion()
	backward := NewRectUnion()
	for _, r := range rects {
		forward.AddRect(r)
	}
	for i := len(rects) - 1; i >= 0; i-- {
		backward.AddRect(rects[i])
	}
	assert.InDelta(t, forward.TotalArea(), backward.TotalArea(), geom.Tolerance)
}

func TestUnionAtLeastIntersection(t *testing.T) {
	rects := []geom.Rect{
		geom.NewRect(0, 0, 4, 4),
		geom.NewRect(1, 1, 5, 3),
		geom.NewRect(2, -1, 6, 2),
	}
	union := NewRectUnion()
	intersection := NewRectIntersection()
	for _, r := range rects {
		union.AddRect(r)
		intersection.AddRect(r)
	}
	assert.GreaterOrEqual(t, union.TotalArea(), intersection.TotalArea())
}

func TestAreaSlabsSumToTotal(t *testing.T) {
	e := NewRectUnion()
	e.AddRect(geom.NewRect(0, 0, 2, 2))
	e.AddRect(geom.NewRect(1, 1, 3, 3))

	steps := e.ComputeSteps()
	last, ok := steps[len(steps)-1].Payload.(AreaSnapshot)
	require.True(t, ok)
	require.True(t, last.Done)

	sum := 0.0
	for _, slab := range last.Slabs {
		sum += slab.Area()
	}
	assert.InDelta(t, last.Total, sum, geom.Tolerance)
}
