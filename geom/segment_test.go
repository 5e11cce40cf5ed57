package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentIntersects(t *testing.T) {
	cross1 := Seg(Pt(0, 0), Pt(4, 4))
	cross2 := Seg(Pt(0, 4), Pt(4, 0))
	assert.True(t, cross1.Intersects(cross2))

	parallel := Seg(Pt(0, 1), Pt(4, 5))
	assert.False(t, cross1.Intersects(parallel))

	// Sharing an endpoint counts as intersecting
	touching := Seg(Pt(4, 4), Pt(8, 0))
	assert.True(t, cross1.Intersects(touching))

	// Collinear but disjoint
	disjoint := Seg(Pt(5, 5), Pt(6, 6))
	assert.False(t, cross1.Intersects(disjoint))
}

func TestSegmentIntersectionPoint(t *testing.T) {
	a := Seg(Pt(0, 0), Pt(4, 4))
	b := Seg(Pt(0, 4), Pt(4, 0))
	at, ok := a.IntersectionPoint(b)
	require.True(t, ok)
	assert.True(t, at.Eq(Pt(2, 2)))

	_, ok = a.IntersectionPoint(Seg(Pt(0, 1), Pt(4, 5)))
	assert.False(t, ok)

	// Segments whose infinite lines cross beyond the endpoints
	_, ok = a.IntersectionPoint(Seg(Pt(10, 0), Pt(10.1, 5)))
	assert.False(t, ok)
}

func TestSegmentDistanceToPoint(t *testing.T) {
	s := Seg(Pt(0, 0), Pt(4, 0))
	assert.InDelta(t, 3, s.DistanceToPoint(Pt(2, 3)), Tolerance)
	assert.InDelta(t, 0, s.DistanceToPoint(Pt(2, 0)), Tolerance)

	degenerate := Seg(Pt(1, 1), Pt(1, 1))
	assert.InDelta(t, 5, degenerate.DistanceToPoint(Pt(4, 5)), Tolerance)
}

func TestSegmentLengthMidpoint(t *testing.T) {
	s := Seg(Pt(0, 0), Pt(3, 4))
	assert.InDelta(t, 5, s.Length(), Tolerance)
	assert.True(t, s.Midpoint().Eq(Pt(1.5, 2)))
}
