package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1, 1))
	assert.True(t, Equal(1, 1+Tolerance/2))
	assert.False(t, Equal(1, 1+Tolerance*2))
}

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestPointEq(t *testing.T) {
	assert.True(t, Pt(1, 2).Eq(Pt(1, 2)))
	assert.True(t, Pt(1, 2).Eq(Pt(1+Tolerance/2, 2)))
	assert.False(t, Pt(1, 2).Eq(Pt(1.1, 2)))
}

func TestOrientation(t *testing.T) {
	a, b := Pt(0, 0), Pt(4, 0)
	assert.Equal(t, CounterClockwise, Orientation(a, b, Pt(2, 1)))
	assert.Equal(t, Clockwise, Orientation(a, b, Pt(2, -1)))
	assert.Equal(t, Collinear, Orientation(a, b, Pt(8, 0)))
}

func TestPolarAngleAround(t *testing.T) {
	pivot := Pt(1, 1)
	assert.InDelta(t, 0, Pt(2, 1).PolarAngleAround(pivot), Tolerance)
	assert.InDelta(t, math.Pi/2, Pt(1, 2).PolarAngleAround(pivot), Tolerance)
	assert.InDelta(t, math.Pi, Pt(0, 1).PolarAngleAround(pivot), Tolerance)
}

func TestDistanceTo(t *testing.T) {
	assert.InDelta(t, 5, Pt(0, 0).DistanceTo(Pt(3, 4)), Tolerance)
	assert.InDelta(t, 25, Pt(0, 0).SquaredDistanceTo(Pt(3, 4)), Tolerance)
}
