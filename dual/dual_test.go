package dual

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepgeom/stepgeom/geom"
)

func TestDualityMapsPointsAndLines(t *testing.T) {
	d := NewDuality()
	d.AddPoint(geom.Pt(2, 3))
	d.AddLine(geom.DualLine{Slope: 1, Intercept: -4})

	pairs := d.Pairs()
	require.Len(t, pairs, 2)

	// Point (a, b) maps to the line y = ax - b
	assert.True(t, pairs[0].PointPrimal)
	assert.True(t, pairs[0].Line.Eq(geom.DualLine{Slope: 2, Intercept: -3}))

	// Line y = mx + c maps to the point (m, -c)
	assert.False(t, pairs[1].PointPrimal)
	assert.True(t, pairs[1].Point.Eq(geom.Pt(1, 4)))
}

// Collinear points map to concurrent lines: all three dual lines pass
// through the dual of the common line.
func TestDualityPreservesIncidence(t *testing.T) {
	line := geom.DualLine{Slope: 2, Intercept: 1}
	d := NewDuality()
	for _, x := range []float64{-1, 0, 3} {
		d.AddPoint(geom.Pt(x, line.YAt(x)))
	}

	pairs := d.Pairs()
	require.Len(t, pairs, 3)
	meet := line.Dual()
	for _, pair := range pairs {
		assert.InDelta(t, meet.Y, pair.Line.YAt(meet.X), geom.Tolerance)
	}
}

func TestDualityOneStepPerMapping(t *testing.T) {
	d := NewDuality()
	d.AddPoint(geom.Pt(0, 1))
	d.AddPoint(geom.Pt(2, 2))
	d.AddLine(geom.DualLine{Slope: 3, Intercept: 0})

	// Setup, one step per mapping, final summary
	assert.Equal(t, 5, d.StepCount())
}

func TestDualityEmpty(t *testing.T) {
	d := NewDuality()
	steps := d.ComputeSteps()
	require.Len(t, steps, 1)
	assert.Nil(t, d.Pairs())
}

func TestDualityRemove(t *testing.T) {
	d := NewDuality()
	d.AddPoint(geom.Pt(1, 1))
	d.AddPoint(geom.Pt(2, 2))
	require.Len(t, d.Pairs(), 2)

	assert.True(t, d.RemovePoint(geom.Pt(1, 1)))
	assert.False(t, d.RemovePoint(geom.Pt(9, 9)))
	assert.Len(t, d.Pairs(), 1)
}
