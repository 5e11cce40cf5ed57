package tri

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepgeom/stepgeom/geom"
)

func TestFortuneProcessesSitesTopDown(t *testing.T) {
	f := NewFortune()
	addPoints(f, geom.Pt(0, 1), geom.Pt(3, 4), geom.Pt(6, 2))

	steps := f.ComputeSteps()
	// Queue step, one per site, final envelope
	require.Len(t, steps, 5)

	prevY := math.Inf(1)
	for _, st := range steps {
		snap := st.Payload.(FortuneSnapshot)
		assert.LessOrEqual(t, snap.SweepY, prevY)
		prevY = snap.SweepY
	}

	last := steps[len(steps)-1].Payload.(FortuneSnapshot)
	assert.True(t, last.Done)
	assert.Len(t, last.Processed, 3)
	assert.Empty(t, last.Pending)
}

// Each beach point is on the arc of its nearest processed site: its distance
// to that site equals its height above the directrix.
func TestFortuneBeachLineEquidistance(t *testing.T) {
	f := NewFortune()
	addPoints(f, geom.Pt(0, 3), geom.Pt(4, 5), geom.Pt(7, 2))

	steps := f.ComputeSteps()
	last := steps[len(steps)-1].Payload.(FortuneSnapshot)
	require.NotEmpty(t, last.Beach)

	for _, p := range last.Beach {
		nearest := math.Inf(1)
		for _, s := range last.Processed {
			nearest = math.Min(nearest, p.DistanceTo(s))
		}
		assert.InDelta(t, p.Y-last.SweepY, nearest, geom.Tolerance*100)
	}
}

func TestFortuneSingleSite(t *testing.T) {
	f := NewFortune()
	addPoints(f, geom.Pt(0, 0))

	steps := f.ComputeSteps()
	require.Len(t, steps, 1)
}
