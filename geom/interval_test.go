package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntervalNormalization(t *testing.T) {
	iv := NewInterval(5, 2)
	assert.InDelta(t, 2, iv.Start, Tolerance)
	assert.InDelta(t, 5, iv.End, Tolerance)
	assert.InDelta(t, 3, iv.Length(), Tolerance)
}

func TestIntervalContainsOverlaps(t *testing.T) {
	iv := NewInterval(1, 4)
	assert.True(t, iv.Contains(1))
	assert.True(t, iv.Contains(4))
	assert.True(t, iv.Contains(2.5))
	assert.False(t, iv.Contains(4.5))

	assert.True(t, iv.Overlaps(NewInterval(3, 6)))
	assert.True(t, iv.Overlaps(NewInterval(4, 6)))
	assert.False(t, iv.Overlaps(NewInterval(5, 6)))
}

func TestMergeIntervals(t *testing.T) {
	merged := MergeIntervals([]Interval{
		NewInterval(3, 5),
		NewInterval(0, 1),
		NewInterval(1, 2),
		NewInterval(4, 6),
	})
	assert.Equal(t, []Interval{NewInterval(0, 2), NewInterval(3, 6)}, merged)
	assert.InDelta(t, 5, TotalLength(merged), Tolerance)
}

func TestMergeIntervalsEmpty(t *testing.T) {
	assert.Empty(t, MergeIntervals(nil))
}

func TestRect(t *testing.T) {
	r := NewRect(3, 4, 1, 2)
	assert.InDelta(t, 1, r.X1, Tolerance)
	assert.InDelta(t, 2, r.Y1, Tolerance)
	assert.InDelta(t, 2, r.Width(), Tolerance)
	assert.InDelta(t, 2, r.Height(), Tolerance)
	assert.InDelta(t, 4, r.Area(), Tolerance)
	assert.Equal(t, NewInterval(2, 4), r.YInterval())
}
