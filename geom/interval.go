package geom

import (
	"fmt"
	"math"
)

// Interval is a closed 1D interval. The constructor normalizes the endpoints
// so Start ≤ End always holds.
type Interval struct {
	Start, End float64
}

func NewInterval(a, b float64) Interval {
	return Interval{Start: math.Min(a, b), End: math.Max(a, b)}
}

func (iv Interval) Length() float64 {
	return iv.End - iv.Start
}

// Contains is closed-endpoint containment, within tolerance.
func (iv Interval) Contains(x float64) bool {
	return x >= iv.Start-Tolerance && x <= iv.End+Tolerance
}

// Overlaps reports whether the two closed intervals share at least a point.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start <= other.End+Tolerance && other.Start <= iv.End+Tolerance
}

func (iv Interval) Eq(other Interval) bool {
	return Equal(iv.Start, other.Start) && Equal(iv.End, other.End)
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%.6g, %.6g]", iv.Start, iv.End)
}

// MergeIntervals sorts the intervals by start and merges overlapping or
// touching ones. The rectangle-union sweep uses the merged total length as
// the covered height at the sweep position.
func MergeIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	// Insertion sort keeps this dependency-free and stable; the active sets
	// are tiny.
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].Start < sorted[j-1].Start; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	merged := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End+Tolerance {
			if iv.End > last.End {
				last.End = iv.End
			}
		} else {
			merged = append(merged, iv)
		}
	}
	return merged
}

// TotalLength sums the lengths of a (typically merged) interval list.
func TotalLength(intervals []Interval) float64 {
	total := 0.0
	for _, iv := range intervals {
		total += iv.Length()
	}
	return total
}
