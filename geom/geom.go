// Package geom provides the plane-geometry primitives shared by every
// algorithm engine: points, line segments, polygons, axis-aligned rectangles,
// 1D intervals, and dual lines.
//
// All predicates are tolerance based. We deliberately do not use exact
// arithmetic; near-degenerate input can be misclassified, and the engines are
// written to tolerate that rather than crash.
package geom

import "math"

// Tolerance is the default comparison epsilon. Some engines use wider
// epsilons for specific tests (circumcircle containment, visibility
// sampling); those are documented at their call sites.
const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based. If we
// don't account for this, nearly-collinear triples flicker between turn
// directions and hull scans emit spurious backtrack steps.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// EqualWithin is Equal with a caller-chosen epsilon.
func EqualWithin(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// CircularIndex treats an array as a circular buffer. Unlike the raw modulo
// operator, it only gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
