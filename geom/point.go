package geom

import (
	"fmt"
	"math"
)

// Point is a plane coordinate. Points are plain values and are never mutated
// after construction; engines copy them freely.
type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{x, y}
}

// Eq is tolerance-based equality.
func (p Point) Eq(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// EqWithin is Eq with a caller-chosen epsilon. The art gallery engine uses a
// coarse epsilon here when deduplicating sampled visibility boundaries.
func (p Point) EqWithin(q Point, eps float64) bool {
	return EqualWithin(p.X, q.X, eps) && EqualWithin(p.Y, q.Y, eps)
}

func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// SquaredDistanceTo avoids the sqrt when only comparisons are needed, which
// keeps tie-breaking by distance exact for integer-valued input.
func (p Point) SquaredDistanceTo(q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return dx*dx + dy*dy
}

// PolarAngleAround returns the angle of p as seen from pivot, in (-π, π].
func (p Point) PolarAngleAround(pivot Point) float64 {
	return math.Atan2(p.Y-pivot.Y, p.X-pivot.X)
}

func (p Point) String() string {
	return fmt.Sprintf("(%.6g, %.6g)", p.X, p.Y)
}

// Turn is the orientation of an ordered point triple.
type Turn int

const (
	Collinear Turn = iota
	Clockwise
	CounterClockwise
)

func (t Turn) String() string {
	switch t {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	default:
		return "collinear"
	}
}

// Cross is the z component of (q-p) × (r-p). Positive means the triple
// p, q, r turns counterclockwise.
func Cross(p, q, r Point) float64 {
	return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
}

// Orientation classifies the turn of p, q, r with the default tolerance.
func Orientation(p, q, r Point) Turn {
	cross := Cross(p, q, r)
	if math.Abs(cross) < Tolerance {
		return Collinear
	}
	if cross > 0 {
		return CounterClockwise
	}
	return Clockwise
}
