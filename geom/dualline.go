package geom

import (
	"fmt"
	"math"
)

// MaxSlope stands in for a vertical line's slope. This is a documented
// precision limitation of the duality engine, not a failure mode: a segment
// within 1/MaxSlope of vertical maps to a line of slope ±MaxSlope.
const MaxSlope = 1e9

// DualLine is the non-vertical line y = Slope·x + Intercept.
type DualLine struct {
	Slope, Intercept float64
}

// LineThrough builds the line through two points, clamping the slope of
// (near-)vertical input to ±MaxSlope.
func LineThrough(p, q Point) DualLine {
	dx := q.X - p.X
	if math.Abs(dx) < 1/MaxSlope {
		slope := math.Copysign(MaxSlope, (q.Y-p.Y)*dx)
		if dx == 0 {
			slope = MaxSlope
		}
		return DualLine{Slope: slope, Intercept: p.Y - slope*p.X}
	}
	slope := (q.Y - p.Y) / dx
	return DualLine{Slope: slope, Intercept: p.Y - slope*p.X}
}

func (l DualLine) YAt(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Dual maps the point (a, b) to its dual line y = a·x − b.
func (p Point) Dual() DualLine {
	return DualLine{Slope: p.X, Intercept: -p.Y}
}

// Dual maps the line y = m·x + c to its dual point (m, −c). Point.Dual and
// DualLine.Dual are inverse to each other, which is what preserves
// point-line incidence.
func (l DualLine) Dual() Point {
	return Point{l.Slope, -l.Intercept}
}

func (l DualLine) Eq(other DualLine) bool {
	return Equal(l.Slope, other.Slope) && Equal(l.Intercept, other.Intercept)
}

func (l DualLine) String() string {
	if l.Intercept < 0 {
		return fmt.Sprintf("y = %.6g·x − %.6g", l.Slope, -l.Intercept)
	}
	return fmt.Sprintf("y = %.6g·x + %.6g", l.Slope, l.Intercept)
}
