package geom

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle. The constructor normalizes the corners
// so X1 ≤ X2 and Y1 ≤ Y2 always hold.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

func NewRect(x1, y1, x2, y2 float64) Rect {
	return Rect{
		X1: math.Min(x1, x2),
		Y1: math.Min(y1, y2),
		X2: math.Max(x1, x2),
		Y2: math.Max(y1, y2),
	}
}

func (r Rect) Width() float64  { return r.X2 - r.X1 }
func (r Rect) Height() float64 { return r.Y2 - r.Y1 }
func (r Rect) Area() float64   { return r.Width() * r.Height() }

// YInterval is the rectangle's vertical extent, used by the sweep engines.
func (r Rect) YInterval() Interval {
	return Interval{Start: r.Y1, End: r.Y2}
}

func (r Rect) Eq(other Rect) bool {
	return Equal(r.X1, other.X1) && Equal(r.Y1, other.Y1) &&
		Equal(r.X2, other.X2) && Equal(r.Y2, other.Y2)
}

func (r Rect) String() string {
	return fmt.Sprintf("[(%.6g, %.6g)-(%.6g, %.6g)]", r.X1, r.Y1, r.X2, r.Y2)
}
