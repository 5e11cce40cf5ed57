package stepgeom

import (
	"github.com/stepgeom/stepgeom/geom"
	"github.com/stepgeom/stepgeom/step"
)

// The input interfaces below are what inputset's embedded collections
// promote onto each engine, one per input family. A Session hands out the
// matching interface so callers mutate inputs without knowing the concrete
// engine type.

type PointInput interface {
	step.Steppable
	AddPoint(p geom.Point)
	RemovePoint(p geom.Point) bool
	Points() []geom.Point
	PointCount() int
}

type SegmentInput interface {
	step.Steppable
	AddSegment(s geom.Segment)
	RemoveSegment(s geom.Segment) bool
	Segments() []geom.Segment
	SegmentCount() int
}

type RectInput interface {
	step.Steppable
	AddRect(r geom.Rect)
	RemoveRect(r geom.Rect) bool
	Rects() []geom.Rect
	RectCount() int
}

type IntervalInput interface {
	step.Steppable
	AddInterval(iv geom.Interval)
	RemoveInterval(iv geom.Interval) bool
	Intervals() []geom.Interval
	IntervalCount() int
}

type PolygonInput interface {
	step.Steppable
	AddVertex(p geom.Point)
	CompletePolygon() error
	SetPolygon(poly *geom.Polygon)
	Polygon() *geom.Polygon
}
