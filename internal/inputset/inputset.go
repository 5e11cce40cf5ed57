// Package inputset provides the mutable input collections embedded by the
// algorithm engines. Every mutation invalidates the embedded trace, so the
// next read recomputes the step list from scratch; removal is
// tolerance-matched against the stored values.
package inputset

import (
	"github.com/stepgeom/stepgeom/geom"
	"github.com/stepgeom/stepgeom/step"
)

// PointSet is a point collection plus the trace it feeds.
type PointSet struct {
	step.Trace
	items []geom.Point
}

func (s *PointSet) AddPoint(p geom.Point) {
	s.items = append(s.items, p)
	s.Invalidate()
}

// RemovePoint removes the first stored point tolerance-equal to p.
func (s *PointSet) RemovePoint(p geom.Point) bool {
	for i, item := range s.items {
		if item.Eq(p) {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.Invalidate()
			return true
		}
	}
	return false
}

// Points returns a copy; callers never alias the engine's input.
func (s *PointSet) Points() []geom.Point {
	out := make([]geom.Point, len(s.items))
	copy(out, s.items)
	return out
}

func (s *PointSet) PointCount() int {
	return len(s.items)
}

func (s *PointSet) Clear() {
	s.items = nil
	s.Invalidate()
}

// SegmentSet is a line-segment collection plus the trace it feeds.
type SegmentSet struct {
	step.Trace
	items []geom.Segment
}

func (s *SegmentSet) AddSegment(seg geom.Segment) {
	s.items = append(s.items, seg)
	s.Invalidate()
}

func (s *SegmentSet) RemoveSegment(seg geom.Segment) bool {
	for i, item := range s.items {
		if item.P1.Eq(seg.P1) && item.P2.Eq(seg.P2) {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.Invalidate()
			return true
		}
	}
	return false
}

func (s *SegmentSet) Segments() []geom.Segment {
	out := make([]geom.Segment, len(s.items))
	copy(out, s.items)
	return out
}

func (s *SegmentSet) SegmentCount() int {
	return len(s.items)
}

func (s *SegmentSet) Clear() {
	s.items = nil
	s.Invalidate()
}

// RectSet is a rectangle collection plus the trace it feeds.
type RectSet struct {
	step.Trace
	items []geom.Rect
}

func (s *RectSet) AddRect(r geom.Rect) {
	s.items = append(s.items, r)
	s.Invalidate()
}

func (s *RectSet) RemoveRect(r geom.Rect) bool {
	for i, item := range s.items {
		if item.Eq(r) {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.Invalidate()
			return true
		}
	}
	return false
}

func (s *RectSet) Rects() []geom.Rect {
	out := make([]geom.Rect, len(s.items))
	copy(out, s.items)
	return out
}

func (s *RectSet) RectCount() int {
	return len(s.items)
}

func (s *RectSet) Clear() {
	s.items = nil
	s.Invalidate()
}

// IntervalSet is a 1D interval collection plus the trace it feeds.
type IntervalSet struct {
	step.Trace
	items []geom.Interval
}

func (s *IntervalSet) AddInterval(iv geom.Interval) {
	s.items = append(s.items, iv)
	s.Invalidate()
}

func (s *IntervalSet) RemoveInterval(iv geom.Interval) bool {
	for i, item := range s.items {
		if item.Eq(iv) {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.Invalidate()
			return true
		}
	}
	return false
}

func (s *IntervalSet) Intervals() []geom.Interval {
	out := make([]geom.Interval, len(s.items))
	copy(out, s.items)
	return out
}

func (s *IntervalSet) IntervalCount() int {
	return len(s.items)
}

func (s *IntervalSet) Clear() {
	s.items = nil
	s.Invalidate()
}

// PolygonInput wraps a single polygon under construction plus the trace it
// feeds. The underlying polygon is owned by the input set; vertices are added
// through it so completion state and trace invalidation stay in sync.
type PolygonInput struct {
	step.Trace
	poly geom.Polygon
}

func (s *PolygonInput) AddVertex(p geom.Point) {
	s.poly.AddVertex(p)
	s.Invalidate()
}

// CompletePolygon closes the chain; it fails on fewer than three vertices.
func (s *PolygonInput) CompletePolygon() error {
	err := s.poly.Complete()
	if err != nil {
		return err
	}
	s.Invalidate()
	return nil
}

// SetPolygon replaces the polygon wholesale.
func (s *PolygonInput) SetPolygon(poly *geom.Polygon) {
	s.poly = *poly.Clone()
	s.Invalidate()
}

// Polygon returns a copy of the current polygon.
func (s *PolygonInput) Polygon() *geom.Polygon {
	return s.poly.Clone()
}

func (s *PolygonInput) Clear() {
	s.poly.Clear()
	s.Invalidate()
}
