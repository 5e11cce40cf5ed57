// Package stepgeom ties the per-family engines together behind a single
// algorithm catalog and a session holding the active engine.
package stepgeom

import (
	"github.com/pkg/errors"

	"github.com/stepgeom/stepgeom/dual"
	"github.com/stepgeom/stepgeom/gallery"
	"github.com/stepgeom/stepgeom/hull"
	"github.com/stepgeom/stepgeom/spatial"
	"github.com/stepgeom/stepgeom/step"
	"github.com/stepgeom/stepgeom/sweep"
	"github.com/stepgeom/stepgeom/tri"
)

// Algorithm identifies one of the traceable algorithms.
type Algorithm int

const (
	GrahamScan Algorithm = iota
	GiftWrap
	QuickHull
	SegmentIntersection
	RectUnion
	RectIntersection
	EarClipping
	DelaunayTriangulation
	VoronoiDiagram
	FortuneSweep
	IntervalTree
	SegmentTree
	PointLineDuality
	ArtGallery
)

var algorithmNames = map[Algorithm]string{
	GrahamScan:            "graham",
	GiftWrap:              "giftwrap",
	QuickHull:             "quickhull",
	SegmentIntersection:   "intersect",
	RectUnion:             "union",
	RectIntersection:      "intersection",
	EarClipping:           "earclip",
	DelaunayTriangulation: "delaunay",
	VoronoiDiagram:        "voronoi",
	FortuneSweep:          "fortune",
	IntervalTree:          "intervaltree",
	SegmentTree:           "segmenttree",
	PointLineDuality:      "duality",
	ArtGallery:            "gallery",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return "unknown"
}

// Algorithms lists every algorithm in catalog order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, 0, len(algorithmNames))
	for a := GrahamScan; a <= ArtGallery; a++ {
		out = append(out, a)
	}
	return out
}

// AlgorithmByName resolves a catalog name such as "graham" or "voronoi".
func AlgorithmByName(name string) (Algorithm, error) {
	for a, n := range algorithmNames {
		if n == name {
			return a, nil
		}
	}
	return 0, errors.Errorf("unknown algorithm %q", name)
}

// Session owns one live engine. The constructor picks the engine by
// algorithm; the typed accessors return nil when the session holds a
// different input family.
type Session struct {
	algorithm Algorithm
	engine    step.Steppable
}

func NewSession(a Algorithm) (*Session, error) {
	s := &Session{algorithm: a}
	switch a {
	case GrahamScan:
		s.engine = hull.NewGrahamScan()
	case GiftWrap:
		s.engine = hull.NewGiftWrap()
	case QuickHull:
		s.engine = hull.NewQuickHull()
	case SegmentIntersection:
		s.engine = sweep.NewSegmentIntersection()
	case RectUnion:
		s.engine = sweep.NewRectUnion()
	case RectIntersection:
		s.engine = sweep.NewRectIntersection()
	case EarClipping:
		s.engine = tri.NewEarClip()
	case DelaunayTriangulation:
		s.engine = tri.NewDelaunay()
	case VoronoiDiagram:
		s.engine = tri.NewVoronoi()
	case FortuneSweep:
		s.engine = tri.NewFortune()
	case IntervalTree:
		s.engine = spatial.NewIntervalTree()
	case SegmentTree:
		s.engine = spatial.NewSegmentTree()
	case PointLineDuality:
		s.engine = dual.NewDuality()
	case ArtGallery:
		s.engine = gallery.NewArtGallery()
	default:
		return nil, errors.Errorf("unknown algorithm %d", a)
	}
	return s, nil
}

func (s *Session) Algorithm() Algorithm { return s.algorithm }

// Engine exposes the trace cursor regardless of input family.
func (s *Session) Engine() step.Steppable { return s.engine }

// PointEngine returns the session's point-input engine, or nil when the
// active algorithm takes a different input family.
func (s *Session) PointEngine() PointInput {
	if e, ok := s.engine.(PointInput); ok {
		return e
	}
	return nil
}

func (s *Session) SegmentEngine() SegmentInput {
	if e, ok := s.engine.(SegmentInput); ok {
		return e
	}
	return nil
}

func (s *Session) RectEngine() RectInput {
	if e, ok := s.engine.(RectInput); ok {
		return e
	}
	return nil
}

func (s *Session) IntervalEngine() IntervalInput {
	if e, ok := s.engine.(IntervalInput); ok {
		return e
	}
	return nil
}

func (s *Session) PolygonEngine() PolygonInput {
	if e, ok := s.engine.(PolygonInput); ok {
		return e
	}
	return nil
}

func (s *Session) DualityEngine() *dual.Duality {
	if e, ok := s.engine.(*dual.Duality); ok {
		return e
	}
	return nil
}
