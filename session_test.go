package stepgeom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepgeom/stepgeom/geom"
)

func TestAlgorithmByNameRoundTrip(t *testing.T) {
	for _, a := range Algorithms() {
		got, err := AlgorithmByName(a.String())
		require.NoError(t, err, a.String())
		assert.Equal(t, a, got)
	}

	_, err := AlgorithmByName("bogosort")
	assert.Error(t, err)
}

func TestSessionInputFamilies(t *testing.T) {
	families := map[Algorithm]func(*Session) bool{
		GrahamScan:            func(s *Session) bool { return s.PointEngine() != nil },
		GiftWrap:              func(s *Session) bool { return s.PointEngine() != nil },
		QuickHull:             func(s *Session) bool { return s.PointEngine() != nil },
		DelaunayTriangulation: func(s *Session) bool { return s.PointEngine() != nil },
		VoronoiDiagram:        func(s *Session) bool { return s.PointEngine() != nil },
		FortuneSweep:          func(s *Session) bool { return s.PointEngine() != nil },
		SegmentIntersection:   func(s *Session) bool { return s.SegmentEngine() != nil },
		RectUnion:             func(s *Session) bool { return s.RectEngine() != nil },
		RectIntersection:      func(s *Session) bool { return s.RectEngine() != nil },
		IntervalTree:          func(s *Session) bool { return s.IntervalEngine() != nil },
		SegmentTree:           func(s *Session) bool { return s.IntervalEngine() != nil },
		EarClipping:           func(s *Session) bool { return s.PolygonEngine() != nil },
		ArtGallery:            func(s *Session) bool { return s.PolygonEngine() != nil },
		PointLineDuality:      func(s *Session) bool { return s.DualityEngine() != nil },
	}
	for algo, hasFamily := range families {
		s, err := NewSession(algo)
		require.NoError(t, err, algo.String())
		assert.True(t, hasFamily(s), algo.String())
		assert.NotNil(t, s.Engine(), algo.String())
	}
}

func TestSessionWrongFamilyIsNil(t *testing.T) {
	s, err := NewSession(GrahamScan)
	require.NoError(t, err)
	assert.Nil(t, s.SegmentEngine())
	assert.Nil(t, s.RectEngine())
	assert.Nil(t, s.IntervalEngine())
	assert.Nil(t, s.PolygonEngine())
	assert.Nil(t, s.DualityEngine())
}

func TestSessionDrivesEngine(t *testing.T) {
	s, err := NewSession(QuickHull)
	require.NoError(t, err)

	pe := s.PointEngine()
	pe.AddPoint(geom.Pt(0, 0))
	pe.AddPoint(geom.Pt(4, 0))
	pe.AddPoint(geom.Pt(2, 3))
	pe.AddPoint(geom.Pt(2, 1))

	engine := s.Engine()
	steps := engine.ComputeSteps()
	require.NotEmpty(t, steps)
	assert.True(t, engine.CanGoNext())
	assert.True(t, engine.NextStep())
	assert.Equal(t, 1, engine.CurrentIndex())
}

func TestAlgorithmsCatalogComplete(t *testing.T) {
	assert.Len(t, Algorithms(), 14)
}
