package tri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepgeom/stepgeom/geom"
)

func trianglesArea(triangles []Triangle) float64 {
	sum := 0.0
	for _, t := range triangles {
		sum += t.Area()
	}
	return sum
}

func TestEarClipSquare(t *testing.T) {
	e := NewEarClip()
	e.SetPolygon(geom.ClosedPolygon(geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(4, 4), geom.Pt(0, 4)))

	triangles := e.Triangles()
	require.Len(t, triangles, 2)
	assert.InDelta(t, 16, trianglesArea(triangles), geom.Tolerance)
}

// A comb-shaped polygon with reflex vertices still yields n-2 triangles
// covering the full area.
func TestEarClipReflexPolygon(t *testing.T) {
	comb := geom.ClosedPolygon(
		geom.Pt(0, 0), geom.Pt(6, 0), geom.Pt(6, 4),
		geom.Pt(4, 4), geom.Pt(4, 2), geom.Pt(2, 2),
		geom.Pt(2, 4), geom.Pt(0, 4),
	)
	e := NewEarClip()
	e.SetPolygon(comb)

	triangles := e.Triangles()
	require.Len(t, triangles, 6)
	assert.InDelta(t, comb.Area(), trianglesArea(triangles), geom.Tolerance)
}

func TestEarClipClockwiseInput(t *testing.T) {
	cw := geom.ClosedPolygon(geom.Pt(0, 0), geom.Pt(0, 4), geom.Pt(4, 4), geom.Pt(4, 0))
	e := NewEarClip()
	e.SetPolygon(cw)

	triangles := e.Triangles()
	require.Len(t, triangles, 2)
	assert.InDelta(t, 16, trianglesArea(triangles), geom.Tolerance)
}

// A self-intersecting polygon produces exactly one rejection step and no
// triangles.
func TestEarClipSelfIntersecting(t *testing.T) {
	bowtie := geom.ClosedPolygon(geom.Pt(0, 0), geom.Pt(4, 4), geom.Pt(4, 0), geom.Pt(0, 4))
	e := NewEarClip()
	e.SetPolygon(bowtie)

	steps := e.ComputeSteps()
	require.Len(t, steps, 1)
	payload, ok := steps[0].Payload.(InvalidPolygon)
	require.True(t, ok)
	assert.Len(t, payload.Crossings, 1)
	assert.Nil(t, e.Triangles())
}

func TestEarClipIncompletePolygon(t *testing.T) {
	e := NewEarClip()
	e.AddVertex(geom.Pt(0, 0))
	e.AddVertex(geom.Pt(1, 0))

	steps := e.ComputeSteps()
	require.Len(t, steps, 1)
	assert.Nil(t, e.Triangles())
}

func TestTriangulatePure(t *testing.T) {
	triangles, err := Triangulate(geom.ClosedPolygon(geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(2, 3)))
	require.NoError(t, err)
	assert.Len(t, triangles, 1)

	_, err = Triangulate(geom.ClosedPolygon(geom.Pt(0, 0), geom.Pt(4, 4), geom.Pt(4, 0), geom.Pt(0, 4)))
	assert.Error(t, err)
}

func TestEarClipStepsShrinkRing(t *testing.T) {
	e := NewEarClip()
	e.SetPolygon(geom.ClosedPolygon(
		geom.Pt(0, 0), geom.Pt(5, 0), geom.Pt(6, 3), geom.Pt(3, 5), geom.Pt(0, 3),
	))

	prevRing := -1
	for _, st := range e.ComputeSteps() {
		snap, ok := st.Payload.(ClipSnapshot)
		if !ok {
			continue
		}
		if prevRing >= 0 {
			assert.LessOrEqual(t, len(snap.Ring), prevRing)
		}
		prevRing = len(snap.Ring)
	}
}
