// Package draw renders trace steps to PNG images, one frame per step.
package draw

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/stepgeom/stepgeom/dual"
	"github.com/stepgeom/stepgeom/gallery"
	"github.com/stepgeom/stepgeom/geom"
	"github.com/stepgeom/stepgeom/hull"
	"github.com/stepgeom/stepgeom/spatial"
	"github.com/stepgeom/stepgeom/step"
	"github.com/stepgeom/stepgeom/sweep"
	"github.com/stepgeom/stepgeom/tri"
)

// Padding around the scene so sweep lines and labels don't touch the border
const drawPadding = 40

// RenderPNG draws one step to a PNG file. The scale is in pixels per world
// unit.
func RenderPNG(st step.Step, path string, scale float64) error {
	if st.Payload == nil {
		return errors.New("step has no payload to draw")
	}
	b := boundsOf(st.Payload)

	width := int(scale*(b.maxX-b.minX)) + drawPadding*2
	height := int(scale*(b.maxY-b.minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-b.minX, -b.minY)

	c.SetLineWidth(2)
	drawPayload(c, st.Payload, b)

	// Caption in native coordinates
	c.Push()
	c.Identity()
	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(st.Description, float64(width)/2, 12, 0.5, 0.5)
	c.Pop()

	return errors.WithStack(c.SavePNG(path))
}

// Cat prints a rendered frame inline in the terminal (iTerm only).
func Cat(path string) {
	imgcat.CatFile(path, os.Stdout)
}

type bounds struct {
	minX, minY, maxX, maxY float64
}

func newBounds() bounds {
	return bounds{
		minX: math.Inf(1), minY: math.Inf(1),
		maxX: math.Inf(-1), maxY: math.Inf(-1),
	}
}

func (b *bounds) add(x, y float64) {
	b.minX = math.Min(b.minX, x)
	b.minY = math.Min(b.minY, y)
	b.maxX = math.Max(b.maxX, x)
	b.maxY = math.Max(b.maxY, y)
}

func (b *bounds) addPoint(p geom.Point) { b.add(p.X, p.Y) }

func (b *bounds) addPoints(pts []geom.Point) {
	for _, p := range pts {
		b.addPoint(p)
	}
}

func boundsOf(payload step.Payload) bounds {
	b := newBounds()
	switch s := payload.(type) {
	case hull.Snapshot:
		b.addPoints(s.Hull)
		b.addPoints(s.Unprocessed)
		if s.Considered != nil {
			b.addPoint(*s.Considered)
		}
	case sweep.IntersectSnapshot:
		for _, seg := range s.Segments {
			b.addPoint(seg.P1)
			b.addPoint(seg.P2)
		}
	case sweep.AreaSnapshot:
		for _, r := range s.Rects {
			b.add(r.X1, r.Y1)
			b.add(r.X2, r.Y2)
		}
	case tri.ClipSnapshot:
		b.addPoints(s.Ring)
		for _, t := range s.Triangles {
			b.addPoints(t.Points())
		}
	case tri.InvalidPolygon:
		for _, cr := range s.Crossings {
			b.addPoint(cr.At)
		}
	case tri.DelaunaySnapshot:
		b.addPoints(s.Pending)
		for _, t := range s.Triangles {
			b.addPoints(t.Points())
		}
		for _, t := range s.Bad {
			b.addPoints(t.Points())
		}
	case tri.VoronoiSnapshot:
		b.addPoints(s.Sites)
		b.addPoints(s.Vertices)
		for _, e := range s.Edges {
			b.addPoint(e.P1)
			b.addPoint(e.P2)
		}
	case tri.FortuneSnapshot:
		b.addPoints(s.Pending)
		b.addPoints(s.Processed)
		b.addPoints(s.Beach)
	case spatial.IntervalTreeSnapshot:
		addIntervalBounds(&b, s.Remaining, len(s.Placed))
		for i, n := range s.Placed {
			b.add(n.Median, float64(i))
			addIntervalBounds(&b, n.Center, len(s.Placed))
		}
	case spatial.SegmentTreeSnapshot:
		addIntervalBounds(&b, s.Slabs, len(s.Attached))
		addIntervalBounds(&b, s.Remaining, len(s.Attached))
	case dual.Snapshot:
		b.addPoints(s.PendingPoints)
		for _, pair := range s.Pairs {
			b.addPoint(pair.Point)
		}
		// Lines are unbounded; give them a window around the points.
		if b.minX > b.maxX {
			b.add(-1, -1)
			b.add(1, 1)
		}
	case gallery.Snapshot:
		b.addPoints(s.Vertices)
		for _, region := range s.Visibility {
			b.addPoints(region)
		}
	}
	if b.minX > b.maxX {
		b.add(0, 0)
		b.add(1, 1)
	}
	if b.maxX-b.minX < 1 {
		b.maxX = b.minX + 1
	}
	if b.maxY-b.minY < 1 {
		b.maxY = b.minY + 1
	}
	return b
}

// Interval payloads are one-dimensional; they get a row per item on the y
// axis.
func addIntervalBounds(b *bounds, ivs []geom.Interval, rows int) {
	for _, iv := range ivs {
		b.add(iv.Start, 0)
		b.add(iv.End, float64(rows)+1)
	}
}

func drawPayload(c *gg.Context, payload step.Payload, b bounds) {
	switch s := payload.(type) {
	case hull.Snapshot:
		drawHull(c, s)
	case sweep.IntersectSnapshot:
		drawIntersect(c, s, b)
	case sweep.AreaSnapshot:
		drawArea(c, s, b)
	case tri.ClipSnapshot:
		drawClip(c, s)
	case tri.InvalidPolygon:
		c.SetRGB(1, 0, 0)
		for _, cr := range s.Crossings {
			dot(c, cr.At, 4)
		}
	case tri.DelaunaySnapshot:
		drawDelaunay(c, s)
	case tri.VoronoiSnapshot:
		drawVoronoi(c, s)
	case tri.FortuneSnapshot:
		drawFortune(c, s, b)
	case spatial.IntervalTreeSnapshot:
		drawIntervalTree(c, s)
	case spatial.SegmentTreeSnapshot:
		drawSegmentTree(c, s)
	case dual.Snapshot:
		drawDuality(c, s, b)
	case gallery.Snapshot:
		drawGallery(c, s)
	}
}

func dot(c *gg.Context, p geom.Point, r float64) {
	// Radius in native pixels regardless of world scale
	x, y := c.TransformPoint(p.X, p.Y)
	c.Push()
	c.Identity()
	c.DrawCircle(x, y, r)
	c.Fill()
	c.Pop()
}

func polyline(c *gg.Context, pts []geom.Point, closed bool) {
	if len(pts) == 0 {
		return
	}
	c.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.LineTo(p.X, p.Y)
	}
	if closed {
		c.ClosePath()
	}
}

func drawHull(c *gg.Context, s hull.Snapshot) {
	c.SetRGB(0.5, 0.5, 0.5)
	for _, p := range s.Unprocessed {
		dot(c, p, 3)
	}
	if len(s.Hull) > 1 {
		polyline(c, s.Hull, s.Done)
		if s.Done {
			c.SetRGBA(0, 0.5, 0, 0.4)
			c.FillPreserve()
		}
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}
	c.SetRGB(0, 1, 1)
	for _, p := range s.Hull {
		dot(c, p, 3)
	}
	if s.Considered != nil {
		c.SetRGB(1, 1, 0)
		dot(c, *s.Considered, 4)
	}
}

func sweepLineX(c *gg.Context, x float64, b bounds) {
	c.SetRGB(1, 1, 0)
	c.MoveTo(x, b.minY)
	c.LineTo(x, b.maxY)
	c.Stroke()
}

func drawIntersect(c *gg.Context, s sweep.IntersectSnapshot, b bounds) {
	active := make(map[int]bool)
	for _, idx := range s.ActiveSet {
		active[idx] = true
	}
	for i, seg := range s.Segments {
		if active[i] {
			c.SetRGB(0, 1, 1)
		} else {
			c.SetRGB(0.6, 0.6, 0.6)
		}
		c.MoveTo(seg.P1.X, seg.P1.Y)
		c.LineTo(seg.P2.X, seg.P2.Y)
		c.Stroke()
	}
	if s.NextEvent < len(s.EventList) {
		sweepLineX(c, s.SweepX, b)
	}
	c.SetRGB(1, 0, 0)
	for _, cr := range s.Found {
		dot(c, cr.At, 4)
	}
}

func drawArea(c *gg.Context, s sweep.AreaSnapshot, b bounds) {
	c.SetRGBA(0, 0.5, 0, 0.4)
	for _, slab := range s.Slabs {
		// Slab height sits on the covered intervals recorded when it closed;
		// the rectangle spans full y for legibility, the exact area is in
		// the caption.
		c.DrawRectangle(slab.X1, b.minY, slab.X2-slab.X1, b.maxY-b.minY)
	}
	c.Fill()
	active := make(map[int]bool)
	for _, idx := range s.ActiveSet {
		active[idx] = true
	}
	for i, r := range s.Rects {
		if active[i] {
			c.SetRGB(0, 1, 1)
		} else {
			c.SetRGB(0.6, 0.6, 0.6)
		}
		c.DrawRectangle(r.X1, r.Y1, r.Width(), r.Height())
		c.Stroke()
	}
	if !s.Done {
		sweepLineX(c, s.SweepX, b)
		c.SetLineWidth(4)
		c.SetRGB(1, 0, 0)
		for _, iv := range s.Covered {
			c.MoveTo(s.SweepX, iv.Start)
			c.LineTo(s.SweepX, iv.End)
			c.Stroke()
		}
		c.SetLineWidth(2)
	}
}

func drawTriangles(c *gg.Context, triangles []tri.Triangle, r, g, bl float64) {
	c.SetRGB(r, g, bl)
	for _, t := range triangles {
		polyline(c, t.Points(), true)
		c.Stroke()
	}
}

func drawClip(c *gg.Context, s tri.ClipSnapshot) {
	drawTriangles(c, s.Triangles, 0, 0.7, 0)
	if len(s.Ring) > 1 {
		c.SetRGB(1, 1, 1)
		polyline(c, s.Ring, true)
		c.Stroke()
	}
	if s.Candidate != nil {
		if s.Rejected {
			c.SetRGB(1, 0, 0)
		} else {
			c.SetRGB(1, 1, 0)
		}
		polyline(c, s.Candidate.Points(), true)
		c.Stroke()
	}
}

func drawDelaunay(c *gg.Context, s tri.DelaunaySnapshot) {
	drawTriangles(c, s.Triangles, 0, 0.7, 0)
	c.SetRGBA(1, 0, 0, 0.4)
	for _, t := range s.Bad {
		polyline(c, t.Points(), true)
		c.Fill()
	}
	c.SetRGB(1, 1, 0)
	for _, e := range s.Hole {
		c.MoveTo(e.P.X, e.P.Y)
		c.LineTo(e.Q.X, e.Q.Y)
		c.Stroke()
	}
	c.SetRGB(0.5, 0.5, 0.5)
	for _, p := range s.Pending {
		dot(c, p, 3)
	}
	if s.Current != nil {
		c.SetRGB(0, 1, 1)
		dot(c, *s.Current, 4)
	}
}

func drawVoronoi(c *gg.Context, s tri.VoronoiSnapshot) {
	drawTriangles(c, s.Triangles, 0.3, 0.3, 0.3)
	c.SetRGB(0, 1, 1)
	for _, e := range s.Edges {
		c.MoveTo(e.P1.X, e.P1.Y)
		c.LineTo(e.P2.X, e.P2.Y)
		c.Stroke()
	}
	c.SetRGB(1, 1, 1)
	for _, p := range s.Sites {
		dot(c, p, 3)
	}
	c.SetRGB(1, 0, 0)
	for _, p := range s.Vertices {
		dot(c, p, 3)
	}
}

func drawFortune(c *gg.Context, s tri.FortuneSnapshot, b bounds) {
	if !s.Done {
		c.SetRGB(1, 1, 0)
		c.MoveTo(b.minX, s.SweepY)
		c.LineTo(b.maxX, s.SweepY)
		c.Stroke()
	}
	if len(s.Beach) > 1 {
		c.SetRGB(0, 1, 1)
		polyline(c, s.Beach, false)
		c.Stroke()
	}
	c.SetRGB(0.5, 0.5, 0.5)
	for _, p := range s.Pending {
		dot(c, p, 3)
	}
	c.SetRGB(1, 1, 1)
	for _, p := range s.Processed {
		dot(c, p, 3)
	}
}

// drawIntervalRow draws one interval as a horizontal bar at the given row.
func drawIntervalRow(c *gg.Context, iv geom.Interval, row float64) {
	c.MoveTo(iv.Start, row)
	c.LineTo(iv.End, row)
	c.Stroke()
}

func drawIntervalTree(c *gg.Context, s spatial.IntervalTreeSnapshot) {
	c.SetRGB(0.5, 0.5, 0.5)
	for i, iv := range s.Remaining {
		drawIntervalRow(c, iv, float64(i))
	}
	for i, n := range s.Placed {
		row := float64(len(s.Remaining) + i)
		c.SetRGB(1, 1, 0)
		c.MoveTo(n.Median, 0)
		c.LineTo(n.Median, row)
		c.Stroke()
		c.SetRGB(0, 1, 1)
		for _, iv := range n.Center {
			drawIntervalRow(c, iv, row)
		}
	}
}

func drawSegmentTree(c *gg.Context, s spatial.SegmentTreeSnapshot) {
	c.SetRGB(1, 1, 0)
	for _, slab := range s.Slabs {
		c.MoveTo(slab.Start, 0)
		c.LineTo(slab.Start, float64(len(s.Attached)+len(s.Remaining))+1)
		c.Stroke()
	}
	c.SetRGB(0.5, 0.5, 0.5)
	for i, iv := range s.Remaining {
		drawIntervalRow(c, iv, float64(i+1))
	}
	c.SetRGB(0, 1, 1)
	for i, at := range s.Attached {
		drawIntervalRow(c, at.Interval, float64(len(s.Remaining)+i+1))
	}
	if s.Current != nil {
		c.SetRGB(1, 1, 1)
		drawIntervalRow(c, *s.Current, 0.5)
	}
}

func drawDuality(c *gg.Context, s dual.Snapshot, b bounds) {
	drawDualLine := func(l geom.DualLine) {
		c.MoveTo(b.minX, l.YAt(b.minX))
		c.LineTo(b.maxX, l.YAt(b.maxX))
		c.Stroke()
	}
	c.SetRGB(0.5, 0.5, 0.5)
	for _, p := range s.PendingPoints {
		dot(c, p, 3)
	}
	for _, l := range s.PendingLines {
		drawDualLine(l)
	}
	for _, pair := range s.Pairs {
		if pair.PointPrimal {
			c.SetRGB(1, 1, 1)
			dot(c, pair.Point, 3)
			c.SetRGB(0, 1, 1)
			drawDualLine(pair.Line)
		} else {
			c.SetRGB(1, 1, 1)
			drawDualLine(pair.Line)
			c.SetRGB(0, 1, 1)
			dot(c, pair.Point, 3)
		}
	}
}

var colorClassRGB = [3][3]float64{
	{1, 0.3, 0.3},
	{0.3, 1, 0.3},
	{0.3, 0.5, 1},
}

func drawGallery(c *gg.Context, s gallery.Snapshot) {
	c.SetRGBA(1, 1, 0, 0.25)
	for _, region := range s.Visibility {
		polyline(c, region, true)
		c.Fill()
	}
	drawTriangles(c, s.Triangles, 0.3, 0.3, 0.3)
	c.SetRGB(1, 1, 1)
	polyline(c, s.Vertices, true)
	c.Stroke()
	for i, v := range s.Vertices {
		if len(s.Colors) > i && s.Colors[i] != gallery.Uncolored {
			rgb := colorClassRGB[s.Colors[i]]
			c.SetRGB(rgb[0], rgb[1], rgb[2])
		} else {
			c.SetRGB(0.5, 0.5, 0.5)
		}
		dot(c, v, 4)
	}
	c.SetRGB(1, 1, 0)
	for _, g := range s.Guards {
		dot(c, g, 6)
	}
}
