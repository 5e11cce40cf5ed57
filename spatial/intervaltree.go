// Package spatial implements the spatial index engines: the centered
// interval tree and the canonical-decomposition segment tree. Both trees are
// rebuilt from scratch on every recompute; the trace records one step per
// structural decision, which is the interesting part at teaching scale.
package spatial

import (
	"fmt"
	"sort"

	"github.com/stepgeom/stepgeom/geom"
	"github.com/stepgeom/stepgeom/internal/inputset"
	"github.com/stepgeom/stepgeom/step"
)

// IntervalNode is one node of a centered interval tree: the median of the
// endpoints below it, the intervals overlapping that median, and children
// for the strictly-left and strictly-right partitions.
type IntervalNode struct {
	Median      float64
	Center      []geom.Interval
	Left, Right *IntervalNode
	Depth       int
}

func (n *IntervalNode) String() string {
	return fmt.Sprintf("node median=%.6g holding %d intervals", n.Median, len(n.Center))
}

// IntervalTree recursively partitions intervals around endpoint medians.
type IntervalTree struct {
	inputset.IntervalSet
	root *IntervalNode
}

func NewIntervalTree() *IntervalTree {
	t := &IntervalTree{}
	t.Init(t.build)
	return t
}

// Root returns the built tree, computing the trace if needed. Nil when
// there are no intervals.
func (t *IntervalTree) Root() *IntervalNode {
	t.ComputeSteps()
	return t.root
}

// Stab returns every stored interval containing x, in tree order.
func (t *IntervalTree) Stab(x float64) []geom.Interval {
	var out []geom.Interval
	for node := t.Root(); node != nil; {
		for _, iv := range node.Center {
			if iv.Contains(x) {
				out = append(out, iv)
			}
		}
		if x < node.Median {
			node = node.Left
		} else if x > node.Median {
			node = node.Right
		} else {
			break
		}
	}
	return out
}

// IntervalTreeSnapshot is the interval tree step variant: the nodes built so
// far (in construction order) and the intervals still waiting for a home.
type IntervalTreeSnapshot struct {
	Text      string
	Remaining []geom.Interval
	Placed    []PlacedNode
	Done      bool
}

// PlacedNode is a flattened, immutable view of one constructed node.
type PlacedNode struct {
	Median float64
	Center []geom.Interval
	Depth  int
}

func (p PlacedNode) String() string {
	return fmt.Sprintf("depth %d median=%.6g center=%d", p.Depth, p.Median, len(p.Center))
}

func (s IntervalTreeSnapshot) Describe() string { return s.Text }

func (s IntervalTreeSnapshot) Events() step.EventSets {
	var ev step.EventSets
	for _, iv := range s.Remaining {
		ev.Queue = append(ev.Queue, step.Item{Label: iv.String(), Status: step.Pending})
	}
	for i, n := range s.Placed {
		status := step.Processed
		if s.Done {
			status = step.Completed
		} else if i == len(s.Placed)-1 {
			status = step.New
		}
		ev.Output = append(ev.Output, step.Item{Label: n.String(), Status: status})
	}
	return ev
}

func (t *IntervalTree) build(b *step.Builder) {
	intervals := t.Intervals()
	t.root = nil
	if len(intervals) == 0 {
		b.Record(step.Diagnostic{Text: "no intervals; the tree is empty"})
		return
	}

	b.Record(IntervalTreeSnapshot{
		Text:      fmt.Sprintf("Building interval tree over %d intervals", len(intervals)),
		Remaining: append([]geom.Interval(nil), intervals...),
	})

	var placed []PlacedNode
	t.root = buildIntervalNode(b, intervals, 0, &placed)

	b.Record(IntervalTreeSnapshot{
		Text:   fmt.Sprintf("Interval tree complete with %d nodes", len(placed)),
		Placed: append([]PlacedNode(nil), placed...),
		Done:   true,
	})
}

// buildIntervalNode recurses on the median partition. The builder and the
// placed-node accumulator are the only side channels.
func buildIntervalNode(b *step.Builder, intervals []geom.Interval, depth int, placed *[]PlacedNode) *IntervalNode {
	if len(intervals) == 0 {
		return nil
	}

	endpoints := make([]float64, 0, 2*len(intervals))
	for _, iv := range intervals {
		endpoints = append(endpoints, iv.Start, iv.End)
	}
	sort.Float64s(endpoints)
	median := endpoints[(len(endpoints)-1)/2]

	node := &IntervalNode{Median: median, Depth: depth}
	var left, right []geom.Interval
	for _, iv := range intervals {
		switch {
		case iv.End < median:
			left = append(left, iv)
		case iv.Start > median:
			right = append(right, iv)
		default:
			node.Center = append(node.Center, iv)
		}
	}

	*placed = append(*placed, PlacedNode{Median: median, Center: append([]geom.Interval(nil), node.Center...), Depth: depth})
	b.Record(IntervalTreeSnapshot{
		Text:      fmt.Sprintf("Median %.6g at depth %d: %d center, %d left, %d right", median, depth, len(node.Center), len(left), len(right)),
		Remaining: append(append([]geom.Interval(nil), left...), right...),
		Placed:    append([]PlacedNode(nil), *placed...),
	})

	node.Left = buildIntervalNode(b, left, depth+1, placed)
	node.Right = buildIntervalNode(b, right, depth+1, placed)
	return node
}
