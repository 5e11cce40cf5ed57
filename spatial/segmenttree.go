package spatial

import (
	"fmt"
	"sort"

	"github.com/stepgeom/stepgeom/geom"
	"github.com/stepgeom/stepgeom/internal/inputset"
	"github.com/stepgeom/stepgeom/step"
)

// SegmentNode is one node of the segment tree, covering the slab index
// range [L, R] inclusive. Holds holds the indices of the input intervals for
// which this node is part of the canonical decomposition.
type SegmentNode struct {
	L, R        int
	Left, Right *SegmentNode
	Holds       []int
}

func (n *SegmentNode) String() string {
	return fmt.Sprintf("node [%d, %d] holding %d intervals", n.L, n.R, len(n.Holds))
}

// SegmentTree builds the canonical-form segment tree: elementary half-open
// slabs between consecutive distinct endpoints, a complete binary tree over
// slab indices, and each input interval attached to the minimal node set
// covering its slab range.
type SegmentTree struct {
	inputset.IntervalSet
	root  *SegmentNode
	slabs []geom.Interval
}

func NewSegmentTree() *SegmentTree {
	t := &SegmentTree{}
	t.Init(t.build)
	return t
}

// Root returns the built tree, computing the trace if needed.
func (t *SegmentTree) Root() *SegmentNode {
	t.ComputeSteps()
	return t.root
}

// Slabs returns the elementary slabs, computing the trace if needed. The
// last slab is closed on both ends; all others are half-open on the right.
func (t *SegmentTree) Slabs() []geom.Interval {
	t.ComputeSteps()
	return append([]geom.Interval(nil), t.slabs...)
}

// Stab returns the indices of every input interval whose canonical node set
// covers the slab containing x. Sorted ascending for determinism.
func (t *SegmentTree) Stab(x float64) []int {
	root := t.Root()
	if root == nil {
		return nil
	}
	slab := t.slabIndexOf(x)
	if slab < 0 {
		return nil
	}
	var out []int
	for node := root; node != nil; {
		out = append(out, node.Holds...)
		if node.Left == nil {
			break
		}
		if slab <= node.Left.R {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	sort.Ints(out)
	return out
}

func (t *SegmentTree) slabIndexOf(x float64) int {
	for i, slab := range t.slabs {
		if x >= slab.Start-geom.Tolerance && (x < slab.End-geom.Tolerance || (i == len(t.slabs)-1 && x <= slab.End+geom.Tolerance)) {
			return i
		}
	}
	return -1
}

// SegmentTreeSnapshot is the segment tree step variant.
type SegmentTreeSnapshot struct {
	Text      string
	Slabs     []geom.Interval
	Remaining []geom.Interval
	Current   *geom.Interval
	// Canonical lists, for the interval processed in this step, the [L, R]
	// slab ranges of the nodes it was attached to.
	Canonical []SlabRange
	Attached  []AttachedInterval
	Done      bool
}

// SlabRange is an inclusive slab index range of one tree node.
type SlabRange struct {
	L, R int
}

func (r SlabRange) String() string {
	return fmt.Sprintf("[%d, %d]", r.L, r.R)
}

// AttachedInterval pairs an input interval with its canonical node count.
type AttachedInterval struct {
	Interval geom.Interval
	Nodes    int
}

func (s SegmentTreeSnapshot) Describe() string { return s.Text }

func (s SegmentTreeSnapshot) Events() step.EventSets {
	var ev step.EventSets
	for _, iv := range s.Remaining {
		ev.Queue = append(ev.Queue, step.Item{Label: iv.String(), Status: step.Pending})
	}
	if s.Current != nil {
		ev.Queue = append(ev.Queue, step.Item{Label: s.Current.String(), Status: step.Current})
	}
	for _, r := range s.Canonical {
		ev.Active = append(ev.Active, step.Item{Label: "node " + r.String(), Status: step.New})
	}
	for _, a := range s.Attached {
		status := step.Processed
		if s.Done {
			status = step.Completed
		}
		ev.Output = append(ev.Output, step.Item{Label: fmt.Sprintf("%s → %d nodes", a.Interval, a.Nodes), Status: status})
	}
	return ev
}

func (t *SegmentTree) build(b *step.Builder) {
	intervals := t.Intervals()
	t.root = nil
	t.slabs = nil
	if len(intervals) == 0 {
		b.Record(step.Diagnostic{Text: "no intervals; the tree is empty"})
		return
	}

	// Distinct endpoints, sorted, then elementary slabs between neighbors.
	endpoints := make([]float64, 0, 2*len(intervals))
	for _, iv := range intervals {
		endpoints = append(endpoints, iv.Start, iv.End)
	}
	sort.Float64s(endpoints)
	distinct := endpoints[:1]
	for _, e := range endpoints[1:] {
		if !geom.Equal(e, distinct[len(distinct)-1]) {
			distinct = append(distinct, e)
		}
	}
	if len(distinct) < 2 {
		b.Record(step.Diagnostic{Text: "all interval endpoints coincide; no slabs to decompose"})
		return
	}
	for i := 0; i+1 < len(distinct); i++ {
		t.slabs = append(t.slabs, geom.Interval{Start: distinct[i], End: distinct[i+1]})
	}
	b.Record(SegmentTreeSnapshot{
		Text:      fmt.Sprintf("Formed %d elementary slabs from %d distinct endpoints", len(t.slabs), len(distinct)),
		Slabs:     append([]geom.Interval(nil), t.slabs...),
		Remaining: append([]geom.Interval(nil), intervals...),
	})

	t.root = buildSegmentNode(0, len(t.slabs)-1)
	b.Record(SegmentTreeSnapshot{
		Text:      fmt.Sprintf("Built complete binary tree over slab indices [0, %d]", len(t.slabs)-1),
		Slabs:     append([]geom.Interval(nil), t.slabs...),
		Remaining: append([]geom.Interval(nil), intervals...),
	})

	var attached []AttachedInterval
	for idx := range intervals {
		iv := intervals[idx]
		lo, hi := t.slabRange(iv)
		var canonical []SlabRange
		if lo <= hi {
			canonical = decompose(t.root, lo, hi, idx, nil)
		}
		attached = append(attached, AttachedInterval{Interval: iv, Nodes: len(canonical)})
		b.Record(SegmentTreeSnapshot{
			Text:      fmt.Sprintf("Attached %s to %d canonical nodes covering slabs [%d, %d]", iv, len(canonical), lo, hi),
			Slabs:     append([]geom.Interval(nil), t.slabs...),
			Remaining: append([]geom.Interval(nil), intervals[idx+1:]...),
			Current:   &iv,
			Canonical: canonical,
			Attached:  append([]AttachedInterval(nil), attached...),
		})
	}

	b.Record(SegmentTreeSnapshot{
		Text:     fmt.Sprintf("Segment tree complete: %d intervals attached over %d slabs", len(intervals), len(t.slabs)),
		Slabs:    append([]geom.Interval(nil), t.slabs...),
		Attached: attached,
		Done:     true,
	})
}

// slabRange finds the inclusive slab index range fully contained in the
// interval.
func (t *SegmentTree) slabRange(iv geom.Interval) (lo, hi int) {
	lo, hi = len(t.slabs), -1
	for i, slab := range t.slabs {
		if slab.Start >= iv.Start-geom.Tolerance && slab.End <= iv.End+geom.Tolerance {
			if i < lo {
				lo = i
			}
			hi = i
		}
	}
	return lo, hi
}

// buildSegmentNode builds the complete binary tree over the inclusive slab
// index range [l, r].
func buildSegmentNode(l, r int) *SegmentNode {
	node := &SegmentNode{L: l, R: r}
	if l < r {
		mid := (l + r) / 2
		node.Left = buildSegmentNode(l, mid)
		node.Right = buildSegmentNode(mid+1, r)
	}
	return node
}

// decompose is the classic canonical-decomposition descent: a node fully
// inside [lo, hi] takes the interval and recursion stops; otherwise descend
// into whichever children overlap the range. Returns the covered ranges,
// accumulated through the recursion.
func decompose(node *SegmentNode, lo, hi, intervalIdx int, acc []SlabRange) []SlabRange {
	if node == nil || hi < node.L || lo > node.R {
		return acc
	}
	if lo <= node.L && node.R <= hi {
		node.Holds = append(node.Holds, intervalIdx)
		return append(acc, SlabRange{L: node.L, R: node.R})
	}
	acc = decompose(node.Left, lo, hi, intervalIdx, acc)
	return decompose(node.Right, lo, hi, intervalIdx, acc)
}
