// Package radial computes radial tree layouts: nodes are placed on
// concentric rings by depth and partitioned angularly by subtree leaf
// count, so branches with many descendants get proportionally more arc.
//
// A layout pass decorates a [mindmap.Tree] in three recursive walks:
// depth and leaf counting, angular partitioning over [0, 2π), and radius
// and position assignment. The pass is linear in tree size, total (every
// well-formed tree produces a valid layout), and idempotent.
package radial

import (
	"math"

	"github.com/matzehuels/mindwheel/pkg/mindmap"
)

// DefaultRadiusStep is the default world distance between depth rings.
const DefaultRadiusStep = 35.0

// Options configures a layout pass.
type Options struct {
	// RadiusStep is the world distance per depth level. Zero or negative
	// values fall back to DefaultRadiusStep.
	RadiusStep float64
}

// Layout runs a full layout pass over the tree, populating Depth,
// LeafCount, Angle, Radius and X/Y on every node. Re-layout is an explicit
// operation: call Layout again after the tree or radius step changes.
func Layout(t *mindmap.Tree, opts Options) {
	if t.Len() == 0 {
		return
	}
	step := opts.RadiusStep
	if step <= 0 {
		step = DefaultRadiusStep
	}

	computeDepthAndLeaves(t, t.Root(), 0)
	assignAngles(t, t.Root(), 0, 2*math.Pi)
	assignRadii(t, t.Root(), step)
}

// computeDepthAndLeaves assigns depth top-down and leaf counts bottom-up.
// Leaves count as 1; internal nodes sum their children, floored at 1 so
// angular fractions never divide by zero.
func computeDepthAndLeaves(t *mindmap.Tree, i, depth int) int {
	n := t.Node(i)
	n.Depth = depth

	if n.IsLeaf() {
		n.LeafCount = 1
		return 1
	}

	sum := 0
	for _, c := range n.Children {
		sum += computeDepthAndLeaves(t, c, depth+1)
	}
	n.LeafCount = max(1, sum)
	return n.LeafCount
}

// assignAngles sets the node's angle to the bisector of [a0, a1) and
// partitions the span over its children in stored order, each child sized
// by its share of the sibling leaf total. Child spans are contiguous and
// exactly fill the parent span.
func assignAngles(t *mindmap.Tree, i int, a0, a1 float64) {
	n := t.Node(i)
	n.Angle = 0.5 * (a0 + a1)
	if n.IsLeaf() {
		return
	}

	total := 0
	for _, c := range n.Children {
		total += t.Node(c).LeafCount
	}
	total = max(1, total)

	span := a1 - a0
	cur := a0
	for _, c := range n.Children {
		frac := float64(t.Node(c).LeafCount) / float64(total)
		next := cur + span*frac
		assignAngles(t, c, cur, next)
		cur = next
	}
}

// assignRadii derives radius from depth and the cartesian position from
// the polar coordinates. The root sits at the origin.
func assignRadii(t *mindmap.Tree, i int, step float64) {
	n := t.Node(i)
	n.Radius = float64(n.Depth) * step
	n.X = math.Cos(n.Angle) * n.Radius
	n.Y = math.Sin(n.Angle) * n.Radius
	for _, c := range n.Children {
		assignRadii(t, c, step)
	}
}
