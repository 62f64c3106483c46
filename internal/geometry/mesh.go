package geometry

import (
	"math"

	"github.com/peterbraden/rays/internal/bbox"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/octree"
	"github.com/peterbraden/rays/internal/ray"
)

// meshOctreeDepth matches the depth the original uses for Ocean/Firework
// sub-octrees (original_source/src/shapes/csg.rs, ocean.rs); Mesh uses the
// same depth since spec.md §9 calls the octree-wrapped form "proper" for
// any non-trivial OBJ mesh, unlike the original's naive linear scan.
const meshOctreeDepth = 8

// Mesh is a triangle soup, wrapped in its own octree rather than the
// original's naive per-ray linear scan (see DESIGN.md).
type Mesh struct {
	tree   *octree.Tree[Primitive]
	bounds bbox.Box
	count  uint64
}

// NewMesh builds a Mesh's internal octree over the given triangles (either
// *Triangle or *SmoothTriangle, both satisfy Primitive).
func NewMesh(triangles []Primitive) *Mesh {
	bounds := bbox.Empty()
	for _, t := range triangles {
		bounds = bounds.Union(t.Bounds())
	}
	return &Mesh{
		tree:   octree.New(meshOctreeDepth, bounds, triangles),
		bounds: bounds,
		count:  uint64(len(triangles)),
	}
}

// Intersects finds the nearest triangle hit via the internal octree.
func (m *Mesh) Intersects(r ray.Ray) (hit.RawIntersection, bool) {
	h, ok := m.tree.Intersection(r, math.MaxFloat64, 0)
	if !ok {
		return hit.RawIntersection{}, false
	}
	return h.RawIntersection, true
}

// Bounds is the union of all triangle bounds.
func (m *Mesh) Bounds() bbox.Box { return m.bounds }

// PrimitiveCount returns the triangle count.
func (m *Mesh) PrimitiveCount() uint64 { return m.count }
