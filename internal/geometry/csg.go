package geometry

import (
	"math"

	"github.com/peterbraden/rays/internal/bbox"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/octree"
	"github.com/peterbraden/rays/internal/ray"
)

// csgOctreeDepth matches original_source/src/shapes/csg.rs::Union, which
// builds its sub-octree with a fixed depth of 8.
const csgOctreeDepth = 8

// CSGUnion stores its children in their own octree and forwards to octree
// intersection, grounded on original_source/src/shapes/csg.rs::Union.
type CSGUnion struct {
	tree   *octree.Tree[Primitive]
	bounds bbox.Box
	count  uint64
}

// NewCSGUnion builds a Union over the given primitives.
func NewCSGUnion(items []Primitive) *CSGUnion {
	bounds := bbox.Empty()
	var count uint64
	for _, it := range items {
		bounds = bounds.Union(it.Bounds())
		count += it.PrimitiveCount()
	}
	return &CSGUnion{tree: octree.New(csgOctreeDepth, bounds, items), bounds: bounds, count: count}
}

func (u *CSGUnion) Intersects(r ray.Ray) (hit.RawIntersection, bool) {
	h, ok := u.tree.Intersection(r, math.MaxFloat64, 0)
	if !ok {
		return hit.RawIntersection{}, false
	}
	return h.RawIntersection, true
}

func (u *CSGUnion) Bounds() bbox.Box       { return u.bounds }
func (u *CSGUnion) PrimitiveCount() uint64 { return u.count }

// CSGDifference hits A then requires the hit point not be inside B; if it
// is, it continues marching past B's far side along the same ray, bounded
// by a retry cap. The original leaves "hit A only where not inside B"
// semantics undefined (spec.md §9, Open Question); this is the decision
// recorded in DESIGN.md.
type CSGDifference struct {
	A, B Primitive
}

// NewCSGDifference builds the A-minus-B solid.
func NewCSGDifference(a, b Primitive) *CSGDifference {
	return &CSGDifference{A: a, B: b}
}

const csgDifferenceMaxRetries = 8

func (d *CSGDifference) Intersects(r ray.Ray) (hit.RawIntersection, bool) {
	cur := r
	minDist := 0.0
	for i := 0; i < csgDifferenceMaxRetries; i++ {
		ah, ok := d.A.Intersects(cur)
		if !ok {
			return hit.RawIntersection{}, false
		}
		bh, inB := d.B.Intersects(ray.New(cur.Origin, cur.Dir))
		if !inB || bh.Dist > ah.Dist {
			// A's hit point is not shadowed by B: either B isn't hit at
			// all along this ray, or B's near surface is beyond A's hit.
			ah.Dist += minDist
			return ah, true
		}
		// A's surface point is behind B's near surface: march to B's far
		// side and retry from there.
		exitDist := bExitDistance(d.B, cur, bh.Dist)
		if exitDist <= bh.Dist {
			return hit.RawIntersection{}, false
		}
		advance := exitDist + 1e-6
		minDist += advance
		cur = ray.New(cur.At(advance), cur.Dir)
	}
	return hit.RawIntersection{}, false
}

// bExitDistance finds B's far intersection distance along the ray by
// probing just past the near hit and re-intersecting; for convex B this
// finds the exit point in one extra test.
func bExitDistance(b Primitive, r ray.Ray, nearDist float64) float64 {
	probe := ray.New(r.At(nearDist+1e-6), r.Dir)
	if h, ok := b.Intersects(probe); ok {
		return nearDist + 1e-6 + h.Dist
	}
	return nearDist
}

func (d *CSGDifference) Bounds() bbox.Box { return d.A.Bounds() }

func (d *CSGDifference) PrimitiveCount() uint64 {
	return d.A.PrimitiveCount() + d.B.PrimitiveCount()
}
