// Package bbox implements the axis-aligned bounding box: the branch-free
// slab-test ray intersection, octant subdivision, and union operations the
// octree and every geometry primitive's Bounds() depend on.
package bbox

import (
	"fmt"
	"math"

	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

// Box is a product of three closed intervals: Min <= Max componentwise.
type Box struct {
	Min, Max vecmath.Vector3
}

// New constructs a Box, matching original_source/src/shapes/bbox.rs::new.
func New(min, max vecmath.Vector3) Box {
	return Box{Min: min, Max: max}
}

// Empty returns a degenerate box suitable as the identity element for
// repeated Union calls (min() in the original).
func Empty() Box {
	return Box{
		Min: vecmath.New(math.MaxFloat64, math.MaxFloat64, math.MaxFloat64),
		Max: vecmath.New(-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64),
	}
}

// Mid returns the box's center point.
func (b Box) Mid() vecmath.Vector3 {
	return vecmath.Scale(vecmath.Add(b.Min, b.Max), 0.5)
}

// Size returns the full (not half) extent of the box along each axis.
func (b Box) Size() vecmath.Vector3 {
	return vecmath.Sub(b.Max, b.Min)
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		Min: vecmath.Min(b.Min, o.Min),
		Max: vecmath.Max(b.Max, o.Max),
	}
}

// UnionPoint widens b to include p.
func (b Box) UnionPoint(p vecmath.Vector3) Box {
	return Box{Min: vecmath.Min(b.Min, p), Max: vecmath.Max(b.Max, p)}
}

// IntersectsBox reports whether two boxes overlap; boxes that only touch
// at a face, edge or corner count as overlapping.
func (b Box) IntersectsBox(o Box) bool {
	return b.Min[0] <= o.Max[0] && b.Max[0] >= o.Min[0] &&
		b.Min[1] <= o.Max[1] && b.Max[1] >= o.Min[1] &&
		b.Min[2] <= o.Max[2] && b.Max[2] >= o.Min[2]
}

// Contains reports whether o lies entirely within b.
func (b Box) Contains(o Box) bool {
	return o.Min[0] >= b.Min[0] && o.Max[0] <= b.Max[0] &&
		o.Min[1] >= b.Min[1] && o.Max[1] <= b.Max[1] &&
		o.Min[2] >= b.Min[2] && o.Max[2] <= b.Max[2]
}

// ContainsPoint reports whether p lies within b.
func (b Box) ContainsPoint(p vecmath.Vector3) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1] &&
		p[2] >= b.Min[2] && p[2] <= b.Max[2]
}

// ForOctant returns one of the 8 equal sub-boxes of parent at octant index
// i using the canonical bit encoding i = (z<<2)|(y<<1)|x. A historical copy
// of this routine in original_source/src/bbox.rs used `octant % 4` for the
// z bit; the authoritative rule, used here, is bit 2 = z (`octant & 4`),
// per original_source/src/shapes/bbox.rs and spec.md §4.1.
func ForOctant(i int, parent Box) Box {
	mid := parent.Mid()
	xoffs := i & 1
	yoffs := (i & 2) >> 1
	zoffs := (i & 4) >> 2

	min := parent.Min
	max := mid
	if xoffs == 1 {
		min[0], max[0] = mid[0], parent.Max[0]
	}
	if yoffs == 1 {
		min[1], max[1] = mid[1], parent.Max[1]
	}
	if zoffs == 1 {
		min[2], max[2] = mid[2], parent.Max[2]
	}
	return Box{Min: min, Max: max}
}

// FastIntersects is the branch-free slab test: it computes the six
// slab-plane distances and returns the entry/exit distances along with
// whether the ray hits the box at all (tmax >= 0 && tmin <= tmax).
func (b Box) FastIntersects(r ray.Ray) (tmin, tmax float64, hit bool) {
	invDX := 1 / r.Dir[0]
	invDY := 1 / r.Dir[1]
	invDZ := 1 / r.Dir[2]

	t1 := (b.Min[0] - r.Origin[0]) * invDX
	t2 := (b.Max[0] - r.Origin[0]) * invDX
	t3 := (b.Min[1] - r.Origin[1]) * invDY
	t4 := (b.Max[1] - r.Origin[1]) * invDY
	t5 := (b.Min[2] - r.Origin[2]) * invDZ
	t6 := (b.Max[2] - r.Origin[2]) * invDZ

	tmin = math.Max(math.Max(math.Min(t1, t2), math.Min(t3, t4)), math.Min(t5, t6))
	tmax = math.Min(math.Min(math.Max(t1, t2), math.Max(t3, t4)), math.Max(t5, t6))

	if tmax < 0 || tmin > tmax {
		return tmin, tmax, false
	}
	return tmin, tmax, true
}

func (b Box) String() string {
	return fmt.Sprintf("BBox(%v, %v)", b.Min, b.Max)
}

// Intersects treats the box itself as a renderable shape (the `box` scene
// object type). The hit normal is derived by finding which face of
// (point-center)/halfsize has maximum absolute value, per spec.md §4.1.
func (b Box) Intersects(r ray.Ray) (hit.RawIntersection, bool) {
	tmin, tmax, ok := b.FastIntersects(r)
	if !ok {
		return hit.RawIntersection{}, false
	}
	dist := tmin
	if dist < 0 {
		dist = tmax
	}
	if dist < 0 {
		return hit.RawIntersection{}, false
	}

	point := r.At(dist)
	center := b.Mid()
	halfSize := vecmath.Scale(b.Size(), 0.5)
	rel := vecmath.Sub(point, center)

	normal := vecmath.New(0, 0, 0)
	best := -1.0
	for axis := 0; axis < 3; axis++ {
		if halfSize[axis] == 0 {
			continue
		}
		v := rel[axis] / halfSize[axis]
		av := v
		if av < 0 {
			av = -av
		}
		if av > best {
			best = av
			normal = vecmath.New(0, 0, 0)
			if v < 0 {
				normal[axis] = -1
			} else {
				normal[axis] = 1
			}
		}
	}

	return hit.RawIntersection{Dist: dist, Point: point, Normal: normal}, true
}

