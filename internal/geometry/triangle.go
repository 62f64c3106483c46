package geometry

import (
	"math"

	"github.com/peterbraden/rays/internal/bbox"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

// mollerTrumboreTolerance is the rejection epsilon for a near-parallel
// ray/triangle determinant, matching original_source/src/shapes/triangle.rs.
const mollerTrumboreTolerance = 1e-7

// Triangle is a flat-shaded triangle with a precomputed face normal.
type Triangle struct {
	V0, V1, V2 vecmath.Vector3
	normal     vecmath.Vector3
}

// NewTriangle builds a Triangle, precomputing its face normal as
// (v1-v0)x(v2-v0) normalized.
func NewTriangle(v0, v1, v2 vecmath.Vector3) *Triangle {
	n := vecmath.Normalize(vecmath.Cross(vecmath.Sub(v1, v0), vecmath.Sub(v2, v0)))
	return &Triangle{V0: v0, V1: v1, V2: v2, normal: n}
}

// mollerTrumbore returns (u, v, dist, ok) for the Möller–Trumbore
// intersection test shared by Triangle and SmoothTriangle.
func mollerTrumbore(v0, v1, v2 vecmath.Vector3, r ray.Ray) (u, v, dist float64, ok bool) {
	edge1 := vecmath.Sub(v1, v0)
	edge2 := vecmath.Sub(v2, v0)
	dir := vecmath.Normalize(r.Dir)
	pvec := vecmath.Cross(dir, edge2)
	det := vecmath.Dot(edge1, pvec)
	if math.Abs(det) < mollerTrumboreTolerance {
		return 0, 0, 0, false
	}
	invDet := 1 / det

	tvec := vecmath.Sub(r.Origin, v0)
	u = vecmath.Dot(tvec, pvec) * invDet
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	qvec := vecmath.Cross(tvec, edge1)
	v = vecmath.Dot(dir, qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	dist = vecmath.Dot(edge2, qvec) * invDet
	if dist <= 0 {
		return 0, 0, 0, false
	}
	return u, v, dist, true
}

// Intersects implements Möller–Trumbore with 1e-7 tolerance, rejecting
// near-parallel rays and out-of-range barycentrics, per spec.md §4.2.
func (t *Triangle) Intersects(r ray.Ray) (hit.RawIntersection, bool) {
	_, _, dist, ok := mollerTrumbore(t.V0, t.V1, t.V2, r)
	if !ok {
		return hit.RawIntersection{}, false
	}
	point := vecmath.Add(r.Origin, vecmath.Scale(vecmath.Normalize(r.Dir), dist))
	return hit.RawIntersection{Dist: dist, Point: point, Normal: t.normal}, true
}

// Bounds is the union of the three vertices.
func (t *Triangle) Bounds() bbox.Box {
	b := bbox.Empty()
	b = b.UnionPoint(t.V0)
	b = b.UnionPoint(t.V1)
	b = b.UnionPoint(t.V2)
	return b
}

// PrimitiveCount is always 1 for a single triangle.
func (t *Triangle) PrimitiveCount() uint64 { return 1 }

// SmoothTriangle carries per-vertex normals for Phong/Gouraud shading.
// original_source/src/shapes/triangle.rs returns NormalV1 unconditionally
// here (marked "// TODO" in the source); spec.md §9 calls this a latent
// bug and specifies the fix: interpolate u*n1 + v*n2 + (1-u-v)*n0 using the
// barycentrics from the intersection test. That fix is what's implemented
// below.
type SmoothTriangle struct {
	V0, V1, V2          vecmath.Vector3
	NormalV0, NormalV1, NormalV2 vecmath.Vector3
}

// NewSmoothTriangle builds a SmoothTriangle.
func NewSmoothTriangle(v0, v1, v2, n0, n1, n2 vecmath.Vector3) *SmoothTriangle {
	return &SmoothTriangle{V0: v0, V1: v1, V2: v2, NormalV0: n0, NormalV1: n1, NormalV2: n2}
}

// Intersects interpolates the per-vertex normals by the Möller–Trumbore
// barycentric coordinates (u, v, w=1-u-v).
func (t *SmoothTriangle) Intersects(r ray.Ray) (hit.RawIntersection, bool) {
	u, v, dist, ok := mollerTrumbore(t.V0, t.V1, t.V2, r)
	if !ok {
		return hit.RawIntersection{}, false
	}
	w := 1 - u - v
	normal := vecmath.Add(
		vecmath.Add(vecmath.Scale(t.NormalV1, u), vecmath.Scale(t.NormalV2, v)),
		vecmath.Scale(t.NormalV0, w),
	)
	normal = vecmath.Normalize(normal)
	point := vecmath.Add(r.Origin, vecmath.Scale(vecmath.Normalize(r.Dir), dist))
	return hit.RawIntersection{Dist: dist, Point: point, Normal: normal}, true
}

// Bounds is the union of the three vertices.
func (t *SmoothTriangle) Bounds() bbox.Box {
	b := bbox.Empty()
	b = b.UnionPoint(t.V0)
	b = b.UnionPoint(t.V1)
	b = b.UnionPoint(t.V2)
	return b
}

// PrimitiveCount is always 1 for a single triangle.
func (t *SmoothTriangle) PrimitiveCount() uint64 { return 1 }
