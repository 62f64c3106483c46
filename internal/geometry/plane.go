package geometry

import (
	"math"

	"github.com/peterbraden/rays/internal/bbox"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

// Plane is an infinite horizontal plane at a fixed y, grounded on
// original_source/src/shapes/plane.rs.
type Plane struct {
	Y float64
}

// NewPlane constructs a Plane at the given y height.
func NewPlane(y float64) *Plane { return &Plane{Y: y} }

// Intersects solves ro.y + t*rdn.y = Y, flipping the normal to face the
// incoming ray.
func (p *Plane) Intersects(r ray.Ray) (hit.RawIntersection, bool) {
	rdn := vecmath.Normalize(r.Dir)
	norm := vecmath.New(0, 1, 0)
	denom := vecmath.Dot(norm, rdn)
	if math.Abs(denom) <= 0 {
		return hit.RawIntersection{}, false
	}

	dist := -(vecmath.Dot(norm, r.Origin) - p.Y) / denom
	if dist <= 0 {
		return hit.RawIntersection{}, false
	}
	if denom > 0 {
		norm = vecmath.Scale(norm, -1)
	}

	point := vecmath.Add(r.Origin, vecmath.Scale(rdn, dist))
	return hit.RawIntersection{Dist: dist, Point: point, Normal: norm}, true
}

// planeExtent is the half-width used for the plane's nominal bounding box.
// The original leaves Plane's bounds degenerate (a zero-volume box), which
// would prevent the octree from ever descending into it; a very large
// finite extent is used here instead so the plane still participates in
// octree subdivision sanely (see DESIGN.md).
const planeExtent = 1e6

// Bounds returns a very large, but finite, horizontal slab at Y.
func (p *Plane) Bounds() bbox.Box {
	return bbox.New(
		vecmath.New(-planeExtent, p.Y, -planeExtent),
		vecmath.New(planeExtent, p.Y, planeExtent),
	)
}

// PrimitiveCount is always 1.
func (p *Plane) PrimitiveCount() uint64 { return 1 }
