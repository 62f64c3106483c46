// Package geometry implements the renderable shapes: Sphere, Triangle,
// SmoothTriangle, Plane, Infinite, Transform, CSG Union/Difference, Mesh,
// and BBox-as-shape. Every primitive exposes Intersects, Bounds, and
// PrimitiveCount per spec.md §4.2.
package geometry

import (
	"github.com/peterbraden/rays/internal/bbox"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/ray"
)

// Primitive is the shared contract for every renderable shape.
type Primitive interface {
	Intersects(r ray.Ray) (hit.RawIntersection, bool)
	Bounds() bbox.Box
	// PrimitiveCount returns the triangle count for meshes, 1 otherwise.
	PrimitiveCount() uint64
}
