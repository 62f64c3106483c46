// Package hit defines the RawIntersection value shared by every geometry
// primitive's Intersects method, kept separate from package geometry so
// that bbox (a renderable shape itself, per spec.md §4.1) can return one
// without an import cycle.
package hit

import "github.com/peterbraden/rays/internal/vecmath"

// RawIntersection is returned by geometry.Intersects: the distance along
// the ray, world-space hit point, and surface normal. Mirrors
// original_source/src/intersection.rs's RawIntersection.
type RawIntersection struct {
	Dist   float64
	Point  vecmath.Vector3
	Normal vecmath.Vector3
}
