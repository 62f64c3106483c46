package geometry

import (
	"math"

	"github.com/peterbraden/rays/internal/bbox"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

// Sphere is a round primitive defined by its center and radius, grounded
// on original_source/src/shapes/sphere.rs.
type Sphere struct {
	Center vecmath.Vector3
	Radius float64
}

// NewSphere constructs a Sphere.
func NewSphere(center vecmath.Vector3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Intersects solves the ray/sphere quadratic; if the smaller root is
// negative (ray origin inside the sphere) the larger root is used instead,
// per spec.md §4.2.
func (s *Sphere) Intersects(r ray.Ray) (hit.RawIntersection, bool) {
	dst := vecmath.Sub(r.Origin, s.Center)
	rdn := vecmath.Normalize(r.Dir)

	a := vecmath.Dot(rdn, rdn)
	b := vecmath.Dot(dst, rdn)
	c := vecmath.Dot(dst, dst) - s.Radius*s.Radius
	d := b*b - a*c
	if d < 0 {
		return hit.RawIntersection{}, false
	}

	sqrtD := math.Sqrt(d)
	dist := (-b - sqrtD) / a
	if dist < 0 {
		dist = (-b + sqrtD) / a
	}
	if dist < 0 {
		return hit.RawIntersection{}, false
	}

	point := vecmath.Add(r.Origin, vecmath.Scale(rdn, dist))
	normal := vecmath.Normalize(vecmath.Sub(point, s.Center))
	return hit.RawIntersection{Dist: dist, Point: point, Normal: normal}, true
}

// Bounds returns the axis-aligned box circumscribing the sphere.
func (s *Sphere) Bounds() bbox.Box {
	r := vecmath.New(s.Radius, s.Radius, s.Radius)
	return bbox.New(vecmath.Sub(s.Center, r), vecmath.Add(s.Center, r))
}

// PrimitiveCount is always 1 for a single sphere.
func (s *Sphere) PrimitiveCount() uint64 { return 1 }
