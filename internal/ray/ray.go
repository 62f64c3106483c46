// Package ray defines the half-line primitive traced through the scene.
package ray

import (
	"fmt"

	"github.com/peterbraden/rays/internal/vecmath"
)

// Ray is a half-line Origin + t*Dir, t >= 0. Dir is not required to be a
// unit vector; normalization is the caller's contract at use sites that
// need it, matching original_source/src/ray.rs.
type Ray struct {
	Origin vecmath.Vector3
	Dir    vecmath.Vector3
}

// New constructs a Ray.
func New(origin, dir vecmath.Vector3) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// At returns the point reached by travelling distance t along the ray's
// (possibly non-unit) direction.
func (r Ray) At(t float64) vecmath.Vector3 {
	return vecmath.Add(r.Origin, vecmath.Scale(r.Dir, t))
}

func (r Ray) String() string {
	return fmt.Sprintf("(Ray %v->%v)", r.Origin, r.Dir)
}
