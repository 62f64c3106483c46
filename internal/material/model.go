// Package material implements the scattering models (MaterialModel) and
// textures (Medium) that map a ray/intersection pair to an outgoing ray and
// an attenuation color, per spec.md §4.4.
//
// The "two parallel material hierarchies" noted in spec.md §9 (a legacy
// material.rs using a MaterialProperties value struct, and a newer
// material/ module tree using Box<dyn MaterialModel> directly) are
// collapsed here to the newer tree's shape: Medium.At(point) returns a
// Model directly, matching spec.md's Data Model section exactly.
package material

import (
	"github.com/peterbraden/rays/internal/color"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

// Light is a point light source: position, color, and intensity, grounded
// on original_source/src/light.rs.
type Light struct {
	Position  vecmath.Vector3
	Color     color.Color
	Intensity float64
}

// Context is the subset of Scene a material needs to scatter a ray:
// shadow-ray testing against the scene's geometry and the light list. It
// is defined here (rather than importing package scene) so material has
// no dependency on scene, avoiding an import cycle since scene.Object
// holds a material.Medium.
type Context interface {
	// NearestIntersection returns the closest hit in [min, max] along r,
	// used for shadow rays (Plastic, Whitted).
	NearestIntersection(r ray.Ray, max, min float64) (hit.RawIntersection, bool)
	Lights() []Light
	Background() color.Color
}

// ScatteredRay is the outgoing ray and the weight to assign the color of
// the subsequent traced ray, per spec.md §4.4:
//   - Ray == nil: terminate the path, contribute Attenuate directly.
//   - Ray != nil: cast Ray recursively and multiply the result by Attenuate.
type ScatteredRay struct {
	Ray       *ray.Ray
	Attenuate color.Color
}

// Model maps a (ray, intersection, context) triple to a ScatteredRay.
type Model interface {
	Scatter(r ray.Ray, i hit.RawIntersection, ctx Context) ScatteredRay
}

// Medium maps a world-space point to a concrete Model.
type Medium interface {
	At(point vecmath.Vector3) Model
}
