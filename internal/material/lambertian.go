package material

import (
	"math/rand"

	"github.com/peterbraden/rays/internal/color"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

// Lambertian is purely diffuse reflection: reflect into
// normal+random_point_on_unit_sphere(), attenuate by albedo. Grounded on
// original_source/src/material/lambertian.rs and material.rs::AmbientLambertian.
type Lambertian struct {
	Albedo color.Color
	RNG    *rand.Rand
}

// NewLambertian constructs a Lambertian model.
func NewLambertian(albedo color.Color, rng *rand.Rand) *Lambertian {
	return &Lambertian{Albedo: albedo, RNG: rng}
}

func (l *Lambertian) Scatter(r ray.Ray, i hit.RawIntersection, ctx Context) ScatteredRay {
	dir := vecmath.Add(i.Normal, vecmath.RandomPointOnUnitSphere(l.RNG))
	out := ray.New(i.Point, dir)
	return ScatteredRay{Ray: &out, Attenuate: l.Albedo}
}

// ScatterLambertian is the free-function form used by Plastic's direct
// light branch, matching original_source/src/material/functions.rs-style
// call sites (`scatter_lambertian(albedo, intersection)`).
func ScatterLambertian(albedo color.Color, i hit.RawIntersection, rng *rand.Rand) ScatteredRay {
	l := Lambertian{Albedo: albedo, RNG: rng}
	return l.Scatter(ray.Ray{}, i, nil)
}
