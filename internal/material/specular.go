package material

import (
	"math/rand"

	"github.com/peterbraden/rays/internal/color"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

// Specular is metallic reflection perturbed by roughness, grounded on
// original_source/src/material/specular.rs and material.rs::Reflection.
type Specular struct {
	Albedo    color.Color
	Roughness float64
	RNG       *rand.Rand
}

// NewSpecular constructs a Specular model.
func NewSpecular(albedo color.Color, roughness float64, rng *rand.Rand) *Specular {
	return &Specular{Albedo: albedo, Roughness: roughness, RNG: rng}
}

func (s *Specular) Scatter(r ray.Ray, i hit.RawIntersection, ctx Context) ScatteredRay {
	fuzz := vecmath.Scale(vecmath.RandomPointOnUnitSphere(s.RNG), s.Roughness)
	dir := vecmath.Add(vecmath.Reflect(r.Dir, i.Normal), fuzz)
	out := ray.New(i.Point, dir)
	return ScatteredRay{Ray: &out, Attenuate: s.Albedo}
}
