package material

import (
	"math"
	"math/rand"

	"github.com/peterbraden/rays/internal/color"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

// Plastic mixes diffuse and dielectric response, chosen stochastically per
// scatter event: with probability opacity it scatters as a dielectric,
// otherwise as a Lambertian lit by unshadowed lights. Roughness is stored
// but not used by Scatter. Grounded on
// original_source/src/material/plastic.rs.
type Plastic struct {
	Albedo          color.Color
	RefractiveIndex float64
	Roughness       float64
	Opacity         float64
	RNG             *rand.Rand
}

// NewPlastic constructs a Plastic model.
func NewPlastic(albedo color.Color, refractiveIndex, roughness, opacity float64, rng *rand.Rand) *Plastic {
	return &Plastic{
		Albedo:          albedo,
		RefractiveIndex: refractiveIndex,
		Roughness:       roughness,
		Opacity:         opacity,
		RNG:             rng,
	}
}

func (p *Plastic) Scatter(r ray.Ray, i hit.RawIntersection, ctx Context) ScatteredRay {
	diffuseProbability := p.RNG.Float64()
	if diffuseProbability > p.Opacity {
		diffuseRefl := color.Black().Add(ctx.Background())

		for _, light := range ctx.Lights() {
			lightVec := vecmath.Sub(light.Position, i.Point)
			shadowRay := ray.New(i.Point, lightVec)
			_, shadowed := ctx.NearestIntersection(shadowRay, vecmath.Length(lightVec), math.SmallestNonzeroFloat64)
			if !shadowed {
				diffuseRefl = diffuseRefl.Add(diffuse(p.Albedo, i, lightVec, light))
			}
		}

		return ScatterLambertian(diffuseRefl, i, p.RNG)
	}

	return ScatterDielectric(p.RefractiveIndex, p.Albedo, r, i, p.RNG)
}
