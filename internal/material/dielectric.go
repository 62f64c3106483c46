package material

import (
	"math/rand"

	"github.com/peterbraden/rays/internal/color"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

// Dielectric refracts or reflects according to Snell's law and a
// Schlick-sampled Fresnel term, grounded on
// original_source/src/material/dielectric.rs and functions.rs::refract.
type Dielectric struct {
	RefractiveIndex float64
	Attenuate       color.Color
	RNG             *rand.Rand
}

// NewDielectric constructs a Dielectric model.
func NewDielectric(refractiveIndex float64, attenuate color.Color, rng *rand.Rand) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex, Attenuate: attenuate, RNG: rng}
}

// ScatterDielectric is the free-function form used by Plastic's refractive
// branch, matching the original's `scatter_dielectric(refractive_index,
// attenuate, r, intersection)` call sites.
func ScatterDielectric(refractiveIndex float64, attenuate color.Color, r ray.Ray, i hit.RawIntersection, rng *rand.Rand) ScatteredRay {
	d := Dielectric{RefractiveIndex: refractiveIndex, Attenuate: attenuate, RNG: rng}
	return d.Scatter(r, i, nil)
}

func (d *Dielectric) Scatter(r ray.Ray, i hit.RawIntersection, ctx Context) ScatteredRay {
	rdn := vecmath.Normalize(r.Dir)
	normal := i.Normal
	niOverNt := 1 / d.RefractiveIndex
	cosine := -vecmath.Dot(rdn, normal) / vecmath.Length(rdn)

	entering := vecmath.Dot(rdn, normal) < 0
	if !entering {
		normal = vecmath.Scale(normal, -1)
		niOverNt = d.RefractiveIndex
		cosine = vecmath.Dot(rdn, i.Normal)
	}

	refracted, ok := vecmath.Refract(rdn, normal, niOverNt)
	if ok {
		reflectProb := vecmath.Schlick(cosine, d.RefractiveIndex)
		if d.RNG.Float64() >= reflectProb {
			out := ray.New(i.Point, refracted)
			return ScatteredRay{Ray: &out, Attenuate: d.Attenuate}
		}
	}

	// Total internal reflection, or the Schlick draw chose the reflective
	// branch: emit a mirror ray.
	out := ray.New(i.Point, vecmath.Reflect(rdn, i.Normal))
	return ScatteredRay{Ray: &out, Attenuate: d.Attenuate}
}
