package material

import (
	"github.com/peterbraden/rays/internal/color"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

// Whitted is the legacy direct-lighting + Phong + mirror-reflection model,
// grounded on original_source/src/material/legacy.rs::Whitted.
type Whitted struct {
	Pigment    color.Color
	Reflection float64
	Phong      float64
}

// NewWhitted constructs a Whitted model.
func NewWhitted(pigment color.Color, reflection, phongExp float64) *Whitted {
	return &Whitted{Pigment: pigment, Reflection: reflection, Phong: phongExp}
}

func (w *Whitted) Scatter(r ray.Ray, i hit.RawIntersection, ctx Context) ScatteredRay {
	out := color.Black()
	for _, light := range ctx.Lights() {
		lightVec := vecmath.Sub(light.Position, i.Point)
		shadowRay := ray.New(i.Point, vecmath.Normalize(lightVec))
		_, shadowed := ctx.NearestIntersection(shadowRay, vecmath.Length(lightVec), 0.001)
		if !shadowed {
			out = out.Add(diffuse(w.Pigment, i, lightVec, light)).Add(phong(w.Phong, r, i, lightVec))
		}
	}

	if w.Reflection > 0 {
		refl := ray.New(i.Point, vecmath.Reflect(r.Dir, i.Normal))
		return ScatteredRay{Ray: &refl, Attenuate: out.Scale(w.Reflection)}
	}
	return ScatteredRay{Ray: nil, Attenuate: out}
}
