package material

import (
	"github.com/peterbraden/rays/internal/color"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/noise"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

// NoiseTexture wraps a base model and blends its attenuation towards a
// second color by a Perlin FBM sample at the hit point, scaled by
// BlendFactor. Not present in the retrieved original_source pack under
// this name; grounded on the noise-driven blending shape of
// original_source/src/material/texture.rs's CheckeredYPlane (a point-keyed
// model dispatch) generalized from a binary mediium into a continuous
// per-surface texture, per spec.md §4.4's mention of a noise-backed surface
// texture.
type NoiseTexture struct {
	Base        Model
	BlendColor  color.Color
	Noise       *noise.Perlin
	Scale       float64
	BlendFactor float64
}

// NewNoiseTexture constructs a NoiseTexture model.
func NewNoiseTexture(base Model, blendColor color.Color, n *noise.Perlin, scale, blendFactor float64) *NoiseTexture {
	return &NoiseTexture{Base: base, BlendColor: blendColor, Noise: n, Scale: scale, BlendFactor: blendFactor}
}

func (nt *NoiseTexture) Scatter(r ray.Ray, i hit.RawIntersection, ctx Context) ScatteredRay {
	out := nt.Base.Scatter(r, i, ctx)
	p := vecmath.Scale(i.Point, nt.Scale)
	noiseValue := nt.Noise.FBM(p[0], p[1], p[2], 4, 0.5, 2.0)
	blend := noiseValue * nt.BlendFactor
	if blend < 0 {
		blend = 0
	}
	if blend > 1 {
		blend = 1
	}
	out.Attenuate = out.Attenuate.Scale(1 - blend).Add(nt.BlendColor.Scale(blend))
	return out
}
