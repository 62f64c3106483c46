package noise

import (
	"math"

	"github.com/peterbraden/rays/internal/vecmath"
)

// DensityField combines Perlin shape and Worley detail into a clamped
// [0,1] density value with distance falloff, grounded on
// original_source/src/noise.rs::combined_noise::density_field (used by
// CloudLayer).
func DensityField(position vecmath.Vector3, perlin *Perlin, worley *Worley, scale, falloff float64) float64 {
	shape := perlin.FBM(position[0]*scale*0.1, position[1]*scale*0.1, position[2]*scale*0.1, 4, 0.5, 2.0)
	detail := worley.Noise(position[0]*scale, position[1]*scale, position[2]*scale)
	raw := shape - detail*0.5

	distance := vecmath.Length(position)
	falloffFactor := math.Exp(-distance * falloff)

	v := raw * falloffFactor
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// CloudDensity is the thin alias CloudLayer calls through, matching the
// original's `cloud_noise::cloud_density` module name.
func CloudDensity(position vecmath.Vector3, perlin *Perlin, worley *Worley, scale, heightFalloff float64) float64 {
	return DensityField(position, perlin, worley, scale, heightFalloff)
}
