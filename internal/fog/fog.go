// Package fog implements participating media that fill (or partly fill)
// world space: Vacuum (no-op air), HomogenousFog (probabilistic uniform
// scatterer) and CloudLayer (a ray-marched noise-density horizontal
// slab). Grounded on original_source/src/participatingmedia.rs in full.
package fog

import (
	"math"
	"math/rand"

	"github.com/peterbraden/rays/internal/bbox"
	"github.com/peterbraden/rays/internal/color"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/material"
	"github.com/peterbraden/rays/internal/noise"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

// Vacuum is the default air medium: rays pass through unperturbed, fully
// transmissive, grounded on
// original_source/src/participatingmedia.rs::Vacuum.
type Vacuum struct{}

func (Vacuum) Scatter(r ray.Ray, i hit.RawIntersection, ctx material.Context) material.ScatteredRay {
	return material.ScatteredRay{Ray: nil, Attenuate: color.White()}
}

// bigNumber bounds the free-flight distance HomogenousFog samples when it
// decides to scatter, matching the original's BIG_NUMBER constant.
const bigNumber = 1000.0

// HomogenousFog fills all of space with a uniform-density probabilistic
// scatterer, grounded on
// original_source/src/participatingmedia.rs::HomogenousFog.
type HomogenousFog struct {
	Color   color.Color
	Density float64
	Scatter float64
	RNG     *rand.Rand
}

// NewHomogenousFog constructs a HomogenousFog.
func NewHomogenousFog(c color.Color, density, scatter float64, rng *rand.Rand) *HomogenousFog {
	return &HomogenousFog{Color: c, Density: density, Scatter: scatter, RNG: rng}
}

// Intersects implements fog's Geometry side: with probability Density, a
// hit is synthesized at a random free-flight distance rand()^3*BIG along
// the ray, per spec.md §4.5.
func (f *HomogenousFog) Intersects(r ray.Ray) (hit.RawIntersection, bool) {
	if f.RNG.Float64() >= f.Density {
		return hit.RawIntersection{}, false
	}
	dist := math.Pow(f.RNG.Float64(), 3) * bigNumber
	point := vecmath.Add(r.Origin, vecmath.Scale(r.Dir, dist))
	return hit.RawIntersection{Dist: dist, Point: point, Normal: r.Dir}, true
}

// Bounds spans all of space, matching the original's use of f64::MIN/MAX.
func (f *HomogenousFog) Bounds() bbox.Box {
	return bbox.New(
		vecmath.New(-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64),
		vecmath.New(math.MaxFloat64, math.MaxFloat64, math.MaxFloat64),
	)
}

func (f *HomogenousFog) PrimitiveCount() uint64 { return 1 }

func (f *HomogenousFog) Scatter(r ray.Ray, i hit.RawIntersection, ctx material.Context) material.ScatteredRay {
	perturb := vecmath.Scale(vecmath.RandomPointOnUnitSphere(f.RNG), f.Scatter*f.RNG.Float64())
	dir := vecmath.Normalize(vecmath.Add(r.Dir, perturb))
	out := ray.New(i.Point, dir)
	return material.ScatteredRay{Ray: &out, Attenuate: f.Color}
}

// NewSceneMedium wraps f as both its own geometry and a Solid medium,
// matching original_source/src/participatingmedia.rs::create_fog.
func (f *HomogenousFog) NewSceneMedium() material.Medium {
	return material.NewSolid(f)
}

// CloudLayer is a ray-marched horizontal slab whose density comes from a
// Perlin/Worley noise field, with Henyey-Greenstein-weighted forward
// scattering. Grounded on
// original_source/src/participatingmedia.rs::CloudLayer.
type CloudLayer struct {
	Color         color.Color
	MaxDensity    float64
	Anisotropy    float64
	BaseHeight    float64
	Thickness     float64
	Extent        float64
	NoiseScale    float64
	HeightFalloff float64
	Perlin        *noise.Perlin
	Worley        *noise.Worley
	RNG           *rand.Rand
}

// NewCloudLayer constructs a CloudLayer.
func NewCloudLayer(c color.Color, maxDensity, anisotropy, baseHeight, thickness, extent, noiseScale, heightFalloff float64, perlin *noise.Perlin, worley *noise.Worley, rng *rand.Rand) *CloudLayer {
	return &CloudLayer{
		Color: c, MaxDensity: maxDensity, Anisotropy: anisotropy,
		BaseHeight: baseHeight, Thickness: thickness, Extent: extent,
		NoiseScale: noiseScale, HeightFalloff: heightFalloff,
		Perlin: perlin, Worley: worley, RNG: rng,
	}
}

// Bounds is a horizontal slab [-Extent,Extent] x [BaseHeight,BaseHeight+Thickness] x [-Extent,Extent].
func (c *CloudLayer) Bounds() bbox.Box {
	return bbox.New(
		vecmath.New(-c.Extent, c.BaseHeight, -c.Extent),
		vecmath.New(c.Extent, c.BaseHeight+c.Thickness, c.Extent),
	)
}

func (c *CloudLayer) PrimitiveCount() uint64 { return 1 }

// densityAt returns the cloud density at position, combining the
// noise-based density field with a parabolic vertical profile that peaks
// mid-layer, per original_source/src/participatingmedia.rs::density_at.
func (c *CloudLayer) densityAt(position vecmath.Vector3) float64 {
	height := position[1]
	if height < c.BaseHeight || height > c.BaseHeight+c.Thickness {
		return 0
	}
	normalizedHeight := (height - c.BaseHeight) / c.Thickness

	density := noise.CloudDensity(position, c.Perlin, c.Worley, c.NoiseScale, c.HeightFalloff)
	verticalProfile := 4.0 * normalizedHeight * (1.0 - normalizedHeight)

	d := density * verticalProfile * c.MaxDensity
	if d > 1 {
		return 1
	}
	return d
}

const (
	cloudStepSize         = 10.0
	cloudMaxSteps         = 100
	cloudDensityThreshold = 0.05
)

// Intersects ray-marches through the slab, stochastically accepting a hit
// once the local density crosses a threshold, with a density-weighted
// acceptance probability and adaptive step size, per
// original_source/src/participatingmedia.rs::CloudLayer::intersects.
func (c *CloudLayer) Intersects(r ray.Ray) (hit.RawIntersection, bool) {
	bounds := c.Bounds()
	if _, _, ok := bounds.FastIntersects(r); !ok {
		return hit.RawIntersection{}, false
	}

	currentPos := r.Origin
	t := 0.0

	for step := 0; step < cloudMaxSteps; step++ {
		if !bounds.ContainsPoint(currentPos) {
			break
		}

		density := c.densityAt(currentPos)
		if density > cloudDensityThreshold {
			hitProbability := 1.0 - math.Exp(-density*c.MaxDensity*cloudStepSize)
			if c.RNG.Float64() < hitProbability {
				return hit.RawIntersection{Dist: t, Point: currentPos, Normal: r.Dir}, true
			}
		}

		advance := cloudStepSize * math.Max(1.0-density, 0.2)
		t += advance
		currentPos = vecmath.Add(r.Origin, vecmath.Scale(r.Dir, t))
	}
	return hit.RawIntersection{}, false
}

// Scatter applies a simplified Henyey-Greenstein-weighted scattering
// direction and attenuates by color*density, per
// original_source/src/participatingmedia.rs::CloudLayer::scatter.
func (c *CloudLayer) Scatter(r ray.Ray, i hit.RawIntersection, ctx material.Context) material.ScatteredRay {
	var scatterDir vecmath.Vector3
	if c.RNG.Float64() < 0.5+c.Anisotropy*0.5 {
		scatterDir = vecmath.Normalize(vecmath.Add(r.Dir, vecmath.Scale(vecmath.RandomPointOnUnitSphere(c.RNG), 1.0-c.Anisotropy)))
	} else {
		scatterDir = vecmath.RandomPointOnUnitSphere(c.RNG)
	}

	densityAtPoint := c.densityAt(i.Point)
	attenuation := c.Color.Scale(densityAtPoint)

	out := ray.New(i.Point, scatterDir)
	return material.ScatteredRay{Ray: &out, Attenuate: attenuation}
}

// NewSceneMedium wraps c as both its own geometry and a Solid medium,
// matching original_source/src/participatingmedia.rs::create_cloud_layer.
func (c *CloudLayer) NewSceneMedium() material.Medium {
	return material.NewSolid(c)
}
