// Package sky implements an atmospheric Rayleigh/Mie scattering sky
// material, grounded on original_source/src/skysphere.rs in full.
package sky

import (
	"math"

	"github.com/peterbraden/rays/internal/color"
	"github.com/peterbraden/rays/internal/geometry"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/material"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

var (
	betaR = vecmath.New(3.8e-6, 13.5e-6, 33.1e-6)
	betaM = vecmath.New(21e-6, 21e-6, 21e-6)
)

const (
	numSamples      = 16
	numSamplesLight = 8
	mieAsymmetry    = 0.76
)

// Material is the scattering sky shader: a numerical integration of
// single-scattered sunlight along the view ray through an exponential
// atmosphere, with Rayleigh and Mie phase functions.
type Material struct {
	Atmosphere        *geometry.Sphere
	Earth             *geometry.Sphere
	SunDirection      vecmath.Vector3 // normalized
	RayleighThickness float64
	MieThickness      float64
}

// New constructs the default Earth-like sky, matching
// original_source/src/skysphere.rs::create_sky_sphere's constants.
func New() *Material {
	earth := geometry.NewSphere(vecmath.New(0, -6360e3, 0), 6360e3)
	atmosphere := geometry.NewSphere(vecmath.New(0, -6360e3, 0), 6420e3)
	return &Material{
		Atmosphere:        atmosphere,
		Earth:             earth,
		SunDirection:      vecmath.Normalize(vecmath.New(1, 1, 2)),
		RayleighThickness: 7994,
		MieThickness:      1200,
	}
}

func tonemap(v float64) float64 {
	if v < 1.413 {
		return math.Pow(v*0.38317, 1.0/2.2)
	}
	return 1.0 - math.Exp(-v)
}

func (m *Material) Scatter(r ray.Ray, i hit.RawIntersection, ctx material.Context) material.ScatteredRay {
	atmosHit, ok := m.Atmosphere.Intersects(r)
	if !ok {
		return material.ScatteredRay{Ray: nil, Attenuate: color.Black()}
	}
	rayMax := atmosHit.Dist

	if earthHit, ok := m.Earth.Intersects(r); ok {
		rayMax = earthHit.Dist
	}

	segmentLength := rayMax / numSamples

	rayleighSum := vecmath.Zero
	mieSum := vecmath.Zero
	var opticalDepthR, opticalDepthM float64

	mu := vecmath.Dot(vecmath.Normalize(r.Dir), m.SunDirection)
	phaseR := 3.0 / (16.0 * math.Pi) * (1.0 + mu*mu)
	g := mieAsymmetry
	phaseM := 3.0 / (8.0 * math.Pi) * ((1-g*g)*(1+mu*mu)) / ((2 + g*g) * math.Pow(1+g*g-2*g*mu, 1.5))

	for s := 0; s < numSamples; s++ {
		samplePos := vecmath.Add(r.Origin, vecmath.Scale(r.Dir, float64(s)*segmentLength))
		height := vecmath.Length(vecmath.Sub(samplePos, m.Atmosphere.Center)) - m.Earth.Radius

		rayleigh := math.Exp(-height/m.RayleighThickness) * segmentLength
		mie := math.Exp(-height/m.MieThickness) * segmentLength
		opticalDepthR += rayleigh
		opticalDepthM += mie

		lightRay := ray.New(samplePos, m.SunDirection)
		lightHit, ok := m.Atmosphere.Intersects(lightRay)
		if !ok {
			continue
		}

		lightLen := lightHit.Dist
		segmentLengthLight := lightLen / numSamplesLight
		var opticalDepthLightR, opticalDepthLightM float64
		for j := 0; j < numSamplesLight; j++ {
			samplePosLight := vecmath.Add(samplePos, vecmath.Scale(m.SunDirection, float64(j)*segmentLengthLight))
			heightLight := vecmath.Length(vecmath.Sub(samplePosLight, m.Atmosphere.Center)) - m.Earth.Radius
			opticalDepthLightR += math.Exp(-heightLight/m.RayleighThickness) * segmentLengthLight
			opticalDepthLightM += math.Exp(-heightLight/m.MieThickness) * segmentLengthLight
		}

		tau := vecmath.Add(
			vecmath.Scale(betaR, opticalDepthR+opticalDepthLightR),
			vecmath.Scale(betaM, 1.1*(opticalDepthM+opticalDepthLightM)),
		)
		attenuation := vecmath.New(math.Exp(-tau[0]), math.Exp(-tau[1]), math.Exp(-tau[2]))
		rayleighSum = vecmath.Add(rayleighSum, vecmath.Scale(attenuation, rayleigh))
		mieSum = vecmath.Add(mieSum, vecmath.Scale(attenuation, mie))
	}

	attenuateVec := vecmath.Scale(
		vecmath.Add(
			vecmath.Scale(vecmath.ComponentMul(rayleighSum, betaR), phaseR),
			vecmath.Scale(vecmath.ComponentMul(mieSum, betaM), phaseM),
		),
		20.0,
	)

	// We use a magic number (20) for solar intensity here, same caveat as
	// the original: a future revision could derive it physically.
	return material.ScatteredRay{
		Ray: nil,
		Attenuate: color.New(
			tonemap(attenuateVec[0]),
			tonemap(attenuateVec[1]),
			tonemap(attenuateVec[2]),
		),
	}
}

// NewSceneMedium wraps Material as a Solid medium over an Infinite
// backdrop, matching original_source/src/skysphere.rs::create_sky_sphere.
func NewSceneMedium() material.Medium {
	return material.NewSolid(New())
}
