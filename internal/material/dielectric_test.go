package material

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peterbraden/rays/internal/color"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

// TestDielectricEnergyConservation checks spec.md §8's "dielectric energy"
// property: for a ray entering a dielectric sphere, the reflect and
// transmit Fresnel weights (sampled stochastically via Schlick) sum to 1,
// and over many samples the fraction reflected converges on the predicted
// Schlick probability.
func TestDielectricEnergyConservation(t *testing.T) {
	const refractiveIndex = 1.5
	i := hit.RawIntersection{
		Point:  vecmath.New(0, 0, -1),
		Normal: vecmath.New(0, 0, -1),
	}
	r := ray.New(vecmath.New(0, 0, -2), vecmath.New(0, 0, 1))

	cosine := -vecmath.Dot(vecmath.Normalize(r.Dir), i.Normal)
	reflectProb := vecmath.Schlick(cosine, refractiveIndex)
	transmitProb := 1 - reflectProb
	assert.InDelta(t, 1.0, reflectProb+transmitProb, 1e-12)

	rng := rand.New(rand.NewSource(11))
	const trials = 20000
	reflected := 0
	for n := 0; n < trials; n++ {
		d := NewDielectric(refractiveIndex, color.White(), rng)
		scattered := d.Scatter(r, i, nil)
		// A transmitted ray bends through the surface (its direction's z
		// component stays positive and close to the incident ray's); a
		// reflected ray bounces back toward -z.
		if scattered.Ray.Dir[2] < 0 {
			reflected++
		}
	}

	gotProb := float64(reflected) / trials
	assert.InDelta(t, reflectProb, gotProb, 0.03, "sampled reflect fraction should track Schlick's prediction")
}

func TestDielectricAlwaysContinuesPath(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := NewDielectric(1.5, color.White(), rng)
	i := hit.RawIntersection{Point: vecmath.New(0, 0, -1), Normal: vecmath.New(0, 0, -1)}
	r := ray.New(vecmath.New(0, 0, -2), vecmath.New(0, 0, 1))

	scattered := d.Scatter(r, i, nil)
	assert.NotNil(t, scattered.Ray)
	assert.Equal(t, color.White(), scattered.Attenuate)
}
