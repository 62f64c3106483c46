package sky

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

// TestSkyTerminatesWithNonNegativeColor checks scenario 5 of spec.md §8: a
// ray looking toward the horizon through the sky material always terminates
// the path (it never spawns a further scattered ray) and produces a
// physically sane, non-negative radiance.
func TestSkyTerminatesWithNonNegativeColor(t *testing.T) {
	m := New()
	r := ray.New(vecmath.New(0, 1000, 0), vecmath.New(1, 0.01, 0))

	scattered := m.Scatter(r, hit.RawIntersection{}, nil)
	assert.Nil(t, scattered.Ray)
	assert.GreaterOrEqual(t, scattered.Attenuate.R, 0.0)
	assert.GreaterOrEqual(t, scattered.Attenuate.G, 0.0)
	assert.GreaterOrEqual(t, scattered.Attenuate.B, 0.0)
}

func TestSkyLookingTowardSunIsBrighterThanAwayFromIt(t *testing.T) {
	m := New()
	toward := ray.New(vecmath.New(0, 1000, 0), m.SunDirection)
	away := ray.New(vecmath.New(0, 1000, 0), vecmath.Scale(m.SunDirection, -1))

	sToward := m.Scatter(toward, hit.RawIntersection{}, nil)
	sAway := m.Scatter(away, hit.RawIntersection{}, nil)

	assert.Greater(t, sToward.Attenuate.Luminance(), sAway.Attenuate.Luminance())
}

func TestNewSceneMediumWrapsMaterialInASolid(t *testing.T) {
	medium := NewSceneMedium()
	model := medium.At(vecmath.New(0, 0, 0))
	assert.NotNil(t, model)
}
