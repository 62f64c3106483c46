package material

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peterbraden/rays/internal/color"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/noise"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

func TestNoiseTextureBlendStaysWithinUnitRange(t *testing.T) {
	base := NewFlatColor(color.New(1, 0, 0))
	blend := color.New(0, 0, 1)
	n := noise.New()
	// A large BlendFactor would push noiseValue*BlendFactor outside [0,1]
	// without clamping; this exercises that clamp in both directions.
	nt := NewNoiseTexture(base, blend, n, 1, 1000)

	i := hit.RawIntersection{Point: vecmath.New(3, 7, 11), Normal: vecmath.New(0, 1, 0)}
	scattered := nt.Scatter(ray.Ray{}, i, nil)

	assert.Nil(t, scattered.Ray)
	// Result must be a convex combination of base and blend colors: every
	// channel stays within [min(base,blend), max(base,blend)].
	assert.GreaterOrEqual(t, scattered.Attenuate.R, 0.0)
	assert.LessOrEqual(t, scattered.Attenuate.R, 1.0)
	assert.GreaterOrEqual(t, scattered.Attenuate.B, 0.0)
	assert.LessOrEqual(t, scattered.Attenuate.B, 1.0)
}
