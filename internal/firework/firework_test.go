package firework

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

func TestNewBuildsGeometryWithParticleVolume(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	p := DefaultParams()
	p.NumParticles = 20
	p.Samples = 5

	geom, medium := New(p, rng)
	assert.Greater(t, geom.PrimitiveCount(), uint64(0))
	assert.NotNil(t, medium)

	b := geom.Bounds()
	assert.Greater(t, b.Max[0], b.Min[0])
}

func TestFireworkMaterialEmitsNonNegativeIntensity(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	p := DefaultParams()
	p.NumParticles = 30
	p.Samples = 6

	geom, medium := New(p, rng)
	b := geom.Bounds()
	center := b.Mid()

	// Cast a ray from well outside the bounds straight through its center;
	// since the burst is a union of small spheres this may or may not hit,
	// so only assert non-negative radiance when it does.
	r := ray.New(vecmath.New(center[0], center[1], b.Min[2]-100), vecmath.New(0, 0, 1))
	if i, ok := geom.Intersects(r); ok {
		model := medium.At(i.Point)
		scattered := model.Scatter(r, i, nil)
		assert.Nil(t, scattered.Ray)
		assert.GreaterOrEqual(t, scattered.Attenuate.Luminance(), 0.0)
	}
}

func TestDefaultParamsMatchOriginalConstants(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, 0.9, p.Time)
	assert.Equal(t, 10.0, p.Radius)
	assert.Equal(t, 9.8, p.Gravity)
}
