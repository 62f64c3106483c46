package fog

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peterbraden/rays/internal/color"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/noise"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

func TestVacuumAlwaysTerminatesWithFullTransmission(t *testing.T) {
	v := Vacuum{}
	scattered := v.Scatter(ray.Ray{}, hit.RawIntersection{}, nil)
	assert.Nil(t, scattered.Ray)
	assert.Equal(t, color.White(), scattered.Attenuate)
}

func TestHomogenousFogDensityZeroNeverIntersects(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	f := NewHomogenousFog(color.White(), 0, 0, rng)
	r := ray.New(vecmath.New(0, 0, 0), vecmath.New(0, 0, 1))
	for n := 0; n < 20; n++ {
		_, ok := f.Intersects(r)
		assert.False(t, ok)
	}
}

func TestHomogenousFogDensityOneAlwaysIntersects(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	f := NewHomogenousFog(color.White(), 1, 0, rng)
	r := ray.New(vecmath.New(0, 0, 0), vecmath.New(0, 0, 1))
	for n := 0; n < 20; n++ {
		i, ok := f.Intersects(r)
		assert.True(t, ok)
		assert.GreaterOrEqual(t, i.Dist, 0.0)
	}
}

func TestHomogenousFogScatterContinuesPathWithItsColor(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	f := NewHomogenousFog(color.New(0.5, 0.5, 0.5), 1, 0.1, rng)
	i := hit.RawIntersection{Point: vecmath.New(1, 2, 3)}
	r := ray.New(vecmath.New(0, 0, 0), vecmath.New(0, 0, 1))

	scattered := f.Scatter(r, i, nil)
	assert.NotNil(t, scattered.Ray)
	assert.Equal(t, color.New(0.5, 0.5, 0.5), scattered.Attenuate)
}

func TestCloudLayerDensityIsZeroOutsideVerticalRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cl := NewCloudLayer(color.White(), 0.5, 0.3, 1000, 500, 5000, 0.001, 0.5, noise.New(), noise.NewWorley(1, 42), rng)

	assert.Equal(t, 0.0, cl.densityAt(vecmath.New(0, 0, 0)))
	assert.Equal(t, 0.0, cl.densityAt(vecmath.New(0, 2000, 0)))
}

func TestCloudLayerBoundsMatchSlabDimensions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cl := NewCloudLayer(color.White(), 0.5, 0.3, 1000, 500, 5000, 0.001, 0.5, noise.New(), noise.NewWorley(1, 42), rng)
	b := cl.Bounds()
	assert.Equal(t, 1000.0, b.Min[1])
	assert.Equal(t, 1500.0, b.Max[1])
	assert.Equal(t, -5000.0, b.Min[0])
}

func TestCloudLayerMissesWhenOutsideItsBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cl := NewCloudLayer(color.White(), 0.5, 0.3, 1000, 500, 5000, 0.001, 0.5, noise.New(), noise.NewWorley(1, 42), rng)

	r := ray.New(vecmath.New(100000, 100000, 100000), vecmath.New(1, 0, 0))
	_, ok := cl.Intersects(r)
	assert.False(t, ok)
}
