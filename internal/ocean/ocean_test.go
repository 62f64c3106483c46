package ocean

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

// TestPhillipsUpwindSuppression checks spec.md §8's "for k·w < 0,
// phillips(k,w) == 0" property: wave vectors pointing against the wind
// carry no spectral energy.
func TestPhillipsUpwindSuppression(t *testing.T) {
	wind := vec2{40, 30}

	cases := []vec2{
		{-40, -30},  // directly opposed
		{-1, -0.1},  // mostly opposed
		{0, -100},   // perpendicular-ish but net opposed
	}
	for _, k := range cases {
		assert.Zero(t, phillips(k, wind, 1.1e2, 9.81), "k=%v should be fully suppressed", k)
	}
}

func TestPhillipsZeroWaveVectorIsZero(t *testing.T) {
	assert.Zero(t, phillips(vec2{0, 0}, vec2{1, 0}, 1.1e2, 9.81))
}

func TestPhillipsDownwindIsPositive(t *testing.T) {
	wind := vec2{40, 30}
	k := vec2{40, 30} // aligned with wind
	assert.Greater(t, phillips(k, wind, 1.1e2, 9.81), 0.0)
}

// TestPhillipsDividesByKToTheFourth pins down exact values so a dropped
// |k|^4 divisor (scale/ksq*ksq evaluating left-to-right as plain scale)
// regresses loudly instead of silently: with wind aligned to k, wk==1, and
// l==windSpeed^2/gravity==1, phillips(k) reduces to exp(-1/ksq)/ksq^2.
func TestPhillipsDividesByKToTheFourth(t *testing.T) {
	wind := vec2{1, 0}

	got1 := phillips(vec2{1, 0}, wind, 1, 1)
	assert.InDelta(t, math.Exp(-1), got1, 1e-9)

	got2 := phillips(vec2{2, 0}, wind, 1, 1)
	assert.InDelta(t, math.Exp(-0.25)/16, got2, 1e-9)
}

// TestOceanMeshBounded checks scenario 4 of spec.md §8: a moderate-size
// ocean's generated mesh stays within a small y-extent bounding box despite
// a large horizontal resolution.
func TestOceanMeshBounded(t *testing.T) {
	p := Params{
		Amplitude:   110,
		Gravity:     9.81,
		WindX:       40,
		WindZ:       30,
		Resolution:  100,
		FourierSize: 16,
		Time:        4,
	}
	o := New(p, rand.New(rand.NewSource(5)))

	b := o.Bounds()
	yExtent := b.Max[1] - b.Min[1]
	assert.Less(t, yExtent, 50.0, "ocean y-extent %v should stay bounded", yExtent)
	assert.Greater(t, o.PrimitiveCount(), uint64(0))
}

// TestCheckerboardNegatesAlternatesByParity guards against the precedence
// bug where `x + y%2 == 0` (Go's % binds tighter than +) was mistaken for
// the intended `(x+y)%2 == 0` checkerboard rule: under the buggy version
// (1,1) evaluates false (1 + 1%2 == 2, not 0) where the correct rule says
// true (1+1=2, 2%2==0). Pinning concrete cells catches the regression.
func TestCheckerboardNegatesAlternatesByParity(t *testing.T) {
	assert.True(t, checkerboardNegates(0, 0))
	assert.True(t, checkerboardNegates(1, 1))
	assert.True(t, checkerboardNegates(2, 0))
	assert.False(t, checkerboardNegates(1, 0))
	assert.False(t, checkerboardNegates(0, 1))
	assert.False(t, checkerboardNegates(2, 1))
}

func TestOceanMaterialEitherTransmitsOrReflects(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	m := NewMaterial(rng)
	i := hit.RawIntersection{Point: vecmath.New(0, 0, 0), Normal: vecmath.New(0, 1, 0)}
	r := ray.New(vecmath.New(0, 5, 0), vecmath.New(0, -1, 0))

	for n := 0; n < 20; n++ {
		scattered := m.Scatter(r, i, nil)
		if scattered.Ray == nil {
			assert.Equal(t, 0.0, scattered.Attenuate.R)
		} else {
			assert.Equal(t, 1.0, scattered.Attenuate.R)
		}
	}
}
