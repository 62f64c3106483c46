package vecmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDotAndCrossOrthogonalBasis(t *testing.T) {
	x := New(1, 0, 0)
	y := New(0, 1, 0)
	assert.Equal(t, 0.0, Dot(x, y))
	assert.Equal(t, New(0, 0, 1), Cross(x, y))
}

func TestNormalizeProducesUnitLength(t *testing.T) {
	v := Normalize(New(3, 4, 0))
	assert.InDelta(t, 1.0, Length(v), 1e-9)
	assert.InDelta(t, 0.6, v[0], 1e-9)
	assert.InDelta(t, 0.8, v[1], 1e-9)
}

func TestReflectOffFlatSurfaceFlipsPerpendicularComponent(t *testing.T) {
	d := New(1, -1, 0)
	n := New(0, 1, 0)
	r := Reflect(d, n)
	assert.Equal(t, New(1, 1, 0), r)
}

func TestRefractHeadOnPassesStraightThrough(t *testing.T) {
	v := New(0, 0, 1)
	n := New(0, 0, -1)
	refracted, ok := Refract(v, n, 1.0)
	assert.True(t, ok)
	assert.InDelta(t, 0, refracted[0], 1e-9)
	assert.InDelta(t, 0, refracted[1], 1e-9)
	assert.InDelta(t, 1, refracted[2], 1e-9)
}

func TestRefractTotalInternalReflectionReturnsFalse(t *testing.T) {
	// A steep grazing angle from a dense to a sparse medium (niOverNt large)
	// pushes the discriminant negative.
	v := New(1, -0.01, 0)
	n := New(0, 1, 0)
	_, ok := Refract(v, n, 2.0)
	assert.False(t, ok)
}

func TestSchlickIsZeroAtNormalIncidenceForMatchedIndices(t *testing.T) {
	// refIdx=1 means no index mismatch, so r0=0 and Schlick(1, 1) == 0.
	assert.InDelta(t, 0.0, Schlick(1.0, 1.0), 1e-12)
}

func TestSchlickApproachesOneAtGrazingAngle(t *testing.T) {
	v := Schlick(0.0, 1.5)
	assert.InDelta(t, 1.0, v, 1e-9)
}

func TestRandomPointOnUnitSphereStaysWithinTheUnitBall(t *testing.T) {
	// RandomPointOnUnitSphere samples the solid ball (radius drawn via
	// cube-root for uniform volume density), not just its surface.
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 50; n++ {
		p := RandomPointOnUnitSphere(rng)
		assert.LessOrEqual(t, Length(p), 1.0+1e-9)
	}
}

func TestRandomUnitVectorHasUnitLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 50; n++ {
		v := RandomUnitVector(rng)
		assert.InDelta(t, 1.0, Length(v), 1e-9)
	}
}

func TestRandomPointOnDiscStaysWithinRadiusAndPlane(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 50; n++ {
		p := RandomPointOnDisc(rng, 2.5)
		assert.LessOrEqual(t, math.Hypot(p[0], p[1]), 2.5+1e-9)
	}
}

func TestPointOnUnitSphereHasUnitLength(t *testing.T) {
	p := PointOnUnitSphere(0, 0)
	assert.InDelta(t, 1.0, Length(p), 1e-9)
}
