package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

func TestPlaneIntersectsStraightDown(t *testing.T) {
	p := NewPlane(0)
	r := ray.New(vecmath.New(0, 5, 0), vecmath.New(0, -1, 0))

	i, ok := p.Intersects(r)
	assert.True(t, ok)
	assert.InDelta(t, 5.0, i.Dist, 1e-9)
	assert.InDelta(t, 0.0, i.Point[1], 1e-9)
	// Ray comes from above, so the normal must face upward toward it.
	assert.InDelta(t, 1.0, i.Normal[1], 1e-9)
}

func TestPlaneIntersectsFromBelowFlipsNormal(t *testing.T) {
	p := NewPlane(0)
	r := ray.New(vecmath.New(0, -5, 0), vecmath.New(0, 1, 0))

	i, ok := p.Intersects(r)
	assert.True(t, ok)
	assert.InDelta(t, -1.0, i.Normal[1], 1e-9)
}

func TestPlaneMissesParallelRay(t *testing.T) {
	p := NewPlane(0)
	r := ray.New(vecmath.New(0, 5, 0), vecmath.New(1, 0, 0))
	_, ok := p.Intersects(r)
	assert.False(t, ok)
}

func TestPlaneMissesBehindRayOrigin(t *testing.T) {
	p := NewPlane(0)
	r := ray.New(vecmath.New(0, -5, 0), vecmath.New(0, -1, 0))
	_, ok := p.Intersects(r)
	assert.False(t, ok)
}

func TestPlaneBoundsAreAWideFiniteSlabAtY(t *testing.T) {
	p := NewPlane(3)
	b := p.Bounds()
	assert.InDelta(t, 3.0, b.Min[1], 1e-9)
	assert.InDelta(t, 3.0, b.Max[1], 1e-9)
	assert.Greater(t, b.Max[0], 1e5)
}
