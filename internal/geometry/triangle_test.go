package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

func TestTriangleIntersectsAtBaseEdgeMidpoint(t *testing.T) {
	tri := NewTriangle(
		vecmath.New(1, 0, 0),
		vecmath.New(-1, 0, 0),
		vecmath.New(0, 1, 0),
	)
	r := ray.New(vecmath.New(0, 0, -1), vecmath.New(0, 0, 1))

	i, ok := tri.Intersects(r)
	assert.True(t, ok)
	assert.InDelta(t, 1.0, i.Dist, 1e-9)
	assert.InDelta(t, 0, i.Point[0], 1e-9)
	assert.InDelta(t, 0, i.Point[1], 1e-9)
	assert.InDelta(t, 0, i.Point[2], 1e-9)
}

func TestTriangleMissesOutsideEdge(t *testing.T) {
	tri := NewTriangle(
		vecmath.New(1, 0, 0),
		vecmath.New(-1, 0, 0),
		vecmath.New(0, 1, 0),
	)
	r := ray.New(vecmath.New(5, 5, -1), vecmath.New(0, 0, 1))

	_, ok := tri.Intersects(r)
	assert.False(t, ok)
}

func TestSmoothTriangleInterpolatesVertexNormals(t *testing.T) {
	// Degenerate case: all three vertex normals point the same way, so the
	// interpolated normal must equal that shared direction regardless of
	// barycentric weights.
	n := vecmath.New(0, 0, -1)
	tri := NewSmoothTriangle(
		vecmath.New(1, 0, 0), vecmath.New(-1, 0, 0), vecmath.New(0, 1, 0),
		n, n, n,
	)
	r := ray.New(vecmath.New(0, 0, -1), vecmath.New(0, 0, 1))

	i, ok := tri.Intersects(r)
	assert.True(t, ok)
	assert.InDelta(t, n[0], i.Normal[0], 1e-9)
	assert.InDelta(t, n[1], i.Normal[1], 1e-9)
	assert.InDelta(t, n[2], i.Normal[2], 1e-9)
}
