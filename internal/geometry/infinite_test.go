package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

func TestInfiniteAlwaysHitsAtMaxDistance(t *testing.T) {
	in := NewInfinite()
	r := ray.New(vecmath.New(0, 0, 0), vecmath.New(0, 0, 1))

	i, ok := in.Intersects(r)
	assert.True(t, ok)
	assert.Equal(t, math.MaxFloat64, i.Dist)
	// Normal always faces back toward the ray origin.
	assert.Equal(t, vecmath.Scale(r.Dir, -1), i.Normal)
}

func TestInfinitePrimitiveCountIsOne(t *testing.T) {
	in := NewInfinite()
	assert.Equal(t, uint64(1), in.PrimitiveCount())
}
