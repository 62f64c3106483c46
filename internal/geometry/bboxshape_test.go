package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peterbraden/rays/internal/bbox"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

func TestBBoxShapeDelegatesToBox(t *testing.T) {
	b := bbox.New(vecmath.New(-1, -1, -1), vecmath.New(1, 1, 1))
	s := NewBBoxShape(b)

	assert.Equal(t, b, s.Bounds())
	assert.Equal(t, uint64(1), s.PrimitiveCount())

	r := ray.New(vecmath.New(0, 0, -5), vecmath.New(0, 0, 1))
	wantI, wantOK := b.Intersects(r)
	gotI, gotOK := s.Intersects(r)
	assert.Equal(t, wantOK, gotOK)
	assert.Equal(t, wantI, gotI)
}

func TestBBoxShapeMisses(t *testing.T) {
	b := bbox.New(vecmath.New(-1, -1, -1), vecmath.New(1, 1, 1))
	s := NewBBoxShape(b)

	r := ray.New(vecmath.New(100, 100, -5), vecmath.New(0, 0, 1))
	_, ok := s.Intersects(r)
	assert.False(t, ok)
}
