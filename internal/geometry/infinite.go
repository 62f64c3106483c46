package geometry

import (
	"math"

	"github.com/peterbraden/rays/internal/bbox"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

// Infinite always reports a hit at an effectively infinite distance,
// acting as a background catcher (used for the sky-sphere), grounded on
// original_source/src/shapes/infinite.rs.
type Infinite struct{}

// NewInfinite constructs an Infinite shape.
func NewInfinite() *Infinite { return &Infinite{} }

// Intersects always succeeds, reporting the hit at math.MaxFloat64 with
// the normal facing back along the incoming ray.
func (in *Infinite) Intersects(r ray.Ray) (hit.RawIntersection, bool) {
	dist := math.MaxFloat64
	point := vecmath.Add(r.Origin, vecmath.Scale(r.Dir, dist))
	normal := vecmath.Scale(r.Dir, -1)
	return hit.RawIntersection{Dist: dist, Point: point, Normal: normal}, true
}

// Bounds spans the entire representable coordinate range.
func (in *Infinite) Bounds() bbox.Box {
	return bbox.New(
		vecmath.New(-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64),
		vecmath.New(math.MaxFloat64, math.MaxFloat64, math.MaxFloat64),
	)
}

// PrimitiveCount is always 1.
func (in *Infinite) PrimitiveCount() uint64 { return 1 }
