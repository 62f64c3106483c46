package geometry

import (
	"github.com/peterbraden/rays/internal/bbox"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/ray"
)

// BBoxShape adapts a bbox.Box to the Primitive interface for the `box`
// scene object type, delegating to bbox.Box's own Intersects (the
// BBox-as-renderable-shape contract from spec.md §4.1).
type BBoxShape struct {
	Box bbox.Box
}

// NewBBoxShape wraps a box as a renderable primitive.
func NewBBoxShape(b bbox.Box) *BBoxShape { return &BBoxShape{Box: b} }

func (b *BBoxShape) Intersects(r ray.Ray) (hit.RawIntersection, bool) { return b.Box.Intersects(r) }
func (b *BBoxShape) Bounds() bbox.Box                                 { return b.Box }
func (b *BBoxShape) PrimitiveCount() uint64                           { return 1 }
