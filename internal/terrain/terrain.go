// Package terrain implements BoxTerrain: a regular grid of randomized-
// height boxes approximating rough ground, grounded on
// original_source/src/procedural/box_terrain.rs in full.
package terrain

import (
	"math"
	"math/rand"

	"github.com/peterbraden/rays/internal/bbox"
	"github.com/peterbraden/rays/internal/geometry"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/octree"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

const (
	terrainOctreeDepth = 8
	gridHalfExtent      = 20
	cubeSize            = 3.0
)

// BoxTerrain is a 40x40 grid of cubeSize x cubeSize footprint boxes with randomized
// heights, wrapped in an octree.
type BoxTerrain struct {
	tree   *octree.Tree[*geometry.BBoxShape]
	bounds bbox.Box
	count  uint64
}

// New builds a BoxTerrain grid, matching
// original_source/src/procedural/box_terrain.rs::create_box_terrain.
func New(rng *rand.Rand) *BoxTerrain {
	var boxes []*geometry.BBoxShape
	bounds := bbox.Empty()

	for x := -gridHalfExtent; x < gridHalfExtent; x++ {
		for z := -gridHalfExtent; z < gridHalfExtent; z++ {
			y := rng.Float64() * rng.Float64()
			b := bbox.New(
				vecmath.New(float64(x)*cubeSize, 0, float64(z)*cubeSize),
				vecmath.New(float64(x)*cubeSize+cubeSize, y*cubeSize, float64(z)*cubeSize+cubeSize),
			)
			bounds = bounds.Union(b)
			boxes = append(boxes, geometry.NewBBoxShape(b))
		}
	}

	return &BoxTerrain{
		tree:   octree.New(terrainOctreeDepth, bounds, boxes),
		bounds: bounds,
		count:  uint64(len(boxes)),
	}
}

func (t *BoxTerrain) Intersects(r ray.Ray) (hit.RawIntersection, bool) {
	h, ok := t.tree.Intersection(r, math.MaxFloat64, 0)
	if !ok {
		return hit.RawIntersection{}, false
	}
	return h.RawIntersection, true
}

func (t *BoxTerrain) Bounds() bbox.Box       { return t.bounds }
func (t *BoxTerrain) PrimitiveCount() uint64 { return t.count }
