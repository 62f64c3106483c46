// Package scene holds the immutable, render-thread-shared world
// description: scene objects (geometry+medium pairs) indexed in an
// octree, lights, camera, and render/image options. Grounded on
// original_source/src/{scene,scenegraph,sceneobject,light}.rs (the newer
// geometry+medium SceneObject shape used throughout ocean.rs/skysphere.rs/
// fireworks.rs/box_terrain.rs, not the legacy trait-object
// sceneobject.rs:SceneObject referenced only by the abandoned early draft).
package scene

import (
	"github.com/peterbraden/rays/internal/bbox"
	"github.com/peterbraden/rays/internal/camera"
	"github.com/peterbraden/rays/internal/color"
	"github.com/peterbraden/rays/internal/geometry"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/material"
	"github.com/peterbraden/rays/internal/octree"
	"github.com/peterbraden/rays/internal/ray"
)

// Object pairs a piece of geometry with the medium that shades it,
// grounded on SceneObject{geometry, medium} as used by every procedural
// generator in the original.
type Object struct {
	Geometry geometry.Primitive
	Medium   material.Medium
}

func (o *Object) Bounds() bbox.Box { return o.Geometry.Bounds() }

func (o *Object) Intersects(r ray.Ray) (hit.RawIntersection, bool) {
	return o.Geometry.Intersects(r)
}

const sceneGraphDepth = 8

// Graph indexes a flat list of Objects in an octree, grounded on
// original_source/src/scenegraph.rs::SceneGraph.
type Graph struct {
	tree   *octree.Tree[*Object]
	bounds bbox.Box
}

// NewGraph partitions objects into an octree over their union bounds,
// matching SceneGraph::push's `self.partition(2)` call generalized to a
// configurable depth (spec.md leaves the exact partition depth as an
// implementation detail; 8 matches every other octree in this codebase).
func NewGraph(objects []*Object) *Graph {
	bounds := bbox.Empty()
	for _, o := range objects {
		bounds = bounds.Union(o.Bounds())
	}
	return &Graph{tree: octree.New(sceneGraphDepth, bounds, objects), bounds: bounds}
}

// NearestIntersection finds the nearest hit object and its intersection
// in [min, max] along r.
func (g *Graph) NearestIntersection(r ray.Ray, max, min float64) (*Object, hit.RawIntersection, bool) {
	h, ok := g.tree.Intersection(r, max, min)
	if !ok {
		return nil, hit.RawIntersection{}, false
	}
	return g.tree.Items[h.Index], h.RawIntersection, true
}

func (g *Graph) Bounds() bbox.Box { return g.bounds }

// ImageOpts is the output raster's dimensions, grounded on
// original_source/src/scene.rs::ImageOpts.
type ImageOpts struct {
	Width, Height int
}

// RenderOpts controls sampling and path termination, grounded on
// original_source/src/scene.rs::RenderOpts.
type RenderOpts struct {
	Background      color.Color
	MaxDepth        int
	ShadowBias      float64
	Supersamples    int
	ChunkSize       int
	SamplesPerChunk int
}

// Scene is the complete, immutable world description shared read-only by
// every render worker, grounded on original_source/src/scene.rs::Scene.
type Scene struct {
	Image          ImageOpts
	Render         RenderOpts
	Camera         camera.Camera
	Objects        *Graph
	LightList      []material.Light
	// AirMedium is the participating medium filling unoccupied space
	// (Vacuum by default), a MaterialModel directly rather than a
	// point-keyed Medium, matching original_source/src/scene.rs's
	// `air_medium: Box<dyn ParticipatingMedium>` (ParticipatingMedium
	// extends MaterialModel, it does not map points to models).
	AirMedium      material.Model
	BlackThreshold float64
}

// NearestIntersection implements material.Context for materials that need
// to cast shadow rays against the rest of the scene.
func (s *Scene) NearestIntersection(r ray.Ray, max, min float64) (hit.RawIntersection, bool) {
	_, h, ok := s.Objects.NearestIntersection(r, max, min)
	return h, ok
}

// Lights implements material.Context.
func (s *Scene) Lights() []material.Light { return s.LightList }

// Background implements material.Context.
func (s *Scene) Background() color.Color { return s.Render.Background }
