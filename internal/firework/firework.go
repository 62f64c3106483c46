// Package firework generates a time-sliced ballistic particle burst:
// each particle is a sphere sampled along a parabolic trajectory, unioned
// into a CSG union for geometry and indexed again in its own octree for
// the material to recover which particle was hit. Grounded on
// original_source/src/procedural/fireworks.rs in full.
package firework

import (
	"math"
	"math/rand"

	"github.com/peterbraden/rays/internal/bbox"
	"github.com/peterbraden/rays/internal/color"
	"github.com/peterbraden/rays/internal/geometry"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/material"
	"github.com/peterbraden/rays/internal/octree"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

const particleOctreeDepth = 8

// Params configures a single firework burst, matching the "center"/"time"/
// "radius"/"samples"/"gravity"/"particles"/"upward_bias"/"intensity"/
// "color" scene-file keys of
// original_source/src/procedural/fireworks.rs::create_firework.
type Params struct {
	Center       vecmath.Vector3
	Time         float64
	Radius       float64 // explosion radius at time=1
	Samples      int
	Gravity      float64
	NumParticles int
	UpwardBias   float64
	Intensity    float64
	Color        color.Color
}

// DefaultParams mirrors the original's hardcoded defaults. Note: the
// original reads the "radius" key twice (once for Radius, again where it
// meant "gravity") rather than a "gravity" key; that is a bug, not a
// feature, so Gravity here defaults independently to 9.8 and the scene
// parser reads it from its own "gravity" key.
func DefaultParams() Params {
	return Params{
		Center:       vecmath.New(0, 10, 0),
		Time:         0.9,
		Radius:       10,
		Samples:      10,
		Gravity:      9.8,
		NumParticles: 100,
		UpwardBias:   2,
		Intensity:    2,
		Color:        color.White(),
	}
}

// particle is one sampled point along a trajectory: a sphere plus the
// intensity it should emit at that sample.
type particle struct {
	sphere    *geometry.Sphere
	intensity float64
}

func (p *particle) Intersects(r ray.Ray) (hit.RawIntersection, bool) { return p.sphere.Intersects(r) }
func (p *particle) Bounds() bbox.Box                                 { return p.sphere.Bounds() }
func (p *particle) PrimitiveCount() uint64                           { return 1 }

// traceParticle misuses a ray as an (origin, initial-velocity) impulse and
// samples `samples` points along the resulting parabolic trajectory under
// gravity down the Y axis.
func traceParticle(impulse ray.Ray, time float64, samples int, gravity float64) []*particle {
	out := make([]*particle, 0, samples)
	for x := 0; x < samples; x++ {
		t := (time / float64(samples)) * float64(x)
		sink := impulse.Dir[1]*t - 0.5*gravity*t*t
		position := vecmath.New(
			impulse.Origin[0]+impulse.Dir[0]*t,
			impulse.Origin[1]+sink,
			impulse.Origin[2]+impulse.Dir[2]*t,
		)
		intensity := math.Pow(t/time, 3)
		radius := intensity * 0.1
		out = append(out, &particle{sphere: geometry.NewSphere(position, radius), intensity: intensity})
	}
	return out
}

func createParticles(rng *rand.Rand, p Params) []*particle {
	var particles []*particle
	bias := vecmath.New(0, p.UpwardBias, 0)
	for i := 0; i < p.NumParticles; i++ {
		u := rng.Float64()
		v := rng.Float64()
		impulse := ray.New(p.Center, vecmath.Add(vecmath.Scale(vecmath.PointOnUnitSphere(u, v), p.Radius), bias))
		particles = append(particles, traceParticle(impulse, p.Time, p.Samples, p.Gravity)...)
	}
	return particles
}

// Geometry is the CSG-union-of-spheres shape exposed to the scene graph.
type Geometry struct {
	union *geometry.CSGUnion
}

func (g *Geometry) Intersects(r ray.Ray) (hit.RawIntersection, bool) { return g.union.Intersects(r) }
func (g *Geometry) Bounds() bbox.Box                                 { return g.union.Bounds() }
func (g *Geometry) PrimitiveCount() uint64                           { return g.union.PrimitiveCount() }

// Material recovers which particle was actually hit (by re-querying its
// own particle octree with the same ray) and emits that particle's
// intensity scaled by the burst color, grounded on
// original_source/src/procedural/fireworks.rs::FireworkMaterial.
type Material struct {
	particles *octree.Tree[*particle]
	color     color.Color
}

func (m *Material) Scatter(r ray.Ray, i hit.RawIntersection, ctx material.Context) material.ScatteredRay {
	h, ok := m.particles.Intersection(r, math.MaxFloat64, 0)
	if !ok {
		// Should never happen: the geometry and material octrees are built
		// from the same particle set.
		return material.ScatteredRay{Ray: nil, Attenuate: color.Black()}
	}
	p := m.particles.Items[h.Index]
	return material.ScatteredRay{Ray: nil, Attenuate: m.color.Scale(p.intensity)}
}

// New builds both the CSG geometry and the particle-recovery material for
// a single firework burst.
func New(p Params, rng *rand.Rand) (*Geometry, material.Medium) {
	particles := createParticles(rng, p)

	prims := make([]geometry.Primitive, len(particles))
	for i, pt := range particles {
		prims[i] = pt
	}
	union := geometry.NewCSGUnion(prims)

	tree := octree.New(particleOctreeDepth, union.Bounds(), particles)
	mat := &Material{particles: tree, color: p.Color.Scale(p.Intensity)}

	return &Geometry{union: union}, material.NewSolid(mat)
}
