// Package ocean generates a Tessendorf-style animated ocean surface: a
// Phillips-spectrum amplitude field evolved through time and inverse
// Fourier transformed into a height field, tessellated into a triangle
// mesh and wrapped in an octree. Grounded on
// original_source/src/ocean.rs in full.
package ocean

import (
	"math"
	"math/rand"

	"github.com/peterbraden/rays/internal/bbox"
	"github.com/peterbraden/rays/internal/color"
	"github.com/peterbraden/rays/internal/fft"
	"github.com/peterbraden/rays/internal/geometry"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/material"
	"github.com/peterbraden/rays/internal/octree"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

const oceanOctreeDepth = 8

// Params configures ocean generation, matching the "amplitude"/"gravity"/
// "wind"/"resolution"/"fourier_size" scene-file keys of
// original_source/src/ocean.rs::Ocean::new.
type Params struct {
	Amplitude   float64 // scale (A)
	Gravity     float64
	WindX, WindZ float64
	Resolution  float64 // mesh extent (lx = lz)
	FourierSize int     // must be a power of two
	Time        float64
}

// DefaultParams mirrors the original's hardcoded defaults.
func DefaultParams() Params {
	return Params{
		Amplitude:   1.1e2,
		Gravity:     9.81,
		WindX:       40,
		WindZ:       30,
		Resolution:  100,
		FourierSize: 128,
		Time:        4,
	}
}

type vec2 struct{ x, y float64 }

func (v vec2) normSq() float64 { return v.x*v.x + v.y*v.y }
func (v vec2) norm() float64   { return math.Sqrt(v.normSq()) }
func (v vec2) normalize() vec2 {
	n := v.norm()
	if n == 0 {
		return v
	}
	return vec2{v.x / n, v.y / n}
}
func (v vec2) dot(o vec2) float64 { return v.x*o.x + v.y*o.y }

// phillips is the Phillips spectrum weight for wave vector k given wind,
// scale and gravity, grounded verbatim on original_source/src/ocean.rs::phillips.
func phillips(k, wind vec2, scale, gravity float64) float64 {
	ksq := k.normSq()
	if ksq == 0 {
		return 0
	}
	windDir := wind.normalize()
	wk := k.normalize().dot(windDir)
	if wk < 0 {
		return 0
	}
	windSpeed := wind.norm()
	l := (windSpeed * windSpeed) / gravity
	return scale / (ksq * ksq) * math.Exp(-1.0/(ksq*l*l)) * wk * wk
}

func amplitude(k, wind vec2, scale, gravity float64, rng *rand.Rand) fft.Complex {
	p := phillips(k, wind, scale, gravity)
	return complex(1/math.Sqrt2, 0) * complex(rng.NormFloat64(), rng.NormFloat64()) * complex(math.Sqrt(p), 0)
}

func genK(n, m, lx, lz float64) vec2 {
	return vec2{
		x: 2 * math.Pi * n / lx,
		y: 2 * math.Pi * m / lz,
	}
}

func toReal(x int, y float64, z int, size int, lx, lz float64) vecmath.Vector3 {
	return vecmath.New(
		float64(x)/float64(size)*lx-(lx/2),
		y,
		float64(z)/float64(size)*lz-(lz/2),
	)
}

func getY(x, z int, mesh []fft.Complex, size int) float64 {
	idx := ((x % size) * size) + (z % size)
	return real(mesh[idx])
}

// checkerboardNegates reports whether grid cell (x,y) falls on the
// negative phase of the (-1)^(x+y) IFFT sign correction.
func checkerboardNegates(x, y int) bool {
	return (x+y)%2 == 0
}

// Ocean is a procedurally generated wave-mesh surface.
type Ocean struct {
	tree   *octree.Tree[*geometry.Triangle]
	bounds bbox.Box
	count  uint64
}

// New builds an Ocean by evolving the Phillips spectrum to Params.Time and
// inverse-transforming it into a height field, then tessellating it into
// triangles.
func New(p Params, rng *rand.Rand) *Ocean {
	size := p.FourierSize
	lx, lz := p.Resolution, p.Resolution
	wind := vec2{p.WindX, p.WindZ}

	h0 := make([]fft.Complex, size*size)
	for j := 0; j < size; j++ {
		for i := 0; i < size; i++ {
			ind := j*size + i
			n := (float64(j)/float64(size) - 0.5) * float64(size)
			m := (float64(i)/float64(size) - 0.5) * float64(size)
			k := genK(n, m, lx, lz)
			h0[ind] = amplitude(k, wind, p.Amplitude, p.Gravity, rng)
		}
	}
	h0trans := fft.Transpose(h0, size)

	ht := make([]fft.Complex, size*size)
	for j := 0; j < size; j++ {
		for i := 0; i < size; i++ {
			ind := j*size + i
			n := (float64(j)/float64(size) - 0.5) * float64(size)
			m := (float64(i)/float64(size) - 0.5) * float64(size)
			k := genK(n, m, lx, lz)

			w := math.Sqrt(k.norm() * p.Gravity)
			wt := cmplxExp(complex(0, w*p.Time))

			ht[ind] = h0[ind]*wt + cmplxConj(h0trans[ind])*cmplxConj(wt)
		}
	}

	meshComplex := fft.IFFT2(ht, size)

	// Sign correction: alternate checkerboard sign (-1)^(x+y) so the IFFT
	// output lines up with the spectrum's centered-frequency layout.
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			if checkerboardNegates(x, y) {
				meshComplex[x*size+y] *= -1
			}
		}
	}

	var triangles []*geometry.Triangle
	for x := 1; x < size; x++ {
		for z := 1; z < size; z++ {
			triangles = append(triangles, geometry.NewTriangle(
				toReal(x, getY(x, z, meshComplex, size), z, size, lx, lz),
				toReal(x, getY(x, z-1, meshComplex, size), z-1, size, lx, lz),
				toReal(x-1, getY(x-1, z, meshComplex, size), z, size, lx, lz),
			))
			triangles = append(triangles, geometry.NewTriangle(
				toReal(x-1, getY(x-1, z, meshComplex, size), z, size, lx, lz),
				toReal(x, getY(x, z-1, meshComplex, size), z-1, size, lx, lz),
				toReal(x-1, getY(x-1, z-1, meshComplex, size), z-1, size, lx, lz),
			))
		}
	}

	bounds := bbox.Empty()
	for _, t := range triangles {
		bounds = bounds.Union(t.Bounds())
	}

	return &Ocean{
		tree:   octree.New(oceanOctreeDepth, bounds, triangles),
		bounds: bounds,
		count:  uint64(len(triangles)),
	}
}

func cmplxExp(z fft.Complex) fft.Complex {
	r := math.Exp(real(z))
	return complex(r*math.Cos(imag(z)), r*math.Sin(imag(z)))
}

func cmplxConj(z fft.Complex) fft.Complex {
	return complex(real(z), -imag(z))
}

func (o *Ocean) Intersects(r ray.Ray) (hit.RawIntersection, bool) {
	h, ok := o.tree.Intersection(r, math.MaxFloat64, 0)
	if !ok {
		return hit.RawIntersection{}, false
	}
	return h.RawIntersection, true
}

func (o *Ocean) Bounds() bbox.Box       { return o.bounds }
func (o *Ocean) PrimitiveCount() uint64 { return o.count }

// Material is a simplified dielectric with no refraction, grounded on
// original_source/src/ocean.rs::OceanMaterial.
type Material struct {
	RNG *rand.Rand
}

// NewMaterial constructs an ocean Material.
func NewMaterial(rng *rand.Rand) *Material { return &Material{RNG: rng} }

func (m *Material) Scatter(r ray.Ray, i hit.RawIntersection, ctx material.Context) material.ScatteredRay {
	const refractiveIndex = 1.31
	niOverNt := 1 / refractiveIndex
	drn := vecmath.Dot(r.Dir, i.Normal)
	cosine := -drn / vecmath.Length(r.Dir)

	if _, ok := vecmath.Refract(r.Dir, i.Normal, niOverNt); ok {
		reflectProb := vecmath.Schlick(cosine, refractiveIndex)
		if m.RNG.Float64() >= reflectProb {
			return material.ScatteredRay{Ray: nil, Attenuate: color.New(0, 0.2, 0.3)}
		}
	}

	out := ray.New(i.Point, vecmath.Reflect(r.Dir, i.Normal))
	return material.ScatteredRay{Ray: &out, Attenuate: color.White()}
}

// NewSceneMedium wraps Material as a Solid medium, matching
// original_source/src/ocean.rs::create_ocean.
func NewSceneMedium(rng *rand.Rand) material.Medium {
	return material.NewSolid(NewMaterial(rng))
}
