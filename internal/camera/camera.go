// Package camera implements the ray-generation front end: pinhole and
// thin-lens (depth-of-field) cameras sharing a get_ray/get_coord_for_point
// contract, grounded on original_source/src/camera.rs in full.
package camera

import (
	"math"
	"math/rand"

	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

// Camera maps a pixel-space sample to a world-space ray, and can
// approximately invert that mapping for wireframe overlays.
type Camera interface {
	GetRay(x, y, sx, sy float64) ray.Ray
	GetCoordForPoint(point vecmath.Vector3) (x, y float64)
}

// SimpleCamera is a pinhole camera, grounded on
// original_source/src/camera.rs::SimpleCamera.
type SimpleCamera struct {
	Location         vecmath.Vector3
	camx, camy, camz vecmath.Vector3
	tax, tay         float64
}

// NewSimpleCamera builds a pinhole camera looking from location to lookat.
func NewSimpleCamera(lookat, location, up vecmath.Vector3, angle float64, height, width int) *SimpleCamera {
	camz := vecmath.Normalize(vecmath.Sub(lookat, location))
	camx := vecmath.Normalize(vecmath.Cross(up, camz))
	camy := vecmath.Normalize(vecmath.Cross(camx, vecmath.Scale(camz, -1)))

	aspectRatio := float64(height) / float64(width)
	tangent := math.Tan(angle)

	return &SimpleCamera{
		Location: location,
		camz:     camz,
		camx:     vecmath.Scale(camx, aspectRatio),
		camy:     camy,
		tax:      tangent,
		tay:      tangent,
	}
}

func (c *SimpleCamera) GetRay(x, y, sx, sy float64) ray.Ray {
	xdir := vecmath.Scale(c.camx, (x+sx-0.5)*c.tax)
	ydir := vecmath.Scale(c.camy, (y+sy-0.5)*c.tay)
	dest := vecmath.Add(vecmath.Add(c.camz, xdir), ydir)
	return ray.New(c.Location, dest)
}

func (c *SimpleCamera) GetCoordForPoint(point vecmath.Vector3) (float64, float64) {
	x0 := vecmath.Scale(c.camx, -0.5*c.tax)
	x1 := vecmath.Scale(c.camx, 0.5*c.tax)
	y0 := vecmath.Scale(c.camy, -0.5*c.tay)
	y1 := vecmath.Scale(c.camy, 0.5*c.tay)

	tl := vecmath.Add(vecmath.Add(c.camz, x0), y0)
	tr := vecmath.Add(vecmath.Add(c.camz, x1), y0)
	br := vecmath.Add(vecmath.Add(c.camz, x1), y1)

	rd := vecmath.Normalize(vecmath.Sub(point, c.Location))
	rd = vecmath.Scale(rd, 1/vecmath.Dot(rd, c.camz))
	x := (rd[0] - tl[0]) / (tr[0] - tl[0])
	y := (rd[1] - tr[1]) / (br[1] - tr[1])
	return x, y
}

// FlatLensCamera adds a thin-lens depth-of-field model on top of the
// pinhole construction, grounded on
// original_source/src/camera.rs::FlatLensCamera.
type FlatLensCamera struct {
	Location         vecmath.Vector3
	camx, camy, camz vecmath.Vector3
	tax, tay         float64
	Aperture         float64
	Focus            float64
	RNG              *rand.Rand
}

// NewFlatLensCamera builds a thin-lens camera; Focus is derived as the
// distance from location to lookat (matching the original's `(lookat -
// location).norm()`).
func NewFlatLensCamera(lookat, location, up vecmath.Vector3, angle float64, height, width int, aperture float64, rng *rand.Rand) *FlatLensCamera {
	camz := vecmath.Normalize(vecmath.Sub(lookat, location))
	camx := vecmath.Normalize(vecmath.Cross(up, camz))
	camy := vecmath.Normalize(vecmath.Cross(camx, vecmath.Scale(camz, -1)))

	aspectRatio := float64(height) / float64(width)
	tangent := math.Tan(angle)
	focus := vecmath.Length(vecmath.Sub(lookat, location))

	return &FlatLensCamera{
		Location: location,
		camz:     camz,
		camx:     vecmath.Scale(camx, aspectRatio),
		camy:     camy,
		tax:      tangent,
		tay:      tangent,
		Aperture: aperture,
		Focus:    focus,
		RNG:      rng,
	}
}

func (c *FlatLensCamera) GetRay(x, y, sx, sy float64) ray.Ray {
	xdir := vecmath.Scale(c.camx, (x+sx-0.5)*c.tax)
	ydir := vecmath.Scale(c.camy, (y+sy-0.5)*c.tay)
	pinholeDest := vecmath.Add(vecmath.Add(c.camz, xdir), ydir)

	focalPoint := vecmath.Add(c.Location, vecmath.Scale(pinholeDest, c.Focus))
	pointLens := vecmath.RandomPointOnDisc(c.RNG, c.Aperture)
	ro := vecmath.Add(c.Location, vecmath.New(pointLens[0], pointLens[1], 0))

	return ray.New(ro, vecmath.Normalize(vecmath.Sub(focalPoint, ro)))
}

// GetCoordForPoint uses the same simple linear-interpolation inverse as
// SimpleCamera (the original offers several competing, partially
// commented-out derivations for the lens camera; this is the one that
// matches SimpleCamera's own inverse and is consistent for a thin lens
// centered on the pinhole axis).
func (c *FlatLensCamera) GetCoordForPoint(point vecmath.Vector3) (float64, float64) {
	x0 := vecmath.Scale(c.camx, -0.5*c.tax)
	x1 := vecmath.Scale(c.camx, 0.5*c.tax)
	y0 := vecmath.Scale(c.camy, -0.5*c.tay)
	y1 := vecmath.Scale(c.camy, 0.5*c.tay)

	tl := vecmath.Add(vecmath.Add(c.camz, x0), y0)
	tr := vecmath.Add(vecmath.Add(c.camz, x1), y0)
	br := vecmath.Add(vecmath.Add(c.camz, x1), y1)

	rd := vecmath.Normalize(vecmath.Sub(point, c.Location))
	rd = vecmath.Scale(rd, 1/vecmath.Dot(rd, c.camz))
	x := (rd[0] - tl[0]) / (tr[0] - tl[0])
	y := (rd[1] - tr[1]) / (br[1] - tr[1])
	return x, y
}
