package material

import (
	"math"

	"github.com/peterbraden/rays/internal/noise"
	"github.com/peterbraden/rays/internal/vecmath"
)

// Solid is a medium with a single model everywhere, grounded on
// original_source/src/material/texture.rs::Solid.
type Solid struct {
	M Model
}

// NewSolid constructs a Solid medium.
func NewSolid(m Model) *Solid { return &Solid{M: m} }

func (s *Solid) At(point vecmath.Vector3) Model { return s.M }

// CheckeredYPlane alternates between two models in a zig-zag grid on the
// XZ plane, grounded on original_source/src/material/texture.rs::CheckeredYPlane.
type CheckeredYPlane struct {
	M1, M2       Model
	XSize, ZSize float64
}

// NewCheckeredYPlane constructs a CheckeredYPlane medium.
func NewCheckeredYPlane(m1, m2 Model, xsize, zsize float64) *CheckeredYPlane {
	return &CheckeredYPlane{M1: m1, M2: m2, XSize: xsize, ZSize: zsize}
}

func (c *CheckeredYPlane) At(point vecmath.Vector3) Model {
	zig := int(math.Abs(point[0])/c.XSize)%2 == 0
	if zig {
		zig = point[0] > 0
	} else {
		zig = point[0] <= 0
	}
	zag := int(math.Abs(point[2])/c.ZSize)%2 == 0
	if zag {
		zag = point[2] > 0
	} else {
		zag = point[2] <= 0
	}
	// zig XOR zag
	if zig != zag {
		return c.M1
	}
	return c.M2
}

// NoiseMedium picks between two models by thresholding a Perlin FBM value
// at the point, resolving spec.md §9's NoiseMedium Open Question (referenced
// by the scene parser but never implemented upstream).
type NoiseMedium struct {
	M1, M2    Model
	Noise     *noise.Perlin
	Scale     float64
	Threshold float64
}

// NewNoiseMedium constructs a NoiseMedium.
func NewNoiseMedium(m1, m2 Model, n *noise.Perlin, scale, threshold float64) *NoiseMedium {
	return &NoiseMedium{M1: m1, M2: m2, Noise: n, Scale: scale, Threshold: threshold}
}

func (n *NoiseMedium) At(point vecmath.Vector3) Model {
	p := vecmath.Scale(point, n.Scale)
	v := n.Noise.FBM(p[0], p[1], p[2], 4, 0.5, 2.0)
	if v > n.Threshold {
		return n.M1
	}
	return n.M2
}
