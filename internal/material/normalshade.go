package material

import (
	"github.com/peterbraden/rays/internal/color"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

// NormalShade is a debug material that visualizes the surface normal,
// grounded on original_source/src/material/normal_shade.rs: the
// contribution is the normal's length scaled by the cube of its alignment
// with the up vector.
type NormalShade struct{}

// NewNormalShade constructs a NormalShade model.
func NewNormalShade() *NormalShade { return &NormalShade{} }

func (n *NormalShade) Scatter(r ray.Ray, i hit.RawIntersection, ctx Context) ScatteredRay {
	up := vecmath.New(0, 1, 0)
	cos := vecmath.Dot(i.Normal, up)
	v := vecmath.Length(i.Normal) * cos * cos * cos
	return ScatteredRay{Ray: nil, Attenuate: color.New(v, v, v)}
}
