package material

import (
	"github.com/peterbraden/rays/internal/color"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/ray"
)

// DiffuseLight is an emissive surface: it terminates the path and
// contributes Color*Intensity directly, grounded on
// original_source/src/material/diffuse_light.rs.
type DiffuseLight struct {
	Color     color.Color
	Intensity float64
}

// NewDiffuseLight constructs a DiffuseLight model.
func NewDiffuseLight(c color.Color, intensity float64) *DiffuseLight {
	return &DiffuseLight{Color: c, Intensity: intensity}
}

func (d *DiffuseLight) Scatter(r ray.Ray, i hit.RawIntersection, ctx Context) ScatteredRay {
	return ScatteredRay{Ray: nil, Attenuate: d.Color.Scale(d.Intensity)}
}
