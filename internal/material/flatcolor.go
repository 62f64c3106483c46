package material

import (
	"github.com/peterbraden/rays/internal/color"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/ray"
)

// FlatColor is a constant, unlit pigment that terminates the path,
// grounded on original_source/src/material/legacy.rs::FlatColor.
type FlatColor struct {
	Pigment color.Color
}

// NewFlatColor constructs a FlatColor model.
func NewFlatColor(pigment color.Color) *FlatColor { return &FlatColor{Pigment: pigment} }

func (f *FlatColor) Scatter(r ray.Ray, i hit.RawIntersection, ctx Context) ScatteredRay {
	return ScatteredRay{Ray: nil, Attenuate: f.Pigment}
}

// Ambient is FlatColor's natural counterpart for media (e.g. sky/fog
// backgrounds that contribute a constant radiance with no further
// scattering), grounded on the same call shape.
type Ambient struct {
	Pigment color.Color
}

// NewAmbient constructs an Ambient model.
func NewAmbient(pigment color.Color) *Ambient { return &Ambient{Pigment: pigment} }

func (a *Ambient) Scatter(r ray.Ray, i hit.RawIntersection, ctx Context) ScatteredRay {
	return ScatteredRay{Ray: nil, Attenuate: a.Pigment}
}
