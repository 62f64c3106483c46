package material

import (
	"math"

	"github.com/peterbraden/rays/internal/color"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

// diffuse is the direct-lighting Lambertian term used by Plastic and
// Whitted: albedo modulated by the light's color/intensity, the cosine of
// incidence, and inverse-square falloff over the light vector's length.
// Grounded on the call shape of original_source/src/material/{plastic,legacy}.rs
// (`diffuse(albedo, intersection, &light_vec, &light)`); the original's
// function body was not present in the retrieved pack, so the standard
// inverse-square Lambertian term is used here.
func diffuse(albedo color.Color, i hit.RawIntersection, lightVec vecmath.Vector3, l Light) color.Color {
	dist := vecmath.Length(lightVec)
	if dist == 0 {
		return color.Black()
	}
	lightDir := vecmath.Scale(lightVec, 1/dist)
	cos := vecmath.Dot(i.Normal, lightDir)
	if cos <= 0 {
		return color.Black()
	}
	falloff := l.Intensity / (dist * dist)
	return albedo.Mul(l.Color).Scale(cos * falloff)
}

// phong is the specular highlight term used by Whitted, grounded on the
// same call shape (`phong(self.phong, &r, &intersection, &light_vec)`).
func phong(exponent float64, r ray.Ray, i hit.RawIntersection, lightVec vecmath.Vector3) color.Color {
	if exponent <= 0 {
		return color.Black()
	}
	dist := vecmath.Length(lightVec)
	if dist == 0 {
		return color.Black()
	}
	lightDir := vecmath.Scale(lightVec, 1/dist)
	reflectDir := vecmath.Reflect(vecmath.Scale(lightDir, -1), i.Normal)
	viewDir := vecmath.Normalize(vecmath.Scale(r.Dir, -1))
	spec := vecmath.Dot(reflectDir, viewDir)
	if spec <= 0 {
		return color.Black()
	}
	return color.White().Scale(math.Pow(spec, exponent))
}
