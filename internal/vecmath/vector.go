// Package vecmath provides the double-precision vector arithmetic shared by
// every geometric and material computation in the renderer.
package vecmath

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// Vector3 is a point or direction in world space. It wraps go3d's float64
// vec3.T so the renderer gets its vector algebra from the same module the
// teacher raytracer used, generalized to double precision.
type Vector3 = vec3.T

// New builds a Vector3 from components.
func New(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}

// Zero is the additive identity.
var Zero = Vector3{0, 0, 0}

// Add returns a+b.
func Add(a, b Vector3) Vector3 {
	r := a
	r.Add(&b)
	return r
}

// Sub returns a-b.
func Sub(a, b Vector3) Vector3 {
	r := a
	r.Sub(&b)
	return r
}

// Scale returns a*s.
func Scale(a Vector3, s float64) Vector3 {
	r := a
	r.Scale(s)
	return r
}

// Dot returns a.b.
func Dot(a, b Vector3) float64 {
	return vec3.Dot(&a, &b)
}

// Cross returns a x b.
func Cross(a, b Vector3) Vector3 {
	var out vec3.T
	out.Cross(&a, &b)
	return out
}

// ComponentMul returns the element-wise product of a and b.
func ComponentMul(a, b Vector3) Vector3 {
	return Vector3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Length returns the Euclidean norm of v.
func Length(v Vector3) float64 {
	return v.Length()
}

// Normalize returns a unit vector parallel to v. The zero vector is
// returned unchanged rather than producing NaNs.
func Normalize(v Vector3) Vector3 {
	l := Length(v)
	if l == 0 {
		return v
	}
	return Scale(v, 1/l)
}

// Min returns the component-wise minimum of a and b.
func Min(a, b Vector3) Vector3 {
	return Vector3{math.Min(a[0], b[0]), math.Min(a[1], b[1]), math.Min(a[2], b[2])}
}

// Max returns the component-wise maximum of a and b.
func Max(a, b Vector3) Vector3 {
	return Vector3{math.Max(a[0], b[0]), math.Max(a[1], b[1]), math.Max(a[2], b[2])}
}

// Reflect mirrors d across a surface with the given unit normal n:
// d - 2(d.n)n.
func Reflect(d, n Vector3) Vector3 {
	return Sub(d, Scale(n, 2*Dot(d, n)))
}

// Refract implements Snell's law; it returns false (zero vector) on total
// internal reflection. v need not be a unit vector; it is normalized
// internally, matching original_source/src/material/functions.rs.
func Refract(v, n Vector3, niOverNt float64) (Vector3, bool) {
	uv := Normalize(v)
	dt := Dot(uv, n)
	discriminant := 1.0 - niOverNt*niOverNt*(1.0-dt*dt)
	if discriminant <= 0 {
		return Zero, false
	}
	t1 := Scale(Sub(uv, Scale(n, dt)), niOverNt)
	t2 := Scale(n, math.Sqrt(discriminant))
	return Sub(t1, t2), true
}

// Schlick approximates the Fresnel reflectance for the given cosine of the
// incidence angle and refractive index ratio.
func Schlick(cosine, refIdx float64) float64 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
