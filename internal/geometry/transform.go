package geometry

import (
	"math"

	"github.com/ungerik/go3d/float64/mat4"

	"github.com/peterbraden/rays/internal/bbox"
	"github.com/peterbraden/rays/internal/hit"
	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

// Transform wraps an inner geometry with an affine transform, grounded on
// original_source/src/shapes/transform.rs. Intersection uses the
// inverse-transformed ray; bounds are the forward-transformed bounds.
type Transform struct {
	Item   Primitive
	Mat    mat4.T
	invMat mat4.T
}

func identity() mat4.T {
	return mat4.T{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// invertAffine computes the inverse of a 4x4 matrix by Gauss-Jordan
// elimination. Transform matrices built by this package are always
// affine (bottom row 0,0,0,1), but the general inverse is used so a
// caller-supplied matrix with, say, non-uniform scale still inverts
// correctly.
func invertAffine(m mat4.T) mat4.T {
	var a [4][8]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			a[i][j] = m[i][j]
		}
		a[i][4+i] = 1
	}
	for col := 0; col < 4; col++ {
		pivot := col
		for r := col + 1; r < 4; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		a[col], a[pivot] = a[pivot], a[col]
		pv := a[col][col]
		if pv == 0 {
			return identity()
		}
		for j := 0; j < 8; j++ {
			a[col][j] /= pv
		}
		for r := 0; r < 4; r++ {
			if r == col {
				continue
			}
			f := a[r][col]
			for j := 0; j < 8; j++ {
				a[r][j] -= f * a[col][j]
			}
		}
	}
	var out mat4.T
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = a[i][4+j]
		}
	}
	return out
}

// NewTransform builds a Transform from a forward affine matrix, caching
// its inverse for ray intersection.
func NewTransform(item Primitive, m mat4.T) *Transform {
	return &Transform{Item: item, Mat: m, invMat: invertAffine(m)}
}

// NewRotateTransform builds a Transform that rotates item by Euler angles
// (roll, pitch, yaw in radians) about the origin, matching
// original_source/src/shapes/transform.rs::rotate.
func NewRotateTransform(item Primitive, roll, pitch, yaw float64) *Transform {
	return NewTransform(item, eulerRotation(roll, pitch, yaw))
}

// NewTranslateTransform builds a Transform that translates item by offset.
func NewTranslateTransform(item Primitive, offset vecmath.Vector3) *Transform {
	m := identity()
	m[0][3] = offset[0]
	m[1][3] = offset[1]
	m[2][3] = offset[2]
	return NewTransform(item, m)
}

func eulerRotation(roll, pitch, yaw float64) mat4.T {
	sr, cr := math.Sin(roll), math.Cos(roll)
	sp, cp := math.Sin(pitch), math.Cos(pitch)
	sy, cy := math.Sin(yaw), math.Cos(yaw)

	m := identity()
	m[0] = [4]float64{cy * cp, cy*sp*sr - sy*cr, cy*sp*cr + sy*sr, 0}
	m[1] = [4]float64{sy * cp, sy*sp*sr + cy*cr, sy*sp*cr - cy*sr, 0}
	m[2] = [4]float64{-sp, cp * sr, cp * cr, 0}
	m[3] = [4]float64{0, 0, 0, 1}
	return m
}

func transformPoint(m *mat4.T, p vecmath.Vector3) vecmath.Vector3 {
	x := m[0][0]*p[0] + m[0][1]*p[1] + m[0][2]*p[2] + m[0][3]
	y := m[1][0]*p[0] + m[1][1]*p[1] + m[1][2]*p[2] + m[1][3]
	z := m[2][0]*p[0] + m[2][1]*p[1] + m[2][2]*p[2] + m[2][3]
	return vecmath.New(x, y, z)
}

func transformDir(m *mat4.T, d vecmath.Vector3) vecmath.Vector3 {
	x := m[0][0]*d[0] + m[0][1]*d[1] + m[0][2]*d[2]
	y := m[1][0]*d[0] + m[1][1]*d[1] + m[1][2]*d[2]
	z := m[2][0]*d[0] + m[2][1]*d[1] + m[2][2]*d[2]
	return vecmath.New(x, y, z)
}

// Intersects transforms the incoming ray by the cached inverse matrix
// before delegating to the wrapped item, then transforms the resulting
// point and normal back into world space.
func (t *Transform) Intersects(r ray.Ray) (hit.RawIntersection, bool) {
	localRay := ray.New(transformPoint(&t.invMat, r.Origin), transformDir(&t.invMat, r.Dir))
	rh, ok := t.Item.Intersects(localRay)
	if !ok {
		return hit.RawIntersection{}, false
	}
	rh.Point = transformPoint(&t.Mat, rh.Point)
	rh.Normal = vecmath.Normalize(transformDir(&t.Mat, rh.Normal))
	rh.Dist = vecmath.Length(vecmath.Sub(rh.Point, r.Origin))
	return rh, true
}

// Bounds is the item's bounds transformed into world space (conservatively
// widened over all 8 corners of the local box).
func (t *Transform) Bounds() bbox.Box {
	local := t.Item.Bounds()
	out := bbox.Empty()
	for i := 0; i < 8; i++ {
		x := local.Min[0]
		if i&1 != 0 {
			x = local.Max[0]
		}
		y := local.Min[1]
		if i&2 != 0 {
			y = local.Max[1]
		}
		z := local.Min[2]
		if i&4 != 0 {
			z = local.Max[2]
		}
		out = out.UnionPoint(transformPoint(&t.Mat, vecmath.New(x, y, z)))
	}
	return out
}

// PrimitiveCount delegates to the wrapped item.
func (t *Transform) PrimitiveCount() uint64 { return t.Item.PrimitiveCount() }
