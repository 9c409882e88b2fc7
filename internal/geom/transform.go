package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"sphereflake/internal/assert"
)

// Eps is the zero limit used by near-equality checks.
const Eps = 1e-7

// Axis names a principal axis of a local coordinate system.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

// Origin is the model space origin.
var Origin = mgl64.Vec3{0, 0, 0}

// TransformPoint applies m to a point (W = 1), so translation is honoured.
func TransformPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// TransformVector applies m to a direction (W = 0), so translation is ignored.
func TransformVector(m mgl64.Mat4, v mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(v.Vec4(0)).Vec3()
}

// Rotation returns a rotation about one of the principal axes.
func Rotation(axis Axis, angle float64, unit AngleUnit) mgl64.Mat4 {
	rads := ScalarToRadians(angle, unit)
	switch axis {
	case X:
		return mgl64.HomogRotate3DX(rads)
	case Y:
		return mgl64.HomogRotate3DY(rads)
	default:
		return mgl64.HomogRotate3DZ(rads)
	}
}

// RotationAbout returns a rotation about an arbitrary axis through the origin.
// The axis is used as given; callers pass a unit vector.
func RotationAbout(axis mgl64.Vec3, angle float64, unit AngleUnit) mgl64.Mat4 {
	return mgl64.HomogRotate3D(ScalarToRadians(angle, unit), axis)
}

// TranslationBy returns a translation by v.
func TranslationBy(v mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(v[0], v[1], v[2])
}

// UniformScale returns a scale by s along every axis.
func UniformScale(s float64) mgl64.Mat4 {
	return mgl64.Scale3D(s, s, s)
}

// SumMul returns a*ka + b*kb element-wise.
func SumMul(a mgl64.Vec4, ka float64, b mgl64.Vec4, kb float64) mgl64.Vec4 {
	return a.Mul(ka).Add(b.Mul(kb))
}

// Normalize returns the unit vector along v together with the length of v.
// A vector shorter than Eps has no direction.
func Normalize(v mgl64.Vec3) (mgl64.Vec3, float64) {
	n := math.Sqrt(v.Dot(v))
	assert.True(n > Eps, "normalizing a zero length vector")
	return v.Mul(1 / n), n
}

// Near reports whether a and b are less than eps apart.
func Near(a, b mgl64.Vec3, eps float64) bool {
	return a.Sub(b).Len() < eps
}

// ApproxEqual reports whether a and b differ by less than eps in every element.
func ApproxEqual(a, b mgl64.Mat4, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
