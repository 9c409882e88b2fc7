// Package viewport owns the virtual camera and the six clip planes derived
// from it, and answers the visibility queries of the traversal.
package viewport

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"sphereflake/internal/geom"
)

// ClipPlane indexes the six frustum planes.
type ClipPlane int

const (
	Left ClipPlane = iota
	Right
	Top
	Bottom
	Far
	Near

	ClipPlanes = 6
)

const (
	// NearPlane and FarPlane are the perspective depth range.
	NearPlane = 0.1
	FarPlane  = 30.0

	// MinFOV and MaxFOV bound the vertical field of view in radians.
	MinFOV = math.Pi / 20
	MaxFOV = math.Pi / 2
)

// Viewport is the virtual camera: pose, field of view and the rendering
// surface extents. Every mutating method re-derives the clip planes before
// returning.
type Viewport struct {
	eye  mgl64.Vec3
	view mgl64.Vec3
	up   mgl64.Vec3
	fov  float64

	width  int
	height int

	projection mgl64.Mat4
	modelView  mgl64.Mat4

	planes [ClipPlanes]geom.Plane
}

// New creates a viewport looking from eye along view. The field of view is given in unit.
func New(eye, view, up mgl64.Vec3, fov float64, unit geom.AngleUnit, width, height int) *Viewport {
	vp := &Viewport{width: width, height: height}
	vp.Reset(eye, view, up, fov, unit)
	return vp
}

// Reset reinitializes the camera pose and field of view. A degenerate up
// vector is the caller's responsibility.
func (vp *Viewport) Reset(eye, view, up mgl64.Vec3, fov float64, unit geom.AngleUnit) {
	vp.eye = eye
	vp.view = view.Normalize()
	vp.up = up
	vp.fov = geom.ScalarToRadians(fov, unit)
	vp.setup()
}

// SetExtents updates the rendering surface size in pixels.
func (vp *Viewport) SetExtents(width, height int) {
	vp.width = width
	vp.height = height
	vp.setup()
}

// Extents returns the rendering surface size in pixels.
func (vp *Viewport) Extents() (int, int) {
	return vp.width, vp.height
}

// Eye returns the camera origin.
func (vp *Viewport) Eye() mgl64.Vec3 { return vp.eye }

// ViewDir returns the normalized view direction.
func (vp *Viewport) ViewDir() mgl64.Vec3 { return vp.view }

// Up returns the camera up vector.
func (vp *Viewport) Up() mgl64.Vec3 { return vp.up }

// FOV returns the vertical field of view in radians.
func (vp *Viewport) FOV() float64 { return vp.fov }

// Projection returns the perspective matrix of the current state.
func (vp *Viewport) Projection() mgl64.Mat4 { return vp.projection }

// View returns the look-at matrix of the current pose.
func (vp *Viewport) View() mgl64.Mat4 { return vp.modelView }

// Plane returns one of the clip planes. Positive distance is inside.
func (vp *Viewport) Plane(p ClipPlane) geom.Plane { return vp.planes[p] }

func (vp *Viewport) transformBasis(m mgl64.Mat4) {
	vp.eye = geom.TransformPoint(m, vp.eye)
	vp.view = geom.TransformVector(m, vp.view).Normalize()
	vp.up = geom.TransformVector(m, vp.up).Normalize()
}

func (vp *Viewport) right() mgl64.Vec3 {
	return vp.view.Cross(vp.up)
}

// OrbitHorizontal rotates the camera about the world origin around the up vector.
func (vp *Viewport) OrbitHorizontal(angle float64, unit geom.AngleUnit) {
	vp.transformBasis(geom.RotationAbout(vp.up, angle, unit))
	vp.setup()
}

// OrbitVertical rotates the camera about the world origin around the right vector.
func (vp *Viewport) OrbitVertical(angle float64, unit geom.AngleUnit) {
	vp.transformBasis(geom.RotationAbout(vp.right(), angle, unit))
	vp.setup()
}

// Pitch turns the camera about its own right vector through the eye point.
func (vp *Viewport) Pitch(angle float64, unit geom.AngleUnit) {
	vp.transformBasis(vp.aboutEye(geom.RotationAbout(vp.right(), angle, unit)))
	vp.setup()
}

// Yaw turns the camera about its own up vector through the eye point.
func (vp *Viewport) Yaw(angle float64, unit geom.AngleUnit) {
	vp.transformBasis(vp.aboutEye(geom.RotationAbout(vp.up, angle, unit)))
	vp.setup()
}

func (vp *Viewport) aboutEye(rot mgl64.Mat4) mgl64.Mat4 {
	toOrigin := geom.TranslationBy(geom.Origin.Sub(vp.eye))
	back := geom.TranslationBy(vp.eye.Sub(geom.Origin))
	return back.Mul4(rot).Mul4(toOrigin)
}

// MoveInViewDir moves the eye along the view direction.
func (vp *Viewport) MoveInViewDir(distance float64) {
	vp.eye = vp.eye.Add(vp.view.Mul(distance))
	vp.setup()
}

// AddFOV widens the field of view by delta, clamped to [MinFOV, MaxFOV].
func (vp *Viewport) AddFOV(delta float64, unit geom.AngleUnit) {
	vp.fov += geom.ScalarToRadians(delta, unit)
	if vp.fov > MaxFOV {
		vp.fov = MaxFOV
	}
	if vp.fov < MinFOV {
		vp.fov = MinFOV
	}
	vp.setup()
}

// setup rebuilds projection and view and extracts the clip planes from their
// product: rows 0, 1 and 2 added to and subtracted from row 3.
func (vp *Viewport) setup() {
	aspect := float64(vp.width) / float64(vp.height)
	vp.projection = mgl64.Perspective(vp.fov, aspect, NearPlane, FarPlane)
	vp.modelView = mgl64.LookAtV(vp.eye, vp.eye.Add(vp.view), vp.up)

	clip := vp.projection.Mul4(vp.modelView)
	w := clip.Row(3)
	vp.planes[Left] = geom.PlaneFromCoefficients(geom.SumMul(clip.Row(0), 1, w, 1))
	vp.planes[Right] = geom.PlaneFromCoefficients(geom.SumMul(clip.Row(0), -1, w, 1))
	vp.planes[Bottom] = geom.PlaneFromCoefficients(geom.SumMul(clip.Row(1), 1, w, 1))
	vp.planes[Top] = geom.PlaneFromCoefficients(geom.SumMul(clip.Row(1), -1, w, 1))
	vp.planes[Near] = geom.PlaneFromCoefficients(geom.SumMul(clip.Row(2), 1, w, 1))
	vp.planes[Far] = geom.PlaneFromCoefficients(geom.SumMul(clip.Row(2), -1, w, 1))
}
