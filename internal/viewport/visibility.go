package viewport

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"sphereflake/internal/geom"
)

// PointInFrustum reports whether p is on the inner side of all six planes.
func (vp *Viewport) PointInFrustum(p mgl64.Vec3) bool {
	for i := range vp.planes {
		if vp.planes[i].Distance(p) < 0 {
			return false
		}
	}
	return true
}

// SphereInFrustum tests the sphere (p, r) against every plane offset by r.
// This accepts a rounded frustum, slightly larger than the exact one near
// the frustum edges.
func (vp *Viewport) SphereInFrustum(p mgl64.Vec3, r float64) bool {
	for i := range vp.planes {
		if vp.planes[i].Distance(p) < -r {
			return false
		}
	}
	return true
}

// PointMinimalFrustumDistance returns the smallest signed distance from p to
// the six planes. A negative value is the depth by which p lies outside.
func (vp *Viewport) PointMinimalFrustumDistance(p mgl64.Vec3) float64 {
	dist := math.Inf(1)
	for i := range vp.planes {
		if d := vp.planes[i].Distance(p); d < dist {
			dist = d
		}
	}
	return dist
}

// SegmentVisibleCosine returns the cosine of the angle the eye sees a segment
// of length l under, the segment starting at origin and erected perpendicular
// to the ray from the eye.
func (vp *Viewport) SegmentVisibleCosine(origin mgl64.Vec3, l float64) float64 {
	toOrigin, _ := geom.Normalize(origin.Sub(vp.eye))

	var radius mgl64.Vec3
	if d := vp.view.Sub(toOrigin); d.Dot(d) < geom.Eps {
		// colinear with the view axis, the cross product degenerates
		radius = vp.up
	} else {
		localUp := vp.view.Cross(toOrigin)
		radius = toOrigin.Cross(localUp)
	}
	radius, _ = geom.Normalize(radius)

	tip := origin.Add(radius.Mul(l))
	toTip, _ := geom.Normalize(tip.Sub(vp.eye))
	return toOrigin.Dot(toTip)
}

// SegmentVisibleAngle returns the angle, in radians, corresponding to SegmentVisibleCosine.
func (vp *Viewport) SegmentVisibleAngle(origin mgl64.Vec3, l float64) float64 {
	return math.Abs(math.Acos(math.Min(1, vp.SegmentVisibleCosine(origin, l))))
}
