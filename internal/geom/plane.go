package geom

import "github.com/go-gl/mathgl/mgl64"

// Plane is an oriented plane given by a unit normal and a point on it.
// Points on the side the normal points to have positive distance.
type Plane struct {
	Normal mgl64.Vec3
	Origin mgl64.Vec3
}

// NewPlane builds a plane through p with the given unit normal.
func NewPlane(normal, p mgl64.Vec3) Plane {
	return Plane{Normal: normal, Origin: p}
}

// PlaneFromCoefficients builds the plane a*x + b*y + c*z + d = 0.
// The normal is normalized and the origin is the projection of the model origin.
func PlaneFromCoefficients(c mgl64.Vec4) Plane {
	n, l := Normalize(c.Vec3())
	return Plane{Normal: n, Origin: n.Mul(-c[3] / l)}
}

// PlaneThrough builds the plane containing a, b and c.
func PlaneThrough(a, b, c mgl64.Vec3) Plane {
	n, _ := Normalize(a.Sub(b).Cross(c.Sub(b)))
	return Plane{Normal: n, Origin: b}
}

// Distance returns the signed distance from p to the plane.
func (pl Plane) Distance(p mgl64.Vec3) float64 {
	return pl.Normal.Dot(p.Sub(pl.Origin))
}

// Project returns the orthogonal projection of p onto the plane.
func (pl Plane) Project(p mgl64.Vec3) mgl64.Vec3 {
	return p.Sub(pl.Normal.Mul(pl.Distance(p)))
}
