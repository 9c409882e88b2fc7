package view

import (
	"github.com/go-gl/mathgl/mgl64"

	"sphereflake/internal/assert"
	"sphereflake/internal/geom"
	"sphereflake/internal/model"
	"sphereflake/internal/viewport"
)

// OccluderOffset places the occlusion plane behind a parent node, in units of
// the parent's bounding radius, measured from the parent center away from the eye.
const OccluderOffset = 0.6

// Classification is the outcome of testing one node against the viewport.
type Classification struct {
	LOD LOD
	// Visible means the node's own sphere touches the frustum.
	Visible bool
	// TreeVisible means the sphere enclosing the node and its subtree touches the frustum.
	TreeVisible bool
}

// Center returns the model-space center of e.
func Center(e model.Element) mgl64.Vec3 {
	return geom.TransformPoint(e.LocalCS(), geom.Origin)
}

// Classify computes the LOD and visibility flags of e.
func Classify(vp *viewport.Viewport, e model.Element) Classification {
	return classify(vp, thresholdsFor(vp.FOV()), e)
}

func classify(vp *viewport.Viewport, t thresholds, e model.Element) Classification {
	center := Center(e)
	r := e.BoundingRadius()

	c := Classification{LOD: t.lod(vp.SegmentVisibleCosine(center, r))}
	if c.LOD == Invisible {
		return c
	}

	dist := vp.PointMinimalFrustumDistance(center)
	c.Visible = dist >= -r
	c.TreeVisible = dist >= -e.DescendantRadius()

	assert.True(c.Visible == vp.SphereInFrustum(center, r), "visible disagrees with SphereInFrustum")
	assert.True(c.TreeVisible == vp.SphereInFrustum(center, e.DescendantRadius()), "tree visible disagrees with SphereInFrustum")
	return c
}

// OccluderPlane returns the plane standing behind parent as seen from eye.
// Its normal points away from the eye.
func OccluderPlane(eye mgl64.Vec3, parent model.Element) geom.Plane {
	dir, dist := geom.Normalize(Center(parent).Sub(eye))
	origin := eye.Add(dir.Mul(dist + OccluderOffset*parent.BoundingRadius()))
	return geom.NewPlane(dir, origin)
}

// OccludesCompletely reports whether child and all its descendants lie behind
// the occluder plane of parent. The plane is a conservative stand-in for the
// shadow cone of the parent sphere.
func OccludesCompletely(eye mgl64.Vec3, parent, child model.Element) bool {
	return occludes(OccluderPlane(eye, parent), child)
}

func occludes(plane geom.Plane, child model.Element) bool {
	return plane.Distance(Center(child)) >= child.DescendantRadius()
}
