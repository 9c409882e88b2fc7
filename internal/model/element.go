package model

import "github.com/go-gl/mathgl/mgl64"

// Element is one placed node of a hierarchical model.
type Element interface {
	// LocalCS places the element's local frame in model space.
	LocalCS() mgl64.Mat4
	// Depth is the level of the element in the model tree, the root is 0.
	Depth() int
	// BoundingRadius is the radius of the element's own bounding sphere.
	BoundingRadius() float64
	// DescendantRadius bounds the element together with all of its descendants.
	DescendantRadius() float64
}

// Model exports a tree of elements starting at a root element. Models that
// generate elements lazily hand out temporary results which Collect releases.
type Model interface {
	Root() Element
	Descendants(e Element) *List
	Collect()
}

type element struct {
	localCS mgl64.Mat4
	depth   int
}

func (e *element) LocalCS() mgl64.Mat4 { return e.localCS }

func (e *element) Depth() int { return e.depth }
