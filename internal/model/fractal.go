package model

import (
	"github.com/go-gl/mathgl/mgl64"

	"sphereflake/internal/config"
	"sphereflake/internal/geom"
	"sphereflake/internal/profiling"
)

const (
	// RootRadius is the radius of the root sphere, centered at the model origin.
	RootRadius = 3.0

	// Branching is the number of children every sphere spawns.
	Branching = 9

	equatorChildren  = 6
	inclinedChildren = 3
)

// Fractal is the lazily generated sphere flake. Children of the nodes reached
// first are cached on their parent until the cache budget is spent; after
// that, children are registered as transient and reclaimed by Collect.
type Fractal struct {
	budget   int
	produced int
	root     *Sphere

	// transient owns every node generated after the budget ran out
	transient List
}

// Option configures a Fractal.
type Option func(*Fractal)

// WithCacheBudget overrides the configured cache budget.
func WithCacheBudget(n int) Option {
	return func(f *Fractal) {
		f.budget = n
	}
}

// NewFractal creates an empty fractal model using config.GetCacheBudget.
func NewFractal(opts ...Option) *Fractal {
	f := &Fractal{budget: config.GetCacheBudget()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Root returns the root sphere, creating it on first use.
func (f *Fractal) Root() Element {
	if f.root == nil {
		f.root = NewSphere(0, mgl64.Ident4(), RootRadius)
	}
	return f.root
}

// Descendants returns the nine children of e. Cached children are handed out
// as a fresh list sharing the cached nodes.
func (f *Fractal) Descendants(e Element) *List {
	defer profiling.Track("model.Descendants")()
	parent := e.(*Sphere)

	if cached := parent.descendants(); cached != nil {
		return (&List{}).CopyFrom(cached)
	}

	register := &f.transient
	if f.produced < f.budget {
		f.produced += Branching
		register = parent.makeDescendants()
	}

	children := &List{}
	for _, cs := range childPlacements(parent.LocalCS(), parent.radius) {
		child := NewSphere(parent.depth+1, cs, parent.radius/3)
		register.Add(child)
		children.Add(child)
	}
	return children
}

// Collect reclaims every transient node. Cached nodes are untouched.
func (f *Fractal) Collect() {
	for f.transient.HasData() {
		f.transient.PullHead().(*Sphere).release()
	}
}

// Close collects transient nodes and then releases the root with its cached subtree.
func (f *Fractal) Close() {
	f.Collect()
	if f.root != nil {
		f.root.release()
		f.root = nil
	}
}

// Produced returns how many nodes have been allocated into caches so far.
func (f *Fractal) Produced() int {
	return f.produced
}

// Budget returns the cache budget of the model.
func (f *Fractal) Budget() int {
	return f.budget
}

// Transient returns how many nodes are waiting for the next Collect.
func (f *Fractal) Transient() int {
	return f.transient.Len()
}

// childPlacements returns the local coordinate systems of the nine children of
// a sphere of radius r placed at parent: six on the equator every 60 degrees
// and three inclined by 60 degrees every 120 degrees, offset by 30 degrees.
func childPlacements(parent mgl64.Mat4, r float64) [Branching]mgl64.Mat4 {
	var out [Branching]mgl64.Mat4

	outer := geom.TranslationBy(mgl64.Vec3{r + r/3, 0, 0})
	newBasis := geom.Rotation(geom.Y, 90, geom.Degrees)

	equator := outer.Mul4(newBasis)
	step := geom.Rotation(geom.Z, 60, geom.Degrees)
	basis := parent
	for i := 0; i < equatorChildren; i++ {
		out[i] = basis.Mul4(equator)
		basis = basis.Mul4(step)
	}

	lat := geom.Rotation(geom.Y, -60, geom.Degrees)
	lon := geom.Rotation(geom.Z, 30, geom.Degrees)
	inclined := lon.Mul4(lat).Mul4(outer).Mul4(newBasis)
	step = geom.Rotation(geom.Z, 120, geom.Degrees)
	basis = parent
	for i := 0; i < inclinedChildren; i++ {
		out[equatorChildren+i] = basis.Mul4(inclined)
		basis = basis.Mul4(step)
	}
	return out
}
