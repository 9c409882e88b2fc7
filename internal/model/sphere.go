package model

import (
	"github.com/go-gl/mathgl/mgl64"

	"sphereflake/internal/assert"
)

// descendantFactor is sum(1/3^n) for n >= 0: every generation shrinks the
// radius by three, so the whole subtree fits in 3/2 of the parent radius.
const descendantFactor = 3.0 / 2.0

// Sphere is a sphere element of the fractal model.
type Sphere struct {
	element
	radius float64

	// cache owns the nine children once materialized
	cache *List

	released bool
}

// NewSphere creates a sphere of radius r at the given depth and placement.
func NewSphere(depth int, localCS mgl64.Mat4, r float64) *Sphere {
	return &Sphere{element: element{localCS: localCS, depth: depth}, radius: r}
}

// BoundingRadius is the sphere radius itself.
func (s *Sphere) BoundingRadius() float64 {
	return s.radius
}

// DescendantRadius is the closed form of the shrinking descendant series.
func (s *Sphere) DescendantRadius() float64 {
	return s.radius * descendantFactor
}

// Cached reports whether the sphere owns a materialized child cache.
func (s *Sphere) Cached() bool {
	return s.cache != nil
}

// Released reports whether the model has reclaimed this sphere. A released
// sphere must not be used again.
func (s *Sphere) Released() bool {
	return s.released
}

func (s *Sphere) descendants() *List {
	return s.cache
}

// makeDescendants materializes the child cache. It may run only once per sphere.
func (s *Sphere) makeDescendants() *List {
	assert.True(s.cache == nil, "child cache materialized twice")
	s.cache = &List{}
	return s.cache
}

// release poisons the sphere and every cached descendant.
func (s *Sphere) release() {
	s.released = true
	if s.cache == nil {
		return
	}
	for s.cache.HasData() {
		s.cache.PullHead().(*Sphere).release()
	}
	s.cache = nil
}
