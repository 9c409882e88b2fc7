// Package view walks the fractal each frame, prunes what cannot be seen and
// hands the remaining spheres to a rendering backend bucketed by LOD.
package view

import (
	"github.com/go-gl/mathgl/mgl64"

	"sphereflake/internal/geom"
	"sphereflake/internal/log"
	"sphereflake/internal/model"
	"sphereflake/internal/profiling"
	"sphereflake/internal/viewport"
)

// Pen sets the color of subsequent draws.
type Pen interface {
	SetColor(r, g, b, a float32)
}

// Backend draws unit spheres with a per-LOD proxy.
type Backend interface {
	Pen
	// DrawSphere draws the proxy for lod transformed by placement.
	DrawSphere(lod LOD, placement mgl64.Mat4)
}

// Stencil decorates a node right before it is drawn.
type Stencil interface {
	Apply(e model.Element, pen Pen)
}

// StencilFunc adapts a function to the Stencil interface.
type StencilFunc func(e model.Element, pen Pen)

// Apply calls f(e, pen).
func (f StencilFunc) Apply(e model.Element, pen Pen) {
	f(e, pen)
}

// Stats counts what one traversal did.
type Stats struct {
	// Processed is the number of nodes taken from the open set.
	Processed int
	// Invisible nodes were too small to matter.
	Invisible int
	// Culled nodes had their whole subtree outside the frustum.
	Culled int
	// Expanded is the number of Descendants calls.
	Expanded int
	// Occluded children were dropped before entering the open set.
	Occluded int
	// Queued is the number of draws per LOD.
	Queued [LODs]int
}

// Drawn returns the total number of draw calls.
func (s Stats) Drawn() int {
	n := 0
	for _, q := range s.Queued {
		n += q
	}
	return n
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Processed += o.Processed
	s.Invisible += o.Invisible
	s.Culled += o.Culled
	s.Expanded += o.Expanded
	s.Occluded += o.Occluded
	for i := range s.Queued {
		s.Queued[i] += o.Queued[i]
	}
}

// View binds a model, the viewport it is seen through and the backend it is drawn with.
type View struct {
	model    model.Model
	viewport *viewport.Viewport
	backend  Backend
	stencil  Stencil
	logger   log.Logger
}

// New creates a view. A nil stencil draws every sphere white.
func New(m model.Model, vp *viewport.Viewport, backend Backend, stencil Stencil) *View {
	return &View{
		model:    m,
		viewport: vp,
		backend:  backend,
		stencil:  stencil,
		logger:   log.New("view"),
	}
}

// SetStencil replaces the stencil used from the next frame on.
func (v *View) SetStencil(s Stencil) {
	v.stencil = s
}

// Viewport returns the viewport the view is seen through.
func (v *View) Viewport() *viewport.Viewport {
	return v.viewport
}

// Display traverses the model and draws every visible node. Transient nodes
// generated while doing so are collected before it returns.
func (v *View) Display() Stats {
	defer profiling.Track("view.Display")()
	defer v.model.Collect()

	var (
		stats  Stats
		queues [LODs]model.List
		open   model.List
	)

	vp := v.viewport
	eye := vp.Eye()
	t := thresholdsFor(vp.FOV())

	open.Add(v.model.Root())
	for open.HasData() {
		e := open.PullHead()
		stats.Processed++

		c := classify(vp, t, e)
		if c.LOD == Invisible {
			stats.Invisible++
			continue
		}
		if !c.TreeVisible {
			stats.Culled++
			continue
		}
		if c.Visible {
			queues[c.LOD].Add(e)
		}

		stats.Expanded++
		occluder := OccluderPlane(eye, e)
		children := v.model.Descendants(e)
		for children.HasData() {
			child := children.PullHead()
			if occludes(occluder, child) {
				stats.Occluded++
				continue
			}
			open.Add(child)
		}
	}

	v.flush(&queues, &stats)

	if log.Enabled(log.Debug) {
		v.logger.Debugf("processed %d invisible %d culled %d occluded %d queued %v",
			stats.Processed, stats.Invisible, stats.Culled, stats.Occluded, stats.Queued)
	}
	return stats
}

// flush draws the queued nodes coarsest level first.
func (v *View) flush(queues *[LODs]model.List, stats *Stats) {
	defer profiling.Track("view.Flush")()
	for lod := Low; lod <= Highest; lod++ {
		q := &queues[lod]
		stats.Queued[lod] = q.Len()
		for q.HasData() {
			v.draw(lod, q.PullHead())
		}
	}
}

func (v *View) draw(lod LOD, e model.Element) {
	if v.stencil != nil {
		v.stencil.Apply(e, v.backend)
	} else {
		v.backend.SetColor(1, 1, 1, 1)
	}
	placement := e.LocalCS().Mul4(geom.UniformScale(e.BoundingRadius()))
	v.backend.DrawSphere(lod, placement)
}
