package view

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"sphereflake/internal/geom"
	"sphereflake/internal/model"
	"sphereflake/internal/profiling"
	"sphereflake/internal/viewport"
)

type draw struct {
	lod       LOD
	placement mgl64.Mat4
	color     [4]float32
}

// recorder is a backend that remembers every draw call.
type recorder struct {
	color [4]float32
	draws []draw
}

func (r *recorder) SetColor(red, green, blue, alpha float32) {
	r.color = [4]float32{red, green, blue, alpha}
}

func (r *recorder) DrawSphere(lod LOD, placement mgl64.Mat4) {
	r.draws = append(r.draws, draw{lod: lod, placement: placement, color: r.color})
}

// counting wraps a model and records the nodes whose children were requested.
type counting struct {
	model.Model
	expanded []model.Element
	collects int
}

func (c *counting) Descendants(e model.Element) *model.List {
	c.expanded = append(c.expanded, e)
	return c.Model.Descendants(e)
}

func (c *counting) Collect() {
	c.collects++
	c.Model.Collect()
}

func startViewport() *viewport.Viewport {
	return viewport.New(mgl64.Vec3{12, 0, 0}, mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{0, 0, 1}, 45, geom.Degrees, 800, 600)
}

func TestLODSequence(t *testing.T) {
	th := thresholdsFor(math.Pi / 4)
	tests := []struct {
		deg  float64
		want LOD
	}{
		{0.1, Invisible},
		{0.3, Low},
		{0.7, Medium},
		{2, Highest},
		{14, Highest},
	}
	for _, tt := range tests {
		c := math.Cos(geom.ScalarToRadians(tt.deg, geom.Degrees))
		if got := th.lod(c); got != tt.want {
			t.Fatalf("%v degrees: got %v, want %v", tt.deg, got, tt.want)
		}
	}

	// doubling the field of view doubles every threshold
	wide := thresholdsFor(math.Pi / 2)
	if got := wide.lod(math.Cos(geom.ScalarToRadians(0.25, geom.Degrees))); got != Invisible {
		t.Fatalf("0.25 degrees at 90 fov: got %v, want invisible", got)
	}
}

func TestRootClassification(t *testing.T) {
	vp := startViewport()
	f := model.NewFractal()
	c := Classify(vp, f.Root())
	if !c.Visible || !c.TreeVisible {
		t.Fatalf("root should be visible: %+v", c)
	}
	if c.LOD != Highest {
		t.Fatalf("root LOD: got %v, want highest", c.LOD)
	}
}

func TestRootOccludesOneChild(t *testing.T) {
	vp := startViewport()
	f := model.NewFractal()
	root := f.Root()
	children := f.Descendants(root)
	if children.Len() != model.Branching {
		t.Fatalf("children: got %d", children.Len())
	}

	var occluded []model.Element
	children.Each(func(e model.Element) {
		if OccludesCompletely(vp.Eye(), root, e) {
			occluded = append(occluded, e)
		}
	})
	if len(occluded) != 1 {
		t.Fatalf("occluded children: got %d, want 1", len(occluded))
	}
	// the equator child straight behind the root
	if c := Center(occluded[0]); !geom.Near(c, mgl64.Vec3{-4, 0, 0}, 1e-9) {
		t.Fatalf("occluded child center: got %v", c)
	}
}

func TestOccluderPlane(t *testing.T) {
	f := model.NewFractal()
	pl := OccluderPlane(mgl64.Vec3{12, 0, 0}, f.Root())
	if !geom.Near(pl.Normal, mgl64.Vec3{-1, 0, 0}, 1e-9) {
		t.Fatalf("normal: got %v", pl.Normal)
	}
	if d := pl.Distance(mgl64.Vec3{-1.8, 0, 0}); math.Abs(d) > 1e-12 {
		t.Fatalf("plane should stand 0.6 radii behind the root, off by %v", d)
	}
}

func TestFirstFrame(t *testing.T) {
	vp := startViewport()
	m := &counting{Model: model.NewFractal()}
	rec := &recorder{}
	v := New(m, vp, rec, nil)

	stats := v.Display()

	if m.collects != 1 {
		t.Fatalf("collects: got %d, want 1", m.collects)
	}
	if len(m.expanded) == 0 || m.expanded[0] != m.Root() {
		t.Fatal("traversal must start by expanding the root")
	}
	depth1 := 0
	for _, e := range m.expanded {
		if e.Depth() == 1 {
			depth1++
			if geom.Near(Center(e), mgl64.Vec3{-4, 0, 0}, 1e-9) {
				t.Fatal("occluded child was expanded")
			}
		}
	}
	if depth1 != model.Branching-1 {
		t.Fatalf("expanded depth 1 nodes: got %d, want %d", depth1, model.Branching-1)
	}
	if stats.Expanded != len(m.expanded) {
		t.Fatalf("stats expanded %d, model saw %d", stats.Expanded, len(m.expanded))
	}
	if stats.Drawn() != len(rec.draws) {
		t.Fatalf("stats drawn %d, backend saw %d", stats.Drawn(), len(rec.draws))
	}

	rootDraws := 0
	for i, d := range rec.draws {
		if i > 0 && d.lod < rec.draws[i-1].lod {
			t.Fatalf("draw %d: LOD %v after %v", i, d.lod, rec.draws[i-1].lod)
		}
		if d.color != [4]float32{1, 1, 1, 1} {
			t.Fatalf("draw %d: default color %v", i, d.color)
		}
		if geom.ApproxEqual(d.placement, geom.UniformScale(model.RootRadius), 1e-12) {
			rootDraws++
			if d.lod != Highest {
				t.Fatalf("root drawn at %v", d.lod)
			}
		}
	}
	if rootDraws != 1 {
		t.Fatalf("root draws: got %d, want 1", rootDraws)
	}
}

func TestFarNodeIsNotExpanded(t *testing.T) {
	vp := viewport.New(mgl64.Vec3{5000, 0, 0}, mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{0, 0, 1}, 45, geom.Degrees, 800, 600)
	m := &counting{Model: model.NewFractal()}
	rec := &recorder{}
	stats := New(m, vp, rec, nil).Display()

	if len(m.expanded) != 0 {
		t.Fatalf("expanded: got %d, want 0", len(m.expanded))
	}
	if stats.Processed != 1 || stats.Invisible != 1 {
		t.Fatalf("stats: %+v", stats)
	}
	if len(rec.draws) != 0 || m.collects != 1 {
		t.Fatalf("draws %d collects %d", len(rec.draws), m.collects)
	}
}

func TestCulledRootIsNotExpanded(t *testing.T) {
	vp := viewport.New(mgl64.Vec3{12, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, 1}, 45, geom.Degrees, 800, 600)
	m := &counting{Model: model.NewFractal()}
	stats := New(m, vp, &recorder{}, nil).Display()

	if len(m.expanded) != 0 || stats.Culled != 1 {
		t.Fatalf("expanded %d stats %+v", len(m.expanded), stats)
	}
	if m.collects != 1 {
		t.Fatalf("collects: got %d, want 1", m.collects)
	}
}

func TestStencilColorsDraws(t *testing.T) {
	vp := startViewport()
	rec := &recorder{}
	byDepth := StencilFunc(func(e model.Element, pen Pen) {
		pen.SetColor(float32(e.Depth()), 0, 0, 1)
	})
	v := New(model.NewFractal(), vp, rec, nil)
	v.SetStencil(byDepth)
	v.Display()

	deeper := 0
	for _, d := range rec.draws {
		radius := d.placement.Col(0).Vec3().Len()
		depth := math.Round(math.Log(model.RootRadius/radius) / math.Log(3))
		if d.color != [4]float32{float32(depth), 0, 0, 1} {
			t.Fatalf("radius %v: color %v, want depth %v", radius, d.color, depth)
		}
		if depth > 0 {
			deeper++
		}
	}
	if deeper == 0 {
		t.Fatal("no descendants drawn")
	}
}

func TestTransientNodesAreCollected(t *testing.T) {
	f := model.NewFractal(model.WithCacheBudget(0))
	v := New(f, startViewport(), &recorder{}, nil)
	first := v.Display()
	if f.Transient() != 0 {
		t.Fatalf("transient after display: %d", f.Transient())
	}
	if f.Produced() != 0 {
		t.Fatalf("produced with zero budget: %d", f.Produced())
	}
	if second := v.Display(); second != first {
		t.Fatalf("frames differ: %+v vs %+v", first, second)
	}
}

func TestFlushIsTrackedOncePerFrame(t *testing.T) {
	rec := &recorder{}
	v := New(model.NewFractal(), startViewport(), rec, nil)

	profiling.ResetFrame()
	v.Display()
	if len(rec.draws) < 2 {
		t.Fatalf("draws: got %d, want several", len(rec.draws))
	}
	if got := profiling.Calls("view.Flush"); got != 1 {
		t.Fatalf("view.Flush calls: got %d, want 1", got)
	}
	if got := profiling.Calls("view.Display"); got != 1 {
		t.Fatalf("view.Display calls: got %d, want 1", got)
	}
}

func TestCachedFramesAreStable(t *testing.T) {
	f := model.NewFractal(model.WithCacheBudget(900))
	v := New(f, startViewport(), &recorder{}, nil)
	first := v.Display()
	produced := f.Produced()
	if produced == 0 || produced > 900 {
		t.Fatalf("produced: %d", produced)
	}
	second := v.Display()
	if second != first {
		t.Fatalf("frames differ: %+v vs %+v", first, second)
	}
	if f.Produced() != produced {
		t.Fatalf("cache grew on an identical frame: %d -> %d", produced, f.Produced())
	}
}

func TestClassificationAgreesWithSphereInFrustum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	f := model.NewFractal(model.WithCacheBudget(1 << 20))

	// a pool of nodes down to depth 3
	var pool []model.Element
	level := []model.Element{f.Root()}
	for d := 0; d < 3; d++ {
		var next []model.Element
		for _, e := range level {
			f.Descendants(e).Each(func(c model.Element) { next = append(next, c) })
		}
		pool = append(pool, level...)
		level = next
	}
	pool = append(pool, level...)

	for i := 0; i < 50; i++ {
		vp := startViewport()
		vp.OrbitHorizontal(rng.Float64()*360, geom.Degrees)
		vp.OrbitVertical(rng.Float64()*180-90, geom.Degrees)
		vp.Yaw(rng.Float64()*60-30, geom.Degrees)
		vp.MoveInViewDir(rng.Float64() * 8)
		vp.AddFOV(rng.Float64()*60-30, geom.Degrees)

		for _, e := range pool {
			c := Classify(vp, e)
			if c.LOD == Invisible {
				continue
			}
			center := Center(e)
			if c.Visible != vp.SphereInFrustum(center, e.BoundingRadius()) {
				t.Fatalf("visible disagrees for %v", center)
			}
			if c.TreeVisible != vp.SphereInFrustum(center, e.DescendantRadius()) {
				t.Fatalf("tree visible disagrees for %v", center)
			}
			if c.Visible && !c.TreeVisible {
				t.Fatalf("visible node with invisible tree at %v", center)
			}
		}
	}
}

func BenchmarkDisplay(b *testing.B) {
	f := model.NewFractal()
	v := New(f, startViewport(), &recorder{}, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Display()
	}
}
