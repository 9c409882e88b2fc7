package graphics

import (
	"context"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl64"

	"sphereflake/internal/meshing"
	"sphereflake/internal/view"
	"sphereflake/internal/viewport"
)

// Scene lighting: one directional light in eye space plus a global ambient term.
var (
	LightDirection = mgl64.Vec3{1, 1, 1}
	SceneAmbient   = float32(0.5)
	Specular       = float32(1.0)
	Shininess      = float32(50)
)

var _ view.Backend = (*SphereRenderer)(nil)

type proxy struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	count int32
	mode  uint32
}

// SphereRenderer draws unit-sphere proxies per level of detail
type SphereRenderer struct {
	shader  *Shader
	proxies [view.LODs]proxy

	view   mgl64.Mat4
	width  int
	height int
}

// NewSphereRenderer creates a renderer; Init must run on the GL thread before drawing.
func NewSphereRenderer(width, height int) *SphereRenderer {
	return &SphereRenderer{width: width, height: height, view: mgl64.Ident4()}
}

// Init compiles the shader and uploads the proxy meshes
func (r *SphereRenderer) Init(ctx context.Context) error {
	shader, err := NewShader(sphereVertShader, sphereFragShader)
	if err != nil {
		return fmt.Errorf("sphere shader: %w", err)
	}
	r.shader = shader

	meshes, err := meshing.BuildProxies(ctx, meshing.ProxyDetails[:])
	if err != nil {
		return fmt.Errorf("build proxies: %w", err)
	}
	for i, m := range meshes {
		r.proxies[i] = upload(m)
	}

	gl.ClearColor(0, 0, 0, 0)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.LineWidth(1.0)
	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	return nil
}

func upload(m *meshing.Mesh) proxy {
	var p proxy
	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &p.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	stride := int32(meshing.FloatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)

	gl.BindVertexArray(0)

	p.count = int32(len(m.Indices))
	p.mode = gl.TRIANGLES
	if m.Wire {
		p.mode = gl.LINES
	}
	return p
}

// BeginFrame clears the buffers and loads the camera of vp
func (r *SphereRenderer) BeginFrame(vp *viewport.Viewport) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.view = vp.View()
	proj := Mat4f(vp.Projection())
	viewf := Mat4f(r.view)

	r.shader.Use()
	r.shader.SetMatrix4("proj", &proj[0])
	r.shader.SetMatrix4("view", &viewf[0])
	r.shader.SetVector3("lightDir", float32(LightDirection[0]), float32(LightDirection[1]), float32(LightDirection[2]))
	r.shader.SetFloat("sceneAmbient", SceneAmbient)
	r.shader.SetFloat("specular", Specular)
	r.shader.SetFloat("shininess", Shininess)
}

// SetColor sets the color of the following draws
func (r *SphereRenderer) SetColor(red, green, blue, alpha float32) {
	r.shader.SetVector4("color", red, green, blue, alpha)
}

// DrawSphere draws the proxy of lod placed by placement
func (r *SphereRenderer) DrawSphere(lod view.LOD, placement mgl64.Mat4) {
	p := &r.proxies[lod]

	model := Mat4f(placement)
	normal := NormalMatrix(r.view.Mul4(placement))
	r.shader.SetMatrix4("model", &model[0])
	r.shader.SetMatrix3("normalMatrix", &normal[0])

	gl.BindVertexArray(p.vao)
	gl.DrawElementsWithOffset(p.mode, p.count, gl.UNSIGNED_INT, 0)
}

// SetViewport updates the GL viewport to the framebuffer size
func (r *SphereRenderer) SetViewport(width, height int) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Screenshot saves the color buffer as a BMP file
func (r *SphereRenderer) Screenshot(path string) error {
	return SaveBMP(path, ReadFramebuffer(r.width, r.height))
}

// Dispose cleans up OpenGL resources
func (r *SphereRenderer) Dispose() {
	for i := range r.proxies {
		p := &r.proxies[i]
		if p.vao != 0 {
			gl.DeleteVertexArrays(1, &p.vao)
		}
		if p.vbo != 0 {
			gl.DeleteBuffers(1, &p.vbo)
		}
		if p.ebo != 0 {
			gl.DeleteBuffers(1, &p.ebo)
		}
		*p = proxy{}
	}
	if r.shader != nil {
		r.shader.Delete()
	}
}
