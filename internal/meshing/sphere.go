package meshing

import "math"

// FloatsPerVertex is the interleaved layout: position xyz then normal xyz.
const FloatsPerVertex = 6

// Detail describes a UV sphere tessellation.
type Detail struct {
	Slices int // around the z axis
	Stacks int // from pole to pole
	Wire   bool
}

// ProxyDetails are the unit-sphere proxies from the coarsest to the finest
// level of detail. The coarsest one is drawn as a wireframe.
var ProxyDetails = [4]Detail{
	{Slices: 8, Stacks: 8, Wire: true},
	{Slices: 16, Stacks: 16},
	{Slices: 24, Stacks: 24},
	{Slices: 32, Stacks: 32},
}

// Mesh is an indexed unit sphere. Indices form triangles, or line segments
// when Wire is set.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
	Wire     bool
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

// BuildSphere tessellates a unit sphere centered at the origin with its
// poles on the z axis. The seam column is duplicated so every stack has
// Slices+1 vertices.
func BuildSphere(d Detail) *Mesh {
	ring := d.Slices + 1
	m := &Mesh{
		Vertices: make([]float32, 0, (d.Stacks+1)*ring*FloatsPerVertex),
		Wire:     d.Wire,
	}

	for i := 0; i <= d.Stacks; i++ {
		phi := math.Pi * float64(i) / float64(d.Stacks)
		sinPhi, cosPhi := math.Sincos(phi)
		for j := 0; j <= d.Slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(d.Slices)
			sinTheta, cosTheta := math.Sincos(theta)
			x := float32(sinPhi * cosTheta)
			y := float32(sinPhi * sinTheta)
			z := float32(cosPhi)
			// normal equals position on a unit sphere
			m.Vertices = append(m.Vertices, x, y, z, x, y, z)
		}
	}

	if d.Wire {
		m.Indices = make([]uint32, 0, 4*d.Slices*d.Stacks)
	} else {
		m.Indices = make([]uint32, 0, 6*d.Slices*d.Stacks)
	}
	for i := 0; i < d.Stacks; i++ {
		for j := 0; j < d.Slices; j++ {
			a := uint32(i*ring + j)
			b := a + uint32(ring)
			if d.Wire {
				m.Indices = append(m.Indices, a, a+1, a, b)
				continue
			}
			// counter-clockwise seen from outside
			m.Indices = append(m.Indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return m
}
