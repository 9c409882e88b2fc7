package graphics

import _ "embed"

var (
	//go:embed shaders/sphere.vert
	sphereVertShader string
	//go:embed shaders/sphere.frag
	sphereFragShader string
)
