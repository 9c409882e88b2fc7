package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Mat4f narrows a double precision matrix for upload.
func Mat4f(m mgl64.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i := range m {
		out[i] = float32(m[i])
	}
	return out
}

// NormalMatrix returns the inverse transpose of the upper 3x3 of modelView.
func NormalMatrix(modelView mgl64.Mat4) mgl32.Mat3 {
	n := modelView.Mat3().Inv().Transpose()
	var out mgl32.Mat3
	for i := range n {
		out[i] = float32(n[i])
	}
	return out
}
