package graphics

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/bmp"
)

func TestMat4f(t *testing.T) {
	m := mgl64.Translate3D(1, 2, 3).Mul4(mgl64.Scale3D(0.5, 0.5, 0.5))
	f := Mat4f(m)
	for i := range m {
		if float64(f[i]) != m[i] {
			t.Fatalf("element %d: got %v, want %v", i, f[i], m[i])
		}
	}
}

func TestNormalMatrixUndoesScale(t *testing.T) {
	n := NormalMatrix(mgl64.Translate3D(4, 0, 0).Mul4(mgl64.Scale3D(2, 2, 2)))
	if n.At(0, 0) != 0.5 || n.At(1, 1) != 0.5 || n.At(2, 2) != 0.5 || n.At(0, 1) != 0 {
		t.Fatalf("normal matrix: %v", n)
	}
}

func TestFlipRowsAndEncode(t *testing.T) {
	const w, h = 3, 2
	pix := make([]byte, w*h*4)
	// bottom GL row red, top GL row blue
	for x := 0; x < w; x++ {
		copy(pix[x*4:], []byte{255, 0, 0, 255})
		copy(pix[(w+x)*4:], []byte{0, 0, 255, 255})
	}
	img := flipRows(pix, w, h)
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Fatalf("top row: %v", got)
	}
	if got := img.RGBAAt(2, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("bottom row: %v", got)
	}

	var buf bytes.Buffer
	if err := EncodeBMP(&buf, img); err != nil {
		t.Fatal(err)
	}
	decoded, err := bmp.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := decoded.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Fatalf("decoded bounds: %v", b)
	}
	r, _, _, _ := decoded.At(1, 1).RGBA()
	if r>>8 != 255 {
		t.Fatalf("decoded bottom row red: %d", r>>8)
	}
}
