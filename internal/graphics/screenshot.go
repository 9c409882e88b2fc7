package graphics

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/bmp"
)

// ReadFramebuffer reads the current color buffer into an image, top row first.
func ReadFramebuffer(width, height int) *image.RGBA {
	pix := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	return flipRows(pix, width, height)
}

// flipRows turns bottom-up GL rows into a top-down image.
func flipRows(pix []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stride := width * 4
	for y := 0; y < height; y++ {
		src := pix[(height-1-y)*stride : (height-y)*stride]
		copy(img.Pix[y*img.Stride:y*img.Stride+stride], src)
	}
	return img
}

// EncodeBMP writes img as an uncompressed BMP.
func EncodeBMP(w io.Writer, img image.Image) error {
	if err := bmp.Encode(w, img); err != nil {
		return fmt.Errorf("encode bmp: %w", err)
	}
	return nil
}

// SaveBMP writes img to path.
func SaveBMP(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create screenshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close screenshot: %w", cerr)
		}
	}()
	return EncodeBMP(f, img)
}
