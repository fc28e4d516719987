package graphics

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// UploadAtlasTexture uploads a packed atlas image as a GL_TEXTURE_2D. Block
// textures are pixel art; sampling stays NEAREST so cells never bleed into
// each other. The atlas keeps V=0 at its last pixel row while GL maps the
// first uploaded row to V=0, so rows are flipped before upload.
func UploadAtlasTexture(img *image.RGBA) (uint32, error) {
	w := img.Rect.Size().X
	h := img.Rect.Size().Y
	if w == 0 || h == 0 {
		return 0, fmt.Errorf("empty atlas image")
	}
	pix := flippedRows(img)

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(w),
		int32(h),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(pix),
	)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return texture, nil
}

// flippedRows returns the image's pixels with the row order reversed, so
// the bottom image row becomes the first row of the returned buffer.
func flippedRows(img *image.RGBA) []uint8 {
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	out := make([]uint8, 0, w*h*4)
	for y := h - 1; y >= 0; y-- {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		out = append(out, row...)
	}
	return out
}
