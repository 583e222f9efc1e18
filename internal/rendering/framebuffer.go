package rendering

import (
	"image"
	"image/color"

	"github.com/cespare/xxhash/v2"
)

const bytesPerPixel = 4

// Framebuffer is a row-major RGBA8 pixel grid with row 0 at the top. It is
// owned by the caller and written only by the renderer during a frame.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFramebuffer allocates a cleared framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*bytesPerPixel),
	}
}

// Clear resets every pixel to transparent black.
func (fb *Framebuffer) Clear() {
	clear(fb.Pix)
}

// At returns the pixel at column x, row y.
func (fb *Framebuffer) At(x, y int) color.RGBA {
	i := (y*fb.Width + x) * bytesPerPixel
	return color.RGBA{R: fb.Pix[i], G: fb.Pix[i+1], B: fb.Pix[i+2], A: fb.Pix[i+3]}
}

func (fb *Framebuffer) set(x, y int, c color.RGBA) {
	i := (y*fb.Width + x) * bytesPerPixel
	p := fb.Pix[i : i+bytesPerPixel : i+bytesPerPixel]
	p[0] = c.R
	p[1] = c.G
	p[2] = c.B
	p[3] = c.A
}

// Image wraps the framebuffer as an *image.RGBA sharing the same pixels.
func (fb *Framebuffer) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    fb.Pix,
		Stride: fb.Width * bytesPerPixel,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
}

// Checksum returns a 64-bit digest of the pixel contents.
func (fb *Framebuffer) Checksum() uint64 {
	return xxhash.Sum64(fb.Pix)
}
