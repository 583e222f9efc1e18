package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"wallcaster/internal/mathutil"

	"golang.org/x/image/draw"
)

// ErrNotPowerOfTwo is returned when a texture width or height is not a power of two.
var ErrNotPowerOfTwo = errors.New("texture dimensions must be powers of two")

const bytesPerPixel = 4

// wrapOffset is added to texel indices before masking. It is a multiple of every
// supported dimension, so adding it never changes the masked result.
const wrapOffset = 1 << 24

// Texture is an immutable RGBA8 image with power-of-two dimensions.
// Row 0 is the top of the source image.
type Texture struct {
	width  int
	height int
	wMask  int
	hMask  int
	pix    []byte
}

// New allocates a transparent texture of the given size.
func New(width, height int) (*Texture, error) {
	if !mathutil.IsPowerOfTwo(width) || !mathutil.IsPowerOfTwo(height) {
		return nil, fmt.Errorf("%w: got %dx%d", ErrNotPowerOfTwo, width, height)
	}
	return &Texture{
		width:  width,
		height: height,
		wMask:  width - 1,
		hMask:  height - 1,
		pix:    make([]byte, width*height*bytesPerPixel),
	}, nil
}

// FromImage copies img into a new texture, converting it to RGBA.
func FromImage(img image.Image) (*Texture, error) {
	b := img.Bounds()
	t, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	dst := &image.RGBA{
		Pix:    t.pix,
		Stride: t.width * bytesPerPixel,
		Rect:   image.Rect(0, 0, t.width, t.height),
	}
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return t, nil
}

func (t *Texture) Width() int {
	return t.width
}

func (t *Texture) Height() int {
	return t.height
}

// GetPixel returns the texel at (x, y). Coordinates must be in range.
func (t *Texture) GetPixel(x, y int) color.RGBA {
	i := (y*t.width + x) * bytesPerPixel
	p := t.pix[i : i+bytesPerPixel : i+bytesPerPixel]
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Sample returns the texel under (u, v) with point filtering. Both axes repeat with
// period 1, so any real u and v are accepted.
func (t *Texture) Sample(u, v float64) color.RGBA {
	tx := int(math.Floor(u * float64(t.width)))
	ty := int(math.Floor(v * float64(t.height)))

	// Masking replaces a modulo; it only works because both dimensions are powers of two.
	tx = (tx + wrapOffset) & t.wMask
	ty = (ty + wrapOffset) & t.hMask

	return t.GetPixel(tx, ty)
}

// set is used while building textures inside this package.
func (t *Texture) set(x, y int, c color.RGBA) {
	i := (y*t.width + x) * bytesPerPixel
	t.pix[i] = c.R
	t.pix[i+1] = c.G
	t.pix[i+2] = c.B
	t.pix[i+3] = c.A
}
