package world

import (
	"wallcaster/internal/mathutil"
	"wallcaster/internal/texture"
)

// Wall is a vertical textured slab standing on the segment A-B and spanning
// MinHeight to MaxHeight above the ground. Walls are immutable once built, which
// keeps the cached length in step with the endpoints.
type Wall struct {
	a, b      mathutil.Vec2
	minHeight float64
	maxHeight float64
	texture   *texture.Texture
	length    float64
}

// NewWall creates a wall and caches its length. The texture is shared, not copied.
func NewWall(a, b mathutil.Vec2, minHeight, maxHeight float64, tex *texture.Texture) Wall {
	return Wall{
		a:         a,
		b:         b,
		minHeight: minHeight,
		maxHeight: maxHeight,
		texture:   tex,
		length:    a.Sub(b).Length(),
	}
}

func (w Wall) A() mathutil.Vec2          { return w.a }
func (w Wall) B() mathutil.Vec2          { return w.b }
func (w Wall) MinHeight() float64        { return w.minHeight }
func (w Wall) MaxHeight() float64        { return w.maxHeight }
func (w Wall) Texture() *texture.Texture { return w.texture }
func (w Wall) Length() float64           { return w.length }

// WithEndpoints returns a copy of w moved to a and b, keeping heights and texture.
func (w Wall) WithEndpoints(a, b mathutil.Vec2) Wall {
	return NewWall(a, b, w.minHeight, w.maxHeight, w.texture)
}

// Degenerate reports whether the wall cannot contribute any pixels.
func (w Wall) Degenerate() bool {
	return w.length == 0 || w.maxHeight <= w.minHeight || w.texture == nil
}
