package raycast

import (
	"wallcaster/internal/mathutil"
	"wallcaster/internal/world"
)

// Intersect casts a ray from the camera-space origin along dir and returns the
// position t along w (0 at A, 1 at B) where it crosses the wall. Hits exactly
// on an endpoint, parallel rays and zero-length walls report no hit. dir need
// not be unit length.
func Intersect(dir mathutil.Vec2, w world.Wall) (float64, bool) {
	s := w.B().Sub(w.A())

	denom := dir.Cross(s)
	if denom == 0 {
		return 0, false
	}

	t := w.A().Cross(dir) / denom
	if t > 0 && t < 1 {
		return t, true
	}
	return 0, false
}
