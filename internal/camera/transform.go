package camera

import (
	"wallcaster/internal/mathutil"
	"wallcaster/internal/world"
)

// ToCameraSpace maps p into the frame where the camera sits at the origin and
// looks down +Y. dir must be unit length.
func ToCameraSpace(p, pos, dir mathutil.Vec2) mathutil.Vec2 {
	p = p.Sub(pos)
	right := mathutil.V2(dir.Y, -dir.X)
	return mathutil.V2(p.Dot(right), p.Dot(dir))
}

// WallToCameraSpace returns a camera-space copy of w.
func WallToCameraSpace(w world.Wall, pos, dir mathutil.Vec2) world.Wall {
	return w.WithEndpoints(ToCameraSpace(w.A(), pos, dir), ToCameraSpace(w.B(), pos, dir))
}

// TransformWalls appends camera-space copies of walls to dst[:0] and returns it.
// The source walls are never modified.
func TransformWalls(dst, walls []world.Wall, pos, dir mathutil.Vec2) []world.Wall {
	dst = dst[:0]
	for _, w := range walls {
		dst = append(dst, WallToCameraSpace(w, pos, dir))
	}
	return dst
}
