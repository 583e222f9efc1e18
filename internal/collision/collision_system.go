package collision

import (
	"wallcaster/internal/mathutil"
	"wallcaster/internal/world"
)

// CollisionSystem keeps a moving body of a fixed radius from passing through
// the walls of a scene. A wall only blocks bodies whose vertical extent, from
// the ground up to the eye height, overlaps the wall's.
type CollisionSystem struct {
	walls  []world.Wall
	bounds []BoundingBox
	radius float64
}

// NewCollisionSystem creates a new collision system for the walls of scene
func NewCollisionSystem(scene *world.Scene, radius float64) *CollisionSystem {
	walls := scene.Walls()
	cs := &CollisionSystem{
		walls:  walls,
		bounds: make([]BoundingBox, len(walls)),
		radius: radius,
	}
	for i, w := range walls {
		cs.bounds[i] = NewBoundingBox(w.A(), w.B()).Expand(radius)
	}
	return cs
}

// Radius returns the body radius
func (cs *CollisionSystem) Radius() float64 {
	return cs.radius
}

// CanMoveTo checks if a body at eye height can move from one point to another.
// A move that ends closer than the radius to a wall is refused unless it
// increases the distance, so a body that starts inside the margin can leave.
func (cs *CollisionSystem) CanMoveTo(from, to mathutil.Vec2, height float64) bool {
	move := NewBoundingBox(from, to)
	for i := range cs.walls {
		w := &cs.walls[i]
		if !blocks(w, height) || !cs.bounds[i].Intersects(move) {
			continue
		}
		if SegmentsCross(from, to, w.A(), w.B()) {
			return false
		}
		d := DistanceToSegment(to, w.A(), w.B())
		if d < cs.radius && d < DistanceToSegment(from, w.A(), w.B()) {
			return false
		}
	}
	return true
}

// Resolve returns where a body moving from one point to another ends up. When
// the full move is blocked it tries each axis on its own, which lets the body
// slide along walls.
func (cs *CollisionSystem) Resolve(from, to mathutil.Vec2, height float64) mathutil.Vec2 {
	if from == to || cs.CanMoveTo(from, to, height) {
		return to
	}
	if alongX := mathutil.V2(to.X, from.Y); cs.CanMoveTo(from, alongX, height) {
		return alongX
	}
	if alongY := mathutil.V2(from.X, to.Y); cs.CanMoveTo(from, alongY, height) {
		return alongY
	}
	return from
}

func blocks(w *world.Wall, height float64) bool {
	return w.MinHeight() < height && w.MaxHeight() > 0
}
