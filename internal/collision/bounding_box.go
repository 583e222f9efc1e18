package collision

import (
	"math"

	"wallcaster/internal/mathutil"
)

// BoundingBox is an axis-aligned rectangle on the ground plane
type BoundingBox struct {
	Min mathutil.Vec2
	Max mathutil.Vec2
}

// NewBoundingBox returns the smallest box holding both points
func NewBoundingBox(a, b mathutil.Vec2) BoundingBox {
	return BoundingBox{
		Min: mathutil.V2(math.Min(a.X, b.X), math.Min(a.Y, b.Y)),
		Max: mathutil.V2(math.Max(a.X, b.X), math.Max(a.Y, b.Y)),
	}
}

// Expand grows the box by margin on every side
func (bb BoundingBox) Expand(margin float64) BoundingBox {
	m := mathutil.V2(margin, margin)
	return BoundingBox{Min: bb.Min.Sub(m), Max: bb.Max.Add(m)}
}

// Intersects checks if this bounding box intersects with another
func (bb BoundingBox) Intersects(other BoundingBox) bool {
	return !(bb.Max.X < other.Min.X || other.Max.X < bb.Min.X || bb.Max.Y < other.Min.Y || other.Max.Y < bb.Min.Y)
}

// DistanceToSegment returns the distance from p to the closest point of a-b
func DistanceToSegment(p, a, b mathutil.Vec2) float64 {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq == 0 {
		return p.Sub(a).Length()
	}
	t := mathutil.Clamp(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	return p.Sub(a.Add(ab.Scale(t))).Length()
}

// SegmentsCross reports whether p1-p2 and q1-q2 properly cross. Touching
// endpoints and collinear overlap do not count.
func SegmentsCross(p1, p2, q1, q2 mathutil.Vec2) bool {
	d1 := q2.Sub(q1).Cross(p1.Sub(q1))
	d2 := q2.Sub(q1).Cross(p2.Sub(q1))
	d3 := p2.Sub(p1).Cross(q1.Sub(p1))
	d4 := p2.Sub(p1).Cross(q2.Sub(p1))
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}
