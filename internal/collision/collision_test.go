package collision

import (
	"math"
	"testing"

	"wallcaster/internal/mathutil"
	"wallcaster/internal/world"
)

func newTestSystem(walls ...world.Wall) *CollisionSystem {
	scene := world.NewScene()
	scene.Add(walls...)
	return NewCollisionSystem(scene, 0.2)
}

func TestDistanceToSegment(t *testing.T) {
	a, b := mathutil.V2(0, 0), mathutil.V2(4, 0)
	tests := []struct {
		p    mathutil.Vec2
		want float64
	}{
		{mathutil.V2(2, 3), 3},
		{mathutil.V2(-3, 4), 5},
		{mathutil.V2(4, -1), 1},
		{mathutil.V2(1, 0), 0},
	}
	for _, tt := range tests {
		if got := DistanceToSegment(tt.p, a, b); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("DistanceToSegment(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	if got := DistanceToSegment(mathutil.V2(3, 4), a, a); got != 5 {
		t.Errorf("degenerate segment distance = %v, want 5", got)
	}
}

func TestSegmentsCross(t *testing.T) {
	if !SegmentsCross(mathutil.V2(0, -1), mathutil.V2(0, 1), mathutil.V2(-1, 0), mathutil.V2(1, 0)) {
		t.Error("expected crossing segments to cross")
	}
	if SegmentsCross(mathutil.V2(0, -1), mathutil.V2(0, -0.5), mathutil.V2(-1, 0), mathutil.V2(1, 0)) {
		t.Error("short segment should not reach the other")
	}
	if SegmentsCross(mathutil.V2(0, 0), mathutil.V2(2, 0), mathutil.V2(1, 0), mathutil.V2(3, 0)) {
		t.Error("collinear overlap should not count as a crossing")
	}
}

func TestBoundingBox(t *testing.T) {
	bb := NewBoundingBox(mathutil.V2(2, -1), mathutil.V2(0, 1)).Expand(0.5)
	if bb.Min != mathutil.V2(-0.5, -1.5) || bb.Max != mathutil.V2(2.5, 1.5) {
		t.Fatalf("unexpected box %+v", bb)
	}
	if !bb.Intersects(NewBoundingBox(mathutil.V2(2.5, 0), mathutil.V2(3, 0))) {
		t.Error("boxes touching at an edge should intersect")
	}
	if bb.Intersects(NewBoundingBox(mathutil.V2(3, 3), mathutil.V2(4, 4))) {
		t.Error("disjoint boxes should not intersect")
	}
}

func TestCanMoveTo(t *testing.T) {
	cs := newTestSystem(world.NewWall(mathutil.V2(-2, 2), mathutil.V2(2, 2), 0, 1, nil))
	from := mathutil.V2(0, 0)

	if !cs.CanMoveTo(from, mathutil.V2(0, 1.5), 0.6) {
		t.Error("move short of the wall should be allowed")
	}
	if cs.CanMoveTo(from, mathutil.V2(0, 1.9), 0.6) {
		t.Error("move inside the radius should be refused")
	}
	if cs.CanMoveTo(from, mathutil.V2(0, 5), 0.6) {
		t.Error("move through the wall should be refused")
	}
	if !cs.CanMoveTo(from, mathutil.V2(4, 2.5), 0.6) {
		t.Error("move around the end of the wall should be allowed")
	}
	if !cs.CanMoveTo(mathutil.V2(0, 1.85), mathutil.V2(0, 1.82), 0.6) {
		t.Error("moving away from a wall should be allowed inside the radius")
	}
}

func TestCanMoveToIgnoresWallsOutsideBody(t *testing.T) {
	cs := newTestSystem(
		world.NewWall(mathutil.V2(-2, 2), mathutil.V2(2, 2), 0.8, 1.2, nil),
		world.NewWall(mathutil.V2(-2, 3), mathutil.V2(2, 3), -1, 0, nil),
	)
	if !cs.CanMoveTo(mathutil.V2(0, 0), mathutil.V2(0, 5), 0.6) {
		t.Error("walls above the eye and below the ground should not block")
	}
	if cs.CanMoveTo(mathutil.V2(0, 0), mathutil.V2(0, 5), 1.0) {
		t.Error("a taller body should hit the raised wall")
	}
}

func TestResolveSlidesAlongWall(t *testing.T) {
	cs := newTestSystem(world.NewWall(mathutil.V2(-5, 2), mathutil.V2(5, 2), 0, 1, nil))

	got := cs.Resolve(mathutil.V2(0, 1.7), mathutil.V2(0.5, 2.2), 0.6)
	if got != mathutil.V2(0.5, 1.7) {
		t.Errorf("Resolve = %v, want slide to (0.5, 1.7)", got)
	}

	got = cs.Resolve(mathutil.V2(0, 1.7), mathutil.V2(0, 2.2), 0.6)
	if got != mathutil.V2(0, 1.7) {
		t.Errorf("Resolve = %v, want to stay put", got)
	}

	if got := cs.Resolve(mathutil.V2(0, 0), mathutil.V2(1, 1), 0.6); got != mathutil.V2(1, 1) {
		t.Errorf("Resolve = %v, want the unobstructed target", got)
	}
}
