package raycast

import (
	"testing"

	"wallcaster/internal/mathutil"
	"wallcaster/internal/texture"
	"wallcaster/internal/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wall(t *testing.T, ax, ay, bx, by float64) world.Wall {
	t.Helper()
	tex, err := texture.New(8, 8)
	require.NoError(t, err)
	return world.NewWall(mathutil.V2(ax, ay), mathutil.V2(bx, by), 0, 1, tex)
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name   string
		dir    mathutil.Vec2
		wall   world.Wall
		wantOK bool
		wantT  float64
	}{
		{"straight ahead centre", mathutil.V2(0, 1), wall(t, -1, 3, 1, 3), true, 0.5},
		{"reversed wall", mathutil.V2(0, 1), wall(t, 1, 3, -1, 3), true, 0.5},
		{"off to the right", mathutil.V2(0.5, 1), wall(t, -1, 2, 3, 2), true, 0.5},
		{"non-unit direction", mathutil.V2(0, 7), wall(t, -1, 3, 3, 3), true, 0.25},
		{"misses past B", mathutil.V2(1, 1), wall(t, -1, 3, 1, 3), false, 0},
		{"exactly on endpoint", mathutil.V2(1, 3), wall(t, -1, 3, 1, 3), false, 0},
		{"parallel", mathutil.V2(1, 0), wall(t, -1, 3, 1, 3), false, 0},
		{"wall through origin", mathutil.V2(0, 1), wall(t, 0, 0, 2, 0), false, 0},
		{"zero length wall", mathutil.V2(0, 1), wall(t, 0, 3, 0, 3), false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Intersect(tt.dir, tt.wall)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.InDelta(t, tt.wantT, got, 1e-12)
			}
		})
	}
}

func TestTraceColumnOrdersNearestFirst(t *testing.T) {
	walls := []world.Wall{
		wall(t, -1, 5, 1, 5),
		wall(t, -2, 2, 2, 2),
		wall(t, -3, 9, 3, 9),
		wall(t, 4, 1, 6, 1), // not on the ray
	}

	tr := NewTracer(4)
	hits := tr.TraceColumn(mathutil.V2(0, 1), walls)

	require.Len(t, hits, 3)
	assert.Equal(t, 2.0, hits[0].Distance)
	assert.Equal(t, 5.0, hits[1].Distance)
	assert.Equal(t, 9.0, hits[2].Distance)
	assert.Same(t, &walls[1], hits[0].Wall)
	assert.InDelta(t, 0.5*walls[0].Length(), hits[1].U(), 1e-12)
}

func TestTraceColumnSkipsWallsBehindCamera(t *testing.T) {
	walls := []world.Wall{
		wall(t, -1, -3, 1, -3),
		wall(t, -1, 4, 1, 4),
	}

	hits := NewTracer(0).TraceColumn(mathutil.V2(0.1, 1), walls)
	require.Len(t, hits, 1)
	assert.Same(t, &walls[1], hits[0].Wall)
}

func TestTraceColumnDistanceIsForwardAxis(t *testing.T) {
	// A slanted ray hits the wall at x=2, but depth is still the forward coordinate.
	walls := []world.Wall{wall(t, -4, 4, 4, 4)}

	hits := NewTracer(1).TraceColumn(mathutil.V2(0.5, 1), walls)
	require.Len(t, hits, 1)
	assert.InDelta(t, 4.0, hits[0].Distance, 1e-12)
	assert.InDelta(t, 0.75, hits[0].T, 1e-12)
}

func TestTraceColumnReusesBuffer(t *testing.T) {
	walls := []world.Wall{wall(t, -1, 3, 1, 3), wall(t, -1, 6, 1, 6)}
	tr := NewTracer(2)

	first := tr.TraceColumn(mathutil.V2(0, 1), walls)
	require.Len(t, first, 2)

	second := tr.TraceColumn(mathutil.V2(5, 1), walls)
	assert.Empty(t, second)
	assert.Equal(t, 2, cap(second))
}
