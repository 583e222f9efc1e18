package world

import (
	"context"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"wallcaster/internal/mathutil"
	"wallcaster/internal/texture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testTexture(t *testing.T) *texture.Texture {
	t.Helper()
	tex, err := texture.Placeholder(16, 2, texture.DefaultPlaceholderA, texture.DefaultPlaceholderB)
	require.NoError(t, err)
	return tex
}

func TestNewWallCachesLength(t *testing.T) {
	tex := testTexture(t)
	w := NewWall(mathutil.V2(-1, 3), mathutil.V2(1, 3), 0, 1, tex)

	assert.Equal(t, 2.0, w.Length())
	assert.Same(t, tex, w.Texture())
	assert.False(t, w.Degenerate())

	moved := w.WithEndpoints(mathutil.V2(0, 0), mathutil.V2(3, 4))
	assert.Equal(t, 5.0, moved.Length())
	assert.Equal(t, 2.0, w.Length(), "original wall must be unchanged")
	assert.Equal(t, w.MaxHeight(), moved.MaxHeight())
}

func TestWallDegenerate(t *testing.T) {
	tex := testTexture(t)
	assert.True(t, NewWall(mathutil.V2(1, 1), mathutil.V2(1, 1), 0, 1, tex).Degenerate())
	assert.True(t, NewWall(mathutil.V2(0, 1), mathutil.V2(1, 1), 1, 1, tex).Degenerate())
	assert.True(t, NewWall(mathutil.V2(0, 1), mathutil.V2(1, 1), 0, 1, nil).Degenerate())
}

func TestDefaultSceneSharesTexture(t *testing.T) {
	tex := testTexture(t)
	s := DefaultScene(tex)

	require.Equal(t, 4, s.Len())
	for _, w := range s.Walls() {
		assert.Same(t, tex, w.Texture())
	}
	_, ok := s.Start()
	assert.False(t, ok)
}

const sceneYAML = `textures:
  stone:
    placeholder:
      size: 32
      cells: 4
      color_a: [200, 200, 200]
      color_b: [50, 50, 50]
  brick:
    file: textures/brick.png
walls:
  - a: [-1, 3]
    b: [1, 3]
    min_height: 0
    max_height: 1
    texture: stone
  - a: [-4, 2]
    b: [4, 2]
    min_height: -0.4
    max_height: 0.3
    texture: brick
start:
  x: 0.5
  y: -1
  angle: 90
  height: 0.6
`

func TestLoadSceneFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sceneYAML), 0o644))

	scene, err := LoadSceneFile(context.Background(), path, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Equal(t, 2, scene.Len())

	first := scene.Walls()[0]
	assert.Equal(t, mathutil.V2(-1, 3), first.A())
	assert.Equal(t, 1.0, first.MaxHeight())
	assert.Equal(t, 32, first.Texture().Width())

	// brick.png does not exist, so it falls back to the default placeholder.
	second := scene.Walls()[1]
	assert.Equal(t, -0.4, second.MinHeight())
	assert.NotNil(t, second.Texture())

	start, ok := scene.Start()
	require.True(t, ok)
	assert.Equal(t, mathutil.V2(0.5, -1), start.Position)
	assert.InDelta(t, math.Pi/2, start.Angle, 1e-12)
	assert.Equal(t, 0.6, start.Height)
}

func TestSceneFileBuildValidation(t *testing.T) {
	lib := texture.NewLibrary()
	lib.Add("stone", testTexture(t))

	tests := []struct {
		name string
		wall WallSpec
		want error
	}{
		{"unknown texture", WallSpec{A: [2]float64{0, 1}, B: [2]float64{1, 1}, MaxHeight: 1, Texture: "wood"}, ErrUnknownTexture},
		{"zero length", WallSpec{A: [2]float64{1, 1}, B: [2]float64{1, 1}, MaxHeight: 1, Texture: "stone"}, ErrDegenerateWall},
		{"no height", WallSpec{A: [2]float64{0, 1}, B: [2]float64{1, 1}, MinHeight: 1, MaxHeight: 1, Texture: "stone"}, ErrDegenerateWall},
		{"inverted heights", WallSpec{A: [2]float64{0, 1}, B: [2]float64{1, 1}, MinHeight: 1, MaxHeight: 0.5, Texture: "stone"}, ErrDegenerateWall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf := &SceneFile{Walls: []WallSpec{tt.wall}}
			_, err := sf.Build(lib)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseSceneFileRejectsBadYAML(t *testing.T) {
	_, err := ParseSceneFile([]byte("walls: [this is: not: valid"))
	assert.Error(t, err)
}

func TestLoadShippedScene(t *testing.T) {
	scene, err := LoadSceneFile(context.Background(), filepath.Join("..", "..", "assets", "scene.yaml"), zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, 4, scene.Len())

	// The wall texture is decoded from the shipped PNG, not the placeholder.
	wall, ok := scene.Textures().Get("wall")
	require.True(t, ok)
	assert.Equal(t, 128, wall.Width())
	assert.Equal(t, 128, wall.Height())
	assert.Equal(t, color.RGBA{R: 180, G: 175, B: 165, A: 255}, wall.GetPixel(0, 0), "mortar line")
	assert.Equal(t, color.RGBA{R: 150, G: 70, B: 40, A: 255}, wall.GetPixel(10, 10), "brick")

	pose, ok := scene.Start()
	require.True(t, ok)
	assert.Equal(t, 0.6, pose.Height)
}
