package world

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"wallcaster/internal/mathutil"
	"wallcaster/internal/texture"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownTexture is returned when a wall names a texture the scene does not define.
	ErrUnknownTexture = errors.New("unknown texture")
	// ErrDegenerateWall is returned for zero-length walls or walls with no height.
	ErrDegenerateWall = errors.New("degenerate wall")
)

// SceneFile is the yaml layout of a scene definition.
type SceneFile struct {
	Textures map[string]texture.Spec `yaml:"textures"`
	Walls    []WallSpec              `yaml:"walls"`
	Start    *StartSpec              `yaml:"start"`
}

// WallSpec describes one wall in a scene file.
type WallSpec struct {
	A         [2]float64 `yaml:"a"`
	B         [2]float64 `yaml:"b"`
	MinHeight float64    `yaml:"min_height"`
	MaxHeight float64    `yaml:"max_height"`
	Texture   string     `yaml:"texture"`
}

// StartSpec is the optional camera start pose. Angle is in degrees.
type StartSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Angle  float64 `yaml:"angle"`
	Height float64 `yaml:"height"`
}

// ParseSceneFile decodes a scene definition without loading any textures.
func ParseSceneFile(data []byte) (*SceneFile, error) {
	var sf SceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	return &sf, nil
}

// LoadSceneFile reads the scene at path, loads its textures relative to the
// scene's directory and builds the walls.
func LoadSceneFile(ctx context.Context, path string, logger *zap.Logger) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	sf, err := ParseSceneFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	lib, err := texture.LoadLibrary(ctx, filepath.Dir(path), sf.Textures, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	scene, err := sf.Build(lib)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Info("scene loaded",
		zap.String("path", path),
		zap.Int("walls", scene.Len()),
		zap.Int("textures", lib.Len()))
	return scene, nil
}

// Build validates the walls against lib and assembles a Scene.
func (sf *SceneFile) Build(lib *texture.Library) (*Scene, error) {
	scene := NewScene()
	scene.textures = lib

	for i, ws := range sf.Walls {
		tex, ok := lib.Get(ws.Texture)
		if !ok {
			return nil, fmt.Errorf("wall %d: %w %q", i, ErrUnknownTexture, ws.Texture)
		}

		w := NewWall(mathutil.V2(ws.A[0], ws.A[1]), mathutil.V2(ws.B[0], ws.B[1]), ws.MinHeight, ws.MaxHeight, tex)
		if w.Degenerate() {
			return nil, fmt.Errorf("wall %d: %w: length %.3f, heights %.3f..%.3f",
				i, ErrDegenerateWall, w.Length(), w.MinHeight(), w.MaxHeight())
		}
		scene.Add(w)
	}

	if sf.Start != nil {
		scene.SetStart(Pose{
			Position: mathutil.V2(sf.Start.X, sf.Start.Y),
			Angle:    sf.Start.Angle * math.Pi / 180,
			Height:   sf.Start.Height,
		})
	}
	return scene, nil
}
