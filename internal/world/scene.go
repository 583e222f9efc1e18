package world

import (
	"wallcaster/internal/mathutil"
	"wallcaster/internal/texture"
)

// Pose is a camera placement stored with a scene.
type Pose struct {
	Position mathutil.Vec2
	Angle    float64 // radians
	Height   float64
}

// Scene is the static set of walls the renderer draws. Wall order is insertion
// order and carries no meaning; depth order is computed per column.
type Scene struct {
	walls    []Wall
	textures *texture.Library
	start    *Pose
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Add appends walls to the scene.
func (s *Scene) Add(walls ...Wall) {
	s.walls = append(s.walls, walls...)
}

// Walls returns the scene's walls. Callers must not modify the slice.
func (s *Scene) Walls() []Wall {
	return s.walls
}

func (s *Scene) Len() int {
	return len(s.walls)
}

// Textures returns the library the scene's walls were built from, if any.
func (s *Scene) Textures() *texture.Library {
	return s.textures
}

// Start returns the scene's suggested camera pose.
func (s *Scene) Start() (Pose, bool) {
	if s.start == nil {
		return Pose{}, false
	}
	return *s.start, true
}

// SetStart records a suggested camera pose.
func (s *Scene) SetStart(p Pose) {
	s.start = &p
}

// DefaultScene builds the four-wall demo map with every wall sharing tex.
func DefaultScene(tex *texture.Texture) *Scene {
	s := NewScene()
	s.Add(
		NewWall(mathutil.V2(-3, 1), mathutil.V2(-1, 3), 0, 0.7, tex),
		NewWall(mathutil.V2(-1, 3), mathutil.V2(1, 3), 0, 1, tex),
		NewWall(mathutil.V2(1, 3), mathutil.V2(3, 1), 0, 0.7, tex),
		NewWall(mathutil.V2(-4, 2), mathutil.V2(4, 2), -0.4, 0.3, tex),
	)
	return s
}
