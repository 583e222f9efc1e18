// Package keytracker turns held-key polling into edge-triggered presses.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeySource reports whether a key is currently held.
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
}

// EbitenKeys reads the live keyboard state.
type EbitenKeys struct{}

func (EbitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// Tracker remembers the previous state of each key it is asked about.
type Tracker struct {
	src  KeySource
	prev map[ebiten.Key]bool
}

// New creates a tracker reading from src.
func New(src KeySource) *Tracker {
	return &Tracker{src: src, prev: make(map[ebiten.Key]bool)}
}

// IsKeyJustPressed returns true if key was up on the previous call for it and is down now.
// Call it once per tick per key.
func (t *Tracker) IsKeyJustPressed(key ebiten.Key) bool {
	pressed := t.src.IsKeyPressed(key)
	justPressed := pressed && !t.prev[key]
	t.prev[key] = pressed
	return justPressed
}
