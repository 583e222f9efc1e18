package game

import (
	"wallcaster/internal/game/keytracker"

	"github.com/hajimehoshi/ebiten/v2"
)

// InputHandler turns keyboard state into camera movement and debug toggles
type InputHandler struct {
	game  *Game
	keys  keytracker.KeySource
	edges *keytracker.Tracker
}

// NewInputHandler creates a new input handler
func NewInputHandler(game *Game, keys keytracker.KeySource) *InputHandler {
	return &InputHandler{
		game:  game,
		keys:  keys,
		edges: keytracker.New(keys),
	}
}

// HandleInput processes all input for a tick of dt seconds. It returns
// ebiten.Termination when the player asks to quit.
func (ih *InputHandler) HandleInput(dt float64) error {
	if ih.keys.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	ih.handleMovementInput(dt)
	ih.handleDebugInput()
	return nil
}

// handleMovementInput processes movement and camera controls
func (ih *InputHandler) handleMovementInput(dt float64) {
	cam := &ih.game.camera
	cfg := ih.game.config

	// Rotation: the camera angle grows counter-clockwise, so left is positive.
	turn := 0.0
	if ih.keys.IsKeyPressed(ebiten.KeyArrowLeft) {
		turn++
	}
	if ih.keys.IsKeyPressed(ebiten.KeyArrowRight) {
		turn--
	}
	if turn != 0 {
		cam.Rotate(turn * cfg.GetRotSpeed() * dt)
	}

	forward, strafe := 0.0, 0.0
	if ih.keys.IsKeyPressed(ebiten.KeyW) || ih.keys.IsKeyPressed(ebiten.KeyArrowUp) {
		forward++
	}
	if ih.keys.IsKeyPressed(ebiten.KeyS) || ih.keys.IsKeyPressed(ebiten.KeyArrowDown) {
		forward--
	}
	if ih.keys.IsKeyPressed(ebiten.KeyD) {
		strafe++
	}
	if ih.keys.IsKeyPressed(ebiten.KeyA) {
		strafe--
	}

	step := cfg.GetMoveSpeed() * dt
	from := cam.Position
	cam.Move(forward*step, strafe*step)
	if ih.game.collider != nil {
		cam.Position = ih.game.collider.Resolve(from, cam.Position, cam.Height)
	}
}

// handleDebugInput toggles the overlay and queues snapshots
func (ih *InputHandler) handleDebugInput() {
	if ih.edges.IsKeyJustPressed(ebiten.KeyF1) {
		ih.game.showFPS = !ih.game.showFPS
	}
	if ih.edges.IsKeyJustPressed(ebiten.KeyF12) {
		ih.game.snapshotPending = true
	}
}
