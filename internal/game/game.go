package game

import (
	"image/color"
	"time"

	"wallcaster/internal/camera"
	"wallcaster/internal/collision"
	"wallcaster/internal/config"
	"wallcaster/internal/game/keytracker"
	"wallcaster/internal/mathutil"
	"wallcaster/internal/monitoring"
	"wallcaster/internal/rendering"
	"wallcaster/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Game is the ebiten shell around the renderer: it owns the camera, the
// framebuffer and the window-facing image the framebuffer is uploaded to.
type Game struct {
	config *config.Config
	logger *zap.Logger

	camera     camera.Camera
	collider   *collision.CollisionSystem // nil in noclip mode
	renderer   *rendering.Renderer
	frame      *rendering.Framebuffer
	frameImage *ebiten.Image // created on first Draw
	background color.RGBA

	input   *InputHandler
	monitor *monitoring.PerformanceMonitor
	fps     *monitoring.FPSCounter

	showFPS         bool
	snapshotPending bool
	lastDraw        time.Time
	lastStats       rendering.Stats
}

// NewGame creates the game for scene. The camera starts at the scene's pose
// when it has one, otherwise at the configured start.
func NewGame(cfg *config.Config, scene *world.Scene, logger *zap.Logger) *Game {
	return newGame(cfg, scene, logger, keytracker.EbitenKeys{})
}

func newGame(cfg *config.Config, scene *world.Scene, logger *zap.Logger, keys keytracker.KeySource) *Game {
	bg := cfg.Display.Background
	g := &Game{
		config:     cfg,
		logger:     logger,
		camera:     startCamera(cfg, scene),
		renderer:   rendering.NewRenderer(scene),
		frame:      rendering.NewFramebuffer(cfg.GetFrameWidth(), cfg.GetFrameHeight()),
		background: color.RGBA{R: uint8(bg[0]), G: uint8(bg[1]), B: uint8(bg[2]), A: 255},
		monitor:    monitoring.NewPerformanceMonitor(),
		fps:        monitoring.NewFPSCounter(cfg.Debug.FPSInterval),
		showFPS:    cfg.Debug.ShowFPS,
	}
	if !cfg.Movement.NoClip {
		g.collider = collision.NewCollisionSystem(scene, cfg.Movement.Radius)
	}
	g.input = NewInputHandler(g, keys)

	logger.Info("game created",
		zap.Int("frame_width", g.frame.Width),
		zap.Int("frame_height", g.frame.Height),
		zap.Int("walls", scene.Len()),
		zap.Float64("camera_x", g.camera.Position.X),
		zap.Float64("camera_y", g.camera.Position.Y))
	return g
}

func startCamera(cfg *config.Config, scene *world.Scene) camera.Camera {
	cam := camera.New(
		mathutil.V2(cfg.Camera.StartX, cfg.Camera.StartY),
		cfg.GetStartAngle(),
		cfg.Camera.Height,
		cfg.GetCameraFOV(),
	)
	if pose, ok := scene.Start(); ok {
		cam.Place(pose)
	}
	return cam
}

// Camera returns a copy of the current camera state.
func (g *Game) Camera() camera.Camera {
	return g.camera
}

// Monitor returns the game's performance monitor.
func (g *Game) Monitor() *monitoring.PerformanceMonitor {
	return g.monitor
}
