package game

import (
	"time"

	"wallcaster/internal/rendering"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Update handles input and camera movement for one tick
func (g *Game) Update() error {
	frameTimer := g.monitor.StartFrame()
	defer frameTimer.EndFrame()

	dt := 1.0 / float64(ebiten.TPS())
	return g.input.HandleInput(dt)
}

// Draw renders the scene into the framebuffer and presents it
func (g *Game) Draw(screen *ebiten.Image) {
	renderTimer := g.monitor.StartRender()
	stats := g.renderer.RenderFrame(g.frame, g.camera)
	renderTimer.EndRender(stats.Walls, stats.Hits, stats.Pixels)
	g.lastStats = stats

	if g.frameImage == nil {
		g.frameImage = ebiten.NewImage(g.frame.Width, g.frame.Height)
	}
	g.frameImage.WritePixels(g.frame.Pix)

	screen.Fill(g.background)
	screen.DrawImage(g.frameImage, nil)

	g.tickFPS()
	if g.showFPS {
		g.drawHUD(screen)
	}

	if g.snapshotPending {
		g.snapshotPending = false
		g.saveSnapshot()
	}
}

// Layout returns the framebuffer size; ebiten scales it to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.frame.Width, g.frame.Height
}

func (g *Game) tickFPS() {
	now := time.Now()
	if g.lastDraw.IsZero() {
		g.lastDraw = now
		return
	}
	dt := now.Sub(g.lastDraw).Seconds()
	g.lastDraw = now

	fps, ok := g.fps.Tick(dt)
	if !ok {
		return
	}

	metrics := g.monitor.GetCurrentMetrics()
	g.logger.Debug("frame rate",
		zap.Float64("fps", fps),
		zap.Duration("render_avg", metrics.AvgRenderTime),
		zap.Uint64("hits", metrics.HitsPerFrame),
		zap.Uint64("pixels", metrics.PixelsPerFrame))

	for _, alert := range g.monitor.CheckPerformanceAlerts(float64(ebiten.TPS())) {
		g.logger.Warn(alert.Message,
			zap.String("type", alert.Type),
			zap.Float64("value_ms", alert.Value),
			zap.Float64("threshold_ms", alert.Threshold))
	}
}

func (g *Game) saveSnapshot() {
	path, err := rendering.SaveSnapshot(g.config.Debug.SnapshotDir, g.frame)
	if err != nil {
		g.logger.Error("snapshot failed", zap.Error(err))
		return
	}
	g.logger.Info("snapshot saved",
		zap.String("path", path),
		zap.String("checksum", formatChecksum(g.frame.Checksum())))
}
