package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	hudTextColor     = color.RGBA{R: 255, G: 255, B: 160, A: 255}
	hudBackdropColor = color.RGBA{A: 160}
)

// hudLines returns the overlay text for the current frame
func (g *Game) hudLines() []string {
	metrics := g.monitor.GetCurrentMetrics()
	pos := g.camera.Position
	return []string{
		fmt.Sprintf("%.1f FPS", g.fps.FPS()),
		fmt.Sprintf("render %.2fms", float64(metrics.AvgRenderTime.Microseconds())/1000),
		fmt.Sprintf("walls %d  hits %d  px %d", g.lastStats.Walls, g.lastStats.Hits, g.lastStats.Pixels),
		fmt.Sprintf("pos %.2f,%.2f", pos.X, pos.Y),
	}
}

// drawHUD draws the debug overlay in the top-left corner
func (g *Game) drawHUD(screen *ebiten.Image) {
	face := basicfont.Face7x13
	lines := g.hudLines()
	lineHeight := face.Metrics().Height.Round()

	w := float32(hudWidth(lines) + 8)
	h := float32(lineHeight*len(lines) + 6)
	vector.DrawFilledRect(screen, 0, 0, w, h, hudBackdropColor, false)

	y := 4 + face.Ascent
	for _, line := range lines {
		ebitext.Draw(screen, line, face, 4, y, hudTextColor)
		y += lineHeight
	}
}

// hudWidth returns the pixel width of the widest overlay line
func hudWidth(lines []string) int {
	w := 0
	for _, line := range lines {
		if lw := font.MeasureString(basicfont.Face7x13, line).Round(); lw > w {
			w = lw
		}
	}
	return w
}

func formatChecksum(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
