// Command scene_viewer draws a scene file from above: walls, the start pose
// and the view frustum of the configured camera.
package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"wallcaster/internal/camera"
	"wallcaster/internal/config"
	"wallcaster/internal/logging"
	"wallcaster/internal/mathutil"
	"wallcaster/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
)

const (
	windowWidth  = 1200
	windowHeight = 800
	sidebarWidth = 300

	frustumLength = 6.0
)

const (
	tabInfo = iota
	tabWalls
)

type viewer struct {
	cfg        *config.Config
	scene      *world.Scene
	camera     camera.Camera
	sidebarTab int
	wallLines  []string
	wallScroll int
	zoom       float64
}

func main() {
	ensureRuntimeCWD()

	cfg := config.MustLoadConfig("config.yaml")
	logger := logging.Must(cfg.Logging)
	defer func() { _ = logger.Sync() }()

	path := cfg.Assets.SceneFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	scene, err := world.LoadSceneFile(context.Background(), path, logger)
	if err != nil {
		logger.Fatal("failed to load scene", zap.String("path", path), zap.Error(err))
	}

	cam := camera.New(
		mathutil.V2(cfg.Camera.StartX, cfg.Camera.StartY),
		cfg.GetStartAngle(),
		cfg.Camera.Height,
		cfg.GetCameraFOV(),
	)
	if pose, ok := scene.Start(); ok {
		cam.Place(pose)
	}

	v := &viewer{
		cfg:       cfg,
		scene:     scene,
		camera:    cam,
		wallLines: buildWallLines(scene),
		zoom:      1,
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("wallcaster scene viewer: " + filepath.Base(path))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("viewer exited", zap.Error(err))
	}
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if v.sidebarTab == tabInfo {
			v.sidebarTab = tabWalls
		} else {
			v.sidebarTab = tabInfo
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		v.sidebarTab = tabInfo
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		v.sidebarTab = tabWalls
	}

	dt := 1.0 / float64(ebiten.TPS())
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		v.camera.Rotate(v.cfg.GetRotSpeed() * dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		v.camera.Rotate(-v.cfg.GetRotSpeed() * dt)
	}
	step := v.cfg.GetMoveSpeed() * dt
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		v.camera.Move(step, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		v.camera.Move(-step, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		v.camera.Move(0, step)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		v.camera.Move(0, -step)
	}

	_, wheelY := ebiten.Wheel()
	if v.sidebarTab == tabWalls {
		if wheelY != 0 {
			v.wallScroll -= int(wheelY * 14)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
			v.wallScroll += 14 * 8
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
			v.wallScroll -= 14 * 8
		}
		v.wallScroll = mathutil.IntClamp(v.wallScroll, 0, v.maxWallScroll())
	} else if wheelY != 0 {
		v.zoom = mathutil.Clamp(v.zoom*math.Pow(1.1, wheelY), 0.25, 8)
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 15, 22, 255})

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()

	padding := 16
	mapAreaW := screenW - sidebarWidth - padding*3
	mapAreaH := screenH - padding*2
	mapAreaX := padding
	mapAreaY := padding
	sidebarX := mapAreaX + mapAreaW + padding

	v.drawScenePanel(screen, mapAreaX, mapAreaY, mapAreaW, mapAreaH)
	v.drawSidebar(screen, sidebarX, padding, sidebarWidth, mapAreaH)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return windowWidth, windowHeight
}

func (v *viewer) maxWallScroll() int {
	lineHeight := 14
	padding := 12
	tabHeight := 24
	sidebarHeight := windowHeight - padding*2
	contentHeight := max(sidebarHeight-tabHeight-padding, lineHeight)
	totalHeight := len(v.wallLines) * lineHeight
	if totalHeight <= contentHeight {
		return 0
	}
	return totalHeight - contentHeight
}

// view maps world coordinates into a screen rectangle. World +Y points up on
// screen.
type view struct {
	originX, originY float64 // screen position of the world origin
	scale            float64 // pixels per world unit
}

func (vw view) toScreen(p mathutil.Vec2) (float32, float32) {
	return float32(vw.originX + p.X*vw.scale), float32(vw.originY - p.Y*vw.scale)
}

// fitView centres the bounds of the scene and the camera in a w x h
// rectangle at (x, y), leaving a margin of one unit around them.
func fitView(walls []world.Wall, cam mathutil.Vec2, x, y, w, h int, zoom float64) view {
	lo, hi := cam, cam
	for _, wall := range walls {
		for _, p := range []mathutil.Vec2{wall.A(), wall.B()} {
			lo = mathutil.V2(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y))
			hi = mathutil.V2(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y))
		}
	}
	lo = lo.Sub(mathutil.V2(1, 1))
	hi = hi.Add(mathutil.V2(1, 1))

	size := hi.Sub(lo)
	scale := math.Min(float64(w)/size.X, float64(h)/size.Y) * zoom
	centre := lo.Add(hi).Div(2)
	return view{
		originX: float64(x) + float64(w)/2 - centre.X*scale,
		originY: float64(y) + float64(h)/2 + centre.Y*scale,
		scale:   scale,
	}
}

func (v *viewer) drawScenePanel(screen *ebiten.Image, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{20, 20, 35, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	walls := v.scene.Walls()
	vw := fitView(walls, v.camera.Position, x, y, w, h, v.zoom)

	// Origin axes
	ax0, ay0 := vw.toScreen(mathutil.V2(-1, 0))
	ax1, ay1 := vw.toScreen(mathutil.V2(1, 0))
	vector.StrokeLine(screen, ax0, ay0, ax1, ay1, 1, color.RGBA{50, 50, 70, 255}, true)
	ax0, ay0 = vw.toScreen(mathutil.V2(0, -1))
	ax1, ay1 = vw.toScreen(mathutil.V2(0, 1))
	vector.StrokeLine(screen, ax0, ay0, ax1, ay1, 1, color.RGBA{50, 50, 70, 255}, true)

	v.drawFrustum(screen, vw)

	for i := range walls {
		wall := &walls[i]
		x0, y0 := vw.toScreen(wall.A())
		x1, y1 := vw.toScreen(wall.B())
		vector.StrokeLine(screen, x0, y0, x1, y1, 3, wallColor(wall), true)
		vector.DrawFilledCircle(screen, x0, y0, 3, color.RGBA{200, 200, 220, 255}, true)
		vector.DrawFilledCircle(screen, x1, y1, 3, color.RGBA{200, 200, 220, 255}, true)
		ebitenutil.DebugPrintAt(screen, fmt.Sprint(i), int((x0+x1)/2)+4, int((y0+y1)/2)+2)
	}

	if pose, ok := v.scene.Start(); ok {
		sx, sy := vw.toScreen(pose.Position)
		vector.StrokeCircle(screen, sx, sy, 6, 1, color.RGBA{50, 200, 255, 255}, true)
	}

	cx, cy := vw.toScreen(v.camera.Position)
	vector.DrawFilledCircle(screen, cx, cy, 5, color.RGBA{255, 220, 0, 255}, true)

	ebitenutil.DebugPrintAt(screen, "W/S/A/D move, Left/Right turn, wheel zooms, Esc quits", x+12, y+8)
}

func (v *viewer) drawFrustum(screen *ebiten.Image, vw view) {
	dir := v.camera.Direction()
	right := v.camera.Right()
	halfWidth := math.Tan(v.camera.FOVH/2) * frustumLength

	pos := v.camera.Position
	far := pos.Add(dir.Scale(frustumLength))
	left := far.Sub(right.Scale(halfWidth))
	rightEdge := far.Add(right.Scale(halfWidth))

	frustumColor := color.RGBA{255, 220, 0, 120}
	cx, cy := vw.toScreen(pos)
	for _, p := range []mathutil.Vec2{left, rightEdge} {
		px, py := vw.toScreen(p)
		vector.StrokeLine(screen, cx, cy, px, py, 1, frustumColor, true)
	}
	fx, fy := vw.toScreen(far)
	vector.StrokeLine(screen, cx, cy, fx, fy, 1, color.RGBA{255, 220, 0, 60}, true)
}

func (v *viewer) drawSidebar(screen *ebiten.Image, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{18, 18, 26, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	tabHeight := 24
	drawSidebarTabs(screen, x, y, w, tabHeight, v.sidebarTab)
	row := y + tabHeight + 12

	if v.sidebarTab == tabWalls {
		drawLineList(screen, x, row, h-(row-y)-12, v.wallLines, v.wallScroll)
		return
	}

	textures := 0
	if lib := v.scene.Textures(); lib != nil {
		textures = lib.Len()
	}
	pos := v.camera.Position
	stats := []string{
		fmt.Sprintf("Walls: %d", v.scene.Len()),
		fmt.Sprintf("Textures: %d", textures),
		fmt.Sprintf("Camera: %.2f, %.2f", pos.X, pos.Y),
		fmt.Sprintf("Angle: %.1f deg", v.camera.Angle()*180/math.Pi),
		fmt.Sprintf("Height: %.2f", v.camera.Height),
		fmt.Sprintf("FOV: %.1f deg", v.camera.FOVH*180/math.Pi),
		fmt.Sprintf("Zoom: %.2fx", v.zoom),
	}
	for _, line := range stats {
		ebitenutil.DebugPrintAt(screen, line, x+12, row)
		row += 16
	}

	row += 8
	ebitenutil.DebugPrintAt(screen, "Markers:", x+12, row)
	row += 16
	ebitenutil.DebugPrintAt(screen, "Yellow: camera  Cyan: start", x+12, row)
}

func drawSidebarTabs(screen *ebiten.Image, x, y, w, h int, active int) {
	tabW := w / 2
	infoColor := color.RGBA{40, 40, 55, 255}
	wallsColor := color.RGBA{40, 40, 55, 255}
	if active == tabInfo {
		infoColor = color.RGBA{70, 70, 95, 255}
	} else {
		wallsColor = color.RGBA{70, 70, 95, 255}
	}
	drawFilledRect(screen, x, y, tabW, h, infoColor)
	drawFilledRect(screen, x+tabW, y, w-tabW, h, wallsColor)
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})
	ebitenutil.DebugPrintAt(screen, "Info (1)", x+10, y+6)
	ebitenutil.DebugPrintAt(screen, "Walls (2)", x+tabW+10, y+6)
}

func drawLineList(screen *ebiten.Image, x, y, h int, lines []string, scroll int) {
	lineHeight := 14
	startY := y - scroll
	for i, line := range lines {
		drawY := startY + i*lineHeight
		if drawY < y-lineHeight {
			continue
		}
		if drawY > y+h-lineHeight {
			break
		}
		ebitenutil.DebugPrintAt(screen, line, x+10, drawY)
	}
}

func buildWallLines(scene *world.Scene) []string {
	lines := []string{
		"Walls (index: a -> b  heights)",
		"------------------------------",
	}
	for i, w := range scene.Walls() {
		a, b := w.A(), w.B()
		lines = append(lines, fmt.Sprintf("%d: (%.1f,%.1f) -> (%.1f,%.1f)", i, a.X, a.Y, b.X, b.Y))
		lines = append(lines, fmt.Sprintf("    %.2f..%.2f  len %.2f", w.MinHeight(), w.MaxHeight(), w.Length()))
	}
	if lib := scene.Textures(); lib != nil {
		lines = append(lines, "", "Textures", "--------")
		for _, name := range lib.Names() {
			tex, _ := lib.Get(name)
			lines = append(lines, fmt.Sprintf("%s %dx%d", name, tex.Width(), tex.Height()))
		}
	}
	return lines
}

// wallColor picks the texel at the centre of the wall's texture.
func wallColor(w *world.Wall) color.RGBA {
	tex := w.Texture()
	if tex == nil {
		return color.RGBA{200, 70, 70, 255}
	}
	c := tex.Sample(0.5, 0.5)
	c.A = 255
	return c
}

func drawFilledRect(screen *ebiten.Image, x, y, w, h int, clr color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func drawRectBorder(screen *ebiten.Image, x, y, w, h, thickness int, clr color.RGBA) {
	t := float32(thickness)
	fx := float32(x)
	fy := float32(y)
	fw := float32(w)
	fh := float32(h)
	vector.DrawFilledRect(screen, fx, fy, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy+fh-t, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy, t, fh, clr, false)
	vector.DrawFilledRect(screen, fx+fw-t, fy, t, fh, clr, false)
}

func ensureRuntimeCWD() {
	if _, err := os.Stat("config.yaml"); err == nil {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	_ = os.Chdir(filepath.Dir(exe))
}
