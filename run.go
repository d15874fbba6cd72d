package yuletide

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowStats draws FPS, speed and scene totals in the corner.
	ShowStats bool
	// Script, when set, drives the scene unattended.
	Script *Script
	// ScreenshotDir is where script screenshots are written.
	ScreenshotDir string
}

// speedStep is how much one key press changes the target speed.
const speedStep = 0.1

// toggleKeys maps keys to the category they toggle.
var toggleKeys = [...]struct {
	key ebiten.Key
	cat Category
}{
	{ebiten.KeyG, CategoryGifts},
	{ebiten.KeyK, CategoryStockings},
	{ebiten.KeyB, CategoryBells},
	{ebiten.KeyN, CategorySnow},
	{ebiten.KeyL, CategoryStringLights},
	{ebiten.KeyF, CategoryFloorDecor},
}

// viewer is the ebiten.Game driving a Scene.
type viewer struct {
	scene    *Scene
	camera   *Camera
	renderer *Renderer
	cfg      RunConfig
	shots    screenshotQueue
	elapsed  float64
}

// Run opens a window and animates the scene until the window is closed,
// Escape is pressed or the script quits. Keys: G K B N L F toggle gifts,
// stockings, bells, snow, string lights and floor decor; Up and Down change
// the speed; Tab toggles stats.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	v := &viewer{
		scene:    scene,
		camera:   NewCamera(),
		renderer: NewRenderer(),
		cfg:      cfg,
		shots:    screenshotQueue{dir: cfg.ScreenshotDir},
	}
	v.camera.Distance = v.camera.MaxDistance
	v.camera.ZoomTo(25, 2.5, ease.OutQuad)
	scene.Generate()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(v)
}

// SetSpeed, SetVisible and Screenshot make the viewer a ScriptTarget.

func (v *viewer) SetSpeed(s float64)                  { v.scene.SetSpeed(s) }
func (v *viewer) SetVisible(c Category, visible bool) { v.scene.SetVisible(c, visible) }
func (v *viewer) Screenshot(label string)             { v.shots.add(label) }

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, t := range toggleKeys {
		if inpututil.IsKeyJustPressed(t.key) {
			v.scene.SetVisible(t.cat, !v.scene.Visible(t.cat))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		v.scene.SetSpeed(v.scene.speed.Target() + speedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		v.scene.SetSpeed(v.scene.speed.Target() - speedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		v.cfg.ShowStats = !v.cfg.ShowStats
	}

	if sc := v.cfg.Script; sc != nil {
		sc.Step(v)
		if sc.Quit() {
			return ebiten.Termination
		}
	}

	dt := 1.0 / float64(ebiten.TPS())
	v.elapsed += dt
	v.scene.Update(v.elapsed, dt)
	v.camera.Update(dt, v.scene.Speed())
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	v.renderer.Draw(screen, v.scene, v.camera)
	v.shots.flush(screen)
	if v.cfg.ShowStats {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.1f  TPS: %.1f\nspeed: %.2f\npoints: %d  instances: %d\ndraw calls: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), v.scene.Speed(),
			v.scene.PointCount(), v.scene.InstanceCount(), v.renderer.DrawCalls()))
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
