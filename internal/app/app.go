//go:build ebiten

package app

import (
	"time"

	"endscope/internal/camera"
	"endscope/internal/core"
	"endscope/internal/render"
	"endscope/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a terrain view plus a double-precision camera to the
// ebiten.Game interface. Re-sampling the density field is the expensive
// operation, so it runs through a FixedStep throttle and only when the
// viewport actually changed.
type Game struct {
	view    core.View
	cam     *camera.Camera
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	resample *core.FixedStep
	scale    int
	seed     int64
	paused   bool
	dirty    bool
}

// New constructs a Game for the provided view.
func New(view core.View, cfg *Config) *Game {
	size := view.Size()
	cam := camera.New()
	g := &Game{
		view:     view,
		cam:      cam,
		painter:  render.NewGridPainter(size.W, size.H),
		resample: core.NewFixedStep(4),
		scale:    cfg.Scale,
		seed:     cfg.Seed,
	}
	g.overlay = ui.NewOverlay(view, cam, cfg.Scale)
	g.hud = ui.NewHUD(view)
	g.hud.Seed("zoom", view.BlocksPerCell())
	// The view renders once during setup before the camera exists; align the
	// viewport with the camera and let the first Update re-sample.
	view.SetCenter(cam.X, cam.Z)
	g.dirty = true
	return g
}

// Reset reinitializes the view and camera with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.cam.Reset()
	g.view.SetCenter(g.cam.X, g.cam.Z)
	g.view.Reset(seed)
	g.dirty = false
}

// Update handles per-frame input and re-samples the view when needed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.Reset(time.Now().UnixNano())
	}

	g.handleMovement()

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil && g.hud.Update() {
		g.dirty = true
	}

	if g.dirty && !g.paused && g.resample.ShouldStep() {
		g.view.Render()
		g.dirty = false
	}
	return nil
}

// handleMovement pans the camera with WASD/arrows, changes altitude with
// PageUp/PageDown, and zooms with Z/X. Panning speed comes from the camera's
// scale-aware speed model.
func (g *Game) handleMovement() {
	dt := 1.0 / float64(ebiten.TPS())

	var dx, dz float64
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dz -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dz += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += 1
	}

	var dy float64
	if ebiten.IsKeyPressed(ebiten.KeyPageUp) {
		dy += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyPageDown) {
		dy -= 1
	}

	if dx != 0 || dy != 0 || dz != 0 {
		g.cam.Move(dx, dy, dz, dt)
		g.view.SetCenter(g.cam.X, g.cam.Z)
		g.dirty = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.view.SetBlocksPerCell(g.view.BlocksPerCell() * 2)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.view.SetBlocksPerCell(g.view.BlocksPerCell() / 2)
		g.dirty = true
	}
}

// Draw renders the current raster plus overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.view.Cells(), g.view.Palette(), g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.view.Size()
	return s.W * g.scale, s.H * g.scale
}
