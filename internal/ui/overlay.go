//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"endscope/internal/camera"
	"endscope/internal/core"
	"endscope/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// densityProber is implemented by views that can report a density value for
// a world column, used for the cursor probe readout.
type densityProber interface {
	ProbeDensity(wx, wz float64) float64
}

// Overlay draws navigation aids on top of the rendered view: the region
// ring outlines, a cursor density probe, and a camera readout line.
type Overlay struct {
	view  core.View
	cam   *camera.Camera
	scale int

	showRings   bool
	showProbe   bool
	showReadout bool

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for the provided view and camera.
func NewOverlay(view core.View, cam *camera.Camera, scale int) *Overlay {
	o := &Overlay{
		view:        view,
		cam:         cam,
		scale:       scale,
		showRings:   true,
		showReadout: true,
	}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay layers from the number keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showRings = !o.showRings
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showProbe = !o.showProbe
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showReadout = !o.showReadout
	}
}

// Draw renders the enabled overlay layers onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showRings {
		o.drawRing(screen, terrain.ExclusionZoneStart, color.RGBA{R: 235, G: 220, B: 130, A: 160})
		o.drawRing(screen, terrain.ExclusionZoneEnd, color.RGBA{R: 150, G: 100, B: 220, A: 160})
	}
	if o.showProbe {
		o.drawProbe(screen)
	}
	if o.showReadout {
		o.drawReadout(screen)
	}
}

// worldToScreen maps a world (x, z) coordinate through the view's viewport
// onto screen pixels.
func (o *Overlay) worldToScreen(wx, wz float64) (float64, float64) {
	cx, cz := o.view.Center()
	bpc := o.view.BlocksPerCell()
	size := o.view.Size()
	sx := ((wx-cx)/bpc + float64(size.W)/2) * float64(o.scale)
	sy := ((wz-cz)/bpc + float64(size.H)/2) * float64(o.scale)
	return sx, sy
}

// drawRing outlines a circle of the given world radius around the origin.
func (o *Overlay) drawRing(screen *ebiten.Image, radius float64, col color.RGBA) {
	// Segment count scales with the on-screen circumference so the ring
	// stays round when zoomed in.
	onScreenRadius := radius / o.view.BlocksPerCell() * float64(o.scale)
	segments := int(clamp(onScreenRadius/3, 48, 720))

	prevX, prevY := o.worldToScreen(radius, 0)
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / float64(segments)
		sx, sy := o.worldToScreen(math.Cos(angle)*radius, math.Sin(angle)*radius)
		o.drawLine(screen, prevX, prevY, sx, sy, 1.5, col)
		prevX, prevY = sx, sy
	}
}

// drawProbe samples the view's density under the cursor and prints it next
// to a crosshair.
func (o *Overlay) drawProbe(screen *ebiten.Image) {
	prober, ok := o.view.(densityProber)
	if !ok {
		return
	}
	mx, my := ebiten.CursorPosition()

	cx, cz := o.view.Center()
	bpc := o.view.BlocksPerCell()
	size := o.view.Size()
	wx := cx + (float64(mx)/float64(o.scale)-float64(size.W)/2)*bpc
	wz := cz + (float64(my)/float64(o.scale)-float64(size.H)/2)*bpc

	d := prober.ProbeDensity(wx, wz)

	cross := color.RGBA{R: 255, G: 255, B: 255, A: 200}
	o.drawLine(screen, float64(mx)-6, float64(my), float64(mx)+6, float64(my), 1, cross)
	o.drawLine(screen, float64(mx), float64(my)-6, float64(mx), float64(my)+6, 1, cross)

	label := fmt.Sprintf("(%.0f, %.0f) d=%+.2f", wx, wz, d)
	text.Draw(screen, label, basicfont.Face7x13, mx+10, my-6, color.White)
}

// drawReadout prints the camera state in the top-left corner.
func (o *Overlay) drawReadout(screen *ebiten.Image) {
	line := fmt.Sprintf("pos (%.1f, %.1f, %.1f)  speed %.0f  lod %.1f",
		o.cam.X, o.cam.Y, o.cam.Z, o.cam.Speed(), o.cam.LODFactor())
	text.Draw(screen, line, basicfont.Face7x13, 6, 14, color.White)

	ox, oy, oz := o.cam.ChunkOrigin()
	lx, ly, lz := o.cam.LocalOffset()
	line = fmt.Sprintf("chunk (%d, %d, %d) + (%.2f, %.2f, %.2f)", ox, oy, oz, lx, ly, lz)
	text.Draw(screen, line, basicfont.Face7x13, 6, 28, color.White)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
