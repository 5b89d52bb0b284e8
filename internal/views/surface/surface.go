// Package surface renders a top-down elevation map: each cell scans its
// world column downward for the highest solid sample and shades it by
// altitude. Columns with no solid terrain in range render as void.
package surface

import (
	"image/color"
	"strconv"

	"endscope/internal/core"
	"endscope/internal/terrain"
)

const (
	scanTop    = 128.0
	scanBottom = 0.0
	scanStep   = 2.0

	// Cell 0 is void; elevations map to 1..elevationBands.
	elevationBands = 16
)

var palette = buildPalette()

// buildPalette produces a void entry plus a dark-to-pale elevation gradient.
func buildPalette() []color.RGBA {
	p := make([]color.RGBA, elevationBands+1)
	p[0] = color.RGBA{R: 12, G: 8, B: 20, A: 255}
	low := color.RGBA{R: 84, G: 80, B: 58, A: 255}
	high := color.RGBA{R: 245, G: 245, B: 200, A: 255}
	for i := 1; i <= elevationBands; i++ {
		t := float64(i-1) / float64(elevationBands-1)
		p[i] = color.RGBA{
			R: lerpComponent(low.R, high.R, t),
			G: lerpComponent(low.G, high.G, t),
			B: lerpComponent(low.B, high.B, t),
			A: 255,
		}
	}
	return p
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// View is a top-down surface elevation map.
type View struct {
	field *terrain.Field
	grid  *core.ByteGrid

	centerX, centerZ float64
	blocksPerCell    float64
	seed             int64
}

// Config controls the surface view raster.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 192, Height: 192}
}

// FromMap populates the config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	return c
}

// New returns a surface view with the provided configuration.
func New(cfg Config) *View {
	return &View{
		field:         terrain.New(0),
		grid:          core.NewByteGrid(cfg.Width, cfg.Height),
		blocksPerCell: 8.0,
	}
}

// Name identifies the view.
func (v *View) Name() string { return "surface" }

// Size returns the raster dimensions.
func (v *View) Size() core.Size { return core.Size{W: v.grid.W, H: v.grid.H} }

// Cells exposes the rendered raster.
func (v *View) Cells() []uint8 { return v.grid.Cells() }

// Palette returns the elevation gradient.
func (v *View) Palette() []color.RGBA { return palette }

// Reset rebuilds the density field from the seed and re-renders.
func (v *View) Reset(seed int64) {
	v.seed = seed
	v.field = terrain.New(seed)
	v.Render()
}

// SetCenter moves the viewport center to world coordinate (x, z).
func (v *View) SetCenter(x, z float64) { v.centerX, v.centerZ = x, z }

// Center returns the viewport center.
func (v *View) Center() (float64, float64) { return v.centerX, v.centerZ }

// SetBlocksPerCell adjusts the zoom.
func (v *View) SetBlocksPerCell(b float64) {
	if b < 1 {
		b = 1
	}
	if b > 512 {
		b = 512
	}
	v.blocksPerCell = b
}

// BlocksPerCell returns the current zoom.
func (v *View) BlocksPerCell() float64 { return v.blocksPerCell }

// ProbeDensity reports the sea-level density for column (wx, wz).
func (v *View) ProbeDensity(wx, wz float64) float64 {
	return v.field.Sample(wx, terrain.SeaLevel, wz)
}

// Render scans each viewport column for its surface elevation.
func (v *View) Render() {
	cells := v.grid.Cells()
	halfW := float64(v.grid.W) / 2
	halfH := float64(v.grid.H) / 2
	for cy := 0; cy < v.grid.H; cy++ {
		wz := v.centerZ + (float64(cy)-halfH)*v.blocksPerCell
		for cx := 0; cx < v.grid.W; cx++ {
			wx := v.centerX + (float64(cx)-halfW)*v.blocksPerCell
			cells[v.grid.Index(cx, cy)] = v.surfaceCell(wx, wz)
		}
	}
}

// surfaceCell walks the column top-down and returns the elevation band of
// the first solid sample, or the void cell when the column is all air.
func (v *View) surfaceCell(wx, wz float64) uint8 {
	for y := scanTop; y >= scanBottom; y -= scanStep {
		if v.field.Sample(wx, y, wz) > 0 {
			band := int((y - scanBottom) / (scanTop - scanBottom) * float64(elevationBands-1))
			return uint8(1 + band)
		}
	}
	return 0
}

func init() {
	core.Register("surface", func(cfg map[string]string) core.View {
		return New(FromMap(cfg))
	})
}
