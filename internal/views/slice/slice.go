// Package slice renders a horizontal cross-section of the density field at an
// adjustable altitude. Each cell samples one world coordinate and maps the
// signed density into a banded palette, which makes the region structure
// (dome, exclusion ring, island lenses) directly visible.
package slice

import (
	"fmt"
	"image/color"
	"strconv"

	"endscope/internal/core"
	"endscope/internal/terrain"
)

// Density bands from deep air to solid core.
const (
	cellVoid uint8 = iota
	cellAir
	cellSurface
	cellSolid
	cellCore
)

var palette = []color.RGBA{
	{R: 12, G: 8, B: 20, A: 255},     // void
	{R: 36, G: 28, B: 56, A: 255},    // thin air
	{R: 160, G: 152, B: 108, A: 255}, // surface shell
	{R: 219, G: 219, B: 163, A: 255}, // end stone
	{R: 245, G: 245, B: 200, A: 255}, // deep solid
}

// View is a horizontal density slice.
type View struct {
	field *terrain.Field
	grid  *core.ByteGrid

	centerX, centerZ float64
	blocksPerCell    float64
	sliceY           float64
	seed             int64
}

// Config controls the slice view raster and starting altitude.
type Config struct {
	Width  int
	Height int
	SliceY float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, SliceY: terrain.SeaLevel}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
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
	if v, ok := cfg["y"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.SliceY = parsed
		}
	}
	return c
}

// New returns a slice view with the provided configuration.
func New(cfg Config) *View {
	return &View{
		field:         terrain.New(0),
		grid:          core.NewByteGrid(cfg.Width, cfg.Height),
		blocksPerCell: 8.0,
		sliceY:        cfg.SliceY,
	}
}

// Name identifies the view.
func (v *View) Name() string { return "slice" }

// Size returns the raster dimensions.
func (v *View) Size() core.Size { return core.Size{W: v.grid.W, H: v.grid.H} }

// Cells exposes the rendered raster.
func (v *View) Cells() []uint8 { return v.grid.Cells() }

// Palette returns the density band colors.
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

// SetBlocksPerCell adjusts the zoom; each raster cell covers b blocks.
func (v *View) SetBlocksPerCell(b float64) {
	if b < 0.25 {
		b = 0.25
	}
	if b > 512 {
		b = 512
	}
	v.blocksPerCell = b
}

// BlocksPerCell returns the current zoom.
func (v *View) BlocksPerCell() float64 { return v.blocksPerCell }

// SliceY returns the slice altitude.
func (v *View) SliceY() float64 { return v.sliceY }

// ProbeDensity reports the density at the slice altitude for column (wx, wz).
func (v *View) ProbeDensity(wx, wz float64) float64 {
	return v.field.Sample(wx, v.sliceY, wz)
}

// Render samples the density field across the viewport at the slice altitude.
func (v *View) Render() {
	cells := v.grid.Cells()
	halfW := float64(v.grid.W) / 2
	halfH := float64(v.grid.H) / 2
	for cy := 0; cy < v.grid.H; cy++ {
		wz := v.centerZ + (float64(cy)-halfH)*v.blocksPerCell
		for cx := 0; cx < v.grid.W; cx++ {
			wx := v.centerX + (float64(cx)-halfW)*v.blocksPerCell
			d := v.field.Sample(wx, v.sliceY, wz)
			cells[v.grid.Index(cx, cy)] = bandFor(d)
		}
	}
}

func bandFor(d float64) uint8 {
	switch {
	case d < -0.5:
		return cellVoid
	case d < 0:
		return cellAir
	case d < 2:
		return cellSurface
	case d < 10:
		return cellSolid
	default:
		return cellCore
	}
}

// Parameters reports the slice state for the HUD.
func (v *View) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "y", Label: "Slice Y", Type: core.ParamTypeFloat, Value: fmt.Sprintf("%.0f", v.sliceY)},
		{Key: "zoom", Label: "Blocks/cell", Type: core.ParamTypeFloat, Value: fmt.Sprintf("%.2f", v.blocksPerCell)},
	}}
}

// ParameterControls exposes the HUD-adjustable controls.
func (v *View) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "y", Label: "Slice Y", Type: core.ParamTypeFloat, Step: 8, Min: -64, Max: 256, HasMin: true, HasMax: true},
		{Key: "zoom", Label: "Blocks/cell", Type: core.ParamTypeFloat, Step: 1, Min: 0.25, Max: 512, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a control value from the HUD.
func (v *View) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "y":
		v.sliceY = value
		return true
	case "zoom":
		v.SetBlocksPerCell(value)
		return true
	}
	return false
}

func init() {
	core.Register("slice", func(cfg map[string]string) core.View {
		return New(FromMap(cfg))
	})
}
