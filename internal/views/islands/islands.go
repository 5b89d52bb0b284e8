// Package islands renders a chunk-granularity placement map: which chunks
// host outer islands and how big they are, plus the main island disc and the
// exclusion ring for orientation. It exercises only the placement queries,
// never per-block density, so it stays cheap at any zoom.
package islands

import (
	"image/color"
	"math"
	"strconv"

	"endscope/internal/core"
	"endscope/internal/terrain"
)

const (
	cellEmpty uint8 = iota
	cellMainIsland
	cellExclusion
	cellIslandSmall
	cellIslandMedium
	cellIslandLarge
)

var palette = []color.RGBA{
	{R: 12, G: 8, B: 20, A: 255},     // empty outer void
	{R: 219, G: 219, B: 163, A: 255}, // main island disc
	{R: 28, G: 20, B: 44, A: 255},    // exclusion ring
	{R: 120, G: 116, B: 84, A: 255},  // small island
	{R: 176, G: 172, B: 126, A: 255}, // medium island
	{R: 232, G: 230, B: 178, A: 255}, // large island
}

// View is a chunk-level island placement map.
type View struct {
	field *terrain.Field
	grid  *core.ByteGrid

	centerX, centerZ float64
	blocksPerCell    float64
	seed             int64
}

// Config controls the islands view raster.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256}
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

// New returns an islands view with the provided configuration.
func New(cfg Config) *View {
	return &View{
		field:         terrain.New(0),
		grid:          core.NewByteGrid(cfg.Width, cfg.Height),
		blocksPerCell: 32.0,
	}
}

// Name identifies the view.
func (v *View) Name() string { return "islands" }

// Size returns the raster dimensions.
func (v *View) Size() core.Size { return core.Size{W: v.grid.W, H: v.grid.H} }

// Cells exposes the rendered raster.
func (v *View) Cells() []uint8 { return v.grid.Cells() }

// Palette returns the placement map colors.
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

// SetBlocksPerCell adjusts the zoom. Chunk granularity is the floor: finer
// zooms would just repeat the same chunk across cells.
func (v *View) SetBlocksPerCell(b float64) {
	if b < terrain.ChunkSize {
		b = terrain.ChunkSize
	}
	if b > 2048 {
		b = 2048
	}
	v.blocksPerCell = b
}

// BlocksPerCell returns the current zoom.
func (v *View) BlocksPerCell() float64 { return v.blocksPerCell }

// Render classifies the chunk under each viewport cell.
func (v *View) Render() {
	cells := v.grid.Cells()
	halfW := float64(v.grid.W) / 2
	halfH := float64(v.grid.H) / 2
	for cy := 0; cy < v.grid.H; cy++ {
		wz := v.centerZ + (float64(cy)-halfH)*v.blocksPerCell
		for cx := 0; cx < v.grid.W; cx++ {
			wx := v.centerX + (float64(cx)-halfW)*v.blocksPerCell
			cells[v.grid.Index(cx, cy)] = v.classify(wx, wz)
		}
	}
}

func (v *View) classify(wx, wz float64) uint8 {
	dist := math.Sqrt(wx*wx + wz*wz)
	if dist < terrain.ExclusionZoneStart {
		return cellMainIsland
	}
	if dist < terrain.ExclusionZoneEnd {
		return cellExclusion
	}

	chunkX := int(math.Floor(wx / terrain.ChunkSize))
	chunkZ := int(math.Floor(wz / terrain.ChunkSize))
	info := v.field.Island(chunkX, chunkZ)
	if !info.Exists {
		return cellEmpty
	}
	switch {
	case info.Radius < 15:
		return cellIslandSmall
	case info.Radius < 25:
		return cellIslandMedium
	default:
		return cellIslandLarge
	}
}

func init() {
	core.Register("islands", func(cfg map[string]string) core.View {
		return New(FromMap(cfg))
	})
}
