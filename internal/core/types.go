package core

import "image/color"

// Size describes the dimensions of a view raster in cells.
type Size struct {
	W int
	H int
}

// View is a deterministic map rendering of the terrain density field. A view
// owns its field, resets from a seed, and re-samples its cell raster on
// demand as the viewport moves. Cell values index into the view's palette.
type View interface {
	Name() string
	Size() Size
	Reset(seed int64)
	SetCenter(x, z float64)
	Center() (x, z float64)
	SetBlocksPerCell(b float64)
	BlocksPerCell() float64
	Render()
	Cells() []uint8
	Palette() []color.RGBA
}

// Factory constructs a View using an optional configuration map.
type Factory func(cfg map[string]string) View

var views = map[string]Factory{}

// Register adds a view factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	views[name] = f
}

// Views exposes the registry of available view factories.
func Views() map[string]Factory {
	return views
}
