package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	View   string
	Seed   int64
	Width  int
	Height int
	Scale  int
	TPS    int
	Zoom   float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{View: "slice", Seed: 0, Width: 256, Height: 256, Scale: 3, TPS: 60, Zoom: 8}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.View, "view", c.View, "view to open (slice, surface, islands)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "world seed")
	fs.IntVar(&c.Width, "w", c.Width, "raster width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "raster height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Float64Var(&c.Zoom, "zoom", c.Zoom, "blocks per raster cell")
}

// ViewConfig converts the raster settings into the string map the view
// factories consume.
func (c *Config) ViewConfig() map[string]string {
	return map[string]string{
		"w": strconv.Itoa(c.Width),
		"h": strconv.Itoa(c.Height),
	}
}
