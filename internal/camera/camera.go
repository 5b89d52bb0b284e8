// Package camera tracks a double-precision observer position over the
// terrain and derives the values single-precision consumers need: an integer
// chunk origin plus a small local offset, a movement speed that scales with
// scale, and an octave budget for level of detail. Nothing here samples
// terrain; the density core stays a pure callee.
package camera

import "math"

const chunkSize = 16.0

// Default start position: above the main island, looking at terrain scale.
const (
	startX = 0.0
	startY = 100.0
	startZ = 200.0
)

// Camera holds the observer position in full float64 precision. Positions
// out to 100,000+ blocks from origin need the double mantissa; the float32
// boundary is crossed only through LocalOffset.
type Camera struct {
	X, Y, Z float64

	// BaseSpeed is blocks per second at ground level near origin;
	// SpeedMultiplier is the user-adjustable factor on top.
	BaseSpeed       float64
	SpeedMultiplier float64
}

// New returns a camera at the default start position.
func New() *Camera {
	c := &Camera{BaseSpeed: 10.0, SpeedMultiplier: 1.0}
	c.Reset()
	return c
}

// Reset moves the camera back to the start position.
func (c *Camera) Reset() {
	c.X, c.Y, c.Z = startX, startY, startZ
}

// TeleportTo places the camera at the given world coordinates.
func (c *Camera) TeleportTo(x, y, z float64) {
	c.X, c.Y, c.Z = x, y, z
}

// Move displaces the camera by (dx, dy, dz) scaled by the current speed and
// the elapsed time in seconds.
func (c *Camera) Move(dx, dy, dz, dt float64) {
	step := c.Speed() * dt
	c.X += dx * step
	c.Y += dy * step
	c.Z += dz * step
}

// Speed returns the current movement speed in blocks per second. It grows
// logarithmically with both altitude and horizontal distance from origin, so
// navigation stays workable from block scale out to the far island ring.
func (c *Camera) Speed() float64 {
	altitude := math.Max(0.0, c.Y)
	scaleFactor := 1.0 + math.Log(1.0+altitude*0.01)

	horizDist := math.Sqrt(c.X*c.X + c.Z*c.Z)
	distFactor := 1.0 + math.Log(1.0+horizDist*0.001)

	return c.BaseSpeed * c.SpeedMultiplier * scaleFactor * distFactor
}

// AdjustSpeed scales the speed multiplier, clamped to [0.1, 100].
func (c *Camera) AdjustSpeed(factor float64) {
	c.SpeedMultiplier = math.Min(math.Max(c.SpeedMultiplier*factor, 0.1), 100.0)
}

// ChunkOrigin returns the integer chunk coordinate containing the camera.
func (c *Camera) ChunkOrigin() (int, int, int) {
	return int(math.Floor(c.X / chunkSize)),
		int(math.Floor(c.Y / chunkSize)),
		int(math.Floor(c.Z / chunkSize))
}

// LocalOffset returns the camera position relative to its chunk origin. Each
// component is in [0, 16), small enough to survive a float32 round trip,
// which is the decomposition GPU-side consumers rely on.
func (c *Camera) LocalOffset() (float64, float64, float64) {
	cx, cy, cz := c.ChunkOrigin()
	return c.X - float64(cx)*chunkSize,
		c.Y - float64(cy)*chunkSize,
		c.Z - float64(cz)*chunkSize
}

// DistanceFromOrigin returns the camera's 3D distance from the world origin.
func (c *Camera) DistanceFromOrigin() float64 {
	return math.Sqrt(c.X*c.X + c.Y*c.Y + c.Z*c.Z)
}

// LODFactor maps the viewing scale to [0, 4]: 0 is full detail near the
// terrain, 4 is the coarsest level at cosmic distance.
func (c *Camera) LODFactor() float64 {
	dist := math.Max(math.Max(c.Y, 0), c.DistanceFromOrigin())
	return clamp(math.Log2(dist/100.0+1.0), 0.0, 4.0)
}

// Octaves reduces a base octave count by the current LOD factor, never below
// one octave.
func (c *Camera) Octaves(base int) int {
	octaves := base - int(c.LODFactor())
	if octaves < 1 {
		return 1
	}
	return octaves
}

// StepMultiplier widens the sampling stride as detail drops: 2^LOD.
func (c *Camera) StepMultiplier() float64 {
	return math.Pow(2.0, c.LODFactor())
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
