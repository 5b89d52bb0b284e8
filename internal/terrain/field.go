// Package terrain models End-dimension terrain as a signed density field over
// world space. Positive samples are solid, negative are air, zero is the
// surface. The field is a pure function of a single 64-bit seed: a central
// island dome near the origin, an always-empty exclusion ring, and
// procedurally placed floating islands beyond it.
package terrain

import (
	"math"

	"endscope/pkg/noise"
)

// Region-shaping constants. World coordinates are in block units; a chunk is
// 16 blocks on a side.
const (
	MainIslandRadius   = 500.0
	ExclusionZoneStart = 500.0
	ExclusionZoneEnd   = 1024.0
	SeaLevel           = 64.0
	ChunkSize          = 16.0

	mainNoiseScale   = 0.02
	detailNoiseScale = 0.05
	islandCheckScale = 0.5
)

// Field answers density queries for one world seed. It owns three
// independently seeded noise channels and is immutable after New, so any
// number of goroutines may sample it concurrently.
type Field struct {
	islands *noise.Generator
	detail  *noise.Generator
	erosion *noise.Generator
}

// New constructs a Field for the given world seed. The three noise channels
// are seeded with seed, seed+1 and seed+2; the offsets keep the channels
// decorrelated while the whole field stays reconstructible from one seed.
func New(seed int64) *Field {
	return &Field{
		islands: noise.New(seed),
		detail:  noise.New(seed + 1),
		erosion: noise.New(seed + 2),
	}
}

// Sample returns the terrain density at world coordinate (x, y, z). The sign
// encodes solid (positive) versus air (negative). Coordinates stay in
// float64 throughout; at outer-island distances the placement math depends on
// sub-block precision that float32 cannot hold.
func (f *Field) Sample(x, y, z float64) float64 {
	horizontalDist := math.Sqrt(x*x + z*z)

	if horizontalDist < ExclusionZoneStart {
		return f.mainIslandDensity(x, y, z, horizontalDist)
	}

	// The exclusion ring is unconditionally air at every altitude.
	if horizontalDist < ExclusionZoneEnd {
		return -1.0
	}

	return f.outerIslandDensity(x, y, z)
}

// mainIslandDensity shapes the central island: a cosine dome intersected with
// the horizontal plane at y, roughened by two noise channels.
func (f *Field) mainIslandDensity(x, y, z, horizontalDist float64) float64 {
	heightAtDist := mainIslandHeight(horizontalDist)
	density := heightAtDist - (y - SeaLevel)

	// Large-scale variation, stretched vertically so features read as
	// columns rather than shelves.
	density += f.islands.Octave3D(
		x*mainNoiseScale,
		y*mainNoiseScale*2.0,
		z*mainNoiseScale,
		4, 0.5, 2.0,
	) * 8.0

	density += f.detail.Octave3D(
		x*detailNoiseScale,
		y*detailNoiseScale,
		z*detailNoiseScale,
		2, 0.5, 2.0,
	) * 2.0

	// Increasingly air-like below y=4 so the underside tapers off.
	if y < 4.0 {
		density -= (4.0 - y) * 2.0
	}

	return density
}

// mainIslandHeight is the dome profile: squared cosine from 40 at the center
// to zero at MainIslandRadius, and a hard -100 beyond it.
func mainIslandHeight(dist float64) float64 {
	if dist > MainIslandRadius {
		return -100.0
	}
	t := dist / MainIslandRadius
	falloff := math.Cos(t * math.Pi * 0.5)
	falloff *= falloff
	return 40.0 * falloff
}

// outerIslandDensity combines the islands hosted by the 3x3 chunk
// neighborhood around (x, z). Overlapping islands never stack: the strongest
// contributor wins, which avoids double-thick terrain where footprints meet.
// The 1.5x radius reject in sampleIsland together with the 16-block chunk
// size bounds the island radius this neighborhood search supports.
func (f *Field) outerIslandDensity(x, y, z float64) float64 {
	chunkX := int(math.Floor(x / ChunkSize))
	chunkZ := int(math.Floor(z / ChunkSize))

	density := -1.0
	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			island := f.Island(chunkX+dx, chunkZ+dz)
			if !island.Exists {
				continue
			}
			density = math.Max(density, f.sampleIsland(x, y, z, island))
		}
	}
	return density
}

// sampleIsland evaluates one island's contribution at (x, y, z): a lens
// centered at sea level with parabolic height falloff, organic noise with a
// per-island phase, and a smoothstep fade between 70% and 100% of the radius.
func (f *Field) sampleIsland(x, y, z float64, island IslandInfo) float64 {
	dx := x - island.CenterX
	dz := z - island.CenterZ
	horizDist := math.Sqrt(dx*dx + dz*dz)

	if horizDist > island.Radius*1.5 {
		return -1.0
	}

	normalizedHoriz := horizDist / island.Radius
	maxHeight := island.Height * (1.0 - normalizedHoriz*normalizedHoriz)
	maxHeight = math.Max(0.0, maxHeight)

	density := maxHeight - math.Abs(y-SeaLevel)

	// The center-dependent offset gives each island a distinct noise phase
	// even though all islands share one detail channel.
	density += f.detail.Octave3D(
		x*0.08+island.CenterX*0.01,
		y*0.1,
		z*0.08+island.CenterZ*0.01,
		3, 0.5, 2.0,
	) * 4.0

	edgeFalloff := 1.0 - smoothstep(0.7, 1.0, normalizedHoriz)
	return density * edgeFalloff
}

// smoothstep is the standard cubic Hermite ramp between edge0 and edge1.
func smoothstep(edge0, edge1, x float64) float64 {
	t := clamp((x-edge0)/(edge1-edge0), 0.0, 1.0)
	return t * t * (3.0 - 2.0*t)
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
