package terrain

import "math"

// IslandInfo describes the footprint of one procedurally placed outer island.
// It is derived on demand from the chunk coordinate and never cached here;
// callers that need caching layer it on top.
type IslandInfo struct {
	CenterX, CenterZ float64
	Radius           float64
	Height           float64
	Exists           bool
}

// ShouldGenerateIsland reports whether chunk (chunkX, chunkZ) hosts an outer
// island. Placement is driven by 2D noise against a distance-adaptive
// threshold: the bar eases from -0.8 toward -0.5 as distance grows to 3000
// blocks and then holds, which produces the ring-shaped density profile that
// peaks at medium distance.
func (f *Field) ShouldGenerateIsland(chunkX, chunkZ int) bool {
	cx := float64(chunkX)
	cz := float64(chunkZ)
	dist := math.Sqrt(cx*cx+cz*cz) * ChunkSize

	if dist <= ExclusionZoneEnd {
		return false
	}

	n := f.islands.Sample2D(cx*islandCheckScale, cz*islandCheckScale)

	threshold := clamp(-0.8+dist/3000.0, -0.8, -0.5)
	return n < threshold
}

// Island returns the footprint parameters for the island hosted by chunk
// (chunkX, chunkZ), or Exists=false when ShouldGenerateIsland is false there.
// The center is jittered off the nominal chunk center with asymmetric noise
// frequencies so the two axes decorrelate; radius and height share one noise
// sample so bigger islands are also taller.
func (f *Field) Island(chunkX, chunkZ int) IslandInfo {
	var info IslandInfo
	info.Exists = f.ShouldGenerateIsland(chunkX, chunkZ)
	if !info.Exists {
		return info
	}

	cx := float64(chunkX)
	cz := float64(chunkZ)

	offsetX := f.detail.Sample2D(cx*0.7, cz*0.3) * 6.0
	offsetZ := f.detail.Sample2D(cx*0.3, cz*0.7) * 6.0
	info.CenterX = cx*ChunkSize + 8.0 + offsetX
	info.CenterZ = cz*ChunkSize + 8.0 + offsetZ

	sizeNoise := f.erosion.Sample2D(cx*0.5, cz*0.5)
	info.Radius = 20.0 + sizeNoise*15.0
	info.Height = 10.0 + sizeNoise*10.0

	return info
}
