// Package noise implements seeded simplex noise over 2D and 3D continuous
// space. Seeding is fully deterministic (an LCG-driven Fisher-Yates
// permutation plus per-seed origin offsets), so a given seed produces
// bit-for-bit identical samples on every run and platform.
package noise

import "math"

// Gradient tables. The 3D set is the twelve edge midpoints of a unit cube;
// the 2D set is the four axis directions plus the four diagonals.
var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

var grad2 = [8][2]float64{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

// Skew/unskew factors for the simplex grid.
var (
	f2 = 0.5 * (math.Sqrt(3.0) - 1.0)
	g2 = (3.0 - math.Sqrt(3.0)) / 6.0
)

const (
	f3 = 1.0 / 3.0
	g3 = 1.0 / 6.0
)

// Generator is a seeded simplex noise source. It is immutable after New
// returns and safe for concurrent use without synchronization.
type Generator struct {
	perm      [512]uint8
	permMod12 [512]uint8

	// Origin offset derived from the seed; added to every query so that
	// different seeds sample different regions of the same lattice.
	xo, yo, zo float64
}

// lcgNext advances the 64-bit linear congruential generator used for all
// seed-derived state. Overflow wraps, which is the intended arithmetic.
func lcgNext(seed int64) int64 {
	return seed*6364136223846793005 + 1442695040888963407
}

// New builds a Generator from a 64-bit seed. The construction sequence is
// fixed and must not be reordered:
//
//  1. Advance the LCG once per origin component; each component is the raw
//     signed state divided by 2^53, giving xo, yo, zo in turn.
//  2. Fill perm[0..255] with the identity permutation.
//  3. For i from 255 down to 1: advance the LCG, compute
//     j = (uint64(state) >> 33) % (i+1), and swap perm[i] with perm[j]
//     (a seeded Fisher-Yates shuffle).
//  4. Duplicate the table into perm[256..511] and precompute permMod12.
//
// Two generators built from the same seed are indistinguishable; the doubled
// table makes corner hashing wrap without masking the inner lookups.
func New(seed int64) *Generator {
	g := &Generator{}

	seed = lcgNext(seed)
	g.xo = float64(seed) / (1 << 53)
	seed = lcgNext(seed)
	g.yo = float64(seed) / (1 << 53)
	seed = lcgNext(seed)
	g.zo = float64(seed) / (1 << 53)

	var base [256]uint8
	for i := range base {
		base[i] = uint8(i)
	}
	for i := 255; i > 0; i-- {
		seed = lcgNext(seed)
		j := int((uint64(seed) >> 33) % uint64(i+1))
		base[i], base[j] = base[j], base[i]
	}

	for i := 0; i < 256; i++ {
		g.perm[i] = base[i]
		g.perm[i+256] = base[i]
		g.permMod12[i] = base[i] % 12
		g.permMod12[i+256] = base[i] % 12
	}
	return g
}

func fastFloor(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}

func dot2(gi int, x, y float64) float64 {
	g := grad2[gi&7]
	return g[0]*x + g[1]*y
}

func dot3(gi int, x, y, z float64) float64 {
	g := grad3[gi]
	return g[0]*x + g[1]*y + g[2]*z
}

// Sample2D evaluates 2D simplex noise at (x, y). The result lies in [-1, 1]
// for all finite inputs; non-finite inputs are a caller error.
func (g *Generator) Sample2D(x, y float64) float64 {
	x += g.xo
	y += g.yo

	// Skew into simplex grid space to find the containing cell.
	s := (x + y) * f2
	i := fastFloor(x + s)
	j := fastFloor(y + s)

	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Which of the two triangles of the unit square holds the point.
	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1.0 + 2.0*g2
	y2 := y0 - 1.0 + 2.0*g2

	ii := i & 255
	jj := j & 255
	gi0 := int(g.perm[ii+int(g.perm[jj])])
	gi1 := int(g.perm[ii+i1+int(g.perm[jj+j1])])
	gi2 := int(g.perm[ii+1+int(g.perm[jj+1])])

	var n0, n1, n2 float64

	t0 := 0.5 - x0*x0 - y0*y0
	if t0 >= 0 {
		t0 *= t0
		n0 = t0 * t0 * dot2(gi0, x0, y0)
	}
	t1 := 0.5 - x1*x1 - y1*y1
	if t1 >= 0 {
		t1 *= t1
		n1 = t1 * t1 * dot2(gi1, x1, y1)
	}
	t2 := 0.5 - x2*x2 - y2*y2
	if t2 >= 0 {
		t2 *= t2
		n2 = t2 * t2 * dot2(gi2, x2, y2)
	}

	return 70.0 * (n0 + n1 + n2)
}

// Sample3D evaluates 3D simplex noise at (x, y, z). The result lies in
// [-1, 1] for all finite inputs.
func (g *Generator) Sample3D(x, y, z float64) float64 {
	x += g.xo
	y += g.yo
	z += g.zo

	s := (x + y + z) * f3
	i := fastFloor(x + s)
	j := fastFloor(y + s)
	k := fastFloor(z + s)

	t := float64(i+j+k) * g3
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)
	z0 := z - (float64(k) - t)

	// Rank the cell-local coordinates to pick the tetrahedron traversal
	// order (second and third simplex corners).
	var i1, j1, k1 int
	var i2, j2, k2 int
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			i1, j1, k1 = 1, 0, 0
			i2, j2, k2 = 1, 1, 0
		case x0 >= z0:
			i1, j1, k1 = 1, 0, 0
			i2, j2, k2 = 1, 0, 1
		default:
			i1, j1, k1 = 0, 0, 1
			i2, j2, k2 = 1, 0, 1
		}
	} else {
		switch {
		case y0 < z0:
			i1, j1, k1 = 0, 0, 1
			i2, j2, k2 = 0, 1, 1
		case x0 < z0:
			i1, j1, k1 = 0, 1, 0
			i2, j2, k2 = 0, 1, 1
		default:
			i1, j1, k1 = 0, 1, 0
			i2, j2, k2 = 1, 1, 0
		}
	}

	x1 := x0 - float64(i1) + g3
	y1 := y0 - float64(j1) + g3
	z1 := z0 - float64(k1) + g3
	x2 := x0 - float64(i2) + 2.0*g3
	y2 := y0 - float64(j2) + 2.0*g3
	z2 := z0 - float64(k2) + 2.0*g3
	x3 := x0 - 1.0 + 3.0*g3
	y3 := y0 - 1.0 + 3.0*g3
	z3 := z0 - 1.0 + 3.0*g3

	ii := i & 255
	jj := j & 255
	kk := k & 255
	gi0 := int(g.permMod12[ii+int(g.perm[jj+int(g.perm[kk])])])
	gi1 := int(g.permMod12[ii+i1+int(g.perm[jj+j1+int(g.perm[kk+k1])])])
	gi2 := int(g.permMod12[ii+i2+int(g.perm[jj+j2+int(g.perm[kk+k2])])])
	gi3 := int(g.permMod12[ii+1+int(g.perm[jj+1+int(g.perm[kk+1])])])

	var n0, n1, n2, n3 float64

	t0 := 0.6 - x0*x0 - y0*y0 - z0*z0
	if t0 >= 0 {
		t0 *= t0
		n0 = t0 * t0 * dot3(gi0, x0, y0, z0)
	}
	t1 := 0.6 - x1*x1 - y1*y1 - z1*z1
	if t1 >= 0 {
		t1 *= t1
		n1 = t1 * t1 * dot3(gi1, x1, y1, z1)
	}
	t2 := 0.6 - x2*x2 - y2*y2 - z2*z2
	if t2 >= 0 {
		t2 *= t2
		n2 = t2 * t2 * dot3(gi2, x2, y2, z2)
	}
	t3 := 0.6 - x3*x3 - y3*y3 - z3*z3
	if t3 >= 0 {
		t3 *= t3
		n3 = t3 * t3 * dot3(gi3, x3, y3, z3)
	}

	return 32.0 * (n0 + n1 + n2 + n3)
}

// Octave2D sums octaves layers of Sample2D, halving amplitude by persistence
// and scaling frequency by lacunarity each layer, then renormalizes by the
// accumulated amplitude so the result stays in [-1, 1]. Panics if octaves < 1.
func (g *Generator) Octave2D(x, y float64, octaves int, persistence, lacunarity float64) float64 {
	if octaves < 1 {
		panic("noise: octaves must be >= 1")
	}
	var total, maxValue float64
	amplitude := 1.0
	frequency := 1.0
	for i := 0; i < octaves; i++ {
		total += g.Sample2D(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	return total / maxValue
}

// Octave3D is the 3D analog of Octave2D. Panics if octaves < 1.
func (g *Generator) Octave3D(x, y, z float64, octaves int, persistence, lacunarity float64) float64 {
	if octaves < 1 {
		panic("noise: octaves must be >= 1")
	}
	var total, maxValue float64
	amplitude := 1.0
	frequency := 1.0
	for i := 0; i < octaves; i++ {
		total += g.Sample3D(x*frequency, y*frequency, z*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	return total / maxValue
}
