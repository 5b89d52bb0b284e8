package noise

import (
	"math"
	"testing"

	"endscope/pkg/core"
)

func TestDeterminismAcrossInstances(t *testing.T) {
	seeds := []int64{0, 1, -1, 12345, 1 << 40}
	for _, seed := range seeds {
		g1 := New(seed)
		g2 := New(seed)
		rng := core.NewRNG(seed ^ 0x5eed)
		for i := 0; i < 200; i++ {
			x, y, z := rng.Coord3(10000)
			if g1.Sample2D(x, y) != g2.Sample2D(x, y) {
				t.Fatalf("seed %d: Sample2D not deterministic at (%g, %g)", seed, x, y)
			}
			if g1.Sample3D(x, y, z) != g2.Sample3D(x, y, z) {
				t.Fatalf("seed %d: Sample3D not deterministic at (%g, %g, %g)", seed, x, y, z)
			}
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	g1 := New(1)
	g2 := New(2)
	same := 0
	for i := 0; i < 100; i++ {
		x := float64(i) * 0.5
		y := float64(i) * 0.3
		if g1.Sample2D(x, y) == g2.Sample2D(x, y) {
			same++
		}
	}
	if same > 10 {
		t.Errorf("seeds 1 and 2 produced %d/100 identical 2D values", same)
	}
}

func TestSample2DRange(t *testing.T) {
	g := New(42)
	rng := core.NewRNG(7)
	const epsilon = 1.000001
	for i := 0; i < 10000; i++ {
		x, y := rng.Coord2(10000)
		v := g.Sample2D(x, y)
		if v < -epsilon || v > epsilon {
			t.Fatalf("Sample2D(%g, %g) = %g, outside [-1, 1]", x, y, v)
		}
	}
}

func TestSample3DRange(t *testing.T) {
	g := New(99)
	rng := core.NewRNG(11)
	const epsilon = 1.000001
	for i := 0; i < 10000; i++ {
		x, y, z := rng.Coord3(10000)
		v := g.Sample3D(x, y, z)
		if v < -epsilon || v > epsilon {
			t.Fatalf("Sample3D(%g, %g, %g) = %g, outside [-1, 1]", x, y, z, v)
		}
	}
}

func TestContinuity(t *testing.T) {
	g := New(12345)
	v1 := g.Sample3D(5.0, 5.0, 5.0)
	v2 := g.Sample3D(5.001, 5.0, 5.0)
	if math.Abs(v1-v2) > 0.1 {
		t.Errorf("noise discontinuous: |%g - %g| = %g", v1, v2, math.Abs(v1-v2))
	}
}

func TestSingleOctaveEqualsSample(t *testing.T) {
	g := New(77)
	coords := [][3]float64{
		{0, 0, 0},
		{1.5, -2.25, 3.75},
		{-100.1, 64.2, 12000.5},
	}
	for _, c := range coords {
		if got, want := g.Octave2D(c[0], c[1], 1, 0.5, 2.0), g.Sample2D(c[0], c[1]); got != want {
			t.Errorf("Octave2D(1 octave) = %g, want Sample2D = %g at (%g, %g)", got, want, c[0], c[1])
		}
		if got, want := g.Octave3D(c[0], c[1], c[2], 1, 0.5, 2.0), g.Sample3D(c[0], c[1], c[2]); got != want {
			t.Errorf("Octave3D(1 octave) = %g, want Sample3D = %g at %v", got, want, c)
		}
	}
}

func TestOctaveRange(t *testing.T) {
	g := New(4242)
	rng := core.NewRNG(13)
	const epsilon = 1.000001
	for i := 0; i < 2000; i++ {
		x, y, z := rng.Coord3(5000)
		for _, octaves := range []int{1, 2, 4} {
			v := g.Octave3D(x, y, z, octaves, 0.5, 2.0)
			if v < -epsilon || v > epsilon {
				t.Fatalf("Octave3D(%d octaves) = %g at (%g, %g, %g), outside [-1, 1]", octaves, v, x, y, z)
			}
		}
	}
}

func TestOctaveSmoothness(t *testing.T) {
	g := New(77)
	prev := g.Octave2D(0, 0, 4, 0.5, 2.0)
	maxDiff := 0.0
	for i := 1; i < 1000; i++ {
		v := g.Octave2D(float64(i)*0.01, 0, 4, 0.5, 2.0)
		diff := math.Abs(v - prev)
		if diff > maxDiff {
			maxDiff = diff
		}
		prev = v
	}
	if maxDiff > 0.5 {
		t.Errorf("Octave2D max step difference = %g, expected smooth transitions", maxDiff)
	}
}

func TestOctaveCountValidation(t *testing.T) {
	g := New(0)
	for _, octaves := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Octave3D with %d octaves did not panic", octaves)
				}
			}()
			g.Octave3D(1, 2, 3, octaves, 0.5, 2.0)
		}()
	}
}

func BenchmarkSample3D(b *testing.B) {
	g := New(12345)
	var sum float64
	for i := 0; i < b.N; i++ {
		sum += g.Sample3D(float64(i)*0.01, float64(i)*0.02, float64(i)*0.03)
	}
	_ = sum
}
