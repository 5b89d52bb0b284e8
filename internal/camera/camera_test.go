package camera

import (
	"math"
	"testing"
)

func TestChunkDecompositionRoundTrip(t *testing.T) {
	c := New()
	positions := [][3]float64{
		{0, 0, 0},
		{-0.5, 63.9, 15.999},
		{8.25, 100, 200},
		{-1024.75, 64, 2048.5},
		{100000.125, 80.5, -99999.875},
		{123456.0625, 64, 123456.0625},
	}
	for _, p := range positions {
		c.TeleportTo(p[0], p[1], p[2])
		cx, cy, cz := c.ChunkOrigin()
		ox, oy, oz := c.LocalOffset()

		for i, o := range []float64{ox, oy, oz} {
			if o < 0 || o >= 16 {
				t.Fatalf("pos %v: local offset component %d = %g, want [0, 16)", p, i, o)
			}
		}

		// Recomposition must be exact: the offsets were chosen small enough
		// that no precision is lost splitting them off.
		if got := float64(cx)*16 + ox; got != p[0] {
			t.Errorf("pos %v: x recomposes to %g", p, got)
		}
		if got := float64(cy)*16 + oy; got != p[1] {
			t.Errorf("pos %v: y recomposes to %g", p, got)
		}
		if got := float64(cz)*16 + oz; got != p[2] {
			t.Errorf("pos %v: z recomposes to %g", p, got)
		}
	}
}

func TestLocalOffsetSurvivesFloat32(t *testing.T) {
	c := New()
	c.TeleportTo(100000.125, 64.0625, -50000.25)
	ox, oy, oz := c.LocalOffset()
	for _, o := range []float64{ox, oy, oz} {
		if float64(float32(o)) != o {
			t.Errorf("local offset %g does not survive a float32 round trip", o)
		}
	}
}

func TestSpeedGrowsWithScale(t *testing.T) {
	c := New()
	c.TeleportTo(0, 10, 0)
	near := c.Speed()

	c.TeleportTo(50000, 5000, 0)
	far := c.Speed()

	if far <= near {
		t.Errorf("speed at cosmic scale (%g) not greater than near origin (%g)", far, near)
	}
}

func TestAdjustSpeedClamps(t *testing.T) {
	c := New()
	for i := 0; i < 200; i++ {
		c.AdjustSpeed(1.5)
	}
	if c.SpeedMultiplier > 100.0 {
		t.Errorf("speed multiplier %g exceeds cap", c.SpeedMultiplier)
	}
	for i := 0; i < 400; i++ {
		c.AdjustSpeed(0.5)
	}
	if c.SpeedMultiplier < 0.1 {
		t.Errorf("speed multiplier %g below floor", c.SpeedMultiplier)
	}
}

func TestLODFactorBounds(t *testing.T) {
	c := New()

	c.TeleportTo(0, 0, 0)
	if lod := c.LODFactor(); lod != 0 {
		t.Errorf("LOD at origin = %g, want 0", lod)
	}

	c.TeleportTo(100000, 10000, 100000)
	if lod := c.LODFactor(); lod != 4 {
		t.Errorf("LOD at cosmic distance = %g, want clamp at 4", lod)
	}
}

func TestOctavesNeverBelowOne(t *testing.T) {
	c := New()
	c.TeleportTo(100000, 10000, 100000)
	if got := c.Octaves(4); got != 1 {
		t.Errorf("Octaves(4) at max LOD = %d, want 1", got)
	}
	c.TeleportTo(0, 0, 0)
	if got := c.Octaves(4); got != 4 {
		t.Errorf("Octaves(4) at zero LOD = %d, want 4", got)
	}
}

func TestStepMultiplier(t *testing.T) {
	c := New()
	c.TeleportTo(0, 0, 0)
	if got := c.StepMultiplier(); got != 1 {
		t.Errorf("step multiplier at zero LOD = %g, want 1", got)
	}
	c.TeleportTo(100000, 10000, 100000)
	if got := c.StepMultiplier(); math.Abs(got-16) > 1e-12 {
		t.Errorf("step multiplier at max LOD = %g, want 16", got)
	}
}
