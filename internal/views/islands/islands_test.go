package islands

import (
	"slices"
	"testing"
)

func TestRenderDeterministic(t *testing.T) {
	cfg := Config{Width: 48, Height: 48}

	v1 := New(cfg)
	v1.Reset(5)
	first := append([]uint8(nil), v1.Cells()...)

	v2 := New(cfg)
	v2.Reset(5)
	if !slices.Equal(first, v2.Cells()) {
		t.Fatal("islands render not deterministic for equal seeds")
	}
}

func TestRegionClassification(t *testing.T) {
	v := New(Config{Width: 8, Height: 8})
	v.Reset(0)

	if got := v.classify(0, 0); got != cellMainIsland {
		t.Errorf("classify(0, 0) = %d, want main island", got)
	}
	if got := v.classify(760, 0); got != cellExclusion {
		t.Errorf("classify(760, 0) = %d, want exclusion ring", got)
	}
}

func TestRingContainsIslands(t *testing.T) {
	v := New(Config{Width: 128, Height: 128})
	v.SetBlocksPerCell(48)
	v.SetCenter(3000, 0)
	v.Reset(0)

	found := false
	for _, c := range v.Cells() {
		if c >= cellIslandSmall {
			found = true
			break
		}
	}
	if !found {
		t.Error("no island chunks rendered in the outer ring viewport")
	}
}

func TestZoomFloorsAtChunkSize(t *testing.T) {
	v := New(Config{Width: 8, Height: 8})
	v.SetBlocksPerCell(1)
	if got := v.BlocksPerCell(); got != 16 {
		t.Errorf("blocks per cell = %g after setting below chunk size, want 16", got)
	}
}
