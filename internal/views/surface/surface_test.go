package surface

import (
	"slices"
	"testing"
)

func TestRenderDeterministic(t *testing.T) {
	cfg := Config{Width: 24, Height: 24}

	v1 := New(cfg)
	v1.Reset(7)
	first := append([]uint8(nil), v1.Cells()...)

	v2 := New(cfg)
	v2.Reset(7)
	if !slices.Equal(first, v2.Cells()) {
		t.Fatal("surface render not deterministic for equal seeds")
	}
}

func TestMainIslandHasElevation(t *testing.T) {
	v := New(Config{Width: 17, Height: 17})
	v.SetBlocksPerCell(4)
	v.Reset(0)

	center := v.Cells()[v.Size().H/2*v.Size().W+v.Size().W/2]
	if center == 0 {
		t.Error("column above the main island center scanned as void")
	}
}

func TestExclusionRingScansVoid(t *testing.T) {
	v := New(Config{Width: 16, Height: 16})
	v.SetBlocksPerCell(2)
	v.SetCenter(760, 0)
	v.Reset(0)

	for i, c := range v.Cells() {
		if c != 0 {
			t.Fatalf("cell %d = %d inside exclusion ring, want void", i, c)
		}
	}
}
