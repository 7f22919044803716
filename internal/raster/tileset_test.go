package raster

import (
	"errors"
	"testing"
)

func TestNewTilesetRejectsNonPowerOfTwo(t *testing.T) {
	_, err := NewTileset(6, 8, make([]byte, 6*8), []uint16{0}, NewPalette())
	if !errors.Is(err, ErrNotPowerOfTwo) {
		t.Fatalf("expected ErrNotPowerOfTwo, got %v", err)
	}
}

func TestTilesetColorKey(t *testing.T) {
	// Two 2x2 tiles: tile 0 fully opaque, tile 1 has a transparent pixel in
	// its second row.
	pixels := []byte{
		1, 1,
		1, 1,

		2, 2,
		0, 2,
	}
	ts, err := NewTileset(2, 2, pixels, []uint16{0, 0, 1}, NewPalette())
	if err != nil {
		t.Fatal(err)
	}
	if !ts.RowColorKey(0, 0) || !ts.RowColorKey(0, 1) {
		t.Error("tile 0 should be fully opaque on both rows")
	}
	if !ts.RowColorKey(1, 0) {
		t.Error("tile 1 row 0 should be opaque")
	}
	if ts.RowColorKey(1, 1) {
		t.Error("tile 1 row 1 has a transparent pixel and should not be marked opaque")
	}
}

func TestTilesetBlockAddressing(t *testing.T) {
	pixels := []byte{
		1, 2,
		3, 4,
	}
	ts, err := NewTileset(2, 2, pixels, []uint16{0, 0}, NewPalette())
	if err != nil {
		t.Fatal(err)
	}
	block := ts.Block(0)
	if block[1] != 2 {
		t.Errorf("Block(0)[1] = %d, want 2", block[1])
	}
	// Stepping by Stride (2) from (1,0) should land on (1,1) = 4.
	if block[1+ts.Width] != 4 {
		t.Errorf("Block(0)[1+Width] = %d, want 4", block[1+ts.Width])
	}
}

func TestTilesetPhysical(t *testing.T) {
	ts, err := NewTileset(2, 2, make([]byte, 8), []uint16{0, 5, 3}, NewPalette())
	if err != nil {
		t.Fatal(err)
	}
	if ts.Physical(2) != 3 {
		t.Errorf("Physical(2) = %d, want 3", ts.Physical(2))
	}
}
