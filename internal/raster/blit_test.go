package raster

import "testing"

func TestBlitOpaqueWritesEveryPixel(t *testing.T) {
	pal := NewPalette()
	pal.SetColor(0, 0x111111)
	pal.SetColor(5, 0x222222)
	src := []byte{0, 5, 0, 5}
	dst := make([]RGBA, 4)
	BlitOpaque(src, pal, dst, 4, ToFixed(1), 0, nil)
	want := []RGBA{0x111111, 0x222222, 0x111111, 0x222222}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %#x, want %#x", i, dst[i], want[i])
		}
	}
}

func TestBlitKeyedSkipsIndexZero(t *testing.T) {
	pal := NewPalette()
	pal.SetColor(7, 0xABCDEF)
	src := []byte{0, 7, 0}
	dst := []RGBA{0xDEAD, 0xDEAD, 0xDEAD}
	BlitKeyed(src, pal, dst, 3, ToFixed(1), 0, nil)
	if dst[0] != 0xDEAD || dst[2] != 0xDEAD {
		t.Error("BlitKeyed should leave index-0 destination pixels untouched")
	}
	if dst[1] != 0xABCDEF {
		t.Errorf("dst[1] = %#x, want %#x", dst[1], RGBA(0xABCDEF))
	}
}

func TestBlitKeyedReverseDirection(t *testing.T) {
	pal := NewPalette()
	pal.SetColor(1, 0x1)
	pal.SetColor(2, 0x2)
	pal.SetColor(3, 0x3)
	src := []byte{1, 2, 3}
	dst := make([]RGBA, 3)
	BlitKeyed(src, pal, dst, 3, -ToFixed(1), ToFixed(2), nil)
	want := []RGBA{0x3, 0x2, 0x1}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %#x, want %#x", i, dst[i], want[i])
		}
	}
}

func TestBlitMosaicReplicatesBlocks(t *testing.T) {
	src := []RGBA{0xA, 0xB}
	dst := make([]RGBA, 6)
	BlitMosaic(src, dst, 6, 3, nil)
	want := []RGBA{0xA, 0xA, 0xA, 0xB, 0xB, 0xB}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %#x, want %#x", i, dst[i], want[i])
		}
	}
}

func TestBlitColorFillsSolid(t *testing.T) {
	dst := make([]RGBA, 4)
	BlitColor(dst, 0x42, 4)
	for i, c := range dst {
		if c != 0x42 {
			t.Errorf("dst[%d] = %#x, want 0x42", i, c)
		}
	}
}
