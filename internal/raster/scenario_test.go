package raster_test

import (
	"testing"

	"github.com/retrocore/rastercore/internal/raster"
)

// newFlatLayerEngine builds a minimal single-layer engine: an 8x8 solid
// tile (palette index 1) tiled across a 16x16 (2x2 tile) map, on a WxH
// frame with no scroll.
func newFlatLayerEngine(t *testing.T, w, h int) (*raster.Engine, *raster.Layer) {
	t.Helper()
	e, err := raster.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	pal := raster.NewPalette()
	pal.SetColor(1, 0x00FF00FF)
	pixels := make([]byte, 8*8)
	for i := range pixels {
		pixels[i] = 1
	}
	ts, err := raster.NewTileset(8, 8, pixels, []uint16{0, 0}, pal)
	if err != nil {
		t.Fatal(err)
	}
	tm := raster.NewTilemap(2, 2, ts)
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			tm.At(col, row).Index = 1
		}
	}
	layer := e.AddLayer()
	layer.Palette = pal
	layer.SetupTilemap(tm)
	layer.UpdateLayer(w)
	return e, layer
}

// S1: a FLAT tiled layer of a solid-color tile paints every covered pixel
// that color.
func TestScenarioFlatTileFill(t *testing.T) {
	e, _ := newFlatLayerEngine(t, 16, 16)
	for e.Line < e.Height {
		e.DrawScanline()
	}
	for i, c := range e.Framebuffer {
		if c != 0x00FF00FF {
			t.Fatalf("pixel %d = %#x, want %#x", i, c, raster.RGBA(0x00FF00FF))
		}
	}
}

// S2: FLIPX on a tile with an asymmetric pixel pattern mirrors its row.
func TestScenarioFlipXMirrorsTileRow(t *testing.T) {
	e, err := raster.New(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	pal := raster.NewPalette()
	pal.SetColor(1, 1)
	pal.SetColor(2, 2)
	pal.SetColor(3, 3)
	pal.SetColor(4, 4)
	// One 4x4 tile, row 0 = 1,2,3,4 left to right.
	pixels := []byte{
		1, 2, 3, 4,
		1, 2, 3, 4,
		1, 2, 3, 4,
		1, 2, 3, 4,
	}
	ts, err := raster.NewTileset(4, 4, pixels, []uint16{0, 0}, pal)
	if err != nil {
		t.Fatal(err)
	}
	tm := raster.NewTilemap(1, 1, ts)
	tm.At(0, 0).Index = 1
	tm.At(0, 0).Flags = raster.FlagFlipX

	layer := e.AddLayer()
	layer.SetupTilemap(tm)
	layer.UpdateLayer(4)

	for e.Line < e.Height {
		e.DrawScanline()
	}
	row := e.FrameRow(0)
	want := []raster.RGBA{4, 3, 2, 1}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("row[%d] = %v, want %v (mirrored)", i, row[i], want[i])
		}
	}
}

// S3: two overlapping sprites with DoCollision set both end up flagged.
func TestScenarioSpriteCollisionSymmetric(t *testing.T) {
	e, err := raster.New(16, 16)
	if err != nil {
		t.Fatal(err)
	}
	pal := raster.NewPalette()
	pal.SetColor(1, 0xFF)

	mkSprite := func(x, y int) *raster.Sprite {
		bmp := raster.NewBitmap(4, 4, pal)
		for i := range bmp.Pixels {
			bmp.Pixels[i] = 1
		}
		s := e.AddSprite()
		s.Picture = bmp
		s.Palette = pal
		s.X, s.Y = x, y
		s.DoCollision = true
		s.UpdateSprite()
		return s
	}

	a := mkSprite(2, 2)
	b := mkSprite(4, 2) // overlaps a's [4,6) columns on rows [2,6)

	for e.Line < e.Height {
		e.DrawScanline()
	}

	if !a.Collision || !b.Collision {
		t.Errorf("expected symmetric collision, got a=%v b=%v", a.Collision, b.Collision)
	}
}

// S4: a ModeScaling sprite upscaled 2x samples each source pixel twice.
func TestScenarioScaledSpriteSampling(t *testing.T) {
	e, err := raster.New(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	pal := raster.NewPalette()
	pal.SetColor(1, 1)
	pal.SetColor(2, 2)
	bmp := raster.NewBitmap(2, 1, pal)
	bmp.Pixels[0], bmp.Pixels[1] = 1, 2

	s := e.AddSprite()
	s.Picture = bmp
	s.Palette = pal
	s.Mode = raster.ModeScaling
	s.DstWidth, s.DstHeight = 4, 1
	s.Dx = raster.FloatToFixed(0.5) // 2x upscale: half a source pixel per dest pixel
	s.Dy = raster.FloatToFixed(1)
	s.X, s.Y = 0, 0
	s.UpdateSprite()

	e.DrawScanline()
	row := e.FrameRow(0)
	want := []raster.RGBA{1, 1, 2, 2}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("row[%d] = %v, want %v", i, row[i], want[i])
		}
	}
}

// S5/S6: a mosaic-enabled AFFINE layer replicates WxH blocks, and its
// sampled row only advances every H scanlines.
func TestScenarioMosaicBlockReplicationAndVerticalPersistence(t *testing.T) {
	e, err := raster.New(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	pal := raster.NewPalette()
	for i := 1; i < 5; i++ {
		pal.SetColor(uint8(i), raster.RGBA(i))
	}
	pixels := []byte{
		1, 2, 3, 0,
		4, 4, 4, 4,
		1, 2, 3, 0,
		4, 4, 4, 4,
	}
	ts, err := raster.NewTileset(4, 4, pixels, []uint16{0, 0}, pal)
	if err != nil {
		t.Fatal(err)
	}
	tm := raster.NewTilemap(1, 1, ts)
	tm.At(0, 0).Index = 1

	layer := e.AddLayer()
	layer.SetupTilemap(tm)
	layer.SetAffine(raster.Identity3(), 0, 0)
	layer.Mosaic = raster.Mosaic{W: 2, H: 2}
	layer.UpdateLayer(4)

	for e.Line < e.Height {
		e.DrawScanline()
	}

	row0 := e.FrameRow(0)
	if row0[0] != row0[1] {
		t.Errorf("mosaic should replicate column 0 into column 1: %v vs %v", row0[0], row0[1])
	}
	row1 := e.FrameRow(1)
	if row1[0] != row0[0] {
		t.Errorf("mosaic H=2 should hold row 0's sample through row 1: %v vs %v", row1[0], row0[0])
	}
}

// S5/S6, FLAT variant: a mosaic-enabled FLAT tiled layer replicates WxH
// blocks and holds its sampled row across H scanlines exactly like the
// AFFINE case above — mosaic isn't an AFFINE-only effect (spec §8 property
// 7), and Draw.c's DrawLayerScanline gates on nscan % mosaic.h the same way
// DrawLayerScanlineAffine does.
func TestScenarioFlatMosaicBlockReplicationAndVerticalPersistence(t *testing.T) {
	e, err := raster.New(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	pal := raster.NewPalette()
	for i := 1; i < 5; i++ {
		pal.SetColor(uint8(i), raster.RGBA(i))
	}
	pixels := []byte{
		1, 2, 3, 0,
		4, 4, 4, 4,
		1, 2, 3, 0,
		4, 4, 4, 4,
	}
	ts, err := raster.NewTileset(4, 4, pixels, []uint16{0, 0}, pal)
	if err != nil {
		t.Fatal(err)
	}
	tm := raster.NewTilemap(1, 1, ts)
	tm.At(0, 0).Index = 1

	layer := e.AddLayer()
	layer.SetupTilemap(tm)
	layer.Mosaic = raster.Mosaic{W: 2, H: 2}
	layer.UpdateLayer(4)

	for e.Line < e.Height {
		e.DrawScanline()
	}

	row0 := e.FrameRow(0)
	if row0[0] != row0[1] {
		t.Errorf("mosaic should replicate column 0 into column 1: %v vs %v", row0[0], row0[1])
	}
	row1 := e.FrameRow(1)
	if row1[0] != row0[0] {
		t.Errorf("mosaic H=2 should hold row 0's sample through row 1: %v vs %v", row1[0], row0[0])
	}
}

// A priority sprite draws over a priority background layer, which in turn
// draws over a non-priority layer beneath it (spec §4.1 steps 4-8).
func TestScenarioPriorityOrdering(t *testing.T) {
	e, bottom := newFlatLayerEngine(t, 8, 8)
	bottom.Palette.SetColor(1, 0x1) // non-priority: red-ish marker value 1

	prioPal := raster.NewPalette()
	prioPal.SetColor(1, 0x2)
	prioPixels := make([]byte, 8*8)
	for i := range prioPixels {
		prioPixels[i] = 1
	}
	prioTs, err := raster.NewTileset(8, 8, prioPixels, []uint16{0, 0}, prioPal)
	if err != nil {
		t.Fatal(err)
	}
	prioTm := raster.NewTilemap(1, 1, prioTs)
	prioTm.At(0, 0).Index = 1
	top := e.AddLayer()
	top.SetupTilemap(prioTm)
	top.Priority = true
	top.UpdateLayer(8)

	spritePal := raster.NewPalette()
	spritePal.SetColor(1, 0x3)
	bmp := raster.NewBitmap(2, 2, spritePal)
	for i := range bmp.Pixels {
		bmp.Pixels[i] = 1
	}
	s := e.AddSprite()
	s.Picture = bmp
	s.Palette = spritePal
	s.Priority = true
	s.X, s.Y = 0, 0
	s.UpdateSprite()

	for e.Line < e.Height {
		e.DrawScanline()
	}

	if e.FrameRow(0)[0] != 0x3 {
		t.Errorf("priority sprite should draw over the priority layer, got %#x", e.FrameRow(0)[0])
	}
	if e.FrameRow(0)[5] != 0x2 {
		t.Errorf("priority layer should draw over the non-priority layer where the sprite doesn't cover, got %#x", e.FrameRow(0)[5])
	}
}

// An object layer's FLIPX mirrors an object's bitmap row, exactly like a
// FLIPX tile does, confirming the object painter's stable-buffer addressing
// fix handles a backward-walking scan without panicking or misreading.
func TestScenarioObjectLayerFlipXMirrorsRow(t *testing.T) {
	e, err := raster.New(4, 1)
	if err != nil {
		t.Fatal(err)
	}
	pal := raster.NewPalette()
	pal.SetColor(1, 1)
	pal.SetColor(2, 2)
	pal.SetColor(3, 3)
	pal.SetColor(4, 4)
	bmp := raster.NewBitmap(4, 1, pal)
	copy(bmp.Pixels, []byte{1, 2, 3, 4})

	objects := &raster.ObjectList{}
	objects.Add(&raster.Object{
		X: 0, Y: 0,
		Width: 4, Height: 1,
		Flags:   raster.FlagFlipX,
		Visible: true,
		Bitmap:  bmp,
	})

	layer := e.AddLayer()
	layer.SetupObjects(objects, 4, 1)
	layer.UpdateLayer(4)

	e.DrawScanline()
	row := e.FrameRow(0)
	want := []raster.RGBA{4, 3, 2, 1}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("row[%d] = %v, want %v (mirrored)", i, row[i], want[i])
		}
	}
}
