package raster

// Kind distinguishes the three drawable layer flavors plus the sprite
// entity type; GetLayerDraw and GetSpriteDraw key off it alongside Mode.
type Kind int

const (
	KindTiled Kind = iota
	KindBitmap
	KindObject
	KindSprite
)

// LayerMode selects a tiled or bitmap layer's painter. Object layers only
// ever run in ModeFlat (spec §3); sprites only support ModeFlat and
// ModeScaling.
type LayerMode int

const (
	ModeFlat LayerMode = iota
	ModeScaling
	ModeAffine
	ModePixelMap
	numModes
)

type layerDrawFunc func(e *Engine, l *Layer, line int)
type spriteDrawFunc func(e *Engine, s *Sprite, line int)

// layerPainters dispatches (Kind, LayerMode) to a scanline painter, mirroring
// Draw.c's painters[MAX_DRAW_TYPE][MAX_DRAW_MODE] table and GetLayerDraw. A
// nil entry means the combination is invalid: UpdateLayer stores the nil
// painter and the scheduler skips the layer.
var layerPainters = [...][numModes]layerDrawFunc{
	KindTiled: {
		ModeFlat:     drawLayerScanline,
		ModeScaling:  drawLayerScanlineScaling,
		ModeAffine:   drawLayerScanlineAffine,
		ModePixelMap: drawLayerScanlinePixelMapping,
	},
	KindBitmap: {
		ModeFlat:     drawBitmapScanline,
		ModeScaling:  drawBitmapScanlineScaling,
		ModeAffine:   drawBitmapScanlineAffine,
		ModePixelMap: drawBitmapScanlinePixelMapping,
	},
	KindObject: {
		ModeFlat: drawLayerObjectScanline,
	},
}

// spritePainters dispatches sprite draw mode; sprites never support
// AFFINE/PIXEL_MAP (spec §3).
var spritePainters = [...]spriteDrawFunc{
	ModeFlat:    drawSpriteScanline,
	ModeScaling: drawScalingSpriteScanline,
}

// GetLayerDraw resolves the painter for (kind, mode), or nil if unsupported.
func GetLayerDraw(kind Kind, mode LayerMode) layerDrawFunc {
	if int(kind) >= len(layerPainters) || mode >= numModes {
		return nil
	}
	return layerPainters[kind][mode]
}

// GetSpriteDraw resolves the sprite painter for mode, or nil if unsupported.
func GetSpriteDraw(mode LayerMode) spriteDrawFunc {
	if mode != ModeFlat && mode != ModeScaling {
		return nil
	}
	return spritePainters[mode]
}
