package raster

import "github.com/retrocore/rastercore/pkg/log"

// Mosaic holds the per-layer mosaic (pixelation) effect state: each WxH
// block of source pixels replicates across the destination, and sampling
// itself only advances on lines where line % H == 0, so a tall mosaic block
// holds the same row of source samples across several scanlines (spec §4.5).
type Mosaic struct {
	W, H int
}

// Layer is one scrolling/transformable drawable plane: a tiled layer, a
// bitmap layer, or an object layer, selected by Kind+Mode. Grounded on the
// teacher's internal/ppu/background.go (scroll registers, palette, dirty
// flag) generalized from the Game Boy's fixed 256x256 tile grid to
// Tilengine's arbitrary-size, arbitrarily-transformable layer.
type Layer struct {
	OK       bool
	Kind     Kind
	Mode     LayerMode
	Clip     Rect
	Width    int
	Height   int
	HStart   int
	VStart   int
	Palette  *Palette
	Blend    BlendFunc
	Priority bool
	Mosaic   Mosaic

	// SCALING
	Dx, Dy           Fixed
	XFactor, YFactor float64

	// AFFINE
	Transform Matrix3
	AffineX   int // pivot, pixels from layer origin
	AffineY   int

	// PIXEL_MAP
	PixelMap []PixelMapEntry // one entry per screen pixel, row-major

	Tilemap *Tilemap
	Bitmap  *Bitmap
	Objects *ObjectList

	Log log.Logger

	dirty        bool
	blitters     blitterPair
	draw         layerDrawFunc
	mosaicBuffer []RGBA
	lineBuffer   []RGBA
}

// SetupTilemap attaches a tiled layer's backing tilemap and marks it dirty
// so the next UpdateLayer recomputes its painter.
func (l *Layer) SetupTilemap(tm *Tilemap) {
	l.Kind = KindTiled
	l.Tilemap = tm
	l.Width = tm.Cols * tm.Tilesets[0].Width
	l.Height = tm.Rows * tm.Tilesets[0].Height
	l.dirty = true
}

// SetupBitmap attaches a bitmap layer's backing image.
func (l *Layer) SetupBitmap(bmp *Bitmap) {
	l.Kind = KindBitmap
	l.Bitmap = bmp
	l.Width = bmp.Width
	l.Height = bmp.Height
	if l.Palette == nil {
		l.Palette = bmp.Palette
	}
	l.dirty = true
}

// SetupObjects attaches an object layer's backing list.
func (l *Layer) SetupObjects(objects *ObjectList, width, height int) {
	l.Kind = KindObject
	l.Mode = ModeFlat
	l.Objects = objects
	l.Width = width
	l.Height = height
	l.dirty = true
}

// SetScaling puts a tiled or bitmap layer into SCALING mode with the given
// horizontal/vertical scale factors (1.0 = unscaled), deriving the
// fixed-point per-pixel increment exactly as Draw.c's SetLayerScaling does.
func (l *Layer) SetScaling(xFactor, yFactor float64) {
	l.Mode = ModeScaling
	l.XFactor = xFactor
	l.YFactor = yFactor
	if xFactor != 0 {
		l.Dx = FloatToFixed(1.0 / xFactor)
	} else {
		l.Log.Errorf("layer scaling: xFactor is 0, degenerate Dx")
		l.Dx = 0
	}
	if yFactor != 0 {
		l.Dy = FloatToFixed(1.0 / yFactor)
	} else {
		l.Log.Errorf("layer scaling: yFactor is 0, degenerate Dy")
		l.Dy = 0
	}
	l.dirty = true
}

// SetAffine puts a tiled or bitmap layer into AFFINE mode with the given
// transform matrix and pivot point (pixels relative to the layer's origin).
func (l *Layer) SetAffine(m Matrix3, pivotX, pivotY int) {
	l.Mode = ModeAffine
	l.Transform = m
	l.AffineX = pivotX
	l.AffineY = pivotY
	l.dirty = true
}

// SetPixelMapping puts a tiled or bitmap layer into PIXEL_MAP mode using a
// caller-supplied per-screen-pixel offset table (row-major, one entry per
// framebuffer pixel, indexed line*Width+x). Its length is not checked.
func (l *Layer) SetPixelMapping(table []PixelMapEntry) {
	l.Mode = ModePixelMap
	l.PixelMap = table
	l.dirty = true
}

// UpdateLayer recomputes the layer's dispatched painter and blitter pair
// after any mode/geometry change, mirroring Draw.c's update_layer. screenW
// sizes the scratch buffers AFFINE/PIXEL_MAP/mosaic painters write through.
func (l *Layer) UpdateLayer(screenW int) {
	l.draw = GetLayerDraw(l.Kind, l.Mode)
	l.blitters = defaultBlitterPair()
	if cap(l.lineBuffer) < screenW {
		l.lineBuffer = make([]RGBA, screenW)
	}
	l.lineBuffer = l.lineBuffer[:screenW]
	if l.Mosaic.W > 1 {
		blocks := screenW/l.Mosaic.W + 1
		if cap(l.mosaicBuffer) < blocks {
			l.mosaicBuffer = make([]RGBA, blocks)
		}
		l.mosaicBuffer = l.mosaicBuffer[:blocks]
	}
	l.dirty = false
}
