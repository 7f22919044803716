package raster

// bitmapBlitter always uses the layer's keyed blitter: unlike a tileset, a
// Bitmap carries no per-row color-key table to select an opaque fast path
// with, so there's nothing to choose between — this mirrors Draw.c's
// bitmap painters hardcoding blitters[1], but it isn't the same anomaly as
// the tiled FLAT painter's (spec §9): there the row-level opaque bit exists
// and is computed, then thrown away; here it was never computed at all.
func bitmapBlitter(l *Layer) Blitter {
	return l.blitters[1]
}

func bitmapPalette(l *Layer) *Palette {
	if l.Palette != nil {
		return l.Palette
	}
	return l.Bitmap.Palette
}

// drawBitmapScanline paints one scanline of a FLAT bitmap layer: a single
// contiguous row read, clipped to the bitmap's own bounds (bitmaps don't
// wrap the way tilemaps do). Mirrors Draw.c's DrawBitmapScanline. When the
// layer has an active mosaic, the row is painted into the linebuffer
// scratch and flushed through flushTiledLine's block replication, the same
// mechanism the AFFINE/PIXEL_MAP bitmap painters already use (spec §8
// property 7: mosaic isn't an AFFINE-only effect).
func drawBitmapScanline(e *Engine, l *Layer, line int) {
	srcy := l.VStart + line
	if srcy < 0 || srcy >= l.Bitmap.Height {
		return
	}
	x1, x2 := l.Clip.X1, l.Clip.X2
	srcx0 := l.HStart + x1
	if srcx0 < 0 {
		x1 += -srcx0
		srcx0 = 0
	}
	if srcx0+(x2-x1) > l.Bitmap.Width {
		x2 = x1 + (l.Bitmap.Width - srcx0)
	}
	if x1 >= x2 {
		return
	}

	mosaic := l.Mosaic.W > 1
	var dst []RGBA
	if mosaic {
		dst = l.lineBuffer
	} else {
		dst = e.layerTarget(l, line)
	}

	row := l.Bitmap.Ptr(srcx0, srcy)
	bitmapBlitter(l)(row, bitmapPalette(l), dst[x1:x2], x2-x1, ToFixed(1), 0, l.Blend)

	if mosaic {
		flushTiledLine(l, e.layerTarget(l, line), line, x1, x2)
	}
	if l.Priority {
		e.markPriorityWritten(x1, x2)
	}
}

// drawBitmapScanlineScaling is the SCALING analogue, sampling the source row
// at a fixed-point fractional rate across the whole clip span in one
// Blitter call (a bitmap has no tile-boundary to split on, unlike the tiled
// scaling painter). Mirrors DrawBitmapScanlineScaling, with the same mosaic
// handling as drawBitmapScanline.
func drawBitmapScanlineScaling(e *Engine, l *Layer, line int) {
	srcy := l.VStart + FromFixed(l.Dy*Fixed(line))
	if srcy < 0 || srcy >= l.Bitmap.Height {
		return
	}
	x1, x2 := l.Clip.X1, l.Clip.X2

	mosaic := l.Mosaic.W > 1
	var dst []RGBA
	if mosaic {
		dst = l.lineBuffer
	} else {
		dst = e.layerTarget(l, line)
	}

	row := l.Bitmap.Ptr(0, srcy)
	srcStart := ToFixed(l.HStart) + l.Dx*Fixed(x1)
	bitmapBlitter(l)(row, bitmapPalette(l), dst[x1:x2], x2-x1, l.Dx, srcStart, l.Blend)

	if mosaic {
		flushTiledLine(l, e.layerTarget(l, line), line, x1, x2)
	}
	if l.Priority {
		e.markPriorityWritten(x1, x2)
	}
}

// bitmapSample reads one pixel from the bitmap at (srcx, srcy), or false if
// out of bounds (bitmaps clip rather than wrap).
func bitmapSample(l *Layer, srcx, srcy int) (RGBA, bool) {
	if srcx < 0 || srcx >= l.Bitmap.Width || srcy < 0 || srcy >= l.Bitmap.Height {
		return 0, false
	}
	idx := l.Bitmap.Ptr(srcx, srcy)[0]
	return bitmapPalette(l).GetColor(idx), true
}

// drawBitmapScanlineAffine is AFFINE's bitmap-layer analogue: per-pixel
// matrix-transformed sampling into the linebuffer, then a straight or
// mosaic flush. When layer.Palette is nil it correctly falls back to the
// bitmap's own palette (spec §9's asymmetry lives only in PIXEL_MAP).
func drawBitmapScanlineAffine(e *Engine, l *Layer, line int) {
	x1, x2 := l.Clip.X1, l.Clip.X2
	for x := x1; x < x2; x++ {
		p := l.Transform.Apply(Point2D{X: float64(x - l.AffineX), Y: float64(line - l.AffineY)})
		if c, ok := bitmapSample(l, int(p.X)+l.AffineX+l.HStart, int(p.Y)+l.AffineY+l.VStart); ok {
			l.lineBuffer[x] = c
		}
	}
	flushTiledLine(l, e.FrameRow(line), line, x1, x2)
}

// drawBitmapScanlinePixelMapping is PIXEL_MAP's bitmap-layer analogue. It
// carries the documented palette-fallback asymmetry (spec §9): when
// layer.Palette is nil, the original reads layer.palette->data[...]
// unconditionally rather than falling back to bitmap->palette like its
// AFFINE sibling does, which corrupts/crashes rather than substituting a
// sane default. Engine.BitmapPixelMapNilPalette (on by default) reproduces
// the missing fallback by skipping every pixel of the layer when
// layer.Palette is nil; clearing it via WithPixelMapPaletteFix makes this
// painter fall back like AFFINE does.
func drawBitmapScanlinePixelMapping(e *Engine, l *Layer, line int) {
	x1, x2 := l.Clip.X1, l.Clip.X2
	pal := l.Palette
	if pal == nil && !e.BitmapPixelMapNilPalette {
		pal = l.Bitmap.Palette
	}
	for x := x1; x < x2; x++ {
		if pal == nil {
			continue
		}
		entry := l.PixelMap[line*e.Width+x]
		srcx, srcy := l.HStart+x+entry.Dx, l.VStart+line+entry.Dy
		if srcx < 0 || srcx >= l.Bitmap.Width || srcy < 0 || srcy >= l.Bitmap.Height {
			continue
		}
		idx := l.Bitmap.Ptr(srcx, srcy)[0]
		l.lineBuffer[x] = pal.GetColor(idx)
	}
	flushTiledLine(l, e.layerTarget(l, line), line, x1, x2)
	if l.Priority {
		e.markPriorityWritten(x1, x2)
	}
}
