package raster

// tileColumn locates the tile, local pixel offset and palette for a source
// coordinate inside a tilemap, wrapping both axes to the tilemap's pixel
// dimensions (Draw.c's GetLayerTile). FLAT/SCALING wrap with the
// negative-correcting modulus (wrapModSigned); AFFINE/PIXEL_MAP wrap with
// the original's absolute-value modulus (wrapMod) via tileColumnAbs.
func tileColumn(l *Layer, srcx, srcy int) (tile *Tile, ts *Tileset, localX, localY int) {
	return tileColumnWrap(l, srcx, srcy, wrapModSigned)
}

// tileColumnAbs is AFFINE/PIXEL_MAP's wrap variant, used by affineSample.
func tileColumnAbs(l *Layer, srcx, srcy int) (tile *Tile, ts *Tileset, localX, localY int) {
	return tileColumnWrap(l, srcx, srcy, wrapMod)
}

func tileColumnWrap(l *Layer, srcx, srcy int, wrap func(int, int) int) (tile *Tile, ts *Tileset, localX, localY int) {
	srcx = wrap(srcx, l.Width)
	srcy = wrap(srcy, l.Height)
	ts = l.Tilemap.Tilesets[0]
	col, row := srcx>>ts.HShift, srcy>>ts.VShift
	tile = l.Tilemap.At(col, row)
	ts = l.Tilemap.Tilesets[tile.Tileset]
	localX, localY = srcx&ts.HMask, srcy&ts.VMask
	return
}

func tilePalette(l *Layer, tile *Tile) *Palette {
	if l.Palette != nil {
		return l.Palette
	}
	return l.Tilemap.Tilesets[tile.Tileset].DefaultPalette
}

// drawLayerScanline paints one scanline of a FLAT tiled layer: walk the
// destination span tile run by tile run (one pixel at a time across empty
// tiles), resolve the covering tile, and blit its row. Mirrors Draw.c's DrawLayerScanline, including the documented anomaly
// (spec §9): regardless of the row's own computed color-key bit, the FLAT
// painter always uses blitters[1] (the color-keyed blitter) unless the
// engine's compatibility fix is enabled.
//
// When the layer has an active mosaic, painting targets the linebuffer
// scratch instead of the real destination, and flushTiledLine handles the
// WxH block replication (spec §4.5, §8 property 7: mosaic applies to every
// non-affine layer, not just AFFINE/PIXEL_MAP). The linebuffer is recomputed
// every scanline regardless of whether this is a sampling line — wasteful
// on the held lines, but flushTiledLine only consumes the fresh data on a
// sampling line, same tradeoff as the AFFINE/PIXEL_MAP painters already make.
func drawLayerScanline(e *Engine, l *Layer, line int) {
	x1, x2 := l.Clip.X1, l.Clip.X2
	mosaic := l.Mosaic.W > 1
	var dst []RGBA
	if mosaic {
		dst = l.lineBuffer
	} else {
		dst = e.layerTarget(l, line)
	}

	srcy := l.VStart + line
	for x := x1; x < x2; {
		srcx := l.HStart + x
		tile, ts, localX, localY := tileColumn(l, srcx, srcy)
		if tile.Index == 0 {
			x++
			continue
		}
		run := ts.Width - localX
		if x+run > x2 {
			run = x2 - x
		}
		physical := ts.Physical(tile.Index)
		scan := Tilescan{Width: ts.Width, Height: ts.Height, SrcX: localX, SrcY: localY, Dx: ToFixed(1), Stride: ts.Width}
		processFlipRotation(tile.Flags, &scan)

		block := ts.Block(int(physical))
		start := ToFixed(scan.SrcY*ts.Width + scan.SrcX)
		pal := tilePalette(l, tile)
		blitter := l.blitters[1]
		if !e.FlatLayerForcesKeyedBlitter && tile.Flags&FlagRotate == 0 && ts.RowColorKey(int(physical), scan.SrcY) {
			blitter = l.blitters[0]
		}
		blitter(block, pal, dst[x:x+run], run, scan.Dx, start, l.Blend)
		if !mosaic && l.Priority {
			e.markPriorityWritten(x, x+run)
		}
		x += run
	}

	if mosaic {
		flushTiledLine(l, e.layerTarget(l, line), line, x1, x2)
		if l.Priority {
			e.markPriorityWritten(x1, x2)
		}
	}
}

// drawLayerScanlineScaling paints one scanline of a SCALING tiled layer,
// sampling the source at a fixed-point fractional rate. Unlike the FLAT
// painter it correctly honors the sampled row's color-key bit (spec §9) and
// only ever applies processFlip (no ROTATE support in SCALING mode,
// matching Draw.c's DrawLayerScanlineScaling). Mosaic is handled the same
// way as drawLayerScanline: paint into the linebuffer, flush through
// flushTiledLine's block-replication when active.
func drawLayerScanlineScaling(e *Engine, l *Layer, line int) {
	x1, x2 := l.Clip.X1, l.Clip.X2
	mosaic := l.Mosaic.W > 1
	var dst []RGBA
	if mosaic {
		dst = l.lineBuffer
	} else {
		dst = e.layerTarget(l, line)
	}

	fixY := l.Dy * Fixed(line)
	srcy := l.VStart + FromFixed(fixY)
	fixX := l.Dx * Fixed(x1)
	for x := x1; x < x2; x++ {
		srcx := l.HStart + FromFixed(fixX)
		tile, ts, localX, localY := tileColumn(l, srcx, srcy)
		if tile.Index != 0 {
			physical := ts.Physical(tile.Index)
			scan := Tilescan{Width: ts.Width, Height: ts.Height, SrcX: localX, SrcY: localY, Dx: l.Dx}
			processFlip(tile.Flags, &scan)
			row := ts.Line(int(physical), scan.SrcY)
			pal := tilePalette(l, tile)
			blitter := l.blitters[0]
			if !ts.RowColorKey(int(physical), scan.SrcY) {
				blitter = l.blitters[1]
			}
			blitter(row, pal, dst[x:x+1], 1, scan.Dx, ToFixed(scan.SrcX), l.Blend)
			if !mosaic && l.Priority {
				e.markPriorityWritten(x, x+1)
			}
		}
		fixX += l.Dx
	}

	if mosaic {
		flushTiledLine(l, e.layerTarget(l, line), line, x1, x2)
		if l.Priority {
			e.markPriorityWritten(x1, x2)
		}
	}
}

// affineSample resolves the tile + palette color at a transformed source
// coordinate, or false if the covering tile is index 0 (fully transparent).
func affineSample(l *Layer, srcx, srcy int) (RGBA, bool) {
	tile, ts, localX, localY := tileColumnAbs(l, srcx, srcy)
	if tile.Index == 0 {
		return 0, false
	}
	physical := ts.Physical(tile.Index)
	scan := Tilescan{Width: ts.Width, Height: ts.Height, SrcX: localX, SrcY: localY, Stride: ts.Width}
	processFlipRotation(tile.Flags, &scan)
	idx := ts.Block(int(physical))[scan.SrcY*ts.Width+scan.SrcX]
	pal := tilePalette(l, tile)
	return pal.GetColor(idx), true
}

// drawLayerScanlineAffine paints one scanline of an AFFINE tiled layer:
// every destination pixel is sampled independently through the layer's
// transform matrix into the linebuffer scratch, which is then flushed
// (straight or through mosaic replication) into the framebuffer. Tiles
// sampled as index 0 leave the linebuffer untouched (spec §4.6: whatever
// the prior clear left there), mirroring DrawLayerScanlineAffine. AFFINE
// layers never contribute to the priority overlay.
func drawLayerScanlineAffine(e *Engine, l *Layer, line int) {
	x1, x2 := l.Clip.X1, l.Clip.X2
	for x := x1; x < x2; x++ {
		l.lineBuffer[x] = 0
	}
	for x := x1; x < x2; x++ {
		p := l.Transform.Apply(Point2D{X: float64(x - l.AffineX), Y: float64(line - l.AffineY)})
		if c, ok := affineSample(l, int(p.X)+l.AffineX+l.HStart, int(p.Y)+l.AffineY+l.VStart); ok {
			l.lineBuffer[x] = c
		}
	}
	flushTiledLine(l, e.FrameRow(line), line, x1, x2)
}

// drawLayerScanlinePixelMapping is AFFINE's table-driven sibling: each
// destination pixel's source offset comes from a precomputed PixelMap entry
// rather than a matrix multiply, mirroring DrawLayerScanlinePixelMapping.
func drawLayerScanlinePixelMapping(e *Engine, l *Layer, line int) {
	x1, x2 := l.Clip.X1, l.Clip.X2
	for x := x1; x < x2; x++ {
		entry := l.PixelMap[line*e.Width+x]
		if c, ok := affineSample(l, l.HStart+x+entry.Dx, l.VStart+line+entry.Dy); ok {
			l.lineBuffer[x] = c
		}
	}
	flushTiledLine(l, e.layerTarget(l, line), line, x1, x2)
	if l.Priority {
		e.markPriorityWritten(x1, x2)
	}
}

// flushTiledLine copies a layer's linebuffer scratch into dst. With an
// active mosaic it refreshes the mosaic buffer from the linebuffer on
// sampling lines only and always flushes through BlitMosaic; without one it
// copies straight through BlitBuffer32.
func flushTiledLine(l *Layer, dst []RGBA, line, x1, x2 int) {
	width := x2 - x1
	if l.Mosaic.W > 1 {
		if line%l.Mosaic.H == 0 {
			for i := 0; i < len(l.mosaicBuffer) && i*l.Mosaic.W+x1 < x2; i++ {
				l.mosaicBuffer[i] = l.lineBuffer[x1+i*l.Mosaic.W]
			}
		}
		BlitMosaic(l.mosaicBuffer, dst[x1:x2], width, l.Mosaic.W, l.Blend)
		return
	}
	BlitBuffer32(l.lineBuffer[x1:x2], dst[x1:x2], width, l.Blend)
}
