package raster

// Blitter copies width palette-indexed source samples into dst, sampling
// src at fixed-point position srcStart, srcStart+dx, srcStart+2*dx, ... A nil
// blend performs an opaque replace; otherwise each written pixel is
// blend(sampled, dst[i]).
//
// This single signature serves every caller in the core. The FLAT bitmap
// painter passes srcStart == 0 with a source slice already positioned at
// the first sample. The other painters pass a stable base (a whole tile
// block, tile row, bitmap row or picture buffer) plus a fixed-point
// srcStart, with dx carrying the direction and per-pixel scale, so a
// backward or stride-jumping walk never indexes before the slice start.
// Both usages are what Draw.c's `ScanBlitPtr(src, palette, dst, width, dx,
// srcx_start, blend)` signature describes in spec §6.
type Blitter func(src []byte, pal *Palette, dst []RGBA, width int, dx Fixed, srcStart Fixed, blend BlendFunc)

// BlitOpaque writes every sampled pixel, without checking for the index-0
// color-key. Used for tile rows whose color-key bit says the row has no
// transparent pixel (a cheaper pass, since there's nothing to skip), and for
// the scheduler's background-bitmap fill.
func BlitOpaque(src []byte, pal *Palette, dst []RGBA, width int, dx Fixed, srcStart Fixed, blend BlendFunc) {
	srcx := srcStart
	for i := 0; i < width; i++ {
		idx := src[FromFixed(srcx)]
		c := pal.GetColor(idx)
		if blend != nil {
			c = blend(c, dst[i])
		}
		dst[i] = c
		srcx += dx
	}
}

// BlitKeyed writes sampled pixels, skipping (leaving dst untouched) wherever
// the source index is 0, the color-key/transparency convention.
func BlitKeyed(src []byte, pal *Palette, dst []RGBA, width int, dx Fixed, srcStart Fixed, blend BlendFunc) {
	srcx := srcStart
	for i := 0; i < width; i++ {
		idx := src[FromFixed(srcx)]
		if idx != 0 {
			c := pal.GetColor(idx)
			if blend != nil {
				c = blend(c, dst[i])
			}
			dst[i] = c
		}
		srcx += dx
	}
}

// blitterPair is the [opaque, color-keyed] pair a Layer or Sprite selects
// between per spec §3 ("blitters[2]: [opaque, color-keyed] blitter pair").
type blitterPair [2]Blitter

func defaultBlitterPair() blitterPair {
	return blitterPair{BlitOpaque, BlitKeyed}
}

// BlitColor fills width destination pixels with a solid color; used for the
// scheduler's solid-background-color fill (spec §4.1 step 2).
func BlitColor(dst []RGBA, color RGBA, width int) {
	for i := 0; i < width; i++ {
		dst[i] = color
	}
}

// BlitBuffer32 copies width RGBA pixels from src to dst, applying blend if
// set. flushTiledLine uses it to copy a layer's linebuffer scratch into the
// destination when the layer has no active mosaic (Draw.c's blit_buffer32);
// with an active mosaic the flush goes through BlitMosaic instead.
func BlitBuffer32(src, dst []RGBA, width int, blend BlendFunc) {
	for i := 0; i < width; i++ {
		if blend != nil {
			dst[i] = blend(src[i], dst[i])
		} else {
			dst[i] = src[i]
		}
	}
}

// BlitMosaic replicates each block of w source pixels across the destination,
// mirroring Draw.c's blit_mosaic -> BlitMosaic primitive: dst[i] = src[i/w]*blend.
func BlitMosaic(src, dst []RGBA, width, w int, blend BlendFunc) {
	if w <= 0 {
		w = 1
	}
	for i := 0; i < width; i++ {
		c := src[i/w]
		if blend != nil {
			c = blend(c, dst[i])
		}
		dst[i] = c
	}
}
