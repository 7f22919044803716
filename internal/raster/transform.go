package raster

// Tilescan carries the per-scanline sampling state a painter builds before
// handing off to a Blitter: the source block's dimensions, the starting
// sample coordinates, the per-pixel stride, and (for ROTATE) the row stride
// needed to walk columns instead of rows. Mirrors Draw.c's Tilescan struct
// exactly.
type Tilescan struct {
	Width, Height int
	SrcX, SrcY    int
	Dx            Fixed
	Stride        int
}

// processFlip applies FLIPX/FLIPY only (no rotation support) — used
// exclusively by the SCALING tiled/bitmap painters. Note its FLIPX handling
// intentionally differs from processFlipRotation's: it resets SrcX to
// Width-1 outright rather than Width-SrcX-1. Spec §4.6/§9 calls this out
// explicitly as a real divergence between the two overloads in the original
// that must be preserved for visual parity, not "fixed" into consistency.
func processFlip(flags Flags, scan *Tilescan) {
	if flags&FlagFlipX != 0 {
		scan.Dx = -scan.Dx
		scan.SrcX = scan.Width - 1
	}
	if flags&FlagFlipY != 0 {
		scan.SrcY = scan.Height - scan.SrcY - 1
	}
}

// processFlipRotation applies ROTATE (90 degrees clockwise, composing with
// FLIPX/FLIPY into any of the 8 standard orientations) and then FLIPX/FLIPY
// in the rotated axis system. Used by every painter except SCALING.
func processFlipRotation(flags Flags, scan *Tilescan) {
	if flags&FlagRotate != 0 {
		scan.SrcX, scan.SrcY = scan.SrcY, scan.SrcX
		scan.Dx = mulFixed(scan.Dx, scan.Stride)

		if flags&FlagFlipX != 0 {
			scan.Dx = -scan.Dx
			scan.SrcY = scan.Height - scan.SrcY - 1
		}
		if flags&FlagFlipY != 0 {
			scan.SrcX = scan.Width - scan.SrcX - 1
		}
	} else {
		if flags&FlagFlipX != 0 {
			scan.Dx = -scan.Dx
			scan.SrcX = scan.Width - scan.SrcX - 1
		}
		if flags&FlagFlipY != 0 {
			scan.SrcY = scan.Height - scan.SrcY - 1
		}
	}
}

// stripRotateIfNotSquare clears FlagRotate when the source block isn't
// square, mirroring Draw.c's DrawSpriteScanline ("disable rotation for
// non-squared sprites"): only the sprite painter strips it this way. Tile,
// object and affine-sample painters call process_flip_rotation
// unconditionally in the original, rotation anomalies and all.
func stripRotateIfNotSquare(flags Flags, w, h int) Flags {
	if flags&FlagRotate != 0 && w != h {
		return flags &^ FlagRotate
	}
	return flags
}
