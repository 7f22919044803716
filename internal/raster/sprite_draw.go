package raster

// drawSpriteScanline paints one scanline of an unscaled (ModeFlat) sprite,
// honoring FLIPX/FLIPY/ROTATE via processFlipRotation exactly like a tiled
// FLAT layer does, and recording per-pixel collision coverage when
// DoCollision is set. Sampling starts at SrcRect.X1/Y1 rather than the
// picture's origin, mirroring Draw.c's DrawSpriteScanline
// (scan.srcx/srcy = sprite->srcrect.x1/y1 + ...).
func drawSpriteScanline(e *Engine, s *Sprite, line int) {
	rect := s.ScreenRect(e.XWorld, e.YWorld)
	w, h := s.Picture.Width, s.Picture.Height
	flags := stripRotateIfNotSquare(s.Flags, w, h)

	localY := line - rect.Y1
	scan := Tilescan{Width: w, Height: h, SrcX: s.SrcRect.X1, SrcY: s.SrcRect.Y1 + localY, Dx: ToFixed(1), Stride: s.Picture.Pitch}
	processFlipRotation(flags, &scan)

	x1, x2 := rect.X1, rect.X2
	trim := 0
	if x1 < 0 {
		trim = -x1
		x1 = 0
	}
	if x2 > e.Width {
		x2 = e.Width
	}
	if x1 >= x2 {
		return
	}
	// Sample through the picture's whole stable pixel buffer with a signed
	// Fixed start rather than a pre-advanced slice, so FLIPX/ROTATE (which
	// walk backwards or by a row stride) never index before the slice's
	// own start. Mirrors the FLAT tiled layer painter's same fix.
	start := ToFixed(scan.SrcY*s.Picture.Pitch+scan.SrcX) + scan.Dx*Fixed(trim)
	src := s.Picture.Pixels

	// Priority only changes *when* a sprite is drawn relative to the
	// priority background layers (spec §4.1 steps 5 vs 8), not where: every
	// sprite writes straight to the framebuffer.
	dst := e.FrameRow(line)
	s.blitters[1](src, s.Palette, dst[x1:x2], x2-x1, scan.Dx, start, s.Blend)

	if s.DoCollision {
		drawSpriteCollisionFlat(e.collisionBuf, s, src, scan.Dx, start, x1, x2, e.Sprites)
	}
}

// drawScalingSpriteScanline paints one scanline of a ModeScaling sprite,
// sampling the source row at the sprite's fixed-point per-pixel step.
// ROTATE isn't supported for scaled sprites, mirroring Draw.c's
// DrawScalingSpriteScanline (which only ever calls processFlip, never
// processFlipRotation). FLIPX reverses the sampling direction and re-bases
// the fixed-point start at the row's last column, the scaled-sprite
// analogue of the original's `srcx = int2fix(w) - srcx` re-basing.
func drawScalingSpriteScanline(e *Engine, s *Sprite, line int) {
	rect := s.ScreenRect(e.XWorld, e.YWorld)
	w, h := s.Picture.Width, s.Picture.Height

	localDstY := line - rect.Y1
	srcy := s.SrcRect.Y1 + FromFixed(s.Dy*Fixed(localDstY))
	if srcy < 0 {
		srcy = 0
	}
	if srcy >= h {
		srcy = h - 1
	}
	if s.Flags&FlagFlipY != 0 {
		srcy = h - srcy - 1
	}

	dx := s.Dx
	start := ToFixed(s.SrcRect.X1)
	if s.Flags&FlagFlipX != 0 {
		dx = -dx
		start = ToFixed(w - 1 - s.SrcRect.X1)
	}

	x1, x2 := rect.X1, rect.X1+s.DstWidth
	trim := 0
	if x1 < 0 {
		trim = -x1
		x1 = 0
	}
	if x2 > e.Width {
		x2 = e.Width
	}
	if x1 >= x2 {
		return
	}
	start += dx * Fixed(trim)

	row := s.Picture.Row(0, srcy)
	dst := e.FrameRow(line)
	s.blitters[1](row, s.Palette, dst[x1:x2], x2-x1, dx, start, s.Blend)

	if s.DoCollision {
		drawSpriteCollisionScaling(e.collisionBuf, s, row, dx, start, x1, x2, e.Sprites)
	}
}
