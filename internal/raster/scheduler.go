package raster

// DrawScanline renders one scanline of the current frame into the
// framebuffer and advances Line, mirroring Draw.c's DrawScanline pipeline
// exactly (spec §4.1):
//
//  1. invoke the raster callback, letting it retarget scroll/scaling/affine
//     state for this line before anything is sampled;
//  2. fill the line with the solid background color or background bitmap;
//  3. clear the priority scratch overlay;
//  4. paint non-priority background layers, back to front (reverse index
//     order, so layer 0 ends up on top of the non-priority stack);
//  5. paint non-priority sprites, bottom to top of the z-order, recording
//     per-pixel collision coverage along the way;
//  6. paint priority background layers, same reverse index order;
//  7. composite the priority overlay over the framebuffer, wherever it was
//     actually written this line;
//  8. paint priority sprites, topmost last.
func (e *Engine) DrawScanline() {
	line := e.Line
	if line < 0 || line >= e.Height {
		return
	}

	if e.RasterCallback != nil {
		e.RasterCallback(e, line)
	}

	dst := e.FrameRow(line)
	e.fillBackground(dst, line)

	for i := range e.priorityWritten {
		e.priorityWritten[i] = false
	}
	for i := range e.collisionBuf {
		e.collisionBuf[i] = noCollision
	}

	for i := len(e.Layers) - 1; i >= 0; i-- {
		l := e.Layers[i]
		if !l.OK || l.Priority || line < l.Clip.Y1 || line > l.Clip.Y2 {
			continue
		}
		if l.dirty {
			e.Log.Debugf("recomputing dirty layer %d (kind=%v mode=%v)", i, l.Kind, l.Mode)
			l.UpdateLayer(e.Width)
		}
		if l.draw == nil {
			e.Log.Errorf("layer %d has no painter for kind=%v mode=%v, skipping", i, l.Kind, l.Mode)
			continue
		}
		l.draw(e, l, line)
	}

	e.spriteZ.Each(func(s *Sprite) {
		e.drawOneSprite(s, line, false)
	})

	for i := len(e.Layers) - 1; i >= 0; i-- {
		l := e.Layers[i]
		if !l.OK || !l.Priority || line < l.Clip.Y1 || line > l.Clip.Y2 {
			continue
		}
		if l.dirty {
			e.Log.Debugf("recomputing dirty priority layer %d (kind=%v mode=%v)", i, l.Kind, l.Mode)
			l.UpdateLayer(e.Width)
		}
		if l.draw == nil {
			e.Log.Errorf("priority layer %d has no painter for kind=%v mode=%v, skipping", i, l.Kind, l.Mode)
			continue
		}
		l.draw(e, l, line)
	}

	e.compositePriority(dst)

	e.spriteZ.Each(func(s *Sprite) {
		e.drawOneSprite(s, line, true)
	})

	e.Line++
}

// fillBackground paints the solid BGColor across the whole scanline, or,
// when BGBitmap is set and covers this line, a row of BGBitmap clipped to
// the narrower of the bitmap and the frame (spec §4.1 step 2).
func (e *Engine) fillBackground(dst []RGBA, line int) {
	if e.BGBitmap != nil && line < e.BGBitmap.Height {
		pal := e.BGPalette
		if pal == nil {
			pal = e.BGBitmap.Palette
		}
		row := e.BGBitmap.Row(0, line)
		n := len(row)
		if n > len(dst) {
			n = len(dst)
		}
		BlitOpaque(row, pal, dst[:n], n, ToFixed(1), 0, nil)
		return
	}
	BlitColor(dst, e.BGColor, e.Width)
}

// compositePriority copies every priority-overlay pixel actually written
// this scanline into the framebuffer (spec §4.1 step 7).
func (e *Engine) compositePriority(dst []RGBA) {
	for x, written := range e.priorityWritten {
		if written {
			dst[x] = e.priorityBuf[x]
		}
	}
}

// drawOneSprite paints s if it's visible, covers this scanline, and its
// Priority bit matches the pass currently being drawn.
func (e *Engine) drawOneSprite(s *Sprite, line int, priorityPass bool) {
	if !s.OK || s.Priority != priorityPass {
		return
	}
	if s.dirty {
		e.Log.Debugf("recomputing dirty sprite %d (mode=%v)", s.Index, s.Mode)
		s.UpdateSprite()
	}
	if s.draw == nil {
		e.Log.Errorf("sprite %d has no painter for mode=%v, skipping", s.Index, s.Mode)
		return
	}
	rect := s.ScreenRect(e.XWorld, e.YWorld)
	if !s.checkCoverage(line, rect, e.SpriteMaskTop, e.SpriteMaskBottom, e.SpriteMaskEnabled) {
		return
	}
	s.draw(e, s, line)
}
