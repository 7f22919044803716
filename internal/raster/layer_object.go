package raster

// drawLayerObjectScanline walks an object layer's list in z-order, drawing
// every object that covers this scanline. Objects that set FlagPriority
// write into the priority scratch buffer instead of the framebuffer,
// composited later in the scheduler (spec §4.1 step 7). Mirrors Draw.c's
// DrawLayerObjectScanline, including its own hardcoded keyed blitter (no
// per-row color-key table exists for a bitmap source here either) and its
// unconditional process_flip_rotation call: unlike the sprite painter, the
// object painter never strips ROTATE for a non-square bitmap.
func drawLayerObjectScanline(e *Engine, l *Layer, line int) {
	dst := e.FrameRow(line)
	l.Objects.Each(func(o *Object) {
		if !o.Visible {
			return
		}
		y1, _, ok := o.inLine(line)
		if !ok {
			return
		}
		w, h := o.Width, o.Height

		screenW, screenH := w, h
		if o.Flags&FlagRotate != 0 {
			screenW, screenH = h, w
		}
		_ = screenH

		x1, x2 := o.X, o.X+screenW
		clipX1, clipX2 := l.Clip.X1, l.Clip.X2
		if x2 <= clipX1 || x1 >= clipX2 {
			return
		}
		localY := line - y1
		scan := Tilescan{Width: w, Height: h, SrcX: 0, SrcY: localY, Dx: ToFixed(1), Stride: o.Bitmap.Pitch}
		processFlipRotation(o.Flags, &scan)

		trim := 0
		if x1 < clipX1 {
			trim = clipX1 - x1
			x1 = clipX1
		}
		if x2 > clipX2 {
			x2 = clipX2
		}
		// Sample through the bitmap's whole stable pixel buffer with a
		// signed Fixed start, same reasoning as the sprite/FLAT-layer
		// painters: FLIPX/ROTATE can walk backwards or by a row stride,
		// and a pre-advanced slice runs out of room behind its own start.
		start := ToFixed(scan.SrcY*o.Bitmap.Pitch+scan.SrcX) + scan.Dx*Fixed(trim)
		src := o.Bitmap.Pixels

		target := dst[x1:x2]
		if o.Flags&FlagPriority != 0 {
			target = e.priorityBuf[x1:x2]
			e.markPriorityWritten(x1, x2)
		}
		BlitKeyed(src, o.Bitmap.Palette, target, x2-x1, scan.Dx, start, l.Blend)
	})
}
