package raster

// noCollision is the collision buffer's empty sentinel, mirroring Draw.c's
// 0xFFFF marker for "no sprite has written this pixel yet".
const noCollision = 0xFFFF

// recordCollision marks [x1, x2) of the scratch collision buffer as owned by
// sprite s.Index, flagging both s and whichever sprite already owned a pixel
// in that range as having collided (symmetric: both sprites of the pair are
// marked). Only sprites with DoCollision set call this, so a pair is detected
// only when both have DoCollision set. sprites is indexed by
// Sprite.Index, exactly Engine.Sprites. Grounded on Draw.c's
// DrawSpriteCollision / DrawSpriteCollisionScaling.
func recordCollision(buf []uint16, x1, x2 int, s *Sprite, sprites []*Sprite) {
	if x1 < 0 {
		x1 = 0
	}
	if x2 > len(buf) {
		x2 = len(buf)
	}
	for x := x1; x < x2; x++ {
		prev := buf[x]
		if prev != noCollision && prev != uint16(s.Index) {
			s.Collision = true
			if int(prev) < len(sprites) && sprites[prev] != nil {
				sprites[prev].Collision = true
			}
		}
		buf[x] = uint16(s.Index)
	}
}

// drawSpriteCollisionFlat marks one scanline's worth of opaque pixels for an
// unscaled sprite: every sampled index != 0 within the clipped span counts
// as coverage, matching the flat painter's own transparency test.
func drawSpriteCollisionFlat(buf []uint16, s *Sprite, src []byte, dx, srcStart Fixed, x1, x2 int, sprites []*Sprite) {
	srcx := srcStart
	for x := x1; x < x2; x++ {
		if src[FromFixed(srcx)] != 0 {
			recordCollision(buf, x, x+1, s, sprites)
		}
		srcx += dx
	}
}

// drawSpriteCollisionScaling is the scaled-sprite analogue, sampling at the
// sprite's fixed-point per-pixel step rather than 1:1.
func drawSpriteCollisionScaling(buf []uint16, s *Sprite, src []byte, dx Fixed, srcStart Fixed, x1, x2 int, sprites []*Sprite) {
	srcx := srcStart
	for x := x1; x < x2; x++ {
		if src[FromFixed(srcx)] != 0 {
			recordCollision(buf, x, x+1, s, sprites)
		}
		srcx += dx
	}
}
