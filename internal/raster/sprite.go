package raster

// Sprite is one independently positioned, optionally scaled/flipped/rotated
// entity, drawn after non-priority background layers and before priority
// ones (or the reverse, when its own priority bit is set). Grounded on the
// teacher's internal/ppu/sprite.go Sprite (X, Y, Tile, Attributes) pair,
// generalized from the Game Boy's fixed 8x8/8x16 OAM entry to Tilengine's
// arbitrary-size, scalable sprite with world-space scrolling and per-pixel
// collision.
type Sprite struct {
	OK      bool
	Picture *Bitmap // shared pixel source (spriteset frame)
	Palette *Palette
	Blend   BlendFunc
	Flags   Flags

	X, Y int // screen-space position, top-left

	SrcRect Rect // source sub-rectangle within Picture; zero value samples from (0,0)

	WorldSpace bool
	XWorld     int // world-space position, used instead of X/Y when WorldSpace
	YWorld     int

	Mode      LayerMode // ModeFlat or ModeScaling
	DstWidth  int       // scaled on-screen width/height (ModeScaling only)
	DstHeight int
	Dx, Dy    Fixed // fixed-point source-step per destination pixel (ModeScaling)

	Index       int  // stable slot, the id written into the collision buffer
	Priority    bool // drawn after, not before, the priority background layers
	DoCollision bool
	Collision   bool // set when another DoCollision sprite overlapped this frame
	Masked      bool // clipped out of the top/bottom mask band, spec §4.3

	dirty    bool
	blitters blitterPair
	draw     spriteDrawFunc

	prev, next *Sprite
}

// SpriteList is the intrusive, z-ordered doubly-linked list every active
// Sprite is threaded through, mirroring Draw.c's prev/next index array:
// O(1) insert/remove and in-order traversal without a separate slice.
type SpriteList struct {
	head, tail *Sprite
}

// PushBack appends s as the new top of the z-order (drawn last, i.e. on top).
func (sl *SpriteList) PushBack(s *Sprite) {
	s.prev, s.next = sl.tail, nil
	if sl.tail != nil {
		sl.tail.next = s
	} else {
		sl.head = s
	}
	sl.tail = s
}

// Remove unlinks s from the list; safe to call on a sprite not currently
// linked (no-op).
func (sl *SpriteList) Remove(s *Sprite) {
	if s.prev != nil {
		s.prev.next = s.next
	} else if sl.head == s {
		sl.head = s.next
	}
	if s.next != nil {
		s.next.prev = s.prev
	} else if sl.tail == s {
		sl.tail = s.prev
	}
	s.prev, s.next = nil, nil
}

// Each calls fn for every sprite from bottom to top of the z-order.
func (sl *SpriteList) Each(fn func(*Sprite)) {
	for cur := sl.head; cur != nil; cur = cur.next {
		fn(cur)
	}
}

// ScreenRect returns the sprite's current on-screen destination rectangle,
// resolving world-space scroll when WorldSpace is set (spec §4.9: world
// sprites are placed at XWorld/YWorld minus the engine's world position
// passed in as worldX/worldY, rather than at a fixed screen coordinate).
func (s *Sprite) ScreenRect(worldX, worldY int) Rect {
	x, y := s.X, s.Y
	if s.WorldSpace {
		x, y = s.XWorld-worldX, s.YWorld-worldY
	}
	w, h := s.Picture.Width, s.Picture.Height
	if s.Mode == ModeScaling {
		w, h = s.DstWidth, s.DstHeight
	}
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// checkCoverage reports whether the sprite is visible and intersects
// scanline nscan, mirroring Draw.c's check_sprite_coverage: out-of-band
// vertically, an empty/negative clipped dstrect or srcrect, or landing
// inside the sprite-mask band (when Masked) all suppress the scanline
// entirely.
func (s *Sprite) checkCoverage(nscan int, rect Rect, maskTop, maskBottom int, maskEnabled bool) bool {
	if !s.OK || nscan < rect.Y1 || nscan >= rect.Y2 {
		return false
	}
	if rect.X2 < 0 || s.SrcRect.X2 < 0 {
		return false
	}
	if maskEnabled && s.Masked && nscan >= maskTop && nscan < maskBottom {
		return false
	}
	return true
}

// UpdateSprite recomputes the sprite's dispatched painter and blitter pair
// after a mode/flag change, mirroring Draw.c's update_sprite.
func (s *Sprite) UpdateSprite() {
	s.draw = GetSpriteDraw(s.Mode)
	s.blitters = defaultBlitterPair()
	s.dirty = false
}
