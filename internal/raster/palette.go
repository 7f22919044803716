package raster

// RGBA is one packed 32-bit framebuffer-ready pixel. The core never
// interprets or reorders its channels; palettes are expected to already hold
// framebuffer-ready words, same as Tilengine's `TLN_Palette.data`.
type RGBA uint32

// Palette is a 256-entry indexed color table. Index 0 is the color-key
// convention (transparent) for every blitter that checks it; Palette itself
// does not enforce that, it simply stores whatever the host wrote there.
//
// Grounded on the teacher's palette.Palette / palette.CGBPalette
// (internal/ppu/palette/{palette,colour}.go), generalized from a fixed
// 4-entry DMG/CGB shade table to a full 256-entry indexed table and from
// [3]uint8 RGB triples to single packed RGBA words.
type Palette struct {
	Data [256]RGBA
}

// NewPalette returns an all-zero (fully transparent-looking) palette.
func NewPalette() *Palette {
	return &Palette{}
}

// GetColor returns the color at the given palette index.
func (p *Palette) GetColor(index uint8) RGBA {
	return p.Data[index]
}

// SetColor writes the color at the given palette index.
func (p *Palette) SetColor(index uint8, c RGBA) {
	p.Data[index] = c
}

// BlendFunc combines a freshly-sampled source color with the color already in
// the destination, e.g. for additive or tinted raster effects. A nil
// BlendFunc means opaque replace.
type BlendFunc func(src, dst RGBA) RGBA
