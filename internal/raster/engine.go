package raster

import (
	"errors"
	"fmt"

	"github.com/retrocore/rastercore/pkg/log"
)

// ErrInvalidSize is returned by New when width or height isn't positive.
var ErrInvalidSize = errors.New("raster: width and height must be positive")

// RasterCallback is invoked once per scanline, before that line is painted,
// letting a caller mutate layer scroll/scaling/affine state mid-frame (the
// "raster effect" hook, spec §4.1 step 1 and §8 property 10).
type RasterCallback func(e *Engine, line int)

// Engine owns one frame's worth of layers, sprites and scratch buffers and
// drives the scanline-synchronous render pipeline described in spec §4.1.
// Grounded on the teacher's internal/gameboy.GameBoy as the top-level owning
// struct wired together via functional options (internal/gameboy/options.go),
// generalized from a fixed 160x144 console screen to an arbitrary frame size
// with an arbitrary number of layers and sprites.
type Engine struct {
	Width, Height int

	Framebuffer []RGBA // Width*Height, row-major

	Layers  []*Layer
	Sprites []*Sprite // stable slots, indexed by Sprite.Index
	spriteZ SpriteList

	Palettes [8]*Palette

	BGColor   RGBA
	BGBitmap  *Bitmap
	BGPalette *Palette

	XWorld, YWorld int // world-space scroll cursor, spec §4.9

	SpriteMaskEnabled bool
	SpriteMaskTop     int
	SpriteMaskBottom  int

	RasterCallback RasterCallback

	Log log.Logger

	// Compatibility flags, spec §9: both default true, replicating the
	// original's documented anomalies rather than silently fixing them.
	FlatLayerForcesKeyedBlitter bool
	BitmapPixelMapNilPalette    bool

	Line int

	priorityBuf     []RGBA
	priorityWritten []bool
	collisionBuf    []uint16
}

// layerTarget picks the framebuffer row or the priority scratch buffer for a
// layer's draw call. AFFINE tiled/bitmap layers never participate in the
// priority overlay regardless of their own Priority bit (spec §4.6,
// mirroring DrawLayerScanlineAffine/DrawBitmapScanlineAffine's unconditional
// `return false` where every other painter returns the layer's actual
// priority flag).
func (e *Engine) layerTarget(l *Layer, line int) []RGBA {
	if l.Priority && l.Mode != ModeAffine {
		return e.priorityBuf
	}
	return e.FrameRow(line)
}

// markPriorityWritten records that [x1, x2) of the priority scratch buffer
// holds real pixel data this scanline, so the compositing step knows to
// copy it rather than leave the framebuffer's existing content in place.
// Coarser than a true per-pixel transparency test (a keyed blit into the
// priority buffer may itself skip some pixels in the span as color-keyed),
// but the original's Blit.c wasn't available to recover its exact
// overwrite semantics, and a tile/sprite is rarely transparent in patches
// narrower than its own draw call.
func (e *Engine) markPriorityWritten(x1, x2 int) {
	for x := x1; x < x2; x++ {
		e.priorityWritten[x] = true
	}
}

// Option configures an Engine at construction time, mirroring the teacher's
// functional-options pattern (internal/gameboy/options.go's gameboy.Opt).
type Option func(*Engine)

// WithLogger overrides the default null logger.
func WithLogger(l log.Logger) Option {
	return func(e *Engine) { e.Log = l }
}

// WithSpriteCapacity preallocates n sprite slots.
func WithSpriteCapacity(n int) Option {
	return func(e *Engine) { e.Sprites = make([]*Sprite, 0, n) }
}

// WithLayerCapacity preallocates n layer slots.
func WithLayerCapacity(n int) Option {
	return func(e *Engine) { e.Layers = make([]*Layer, 0, n) }
}

// WithSpriteMask enables the sprite clip band [top, bottom), used by masked
// sprites to stay invisible across that scanline range (spec §4.3).
func WithSpriteMask(top, bottom int) Option {
	return func(e *Engine) {
		e.SpriteMaskEnabled = true
		e.SpriteMaskTop = top
		e.SpriteMaskBottom = bottom
	}
}

// WithFlatColorKeyFix disables the FLAT tiled layer's hardcoded keyed-blitter
// anomaly (spec §9), making it honor the sampled row's computed color-key
// bit like the SCALING painter does (rotated tiles, which walk a column,
// keep the keyed blitter). Off by default: replicating the original's
// behavior is the default, not the fix.
func WithFlatColorKeyFix() Option {
	return func(e *Engine) { e.FlatLayerForcesKeyedBlitter = false }
}

// WithPixelMapPaletteFix disables the PIXEL_MAP bitmap painter's missing
// nil-palette fallback (spec §9), making it fall back to the bitmap's own
// palette like its AFFINE sibling does. Off by default for the same reason.
func WithPixelMapPaletteFix() Option {
	return func(e *Engine) { e.BitmapPixelMapNilPalette = false }
}

// New allocates an Engine for a width x height frame.
func New(width, height int, opts ...Option) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: New(%d, %d): %w", width, height, ErrInvalidSize)
	}
	e := &Engine{
		Width:                       width,
		Height:                      height,
		Framebuffer:                 make([]RGBA, width*height),
		Log:                         log.NewNullLogger(),
		FlatLayerForcesKeyedBlitter: true,
		BitmapPixelMapNilPalette:    true,
		priorityBuf:                 make([]RGBA, width),
		priorityWritten:             make([]bool, width),
		collisionBuf:                make([]uint16, width),
	}
	for i := range e.collisionBuf {
		e.collisionBuf[i] = noCollision
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// AddLayer appends and returns a new Layer. The scheduler draws layers in
// reverse index order, so index 0 is the front-most layer and each later
// index sits behind the ones before it.
func (e *Engine) AddLayer() *Layer {
	l := &Layer{OK: true, Clip: Rect{X1: 0, Y1: 0, X2: e.Width, Y2: e.Height}, Log: e.Log, dirty: true}
	e.Layers = append(e.Layers, l)
	return l
}

// AddSprite allocates and returns a new Sprite, inserted at the top of the
// z-order.
func (e *Engine) AddSprite() *Sprite {
	s := &Sprite{OK: true, Index: len(e.Sprites), dirty: true}
	e.Sprites = append(e.Sprites, s)
	e.spriteZ.PushBack(s)
	return s
}

// SetSpriteZ moves sprite s to the top of the draw order (spec §4.2's
// "most recently raised sprite draws last, i.e. on top").
func (e *Engine) SetSpriteZ(s *Sprite) {
	e.spriteZ.Remove(s)
	e.spriteZ.PushBack(s)
}

// FrameRow returns the Width-long destination slice for scanline line.
func (e *Engine) FrameRow(line int) []RGBA {
	return e.Framebuffer[line*e.Width : (line+1)*e.Width]
}
