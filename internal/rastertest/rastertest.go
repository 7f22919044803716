// Package rastertest provides scanline/frame fingerprinting helpers for
// tests, so a painter's output can be asserted against a known-good hash
// instead of a giant literal pixel array. Grounded on the teacher's use of
// github.com/cespare/xxhash for frame-delta hashing
// (pkg/display/web/player.go), repurposed here from "did the frame change"
// to "does this scanline match a recorded baseline".
package rastertest

import (
	"encoding/binary"

	"github.com/cespare/xxhash"

	"github.com/retrocore/rastercore/internal/raster"
)

// HashLine returns a 64-bit fingerprint of a rendered scanline's raw RGBA
// words. Two calls with pixel-identical input always agree; this is a
// fingerprint, not a content-addressable guarantee.
func HashLine(pixels []raster.RGBA) uint64 {
	if len(pixels) == 0 {
		return xxhash.Sum64(nil)
	}
	buf := make([]byte, len(pixels)*4)
	for i, p := range pixels {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(p))
	}
	return xxhash.Sum64(buf)
}

// HashFrame fingerprints an entire framebuffer in one call.
func HashFrame(framebuffer []raster.RGBA) uint64 {
	return HashLine(framebuffer)
}
