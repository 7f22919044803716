package raster

// Rect is an integer screen/layer rectangle. X2/Y2 are exclusive except for
// a layer's clip rectangle, whose Y2 is inclusive: the scheduler draws a
// layer on lines Clip.Y1 through Clip.Y2, matching Draw.c's
// `line <= layer->clip.y2`.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Point2D is a 2D point in the affine transform's working precision.
type Point2D struct {
	X, Y float64
}

// Matrix3 is a row-major 3x3 affine transform matrix:
//
//	| a b c |   | x |
//	| d e f | * | y |
//	| 0 0 1 |   | 1 |
type Matrix3 struct {
	A, B, C float64
	D, E, F float64
}

// Identity3 returns the identity transform.
func Identity3() Matrix3 {
	return Matrix3{A: 1, E: 1}
}

// Apply transforms p by m, mirroring Tilengine's Point2DMultiply.
func (m Matrix3) Apply(p Point2D) Point2D {
	return Point2D{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// PixelMapEntry is one entry of a PIXEL_MAP mode layer's per-pixel offset
// table: an addend applied to the layer's (hstart+width, vstart+height)
// origin before wrapping.
type PixelMapEntry struct {
	Dx, Dy int
}

// wrapMod mirrors the original's `abs(value) % modulus` wrap used throughout
// the affine and pixel-map painters.
func wrapMod(value, modulus int) int {
	if modulus <= 0 {
		return 0
	}
	if value < 0 {
		value = -value
	}
	return value % modulus
}

// wrapModSigned mirrors the `% modulus` with negative-correction wrap used by
// the FLAT/SCALING scroll math (as opposed to the absolute-value wrap used by
// AFFINE/PIXEL_MAP).
func wrapModSigned(value, modulus int) int {
	if modulus <= 0 {
		return 0
	}
	value %= modulus
	if value < 0 {
		value += modulus
	}
	return value
}
