package blend2d

import "encoding/binary"

// originOffset returns the byte offset of row 0 within a buffer whose
// rows are stride bytes apart. Negative strides express bottom-up row
// order: row 0 then lives at the end of the buffer.
func originOffset(stride, h int) int {
	if stride < 0 {
		return (h - 1) * -stride
	}
	return 0
}

// fillGap writes the fill byte over the whole slice. Kernels call it
// with the per-row gap region so destination rows are never left
// partially uninitialized.
func fillGap(p []byte, fill byte) {
	for i := range p {
		p[i] = fill
	}
}

// readPacked reads one packed pixel value of bpp bytes, little-endian.
func readPacked(p []byte, bpp int) uint32 {
	switch bpp {
	case 1:
		return uint32(p[0])
	case 2:
		return uint32(binary.LittleEndian.Uint16(p))
	case 3:
		return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16
	default:
		return binary.LittleEndian.Uint32(p)
	}
}

// writePacked writes one packed pixel value of bpp bytes, little-endian.
func writePacked(p []byte, bpp int, v uint32) {
	switch bpp {
	case 1:
		p[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(p, uint16(v))
	case 3:
		p[0] = byte(v)
		p[1] = byte(v >> 8)
		p[2] = byte(v >> 16)
	default:
		binary.LittleEndian.PutUint32(p, v)
	}
}

// udiv255 divides by 255 with rounding, exact for inputs up to 255*255.
func udiv255(x uint32) uint32 {
	x += 0x80
	return (x + (x >> 8)) >> 8
}

// udiv255Pair divides the two 16-bit lanes of x by 255 with rounding.
// Lane products never exceed 255*255, so no carry crosses lanes.
func udiv255Pair(x uint32) uint32 {
	x += 0x00800080
	return ((x + ((x >> 8) & 0x00FF00FF)) >> 8) & 0x00FF00FF
}

// unpremulDiv recovers a straight 8-bit component from a premultiplied
// one: round(c*255/a), clamped to 255. a must be non-zero.
func unpremulDiv(c, a uint32) uint32 {
	v := (c*255 + a/2) / a
	if v > 255 {
		return 255
	}
	return v
}

// applyPerm32 rebuilds a 32-bit pixel with destination byte i taken
// from source byte perm[i].
func applyPerm32(v uint32, perm *[4]uint8) uint32 {
	return uint32(byte(v>>(8*perm[0]))) |
		uint32(byte(v>>(8*perm[1])))<<8 |
		uint32(byte(v>>(8*perm[2])))<<16 |
		uint32(byte(v>>(8*perm[3])))<<24
}

// identityPerm is the no-op byte permutation.
var identityPerm = [4]uint8{0, 1, 2, 3}
