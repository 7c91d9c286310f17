package blend2d

import "fmt"

// Channel indices into FormatInfo.Sizes and FormatInfo.Shifts.
const (
	ChannelR = 0
	ChannelG = 1
	ChannelB = 2
	ChannelA = 3
)

// FormatFlags describe pixel format semantics beyond the channel layout.
type FormatFlags uint32

const (
	// FormatFlagAlpha marks formats carrying an alpha channel.
	FormatFlagAlpha FormatFlags = 1 << iota

	// FormatFlagPremultiplied marks formats whose color channels are
	// pre-scaled by alpha.
	FormatFlagPremultiplied

	// FormatFlagIndexed marks palette formats: each pixel is an index
	// into FormatInfo.Palette rather than an inline color value.
	FormatFlagIndexed

	// FormatFlagLum marks single-channel greyscale formats. The R, G
	// and B channel descriptors coincide for these formats.
	FormatFlagLum
)

// FormatInfo describes a pixel format: bit depth, per-channel bit
// layout, alpha semantics, and (for indexed formats) the palette.
//
// Channel layout is expressed against the packed pixel value read from
// memory in little-endian order: a channel occupies Sizes[c] bits
// starting at bit Shifts[c] of that value. FormatInfo is treated as
// immutable once sanitized; all converter components trust a sanitized
// FormatInfo without re-validation.
type FormatInfo struct {
	// Depth is the number of bits per pixel: 8, 16, 24 or 32.
	Depth int

	// Flags describe alpha, premultiplication, indexing and luminance.
	Flags FormatFlags

	// Sizes holds the bit width of each channel (R, G, B, A order).
	// A zero width means the channel is absent.
	Sizes [4]uint8

	// Shifts holds the bit offset of each channel within the packed
	// pixel value.
	Shifts [4]uint8

	// Palette holds the palette of an indexed format as straight
	// (non-premultiplied) ARGB32 values, at most 256 entries. The
	// slice is read during converter construction only; see
	// CreateFlagDontCopyPalette and CreateFlagAlterablePalette.
	Palette []uint32
}

// Predefined pixel formats. The 32-bit native formats pack pixels as
// 0xAARRGGBB values, which is B,G,R,A byte order in little-endian
// memory.
var (
	// FormatPRGB32 is the native premultiplied 32-bit format.
	FormatPRGB32 = FormatInfo{
		Depth:  32,
		Flags:  FormatFlagAlpha | FormatFlagPremultiplied,
		Sizes:  [4]uint8{8, 8, 8, 8},
		Shifts: [4]uint8{16, 8, 0, 24},
	}

	// FormatXRGB32 is the native opaque 32-bit format; the top byte is
	// undefined on input and forced to 0xFF on output.
	FormatXRGB32 = FormatInfo{
		Depth:  32,
		Sizes:  [4]uint8{8, 8, 8, 0},
		Shifts: [4]uint8{16, 8, 0, 0},
	}

	// FormatARGB32 is the native straight-alpha 32-bit format.
	FormatARGB32 = FormatInfo{
		Depth:  32,
		Flags:  FormatFlagAlpha,
		Sizes:  [4]uint8{8, 8, 8, 8},
		Shifts: [4]uint8{16, 8, 0, 24},
	}

	// FormatA8 is 8-bit alpha only.
	FormatA8 = FormatInfo{
		Depth:  8,
		Flags:  FormatFlagAlpha,
		Sizes:  [4]uint8{0, 0, 0, 8},
		Shifts: [4]uint8{0, 0, 0, 0},
	}

	// FormatL8 is 8-bit greyscale; the R, G and B descriptors coincide.
	FormatL8 = FormatInfo{
		Depth:  8,
		Flags:  FormatFlagLum,
		Sizes:  [4]uint8{8, 8, 8, 0},
		Shifts: [4]uint8{0, 0, 0, 0},
	}

	// FormatRGBA32 is straight alpha in R,G,B,A byte order
	// (image.NRGBA layout).
	FormatRGBA32 = FormatInfo{
		Depth:  32,
		Flags:  FormatFlagAlpha,
		Sizes:  [4]uint8{8, 8, 8, 8},
		Shifts: [4]uint8{0, 8, 16, 24},
	}

	// FormatRGBA32Premul is premultiplied alpha in R,G,B,A byte order
	// (image.RGBA layout).
	FormatRGBA32Premul = FormatInfo{
		Depth:  32,
		Flags:  FormatFlagAlpha | FormatFlagPremultiplied,
		Sizes:  [4]uint8{8, 8, 8, 8},
		Shifts: [4]uint8{0, 8, 16, 24},
	}

	// FormatRGB24 is 24-bit R,G,B byte order.
	FormatRGB24 = FormatInfo{
		Depth:  24,
		Sizes:  [4]uint8{8, 8, 8, 0},
		Shifts: [4]uint8{0, 8, 16, 0},
	}

	// FormatBGR24 is 24-bit B,G,R byte order.
	FormatBGR24 = FormatInfo{
		Depth:  24,
		Sizes:  [4]uint8{8, 8, 8, 0},
		Shifts: [4]uint8{16, 8, 0, 0},
	}

	// FormatRGB565 is 16-bit 5-6-5.
	FormatRGB565 = FormatInfo{
		Depth:  16,
		Sizes:  [4]uint8{5, 6, 5, 0},
		Shifts: [4]uint8{11, 5, 0, 0},
	}

	// FormatRGB555 is 16-bit 5-5-5 with one undefined bit.
	FormatRGB555 = FormatInfo{
		Depth:  16,
		Sizes:  [4]uint8{5, 5, 5, 0},
		Shifts: [4]uint8{10, 5, 0, 0},
	}

	// FormatARGB4444 is 16-bit 4-4-4-4 with straight alpha.
	FormatARGB4444 = FormatInfo{
		Depth:  16,
		Flags:  FormatFlagAlpha,
		Sizes:  [4]uint8{4, 4, 4, 4},
		Shifts: [4]uint8{8, 4, 0, 12},
	}
)

// MakeFormatInfo builds a packed format from per-channel widths and
// shifts given in R, G, B, A order. Alpha and premultiplication flags
// are derived from aSize and premultiplied. The result still has to
// pass Sanitized before use.
func MakeFormatInfo(depth int, premultiplied bool, sizes, shifts [4]uint8) FormatInfo {
	fi := FormatInfo{Depth: depth, Sizes: sizes, Shifts: shifts}
	if sizes[ChannelA] != 0 {
		fi.Flags |= FormatFlagAlpha
		if premultiplied {
			fi.Flags |= FormatFlagPremultiplied
		}
	}
	return fi
}

// MakeIndexedFormatInfo builds an 8-bit indexed format over the given
// palette of straight ARGB32 entries. The palette slice is retained,
// not copied; it is read once, during converter construction (see
// CreateFlagAlterablePalette).
func MakeIndexedFormatInfo(palette []uint32) FormatInfo {
	return FormatInfo{
		Depth:   8,
		Flags:   FormatFlagIndexed,
		Palette: palette,
	}
}

// HasAlpha reports whether the format carries an alpha channel.
func (fi FormatInfo) HasAlpha() bool { return fi.Flags&FormatFlagAlpha != 0 }

// IsPremultiplied reports whether color channels are pre-scaled by alpha.
func (fi FormatInfo) IsPremultiplied() bool { return fi.Flags&FormatFlagPremultiplied != 0 }

// IsIndexed reports whether the format is a palette format.
func (fi FormatInfo) IsIndexed() bool { return fi.Flags&FormatFlagIndexed != 0 }

// IsLum reports whether the format is single-channel greyscale.
func (fi FormatInfo) IsLum() bool { return fi.Flags&FormatFlagLum != 0 }

// BytesPerPixel returns the storage size of one pixel.
func (fi FormatInfo) BytesPerPixel() int { return fi.Depth / 8 }

// Mask returns the bit mask of the given channel within the packed
// pixel value, or 0 if the channel is absent.
func (fi FormatInfo) Mask(channel int) uint32 {
	if fi.Sizes[channel] == 0 {
		return 0
	}
	return ((uint32(1) << fi.Sizes[channel]) - 1) << fi.Shifts[channel]
}

// channelMask returns the union of all channel masks. For luminance
// formats the coinciding R/G/B masks contribute once.
func (fi FormatInfo) channelMask() uint32 {
	if fi.IsLum() {
		return fi.Mask(ChannelR) | fi.Mask(ChannelA)
	}
	return fi.Mask(ChannelR) | fi.Mask(ChannelG) | fi.Mask(ChannelB) | fi.Mask(ChannelA)
}

// depthMask returns the mask covering all Depth bits of the packed value.
func (fi FormatInfo) depthMask() uint32 {
	if fi.Depth >= 32 {
		return 0xFFFFFFFF
	}
	return (uint32(1) << fi.Depth) - 1
}

// sameChannelLayout reports whether both formats place identical
// channel widths at identical offsets.
func (fi FormatInfo) sameChannelLayout(other FormatInfo) bool {
	return fi.Sizes == other.Sizes && fi.Shifts == other.Shifts
}

// sameRGBLayout reports whether the color channels (R, G, B) of both
// formats coincide.
func (fi FormatInfo) sameRGBLayout(other FormatInfo) bool {
	for c := ChannelR; c <= ChannelB; c++ {
		if fi.Sizes[c] != other.Sizes[c] || fi.Shifts[c] != other.Shifts[c] {
			return false
		}
	}
	return true
}

// isByteAligned8888 reports whether the format is 32-bit with every
// present channel exactly 8 bits wide on a byte boundary.
func (fi FormatInfo) isByteAligned8888() bool {
	if fi.Depth != 32 || fi.IsIndexed() || fi.IsLum() {
		return false
	}
	for c := 0; c < 4; c++ {
		if fi.Sizes[c] == 0 {
			continue
		}
		if fi.Sizes[c] != 8 || fi.Shifts[c]%8 != 0 {
			return false
		}
	}
	return fi.Sizes[ChannelR] == 8 && fi.Sizes[ChannelG] == 8 && fi.Sizes[ChannelB] == 8
}

// isNative32 reports whether the format has the native 0xAARRGGBB
// channel placement (alpha optional).
func (fi FormatInfo) isNative32() bool {
	if !fi.isByteAligned8888() {
		return false
	}
	if fi.Shifts[ChannelR] != 16 || fi.Shifts[ChannelG] != 8 || fi.Shifts[ChannelB] != 0 {
		return false
	}
	return fi.Sizes[ChannelA] == 0 || fi.Shifts[ChannelA] == 24
}

// equalLayout reports whether two formats are bit-identical: same
// depth, channels and alpha semantics.
func (fi FormatInfo) equalLayout(other FormatInfo) bool {
	return fi.Depth == other.Depth &&
		fi.Flags == other.Flags &&
		fi.sameChannelLayout(other)
}

// String describes the format for diagnostics.
func (fi FormatInfo) String() string {
	switch {
	case fi.IsIndexed():
		return fmt.Sprintf("indexed%d[%d]", fi.Depth, len(fi.Palette))
	case fi.IsLum():
		return fmt.Sprintf("lum%d", fi.Depth)
	default:
		pre := ""
		if fi.IsPremultiplied() {
			pre = " premul"
		}
		return fmt.Sprintf("packed%d r%d@%d g%d@%d b%d@%d a%d@%d%s",
			fi.Depth,
			fi.Sizes[ChannelR], fi.Shifts[ChannelR],
			fi.Sizes[ChannelG], fi.Shifts[ChannelG],
			fi.Sizes[ChannelB], fi.Shifts[ChannelB],
			fi.Sizes[ChannelA], fi.Shifts[ChannelA],
			pre)
	}
}

// Sanitized validates the format and returns a normalized copy. It is
// the single validation point of the converter pipeline: every
// FormatInfo it returns is trusted downstream without re-checking.
//
// Normalizations applied:
//   - the alpha flag is derived from the alpha channel width, and
//     premultiplication is cleared for formats without alpha;
//   - a format whose R, G and B descriptors coincide is flagged as
//     luminance.
//
// Sanitized fails with ErrInvalidFormat when the depth is unsupported,
// a channel reaches past the depth, distinct channel masks overlap, or
// an indexed format has no palette or more than 256 entries.
func (fi FormatInfo) Sanitized() (FormatInfo, error) {
	if fi.IsIndexed() {
		if fi.Depth != 8 {
			return FormatInfo{}, fmt.Errorf("%w: indexed depth %d", ErrInvalidFormat, fi.Depth)
		}
		if len(fi.Palette) == 0 || len(fi.Palette) > 256 {
			return FormatInfo{}, fmt.Errorf("%w: palette size %d", ErrInvalidFormat, len(fi.Palette))
		}
		out := FormatInfo{
			Depth:   fi.Depth,
			Flags:   FormatFlagIndexed,
			Palette: fi.Palette,
		}
		return out, nil
	}

	switch fi.Depth {
	case 8, 16, 24, 32:
	default:
		return FormatInfo{}, fmt.Errorf("%w: depth %d", ErrInvalidFormat, fi.Depth)
	}

	// Ranges first, then overlap. Luminance formats repeat the same
	// R/G/B descriptor, which must not count as an overlap.
	lum := fi.Sizes[ChannelR] != 0 &&
		fi.Sizes[ChannelR] == fi.Sizes[ChannelG] && fi.Sizes[ChannelG] == fi.Sizes[ChannelB] &&
		fi.Shifts[ChannelR] == fi.Shifts[ChannelG] && fi.Shifts[ChannelG] == fi.Shifts[ChannelB]

	var combined uint32
	for c := 0; c < 4; c++ {
		size, shift := fi.Sizes[c], fi.Shifts[c]
		if size == 0 {
			continue
		}
		if size > 16 || int(shift)+int(size) > fi.Depth {
			return FormatInfo{}, fmt.Errorf("%w: channel %d outside depth %d", ErrInvalidFormat, c, fi.Depth)
		}
		if lum && (c == ChannelG || c == ChannelB) {
			continue
		}
		mask := ((uint32(1) << size) - 1) << shift
		if combined&mask != 0 {
			return FormatInfo{}, fmt.Errorf("%w: overlapping channel masks", ErrInvalidFormat)
		}
		combined |= mask
	}

	hasRGB := fi.Sizes[ChannelR] != 0 && fi.Sizes[ChannelG] != 0 && fi.Sizes[ChannelB] != 0
	hasAlpha := fi.Sizes[ChannelA] != 0
	if !hasRGB && !hasAlpha {
		return FormatInfo{}, fmt.Errorf("%w: no channels", ErrInvalidFormat)
	}
	if !hasRGB && (fi.Sizes[ChannelR] != 0 || fi.Sizes[ChannelG] != 0 || fi.Sizes[ChannelB] != 0) {
		return FormatInfo{}, fmt.Errorf("%w: incomplete color channels", ErrInvalidFormat)
	}

	out := fi
	out.Palette = nil
	out.Flags &^= FormatFlagAlpha | FormatFlagPremultiplied | FormatFlagLum
	if hasAlpha {
		out.Flags |= FormatFlagAlpha
		if fi.IsPremultiplied() {
			out.Flags |= FormatFlagPremultiplied
		}
	}
	if lum {
		out.Flags |= FormatFlagLum
	}
	return out, nil
}
