// Package blend2d converts pixel buffers between packed formats.
//
// # Overview
//
// blend2d is a Pure Go pixel format converter. A converter is built
// once for a destination/source format pair and then converts any
// number of row-strided buffers, choosing the cheapest strategy the
// pair allows and the fastest kernel the CPU supports.
//
// # Quick Start
//
//	import "github.com/vvhh2002/blend2d"
//
//	// Build a converter once per format pair.
//	conv, err := blend2d.New(blend2d.FormatPRGB32, blend2d.FormatRGB565, 0)
//	if err != nil {
//		return err
//	}
//	defer conv.Reset()
//
//	// Convert row-strided buffers.
//	err = conv.Convert(dst, dstStride, src, srcStride, width, height, nil)
//
// # Formats
//
// FormatInfo describes a packed format: depth in bits, per-channel
// widths and shifts, and flags for alpha, premultiplication, indexed
// palettes and greyscale. Presets cover the common layouts (PRGB32,
// XRGB32, ARGB32, RGBA32, RGB24, RGB565, A8, L8, ...); MakeFormatInfo
// and MakeIndexedFormatInfo build custom ones. Pixel values are packed
// little-endian, so the native 0xAARRGGBB layout is BGRA byte order in
// memory.
//
// # Strategies
//
// Construction picks one of: raw copy, copy-or-fill, byte shuffle,
// channel extract or expand, premultiply or unpremultiply, generic
// requantization through the native 32-bit layout, palette lookup, or
// a two-step composition through an intermediate format. Strategy
// selection is observable through Strategy and IsOptimized.
//
// # Architecture
//
//   - Public API: FormatInfo, PixelConverter, Pixmap, image and GPU
//     texture interop
//   - Kernels: per-strategy convert functions selected by CPU features
//   - Internal: cpuinfo (capability detection)
package blend2d

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
