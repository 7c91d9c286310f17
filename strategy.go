package blend2d

import (
	"github.com/vvhh2002/blend2d/internal/cpuinfo"
)

// initInternal populates c for the sanitized format pair (di, si).
// It is the strategy selector: rules are tried cheapest-first and the
// first match wins. On failure c is left untouched (zero value).
func initInternal(c *PixelConverter, di, si FormatInfo, createFlags CreateFlags, caps cpuinfo.Features) error {
	if di.IsIndexed() {
		// Quantizing true color down to a palette is a different
		// problem (color search) and is not a pixel conversion.
		return ErrConversionUnsupported
	}
	if si.IsIndexed() {
		return initIndexed(c, di, si, createFlags, caps)
	}
	if initSingleStep(c, di, si, caps) {
		return nil
	}
	return initMultiStep(c, di, si, createFlags, caps)
}

// initSingleStep tries the single-step strategies in priority order
// and reports whether one matched. Both formats are sanitized and
// non-indexed.
func initSingleStep(c *PixelConverter, di, si FormatInfo, caps cpuinfo.Features) bool {
	d := converterData{
		dstBpp: uint8(di.BytesPerPixel()),
		srcBpp: uint8(si.BytesPerPixel()),
	}
	if si.HasAlpha() {
		d.srcAlpha = 1
	}

	// RawCopy: bit-identical formats.
	if di.equalLayout(si) {
		c.strategy = StrategyRawCopy
		c.d = d
		c.setKernel(copyTable, caps)
		c.flags |= flagInitialized | flagRawCopy
		return true
	}

	// CopyOrFill: same color layout, alpha dropped or invented; the
	// bits the source does not define are OR-ed with ones.
	if di.Depth == si.Depth && di.sameRGBLayout(si) && di.IsLum() == si.IsLum() &&
		!(di.HasAlpha() && si.HasAlpha()) {
		shared := di.Mask(ChannelR) | di.Mask(ChannelG) | di.Mask(ChannelB)
		fill := di.depthMask() &^ shared
		d.fillMask = fill
		c.d = d
		if fill == 0 {
			c.strategy = StrategyRawCopy
			c.setKernel(copyTable, caps)
			c.flags |= flagInitialized | flagRawCopy
			return true
		}
		c.strategy = StrategyCopyOrFill
		if di.Depth == 32 {
			c.setKernel(copyOrFill32Table, caps)
		} else {
			c.setKernel(copyOrFillTable, caps)
		}
		c.flags |= flagInitialized
		return true
	}

	// ByteShuffle: identical channel set, different byte order.
	if initShuffle(c, &d, di, si, caps) {
		return true
	}

	// ExtractChannel: byte-aligned alpha into an A8 destination.
	if di.Depth == 8 && di.HasAlpha() && !di.IsLum() && di.Sizes[ChannelR] == 0 &&
		si.Sizes[ChannelA] == 8 && si.Shifts[ChannelA]%8 == 0 {
		d.alphaShift = si.Shifts[ChannelA]
		c.strategy = StrategyExtractChannel
		c.d = d
		c.setKernel(extractTable, caps)
		c.flags |= flagInitialized
		return true
	}

	// ExpandChannel: A8 or L8 source replicated into a 32-bit packed
	// destination.
	if initExpand(c, &d, di, si, caps) {
		return true
	}

	// Premultiply / Unpremultiply: same channel set, leading or
	// trailing alpha, premultiplication flag differs. Byte order may
	// differ; the kernel reorders before scaling.
	if initPremultiply(c, &d, di, si, caps) {
		return true
	}

	// Generic requantization to or from the native 32-bit layout.
	if di.isNative32() && !si.IsIndexed() && si.Sizes[ChannelR] != 0 {
		initNativeFromForeign(c, &d, di, si, caps)
		return true
	}
	if si.isNative32() && !di.IsLum() && di.Sizes[ChannelR] != 0 {
		initForeignFromNative(c, &d, di, si, caps)
		return true
	}

	return false
}

// initShuffle matches pure byte permutations: same depth (24 or 32),
// every present channel 8 bits on a byte boundary, identical channel
// sets and alpha semantics, different order. Destination bytes with no
// source channel are filled with ones.
func initShuffle(c *PixelConverter, d *converterData, di, si FormatInfo, caps cpuinfo.Features) bool {
	if di.Depth != si.Depth || (di.Depth != 24 && di.Depth != 32) {
		return false
	}
	if !di.byteAlignedChannels() || !si.byteAlignedChannels() || di.IsLum() || si.IsLum() {
		return false
	}
	if di.HasAlpha() != si.HasAlpha() || di.IsPremultiplied() != si.IsPremultiplied() {
		return false
	}
	for ch := 0; ch < 4; ch++ {
		if (di.Sizes[ch] == 0) != (si.Sizes[ch] == 0) {
			return false
		}
	}

	perm := [4]uint8{permFill, permFill, permFill, permFill}
	var fill uint32
	for ch := 0; ch < 4; ch++ {
		if di.Sizes[ch] != 0 {
			perm[di.Shifts[ch]/8] = si.Shifts[ch] / 8
		}
	}
	for i := 0; i < di.Depth/8; i++ {
		if perm[i] == permFill {
			fill |= 0xFF << (8 * i)
		}
	}

	d.perm = perm
	d.fillMask = fill
	c.strategy = StrategyByteShuffle
	c.d = *d
	if di.Depth == 32 {
		c.setKernel(shuffle32Table, caps)
	} else {
		c.setKernel(shuffle24Table, caps)
	}
	c.flags |= flagInitialized
	return true
}

// initExpand matches single-channel 8-bit sources (A8 or L8) going to
// byte-aligned 32-bit packed destinations. The kernel replicates the
// source byte into all four lanes and then applies zero and fill
// masks, which is enough to express both the alpha and the greyscale
// expansions.
func initExpand(c *PixelConverter, d *converterData, di, si FormatInfo, caps cpuinfo.Features) bool {
	if si.Depth != 8 || !di.isByteAligned8888() {
		return false
	}
	switch {
	case si.IsLum():
		// Greyscale goes to the color channels; alpha and undefined
		// bits become ones.
		rgb := di.Mask(ChannelR) | di.Mask(ChannelG) | di.Mask(ChannelB)
		d.zeroMask = di.depthMask() &^ rgb
		d.fillMask = d.zeroMask
	case si.HasAlpha() && si.Sizes[ChannelR] == 0:
		if !di.HasAlpha() {
			return false
		}
		if di.IsPremultiplied() {
			// Premultiplied white: alpha in every lane.
			d.zeroMask = 0
			d.fillMask = 0
		} else {
			// Straight white with the source alpha.
			rgb := di.Mask(ChannelR) | di.Mask(ChannelG) | di.Mask(ChannelB)
			d.zeroMask = rgb
			d.fillMask = rgb
		}
	default:
		return false
	}

	c.strategy = StrategyExpandChannel
	c.d = *d
	c.setKernel(expandTable, caps)
	c.flags |= flagInitialized
	return true
}

// initPremultiply matches 32-bit byte-aligned pairs with identical
// channel sets whose premultiplication flags differ. The destination
// alpha byte must be leading or trailing; each position has its own
// kernel sub-variant. A byte permutation is applied before scaling
// when the byte orders differ.
func initPremultiply(c *PixelConverter, d *converterData, di, si FormatInfo, caps cpuinfo.Features) bool {
	if !di.isByteAligned8888() || !si.isByteAligned8888() {
		return false
	}
	if !di.HasAlpha() || !si.HasAlpha() || di.IsPremultiplied() == si.IsPremultiplied() {
		return false
	}
	aShift := di.Shifts[ChannelA]
	if aShift != 0 && aShift != 24 {
		return false
	}

	perm := [4]uint8{}
	for ch := 0; ch < 4; ch++ {
		perm[di.Shifts[ch]/8] = si.Shifts[ch] / 8
	}
	d.perm = perm
	d.alphaShift = aShift

	c.d = *d
	if di.IsPremultiplied() {
		c.strategy = StrategyPremultiply
		if aShift == 0 {
			c.setKernel(premultiplyLeadingTable, caps)
		} else {
			c.setKernel(premultiplyTrailingTable, caps)
		}
	} else {
		c.strategy = StrategyUnpremultiply
		if aShift == 0 {
			c.setKernel(unpremultiplyLeadingTable, caps)
		} else {
			c.setKernel(unpremultiplyTrailingTable, caps)
		}
	}
	c.flags |= flagInitialized
	return true
}

// initNativeFromForeign sets up per-channel requantization from an
// arbitrary packed source into the native 0xAARRGGBB layout.
func initNativeFromForeign(c *PixelConverter, d *converterData, di, si FormatInfo, caps cpuinfo.Features) {
	for ch := 0; ch < 4; ch++ {
		size := si.Sizes[ch]
		if size == 0 {
			continue
		}
		m := (uint32(1) << size) - 1
		d.shifts[ch] = si.Shifts[ch]
		d.sizes[ch] = size
		d.masks[ch] = m
		// Expansion to 8 bits: out = (v*scale + 0x8000) >> 16, which
		// rounds v*255/m.
		d.scale[ch] = (uint32(0xFF)<<16 + m/2) / m
	}
	if !di.HasAlpha() {
		d.fillMask = 0xFF000000
	}
	switch {
	case di.IsPremultiplied() && !si.IsPremultiplied() && si.HasAlpha():
		d.adjust = adjustPremultiply
	case !di.IsPremultiplied() && di.HasAlpha() && si.IsPremultiplied():
		d.adjust = adjustUnpremultiply
	}

	c.strategy = StrategyNativeFromForeign
	c.d = *d
	c.setKernel(nativeFromForeignTable, caps)
	c.flags |= flagInitialized
}

// initForeignFromNative sets up per-channel requantization from the
// native 0xAARRGGBB layout into an arbitrary packed destination.
func initForeignFromNative(c *PixelConverter, d *converterData, di, si FormatInfo, caps cpuinfo.Features) {
	var defined uint32
	for ch := 0; ch < 4; ch++ {
		size := di.Sizes[ch]
		if size == 0 {
			continue
		}
		d.shifts[ch] = di.Shifts[ch]
		d.sizes[ch] = size
		d.masks[ch] = (uint32(1) << size) - 1
		defined |= d.masks[ch] << di.Shifts[ch]
	}
	d.fillMask = di.depthMask() &^ defined
	switch {
	case di.IsPremultiplied() && !si.IsPremultiplied():
		d.adjust = adjustPremultiply
	case !di.IsPremultiplied() && di.HasAlpha() && si.IsPremultiplied():
		d.adjust = adjustUnpremultiply
	}

	c.strategy = StrategyForeignFromNative
	c.d = *d
	c.setKernel(foreignFromNativeTable, caps)
	c.flags |= flagInitialized
}

// byteAlignedChannels reports whether every present channel is exactly
// 8 bits wide on a byte boundary.
func (fi FormatInfo) byteAlignedChannels() bool {
	for ch := 0; ch < 4; ch++ {
		if fi.Sizes[ch] == 0 {
			continue
		}
		if fi.Sizes[ch] != 8 || fi.Shifts[ch]%8 != 0 {
			return false
		}
	}
	return true
}
