package blend2d

import "encoding/binary"

// convertCopy copies rows verbatim. Both formats have the same size,
// so one packed row is dstBpp*w bytes on both sides.
func convertCopy(c *PixelConverter, dst []byte, dstStride int, src []byte, srcStride int, w, h int, opt *Options) error {
	rowBytes := w * int(c.d.dstBpp)

	// Tightly packed buffers collapse into a single copy.
	if opt.Gap == 0 && dstStride == rowBytes && srcStride == rowBytes {
		copy(dst[:h*rowBytes], src[:h*rowBytes])
		return nil
	}

	dstPos := originOffset(dstStride, h)
	srcPos := originOffset(srcStride, h)
	for y := 0; y < h; y++ {
		copy(dst[dstPos:dstPos+rowBytes], src[srcPos:srcPos+rowBytes])
		fillGap(dst[dstPos+rowBytes:dstPos+rowBytes+opt.Gap], opt.FillByte)
		dstPos += dstStride
		srcPos += srcStride
	}
	return nil
}

// convertCopyOrFill copies packed pixels of any width and ORs the fill
// mask into every pixel.
func convertCopyOrFill(c *PixelConverter, dst []byte, dstStride int, src []byte, srcStride int, w, h int, opt *Options) error {
	bpp := int(c.d.dstBpp)
	fill := c.d.fillMask
	rowBytes := w * bpp

	dstPos := originOffset(dstStride, h)
	srcPos := originOffset(srcStride, h)
	for y := 0; y < h; y++ {
		d := dst[dstPos : dstPos+rowBytes]
		s := src[srcPos : srcPos+rowBytes]
		for x := 0; x < w; x++ {
			writePacked(d[x*bpp:], bpp, readPacked(s[x*bpp:], bpp)|fill)
		}
		fillGap(dst[dstPos+rowBytes:dstPos+rowBytes+opt.Gap], opt.FillByte)
		dstPos += dstStride
		srcPos += srcStride
	}
	return nil
}

// convertCopyOrFill32 is the 32-bit generic fallback.
func convertCopyOrFill32(c *PixelConverter, dst []byte, dstStride int, src []byte, srcStride int, w, h int, opt *Options) error {
	fill := c.d.fillMask
	rowBytes := w * 4

	dstPos := originOffset(dstStride, h)
	srcPos := originOffset(srcStride, h)
	for y := 0; y < h; y++ {
		d := dst[dstPos : dstPos+rowBytes]
		s := src[srcPos : srcPos+rowBytes]
		for x := 0; x < rowBytes; x += 4 {
			binary.LittleEndian.PutUint32(d[x:], binary.LittleEndian.Uint32(s[x:])|fill)
		}
		fillGap(dst[dstPos+rowBytes:dstPos+rowBytes+opt.Gap], opt.FillByte)
		dstPos += dstStride
		srcPos += srcStride
	}
	return nil
}

// convertCopyOrFill32Pair processes two 32-bit pixels per 64-bit OR.
// Registered behind 128-bit vector capability, where unaligned 64-bit
// loads are cheap.
func convertCopyOrFill32Pair(c *PixelConverter, dst []byte, dstStride int, src []byte, srcStride int, w, h int, opt *Options) error {
	fill64 := uint64(c.d.fillMask)<<32 | uint64(c.d.fillMask)
	rowBytes := w * 4

	dstPos := originOffset(dstStride, h)
	srcPos := originOffset(srcStride, h)
	for y := 0; y < h; y++ {
		d := dst[dstPos : dstPos+rowBytes]
		s := src[srcPos : srcPos+rowBytes]
		x := 0
		for ; x+8 <= rowBytes; x += 8 {
			binary.LittleEndian.PutUint64(d[x:], binary.LittleEndian.Uint64(s[x:])|fill64)
		}
		if x < rowBytes {
			binary.LittleEndian.PutUint32(d[x:], binary.LittleEndian.Uint32(s[x:])|uint32(fill64))
		}
		fillGap(dst[dstPos+rowBytes:dstPos+rowBytes+opt.Gap], opt.FillByte)
		dstPos += dstStride
		srcPos += srcStride
	}
	return nil
}
