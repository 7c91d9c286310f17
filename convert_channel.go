package blend2d

import "encoding/binary"

// convertExtractByte extracts one byte-aligned channel from packed
// source pixels into an 8-bit destination. The channel's byte offset
// is alphaShift/8.
func convertExtractByte(c *PixelConverter, dst []byte, dstStride int, src []byte, srcStride int, w, h int, opt *Options) error {
	srcBpp := int(c.d.srcBpp)
	off := int(c.d.alphaShift) / 8

	dstPos := originOffset(dstStride, h)
	srcPos := originOffset(srcStride, h)
	for y := 0; y < h; y++ {
		d := dst[dstPos : dstPos+w]
		s := src[srcPos : srcPos+w*srcBpp]
		for x := 0; x < w; x++ {
			d[x] = s[x*srcBpp+off]
		}
		fillGap(dst[dstPos+w:dstPos+w+opt.Gap], opt.FillByte)
		dstPos += dstStride
		srcPos += srcStride
	}
	return nil
}

// convertExpand8To32 replicates each source byte into all four lanes
// of a 32-bit pixel, then clears zeroMask bits and ORs fillMask bits.
// The mask pair expresses both expansions: alpha sources keep the
// replicated value in color lanes of premultiplied destinations or
// turn them white for straight ones; greyscale sources force alpha
// and undefined bits opaque.
func convertExpand8To32(c *PixelConverter, dst []byte, dstStride int, src []byte, srcStride int, w, h int, opt *Options) error {
	zero := c.d.zeroMask
	fill := c.d.fillMask
	rowBytes := w * 4

	dstPos := originOffset(dstStride, h)
	srcPos := originOffset(srcStride, h)
	for y := 0; y < h; y++ {
		d := dst[dstPos : dstPos+rowBytes]
		s := src[srcPos : srcPos+w]
		for x := 0; x < w; x++ {
			v := uint32(s[x]) * 0x01010101
			binary.LittleEndian.PutUint32(d[x*4:], (v&^zero)|fill)
		}
		fillGap(dst[dstPos+rowBytes:dstPos+rowBytes+opt.Gap], opt.FillByte)
		dstPos += dstStride
		srcPos += srcStride
	}
	return nil
}
