package blend2d

import "encoding/binary"

// convertShuffle32 permutes the four bytes of each pixel and ORs the
// fill mask into destination bytes with no source channel.
func convertShuffle32(c *PixelConverter, dst []byte, dstStride int, src []byte, srcStride int, w, h int, opt *Options) error {
	perm := c.d.perm
	for i, p := range perm {
		if p == permFill {
			// Filled bytes read from byte 0 and are overwritten by the
			// fill mask; any valid index keeps applyPerm32 branch-free.
			perm[i] = 0
		}
	}
	fill := c.d.fillMask
	rowBytes := w * 4

	dstPos := originOffset(dstStride, h)
	srcPos := originOffset(srcStride, h)
	for y := 0; y < h; y++ {
		d := dst[dstPos : dstPos+rowBytes]
		s := src[srcPos : srcPos+rowBytes]
		for x := 0; x < rowBytes; x += 4 {
			v := binary.LittleEndian.Uint32(s[x:])
			binary.LittleEndian.PutUint32(d[x:], applyPerm32(v, &perm)|fill)
		}
		fillGap(dst[dstPos+rowBytes:dstPos+rowBytes+opt.Gap], opt.FillByte)
		dstPos += dstStride
		srcPos += srcStride
	}
	return nil
}

// convertShuffle24 permutes the three bytes of each 24-bit pixel.
func convertShuffle24(c *PixelConverter, dst []byte, dstStride int, src []byte, srcStride int, w, h int, opt *Options) error {
	perm := c.d.perm
	rowBytes := w * 3

	dstPos := originOffset(dstStride, h)
	srcPos := originOffset(srcStride, h)
	for y := 0; y < h; y++ {
		d := dst[dstPos : dstPos+rowBytes]
		s := src[srcPos : srcPos+rowBytes]
		for x := 0; x < rowBytes; x += 3 {
			b0, b1, b2 := s[x+int(perm[0])], s[x+int(perm[1])], s[x+int(perm[2])]
			d[x], d[x+1], d[x+2] = b0, b1, b2
		}
		fillGap(dst[dstPos+rowBytes:dstPos+rowBytes+opt.Gap], opt.FillByte)
		dstPos += dstStride
		srcPos += srcStride
	}
	return nil
}
