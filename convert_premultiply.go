package blend2d

import "encoding/binary"

// The premultiply kernels come in leading-alpha (byte 0) and
// trailing-alpha (byte 3) sub-variants, selected at construction from
// the destination alpha position. Each applies the stored byte
// permutation first, so sources in a different byte order are
// reordered before scaling.

func convertPremultiplyTrailing(c *PixelConverter, dst []byte, dstStride int, src []byte, srcStride int, w, h int, opt *Options) error {
	perm := c.d.perm
	id := perm == identityPerm
	rowBytes := w * 4

	dstPos := originOffset(dstStride, h)
	srcPos := originOffset(srcStride, h)
	for y := 0; y < h; y++ {
		d := dst[dstPos : dstPos+rowBytes]
		s := src[srcPos : srcPos+rowBytes]
		for x := 0; x < rowBytes; x += 4 {
			v := binary.LittleEndian.Uint32(s[x:])
			if !id {
				v = applyPerm32(v, &perm)
			}
			a := v >> 24
			rb := udiv255Pair((v & 0x00FF00FF) * a)
			g := udiv255(((v >> 8) & 0xFF) * a)
			binary.LittleEndian.PutUint32(d[x:], a<<24|g<<8|rb)
		}
		fillGap(dst[dstPos+rowBytes:dstPos+rowBytes+opt.Gap], opt.FillByte)
		dstPos += dstStride
		srcPos += srcStride
	}
	return nil
}

func convertPremultiplyLeading(c *PixelConverter, dst []byte, dstStride int, src []byte, srcStride int, w, h int, opt *Options) error {
	perm := c.d.perm
	id := perm == identityPerm
	rowBytes := w * 4

	dstPos := originOffset(dstStride, h)
	srcPos := originOffset(srcStride, h)
	for y := 0; y < h; y++ {
		d := dst[dstPos : dstPos+rowBytes]
		s := src[srcPos : srcPos+rowBytes]
		for x := 0; x < rowBytes; x += 4 {
			v := binary.LittleEndian.Uint32(s[x:])
			if !id {
				v = applyPerm32(v, &perm)
			}
			a := v & 0xFF
			pair := udiv255Pair(((v >> 8) & 0x00FF00FF) * a)
			mid := udiv255(((v >> 16) & 0xFF) * a)
			binary.LittleEndian.PutUint32(d[x:], pair<<8|mid<<16|a)
		}
		fillGap(dst[dstPos+rowBytes:dstPos+rowBytes+opt.Gap], opt.FillByte)
		dstPos += dstStride
		srcPos += srcStride
	}
	return nil
}

func convertUnpremultiplyTrailing(c *PixelConverter, dst []byte, dstStride int, src []byte, srcStride int, w, h int, opt *Options) error {
	perm := c.d.perm
	id := perm == identityPerm
	rowBytes := w * 4

	dstPos := originOffset(dstStride, h)
	srcPos := originOffset(srcStride, h)
	for y := 0; y < h; y++ {
		d := dst[dstPos : dstPos+rowBytes]
		s := src[srcPos : srcPos+rowBytes]
		for x := 0; x < rowBytes; x += 4 {
			v := binary.LittleEndian.Uint32(s[x:])
			if !id {
				v = applyPerm32(v, &perm)
			}
			a := v >> 24
			var out uint32
			if a != 0 {
				out = a<<24 |
					unpremulDiv((v>>16)&0xFF, a)<<16 |
					unpremulDiv((v>>8)&0xFF, a)<<8 |
					unpremulDiv(v&0xFF, a)
			}
			binary.LittleEndian.PutUint32(d[x:], out)
		}
		fillGap(dst[dstPos+rowBytes:dstPos+rowBytes+opt.Gap], opt.FillByte)
		dstPos += dstStride
		srcPos += srcStride
	}
	return nil
}

func convertUnpremultiplyLeading(c *PixelConverter, dst []byte, dstStride int, src []byte, srcStride int, w, h int, opt *Options) error {
	perm := c.d.perm
	id := perm == identityPerm
	rowBytes := w * 4

	dstPos := originOffset(dstStride, h)
	srcPos := originOffset(srcStride, h)
	for y := 0; y < h; y++ {
		d := dst[dstPos : dstPos+rowBytes]
		s := src[srcPos : srcPos+rowBytes]
		for x := 0; x < rowBytes; x += 4 {
			v := binary.LittleEndian.Uint32(s[x:])
			if !id {
				v = applyPerm32(v, &perm)
			}
			a := v & 0xFF
			var out uint32
			if a != 0 {
				out = a |
					unpremulDiv((v>>8)&0xFF, a)<<8 |
					unpremulDiv((v>>16)&0xFF, a)<<16 |
					unpremulDiv(v>>24, a)<<24
			}
			binary.LittleEndian.PutUint32(d[x:], out)
		}
		fillGap(dst[dstPos+rowBytes:dstPos+rowBytes+opt.Gap], opt.FillByte)
		dstPos += dstStride
		srcPos += srcStride
	}
	return nil
}
