package blend2d

import "encoding/binary"

// scaleUp expands channel ch of the packed value v to 8 bits using the
// precomputed scale factor: (v*scale + 0x8000) >> 16 rounds v*255/max.
func (d *converterData) scaleUp(v uint32, ch int) uint32 {
	return (((v>>d.shifts[ch])&d.masks[ch])*d.scale[ch] + 0x8000) >> 16
}

// convertNativeFromForeign requantizes arbitrary packed pixels into
// the native 0xAARRGGBB layout, adjusting premultiplication when the
// source and destination alpha semantics differ.
func convertNativeFromForeign(c *PixelConverter, dst []byte, dstStride int, src []byte, srcStride int, w, h int, opt *Options) error {
	d := &c.d
	srcBpp := int(d.srcBpp)
	rowBytes := w * 4

	dstPos := originOffset(dstStride, h)
	srcPos := originOffset(srcStride, h)
	for y := 0; y < h; y++ {
		dr := dst[dstPos : dstPos+rowBytes]
		sr := src[srcPos : srcPos+w*srcBpp]
		for x := 0; x < w; x++ {
			v := readPacked(sr[x*srcBpp:], srcBpp)
			r := d.scaleUp(v, ChannelR)
			g := d.scaleUp(v, ChannelG)
			b := d.scaleUp(v, ChannelB)
			a := uint32(0xFF)
			if d.sizes[ChannelA] != 0 {
				a = d.scaleUp(v, ChannelA)
			}
			switch d.adjust {
			case adjustPremultiply:
				r = udiv255(r * a)
				g = udiv255(g * a)
				b = udiv255(b * a)
			case adjustUnpremultiply:
				if a == 0 {
					r, g, b = 0, 0, 0
				} else {
					r = unpremulDiv(r, a)
					g = unpremulDiv(g, a)
					b = unpremulDiv(b, a)
				}
			}
			binary.LittleEndian.PutUint32(dr[x*4:], (a<<24|r<<16|g<<8|b)|d.fillMask)
		}
		fillGap(dst[dstPos+rowBytes:dstPos+rowBytes+opt.Gap], opt.FillByte)
		dstPos += dstStride
		srcPos += srcStride
	}
	return nil
}

// convertForeignFromNative requantizes native 0xAARRGGBB pixels into
// arbitrary packed destinations. Destination bits not covered by any
// channel are filled with ones.
func convertForeignFromNative(c *PixelConverter, dst []byte, dstStride int, src []byte, srcStride int, w, h int, opt *Options) error {
	d := &c.d
	dstBpp := int(d.dstBpp)
	rowBytes := w * dstBpp

	dstPos := originOffset(dstStride, h)
	srcPos := originOffset(srcStride, h)
	for y := 0; y < h; y++ {
		dr := dst[dstPos : dstPos+rowBytes]
		sr := src[srcPos : srcPos+w*4]
		for x := 0; x < w; x++ {
			v := binary.LittleEndian.Uint32(sr[x*4:])
			a := uint32(0xFF)
			if d.srcAlpha != 0 {
				a = v >> 24
			}
			r := (v >> 16) & 0xFF
			g := (v >> 8) & 0xFF
			b := v & 0xFF
			switch d.adjust {
			case adjustPremultiply:
				r = udiv255(r * a)
				g = udiv255(g * a)
				b = udiv255(b * a)
			case adjustUnpremultiply:
				if a == 0 {
					r, g, b = 0, 0, 0
				} else {
					r = unpremulDiv(r, a)
					g = unpremulDiv(g, a)
					b = unpremulDiv(b, a)
				}
			}
			cv := [4]uint32{r, g, b, a}
			out := d.fillMask
			for ch := 0; ch < 4; ch++ {
				if d.sizes[ch] == 0 {
					continue
				}
				out |= ((cv[ch]*d.masks[ch] + 127) / 255) << d.shifts[ch]
			}
			writePacked(dr[x*dstBpp:], dstBpp, out)
		}
		fillGap(dst[dstPos+rowBytes:dstPos+rowBytes+opt.Gap], opt.FillByte)
		dstPos += dstStride
		srcPos += srcStride
	}
	return nil
}
