package blend2d

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// imageLayout recognizes standard image types whose pixel memory maps
// directly to a packed format, so conversion can run over their Pix
// slice without a per-pixel At loop.
func imageLayout(img image.Image) (FormatInfo, []byte, int, bool) {
	switch im := img.(type) {
	case *image.RGBA:
		// R,G,B,A bytes, alpha-premultiplied.
		return FormatRGBA32Premul, im.Pix, im.Stride, true
	case *image.NRGBA:
		return FormatRGBA32, im.Pix, im.Stride, true
	case *image.Gray:
		return FormatL8, im.Pix, im.Stride, true
	case *image.Alpha:
		return FormatA8, im.Pix, im.Stride, true
	case *image.Paletted:
		pal := make([]uint32, len(im.Palette))
		for i, c := range im.Palette {
			r, g, b, a := c.RGBA()
			// color.RGBA is 16-bit premultiplied; palette entries are
			// straight ARGB32.
			a8 := uint32(a >> 8)
			var r8, g8, b8 uint32
			if a8 != 0 {
				r8 = unpremulDiv(uint32(r>>8), a8)
				g8 = unpremulDiv(uint32(g>>8), a8)
				b8 = unpremulDiv(uint32(b>>8), a8)
			}
			pal[i] = a8<<24 | r8<<16 | g8<<8 | b8
		}
		return MakeIndexedFormatInfo(pal), im.Pix, im.Stride, true
	}
	return FormatInfo{}, nil, 0, false
}

// FromImage copies img into a new pixmap. Recognized image types keep
// their native format and go through a converter; anything else is
// drawn into straight RGBA first.
func FromImage(img image.Image) (*Pixmap, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidArgument)
	}

	if fi, pix, stride, ok := imageLayout(img); ok && b.Min == (image.Point{}) {
		p, err := NewPixmap(w, h, fi)
		if err != nil {
			return nil, err
		}
		rowBytes := w * p.format.BytesPerPixel()
		for y := 0; y < h; y++ {
			copy(p.data[y*p.stride:y*p.stride+rowBytes], pix[y*stride:])
		}
		return p, nil
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	p, err := NewPixmap(w, h, FormatRGBA32)
	if err != nil {
		return nil, err
	}
	copy(p.data, nrgba.Pix)
	return p, nil
}

// ConvertImage converts src into dst using a pixel converter when both
// images have a recognized packed layout, and x/image/draw otherwise.
// The images must have equal bounds sizes.
func ConvertImage(dst draw.Image, src image.Image) error {
	db, sb := dst.Bounds(), src.Bounds()
	if db.Dx() != sb.Dx() || db.Dy() != sb.Dy() {
		return fmt.Errorf("%w: image size mismatch %v vs %v", ErrInvalidArgument, db.Size(), sb.Size())
	}

	dfi, dpix, dstride, dok := imageLayout(dst)
	sfi, spix, sstride, sok := imageLayout(src)
	if dok && sok && db.Min == (image.Point{}) && sb.Min == (image.Point{}) {
		conv, err := New(dfi, sfi, 0)
		if err == nil {
			defer conv.Reset()
			return conv.Convert(dpix, dstride, spix, sstride, db.Dx(), db.Dy(), nil)
		}
	}

	draw.Draw(dst, db, src, sb.Min, draw.Src)
	return nil
}
