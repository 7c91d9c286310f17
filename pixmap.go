package blend2d

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// Pixmap is a rectangular pixel buffer in an explicit format. The
// buffer is row-major with a fixed stride; rows may carry trailing
// padding the format does not cover.
type Pixmap struct {
	width  int
	height int
	stride int
	format FormatInfo
	data   []byte
}

// NewPixmap allocates a pixmap with the given dimensions and format.
// The format is sanitized; rows are packed (stride = width * bytes per
// pixel).
func NewPixmap(width, height int, format FormatInfo) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: pixmap %dx%d", ErrInvalidArgument, width, height)
	}
	fi, err := format.Sanitized()
	if err != nil {
		return nil, err
	}
	stride := width * fi.BytesPerPixel()
	return &Pixmap{
		width:  width,
		height: height,
		stride: stride,
		format: fi,
		data:   make([]byte, height*stride),
	}, nil
}

// WrapPixmap builds a pixmap over caller-owned memory without copying.
// data must cover height*stride bytes.
func WrapPixmap(width, height, stride int, format FormatInfo, data []byte) (*Pixmap, error) {
	if width <= 0 || height <= 0 || stride < 0 {
		return nil, fmt.Errorf("%w: pixmap %dx%d stride %d", ErrInvalidArgument, width, height, stride)
	}
	fi, err := format.Sanitized()
	if err != nil {
		return nil, err
	}
	if stride < width*fi.BytesPerPixel() || len(data) < height*stride {
		return nil, fmt.Errorf("%w: pixmap buffer too small", ErrInvalidArgument)
	}
	return &Pixmap{width: width, height: height, stride: stride, format: fi, data: data}, nil
}

// Width returns the width in pixels.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height in pixels.
func (p *Pixmap) Height() int { return p.height }

// Stride returns the byte distance between rows.
func (p *Pixmap) Stride() int { return p.stride }

// Format returns the sanitized pixel format.
func (p *Pixmap) Format() FormatInfo { return p.format }

// Data returns the raw pixel data.
func (p *Pixmap) Data() []byte { return p.data }

// ConvertTo returns a new pixmap holding this pixmap's pixels in the
// given format.
func (p *Pixmap) ConvertTo(format FormatInfo) (*Pixmap, error) {
	conv, err := New(format, p.format, 0)
	if err != nil {
		return nil, err
	}
	defer conv.Reset()

	out, err := NewPixmap(p.width, p.height, format)
	if err != nil {
		return nil, err
	}
	if err := conv.Convert(out.data, out.stride, p.data, p.stride, p.width, p.height, nil); err != nil {
		return nil, err
	}
	return out, nil
}

// ConvertFrom converts src into this pixmap's buffer. Dimensions must
// match.
func (p *Pixmap) ConvertFrom(src *Pixmap) error {
	if src.width != p.width || src.height != p.height {
		return fmt.Errorf("%w: pixmap size mismatch %dx%d vs %dx%d",
			ErrInvalidArgument, src.width, src.height, p.width, p.height)
	}
	conv, err := New(p.format, src.format, 0)
	if err != nil {
		return err
	}
	defer conv.Reset()
	return conv.Convert(p.data, p.stride, src.data, src.stride, p.width, p.height, nil)
}

// SavePNG writes the pixmap to a PNG file, converting to straight
// RGBA first.
func (p *Pixmap) SavePNG(path string) error {
	img, err := p.Image()
	if err != nil {
		return err
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, img)
}

// Image returns the pixmap as a straight-alpha NRGBA image.
func (p *Pixmap) Image() (*image.NRGBA, error) {
	conv, err := New(FormatRGBA32, p.format, 0)
	if err != nil {
		return nil, err
	}
	defer conv.Reset()

	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	if err := conv.Convert(img.Pix, img.Stride, p.data, p.stride, p.width, p.height, nil); err != nil {
		return nil, err
	}
	return img, nil
}
