package blend2d

import (
	"errors"
	"testing"
)

func TestNewPixmap(t *testing.T) {
	p, err := NewPixmap(4, 3, FormatRGB565)
	if err != nil {
		t.Fatal(err)
	}
	if p.Width() != 4 || p.Height() != 3 {
		t.Errorf("size = %dx%d, want 4x3", p.Width(), p.Height())
	}
	if p.Stride() != 8 {
		t.Errorf("stride = %d, want 8", p.Stride())
	}
	if len(p.Data()) != 24 {
		t.Errorf("data length = %d, want 24", len(p.Data()))
	}

	if _, err := NewPixmap(0, 3, FormatRGB565); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewPixmap(0, 3) = %v, want ErrInvalidArgument", err)
	}
	if _, err := NewPixmap(4, 3, FormatInfo{}); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("NewPixmap with bad format = %v, want ErrInvalidFormat", err)
	}
}

func TestWrapPixmap(t *testing.T) {
	buf := make([]byte, 2*10)
	p, err := WrapPixmap(2, 2, 10, FormatRGB565, buf)
	if err != nil {
		t.Fatal(err)
	}
	if p.Stride() != 10 {
		t.Errorf("stride = %d, want 10", p.Stride())
	}

	if _, err := WrapPixmap(2, 2, 10, FormatRGB565, buf[:10]); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("short buffer = %v, want ErrInvalidArgument", err)
	}
	if _, err := WrapPixmap(2, 2, 2, FormatRGB565, buf); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("narrow stride = %v, want ErrInvalidArgument", err)
	}
}

func TestPixmapConvertTo(t *testing.T) {
	src, err := NewPixmap(2, 1, FormatPRGB32)
	if err != nil {
		t.Fatal(err)
	}
	copy(src.Data(), pack32(0xFFFF0000, 0xFF00FF00))

	out, err := src.ConvertTo(FormatRGB565)
	if err != nil {
		t.Fatal(err)
	}
	if out.Format().Depth != 16 {
		t.Errorf("converted depth = %d, want 16", out.Format().Depth)
	}
	want := []byte{0x00, 0xF8, 0xE0, 0x07}
	for i := range want {
		if out.Data()[i] != want[i] {
			t.Errorf("byte %d = %#x, want %#x", i, out.Data()[i], want[i])
		}
	}
}

func TestPixmapConvertFrom(t *testing.T) {
	src, err := NewPixmap(2, 2, FormatPRGB32)
	if err != nil {
		t.Fatal(err)
	}
	copy(src.Data(), pack32(0x80402010, 0, 0, 0xFF112233))

	dst, err := NewPixmap(2, 2, FormatXRGB32)
	if err != nil {
		t.Fatal(err)
	}
	if err := dst.ConvertFrom(src); err != nil {
		t.Fatal(err)
	}
	got := unpack32(dst.Data())
	want := []uint32{0xFF402010, 0xFF000000, 0xFF000000, 0xFF112233}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pixel %d = %#08x, want %#08x", i, got[i], want[i])
		}
	}

	small, _ := NewPixmap(1, 1, FormatPRGB32)
	if err := dst.ConvertFrom(small); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("size mismatch = %v, want ErrInvalidArgument", err)
	}
}

func TestPixmapImage(t *testing.T) {
	p, err := NewPixmap(1, 1, FormatPRGB32)
	if err != nil {
		t.Fatal(err)
	}
	// Premultiplied half-alpha red.
	copy(p.Data(), pack32(0x80800000))

	img, err := p.Image()
	if err != nil {
		t.Fatal(err)
	}
	// NRGBA is straight alpha: unpremultiplied back to full red.
	want := []byte{0xFF, 0x00, 0x00, 0x80}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Errorf("Pix[%d] = %#x, want %#x", i, img.Pix[i], want[i])
		}
	}
}
