package blend2d

import (
	"errors"
	"testing"
)

func TestSanitizedValid(t *testing.T) {
	tests := []struct {
		name   string
		format FormatInfo
	}{
		{"prgb32", FormatPRGB32},
		{"xrgb32", FormatXRGB32},
		{"argb32", FormatARGB32},
		{"rgba32", FormatRGBA32},
		{"a8", FormatA8},
		{"l8", FormatL8},
		{"rgb24", FormatRGB24},
		{"bgr24", FormatBGR24},
		{"rgb565", FormatRGB565},
		{"rgb555", FormatRGB555},
		{"argb4444", FormatARGB4444},
		{"indexed", MakeIndexedFormatInfo(make([]uint32, 16))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.format.Sanitized(); err != nil {
				t.Fatalf("Sanitized(%v) = %v, want nil", tt.format, err)
			}
		})
	}
}

func TestSanitizedInvalid(t *testing.T) {
	tests := []struct {
		name   string
		format FormatInfo
	}{
		{"zero depth", FormatInfo{}},
		{"odd depth", MakeFormatInfo(12, false, [4]uint8{4, 4, 4, 0}, [4]uint8{8, 4, 0, 0})},
		{"channel past depth", MakeFormatInfo(16, false, [4]uint8{8, 8, 8, 0}, [4]uint8{16, 8, 0, 0})},
		{"channel too wide", MakeFormatInfo(32, false, [4]uint8{17, 8, 7, 0}, [4]uint8{15, 7, 0, 0})},
		{"no channels", FormatInfo{Depth: 32}},
		{"incomplete color", MakeFormatInfo(16, false, [4]uint8{8, 8, 0, 0}, [4]uint8{8, 0, 0, 0})},
		{"overlapping channels", MakeFormatInfo(16, false, [4]uint8{8, 8, 4, 0}, [4]uint8{8, 4, 0, 0})},
		{"indexed empty palette", MakeIndexedFormatInfo(nil)},
		{"indexed oversized palette", MakeIndexedFormatInfo(make([]uint32, 257))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.format.Sanitized()
			if !errors.Is(err, ErrInvalidFormat) {
				t.Fatalf("Sanitized(%v) = %v, want ErrInvalidFormat", tt.format, err)
			}
		})
	}
}

func TestSanitizedNormalizesFlags(t *testing.T) {
	// Premultiplied without alpha is meaningless; both flags clear.
	fi := FormatInfo{
		Depth:  32,
		Flags:  FormatFlagAlpha | FormatFlagPremultiplied,
		Sizes:  [4]uint8{8, 8, 8, 0},
		Shifts: [4]uint8{16, 8, 0, 0},
	}
	s, err := fi.Sanitized()
	if err != nil {
		t.Fatal(err)
	}
	if s.HasAlpha() || s.IsPremultiplied() {
		t.Errorf("flags not cleared for alpha-less format: %v", s.Flags)
	}

	// Coinciding R, G and B descriptors mean greyscale.
	fi = MakeFormatInfo(8, false, [4]uint8{8, 8, 8, 0}, [4]uint8{0, 0, 0, 0})
	s, err = fi.Sanitized()
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsLum() {
		t.Error("coinciding channels not flagged as luminance")
	}
}

func TestFormatMask(t *testing.T) {
	tests := []struct {
		name    string
		format  FormatInfo
		channel int
		want    uint32
	}{
		{"prgb32 red", FormatPRGB32, ChannelR, 0x00FF0000},
		{"prgb32 alpha", FormatPRGB32, ChannelA, 0xFF000000},
		{"rgb565 green", FormatRGB565, ChannelG, 0x07E0},
		{"rgb565 no alpha", FormatRGB565, ChannelA, 0},
		{"a8 alpha", FormatA8, ChannelA, 0xFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.Mask(tt.channel); got != tt.want {
				t.Errorf("Mask(%d) = %#x, want %#x", tt.channel, got, tt.want)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	if s := FormatRGB565.String(); s == "" {
		t.Error("String() returned empty")
	}
	indexed := MakeIndexedFormatInfo(make([]uint32, 4))
	if s := indexed.String(); s != "indexed8[4]" {
		t.Errorf("String() = %q", s)
	}
}
