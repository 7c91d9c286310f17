package blend2d

import "testing"

func benchConvert(b *testing.B, dst, src FormatInfo) {
	b.Helper()
	const w, h = 1920, 8
	c, err := New(dst, src, 0)
	if err != nil {
		b.Fatal(err)
	}
	defer c.Reset()

	di, _ := dst.Sanitized()
	si, _ := src.Sanitized()
	dbuf := make([]byte, w*h*di.BytesPerPixel())
	sbuf := make([]byte, w*h*si.BytesPerPixel())

	b.SetBytes(int64(len(sbuf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := c.Convert(dbuf, w*di.BytesPerPixel(), sbuf, w*si.BytesPerPixel(), w, h, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRawCopy(b *testing.B) {
	benchConvert(b, FormatPRGB32, FormatPRGB32)
}

func BenchmarkCopyOrFill32(b *testing.B) {
	benchConvert(b, FormatXRGB32, FormatPRGB32)
}

func BenchmarkByteShuffle(b *testing.B) {
	benchConvert(b, FormatRGBA32, FormatARGB32)
}

func BenchmarkPremultiply(b *testing.B) {
	benchConvert(b, FormatPRGB32, FormatARGB32)
}

func BenchmarkUnpremultiply(b *testing.B) {
	benchConvert(b, FormatARGB32, FormatPRGB32)
}

func BenchmarkNativeFromRGB565(b *testing.B) {
	benchConvert(b, FormatPRGB32, FormatRGB565)
}

func BenchmarkRGB565FromNative(b *testing.B) {
	benchConvert(b, FormatRGB565, FormatPRGB32)
}

func BenchmarkIndexedLookup(b *testing.B) {
	pal := make([]uint32, 256)
	for i := range pal {
		pal[i] = 0xFF000000 | uint32(i)*0x010101
	}
	benchConvert(b, FormatPRGB32, MakeIndexedFormatInfo(pal))
}

func BenchmarkMultiStep(b *testing.B) {
	benchConvert(b, FormatRGB565, FormatRGB24)
}
