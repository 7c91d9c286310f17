package blend2d

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// FormatForTexture maps an 8-bit GPU texture format to the packed
// pixel format describing its memory. Unorm color textures carry
// straight alpha.
func FormatForTexture(tf gputypes.TextureFormat) (FormatInfo, error) {
	switch tf {
	case gputypes.TextureFormatRGBA8Unorm:
		return FormatRGBA32, nil
	case gputypes.TextureFormatBGRA8Unorm:
		return FormatARGB32, nil
	case gputypes.TextureFormatR8Unorm:
		return FormatL8, nil
	default:
		return FormatInfo{}, fmt.Errorf("%w: texture format %v", ErrInvalidFormat, tf)
	}
}

// NewForTexture builds a converter producing the memory layout of the
// given texture format, for staging-buffer uploads.
func NewForTexture(tf gputypes.TextureFormat, src FormatInfo) (PixelConverter, error) {
	fi, err := FormatForTexture(tf)
	if err != nil {
		return PixelConverter{}, err
	}
	return New(fi, src, 0)
}

// TextureFormatFor maps a packed pixel format back to a GPU texture
// format, or TextureFormatUndefined when the layout has no 8-bit
// texture equivalent.
func TextureFormatFor(fi FormatInfo) (gputypes.TextureFormat, error) {
	s, err := fi.Sanitized()
	if err != nil {
		return gputypes.TextureFormatUndefined, err
	}
	switch {
	case s.equalLayout(FormatRGBA32):
		return gputypes.TextureFormatRGBA8Unorm, nil
	case s.equalLayout(FormatARGB32):
		return gputypes.TextureFormatBGRA8Unorm, nil
	case s.equalLayout(FormatL8):
		return gputypes.TextureFormatR8Unorm, nil
	}
	return gputypes.TextureFormatUndefined, fmt.Errorf("%w: no texture format for %v", ErrInvalidFormat, s)
}
