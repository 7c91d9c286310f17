package blend2d

import (
	"sync"

	"github.com/vvhh2002/blend2d/internal/cpuinfo"
)

// multiStepBufferSize bounds the intermediate row buffer. Rows wider
// than the buffer are converted in chunks of whole pixels.
const multiStepBufferSize = 3072

var multiStepBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, multiStepBufferSize)
		return &b
	},
}

// initMultiStep composes two single-step converters through a 32-bit
// intermediate format when no direct strategy connects the pair.
// Both legs are built with multi-step disabled so composition never
// recurses.
func initMultiStep(c *PixelConverter, di, si FormatInfo, createFlags CreateFlags, caps cpuinfo.Features) error {
	if createFlags&CreateFlagNoMultiStep != 0 {
		return ErrConversionUnsupported
	}

	inter := intermediateFormat(di, si)
	subFlags := createFlags | CreateFlagNoMultiStep

	var first, second PixelConverter
	if err := initInternal(&first, inter, si, subFlags, caps); err != nil {
		return ErrConversionUnsupported
	}
	if err := initInternal(&second, di, inter, subFlags, caps); err != nil {
		first.Reset()
		return ErrConversionUnsupported
	}

	ctx := &multiStepContext{first: first, second: second, intermediateBpp: 4}
	ctx.refs.Store(1)

	c.multi = ctx
	c.strategy = StrategyMultiStep
	c.d.dstBpp = uint8(di.BytesPerPixel())
	c.d.srcBpp = uint8(si.BytesPerPixel())
	c.setKernel(multiStepTable, caps)
	c.flags |= flagInitialized | flagMultiStep | flagDynamicData
	return nil
}

// intermediateFormat picks the native 32-bit format connecting the two
// legs. Alpha-less pairs stay alpha-less so the fill step happens only
// once, and pairs that agree on premultiplication keep it so neither
// leg multiplies.
func intermediateFormat(di, si FormatInfo) FormatInfo {
	switch {
	case si.IsIndexed():
		return FormatARGB32
	case !di.HasAlpha() && !si.HasAlpha():
		return FormatXRGB32
	case di.IsPremultiplied() && si.IsPremultiplied():
		return FormatPRGB32
	default:
		return FormatARGB32
	}
}

func convertMultiStep(c *PixelConverter, dst []byte, dstStride int, src []byte, srcStride int, w, h int, opt *Options) error {
	ms := c.multi
	interBpp := int(ms.intermediateBpp)
	chunk := multiStepBufferSize / interBpp
	dstBpp := int(c.d.dstBpp)
	srcBpp := int(c.d.srcBpp)
	rowBytes := w * dstBpp

	bufp := multiStepBufPool.Get().(*[]byte)
	defer multiStepBufPool.Put(bufp)
	buf := *bufp

	dstPos := originOffset(dstStride, h)
	srcPos := originOffset(srcStride, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x += chunk {
			cw := min(chunk, w-x)
			sOff := srcPos + x*srcBpp
			dOff := dstPos + x*dstBpp
			ib := buf[:cw*interBpp]
			if err := ms.first.Convert(ib, cw*interBpp, src[sOff:sOff+cw*srcBpp], cw*srcBpp, cw, 1, nil); err != nil {
				return err
			}
			if err := ms.second.Convert(dst[dOff:dOff+cw*dstBpp], cw*dstBpp, ib, cw*interBpp, cw, 1, nil); err != nil {
				return err
			}
		}
		fillGap(dst[dstPos+rowBytes:dstPos+rowBytes+opt.Gap], opt.FillByte)
		dstPos += dstStride
		srcPos += srcStride
	}
	return nil
}
