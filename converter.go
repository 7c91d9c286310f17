package blend2d

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/vvhh2002/blend2d/internal/cpuinfo"
)

// Strategy identifies the conversion plan selected for a format pair.
// Exactly one strategy is active per converter.
type Strategy uint8

const (
	// StrategyNone is the uninitialized sentinel.
	StrategyNone Strategy = iota

	// StrategyRawCopy copies pixels of bit-identical formats.
	StrategyRawCopy

	// StrategyCopyOrFill copies pixels and ORs a constant fill mask
	// into bits the source does not define.
	StrategyCopyOrFill

	// StrategyByteShuffle permutes bytes within each pixel.
	StrategyByteShuffle

	// StrategyExtractChannel extracts one byte-aligned channel into a
	// single-channel destination.
	StrategyExtractChannel

	// StrategyExpandChannel replicates a single-channel source into a
	// packed 32-bit destination.
	StrategyExpandChannel

	// StrategyPremultiply scales color channels by alpha.
	StrategyPremultiply

	// StrategyUnpremultiply recovers straight color from premultiplied.
	StrategyUnpremultiply

	// StrategyNativeFromForeign requantizes arbitrary channel masks
	// into the native 32-bit layout.
	StrategyNativeFromForeign

	// StrategyForeignFromNative requantizes the native 32-bit layout
	// into arbitrary channel masks.
	StrategyForeignFromNative

	// StrategyIndexedLookup maps palette indices through a table
	// precomputed at construction time.
	StrategyIndexedLookup

	// StrategyMultiStep chains two converters through a bounded
	// intermediate buffer.
	StrategyMultiStep
)

// String returns the strategy name for diagnostics.
func (s Strategy) String() string {
	switch s {
	case StrategyNone:
		return "none"
	case StrategyRawCopy:
		return "raw-copy"
	case StrategyCopyOrFill:
		return "copy-or-fill"
	case StrategyByteShuffle:
		return "byte-shuffle"
	case StrategyExtractChannel:
		return "extract-channel"
	case StrategyExpandChannel:
		return "expand-channel"
	case StrategyPremultiply:
		return "premultiply"
	case StrategyUnpremultiply:
		return "unpremultiply"
	case StrategyNativeFromForeign:
		return "native-from-foreign"
	case StrategyForeignFromNative:
		return "foreign-from-native"
	case StrategyIndexedLookup:
		return "indexed-lookup"
	case StrategyMultiStep:
		return "multi-step"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// converterFlags is the internal state flag set of a converter.
type converterFlags uint8

const (
	flagInitialized converterFlags = 1 << iota
	flagOptimized
	flagRawCopy
	flagMultiStep
	flagDynamicData
)

func (f converterFlags) has(sub converterFlags) bool { return f&sub == sub }

// CreateFlags adjust converter construction.
type CreateFlags uint32

const (
	// CreateFlagDontCopyPalette skips the defensive palette snapshot
	// taken before the lookup table is built. The caller promises the
	// palette is not mutated concurrently with New.
	CreateFlagDontCopyPalette CreateFlags = 1 << iota

	// CreateFlagAlterablePalette declares that the palette may change
	// after New. The lookup table is always built eagerly from a
	// private snapshot, so this forces the snapshot even when
	// CreateFlagDontCopyPalette is also set.
	CreateFlagAlterablePalette

	// CreateFlagNoMultiStep makes New fail with
	// ErrConversionUnsupported instead of composing a two-step
	// converter when no single-step strategy exists.
	CreateFlagNoMultiStep
)

// adjust values for the generic strategies: how alpha scaling is
// applied after (native-from-foreign) or before (foreign-from-native)
// channel requantization.
const (
	adjustNone uint8 = iota
	adjustPremultiply
	adjustUnpremultiply
)

// converterData is the fixed-size inline parameter block of a
// converter. Which fields are meaningful is determined by the strategy
// discriminant; the block is a plain value so converter copies never
// alias mutable state. The embedded lookup table is immutable after
// construction.
type converterData struct {
	dstBpp uint8
	srcBpp uint8

	// srcAlpha is 1 when the source format carries an alpha channel.
	srcAlpha uint8

	// alphaShift is the destination alpha bit offset for the
	// premultiply strategies and extract-channel.
	alphaShift uint8

	// adjust selects post/pre alpha scaling in the generic strategies.
	adjust uint8

	fillMask uint32
	zeroMask uint32

	// perm maps destination byte index to source byte index for
	// byte-shuffle and the premultiply strategies. permFill marks a
	// destination byte with no source byte; such bytes come from
	// fillMask alone.
	perm [4]uint8

	// Per-channel requantization parameters (R, G, B, A order) for the
	// generic strategies.
	shifts [4]uint8
	sizes  [4]uint8
	masks  [4]uint32
	scale  [4]uint32

	// Lookup-table parameters for indexed conversion.
	tableEntrySize uint8
	tableIndexMask uint8 // embedded tables only; capacity-1
	embedded       [64]byte
}

// permFill marks a destination byte that has no source byte.
const permFill uint8 = 0xFF

// dynamicTable is a heap-allocated lookup table shared by converter
// clones. The table bytes are immutable; only refs is mutated, and
// only atomically.
type dynamicTable struct {
	data []byte
	refs atomic.Int64
}

// multiStepContext owns the two nested converters of a multi-step
// conversion, shared by converter clones.
type multiStepContext struct {
	first  PixelConverter
	second PixelConverter
	// intermediateBpp is the pixel size of the intermediate native
	// format; it bounds the per-chunk pixel count.
	intermediateBpp uint8
	refs            atomic.Int64
}

// convertFunc is the uniform kernel contract: process h rows of w
// pixels starting at the row-origin offsets implied by the stride
// signs, writing opt.Gap fill bytes after every destination row. The
// executor validates geometry before invoking it.
type convertFunc func(c *PixelConverter, dst []byte, dstStride int, src []byte, srcStride int, w, h int, opt *Options) error

// PixelConverter converts rectangular pixel buffers between two fixed
// formats decided at construction time.
//
// A converter is immutable after New except for the reference count
// shared with its clones, so one converter may be used from multiple
// goroutines concurrently over independent row ranges. Because clones
// share reference-counted state, duplicate converters with Clone, not
// with plain struct assignment, and release them with Reset.
//
// The zero value is an uninitialized converter: Convert fails with
// ErrNotInitialized and Reset is a no-op.
type PixelConverter struct {
	fn       convertFunc
	flags    converterFlags
	strategy Strategy
	d        converterData

	dyn   *dynamicTable
	multi *multiStepContext
}

// logFeaturesOnce logs the detected CPU feature set the first time a
// converter is constructed.
var logFeaturesOnce sync.Once

// New constructs a converter from srcFormat to dstFormat.
//
// Both formats are sanitized (see FormatInfo.Sanitized), a conversion
// strategy is selected, and the fastest kernel available for the
// running CPU is resolved once; Convert calls reuse the resolved
// kernel with no per-call dispatch. On any failure the returned
// converter is the zero value.
func New(dstFormat, srcFormat FormatInfo, createFlags CreateFlags) (PixelConverter, error) {
	di, err := dstFormat.Sanitized()
	if err != nil {
		return PixelConverter{}, err
	}
	si, err := srcFormat.Sanitized()
	if err != nil {
		return PixelConverter{}, err
	}

	caps := cpuinfo.Detect()
	logFeaturesOnce.Do(func() {
		Logger().Debug("cpu features detected", "features", caps.String())
	})

	var c PixelConverter
	if err := initInternal(&c, di, si, createFlags, caps); err != nil {
		return PixelConverter{}, err
	}
	Logger().Debug("pixel converter initialized",
		"dst", di.String(),
		"src", si.String(),
		"strategy", c.strategy.String(),
		"optimized", c.flags.has(flagOptimized))
	return c, nil
}

// Strategy returns the conversion strategy selected at construction,
// or StrategyNone for an uninitialized converter.
func (c *PixelConverter) Strategy() Strategy { return c.strategy }

// IsInitialized reports whether the converter was successfully
// constructed and not Reset since.
func (c *PixelConverter) IsInitialized() bool { return c.flags.has(flagInitialized) }

// IsOptimized reports whether a CPU-specific kernel was chosen over
// the generic fallback. Diagnostic only; it has no behavioral effect.
func (c *PixelConverter) IsOptimized() bool { return c.flags.has(flagOptimized) }

// Clone returns a converter sharing this converter's state. When the
// converter carries heap state (a large lookup table or a multi-step
// context) the shared reference count is incremented atomically, so
// Clone is safe to call concurrently with Clone or Reset of other
// copies.
func (c *PixelConverter) Clone() PixelConverter {
	out := *c
	if c.dyn != nil {
		c.dyn.refs.Add(1)
	}
	if c.multi != nil {
		c.multi.refs.Add(1)
	}
	return out
}

// Move transfers the converter's state to the returned value and
// leaves the receiver as the uninitialized sentinel. No reference
// count changes: exactly one live reference moves. Resetting the
// moved-from receiver afterwards is a safe no-op.
func (c *PixelConverter) Move() PixelConverter {
	out := *c
	*c = PixelConverter{}
	return out
}

// Reset releases the converter and clears it to the uninitialized
// sentinel. For converters sharing heap state the shared reference
// count is decremented atomically and the state is released exactly
// once, by whichever Reset brings the count to zero. Reset of an
// uninitialized converter is a no-op; Reset is idempotent.
func (c *PixelConverter) Reset() {
	if c.dyn != nil {
		if c.dyn.refs.Add(-1) == 0 {
			c.dyn.data = nil
		}
	}
	if c.multi != nil {
		if c.multi.refs.Add(-1) == 0 {
			c.multi.first.Reset()
			c.multi.second.Reset()
		}
	}
	*c = PixelConverter{}
}

// Convert converts h rows of w pixels from src to dst.
//
// Strides are byte distances between consecutive rows and may be
// negative to express bottom-up row order: for a negative stride the
// slice still covers the whole buffer and row 0 starts at offset
// (h-1)*|stride|. |dstStride| must be at least w*dstBytesPerPixel plus
// opt.Gap, |srcStride| at least w*srcBytesPerPixel.
//
// After each destination row, opt.Gap bytes of opt.FillByte are
// written; gap bytes are never left uninitialized. Rows are
// independent, so disjoint row ranges of one converter may be
// converted concurrently.
//
// w == 0 or h == 0 is a successful no-op regardless of buffer
// contents. Geometry violations return ErrInvalidArgument; once the
// geometry is valid, conversion cannot fail.
func (c *PixelConverter) Convert(dst []byte, dstStride int, src []byte, srcStride int, w, h int, opt *Options) error {
	if !c.flags.has(flagInitialized) || c.fn == nil {
		return ErrNotInitialized
	}
	if opt == nil {
		opt = &defaultOptions
	}
	if w < 0 || h < 0 || opt.Gap < 0 {
		return ErrInvalidArgument
	}
	if w == 0 || h == 0 {
		return nil
	}

	dstRow := w*int(c.d.dstBpp) + opt.Gap
	srcRow := w * int(c.d.srcBpp)
	if absInt(dstStride) < dstRow || absInt(srcStride) < srcRow {
		return ErrInvalidArgument
	}
	if (h-1)*absInt(dstStride)+dstRow > len(dst) {
		return ErrInvalidArgument
	}
	if (h-1)*absInt(srcStride)+srcRow > len(src) {
		return ErrInvalidArgument
	}
	return c.fn(c, dst, dstStride, src, srcStride, w, h, opt)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
