package blend2d

import (
	"errors"
	"testing"

	"github.com/vvhh2002/blend2d/internal/cpuinfo"
)

func TestStrategySelection(t *testing.T) {
	smallPal := MakeIndexedFormatInfo(make([]uint32, 4))
	tests := []struct {
		name string
		dst  FormatInfo
		src  FormatInfo
		want Strategy
	}{
		{"identical formats", FormatPRGB32, FormatPRGB32, StrategyRawCopy},
		{"alpha invented", FormatXRGB32, FormatPRGB32, StrategyCopyOrFill},
		{"identical 16-bit", FormatRGB555, FormatRGB555, StrategyRawCopy},
		{"undefined bit filled", FormatRGB555,
			MakeFormatInfo(16, false, [4]uint8{5, 5, 5, 1}, [4]uint8{10, 5, 0, 15}),
			StrategyCopyOrFill},
		{"byte order swap", FormatRGBA32, FormatARGB32, StrategyByteShuffle},
		{"bgr to rgb", FormatRGB24, FormatBGR24, StrategyByteShuffle},
		{"alpha extraction", FormatA8, FormatPRGB32, StrategyExtractChannel},
		{"alpha expansion", FormatPRGB32, FormatA8, StrategyExpandChannel},
		{"grey expansion", FormatXRGB32, FormatL8, StrategyExpandChannel},
		{"premultiply", FormatPRGB32, FormatARGB32, StrategyPremultiply},
		{"premultiply with swap", FormatPRGB32, FormatRGBA32, StrategyPremultiply},
		{"unpremultiply", FormatARGB32, FormatPRGB32, StrategyUnpremultiply},
		{"to native", FormatPRGB32, FormatRGB565, StrategyNativeFromForeign},
		{"from native", FormatRGB565, FormatPRGB32, StrategyForeignFromNative},
		{"palette lookup", FormatPRGB32, smallPal, StrategyIndexedLookup},
		{"foreign to foreign", FormatRGB565, FormatRGB24, StrategyMultiStep},
		{"swapped to shallow alpha", FormatARGB4444, FormatRGBA32, StrategyMultiStep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.dst, tt.src, 0)
			if err != nil {
				t.Fatalf("New = %v", err)
			}
			defer c.Reset()
			if c.Strategy() != tt.want {
				t.Errorf("strategy = %v, want %v", c.Strategy(), tt.want)
			}
			if !c.IsInitialized() {
				t.Error("converter not initialized")
			}
		})
	}
}

func TestNoMultiStepFlag(t *testing.T) {
	_, err := New(FormatRGB565, FormatRGB24, CreateFlagNoMultiStep)
	if !errors.Is(err, ErrConversionUnsupported) {
		t.Errorf("New with NoMultiStep = %v, want ErrConversionUnsupported", err)
	}

	// Single-step pairs are unaffected.
	c, err := New(FormatPRGB32, FormatRGB565, CreateFlagNoMultiStep)
	if err != nil {
		t.Fatalf("single-step pair failed under NoMultiStep: %v", err)
	}
	c.Reset()
}

func TestLuminanceDestinationUnsupported(t *testing.T) {
	_, err := New(FormatL8, FormatPRGB32, 0)
	if !errors.Is(err, ErrConversionUnsupported) {
		t.Errorf("New(l8, prgb32) = %v, want ErrConversionUnsupported", err)
	}
}

func TestKernelDispatchByFeatures(t *testing.T) {
	di, _ := FormatXRGB32.Sanitized()
	si, _ := FormatPRGB32.Sanitized()

	var base PixelConverter
	if err := initInternal(&base, di, si, 0, 0); err != nil {
		t.Fatal(err)
	}
	if base.IsOptimized() {
		t.Error("baseline kernel marked optimized")
	}

	var accel PixelConverter
	if err := initInternal(&accel, di, si, 0, cpuinfo.FeatureSSE2); err != nil {
		t.Fatal(err)
	}
	if !accel.IsOptimized() {
		t.Error("sse2 kernel not marked optimized")
	}
	if accel.Strategy() != base.Strategy() {
		t.Errorf("feature set changed strategy: %v vs %v", accel.Strategy(), base.Strategy())
	}

	// Same pixels whichever kernel runs.
	src := pack32(0x80112233, 0x01FF00FF, 0x00000000, 0xFFABCDEF)
	got1 := make([]byte, 16)
	got2 := make([]byte, 16)
	if err := base.Convert(got1, 16, src, 16, 4, 1, nil); err != nil {
		t.Fatal(err)
	}
	if err := accel.Convert(got2, 16, src, 16, 4, 1, nil); err != nil {
		t.Fatal(err)
	}
	for i := range got1 {
		if got1[i] != got2[i] {
			t.Fatalf("kernels disagree at byte %d: %#x vs %#x", i, got1[i], got2[i])
		}
	}
}

func TestResolveKernelPrefersSpecific(t *testing.T) {
	fn, optimized := resolveKernel(copyOrFill32Table, cpuinfo.FeatureSSE2|cpuinfo.FeatureAVX2)
	if fn == nil {
		t.Fatal("no kernel resolved")
	}
	if !optimized {
		t.Error("capable CPU resolved the generic kernel")
	}

	fn, optimized = resolveKernel(copyOrFill32Table, 0)
	if fn == nil {
		t.Fatal("no fallback kernel")
	}
	if optimized {
		t.Error("bare CPU marked optimized")
	}
}
