// Package cpuinfo detects the CPU instruction-set extensions available
// at runtime. The converter engine consumes the detected feature set
// once per converter construction to pick the fastest kernel whose
// requirements the running CPU satisfies.
package cpuinfo

import "strings"

// Features is a bit set of CPU instruction-set extensions.
type Features uint32

const (
	// FeatureSSE2 indicates 128-bit integer SIMD (baseline on amd64).
	FeatureSSE2 Features = 1 << iota

	// FeatureSSSE3 indicates byte-shuffle SIMD (PSHUFB class).
	FeatureSSSE3

	// FeatureSSE41 indicates extended integer SIMD (PMULLD class).
	FeatureSSE41

	// FeatureAVX2 indicates 256-bit integer SIMD.
	FeatureAVX2

	// FeatureNEON indicates 128-bit SIMD on arm64.
	FeatureNEON
)

// Has reports whether every feature in sub is present in f.
func (f Features) Has(sub Features) bool {
	return f&sub == sub
}

// String returns a human-readable feature list, e.g. "sse2|avx2".
func (f Features) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	for _, e := range []struct {
		bit  Features
		name string
	}{
		{FeatureSSE2, "sse2"},
		{FeatureSSSE3, "ssse3"},
		{FeatureSSE41, "sse4.1"},
		{FeatureAVX2, "avx2"},
		{FeatureNEON, "neon"},
	} {
		if f&e.bit != 0 {
			names = append(names, e.name)
		}
	}
	return strings.Join(names, "|")
}

// Detect returns the feature set of the running CPU.
// The result is computed once at package init and never changes.
func Detect() Features {
	return detected
}
