package blend2d

import "github.com/vvhh2002/blend2d/internal/cpuinfo"

// candidate is one kernel implementation annotated with the CPU
// feature set it requires.
type candidate struct {
	need cpuinfo.Features
	fn   convertFunc
}

// Kernel tables, one per strategy (or per strategy sub-variant),
// ordered most specialized first. The last entry of every table
// requires the empty feature set, so resolution always succeeds.
// Assembly kernels register here; the Go block kernels below are the
// current specialized tier.
var (
	copyTable = []candidate{
		{0, convertCopy},
	}

	copyOrFill32Table = []candidate{
		{cpuinfo.FeatureSSE2, convertCopyOrFill32Pair},
		{cpuinfo.FeatureNEON, convertCopyOrFill32Pair},
		{0, convertCopyOrFill32},
	}

	copyOrFillTable = []candidate{
		{0, convertCopyOrFill},
	}

	shuffle32Table = []candidate{
		{0, convertShuffle32},
	}

	shuffle24Table = []candidate{
		{0, convertShuffle24},
	}

	extractTable = []candidate{
		{0, convertExtractByte},
	}

	expandTable = []candidate{
		{0, convertExpand8To32},
	}

	premultiplyLeadingTable = []candidate{
		{0, convertPremultiplyLeading},
	}

	premultiplyTrailingTable = []candidate{
		{0, convertPremultiplyTrailing},
	}

	unpremultiplyLeadingTable = []candidate{
		{0, convertUnpremultiplyLeading},
	}

	unpremultiplyTrailingTable = []candidate{
		{0, convertUnpremultiplyTrailing},
	}

	nativeFromForeignTable = []candidate{
		{0, convertNativeFromForeign},
	}

	foreignFromNativeTable = []candidate{
		{0, convertForeignFromNative},
	}

	indexed8Table = []candidate{
		{0, convertIndexed8},
	}

	indexed16Table = []candidate{
		{0, convertIndexed16},
	}

	indexed32Table = []candidate{
		{0, convertIndexed32},
	}

	multiStepTable = []candidate{
		{0, convertMultiStep},
	}
)

// resolveKernel picks the first candidate whose requirement is a
// subset of caps. Every table ends with an unconditional entry, so a
// kernel is always found; optimized reports whether a non-generic
// candidate won.
func resolveKernel(table []candidate, caps cpuinfo.Features) (fn convertFunc, optimized bool) {
	for _, cand := range table {
		if caps.Has(cand.need) {
			return cand.fn, cand.need != 0
		}
	}
	// Unreachable as long as tables end with a need-free entry.
	return table[len(table)-1].fn, false
}

// setKernel resolves and stores the kernel for the given table and
// records whether a CPU-specific candidate was chosen.
func (c *PixelConverter) setKernel(table []candidate, caps cpuinfo.Features) {
	fn, optimized := resolveKernel(table, caps)
	c.fn = fn
	if optimized {
		c.flags |= flagOptimized
	}
}
