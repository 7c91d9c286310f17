//go:build amd64

package cpuinfo

import "golang.org/x/sys/cpu"

// detected is initialized before any Detect call; golang.org/x/sys/cpu
// fills its feature booleans in its own package init.
var detected = probe()

func probe() Features {
	var f Features
	if cpu.X86.HasSSE2 {
		f |= FeatureSSE2
	}
	if cpu.X86.HasSSSE3 {
		f |= FeatureSSSE3
	}
	if cpu.X86.HasSSE41 {
		f |= FeatureSSE41
	}
	if cpu.X86.HasAVX2 {
		f |= FeatureAVX2
	}
	return f
}
