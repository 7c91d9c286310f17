//go:build !amd64 && !arm64

package cpuinfo

// No SIMD extensions are assumed on other architectures; the generic
// kernels always apply.
var detected Features
