//go:build arm64

package cpuinfo

// NEON (ASIMD) is a mandatory part of the arm64 baseline.
var detected Features = FeatureNEON
