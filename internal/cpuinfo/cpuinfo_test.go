package cpuinfo

import "testing"

func TestHas(t *testing.T) {
	tests := []struct {
		name string
		set  Features
		sub  Features
		want bool
	}{
		{"empty in empty", 0, 0, true},
		{"empty in any", FeatureSSE2 | FeatureAVX2, 0, true},
		{"single present", FeatureSSE2 | FeatureSSSE3, FeatureSSSE3, true},
		{"single absent", FeatureSSE2, FeatureAVX2, false},
		{"subset present", FeatureSSE2 | FeatureSSSE3 | FeatureAVX2, FeatureSSE2 | FeatureAVX2, true},
		{"subset partial", FeatureSSE2 | FeatureSSSE3, FeatureSSE2 | FeatureAVX2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Has(tt.sub); got != tt.want {
				t.Errorf("(%v).Has(%v) = %v, want %v", tt.set, tt.sub, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	if got := Features(0).String(); got != "none" {
		t.Errorf("Features(0).String() = %q, want %q", got, "none")
	}
	if got := (FeatureSSE2 | FeatureAVX2).String(); got != "sse2|avx2" {
		t.Errorf("String() = %q, want %q", got, "sse2|avx2")
	}
}

func TestDetectStable(t *testing.T) {
	if Detect() != Detect() {
		t.Error("Detect() is not stable across calls")
	}
}
