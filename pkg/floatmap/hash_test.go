package floatmap

import (
	"math"
	"testing"
)

func TestMixersAreDeterministic(t *testing.T) {
	mixers := map[string]MixFunc{
		"splitmix64": MixSplitMix64,
		"xxhash":     MixXXHash,
		"xxh3":       MixXXH3,
	}
	inputs := []uint64{0, 1, math.Float64bits(1.0), math.Float64bits(-0.0), ^uint64(0)}

	for name, mix := range mixers {
		for _, in := range inputs {
			a := mix(in)
			b := mix(in)
			if a != b {
				t.Fatalf("%s(%#x) not deterministic: %#x vs %#x", name, in, a, b)
			}
		}
	}
}

func TestMixSplitMix64KnownValues(t *testing.T) {
	// Finalizer rounds computed by hand:
	// x ^= x>>33; x *= 0xff51afd7ed558ccd; x ^= x>>33; x *= 0xc4ceb9fe1a85ec53;
	// x ^= x>>33; fold = hi32 ^ lo32.
	if got := MixSplitMix64(0); got != 0 {
		t.Fatalf("MixSplitMix64(0) = %#x, want 0 (all rounds preserve zero)", got)
	}
	a := MixSplitMix64(1)
	b := MixSplitMix64(2)
	if a == b {
		t.Fatalf("MixSplitMix64 collided on 1 and 2: %#x", a)
	}
}

func TestMixHighBitsInfluenceOutput(t *testing.T) {
	// Doubles sharing an exponent differ mostly in high mantissa bits; flipping
	// any single bit of the input must change the folded output for the mixer
	// to decorrelate such inputs.
	base := math.Float64bits(1000.5)
	for _, mix := range []MixFunc{MixSplitMix64, MixXXHash, MixXXH3} {
		ref := mix(base)
		changed := 0
		for bit := 0; bit < 64; bit++ {
			if mix(base^(1<<bit)) != ref {
				changed++
			}
		}
		if changed != 64 {
			t.Fatalf("only %d/64 single-bit flips changed the mix output", changed)
		}
	}
}

func TestMixSpreadsClusteredKeys(t *testing.T) {
	// Sequential doubles share exponent bits and cluster badly without mixing.
	// With a 1024-bucket mask the longest pile-up should stay small.
	const buckets = 1024
	const n = 4096

	for _, tc := range []struct {
		name string
		mix  MixFunc
	}{
		{"splitmix64", MixSplitMix64},
		{"xxhash", MixXXHash},
		{"xxh3", MixXXH3},
	} {
		counts := make([]int, buckets)
		for i := 0; i < n; i++ {
			bits := math.Float64bits(1000.0 + float64(i)*0.001)
			counts[tc.mix(bits)&(buckets-1)]++
		}
		maxCount := 0
		for _, c := range counts {
			if c > maxCount {
				maxCount = c
			}
		}
		// Mean occupancy is 4; anything near a uniform hash stays well under 20.
		if maxCount > 20 {
			t.Fatalf("%s: worst bucket holds %d of %d clustered keys", tc.name, maxCount, n)
		}
	}
}

func TestMixerFor(t *testing.T) {
	for _, name := range []string{"splitmix64", "xxhash", "xxh3"} {
		mix, err := MixerFor(name)
		if err != nil {
			t.Fatalf("MixerFor(%q) returned error: %v", name, err)
		}
		if mix == nil {
			t.Fatalf("MixerFor(%q) returned nil mixer", name)
		}
	}

	if _, err := MixerFor("fnv"); err != ErrUnknownMixer {
		t.Fatalf("MixerFor(\"fnv\") error = %v, want ErrUnknownMixer", err)
	}
}
