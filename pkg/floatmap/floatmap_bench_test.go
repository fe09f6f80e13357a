package floatmap

import (
	"math"
	"math/rand"
	"testing"
)

const benchKeyCount = 100_000

// generateBenchKeys pre-generates distinct keys so key construction stays out
// of the measured loop.
func generateBenchKeys(n int) []float64 {
	rng := rand.New(rand.NewSource(42))
	seen := make(map[uint64]struct{}, n)
	keys := make([]float64, 0, n)
	for len(keys) < n {
		k := rng.Float64() * 1000.0
		bits := math.Float64bits(k)
		if _, ok := seen[bits]; ok {
			continue
		}
		seen[bits] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

func BenchmarkPut(b *testing.B) {
	keys := generateBenchKeys(benchKeyCount)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := New(Config{})
		for j, k := range keys {
			m.Put(k, int32(j))
		}
	}
}

func BenchmarkGet(b *testing.B) {
	keys := generateBenchKeys(benchKeyCount)
	m := New(Config{})
	for j, k := range keys {
		m.Put(k, int32(j))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := keys[i%len(keys)]
		if _, ok := m.Get(k); !ok {
			b.Fatalf("key %v missing", k)
		}
	}
}

func BenchmarkPutBuiltinBaseline(b *testing.B) {
	keys := generateBenchKeys(benchKeyCount)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := make(map[uint64]int32)
		for j, k := range keys {
			m[math.Float64bits(k)] = int32(j)
		}
	}
}

func BenchmarkMixers(b *testing.B) {
	for _, tc := range []struct {
		name string
		mix  MixFunc
	}{
		{"splitmix64", MixSplitMix64},
		{"xxhash", MixXXHash},
		{"xxh3", MixXXH3},
	} {
		b.Run(tc.name, func(b *testing.B) {
			var sink uint32
			for i := 0; i < b.N; i++ {
				sink ^= tc.mix(uint64(i) * 0x9e3779b97f4a7c15)
			}
			_ = sink
		})
	}
}
