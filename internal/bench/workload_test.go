package bench

import (
	"testing"

	"github.com/Meesho/BharatMLStack/floatmap/internal/dist"
)

func distinctKeys(t *testing.T, n int, seed int64) []float64 {
	t.Helper()
	keys, err := dist.DistinctKeys(dist.NewUniform(0, 1000, seed), n)
	if err != nil {
		t.Fatalf("key generation failed: %v", err)
	}
	return keys
}

func TestBuildOnly(t *testing.T) {
	keys := distinctKeys(t, 1000, 42)
	store := NewFloatMapStore(nil)

	BuildOnly(store, keys)

	if store.Size() != len(keys) {
		t.Fatalf("expected size %d after build, got %d", len(keys), store.Size())
	}
	for i, key := range keys {
		v, ok := store.Get(key)
		if !ok || v != int32(i) {
			t.Fatalf("key %d: Get = (%d, %v), want (%d, true)", i, v, ok, i)
		}
	}
}

func TestMixedKeepsStoresConsistent(t *testing.T) {
	// The same keys and schedule seed drive both stores, so they must end up
	// with identical contents.
	n := 5000
	keys := distinctKeys(t, n*2, 42)

	fm := NewFloatMapStore(nil)
	std := NewStdMap()
	Mixed(fm, keys, n, 1234)
	Mixed(std, keys, n, 1234)

	if fm.Size() != len(std.m) {
		t.Fatalf("floatmap size %d, stdmap size %d", fm.Size(), len(std.m))
	}
	for _, key := range keys {
		fv, fok := fm.Get(key)
		sv, sok := std.Get(key)
		if fok != sok || fv != sv {
			t.Fatalf("stores diverged on %v: floatmap (%d, %v), stdmap (%d, %v)", key, fv, fok, sv, sok)
		}
	}
}

func TestMixedIsDeterministicPerSeed(t *testing.T) {
	n := 2000
	keys := distinctKeys(t, n*2, 7)

	a := NewFloatMapStore(nil)
	b := NewFloatMapStore(nil)
	Mixed(a, keys, n, 99)
	Mixed(b, keys, n, 99)

	if a.Size() != b.Size() {
		t.Fatalf("same seed produced different sizes: %d vs %d", a.Size(), b.Size())
	}
	for _, key := range keys {
		av, aok := a.Get(key)
		bv, bok := b.Get(key)
		if aok != bok || av != bv {
			t.Fatalf("same seed diverged on %v", key)
		}
	}
}
