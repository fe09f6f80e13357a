package bench

import (
	"encoding/binary"
	"math"

	"github.com/Meesho/BharatMLStack/floatmap/pkg/floatmap"
	"github.com/coocood/freecache"
)

// Store is the operation surface the workloads drive. The chained table and
// every baseline implement it so one workload body times all of them.
type Store interface {
	Put(key float64, value int32)
	Get(key float64) (int32, bool)
	Remove(key float64) bool
}

// FloatMapStore drives the chained table. Thin alias so the table itself
// stays free of harness concerns.
type FloatMapStore struct {
	*floatmap.Map
}

func NewFloatMapStore(mixer floatmap.MixFunc) *FloatMapStore {
	return &FloatMapStore{Map: floatmap.New(floatmap.Config{Mixer: mixer})}
}

// StdMap is the built-in map baseline, keyed on raw bits so its identity
// semantics match the table's (signed zeros and NaN payloads stay distinct).
type StdMap struct {
	m map[uint64]int32
}

func NewStdMap() *StdMap {
	return &StdMap{m: make(map[uint64]int32)}
}

func (s *StdMap) Put(key float64, value int32) {
	s.m[math.Float64bits(key)] = value
}

func (s *StdMap) Get(key float64) (int32, bool) {
	v, ok := s.m[math.Float64bits(key)]
	return v, ok
}

func (s *StdMap) Remove(key float64) bool {
	bits := math.Float64bits(key)
	if _, ok := s.m[bits]; !ok {
		return false
	}
	delete(s.m, bits)
	return true
}

// FreecacheStore is a second baseline backed by coocood/freecache. Keys are
// the 8 key-bit bytes, values the 4 value bytes, no expiry.
type FreecacheStore struct {
	cache *freecache.Cache
}

func NewFreecacheStore(sizeBytes int) *FreecacheStore {
	return &FreecacheStore{cache: freecache.NewCache(sizeBytes)}
}

func (f *FreecacheStore) Put(key float64, value int32) {
	var k [8]byte
	var v [4]byte
	binary.BigEndian.PutUint64(k[:], math.Float64bits(key))
	binary.BigEndian.PutUint32(v[:], uint32(value))
	// 0 TTL = never expires; errors only on oversized entries, impossible here.
	_ = f.cache.Set(k[:], v[:], 0)
}

func (f *FreecacheStore) Get(key float64) (int32, bool) {
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], math.Float64bits(key))
	v, err := f.cache.Get(k[:])
	if err != nil {
		return 0, false
	}
	return int32(binary.BigEndian.Uint32(v)), true
}

func (f *FreecacheStore) Remove(key float64) bool {
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], math.Float64bits(key))
	return f.cache.Del(k[:])
}
