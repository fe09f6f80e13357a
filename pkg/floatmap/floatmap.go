package floatmap

import (
	"fmt"
	"math"
)

const (
	DefaultInitialCapacity = 16
	DefaultLoadFactor      = 0.75
)

// entry is one link in a bucket chain. keyBits is the raw IEEE-754 pattern and
// the sole identity used for equality; key is kept only for display. +0.0 and
// -0.0 therefore land in different entries, and NaNs with different payload
// bits are distinct keys.
type entry struct {
	key     float64
	keyBits uint64
	value   int32
	next    *entry
}

type Config struct {
	// InitialCapacity is a hint, rounded up to the next power of two (min 1).
	// <=0 selects DefaultInitialCapacity.
	InitialCapacity int
	// LoadFactor is the size/capacity ratio that triggers doubling.
	// <=0 selects DefaultLoadFactor.
	LoadFactor float64
	// Mixer decorrelates raw key bits before masking. nil selects MixSplitMix64.
	Mixer MixFunc
}

// Map is a separately chained hash table keyed on the raw bit pattern of a
// float64. Not safe for concurrent use; callers serialize externally.
type Map struct {
	buckets    []*entry
	size       int
	mask       uint32
	loadFactor float64
	threshold  int
	mix        MixFunc
}

func New(config Config) *Map {
	hint := config.InitialCapacity
	if hint <= 0 {
		hint = DefaultInitialCapacity
	}
	capacity := 1
	for capacity < hint {
		capacity <<= 1
	}
	loadFactor := config.LoadFactor
	if loadFactor <= 0 {
		loadFactor = DefaultLoadFactor
	}
	mix := config.Mixer
	if mix == nil {
		mix = MixSplitMix64
	}
	return &Map{
		buckets:    make([]*entry, capacity),
		mask:       uint32(capacity - 1),
		loadFactor: loadFactor,
		threshold:  int(float64(capacity) * loadFactor),
		mix:        mix,
	}
}

// Size returns the number of live entries.
func (m *Map) Size() int {
	return m.size
}

// Capacity returns the bucket array length, always a power of two.
func (m *Map) Capacity() int {
	return len(m.buckets)
}

// Put inserts or overwrites the value for key. New entries are prepended to
// the addressed chain; crossing the threshold doubles the table before return.
func (m *Map) Put(key float64, value int32) {
	bits := math.Float64bits(key)
	idx := m.mix(bits) & m.mask

	for cur := m.buckets[idx]; cur != nil; cur = cur.next {
		if cur.keyBits == bits {
			cur.value = value
			return
		}
	}

	m.buckets[idx] = &entry{key: key, keyBits: bits, value: value, next: m.buckets[idx]}
	m.size++
	if m.size > m.threshold {
		m.resize()
	}
}

// Get returns the value stored for key and whether it was present.
func (m *Map) Get(key float64) (int32, bool) {
	bits := math.Float64bits(key)
	idx := m.mix(bits) & m.mask

	for cur := m.buckets[idx]; cur != nil; cur = cur.next {
		if cur.keyBits == bits {
			return cur.value, true
		}
	}
	return 0, false
}

// Remove unlinks the entry for key, reporting whether one was present.
// Capacity never shrinks.
func (m *Map) Remove(key float64) bool {
	bits := math.Float64bits(key)
	idx := m.mix(bits) & m.mask

	var prev *entry
	for cur := m.buckets[idx]; cur != nil; cur = cur.next {
		if cur.keyBits == bits {
			if prev == nil {
				m.buckets[idx] = cur.next
			} else {
				prev.next = cur.next
			}
			m.size--
			return true
		}
		prev = cur
	}
	return false
}

// resize doubles the bucket array and relinks every entry against the new
// mask in a single pass. Entries are reused, never copied; chain order within
// a bucket is not preserved.
func (m *Map) resize() {
	oldBuckets := m.buckets
	newCap := len(oldBuckets) << 1
	newBuckets := make([]*entry, newCap)
	newMask := uint32(newCap - 1)

	for _, cur := range oldBuckets {
		for cur != nil {
			next := cur.next
			idx := m.mix(cur.keyBits) & newMask
			cur.next = newBuckets[idx]
			newBuckets[idx] = cur
			cur = next
		}
	}

	m.buckets = newBuckets
	m.mask = newMask
	m.threshold = int(float64(newCap) * m.loadFactor)
}

// Stats is a read-only diagnostic snapshot, meant for judging how well the
// mixer spreads keys. Never consulted internally.
type Stats struct {
	Capacity        int
	Size            int
	LoadFactor      float64
	MaxChainLength  int
	MeanChainLength float64
	NonEmptyBuckets int
}

func (s Stats) String() string {
	return fmt.Sprintf("M=%d, size=%d, loadFactor=%.3f, maxChainLength=%d, meanChainLength=%.3f, nonEmptyBuckets=%d",
		s.Capacity, s.Size, s.LoadFactor, s.MaxChainLength, s.MeanChainLength, s.NonEmptyBuckets)
}

func (m *Map) Stats() Stats {
	maxChain := 0
	totalChain := 0
	nonEmpty := 0

	for _, head := range m.buckets {
		if head == nil {
			continue
		}
		nonEmpty++
		chainLen := 0
		for cur := head; cur != nil; cur = cur.next {
			chainLen++
		}
		totalChain += chainLen
		if chainLen > maxChain {
			maxChain = chainLen
		}
	}

	meanChain := 0.0
	if nonEmpty > 0 {
		meanChain = float64(totalChain) / float64(nonEmpty)
	}
	return Stats{
		Capacity:        len(m.buckets),
		Size:            m.size,
		LoadFactor:      float64(m.size) / float64(len(m.buckets)),
		MaxChainLength:  maxChain,
		MeanChainLength: meanChain,
		NonEmptyBuckets: nonEmpty,
	}
}
