package bench

import "math/rand"

type Workload string

const (
	WorkloadBuildOnly Workload = "build-only"
	WorkloadMixed     Workload = "mixed"
)

// BuildOnly inserts every key exactly once; the value is the key's position.
// Pure insertion throughput plus final chain shape.
func BuildOnly(store Store, keys []float64) {
	for i, key := range keys {
		store.Put(key, int32(i))
	}
}

// Mixed interleaves n operations at 50% put, 25% get, 25% remove, sampling
// gets and removes from the set of currently live keys. keys should hold
// roughly 2n entries so inserts never starve late in the run.
func Mixed(store Store, keys []float64, n int, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	live := make([]float64, 0, len(keys))
	nextKey := 0

	for op := 0; op < n; op++ {
		r := rng.Float64()
		switch {
		case r < 0.5:
			if nextKey < len(keys) {
				key := keys[nextKey]
				store.Put(key, int32(nextKey))
				live = append(live, key)
				nextKey++
			}
		case r < 0.75:
			if len(live) > 0 {
				store.Get(live[rng.Intn(len(live))])
			}
		default:
			if len(live) > 0 {
				i := rng.Intn(len(live))
				key := live[i]
				live[i] = live[len(live)-1]
				live = live[:len(live)-1]
				store.Remove(key)
			}
		}
	}
}
