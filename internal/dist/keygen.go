package dist

import (
	"fmt"
	"math"
)

var ErrKeySpaceExhausted = fmt.Errorf("distinct key generation exhausted its attempt budget")

// DistinctKeys draws from s until n bit-distinct keys are collected. Keys are
// distinct by raw IEEE-754 pattern, not numeric value, matching the table's
// equality. The attempt budget of 10n guards against a distribution whose
// support is too narrow to ever yield n distinct patterns.
func DistinctKeys(s Sampler, n int) ([]float64, error) {
	seen := make(map[uint64]struct{}, n)
	keys := make([]float64, 0, n)
	maxAttempts := n * 10

	for attempts := 0; len(keys) < n; attempts++ {
		if attempts >= maxAttempts {
			return nil, fmt.Errorf("%w: got %d of %d keys from %s after %d draws",
				ErrKeySpaceExhausted, len(keys), n, s, attempts)
		}
		key := s.Next()
		bits := math.Float64bits(key)
		if _, ok := seen[bits]; ok {
			continue
		}
		seen[bits] = struct{}{}
		keys = append(keys, key)
	}
	return keys, nil
}
