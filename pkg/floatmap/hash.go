package floatmap

import (
	"encoding/binary"
	"errors"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

var ErrUnknownMixer = errors.New("unknown mixer")

// MixFunc maps a raw 64-bit key pattern to a well-distributed 32-bit index
// seed. Must be deterministic and argument-pure: the table recomputes it on
// resize and expects the same answer.
type MixFunc func(bits uint64) uint32

// SplitMix64 finalizing constants.
const (
	splitMix64C1 = 0xff51afd7ed558ccd
	splitMix64C2 = 0xc4ceb9fe1a85ec53
)

// MixSplitMix64 runs the SplitMix64 finalizer over the key bits and folds the
// result to 32 bits. Raw IEEE-754 patterns cluster in the low bits (shared
// exponents under skewed inputs), so every input bit has to influence the
// bucket index; the multiply-xor rounds guarantee that.
func MixSplitMix64(bits uint64) uint32 {
	bits ^= bits >> 33
	bits *= splitMix64C1
	bits ^= bits >> 33
	bits *= splitMix64C2
	bits ^= bits >> 33
	return uint32(bits>>32) ^ uint32(bits)
}

// MixXXHash hashes the 8 key bytes with xxhash64. Alternative mixer policy
// for distribution-quality comparisons.
func MixXXHash(bits uint64) uint32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], bits)
	h := xxhash.Sum64(buf[:])
	return uint32(h>>32) ^ uint32(h)
}

// MixXXH3 hashes the 8 key bytes with xxh3.
func MixXXH3(bits uint64) uint32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], bits)
	h := xxh3.Hash(buf[:])
	return uint32(h>>32) ^ uint32(h)
}

// MixerFor resolves a mixer by name: "splitmix64", "xxhash" or "xxh3".
func MixerFor(name string) (MixFunc, error) {
	switch name {
	case "splitmix64":
		return MixSplitMix64, nil
	case "xxhash":
		return MixXXHash, nil
	case "xxh3":
		return MixXXH3, nil
	default:
		return nil, ErrUnknownMixer
	}
}
