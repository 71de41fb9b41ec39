// Package hashfunc provides ready made key policies for the hash index: hash functions for common key types,
// an equality function for comparable keys and the identity key extractor used when elements are their own keys.
package hashfunc

import (
	"bytes"
	"hash/crc32"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// String - Hashes a string key with xxhash
func String(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Bytes - Hashes a byte slice key with xxhash
func Bytes(key []byte) uint64 {
	return xxhash.Sum64(key)
}

// CRC32Bytes - Hashes a byte slice key using crc32.ChecksumIEEE.
// It spreads less evenly than Bytes but is stable across versions of this package and across processes.
func CRC32Bytes(key []byte) uint64 {
	return uint64(crc32.ChecksumIEEE(key))
}

// Integer - Uses the integer key itself as hash value. Prime bucket counts make this a reasonable choice for keys
// that are not clustered on multiples of the bucket count.
func Integer[T constraints.Integer](key T) uint64 {
	return uint64(key)
}

// MixedInteger - Hashes an integer key with the splitmix64 finalizer, for keys with regular strides
func MixedInteger[T constraints.Integer](key T) uint64 {
	h := uint64(key)
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return h
}

// Comparable - Returns a hash function for any comparable key type, seeded with seed.
// Hash values are only stable within one process.
func Comparable[T comparable](seed maphash.Seed) func(key T) uint64 {
	return func(key T) uint64 {
		return maphash.Comparable(seed, key)
	}
}

// Equal - Equality for comparable keys using ==
func Equal[T comparable](a, b T) bool {
	return a == b
}

// BytesEqual - Equality for byte slice keys, to pair with Bytes and CRC32Bytes
func BytesEqual(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// Identity - Key extractor for elements that are their own keys
func Identity[T any](element T) T {
	return element
}
