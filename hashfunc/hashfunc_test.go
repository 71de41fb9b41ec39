//go:build unit

package hashfunc

import (
	"hash/maphash"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Run("equal strings hash equally", func(t *testing.T) {
		// Execute
		h1 := String("alpha")
		h2 := String(string([]byte{'a', 'l', 'p', 'h', 'a'}))

		// Check
		assert.Equal(t, h1, h2, "same hash value")
		assert.Equal(t, Bytes([]byte("alpha")), h1, "string and bytes agree")
		assert.NotEqual(t, String("beta"), h1, "different strings differ")
	})
}

func TestCRC32Bytes(t *testing.T) {
	t.Run("creates the crc32 checksum", func(t *testing.T) {
		// Prepare
		a := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

		// Execute
		h := CRC32Bytes(a)

		// Check
		assert.Equal(t, uint64(1164760902), h, "correct hash value")
	})
}

func TestInteger(t *testing.T) {
	t.Run("identity and mixed integer hashes", func(t *testing.T) {
		assert.Equal(t, uint64(205), Integer(205), "identity hash")
		assert.Equal(t, MixedInteger(7), MixedInteger(int64(7)), "mixed is a function of the value")
		assert.NotEqual(t, MixedInteger(7), MixedInteger(8), "neighbours differ")
	})
}

func TestComparable(t *testing.T) {
	t.Run("equal keys hash equally under one seed", func(t *testing.T) {
		// Prepare
		type point struct{ x, y int }
		h := Comparable[point](maphash.MakeSeed())

		// Check
		assert.Equal(t, h(point{1, 2}), h(point{1, 2}), "same hash value")
	})
}

func TestBytesEqual(t *testing.T) {
	t.Run("two byte slices are equal in length and values", func(t *testing.T) {
		assert.True(t, BytesEqual([]byte{0, 1, 2}, []byte{0, 1, 2}), "slices equal")
	})

	t.Run("two byte slices are unequal in length", func(t *testing.T) {
		assert.False(t, BytesEqual([]byte{0, 1, 2, 3}, []byte{0, 1, 2}), "slices unequal in length")
	})

	t.Run("two byte slices are unequal in values", func(t *testing.T) {
		assert.False(t, BytesEqual([]byte{0, 1, 5}, []byte{0, 1, 2}), "slices unequal in values")
	})
}
