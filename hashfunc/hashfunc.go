// Package hashfunc holds the hash function contract used by ProbingTable together with a few ready-made
// implementations of it.
package hashfunc

import (
	"github.com/cespare/xxhash/v2"
	"hash/crc32"
)

// Invalid - Returned by a hash function to signal that a key is not valid for hashing
const Invalid int = -1

// HashFunc - Given key and the size of the table it returns an index between 0 and tableSize - 1 (inclusive).
// If the key is not valid for hashing, a negative value is returned. The function is the sole authority on key
// validity, the table never inspects keys itself.
// Any number returned outside 0 -> tableSize - 1 (inclusive) will be refused by the table.
type HashFunc[K any] func(key K, tableSize int) int

// Integer - Key types accepted by Modulo
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// CRC32 - Hashes the key using crc32.ChecksumIEEE and reduces it to an index by modulo table size
func CRC32[K ~string | ~[]byte](key K, tableSize int) int {
	if tableSize <= 0 {
		return Invalid
	}

	h := uint64(crc32.ChecksumIEEE([]byte(key)))
	return int(h % uint64(tableSize))
}

// XXHash - Hashes the key using 64-bit xxHash and reduces it to an index by modulo table size
func XXHash[K ~string | ~[]byte](key K, tableSize int) int {
	if tableSize <= 0 {
		return Invalid
	}

	h := xxhash.Sum64String(string(key))
	return int(h % uint64(tableSize))
}

// Modulo - Returns the non-negative remainder of key divided by table size, so also negative keys land within
// the table.
func Modulo[K Integer](key K, tableSize int) int {
	if tableSize <= 0 {
		return Invalid
	}

	// The complement of zero is only positive for unsigned types
	if ^K(0) > 0 {
		return int(uint64(key) % uint64(tableSize))
	}

	m := int64(key) % int64(tableSize)
	if m < 0 {
		m += int64(tableSize)
	}

	return int(m)
}

// WithValidator - Wraps hashFunc so that any key rejected by isValid hashes to Invalid. Keys accepted are
// hashed by hashFunc as is.
//   - isValid reports whether the key is well-formed for this hash domain
//   - hashFunc is the hash function to use for valid keys
func WithValidator[K any](isValid func(key K) bool, hashFunc HashFunc[K]) HashFunc[K] {
	return func(key K, tableSize int) int {
		if !isValid(key) {
			return Invalid
		}
		return hashFunc(key, tableSize)
	}
}
