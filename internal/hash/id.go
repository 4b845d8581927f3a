// Package hash computes digests of encoded path streams.
package hash

import "github.com/cespare/xxhash/v2"

// Digest computes the xxHash64 of an encoded stream.
func Digest(data []byte) uint64 {
	return xxhash.Sum64(data)
}

