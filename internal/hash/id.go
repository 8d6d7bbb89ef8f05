// Package hash derives 64-bit feature IDs from feature names.
package hash

import "github.com/cespare/xxhash/v2"

// ID returns the feature ID for name: its xxHash64 digest with seed 0.
//
// The value is stored in feature blob index entries, so it must never change
// between releases.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// IDs returns the feature ID of every name, in order.
func IDs(names []string) []uint64 {
	ids := make([]uint64, len(names))
	for i, name := range names {
		ids[i] = ID(name)
	}

	return ids
}
