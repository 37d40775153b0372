package internal

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// SortedSeq2 iterates over a map in ascending key order.
func SortedSeq2[K cmp.Ordered, V any](m map[K]V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range slices.Sorted(maps.Keys(m)) {
			if !yield(key, m[key]) {
				return // Stop if the consumer stops
			}
		}
	}
}

// MaxKey returns the largest key of a map, and false if the map is empty.
func MaxKey[K cmp.Ordered, V any](m map[K]V) (max K, ok bool) {
	for key := range m {
		if !ok || key > max {
			max = key
			ok = true
		}
	}
	return
}
