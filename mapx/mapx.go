// Package mapx provides the generic map helpers npmkit is built from.
//
// Go maps carry no order, so the ordered form of a map is a sorted slice of
// [Entry] values rather than another map.
package mapx

import (
	"cmp"
	"slices"
)

// Shrink returns a copy of m with every nil-valued key removed. It is the
// decoded-JSON counterpart of dropping undefined fields from a record.
func Shrink[K comparable](m map[K]any) map[K]any {
	out := make(map[K]any, len(m))
	for k, v := range m {
		if v == nil {
			continue
		}
		out[k] = v
	}
	return out
}

// ShrinkFunc returns a copy of m with every key whose value absent reports
// true removed.
func ShrinkFunc[K comparable, V any](m map[K]V, absent func(V) bool) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		if absent(v) {
			continue
		}
		out[k] = v
	}
	return out
}

// Merge overlays ms left to right into a single map: on conflicting keys the
// later map wins. The inputs are not modified.
func Merge[K comparable, V any](ms ...map[K]V) map[K]V {
	out := make(map[K]V)
	for _, m := range ms {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// Entry is a single key/value pair of a map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Order returns the entries of m sorted by key in ascending order.
func Order[K cmp.Ordered, V any](m map[K]V) []Entry[K, V] {
	return OrderFunc(m, cmp.Compare)
}

// OrderFunc returns the entries of m sorted by key with compare, which must
// return a negative number when a sorts before b, as in [cmp.Compare].
func OrderFunc[K comparable, V any](m map[K]V, compare func(a, b K) int) []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	slices.SortFunc(out, func(a, b Entry[K, V]) int {
		return compare(a.Key, b.Key)
	})
	return out
}
