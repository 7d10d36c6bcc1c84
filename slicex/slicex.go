// Package slicex provides the generic slice helpers npmkit is built from.
package slicex

// Unique returns the distinct values of s, keeping the first occurrence of
// each and preserving first-seen order.
func Unique[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// MapFilter applies fn to every element of s and collects the results for
// which fn reports ok, preserving relative order. fn also receives the
// element's index.
func MapFilter[T, R any](s []T, fn func(item T, index int) (R, bool)) []R {
	out := make([]R, 0, len(s))
	for i, v := range s {
		if r, ok := fn(v, i); ok {
			out = append(out, r)
		}
	}
	return out
}
