package filters

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// SortKey returns the entries of m ordered by key.
func SortKey[K cmp.Ordered, V any](m map[K]V) []lo.Entry[K, V] {
	entries := lo.Entries(m)
	slices.SortFunc(entries, func(a, b lo.Entry[K, V]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return entries
}

// Concat returns a new slice holding the elements of a followed by those of b.
func Concat[T any](a, b []T) []T {
	return slices.Concat(a, b)
}

// Uniq removes duplicates, keeping the first occurrence of each element.
func Uniq[T comparable](items []T) []T {
	return lo.Uniq(items)
}

// Index returns the element at position i. Negative positions count from the end.
func Index[T any](items []T, i int) (T, error) {
	if i < 0 {
		i += len(items)
	}
	if i < 0 || i >= len(items) {
		var zero T
		return zero, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(items))
	}
	return items[i], nil
}
