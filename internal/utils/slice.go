package utils

import (
	"sort"
	"unsafe"

	"golang.org/x/exp/constraints"
)

func CopySlice[T any](s []T) []T {
	sliceCopy := make([]T, len(s))
	copy(sliceCopy, s)

	return sliceCopy
}

func SliceContains[T constraints.Ordered](slice []T, v T) bool {
	for _, e := range slice {
		if e == v {
			return true
		}
	}

	return false
}

func MapSlice[T any, U any](s []T, mapper func(e T) U) []U {
	result := make([]U, len(s))

	for i, e := range s {
		result[i] = mapper(e)
	}

	return result
}

func FilterSlice[T any](s []T, filter func(e T) bool) []T {
	result := make([]T, 0, len(s))

	for _, e := range s {
		if filter(e) {
			result = append(result, e)
		}
	}

	return result
}

// SortedKeys returns the keys of a map in ascending order, it exists so
// that map-driven output (completions, registry listings) is deterministic.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func BytesAsString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

func StringAsBytes[T ~string](s T) []byte {
	return unsafe.Slice(unsafe.StringData(string(s)), len(s))
}
