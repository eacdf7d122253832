// Package minmax searches sequences for extremal values.
//
// Nil-aware variants take pointer slices and skip nil entries, so a
// legitimate extreme value never collides with the absent marker. Ties always
// go to the first occurrence.
package minmax

import (
	"cmp"
	"errors"
)

var ErrEmpty = errors.New("empty sequence")

// ArgMax returns the index of the first occurrence of the maximum value.
func ArgMax[T cmp.Ordered](values []T) (int, error) {
	return argFunc(values, identity[T], gt[T])
}

// ArgMin returns the index of the first occurrence of the minimum value.
func ArgMin[T cmp.Ordered](values []T) (int, error) {
	return argFunc(values, identity[T], lt[T])
}

// ArgMaxFunc is ArgMax comparing the keys derived from each element.
func ArgMaxFunc[T any, K cmp.Ordered](values []T, key func(T) K) (int, error) {
	return argFunc(values, key, gt[K])
}

// ArgMinFunc is ArgMin comparing the keys derived from each element.
func ArgMinFunc[T any, K cmp.Ordered](values []T, key func(T) K) (int, error) {
	return argFunc(values, key, lt[K])
}

// ArgMaxNil returns the index of the first occurrence of the maximum present
// value, skipping nil entries. ok is false when every entry is nil, including
// the empty slice.
func ArgMaxNil[T cmp.Ordered](values []*T) (int, bool) {
	return argNilFunc(values, identity[T], gt[T])
}

// ArgMinNil is ArgMaxNil for the minimum.
func ArgMinNil[T cmp.Ordered](values []*T) (int, bool) {
	return argNilFunc(values, identity[T], lt[T])
}

// ArgMaxNilFunc is ArgMaxNil comparing the keys derived from present elements.
func ArgMaxNilFunc[T any, K cmp.Ordered](values []*T, key func(T) K) (int, bool) {
	return argNilFunc(values, key, gt[K])
}

// ArgMinNilFunc is ArgMinNil comparing the keys derived from present elements.
func ArgMinNilFunc[T any, K cmp.Ordered](values []*T, key func(T) K) (int, bool) {
	return argNilFunc(values, key, lt[K])
}

// MaxNil returns the maximum present value. ok is false when every entry is nil.
func MaxNil[T cmp.Ordered](values []*T) (T, bool) {
	return valueNilFunc(values, identity[T], gt[T])
}

// MinNil returns the minimum present value. ok is false when every entry is nil.
func MinNil[T cmp.Ordered](values []*T) (T, bool) {
	return valueNilFunc(values, identity[T], lt[T])
}

// MaxNilFunc is MaxNil comparing keys. It returns the element, not the key.
func MaxNilFunc[T any, K cmp.Ordered](values []*T, key func(T) K) (T, bool) {
	return valueNilFunc(values, key, gt[K])
}

// MinNilFunc is MinNil comparing keys. It returns the element, not the key.
func MinNilFunc[T any, K cmp.Ordered](values []*T, key func(T) K) (T, bool) {
	return valueNilFunc(values, key, lt[K])
}

func argFunc[T any, K cmp.Ordered](values []T, key func(T) K, better func(K, K) bool) (int, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	best := 0
	bestKey := key(values[0])
	for i, v := range values[1:] {
		// Strict comparison keeps the first occurrence on ties.
		if k := key(v); better(k, bestKey) {
			best = i + 1
			bestKey = k
		}
	}
	return best, nil
}

func argNilFunc[T any, K cmp.Ordered](values []*T, key func(T) K, better func(K, K) bool) (int, bool) {
	best := -1
	var bestKey K
	for i, v := range values {
		if v == nil {
			continue
		}
		k := key(*v)
		if best < 0 || better(k, bestKey) {
			best = i
			bestKey = k
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

func valueNilFunc[T any, K cmp.Ordered](values []*T, key func(T) K, better func(K, K) bool) (T, bool) {
	i, ok := argNilFunc(values, key, better)
	if !ok {
		var zero T
		return zero, false
	}
	return *values[i], true
}

func identity[T cmp.Ordered](v T) T { return v }

func gt[K cmp.Ordered](a, b K) bool { return a > b }

func lt[K cmp.Ordered](a, b K) bool { return a < b }
