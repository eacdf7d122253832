// Package cosort reorders several sequences by the sort order of one of them.
package cosort

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var ErrLengthMismatch = errors.New("sequences have different lengths")

// Together sorts sorter and reorders each of others the same way.
//
// The sort is stable, rows with equal sorter values keep their input order.
func Together[S cmp.Ordered, T any](sorter []S, others ...[]T) ([]S, [][]T, error) {
	return TogetherFunc(sorter, identity[S], false, others...)
}

// TogetherFunc is Together sorting by key(sorter element), optionally in
// reverse order. Reversal negates the comparison only, equal keys still keep
// their input order.
func TogetherFunc[S, T any, K cmp.Ordered](sorter []S, key func(S) K, reverse bool, others ...[]T) ([]S, [][]T, error) {
	for i, o := range others {
		if len(o) != len(sorter) {
			return nil, nil, fmt.Errorf("%w: sequence %d has %d elements, sorter has %d",
				ErrLengthMismatch, i, len(o), len(sorter))
		}
	}

	keys := make([]K, len(sorter))
	for i, s := range sorter {
		keys[i] = key(s)
	}
	perm := make([]int, len(sorter))
	for i := range perm {
		perm[i] = i
	}
	slices.SortStableFunc(perm, func(a, b int) int {
		if reverse {
			return cmp.Compare(keys[b], keys[a])
		}
		return cmp.Compare(keys[a], keys[b])
	})

	out := make([]S, len(sorter))
	for i, p := range perm {
		out[i] = sorter[p]
	}
	columns := make([][]T, len(others))
	for j, o := range others {
		column := make([]T, len(o))
		for i, p := range perm {
			column[i] = o[p]
		}
		columns[j] = column
	}
	return out, columns, nil
}

// By is Together without the reordered sorter column in the result.
func By[S cmp.Ordered, T any](sorter []S, others ...[]T) ([][]T, error) {
	_, columns, err := Together(sorter, others...)
	return columns, err
}

// ByFunc is TogetherFunc without the reordered sorter column in the result.
func ByFunc[S, T any, K cmp.Ordered](sorter []S, key func(S) K, reverse bool, others ...[]T) ([][]T, error) {
	_, columns, err := TogetherFunc(sorter, key, reverse, others...)
	return columns, err
}

func identity[S cmp.Ordered](s S) S { return s }
