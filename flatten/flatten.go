// Package flatten reshapes nested sequences.
package flatten

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var ErrLengthMismatch = errors.New("sequences have different lengths")

// Flatten concatenates the rows of a nested sequence.
func Flatten[T any](rows [][]T) []T {
	var out []T
	for _, row := range rows {
		out = append(out, row...)
	}
	return out
}

// Transpose swaps rows and columns, truncating to the shortest row.
func Transpose[T any](rows [][]T) [][]T {
	if len(rows) == 0 {
		return nil
	}
	width := len(rows[0])
	for _, row := range rows[1:] {
		width = min(width, len(row))
	}
	out := make([][]T, width)
	for i := range out {
		column := make([]T, len(rows))
		for j, row := range rows {
			column[j] = row[i]
		}
		out[i] = column
	}
	return out
}

type number interface {
	constraints.Integer | constraints.Float
}

// Dot returns the dot product of two equally sized vectors.
func Dot[T number](a, b []T) (T, error) {
	var sum T
	if len(a) != len(b) {
		return sum, fmt.Errorf("%w: %d and %d", ErrLengthMismatch, len(a), len(b))
	}
	for i, v := range a {
		sum += v * b[i]
	}
	return sum, nil
}
