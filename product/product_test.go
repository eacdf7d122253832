package product_test

import (
	"fmt"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/require"

	"github.com/simkit/seqtools/product"
)

// upto returns [0, 1, ..., n-1].
func upto(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func distinct(combos [][]int) int {
	seen := mapset.NewSet[string]()
	for _, combo := range combos {
		seen.Add(fmt.Sprint(combo))
	}
	return seen.Cardinality()
}

func TestStaggerOrderPairs(t *testing.T) {
	r := require.New(t)

	combos, err := product.All(upto(2), upto(3))
	r.NoError(err)
	r.Equal([][]int{
		{0, 0}, {1, 1}, {0, 2}, {1, 0}, {0, 1}, {1, 2},
	}, combos)

	combos, err = product.All(upto(3), upto(3))
	r.NoError(err)
	r.Equal([][]int{
		{0, 0}, {1, 1}, {2, 2}, {0, 1}, {1, 2}, {2, 0}, {0, 2}, {1, 0}, {2, 1},
	}, combos)
}

func TestStaggerOrderTriple(t *testing.T) {
	r := require.New(t)
	combos, err := product.All(upto(2), upto(3), upto(2))
	r.NoError(err)
	r.Equal([][]int{
		{0, 0, 0}, {1, 1, 1}, {0, 2, 0}, {1, 0, 1}, {0, 1, 0}, {1, 2, 1},
		{0, 0, 1}, {1, 1, 0}, {0, 2, 1}, {1, 0, 0}, {0, 1, 1}, {1, 2, 0},
	}, combos)
}

func TestSingleSequence(t *testing.T) {
	r := require.New(t)
	combos, err := product.All([]int{4, 5, 6})
	r.NoError(err)
	r.Equal([][]int{{4}, {5}, {6}}, combos)
}

// One full cycle is a complete, duplicate free enumeration, whatever the
// sequence lengths.
func TestCompleteness(t *testing.T) {
	r := require.New(t)
	for i := 1; i < 20; i++ {
		combos, err := product.All(upto(i))
		r.NoError(err)
		r.Len(combos, i)
		r.Equal(i, distinct(combos))
		for j := 1; j < 20; j++ {
			combos, err := product.All(upto(i), upto(j))
			r.NoError(err)
			r.Len(combos, i*j)
			r.Equal(i*j, distinct(combos), "%d x %d", i, j)
		}
	}
}

func TestCompletenessTriples(t *testing.T) {
	r := require.New(t)
	for i := 1; i < 9; i++ {
		for j := 1; j < 9; j++ {
			for k := 1; k < 9; k++ {
				combos, err := product.All(upto(i), upto(j), upto(k))
				r.NoError(err)
				r.Equal(i*j*k, distinct(combos), "%d x %d x %d", i, j, k)
			}
		}
	}
}

func TestCompletenessQuads(t *testing.T) {
	r := require.New(t)
	cases := [][4]int{
		{1, 1, 1, 1},
		{2, 3, 4, 5},
		{3, 3, 3, 3},
		{2, 5, 7, 9},
		{19, 2, 3, 2},
	}
	for _, c := range cases {
		combos, err := product.All(upto(c[0]), upto(c[1]), upto(c[2]), upto(c[3]))
		r.NoError(err)
		r.Equal(c[0]*c[1]*c[2]*c[3], distinct(combos), "%v", c)
	}
}

// A non-stopping generator replays the identical cycle.
func TestPeriodicity(t *testing.T) {
	r := require.New(t)
	g, err := product.New(false, upto(3), upto(4))
	r.NoError(err)
	r.Equal(12, g.Period())

	var first [][]int
	for range g.Period() {
		combo, err := g.Next()
		r.NoError(err)
		first = append(first, combo)
	}
	for i := range g.Period() {
		combo, err := g.Next()
		r.NoError(err)
		r.Equal(first[i], combo, "draw %d of second cycle", i+1)
	}
}

func TestExhausted(t *testing.T) {
	r := require.New(t)
	g, err := product.New(true, upto(2))
	r.NoError(err)
	for range 2 {
		_, err := g.Next()
		r.NoError(err)
	}
	_, err = g.Next()
	r.ErrorIs(err, product.ErrExhausted)
	// Exhaustion is terminal.
	_, err = g.Next()
	r.ErrorIs(err, product.ErrExhausted)
}

func TestEmptyInput(t *testing.T) {
	r := require.New(t)

	_, err := product.New(true, upto(2), nil, upto(3))
	r.ErrorIs(err, product.ErrEmptyInput)
	r.ErrorContains(err, "index 1")

	_, err = product.New(true, nil, upto(2), []int{})
	r.ErrorIs(err, product.ErrEmptyInput)
	r.ErrorContains(err, "indices [0 2]")

	_, err = product.New[int](true)
	r.ErrorIs(err, product.ErrNoSequences)
}

func TestTake(t *testing.T) {
	r := require.New(t)

	combos, err := product.Take(10, upto(2), upto(2))
	r.NoError(err)
	r.Len(combos, 10)
	// The first full cycle is duplicate free, then the next cycle starts over.
	r.Equal(4, distinct(combos[:4]))
	r.Equal(combos[0], combos[4])

	combos, err = product.Take(3, upto(3), upto(3))
	r.NoError(err)
	r.Len(combos, 3)
	r.Equal(3, distinct(combos))
}

func TestTakeBadCount(t *testing.T) {
	r := require.New(t)
	_, err := product.Take(0, upto(2))
	r.ErrorIs(err, product.ErrInvalidCount)
	_, err = product.Take(-5, upto(2))
	r.ErrorIs(err, product.ErrInvalidCount)
}

func TestTakeEmptyInput(t *testing.T) {
	r := require.New(t)
	_, err := product.Take(4, upto(2), nil)
	r.ErrorIs(err, product.ErrEmptyInput)
}
