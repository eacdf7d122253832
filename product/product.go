// Package product generates cartesian products of sequences in cyclic order.
//
// The generator yields the same combinations as a nested loop, but staggers
// the phase between each sequence and the sub-product of the preceding ones.
// One full cycle still covers every combination exactly once; the order is
// simply not lexicographic.
package product

import (
	"errors"
	"fmt"
)

var (
	// ErrExhausted reports normal termination of a stopping generator.
	ErrExhausted = errors.New("all combinations yielded")
	// ErrEmptyInput reports an empty input sequence. The product would be empty.
	ErrEmptyInput   = errors.New("empty input sequence")
	ErrNoSequences  = errors.New("no input sequences")
	ErrInvalidCount = errors.New("count must be a positive integer")
)

// Generator draws combinations from the cartesian product of its sequences,
// one element per sequence, one combination per call to Next.
//
// A generator holds private cursor state and must not be shared across
// goroutines. Input sequences must not be mutated while the generator is live.
type Generator[T any] struct {
	sub  *Generator[T] // product of all but the last sequence, nil for a single one
	last []T
	stop bool

	width   int // number of input sequences
	subsize int // combinations in one cycle of sub
	lcm     int // draws before a (sub position, last index) pairing recurs
	period  int // distinct combinations at this layer

	index int // next position in the infinite repetition of the sub cycle
	start int // position at which the current pass began
	iters int // combinations drawn in the current pass
	done  bool
}

// New returns a generator over the cartesian product of seqs.
//
// A stopping generator yields each combination exactly once, then reports
// ErrExhausted. A non-stopping one replays the identical cycle forever.
func New[T any](stop bool, seqs ...[]T) (*Generator[T], error) {
	if len(seqs) == 0 {
		return nil, ErrNoSequences
	}
	var empties []int
	for i, s := range seqs {
		if len(s) == 0 {
			empties = append(empties, i)
		}
	}
	if len(empties) == 1 {
		return nil, fmt.Errorf("%w at index %d", ErrEmptyInput, empties[0])
	}
	if len(empties) > 1 {
		return nil, fmt.Errorf("%w at indices %v", ErrEmptyInput, empties)
	}
	return newGenerator(stop, seqs), nil
}

func newGenerator[T any](stop bool, seqs [][]T) *Generator[T] {
	g := &Generator[T]{
		last:    seqs[len(seqs)-1],
		stop:    stop,
		width:   len(seqs),
		subsize: 1,
	}
	if len(seqs) > 1 {
		// The sub generator never stops. It is advanced in lock-step,
		// one draw per draw of this layer.
		g.sub = newGenerator(false, seqs[:len(seqs)-1])
		g.subsize = g.sub.period
	}
	g.lcm = lcm(g.subsize, len(g.last))
	g.period = g.subsize * len(g.last)
	return g
}

// Next returns the next combination.
func (g *Generator[T]) Next() ([]T, error) {
	if g.done {
		return nil, ErrExhausted
	}
	combo := make([]T, 0, g.width)
	if g.sub != nil {
		head, err := g.sub.Next()
		if err != nil {
			// Unreachable, the sub generator never stops.
			return nil, err
		}
		combo = append(combo, head...)
	}
	combo = append(combo, g.last[g.index%len(g.last)])
	g.index++
	g.iters++

	if g.iters%g.lcm == 0 {
		// Advancing by one more would pair a sub combination with a last
		// element already seen in this pass. Restart one step further to
		// stagger the phase.
		g.start++
		g.index = g.start
	}
	if g.iters == g.period {
		if g.stop {
			g.done = true
		} else {
			g.index, g.start, g.iters = 0, 0, 0
		}
	}
	return combo, nil
}

// Period returns the number of distinct combinations in one full cycle.
func (g *Generator[T]) Period() int {
	return g.period
}

// All collects one full cycle of combinations.
func All[T any](seqs ...[]T) ([][]T, error) {
	g, err := New(true, seqs...)
	if err != nil {
		return nil, err
	}
	out := make([][]T, 0, g.Period())
	for {
		combo, err := g.Next()
		if errors.Is(err, ErrExhausted) {
			return out, nil
		}
		out = append(out, combo)
	}
}

// Take draws count combinations from a non-stopping generator.
//
// When count exceeds the number of distinct combinations, the tail repeats
// combinations from the next cycle.
func Take[T any](count int, seqs ...[]T) ([][]T, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidCount, count)
	}
	g, err := New(false, seqs...)
	if err != nil {
		return nil, err
	}
	out := make([][]T, 0, count)
	for range count {
		combo, _ := g.Next()
		out = append(out, combo)
	}
	return out, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
