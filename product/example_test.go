package product_test

import (
	"fmt"

	"github.com/simkit/seqtools/product"
)

func ExampleAll() {
	combos, _ := product.All([]int{0, 1}, []int{0, 1, 2})
	for _, combo := range combos {
		fmt.Println(combo)
	}
	// Output:
	// [0 0]
	// [1 1]
	// [0 2]
	// [1 0]
	// [0 1]
	// [1 2]
}

func ExampleGenerator_Next() {
	g, _ := product.New(false, []string{"a", "b"}, []string{"x", "y", "z"})
	for range 3 {
		combo, _ := g.Next()
		fmt.Println(combo)
	}
	// Output:
	// [a x]
	// [b y]
	// [a z]
}
