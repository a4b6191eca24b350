//go:build !optimize

package assume_test

import (
	"fmt"

	"github.com/sufield/assume"
)

func ExampleThat() {
	v := []int{1, 2, 3}
	index := 0 // i.e., some computed value

	assume.That(index < len(v), "index %d beyond v length", index)
	fmt.Println(v[index]) // bounds check elidable in optimized builds
	// Output: 1
}

func ExampleHolds() {
	v := []int{1, 2, 3}

	assume.Holds(func() bool { return len(v) > 0 }, "vec missing element")
	fmt.Println(v[len(v)-1])
	// Output: 3
}

func ExampleNever() {
	classify := func(n int) string {
		switch {
		case n%2 == 0:
			return "even"
		case n%2 != 0:
			return "odd"
		default:
			assume.Never("n = %d escaped both parities", n)
			panic("unreachable")
		}
	}
	fmt.Println(classify(4))
	// Output: even
}
