// Package interval_test provides examples demonstrating half-open
// interval construction and membership. Each example is runnable via
// “go test -run Example”.
package interval_test

import (
	"fmt" // fmt is used to print results in examples

	"github.com/katalvlaran/lvlbin/interval"
)

// ExampleNew demonstrates constructing a right-closed interval and
// probing its endpoints: the left bound is open, the right is closed.
func ExampleNew() {
	// 1) Build (0, 5]: values above 0 up to and including 5.
	iv, err := interval.New(0, 5, interval.Right)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Endpoint membership follows the closed side.
	fmt.Println(iv)
	fmt.Println("contains 0:", iv.Contains(0))
	fmt.Println("contains 5:", iv.Contains(5))
	// Output:
	// (0, 5]
	// contains 0: false
	// contains 5: true
}

// ExampleFromBreaks demonstrates turning a sorted breakpoint sequence
// into the contiguous intervals it bounds.
func ExampleFromBreaks() {
	// 1) Four breakpoints bound three contiguous buckets.
	ivs, err := interval.FromBreaks([]float64{0, 10, 20, 30}, interval.Left)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Left-closed: each bucket owns its lower bound.
	for _, iv := range ivs {
		fmt.Println(iv)
	}
	// Output:
	// [0, 10)
	// [10, 20)
	// [20, 30)
}
