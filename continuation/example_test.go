package continuation_test

import (
	"fmt"

	"github.com/cwbudde/algo-rational/continuation"
)

func ExampleFollower_Calculate() {
	// z² + k = 0 has roots ±i√k. Starting from z = i at k = 1 follows the
	// upper one.
	eq := func(z complex128, k float64) complex128 { return z*z + complex(k, 0) }

	f, err := continuation.NewFollower(eq, 1i, 1)
	if err != nil {
		panic(err)
	}

	for _, z := range f.Calculate([]float64{0.25, 4, 9}) {
		fmt.Printf("%.6f\n", imag(z))
	}

	// Output:
	// 0.500000
	// 2.000000
	// 3.000000
}
