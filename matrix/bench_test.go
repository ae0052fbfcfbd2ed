// Package matrix_test provides benchmarks for core matrix operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gabp/matrix"
)

// sinks to defeat dead-code elimination
var (
	sinkErr error
	sinkF   float64
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{32, 64, 128} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1337))
			A, B := randFloats(b, rng, n, n), randFloats(b, rng, n, n)
			C := mustDense[float64](b, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkErr = matrix.Mul[float64](A, B, C)
			}
		})
		b.Run(fmt.Sprintf("n=%d/generic", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1337))
			A, B := randFloats(b, rng, n, n), randFloats(b, rng, n, n)
			C := mustDense[float64](b, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkErr = matrix.Mul[float64](hide[float64]{A}, hide[float64]{B}, C)
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{128, 256} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(4242))
			A, B := randFloats(b, rng, n, n), randFloats(b, rng, n, n)
			C := mustDense[float64](b, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkErr = matrix.Add[float64](A, B, C)
			}
		})
	}
}

// BenchmarkDet shows the O(n!) growth of cofactor expansion next to DetGauss.
func BenchmarkDet(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{4, 6, 8} {
		rng := rand.New(rand.NewSource(int64(n)))
		A := randFloats(b, rng, n, n)
		b.Run(fmt.Sprintf("cofactor/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkF, sinkErr = matrix.Det[float64](A)
			}
		})
		b.Run(fmt.Sprintf("gauss/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkF, sinkErr = matrix.DetGauss[float64](A)
			}
		})
	}
}
