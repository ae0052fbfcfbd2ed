// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Offer a reference determinant (Leibniz sum) independent of the code under test.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gabp/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic At/Set path in kernels that special-case *Dense.
type hide[T matrix.Element] struct{ matrix.Matrix[T] }

// mustDense builds an r×c Dense from row-major data or fails the test.
func mustDense[T matrix.Element](tb testing.TB, rows, cols int, data ...T) *matrix.Dense[T] {
	tb.Helper()
	if len(data) == 0 {
		m, err := matrix.NewDense[T](rows, cols)
		require.NoError(tb, err)

		return m
	}
	m, err := matrix.NewDenseFrom(rows, cols, data)
	require.NoError(tb, err)

	return m
}

// randInts returns an r×c Dense with entries in [-bound, bound].
func randInts(tb testing.TB, rng *rand.Rand, rows, cols, bound int) *matrix.Dense[int] {
	tb.Helper()
	m := mustDense[int](tb, rows, cols)
	m.Apply(func(_, _ int, _ int) int { return rng.Intn(2*bound+1) - bound })

	return m
}

// randFloats returns an r×c Dense with entries in [-1, 1).
func randFloats(tb testing.TB, rng *rand.Rand, rows, cols int) *matrix.Dense[float64] {
	tb.Helper()
	m := mustDense[float64](tb, rows, cols)
	m.Apply(func(_, _ int, _ float64) float64 { return 2*rng.Float64() - 1 })

	return m
}

// leibnizDet is the permutation-sum determinant, used as an oracle.
func leibnizDet(m matrix.Matrix[int]) int {
	n := m.Rows()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	var total int
	var walk func(k int, sign int)
	walk = func(k int, sign int) {
		if k == n {
			p := sign
			for i := 0; i < n; i++ {
				p *= m.At(i, perm[i])
			}
			total += p

			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			s := sign
			if i != k {
				s = -sign
			}
			walk(k+1, s)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	walk(0, 1)

	return total
}

// recoverError runs f and returns the error it panicked with (nil if none).
func recoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			}
		}
	}()
	f()

	return nil
}

// requireOutOfRange asserts that f panics with an error wrapping ErrOutOfRange.
func requireOutOfRange(t *testing.T, f func()) {
	t.Helper()
	err := recoverError(f)
	require.Error(t, err, "expected an out-of-range panic")
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
