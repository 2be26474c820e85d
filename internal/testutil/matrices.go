package testutil

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlath/matrix"
)

// UpperTriangular returns a deterministic n×n complex upper-triangular
// matrix. Diagonal real parts have magnitude in [minDiag, minDiag+1) with a
// random sign; every other upper entry is uniform in [-1, 1) per component.
// Lower entries are zero.
func UpperTriangular(seed int64, n int, minDiag float64) [][]complex128 {
	rng := rand.New(rand.NewSource(seed))
	m := make([][]complex128, n)
	for i := range m {
		m[i] = make([]complex128, n)
		for j := i; j < n; j++ {
			re := rng.Float64()*2 - 1
			im := rng.Float64()*2 - 1
			if i == j {
				re = minDiag + rng.Float64()
				if rng.Intn(2) == 0 {
					re = -re
				}
			}
			m[i][j] = complex(re, im)
		}
	}
	return m
}

// Diagonal returns the real parts of the diagonal of m.
func Diagonal(m [][]complex128) []float64 {
	out := make([]float64, len(m))
	for i := range m {
		out[i] = real(m[i][i])
	}
	return out
}

// RandomDense returns a deterministic n×n lvlath matrix with entries uniform
// in [-1, 1) plus n on the diagonal, which keeps it well conditioned.
func RandomDense(seed int64, n int) (*matrix.Dense, error) {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("testutil: NewDense(%d): %w", n, err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := rng.Float64()*2 - 1
			if i == j {
				v += float64(n)
			}
			if err := m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}
