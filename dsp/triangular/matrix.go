package triangular

import (
	"fmt"

	"github.com/katalvlaran/lvlath/matrix"
)

// FromMatrix packs the upper triangle of a real square matrix, such as the
// R factor returned by matrix.QR, into a complex stream with zero imaginary
// parts.
func FromMatrix(m matrix.Matrix) ([]complex128, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil matrix", ErrNotSquare)
	}
	n := m.Rows()
	if m.Cols() != n {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, n, m.Cols())
	}

	out := make([]complex128, 0, PackedLen(n))
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("triangular: At(%d,%d): %w", i, j, err)
			}
			out = append(out, complex(v, 0))
		}
	}
	return out, nil
}
