package triangular

import (
	"errors"
	"fmt"
)

// Errors returned by packing functions.
var (
	ErrIndexOutOfRange = errors.New("triangular: index out of range")
	ErrNotSquare       = errors.New("triangular: matrix is not square")
	ErrPackedLength    = errors.New("triangular: packed length mismatch")
)

// Index is a 1-indexed (row, col) position in the upper triangle.
type Index struct {
	Row int
	Col int
}

// Diagonal reports whether the position lies on the main diagonal.
func (ix Index) Diagonal() bool {
	return ix.Row == ix.Col
}

func (ix Index) String() string {
	return fmt.Sprintf("(%d,%d)", ix.Row, ix.Col)
}

// PackedLen returns N·(N+1)/2, the element count of a packed N-row triangle.
func PackedLen(n int) int {
	if n <= 0 {
		return 0
	}
	return n * (n + 1) / 2
}

// Offset returns the 0-based packed position of (row, col).
func Offset(n, row, col int) (int, error) {
	if row < 1 || col < row || col > n {
		return 0, fmt.Errorf("%w: (%d,%d) for n=%d", ErrIndexOutOfRange, row, col, n)
	}
	// Rows 1..row-1 contribute n, n-1, ..., n-row+2 elements.
	before := (row - 1) * (2*n - row + 2) / 2
	return before + col - row, nil
}

// DiagonalOffsets returns the packed positions of the n diagonal elements.
func DiagonalOffsets(n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	pos := 0
	for row := 1; row <= n; row++ {
		out[row-1] = pos
		pos += n - row + 1
	}
	return out
}

// Pack serializes the upper triangle of the square matrix m.
// Entries below the diagonal are ignored.
func Pack(m [][]complex128) ([]complex128, error) {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotSquare, i, len(row), n)
		}
	}
	if n == 0 {
		return nil, nil
	}

	out := make([]complex128, 0, PackedLen(n))
	for i := 0; i < n; i++ {
		out = append(out, m[i][i:]...)
	}
	return out, nil
}

// Unpack expands a packed triangle into a dense n×n matrix with a zero
// lower triangle.
func Unpack(packed []complex128, n int) ([][]complex128, error) {
	if n < 0 || len(packed) != PackedLen(n) {
		return nil, fmt.Errorf("%w: got %d elements for n=%d, want %d",
			ErrPackedLength, len(packed), n, PackedLen(n))
	}

	out := make([][]complex128, n)
	pos := 0
	for i := range out {
		out[i] = make([]complex128, n)
		width := n - i
		copy(out[i][i:], packed[pos:pos+width])
		pos += width
	}
	return out, nil
}
