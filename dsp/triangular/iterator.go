package triangular

// Iterator walks the packed positions of an n-row upper triangle in stream
// order. The zero value is already exhausted; use NewIterator.
//
// Iterator is a plain value with no shared state. Copies advance
// independently.
type Iterator struct {
	n     int
	row   int
	col   int
	count int
}

// NewIterator returns an iterator positioned at (1,1).
func NewIterator(n int) Iterator {
	if n < 0 {
		n = 0
	}
	return Iterator{n: n, row: 1, col: 1}
}

// Pos returns the current position. It is meaningless once Done is true.
func (it *Iterator) Pos() Index {
	return Index{Row: it.row, Col: it.col}
}

// Diagonal reports whether the current position is diagonal.
func (it *Iterator) Diagonal() bool {
	return it.row == it.col
}

// Done reports whether every packed position has been visited.
func (it *Iterator) Done() bool {
	return it.count >= PackedLen(it.n)
}

// Count returns the number of positions advanced past so far.
func (it *Iterator) Count() int {
	return it.count
}

// N returns the matrix dimension.
func (it *Iterator) N() int {
	return it.n
}

// Next advances to the following position. At the end of a row the column
// wraps to the first element of the next row, which is its diagonal.
func (it *Iterator) Next() {
	if it.col == it.n {
		it.col = it.row + 1
		it.row++
	} else {
		it.col++
	}
	it.count++
}

// Reset restarts the iterator at (1,1).
func (it *Iterator) Reset() {
	it.row, it.col, it.count = 1, 1, 0
}

// Positions returns every packed position in stream order.
func Positions(n int) []Index {
	it := NewIterator(n)
	out := make([]Index, 0, PackedLen(n))
	for ; !it.Done(); it.Next() {
		out = append(out, it.Pos())
	}
	return out
}
