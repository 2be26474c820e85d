package pipe

// sliceSource replays a fixed slice and then reports closure.
type sliceSource[T any] struct {
	values []T
	pos    int
}

// SliceSource returns a Receiver yielding values in order. It never blocks.
func SliceSource[T any](values []T) Receiver[T] {
	return &sliceSource[T]{values: values}
}

func (s *sliceSource[T]) Receive() (T, bool) {
	if s.pos >= len(s.values) {
		var zero T
		return zero, false
	}
	v := s.values[s.pos]
	s.pos++
	return v, true
}

// SliceSink is an unbounded Sender that appends every value it is given.
// It is not safe for concurrent use.
type SliceSink[T any] struct {
	Values []T
}

// Send appends v.
func (s *SliceSink[T]) Send(v T) {
	s.Values = append(s.Values, v)
}

// Reset drops collected values, keeping capacity.
func (s *SliceSink[T]) Reset() {
	s.Values = s.Values[:0]
}

// Feed sends every value in order, blocking as dst requires.
func Feed[T any](dst Sender[T], values []T) {
	for _, v := range values {
		dst.Send(v)
	}
}

// Collect receives up to n values. ok is false if the stream closed first;
// the values received before closure are still returned.
func Collect[T any](src Receiver[T], n int) ([]T, bool) {
	if n <= 0 {
		return nil, true
	}
	out := make([]T, 0, n)
	for len(out) < n {
		v, ok := src.Receive()
		if !ok {
			return out, false
		}
		out = append(out, v)
	}
	return out, true
}
