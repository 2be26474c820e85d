package pipe

import "sync/atomic"

// CountingReceiver wraps a Receiver and counts successful receives.
type CountingReceiver[T any] struct {
	r Receiver[T]
	n atomic.Int64
}

// CountReceiver wraps r.
func CountReceiver[T any](r Receiver[T]) *CountingReceiver[T] {
	return &CountingReceiver[T]{r: r}
}

// Receive forwards to the wrapped receiver.
func (c *CountingReceiver[T]) Receive() (T, bool) {
	v, ok := c.r.Receive()
	if ok {
		c.n.Add(1)
	}
	return v, ok
}

// Count returns the number of values received so far.
func (c *CountingReceiver[T]) Count() int {
	return int(c.n.Load())
}

// CountingSender wraps a Sender and counts sends.
type CountingSender[T any] struct {
	s Sender[T]
	n atomic.Int64
}

// CountSender wraps s.
func CountSender[T any](s Sender[T]) *CountingSender[T] {
	return &CountingSender[T]{s: s}
}

// Send forwards to the wrapped sender.
func (c *CountingSender[T]) Send(v T) {
	c.s.Send(v)
	c.n.Add(1)
}

// Count returns the number of values sent so far.
func (c *CountingSender[T]) Count() int {
	return int(c.n.Load())
}
