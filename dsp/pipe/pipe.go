package pipe

// Receiver is the consuming end of a stream.
type Receiver[T any] interface {
	// Receive blocks until the next value is available. ok is false once the
	// producer has closed the stream and no buffered values remain.
	Receive() (v T, ok bool)
}

// Sender is the producing end of a stream.
type Sender[T any] interface {
	// Send blocks until the consumer can accept v.
	Send(v T)
}

// Chan is a bounded FIFO link backed by a Go channel.
type Chan[T any] struct {
	ch chan T
}

// NewChan returns a link buffering up to capacity values.
// A capacity <= 0 yields an unbuffered (rendezvous) link.
func NewChan[T any](capacity int) *Chan[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Chan[T]{ch: make(chan T, capacity)}
}

// Send blocks until the value is buffered or handed to the receiver.
// Sending after Close panics, as with a Go channel.
func (c *Chan[T]) Send(v T) {
	c.ch <- v
}

// Receive blocks until a value arrives or the link is closed and drained.
func (c *Chan[T]) Receive() (T, bool) {
	v, ok := <-c.ch
	return v, ok
}

// Close marks the end of the stream. Only the producer may call it.
func (c *Chan[T]) Close() {
	close(c.ch)
}

// Len returns the number of buffered values.
func (c *Chan[T]) Len() int {
	return len(c.ch)
}

// Cap returns the buffer capacity.
func (c *Chan[T]) Cap() int {
	return cap(c.ch)
}

// C exposes the receive side for use in select statements.
func (c *Chan[T]) C() <-chan T {
	return c.ch
}

type chanReceiver[T any] <-chan T

func (r chanReceiver[T]) Receive() (T, bool) {
	v, ok := <-r
	return v, ok
}

type chanSender[T any] chan<- T

func (s chanSender[T]) Send(v T) {
	s <- v
}

// FromChan adapts a receive-only Go channel as a [Receiver].
func FromChan[T any](ch <-chan T) Receiver[T] {
	return chanReceiver[T](ch)
}

// ToChan adapts a send-only Go channel as a [Sender].
func ToChan[T any](ch chan<- T) Sender[T] {
	return chanSender[T](ch)
}
