// Package pipe provides the blocking point-to-point channel abstraction used
// to connect streaming pipeline stages.
//
// A stage sees only two operations: [Receiver.Receive], which blocks until the
// producer delivers a value or closes the stream, and [Sender.Send], which
// blocks until the consumer has buffer capacity. Ordering is FIFO and every
// link has exactly one producer and one consumer. Backpressure arises from the
// bounded buffer alone.
//
// [Chan] is the default bounded implementation over a Go channel. [FromChan]
// and [ToChan] adapt existing directional channels, and the counting wrappers
// record how many values crossed a link.
package pipe
