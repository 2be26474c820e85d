package diagrecip

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-mvdr/dsp/core"
	"github.com/cwbudde/algo-mvdr/dsp/pipe"
	"github.com/cwbudde/algo-mvdr/dsp/triangular"
)

// Errors returned by the stage.
var (
	ErrInvalidSize  = errors.New("diagrecip: matrix size must be >= 0")
	ErrNilRealPart  = errors.New("diagrecip: nil real-part projection")
	ErrInputClosed  = errors.New("diagrecip: input closed mid-frame")
	ErrPackedLength = errors.New("diagrecip: packed length mismatch")
)

// Stage is a diagonal-reciprocal pipeline stage for N-row matrices.
//
// E is the element type carried by the input link and F the real type
// carried by the output link. Stage holds only immutable configuration and
// is safe to share, although each link must still have a single consumer.
type Stage[E any, F core.Float] struct {
	n        int
	realPart func(E) F
	cfg      core.StageConfig
}

// New returns a stage for n-row matrices. realPart projects an element to
// the real component the reciprocal is taken of.
func New[E any, F core.Float](n int, realPart func(E) F, opts ...core.StageOption) (*Stage[E, F], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	if realPart == nil {
		return nil, ErrNilRealPart
	}
	return &Stage[E, F]{
		n:        n,
		realPart: realPart,
		cfg:      core.ApplyStageOptions(opts...),
	}, nil
}

// NewComplex128 returns a stage over complex128 elements emitting float64.
func NewComplex128(n int, opts ...core.StageOption) (*Stage[complex128, float64], error) {
	return New(n, func(c complex128) float64 { return real(c) }, opts...)
}

// NewComplex64 returns a stage over complex64 elements emitting float32.
func NewComplex64(n int, opts ...core.StageOption) (*Stage[complex64, float32], error) {
	return New(n, func(c complex64) float32 { return real(c) }, opts...)
}

// N returns the matrix dimension.
func (s *Stage[E, F]) N() int { return s.n }

// Reads returns the number of elements consumed per frame.
func (s *Stage[E, F]) Reads() int { return triangular.PackedLen(s.n) }

// Writes returns the number of reciprocals emitted per frame.
func (s *Stage[E, F]) Writes() int { return s.n }

// Run consumes one packed matrix from in and sends the diagonal reciprocals
// to out in row order. It blocks on every receive and send.
func (s *Stage[E, F]) Run(in pipe.Receiver[E], out pipe.Sender[F]) error {
	_, err := s.run(in, out)
	return err
}

// run returns the number of elements read before completion or closure.
func (s *Stage[E, F]) run(in pipe.Receiver[E], out pipe.Sender[F]) (int, error) {
	it := triangular.NewIterator(s.n)
	for ; !it.Done(); it.Next() {
		e, ok := in.Receive()
		if !ok {
			return it.Count(), fmt.Errorf("%w: %d of %d elements read at %v",
				ErrInputClosed, it.Count(), s.Reads(), it.Pos())
		}
		if it.Diagonal() {
			out.Send(core.Reciprocal(s.realPart(e)))
		}
	}
	return it.Count(), nil
}

// Serve runs one frame after another until in is closed. It returns the
// number of complete frames processed. Closure on a frame boundary ends the
// stream cleanly; closure inside a frame returns an error wrapping
// ErrInputClosed. A zero-size stage reads nothing and returns immediately.
func (s *Stage[E, F]) Serve(in pipe.Receiver[E], out pipe.Sender[F]) (int, error) {
	if s.n == 0 {
		return 0, nil
	}

	log := s.cfg.Logger.With("stage", s.cfg.Name, "n", s.n)
	for frames := 0; ; frames++ {
		reads, err := s.run(in, out)
		if err != nil {
			if reads == 0 && errors.Is(err, ErrInputClosed) {
				log.Debug("input closed", "frames", frames)
				return frames, nil
			}
			log.Debug("input closed mid-frame", "frame", frames, "reads", reads)
			return frames, err
		}
		log.Debug("frame done", "frame", frames)
	}
}

// Go starts Serve on a new goroutine. The returned channel delivers the
// result of Serve and is then closed. If out has a Close method it is called
// once Serve returns, so the downstream stage observes end of stream.
func (s *Stage[E, F]) Go(in pipe.Receiver[E], out pipe.Sender[F]) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		_, err := s.Serve(in, out)
		if c, ok := out.(interface{ Close() }); ok {
			c.Close()
		}
		done <- err
	}()
	return done
}
