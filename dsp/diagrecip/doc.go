// Package diagrecip implements the diagonal-reciprocal stage of an MVDR
// adaptive beamforming pipeline.
//
// The stage consumes the R factor of a QR decomposition as a packed
// row-major upper-triangular stream (see package triangular) and emits
// 1/real(R[i][i]) for each row i, in row order. Downstream back-substitution
// uses these reciprocals in place of divisions.
//
// # Streaming
//
// [Stage.Run] processes exactly one matrix: it performs N·(N+1)/2 blocking
// receives and N blocking sends, tracking the implied (row, col) position
// with a local iterator that is discarded when the call returns. Nothing
// carries over between calls, so a Stage can process any number of frames
// back to back.
//
//	st, _ := diagrecip.NewComplex128(4)
//	in := pipe.NewChan[complex128](16)
//	out := pipe.NewChan[float64](4)
//	done := st.Go(in, out)
//
// [Stage.Serve] repeats Run until the producer closes the input on a frame
// boundary, and [Stage.Go] runs Serve on its own goroutine.
//
// # Numerics
//
// Division is plain IEEE division. A zero diagonal yields ±Inf and NaN
// propagates; neither is reported. A singular R is a property of the data
// delivered upstream.
//
// # Stream length
//
// The stage trusts the producer to send exactly N·(N+1)/2 elements per frame.
// Excess elements are indistinguishable from the next frame and are not
// detected. A producer that closes the input mid-frame causes Run to return
// an error wrapping [ErrInputClosed].
package diagrecip
