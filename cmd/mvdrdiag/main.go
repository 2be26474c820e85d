// Command mvdrdiag streams the R factor of random QR decompositions through
// the diagonal-reciprocal stage and prints the reciprocals.
//
// Usage:
//
//	mvdrdiag [flags]
//
// Each frame builds a random, diagonally dominant N×N matrix, factors it
// with a Householder QR, packs the upper triangle and feeds it to the stage
// running on its own goroutine over bounded links.
//
// Examples:
//
//	mvdrdiag
//	mvdrdiag -n 16 -frames 4
//	mvdrdiag -n 8 -buffer 1 -v
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"text/tabwriter"

	"github.com/katalvlaran/lvlath/matrix"

	"github.com/cwbudde/algo-mvdr/dsp/core"
	"github.com/cwbudde/algo-mvdr/dsp/diagrecip"
	"github.com/cwbudde/algo-mvdr/dsp/pipe"
	"github.com/cwbudde/algo-mvdr/dsp/triangular"
)

type config struct {
	n       int
	frames  int
	seed    int64
	buffer  int
	verbose bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.n, "n", 4, "matrix dimension (rows of R)")
	flag.IntVar(&cfg.frames, "frames", 1, "number of matrices to stream")
	flag.Int64Var(&cfg.seed, "seed", 1, "random seed")
	flag.IntVar(&cfg.buffer, "buffer", 4, "capacity of each link between stages")
	flag.BoolVar(&cfg.verbose, "v", false, "log stage activity to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mvdrdiag [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Streams QR R factors through the diagonal-reciprocal stage.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(os.Stdout, os.Stderr, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type frame struct {
	packed []complex128
	diag   []float64
}

func run(stdout, stderr io.Writer, cfg config) error {
	if cfg.n <= 0 {
		return fmt.Errorf("n must be > 0: %d", cfg.n)
	}
	if cfg.frames <= 0 {
		return fmt.Errorf("frames must be > 0: %d", cfg.frames)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	rng := rand.New(rand.NewSource(cfg.seed))
	frames := make([]frame, cfg.frames)
	for i := range frames {
		f, err := makeFrame(rng, cfg.n)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		frames[i] = f
	}

	st, err := diagrecip.NewComplex128(cfg.n, core.WithLogger(logger), core.WithName("diag-recip"))
	if err != nil {
		return err
	}

	in := pipe.NewChan[complex128](cfg.buffer)
	out := pipe.NewChan[float64](cfg.buffer)
	done := st.Go(in, out)

	go func() {
		for _, f := range frames {
			pipe.Feed[complex128](in, f.packed)
		}
		in.Close()
	}()

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Frame\tRow\tR[i][i]\t1/R[i][i]\n-----\t---\t-------\t---------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for fi, f := range frames {
		recip, ok := pipe.Collect[float64](out, cfg.n)
		if !ok {
			// Drain the stage error, which explains the early close.
			if err := <-done; err != nil {
				return err
			}
			return fmt.Errorf("frame %d: output closed after %d values", fi, len(recip))
		}
		for i, r := range recip {
			if _, err := fmt.Fprintf(tw, "%d\t%d\t%.6f\t%.6f\n", fi, i+1, f.diag[i], r); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
		res, err := diagrecip.Residual(f.diag, recip)
		if err != nil {
			return err
		}
		logger.Debug("frame checked", "frame", fi, "residual", res)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return <-done
}

func makeFrame(rng *rand.Rand, n int) (frame, error) {
	a, err := matrix.NewDense(n, n)
	if err != nil {
		return frame{}, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := rng.Float64()*2 - 1
			if i == j {
				v += float64(n)
			}
			if err := a.Set(i, j, v); err != nil {
				return frame{}, err
			}
		}
	}

	_, r, err := matrix.QR(a)
	if err != nil {
		return frame{}, fmt.Errorf("qr: %w", err)
	}
	packed, err := triangular.FromMatrix(r)
	if err != nil {
		return frame{}, err
	}

	diag := make([]float64, n)
	for i, off := range triangular.DiagonalOffsets(n) {
		diag[i] = real(packed[off])
	}
	return frame{packed: packed, diag: diag}, nil
}
