package diagrecip

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-mvdr/dsp/core"
	"github.com/cwbudde/algo-mvdr/dsp/triangular"
)

// Reciprocals computes the stage output for one packed matrix held in memory.
func Reciprocals(packed []complex128, n int) ([]float64, error) {
	if n < 0 || len(packed) != triangular.PackedLen(n) {
		return nil, fmt.Errorf("%w: got %d elements for n=%d, want %d",
			ErrPackedLength, len(packed), n, triangular.PackedLen(n))
	}

	out := make([]float64, n)
	for i, off := range triangular.DiagonalOffsets(n) {
		out[i] = core.Reciprocal(real(packed[off]))
	}
	return out, nil
}

// Residual returns max |diag[i]·recip[i] - 1|. A NaN product yields NaN.
func Residual(diag, recip []float64) (float64, error) {
	if len(diag) != len(recip) {
		return 0, fmt.Errorf("diagrecip: residual length mismatch: %d vs %d", len(diag), len(recip))
	}
	if len(diag) == 0 {
		return 0, nil
	}

	prod := make([]float64, len(diag))
	vecmath.MulBlock(prod, diag, recip)

	worst := 0.0
	for _, p := range prod {
		d := math.Abs(p - 1)
		if math.IsNaN(d) {
			return math.NaN(), nil
		}
		if d > worst {
			worst = d
		}
	}
	return worst, nil
}
