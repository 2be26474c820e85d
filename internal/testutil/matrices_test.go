package testutil

import (
	"math"
	"testing"
)

func TestUpperTriangularShape(t *testing.T) {
	m := UpperTriangular(7, 5, 0.5)
	if len(m) != 5 {
		t.Fatalf("rows = %d, want 5", len(m))
	}
	for i := range m {
		if len(m[i]) != 5 {
			t.Fatalf("row %d cols = %d, want 5", i, len(m[i]))
		}
		for j := 0; j < i; j++ {
			if m[i][j] != 0 {
				t.Fatalf("m[%d][%d] = %v, want 0 below diagonal", i, j, m[i][j])
			}
		}
		if d := math.Abs(real(m[i][i])); d < 0.5 || d >= 1.5 {
			t.Fatalf("|diag[%d]| = %v, want in [0.5, 1.5)", i, d)
		}
	}
}

func TestUpperTriangularReproducible(t *testing.T) {
	a := UpperTriangular(42, 4, 1)
	b := UpperTriangular(42, 4, 1)
	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				t.Fatalf("non-deterministic at (%d,%d)", i, j)
			}
		}
	}
}

func TestDiagonal(t *testing.T) {
	m := [][]complex128{{1 + 2i, 3}, {0, -4 + 1i}}
	d := Diagonal(m)
	if len(d) != 2 || d[0] != 1 || d[1] != -4 {
		t.Fatalf("Diagonal = %v, want [1 -4]", d)
	}
}

func TestRandomDense(t *testing.T) {
	m, err := RandomDense(3, 4)
	if err != nil {
		t.Fatal(err)
	}
	if m.Rows() != 4 || m.Cols() != 4 {
		t.Fatalf("shape = %dx%d, want 4x4", m.Rows(), m.Cols())
	}
	v, err := m.At(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if v < 3 || v >= 5 {
		t.Fatalf("diag = %v, want in [3, 5)", v)
	}
	if _, err := RandomDense(1, 0); err == nil {
		t.Fatal("expected error for n=0")
	}
}
