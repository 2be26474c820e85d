package triangular

import (
	"errors"
	"testing"
)

func TestPackedLen(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{-1, 0}, {0, 0}, {1, 1}, {2, 3}, {3, 6}, {4, 10}, {16, 136},
	}
	for _, tt := range tests {
		if got := PackedLen(tt.n); got != tt.want {
			t.Fatalf("PackedLen(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestOffsetMatchesIterator(t *testing.T) {
	for n := 1; n <= 9; n++ {
		for pos, ix := range Positions(n) {
			got, err := Offset(n, ix.Row, ix.Col)
			if err != nil {
				t.Fatalf("n=%d Offset%v: %v", n, ix, err)
			}
			if got != pos {
				t.Fatalf("n=%d Offset%v = %d, want %d", n, ix, got, pos)
			}
		}
	}
}

func TestOffsetOutOfRange(t *testing.T) {
	cases := []Index{{0, 1}, {2, 1}, {1, 4}, {4, 4}}
	for _, ix := range cases {
		if _, err := Offset(3, ix.Row, ix.Col); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("Offset(3, %v) err = %v, want ErrIndexOutOfRange", ix, err)
		}
	}
}

func TestDiagonalOffsets(t *testing.T) {
	got := DiagonalOffsets(3)
	want := []int{0, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("DiagonalOffsets(3) = %v, want %v", got, want)
		}
	}
	if DiagonalOffsets(0) != nil {
		t.Fatal("DiagonalOffsets(0) should be nil")
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	m := [][]complex128{
		{1 + 1i, 2, 3},
		{99, 4 + 2i, 5},
		{99, 99, 6},
	}

	packed, err := Pack(m)
	if err != nil {
		t.Fatal(err)
	}
	want := []complex128{1 + 1i, 2, 3, 4 + 2i, 5, 6}
	if len(packed) != len(want) {
		t.Fatalf("packed len = %d, want %d", len(packed), len(want))
	}
	for i := range want {
		if packed[i] != want[i] {
			t.Fatalf("packed[%d] = %v, want %v", i, packed[i], want[i])
		}
	}

	dense, err := Unpack(packed, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i := range dense {
		for j := range dense[i] {
			wantV := m[i][j]
			if j < i {
				wantV = 0
			}
			if dense[i][j] != wantV {
				t.Fatalf("dense[%d][%d] = %v, want %v", i, j, dense[i][j], wantV)
			}
		}
	}
}

func TestPackNotSquare(t *testing.T) {
	_, err := Pack([][]complex128{{1, 2}, {3}})
	if !errors.Is(err, ErrNotSquare) {
		t.Fatalf("err = %v, want ErrNotSquare", err)
	}
}

func TestPackEmpty(t *testing.T) {
	packed, err := Pack(nil)
	if err != nil || packed != nil {
		t.Fatalf("Pack(nil) = %v, %v; want nil, nil", packed, err)
	}
}

func TestUnpackLengthMismatch(t *testing.T) {
	if _, err := Unpack(make([]complex128, 5), 3); !errors.Is(err, ErrPackedLength) {
		t.Fatalf("err = %v, want ErrPackedLength", err)
	}
	if _, err := Unpack(nil, -1); !errors.Is(err, ErrPackedLength) {
		t.Fatalf("err = %v, want ErrPackedLength for n < 0", err)
	}
}
