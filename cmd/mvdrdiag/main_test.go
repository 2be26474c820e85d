package main

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/cwbudde/algo-mvdr/dsp/diagrecip"
	"github.com/cwbudde/algo-mvdr/dsp/triangular"
)

func TestRunPrintsOneRowPerDiagonal(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cfg := config{n: 5, frames: 3, seed: 9, buffer: 1, verbose: true}
	if err := run(&stdout, &stderr, cfg); err != nil {
		t.Fatalf("run: %v\nstderr:\n%s", err, stderr.String())
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	// Header and separator plus n rows per frame.
	if want := 2 + cfg.n*cfg.frames; len(lines) != want {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), want, stdout.String())
	}
	if !strings.HasPrefix(lines[0], "Frame") {
		t.Fatalf("header = %q", lines[0])
	}
	if got := strings.Count(stderr.String(), "frame checked"); got != cfg.frames {
		t.Fatalf("frame checked records = %d, want %d", got, cfg.frames)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(&stdout, &stderr, config{n: 0, frames: 1}); err == nil {
		t.Fatal("expected error for n=0")
	}
	if err := run(&stdout, &stderr, config{n: 2, frames: 0}); err == nil {
		t.Fatal("expected error for frames=0")
	}
}

func TestMakeFrame(t *testing.T) {
	f, err := makeFrame(rand.New(rand.NewSource(3)), 6)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.packed) != triangular.PackedLen(6) || len(f.diag) != 6 {
		t.Fatalf("packed=%d diag=%d", len(f.packed), len(f.diag))
	}

	recip, err := diagrecip.Reciprocals(f.packed, 6)
	if err != nil {
		t.Fatal(err)
	}
	res, err := diagrecip.Residual(f.diag, recip)
	if err != nil {
		t.Fatal(err)
	}
	if res > 1e-12 {
		t.Fatalf("residual = %v", res)
	}
}
