package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/SebastiaanZ/aoc-2020/internal/apperr"
)

func TestBenchMeasuresAllSolvingFunctions(t *testing.T) {
	if testing.Short() {
		t.Skip("runs real benchmarks")
	}
	opts, _ := testOptions(t)
	writeInput(t, opts, 21, "some input\n")
	writeSolution(t, opts, 21, "package day21\n")

	p, err := New(context.Background(), 21, opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	report, err := p.Bench()
	if err != nil {
		t.Fatalf("Bench() error = %v", err)
	}
	if report.Day != 21 {
		t.Fatalf("report.Day = %d", report.Day)
	}

	want := []string{"Data parsing", "Part 1", "Part 2"}
	if len(report.Results) != len(want) {
		t.Fatalf("results = %v, want %d entries", report.Results, len(want))
	}
	for i, name := range want {
		res := report.Results[i]
		if res.Name != name {
			t.Fatalf("results[%d].Name = %q, want %q", i, res.Name, name)
		}
		if res.Runs < 1 {
			t.Fatalf("results[%d].Runs = %d", i, res.Runs)
		}
	}
}

func TestBenchSkipsMissingPrepare(t *testing.T) {
	if testing.Short() {
		t.Skip("runs real benchmarks")
	}
	opts, _ := testOptions(t)
	writeInput(t, opts, 20, "some input\n")
	writeSolution(t, opts, 20, "package day20\n")

	p, err := New(context.Background(), 20, opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	report, err := p.Bench()
	if err != nil {
		t.Fatalf("Bench() error = %v", err)
	}
	if len(report.Results) != 2 || report.Results[0].Name != "Part 1" {
		t.Fatalf("results = %v, want only the two parts", report.Results)
	}
}

func TestBenchWithoutRegisteredSolver(t *testing.T) {
	opts, _ := testOptions(t)
	writeInput(t, opts, 22, "some input\n")
	writeSolution(t, opts, 22, "package day22\n")

	p, err := New(context.Background(), 22, opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := p.Bench(); !errors.Is(err, apperr.ErrInvalidLayout) {
		t.Fatalf("Bench() error = %v, want ErrInvalidLayout", err)
	}
}
