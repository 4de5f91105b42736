package day02

import (
	"testing"

	"github.com/SebastiaanZ/aoc-2020/internal/solve"
)

const exampleInput = "1-3 a: abcde\n1-3 b: cdefg\n2-9 c: ccccccccc\n"

func TestPartOne(t *testing.T) {
	c := solve.NewContext(2, exampleInput)
	got, err := solver{}.PartOne(c)
	if err != nil {
		t.Fatalf("PartOne() error = %v", err)
	}
	if n, ok := got.Int64(); !ok || n != 2 {
		t.Fatalf("PartOne() = %s, want 2", got.Display())
	}
}

func TestPartTwo(t *testing.T) {
	c := solve.NewContext(2, exampleInput)
	if _, err := (solver{}).PartOne(c); err != nil {
		t.Fatalf("PartOne() error = %v", err)
	}
	got, err := solver{}.PartTwo(c)
	if err != nil {
		t.Fatalf("PartTwo() error = %v", err)
	}
	if n, ok := got.Int64(); !ok || n != 1 {
		t.Fatalf("PartTwo() = %s, want 1", got.Display())
	}
}

func TestPartTwoWithoutPartOne(t *testing.T) {
	c := solve.NewContext(2, exampleInput)
	got, err := solver{}.PartTwo(c)
	if err != nil {
		t.Fatalf("PartTwo() error = %v", err)
	}
	if !got.IsNull() {
		t.Fatalf("PartTwo() = %s, want none before PartOne runs", got.Display())
	}
}

func TestMalformedLinesAreSkipped(t *testing.T) {
	c := solve.NewContext(2, "garbage line\n1-3 a: abcde\n")
	got, err := solver{}.PartOne(c)
	if err != nil {
		t.Fatalf("PartOne() error = %v", err)
	}
	if n, ok := got.Int64(); !ok || n != 1 {
		t.Fatalf("PartOne() = %s, want 1", got.Display())
	}
}
