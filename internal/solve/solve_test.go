package solve

import (
	"testing"

	"github.com/SebastiaanZ/aoc-2020/internal/cache"
)

type fakeSolver struct{}

func (fakeSolver) PartOne(c *Context) (cache.Value, error) { return cache.Int(1), nil }
func (fakeSolver) PartTwo(c *Context) (cache.Value, error) { return cache.Null(), nil }

func TestRegisterAndLookup(t *testing.T) {
	Register(24, fakeSolver{})
	s, ok := Lookup(24)
	if !ok {
		t.Fatalf("Lookup(24) missed after Register")
	}
	if _, isSolver := s.(fakeSolver); !isSolver {
		t.Fatalf("Lookup(24) = %T", s)
	}
}

func TestRegisterPanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Register should panic on duplicate day")
		}
	}()
	Register(23, fakeSolver{})
	Register(23, fakeSolver{})
}

func TestRegisterPanicsOnBadDay(t *testing.T) {
	for _, day := range []int{0, 26, -3} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("Register(%d) should panic", day)
				}
			}()
			Register(day, fakeSolver{})
		}()
	}
}
