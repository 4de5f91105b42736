package day01

import (
	"github.com/SebastiaanZ/aoc-2020/internal/cache"
	"github.com/SebastiaanZ/aoc-2020/internal/solve"
)

func init() { solve.Register(1, solver{}) }

type solver struct{}

const target = 2020

// PartOne finds the two entries that sum to 2020 and returns their product.
// A set lookup for the complement keeps this O(N); the set is stashed for
// part two.
func (solver) PartOne(c *solve.Context) (cache.Value, error) {
	numbers, err := c.Ints()
	if err != nil {
		return cache.Null(), err
	}
	seen := make(map[int64]struct{}, len(numbers))
	for _, n := range numbers {
		seen[n] = struct{}{}
	}
	c.Stash("set", seen)

	for n := range seen {
		if _, ok := seen[target-n]; ok {
			return cache.Int(n * (target - n)), nil
		}
	}
	return cache.Null(), nil
}

// PartTwo finds the three entries that sum to 2020 and returns their
// product, checking each pair's required third number against the set from
// part one.
func (solver) PartTwo(c *solve.Context) (cache.Value, error) {
	stashed, ok := c.Stashed("set")
	if !ok {
		return cache.Null(), nil
	}
	seen := stashed.(map[int64]struct{})

	numbers := make([]int64, 0, len(seen))
	for n := range seen {
		numbers = append(numbers, n)
	}
	for i, a := range numbers {
		for _, b := range numbers[i+1:] {
			third := target - a - b
			if third == a || third == b {
				continue
			}
			if _, ok := seen[third]; ok {
				return cache.Int(a * b * third), nil
			}
		}
	}
	return cache.Null(), nil
}
