package day02

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/SebastiaanZ/aoc-2020/internal/cache"
	"github.com/SebastiaanZ/aoc-2020/internal/solve"
)

func init() { solve.Register(2, solver{}) }

type solver struct{}

var policyRe = regexp.MustCompile(`(?m)^(\d+)-(\d+) ([a-z]): ([a-z]+)$`)

// PartOne validates the passwords for both policies in one pass; the part
// two count is stashed so PartTwo can simply return it.
func (solver) PartOne(c *solve.Context) (cache.Value, error) {
	var answerOne, answerTwo int64
	for _, m := range policyRe.FindAllStringSubmatch(c.Input, -1) {
		low, _ := strconv.Atoi(m[1])
		high, _ := strconv.Atoi(m[2])
		char, pw := m[3], m[4]

		count := strings.Count(pw, char)
		if low <= count && count <= high {
			answerOne++
		}
		if (pw[low-1] == char[0]) != (pw[high-1] == char[0]) {
			answerTwo++
		}
	}

	c.Stash("answer_two", answerTwo)
	return cache.Int(answerOne), nil
}

// PartTwo returns the count computed during PartOne.
func (solver) PartTwo(c *solve.Context) (cache.Value, error) {
	stashed, ok := c.Stashed("answer_two")
	if !ok {
		return cache.Null(), nil
	}
	return cache.Int(stashed.(int64)), nil
}
