package solve

import (
	"fmt"
	"strconv"
	"strings"
)

// Context carries one day's raw puzzle input together with lazily built
// views of it, plus a scratch area solutions use to pass intermediate values
// between Prepare, PartOne and PartTwo within a single run.
type Context struct {
	Day   int
	Input string

	lines []string
	ints  []int64

	stash map[string]any
}

func NewContext(day int, input string) *Context {
	return &Context{Day: day, Input: input, stash: make(map[string]any)}
}

// Lines returns the input split into lines, without a trailing empty line.
// The split happens once; the slice is shared between callers.
func (c *Context) Lines() []string {
	if c.lines == nil {
		trimmed := strings.TrimRight(c.Input, "\n")
		if trimmed == "" {
			c.lines = []string{}
		} else {
			c.lines = strings.Split(trimmed, "\n")
		}
	}
	return c.lines
}

// Ints returns the input lines parsed as integers.
func (c *Context) Ints() ([]int64, error) {
	if c.ints == nil {
		lines := c.Lines()
		ints := make([]int64, len(lines))
		for i, line := range lines {
			n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("input line %d is not an integer: %q", i+1, line)
			}
			ints[i] = n
		}
		c.ints = ints
	}
	return c.ints, nil
}

// Stash stores an intermediate value for later parts of the same run.
func (c *Context) Stash(key string, value any) {
	c.stash[key] = value
}

// Stashed returns a value stored earlier in this run.
func (c *Context) Stashed(key string) (any, bool) {
	v, ok := c.stash[key]
	return v, ok
}
