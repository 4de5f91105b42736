// Package solve defines the capability interface daily solutions implement
// and the identifier-keyed table they register themselves in at startup.
package solve

import (
	"fmt"
	"sync"

	"github.com/SebastiaanZ/aoc-2020/internal/cache"
)

// Solver is one day's solution. A null answer means the part is not solved
// yet and is a legal result.
type Solver interface {
	PartOne(c *Context) (cache.Value, error)
	PartTwo(c *Context) (cache.Value, error)
}

// Preparer is implemented by solvers that want a parsing pass before the
// part functions run. Prepare communicates with the parts through the
// context stash only.
type Preparer interface {
	Prepare(c *Context) error
}

var (
	mu      sync.RWMutex
	solvers = make(map[int]Solver)
)

// Register records the solver for a day. It is meant to be called from the
// init function of a solution package and panics on misconfiguration, like
// database/sql driver registration does.
func Register(day int, s Solver) {
	mu.Lock()
	defer mu.Unlock()
	if day < 1 || day > 25 {
		panic(fmt.Sprintf("solve: register day %d out of range", day))
	}
	if s == nil {
		panic(fmt.Sprintf("solve: register nil solver for day %d", day))
	}
	if _, dup := solvers[day]; dup {
		panic(fmt.Sprintf("solve: solver for day %d registered twice", day))
	}
	solvers[day] = s
}

// Lookup returns the registered solver for a day.
func Lookup(day int) (Solver, bool) {
	mu.RLock()
	defer mu.RUnlock()
	s, ok := solvers[day]
	return s, ok
}
