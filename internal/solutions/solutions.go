// Package solutions registers the daily solvers. A freshly scaffolded day
// only takes part in runs once its package is blank-imported here.
package solutions

import (
	_ "github.com/SebastiaanZ/aoc-2020/internal/solutions/day01"
	_ "github.com/SebastiaanZ/aoc-2020/internal/solutions/day02"
)
