package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/SebastiaanZ/aoc-2020/internal/apperr"
)

const solutionFileName = "solution.go"

const solutionTemplate = `package day%02d

import (
	"github.com/SebastiaanZ/aoc-2020/internal/cache"
	"github.com/SebastiaanZ/aoc-2020/internal/solve"
)

func init() { solve.Register(%d, solver{}) }

type solver struct{}

// PartOne returns the solution for part one of this day.
func (solver) PartOne(c *solve.Context) (cache.Value, error) {
	return cache.Null(), nil
}

// PartTwo returns the solution for part two of this day.
func (solver) PartTwo(c *solve.Context) (cache.Value, error) {
	return cache.Null(), nil
}
`

func inputFileName(day int) string { return fmt.Sprintf("day%02d.txt", day) }

func dayDirName(day int) string { return fmt.Sprintf("day%02d", day) }

// ensureSolutionDir returns the solution directory for a day, scaffolding a
// fresh one from the template when it does not exist yet. A directory that
// exists but lacks the solution source is reported as an invalid layout
// rather than silently overwritten.
func ensureSolutionDir(day int, solutionsDir string) (dir string, created bool, err error) {
	dir = filepath.Join(solutionsDir, dayDirName(day))
	src := filepath.Join(dir, solutionFileName)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", false, fmt.Errorf("create solution dir %q: %w", dir, err)
		}
		scaffold := fmt.Sprintf(solutionTemplate, day, day)
		if err := os.WriteFile(src, []byte(scaffold), 0o644); err != nil {
			return "", false, fmt.Errorf("write solution scaffold %q: %w", src, err)
		}
		created = true
	} else if err != nil {
		return "", false, fmt.Errorf("stat solution dir %q: %w", dir, err)
	}

	if _, err := os.Stat(src); err != nil {
		return "", false, fmt.Errorf("%w: %q has no %s", apperr.ErrInvalidLayout, dir, solutionFileName)
	}
	return dir, created, nil
}
