package runner

import (
	"fmt"
	"testing"
	"time"

	"github.com/SebastiaanZ/aoc-2020/internal/apperr"
	"github.com/SebastiaanZ/aoc-2020/internal/cache"
	"github.com/SebastiaanZ/aoc-2020/internal/solve"
	"github.com/SebastiaanZ/aoc-2020/internal/ui"
)

// Bench measures the average running time of the day's prepare and part
// functions using testing.Benchmark, which picks the iteration count
// automatically. Answers and errors are discarded; this is purely a timing
// run.
func (p *Puzzle) Bench() (ui.BenchReport, error) {
	solver, ok := solve.Lookup(p.Day)
	if !ok {
		return ui.BenchReport{}, fmt.Errorf(
			"%w: no solver registered for day %d (missing blank import in internal/solutions?)",
			apperr.ErrInvalidLayout, p.Day,
		)
	}

	report := ui.BenchReport{Day: p.Day}

	if prep, ok := solver.(solve.Preparer); ok {
		r := testing.Benchmark(func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = prep.Prepare(p.Context)
			}
		})
		report.Results = append(report.Results, ui.BenchResult{
			Name: "Data parsing", Runs: r.N, Average: time.Duration(r.NsPerOp()),
		})
	}

	parts := []struct {
		name string
		fn   func(*solve.Context) (cache.Value, error)
	}{
		{"Part 1", solver.PartOne},
		{"Part 2", solver.PartTwo},
	}
	for _, part := range parts {
		fn := part.fn
		r := testing.Benchmark(func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = fn(p.Context)
			}
		})
		report.Results = append(report.Results, ui.BenchResult{
			Name: part.name, Runs: r.N, Average: time.Duration(r.NsPerOp()),
		})
	}
	return report, nil
}
