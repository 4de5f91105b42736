package ui

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// RunReport is the fixed-format summary block printed after a run.
type RunReport struct {
	Day       int
	AnswerOne string
	AnswerTwo string
	StatusOne string
	StatusTwo string
	Elapsed   time.Duration
	Cached    bool
}

func statusColor(status string) string {
	switch status {
	case "correct":
		return FgGreen
	case "wrong", "failed":
		return FgRed
	case "pending":
		return FgYellow
	default:
		return ""
	}
}

func renderStatus(status string) string {
	if code := statusColor(status); code != "" {
		return Color(status, code)
	}
	return status
}

// Render writes the summary block to w.
func (r RunReport) Render(w io.Writer) {
	title := fmt.Sprintf("Advent of Code — Solutions for day %d", r.Day)
	separator := strings.Repeat("—", len([]rune(title)))

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Part one: %s (%s)\n", r.AnswerOne, renderStatus(r.StatusOne))
	fmt.Fprintf(w, "Part two: %s (%s)\n", r.AnswerTwo, renderStatus(r.StatusTwo))
	fmt.Fprintln(w, separator)
	if r.Cached {
		fmt.Fprintln(w, "Running time: cached solution")
	} else {
		fmt.Fprintf(w, "Running time: %.6fs\n", r.Elapsed.Seconds())
	}
}

// BenchResult holds the averaged timing of one solving function.
type BenchResult struct {
	Name    string
	Runs    int
	Average time.Duration
}

// BenchReport is the summary block printed after a timed run.
type BenchReport struct {
	Day     int
	Results []BenchResult
}

// Render writes the timing block to w.
func (r BenchReport) Render(w io.Writer) {
	title := fmt.Sprintf("Advent of Code — Runtimes for day %d", r.Day)
	separator := strings.Repeat("—", len([]rune(title)))

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, separator)

	var combined time.Duration
	for _, res := range r.Results {
		combined += res.Average
		fmt.Fprintf(w, "%-13s %.6fs avg in %d runs\n", res.Name+":", res.Average.Seconds(), res.Runs)
	}
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Combined avg runtime: %.6fs\n", combined.Seconds())
}
