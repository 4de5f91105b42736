package runner

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SebastiaanZ/aoc-2020/internal/cache"
	"github.com/SebastiaanZ/aoc-2020/internal/client"
	"github.com/SebastiaanZ/aoc-2020/internal/solve"
	"github.com/SebastiaanZ/aoc-2020/internal/ui"
)

// Delegating stub solvers. Day 20 has no prepare step, day 21 has one.
// Tests point the function variables at their own behavior.
var (
	stubPrep func(*solve.Context) error
	stubOne  func(*solve.Context) (cache.Value, error)
	stubTwo  func(*solve.Context) (cache.Value, error)
)

type stubSolver struct{}

func (stubSolver) PartOne(c *solve.Context) (cache.Value, error) { return stubOne(c) }
func (stubSolver) PartTwo(c *solve.Context) (cache.Value, error) { return stubTwo(c) }

type stubPrepSolver struct{ stubSolver }

func (stubPrepSolver) Prepare(c *solve.Context) error { return stubPrep(c) }

func init() {
	solve.Register(20, stubSolver{})
	solve.Register(21, stubPrepSolver{})
}

func resetStubs() {
	stubPrep = func(*solve.Context) error { return nil }
	stubOne = func(*solve.Context) (cache.Value, error) { return cache.Null(), nil }
	stubTwo = func(*solve.Context) (cache.Value, error) { return cache.Null(), nil }
}

// testEnv records the side effects of a run.
type testEnv struct {
	out    bytes.Buffer
	sleeps []time.Duration
	opened []string
}

func testOptions(t *testing.T) (Options, *testEnv) {
	t.Helper()
	ui.Init(true) // stable, uncolored assertions
	resetStubs()

	tmp := t.TempDir()
	env := &testEnv{}
	opts := Options{
		Registry:     cache.NewRegistry(),
		InputsDir:    filepath.Join(tmp, "inputs"),
		SolutionsDir: filepath.Join(tmp, "solutions"),
		Out:          &env.out,
		Sleep:        func(d time.Duration) { env.sleeps = append(env.sleeps, d) },
		OpenPage:     func(u string) error { env.opened = append(env.opened, u); return nil },
	}
	return opts, env
}

func writeInput(t *testing.T, opts Options, day int, input string) {
	t.Helper()
	if err := os.MkdirAll(opts.InputsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(opts.InputsDir, fmt.Sprintf("day%02d.txt", day))
	if err := os.WriteFile(path, []byte(input), 0o644); err != nil {
		t.Fatal(err)
	}
}

func writeSolution(t *testing.T, opts Options, day int, source string) {
	t.Helper()
	dir := filepath.Join(opts.SolutionsDir, fmt.Sprintf("day%02d", day))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "solution.go"), []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}
}

func responsePage(message string) string {
	return fmt.Sprintf(
		"<html><body><main><article><p>%s</p></article></main></body></html>", message,
	)
}

// answerServer serves canned submission responses in order and counts calls.
func answerServer(t *testing.T, messages ...string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := int(calls.Add(1))
		if n > len(messages) {
			t.Errorf("unexpected request #%d to %s", n, r.URL.Path)
			http.Error(w, "too many requests", http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, responsePage(messages[n-1]))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func testClient(srv *httptest.Server) *client.Client {
	return client.New(srv.URL, "test-session", 0)
}
