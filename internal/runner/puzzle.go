// Package runner orchestrates one puzzle invocation: it locates input and
// solution, fingerprints both, decides between cached and freshly computed
// answers, and optionally drives the submission protocol.
package runner

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/pkg/browser"

	"github.com/SebastiaanZ/aoc-2020/internal/apperr"
	"github.com/SebastiaanZ/aoc-2020/internal/cache"
	"github.com/SebastiaanZ/aoc-2020/internal/client"
	"github.com/SebastiaanZ/aoc-2020/internal/logging"
	"github.com/SebastiaanZ/aoc-2020/internal/solve"
	"github.com/SebastiaanZ/aoc-2020/internal/ui"
)

var log = &logging.Logger{PrefixText: "Run:", PrefixColor: ui.FgGreen}

// SetLogger sets an optional destination for orchestration logs.
func SetLogger(w io.Writer) { log.SetWriter(w) }

// est is the event clock. The puzzle calendar uses a fixed UTC-5 offset,
// not local US/Eastern DST rules.
var est = time.FixedZone("EST", -5*60*60)

// Options wires a Puzzle to its collaborators. Zero values select sensible
// defaults for everything except Registry and Client, which the command
// layer owns and passes in explicitly.
type Options struct {
	Registry *cache.Registry
	Client   *client.Client

	InputsDir    string // default "inputs"
	SolutionsDir string // default "internal/solutions"
	Year         int    // default 2020

	Out      io.Writer                 // report destination, default os.Stdout
	Now      func() time.Time          // test seam, default time.Now
	Sleep    func(time.Duration)       // test seam, default time.Sleep
	OpenPage func(url string) error    // test seam, default browser.OpenURL
}

func (o *Options) fill() {
	if o.Registry == nil {
		o.Registry = cache.NewRegistry()
	}
	if o.InputsDir == "" {
		o.InputsDir = "inputs"
	}
	if o.SolutionsDir == "" {
		o.SolutionsDir = filepath.Join("internal", "solutions")
	}
	if o.Year == 0 {
		o.Year = 2020
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Sleep == nil {
		o.Sleep = time.Sleep
	}
	if o.OpenPage == nil {
		o.OpenPage = browser.OpenURL
	}
}

// Puzzle is one day's puzzle with its input, solution location and answer
// cache resolved.
type Puzzle struct {
	Day     int
	Context *solve.Context

	opts         Options
	solutionDir  string
	solutionFile string
	store        *cache.Store
}

// New builds the puzzle for a day, downloading the input and scaffolding the
// solution directory when either is missing.
func New(ctx context.Context, day int, opts Options) (*Puzzle, error) {
	if day < 1 || day > 25 {
		return nil, apperr.Userf("day %d is not a valid puzzle day (1-25)", day)
	}
	opts.fill()

	input, err := loadInput(ctx, day, opts)
	if err != nil {
		return nil, err
	}

	solutionDir, created, err := ensureSolutionDir(day, opts.SolutionsDir)
	if err != nil {
		return nil, err
	}
	if created {
		log.Logf(strconv.Itoa(day), "created solution scaffold in %q", solutionDir)
	}

	store, err := opts.Registry.ForDir(solutionDir)
	if err != nil {
		return nil, err
	}

	return &Puzzle{
		Day:          day,
		Context:      solve.NewContext(day, input),
		opts:         opts,
		solutionDir:  solutionDir,
		solutionFile: filepath.Join(solutionDir, solutionFileName),
		store:        store,
	}, nil
}

var dayDirRe = regexp.MustCompile(`^day(\d{1,2})$`)

// FromPath builds the puzzle whose solution lives at path, which may be the
// day directory itself or any file inside it.
func FromPath(ctx context.Context, path string, opts Options) (*Puzzle, error) {
	dir := filepath.Clean(path)
	if filepath.Ext(dir) != "" {
		dir = filepath.Dir(dir)
	}
	m := dayDirRe.FindStringSubmatch(filepath.Base(dir))
	if m == nil {
		return nil, apperr.Userf("cannot derive a puzzle day from path %q", path)
	}
	day, _ := strconv.Atoi(m[1])
	return New(ctx, day, opts)
}

// FromDate builds today's puzzle. Only valid while the event is running.
func FromDate(ctx context.Context, opts Options) (*Puzzle, error) {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	today := now().In(est)
	if today.Month() != time.December || today.Day() > 25 {
		return nil, apperr.User("selecting the puzzle by date only works during the event (Dec 1-25)")
	}
	return New(ctx, today.Day(), opts)
}

// Fingerprint combines the hashes of the puzzle input and the solution
// source. It changes whenever either changes, invalidating cached answers.
func (p *Puzzle) Fingerprint() (string, error) {
	src, err := os.ReadFile(p.solutionFile)
	if err != nil {
		return "", fmt.Errorf("read solution source: %w", err)
	}
	inputSum := sha1.Sum([]byte(p.Context.Input))
	srcSum := sha1.Sum(src)
	combined := sha1.Sum(append(inputSum[:], srcSum[:]...))
	return hex.EncodeToString(combined[:]), nil
}

// CacheDocument returns a snapshot of the day's full answer-cache document,
// for inspection commands.
func (p *Puzzle) CacheDocument() (cache.Value, error) {
	var doc cache.Value
	err := p.store.Update(func(s *cache.Store) error {
		v, err := s.Document()
		doc = v
		return err
	})
	return doc, err
}

// loadInput returns the stored input for a day, downloading and persisting
// it on first use. Inputs are never re-fetched once on disk.
func loadInput(ctx context.Context, day int, opts Options) (string, error) {
	path := filepath.Join(opts.InputsDir, inputFileName(day))
	if raw, err := os.ReadFile(path); err == nil {
		return string(raw), nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("read input %q: %w", path, err)
	}

	d := strconv.Itoa(day)
	unlock := time.Date(opts.Year, time.December, day, 0, 0, 0, 0, est)
	if opts.Now().In(est).Before(unlock) {
		return "", fmt.Errorf("%w: day %d unlocks at %s", apperr.ErrNotYetAvailable, day, unlock)
	}

	if opts.Client == nil {
		return "", apperr.ErrNoSession
	}
	log.Logf(d, "no stored input, downloading")
	input, err := opts.Client.FetchInput(ctx, day)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(opts.InputsDir, 0o755); err != nil {
		return "", fmt.Errorf("create inputs dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(input), 0o644); err != nil {
		return "", fmt.Errorf("store input %q: %w", path, err)
	}

	// A fresh input means a fresh puzzle; open it.
	if err := opts.OpenPage(opts.Client.PuzzleURL(day)); err != nil {
		log.Logf(d, "could not open puzzle page: %v", err)
	}
	return input, nil
}
