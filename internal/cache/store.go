// Package cache implements the answer cache: a path-keyed JSON document
// store with explicit open/commit/close semantics. One Store exists per
// backing file (enforced by Registry), the whole document lives in memory
// while the store is open, and commit rewrites the file in full.
package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/SebastiaanZ/aoc-2020/internal/logging"
	"github.com/SebastiaanZ/aoc-2020/internal/ui"
)

// FileName is the name of the answer cache file inside a solution directory.
const FileName = "answer_cache.json"

var (
	// ErrClosed is returned for any operation on a store that is not open.
	ErrClosed = errors.New("i/o operation on closed cache")
	// ErrAlreadyOpen is returned when Open is called twice without Close.
	ErrAlreadyOpen = errors.New("cache is already open")
)

// debug logging is opt-in, warnings are on by default.
var (
	log  = &logging.Logger{PrefixText: "Cache:", PrefixColor: ui.FgCyan, OmitDay: true}
	warn = &logging.Logger{Writer: os.Stderr, PrefixText: "Warning:", PrefixColor: ui.FgYellow, OmitDay: true}
)

// SetLogger sets an optional destination for cache debug logs.
func SetLogger(w io.Writer) { log.SetWriter(w) }

// SetWarnLogger redirects cache warnings (stale file, discarded changes).
func SetWarnLogger(w io.Writer) { warn.SetWriter(w) }

// Store is an answer cache bound to one backing file. Obtain instances
// through a Registry so that a file never has two live in-memory copies
// within the process.
type Store struct {
	path string

	data       map[string]Value // nil while closed
	dirty      bool
	openedHash string
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// IsOpen reports whether the store is currently open.
func (s *Store) IsOpen() bool { return s.data != nil }

// Open reads and parses the backing file and records a hash of its raw
// content for staleness detection at commit time.
func (s *Store) Open() error {
	if s.data != nil {
		return ErrAlreadyOpen
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("open cache %q: %w", s.path, err)
	}
	var doc Value
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse cache %q: %w", s.path, err)
	}
	fields, ok := doc.Fields()
	if !ok {
		return fmt.Errorf("parse cache %q: document is not a JSON object", s.path)
	}

	s.data = fields
	s.openedHash = contentHash(raw)
	s.dirty = false
	return nil
}

// Close closes the store, optionally committing first. Uncommitted changes
// are discarded with a warning.
func (s *Store) Close(commit bool) error {
	if s.data == nil {
		return ErrClosed
	}

	if commit {
		if err := s.Commit(); err != nil {
			return err
		}
	}
	if s.dirty {
		warn.Logf("", "closing cache %q with uncommitted changes; changes are lost", s.path)
		s.dirty = false
	}

	s.data = nil
	s.openedHash = ""
	return nil
}

// Document returns the whole in-memory document as an object value.
func (s *Store) Document() (Value, error) {
	if s.data == nil {
		return Value{}, ErrClosed
	}
	return Object(s.data), nil
}

// Get returns the value at the nested key path, or Null when the final key
// is absent. Missing or non-object intermediate levels read as empty.
func (s *Store) Get(path ...string) (Value, error) {
	return s.GetDefault(Null(), path...)
}

// GetDefault is Get with an explicit fallback value.
func (s *Store) GetDefault(def Value, path ...string) (Value, error) {
	if s.data == nil {
		return Value{}, ErrClosed
	}
	if len(path) == 0 {
		return Value{}, errors.New("cache: empty key path")
	}

	current := s.data
	for _, key := range path[:len(path)-1] {
		child, ok := current[key]
		if !ok {
			return def, nil
		}
		fields, ok := child.Fields()
		if !ok {
			return def, nil
		}
		current = fields
	}

	value, ok := current[path[len(path)-1]]
	if !ok {
		return def, nil
	}
	return value, nil
}

// Set assigns value at the nested key path, creating intermediate objects as
// needed, and marks the store dirty. Nothing is written to disk until Commit.
func (s *Store) Set(value Value, path ...string) error {
	if s.data == nil {
		return ErrClosed
	}
	if len(path) == 0 {
		return errors.New("cache: empty key path")
	}

	current := s.data
	for _, key := range path[:len(path)-1] {
		fields, ok := current[key].Fields()
		if !ok {
			fields = make(map[string]Value)
			current[key] = Object(fields)
		}
		current = fields
	}

	current[path[len(path)-1]] = value
	s.dirty = true
	return nil
}

// Commit writes the in-memory document back to the backing file. It is a
// no-op when there are no changes. When the file changed on disk since Open,
// a stale-write warning is emitted and the write proceeds (last writer wins).
func (s *Store) Commit() error {
	if s.data == nil {
		return ErrClosed
	}
	if !s.dirty {
		log.Logf("", "commit called on %q, but no changes to commit", s.path)
		return nil
	}

	if onDisk, err := os.ReadFile(s.path); err == nil && contentHash(onDisk) != s.openedHash {
		warn.Logf("", "cache file %q changed on disk after opening; changes will be overwritten", s.path)
	}

	raw, err := json.Marshal(Object(s.data))
	if err != nil {
		return fmt.Errorf("encode cache %q: %w", s.path, err)
	}
	raw = append(raw, '\n')

	// Full-file rewrite through a temp file so a crash mid-write can never
	// leave a truncated document behind.
	tmp := fmt.Sprintf("%s.%s.tmp", s.path, uuid.NewString())
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write cache %q: %w", s.path, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write cache %q: %w", s.path, err)
	}

	s.openedHash = contentHash(raw)
	s.dirty = false
	return nil
}

// Update opens the store, runs fn, and closes it again. On success pending
// changes are committed; when fn returns an error they are deliberately
// discarded so a failed run can never overwrite a good cached answer.
func (s *Store) Update(fn func(*Store) error) error {
	if err := s.Open(); err != nil {
		return err
	}
	if err := fn(s); err != nil {
		_ = s.Close(false)
		return err
	}
	return s.Close(true)
}

func contentHash(raw []byte) string {
	sum := sha1.Sum(raw)
	return hex.EncodeToString(sum[:])
}
