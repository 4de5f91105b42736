package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Registry hands out stores keyed by backing file path and guarantees at
// most one live Store per path. Two independently buffered in-memory copies
// of the same file would silently clobber each other's writes; routing every
// lookup through one registry owned by the command layer prevents that.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
}

func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]*Store)}
}

// ForFile returns the store for the given backing file, creating both the
// store and an empty `{}` file on first use. Paths are resolved to their
// absolute form, so relative and absolute spellings share one store.
func (r *Registry) ForFile(path string) (*Store, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve cache path %q: %w", path, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.stores[abs]; ok {
		return s, nil
	}

	if _, err := os.Stat(abs); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory for %q: %w", abs, err)
		}
		if err := os.WriteFile(abs, []byte("{}\n"), 0o644); err != nil {
			return nil, fmt.Errorf("create cache file %q: %w", abs, err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat cache file %q: %w", abs, err)
	}

	s := &Store{path: abs}
	r.stores[abs] = s
	return s, nil
}

// ForDir returns the store for the answer cache file inside a solution
// directory.
func (r *Registry) ForDir(dir string) (*Store, error) {
	return r.ForFile(filepath.Join(dir, FileName))
}
