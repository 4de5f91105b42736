package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryMaterializesEmptyDocument(t *testing.T) {
	dir := t.TempDir()
	s, err := NewRegistry().ForDir(dir)
	require.NoError(t, err)

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(raw))
}

func TestRegistryReturnsSameInstancePerPath(t *testing.T) {
	dir := t.TempDir()
	r := NewRegistry()

	a, err := r.ForDir(dir)
	require.NoError(t, err)
	b, err := r.ForDir(dir)
	require.NoError(t, err)
	assert.Same(t, a, b)

	// Different spellings of the same path share one store.
	c, err := r.ForFile(filepath.Join(dir, ".", FileName))
	require.NoError(t, err)
	assert.Same(t, a, c)
}

func TestRegistryWritesVisibleThroughSharedInstance(t *testing.T) {
	dir := t.TempDir()
	r := NewRegistry()

	a, err := r.ForDir(dir)
	require.NoError(t, err)
	b, err := r.ForDir(dir)
	require.NoError(t, err)

	require.NoError(t, a.Open())
	defer a.Close(false)
	require.NoError(t, a.Set(Int(7), "x"))

	got, err := b.Get("x")
	require.NoError(t, err)
	assert.True(t, Int(7).Equal(got), "write via one handle must be visible via the other")
}

func TestRegistryKeepsExistingDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"kept": 1}`), 0o644))

	s, err := NewRegistry().ForFile(path)
	require.NoError(t, err)
	require.NoError(t, s.Open())
	defer s.Close(false)

	got, err := s.Get("kept")
	require.NoError(t, err)
	assert.True(t, Int(1).Equal(got))
}
