package jsonstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todolist/internal/model"
)

func TestLoadMissingIsEmpty(t *testing.T) {
	s := New(t.TempDir())

	todos, err := s.Load()
	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	in := []model.Todo{
		{ID: 1, Text: "A"},
		{ID: 2, Text: "B", Completed: true, DueDate: "2026-10-19"},
	}
	require.NoError(t, s.Save(in))

	// a fresh handle must not depend on the diskv cache
	got, err := New(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, in, got)

	raw, err := os.ReadFile(filepath.Join(dir, SnapshotKey))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"dueDate": "2026-10-19"`)
}

func TestSaveEmpty(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.Save([]model.Todo{{ID: 1, Text: "A"}}))
	require.NoError(t, s.Save(nil))

	got, err := New(dir).Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadMalformedKeepsBackup(t *testing.T) {
	dir := t.TempDir()
	garbage := []byte(`[{"id": "nope"}]`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, SnapshotKey), garbage, 0o644))

	s := New(dir)
	_, err := s.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrMalformedSnapshot)

	b, ok := s.Backup()
	require.True(t, ok)
	assert.Equal(t, garbage, b)
}

func TestLaterCorruptionKeepsEarlierBackup(t *testing.T) {
	dir := t.TempDir()
	first := []byte(`{first`)
	second := []byte(`{second`)
	// each run of the program opens a fresh handle
	open := func() *Store {
		s := New(dir)
		s.now = func() time.Time { return time.UnixMilli(1760870000000) }
		return s
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, SnapshotKey), first, 0o644))
	_, err := open().Load()
	require.ErrorIs(t, err, model.ErrMalformedSnapshot)
	assert.Contains(t, err.Error(), BackupKey)

	// loading the same bytes again writes nothing new
	_, err = open().Load()
	require.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, SnapshotKey), second, 0o644))
	_, err = open().Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), BackupKey+".1760870000000")

	b, ok := open().Backup()
	require.True(t, ok)
	assert.Equal(t, first, b)

	later, err := os.ReadFile(filepath.Join(dir, BackupKey+".1760870000000"))
	require.NoError(t, err)
	assert.Equal(t, second, later)

	matches, err := filepath.Glob(filepath.Join(dir, BackupKey+"*"))
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}
