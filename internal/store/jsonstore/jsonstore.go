// Package jsonstore keeps the todo snapshot in a diskv key/value directory.
// One key holds the whole list as a JSON array; every save rewrites it.
package jsonstore

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"github.com/idilsaglam/todolist/internal/model"
)

const (
	// SnapshotKey is the slot holding the current list.
	SnapshotKey = "todos"
	// BackupKey receives the raw bytes of a snapshot that failed to decode.
	BackupKey = SnapshotKey + ".corrupt"

	tempDirName = ".tmp"
)

// Store is a Persistence backed by diskv.
type Store struct {
	d   *diskv.Diskv
	dir string
	now func() time.Time
}

func flatTransform(string) []string { return []string{} }

// New opens (lazily creating) the data directory dir.
func New(dir string) *Store {
	return &Store{
		dir: dir,
		now: time.Now,
		d: diskv.New(diskv.Options{
			BasePath:     dir,
			Transform:    flatTransform,
			TempDir:      filepath.Join(dir, tempDirName),
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
	}
}

// Dir is the data directory.
func (s *Store) Dir() string { return s.dir }

// Load returns the stored list, or an empty list when nothing was saved yet.
// A snapshot that fails to decode is backed up (see backup) and the returned
// error wraps model.ErrMalformedSnapshot.
func (s *Store) Load() ([]model.Todo, error) {
	if !s.d.Has(SnapshotKey) {
		return []model.Todo{}, nil
	}
	b, err := s.d.Read(SnapshotKey)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", SnapshotKey, err)
	}
	todos, err := model.UnmarshalSnapshot(b)
	if err != nil {
		if errors.Is(err, model.ErrMalformedSnapshot) {
			key, berr := s.backup(b)
			if berr != nil {
				return nil, berr
			}
			return nil, fmt.Errorf("decode %s (copy kept as %s): %w", SnapshotKey, key, err)
		}
		return nil, fmt.Errorf("decode %s: %w", SnapshotKey, err)
	}
	return todos, nil
}

// Save replaces the stored list.
func (s *Store) Save(todos []model.Todo) error {
	b, err := model.MarshalSnapshot(todos)
	if err != nil {
		return err
	}
	if err := s.d.Write(SnapshotKey, b); err != nil {
		return fmt.Errorf("write %s: %w", SnapshotKey, err)
	}
	return nil
}

// backup copies a snapshot that failed to decode. The first one goes to
// BackupKey; later ones get a millisecond suffix so no earlier copy is lost.
// Bytes already kept under some backup key are not written again.
func (s *Store) backup(b []byte) (string, error) {
	done := make(chan struct{})
	defer close(done)
	for key := range s.d.KeysPrefix(BackupKey, done) {
		if old, err := s.d.Read(key); err == nil && bytes.Equal(old, b) {
			return key, nil
		}
	}

	key := BackupKey
	if s.d.Has(key) {
		key = BackupKey + "." + strconv.FormatInt(s.now().UnixMilli(), 10)
	}
	if err := s.d.Write(key, b); err != nil {
		return "", fmt.Errorf("backup %s: %w", key, err)
	}
	return key, nil
}

// Backup returns the bytes of the first discarded snapshot, if any.
func (s *Store) Backup() ([]byte, bool) {
	if !s.d.Has(BackupKey) {
		return nil, false
	}
	b, err := s.d.Read(BackupKey)
	if err != nil {
		return nil, false
	}
	return b, true
}
