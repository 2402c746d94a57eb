// Package memstore is an in-memory Persistence for tests and dry runs.
package memstore

import (
	"errors"

	"github.com/idilsaglam/todolist/internal/model"
)

// ErrInjected is returned by Save after FailSaves is set.
var ErrInjected = errors.New("memstore: injected save failure")

// Store holds the encoded snapshot the same way the disk store would.
type Store struct {
	data      []byte
	saves     int
	FailSaves bool
}

// New returns an empty store.
func New() *Store { return &Store{} }

// NewRaw returns a store whose slot already holds b.
func NewRaw(b []byte) *Store { return &Store{data: b} }

// Load decodes the slot; an empty slot is an empty list.
func (s *Store) Load() ([]model.Todo, error) {
	if s.data == nil {
		return []model.Todo{}, nil
	}
	return model.UnmarshalSnapshot(s.data)
}

// Save encodes todos into the slot.
func (s *Store) Save(todos []model.Todo) error {
	if s.FailSaves {
		return ErrInjected
	}
	b, err := model.MarshalSnapshot(todos)
	if err != nil {
		return err
	}
	s.data = b
	s.saves++
	return nil
}

// Raw returns the last written snapshot bytes.
func (s *Store) Raw() []byte { return s.data }

// Saves counts successful writes.
func (s *Store) Saves() int { return s.saves }
