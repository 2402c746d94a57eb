// Package store owns the ordered list of todos.
//
// Every mutation replaces the whole list, writes the full snapshot through the
// injected Persistence and then publishes an Event. Rejected or no-op calls
// return an Event of KindNone and touch nothing.
package store

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/model"
)

// Persistence reads and writes the full snapshot of the list.
type Persistence interface {
	Load() ([]model.Todo, error)
	Save(todos []model.Todo) error
}

var (
	// ErrNotFound is returned by lookups that name a todo which does not exist.
	ErrNotFound = errors.New("todo not found")
	// ErrIDsExhausted is returned by Add when the store already holds the
	// largest possible id.
	ErrIDsExhausted = errors.New("no ids left above the largest stored id")
)

// Store is not safe for concurrent use; it belongs to a single event loop.
type Store struct {
	todos   []model.Todo
	p       Persistence
	now     func() time.Time
	logger  *log.Logger
	subs    []func(Event)
	loadErr error
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for new ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// Open reads the initial list from p. A malformed snapshot is not fatal: the
// store starts empty and the decode error is kept in LoadErr.
func Open(p Persistence, opts ...Option) (*Store, error) {
	s := &Store{
		p:      p,
		now:    time.Now,
		logger: log.New(io.Discard),
	}
	for _, o := range opts {
		o(s)
	}

	todos, err := p.Load()
	switch {
	case errors.Is(err, model.ErrMalformedSnapshot):
		s.logger.Warn("starting with an empty list", "err", err)
		s.loadErr = err
		todos = []model.Todo{}
	case err != nil:
		return nil, fmt.Errorf("load: %w", err)
	}
	if todos == nil {
		todos = []model.Todo{}
	}
	s.todos = todos
	s.logger.Debug("store opened", "count", len(todos))
	return s, nil
}

// LoadErr reports why the persisted snapshot was discarded at Open, if it was.
func (s *Store) LoadErr() error { return s.loadErr }

// Todos returns a copy of the current list in store order.
func (s *Store) Todos() []model.Todo {
	out := make([]model.Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

// Len is the number of todos in the store.
func (s *Store) Len() int { return len(s.todos) }

// Get returns the todo with the given id.
func (s *Store) Get(id int64) (model.Todo, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.todos[i], true
	}
	return model.Todo{}, false
}

// At returns the todo at a 1-based position, the way the CLI addresses them.
func (s *Store) At(pos int) (model.Todo, error) {
	if pos < 1 || pos > len(s.todos) {
		return model.Todo{}, fmt.Errorf("%w: position %d, have %d", ErrNotFound, pos, len(s.todos))
	}
	return s.todos[pos-1], nil
}

// Subscribe registers fn to be called after every successful mutation.
func (s *Store) Subscribe(fn func(Event)) {
	s.subs = append(s.subs, fn)
}

// Add appends a new open todo. Blank text or a malformed due date is rejected.
func (s *Store) Add(text, dueDate string) (Event, error) {
	if model.Blank(text) || !model.ValidDueDate(dueDate) {
		return Event{}, nil
	}
	id, err := s.nextID()
	if err != nil {
		return Event{}, err
	}
	td := model.Todo{ID: id, Text: text, DueDate: dueDate}
	next := make([]model.Todo, 0, len(s.todos)+1)
	next = append(next, s.todos...)
	next = append(next, td)
	return s.commit(next, Event{Kind: KindAdded, ID: td.ID})
}

// Remove drops the todo with the given id.
func (s *Store) Remove(id int64) (Event, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Event{}, nil
	}
	next := make([]model.Todo, 0, len(s.todos)-1)
	next = append(next, s.todos[:i]...)
	next = append(next, s.todos[i+1:]...)
	return s.commit(next, Event{Kind: KindRemoved, ID: id})
}

// Toggle flips the completed flag.
func (s *Store) Toggle(id int64) (Event, error) {
	return s.update(id, KindToggled, func(t *model.Todo) { t.Completed = !t.Completed })
}

// EditText replaces the text. Blank text is rejected, as in Add.
func (s *Store) EditText(id int64, text string) (Event, error) {
	if model.Blank(text) {
		return Event{}, nil
	}
	return s.update(id, KindEdited, func(t *model.Todo) { t.Text = text })
}

// EditDueDate replaces the due date; an empty date clears it.
func (s *Store) EditDueDate(id int64, date string) (Event, error) {
	if !model.ValidDueDate(date) {
		return Event{}, nil
	}
	return s.update(id, KindDueDateEdited, func(t *model.Todo) { t.DueDate = date })
}

// MarkAllCompleted completes every todo.
func (s *Store) MarkAllCompleted() (Event, error) {
	next := s.Todos()
	for i := range next {
		next[i].Completed = true
	}
	return s.commit(next, Event{Kind: KindMarkedAll})
}

// DeleteCompleted keeps only the open todos.
func (s *Store) DeleteCompleted() (Event, error) {
	next := make([]model.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		if !t.Completed {
			next = append(next, t)
		}
	}
	return s.commit(next, Event{Kind: KindClearedCompleted})
}

// Reorder moves the todo at index from to index to, both 0-based positions in
// the full list. Out of range or equal indices leave the store unchanged.
func (s *Store) Reorder(from, to int) (Event, error) {
	n := len(s.todos)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return Event{}, nil
	}
	moved := s.todos[from]
	next := make([]model.Todo, 0, n)
	next = append(next, s.todos[:from]...)
	next = append(next, s.todos[from+1:]...)
	next = append(next[:to], append([]model.Todo{moved}, next[to:]...)...)
	return s.commit(next, Event{Kind: KindMoved, ID: moved.ID})
}

// ReorderVisible moves a todo within a filtered view of the store. from and to
// index into visible; the move lands next to the same neighbour in the full
// list so hidden todos keep their places.
func (s *Store) ReorderVisible(visible []model.Todo, from, to int) (Event, error) {
	if from < 0 || from >= len(visible) || to < 0 || to >= len(visible) || from == to {
		return Event{}, nil
	}
	af, at := s.indexOf(visible[from].ID), s.indexOf(visible[to].ID)
	if af < 0 || at < 0 {
		return Event{}, nil
	}
	return s.Reorder(af, at)
}

func (s *Store) update(id int64, kind Kind, fn func(*model.Todo)) (Event, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Event{}, nil
	}
	next := s.Todos()
	fn(&next[i])
	return s.commit(next, Event{Kind: kind, ID: id})
}

func (s *Store) commit(next []model.Todo, ev Event) (Event, error) {
	if err := s.p.Save(next); err != nil {
		s.logger.Error("save failed", "op", ev.Kind, "err", err)
		return Event{}, fmt.Errorf("save: %w", err)
	}
	s.todos = next
	s.logger.Debug("store changed", "op", ev.Kind, "id", ev.ID, "count", len(next))
	for _, fn := range s.subs {
		fn(ev)
	}
	return ev, nil
}

func (s *Store) indexOf(id int64) int {
	for i, t := range s.todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// nextID is the current time in milliseconds, or one past the largest id in
// the store when that is later, so ids stay unique within one millisecond and
// under a clock that runs backwards.
func (s *Store) nextID() (int64, error) {
	id := s.now().UnixMilli()
	if len(s.todos) == 0 {
		return id, nil
	}
	top := s.todos[0].ID
	for _, t := range s.todos[1:] {
		if t.ID > top {
			top = t.ID
		}
	}
	if top == math.MaxInt64 {
		return 0, ErrIDsExhausted
	}
	if top >= id {
		id = top + 1
	}
	return id, nil
}
