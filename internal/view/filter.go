// Package view derives what gets displayed from the store: a status filter
// plus a case-insensitive substring search. Nothing here is cached or owned.
package view

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/todolist/internal/model"
)

// Mode selects todos by status.
type Mode int

const (
	All Mode = iota
	Active
	Completed
)

var modeNames = [...]string{All: "all", Active: "active", Completed: "completed"}

// Modes lists every mode in cycling order.
func Modes() []Mode { return []Mode{All, Active, Completed} }

func (m Mode) String() string {
	if m < All || m > Completed {
		return "unknown"
	}
	return modeNames[m]
}

// ParseMode accepts the names printed by String, case-insensitively.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if strings.EqualFold(strings.TrimSpace(s), m.String()) {
			return m, nil
		}
	}
	return All, fmt.Errorf("unknown filter %q (want all, active or completed)", s)
}

// Next cycles all -> active -> completed -> all.
func (m Mode) Next() Mode { return (m + 1) % Mode(len(modeNames)) }

// Match reports whether t passes the mode predicate.
func (m Mode) Match(t model.Todo) bool {
	switch m {
	case Active:
		return !t.Completed
	case Completed:
		return t.Completed
	default:
		return true
	}
}

// Filter returns the todos matching mode whose text contains search, ignoring
// case. Store order is kept. The result never aliases todos.
func Filter(todos []model.Todo, mode Mode, search string) []model.Todo {
	needle := strings.ToLower(search)
	out := make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		if !mode.Match(t) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(t.Text), needle) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Counts summarises a list for headers.
type Counts struct {
	Total, Active, Completed int
}

// Count tallies todos by status.
func Count(todos []model.Todo) Counts {
	c := Counts{Total: len(todos)}
	for _, t := range todos {
		if t.Completed {
			c.Completed++
		} else {
			c.Active++
		}
	}
	return c
}
