package model

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format used for due dates.
const DateLayout = "2006-01-02"

// Todo is the domain model for a todo entry.
// ID is the creation time in milliseconds and never changes once assigned.
type Todo struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	DueDate   string `json:"dueDate,omitempty"`
}

// Blank reports whether s has nothing but whitespace.
func Blank(s string) bool { return strings.TrimSpace(s) == "" }

// ValidDueDate accepts an empty string (no due date) or a YYYY-MM-DD date.
func ValidDueDate(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Overdue reports whether the todo is still open past its due date.
func (t Todo) Overdue(now time.Time) bool {
	if t.Completed || t.DueDate == "" {
		return false
	}
	due, err := time.ParseInLocation(DateLayout, t.DueDate, now.Location())
	if err != nil {
		return false
	}
	y, m, d := now.Date()
	return due.Before(time.Date(y, m, d, 0, 0, 0, 0, now.Location()))
}
