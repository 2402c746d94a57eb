package model

import (
	"testing"
	"time"
)

func TestOverdue(t *testing.T) {
	now := time.Date(2026, time.October, 19, 15, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		todo Todo
		want bool
	}{
		{"no due date", Todo{Text: "a"}, false},
		{"due yesterday", Todo{DueDate: "2026-10-18"}, true},
		{"due today", Todo{DueDate: "2026-10-19"}, false},
		{"due tomorrow", Todo{DueDate: "2026-10-20"}, false},
		{"completed", Todo{DueDate: "2026-01-01", Completed: true}, false},
		{"garbage", Todo{DueDate: "soon"}, false},
	}
	for _, tc := range cases {
		if got := tc.todo.Overdue(now); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
