package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

// item adapts model.Todo to bubbles/list.Item
type item struct{ model.Todo }

func (i item) FilterValue() string { return i.Text }

// itemDelegate renders one todo per line. grabbed marks the todo being moved.
type itemDelegate struct {
	theme   ui.Theme
	moving  bool
	grabbed int64
	now     func() time.Time
}

func (d itemDelegate) Height() int                         { return 1 }
func (d itemDelegate) Spacing() int                        { return 0 }
func (d itemDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	it, ok := li.(item)
	if !ok {
		return
	}
	t := d.theme

	box := t.Muted.Render(t.BoxUnchecked)
	text := it.Text
	if it.Completed {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(text)
	}

	due := ""
	if it.DueDate != "" {
		style := t.Muted
		if it.Overdue(d.now()) {
			style = t.Overdue
		}
		due = "  " + style.Render("due "+it.DueDate)
	}

	prefix := "  "
	switch {
	case d.moving && it.ID == d.grabbed:
		prefix = t.Accent.Render("≡ ")
	case index == m.Index():
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprint(w, prefix+box+" "+text+due)
}
