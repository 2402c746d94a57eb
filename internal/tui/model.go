// Package tui is the interactive list. Every intent goes straight to the
// store; the visible list is re-derived from the store after each change.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/notify"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/ui"
	"github.com/idilsaglam/todolist/internal/view"
)

type mode int

const (
	browsing mode = iota
	adding
	editing
	editingDue
	searching
	moving
)

// bannerExpiredMsg fires notify.Delay after the banner with seq was shown.
type bannerExpiredMsg struct{ seq uint64 }

// Options tune the initial session state.
type Options struct {
	Dark   bool
	Logger *log.Logger
	Now    func() time.Time
}

// Model is the Bubble Tea model for the todo list.
type Model struct {
	store  *store.Store
	logger *log.Logger
	now    func() time.Time

	list list.Model
	keys keyMap
	help help.Model

	dark  bool
	theme ui.Theme

	filter  view.Mode
	search  string
	visible []model.Todo

	banner notify.Banner
	errMsg string

	mode     mode
	text     textinput.Model // add text, edit text, search
	due      textinput.Model // add due date, edit due date
	dueFocus bool            // add mode: due input has focus
	editID   int64
	grabbed  int64
	grabFrom int

	width, height int
}

// New builds the model over s. Nothing is drawn until the program runs.
func New(s *store.Store, opt Options) Model {
	if opt.Logger == nil {
		opt.Logger = logging.Discard()
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}

	m := Model{
		store:  s,
		logger: opt.Logger,
		now:    opt.Now,
		keys:   defaultKeys(),
		help:   help.New(),
		dark:   opt.Dark,
		theme:  ui.ThemeFor(opt.Dark),
	}

	m.list = list.New(nil, m.delegate(), 0, 0)
	m.list.SetShowTitle(false)
	m.list.SetShowStatusBar(false)
	m.list.SetShowHelp(false)
	m.list.SetFilteringEnabled(false)
	m.list.SetShowPagination(true)
	m.list.DisableQuitKeybindings()
	m.list.SetStatusBarItemName("todo", "todos")

	m.text = textinput.New()
	m.text.Prompt = "> "
	// unlimited: editing must round-trip any stored text, however long
	m.text.CharLimit = 0

	m.due = textinput.New()
	m.due.Prompt = "due "
	m.due.Placeholder = model.DateLayout
	m.due.CharLimit = len(model.DateLayout)

	if err := s.LoadErr(); err != nil {
		m.errMsg = "saved list was unreadable, starting empty: " + err.Error()
	}

	m.resize(80, 24)
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case bannerExpiredMsg:
		m.banner.Expire(msg.seq)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case adding:
			return m.updateAdding(msg)
		case editing:
			return m.updateEditing(msg)
		case editingDue:
			return m.updateEditingDue(msg)
		case searching:
			return m.updateSearching(msg)
		case moving:
			return m.updateMoving(msg)
		}
		return m.updateBrowsing(msg)
	}

	var cmd tea.Cmd
	switch m.mode {
	case adding, editing, searching:
		m.text, cmd = m.text.Update(msg)
	case editingDue:
		m.due, cmd = m.due.Update(msg)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sel, hasSel := m.selected()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		if m.search != "" {
			m.search = ""
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.mode = adding
		m.errMsg = ""
		m.text.SetValue("")
		m.text.Placeholder = "New todo..."
		m.due.SetValue("")
		m.dueFocus = false
		m.due.Blur()
		return m, m.text.Focus()

	case key.Matches(msg, m.keys.Toggle):
		if !hasSel {
			return m, nil
		}
		return m.apply(m.store.Toggle(sel.ID))

	case key.Matches(msg, m.keys.Del):
		if !hasSel {
			return m, nil
		}
		return m.apply(m.store.Remove(sel.ID))

	case key.Matches(msg, m.keys.Edit):
		if !hasSel {
			return m, nil
		}
		m.mode = editing
		m.errMsg = ""
		m.editID = sel.ID
		m.text.SetValue(sel.Text)
		m.text.CursorEnd()
		m.text.Placeholder = "Edit todo..."
		return m, m.text.Focus()

	case key.Matches(msg, m.keys.Due):
		if !hasSel {
			return m, nil
		}
		m.mode = editingDue
		m.errMsg = ""
		m.editID = sel.ID
		m.due.SetValue(sel.DueDate)
		m.due.CursorEnd()
		return m, m.due.Focus()

	case key.Matches(msg, m.keys.Filter):
		m.filter = m.filter.Next()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.mode = searching
		m.text.SetValue(m.search)
		m.text.CursorEnd()
		m.text.Placeholder = "Search todos..."
		return m, m.text.Focus()

	case key.Matches(msg, m.keys.MarkAll):
		return m.apply(m.store.MarkAllCompleted())

	case key.Matches(msg, m.keys.ClearDone):
		return m.apply(m.store.DeleteCompleted())

	case key.Matches(msg, m.keys.Grab):
		if !hasSel {
			return m, nil
		}
		m.mode = moving
		m.grabbed = sel.ID
		m.grabFrom = m.list.Index()
		m.list.SetDelegate(m.delegate())
		return m, nil

	case key.Matches(msg, m.keys.MoveUp):
		return m.moveBy(-1)

	case key.Matches(msg, m.keys.MoveDown):
		return m.moveBy(1)

	case key.Matches(msg, m.keys.Theme):
		m.dark = !m.dark
		m.theme = ui.ThemeFor(m.dark)
		m.list.SetDelegate(m.delegate())
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.leaveInput()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.dueFocus = !m.dueFocus
		if m.dueFocus {
			m.text.Blur()
			return m, m.due.Focus()
		}
		m.due.Blur()
		return m, m.text.Focus()

	case msg.Type == tea.KeyEnter:
		text, due := m.text.Value(), strings.TrimSpace(m.due.Value())
		switch {
		case model.Blank(text):
			m.errMsg = "Title cannot be empty"
			return m, nil
		case !model.ValidDueDate(due):
			m.errMsg = "Due date must look like " + model.DateLayout
			return m, nil
		}
		ev, err := m.store.Add(text, due)
		if err != nil {
			return m.fail(err)
		}
		m.leaveInput()
		m.refresh()
		m.selectID(ev.ID)
		return m, m.notice(ev)
	}

	var cmd tea.Cmd
	if m.dueFocus {
		m.due, cmd = m.due.Update(msg)
	} else {
		m.text, cmd = m.text.Update(msg)
	}
	return m, cmd
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.leaveInput()
		return m, nil

	case msg.Type == tea.KeyEnter:
		text := m.text.Value()
		if model.Blank(text) {
			m.errMsg = "Title cannot be empty"
			return m, nil
		}
		ev, err := m.store.EditText(m.editID, text)
		if err != nil {
			return m.fail(err)
		}
		m.leaveInput()
		m.refresh()
		return m, m.notice(ev)
	}

	var cmd tea.Cmd
	m.text, cmd = m.text.Update(msg)
	return m, cmd
}

// updateEditingDue applies the date on every keystroke that leaves a valid
// date (or an empty field) in the input.
func (m Model) updateEditingDue(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Cancel) || msg.Type == tea.KeyEnter {
		m.leaveInput()
		return m, nil
	}

	before := m.due.Value()
	var cmd tea.Cmd
	m.due, cmd = m.due.Update(msg)
	after := strings.TrimSpace(m.due.Value())
	if after == strings.TrimSpace(before) || !model.ValidDueDate(after) {
		return m, cmd
	}
	ev, err := m.store.EditDueDate(m.editID, after)
	if err != nil {
		return m.fail(err)
	}
	m.refresh()
	return m, tea.Batch(cmd, m.notice(ev))
}

func (m Model) updateSearching(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.search = ""
		m.leaveInput()
		m.refresh()
		return m, nil
	case msg.Type == tea.KeyEnter:
		m.leaveInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.text, cmd = m.text.Update(msg)
	m.search = m.text.Value()
	m.refresh()
	return m, cmd
}

// updateMoving is the drag gesture: the cursor picks the drop position and
// esc cancels without touching the store.
func (m Model) updateMoving(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.endMove()
		m.list.Select(m.grabFrom)
		return m, nil

	case key.Matches(msg, m.keys.Drop):
		from, to := m.grabFrom, m.list.Index()
		id := m.grabbed
		m.endMove()
		ev, err := m.store.ReorderVisible(m.visible, from, to)
		if err != nil {
			return m.fail(err)
		}
		m.refresh()
		m.selectID(id)
		return m, m.notice(ev)

	case key.Matches(msg, m.keys.Up):
		m.list.CursorUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.list.CursorDown()
		return m, nil
	}
	return m, nil
}

func (m Model) moveBy(delta int) (tea.Model, tea.Cmd) {
	sel, ok := m.selected()
	if !ok {
		return m, nil
	}
	from := m.list.Index()
	ev, err := m.store.ReorderVisible(m.visible, from, from+delta)
	if err != nil {
		return m.fail(err)
	}
	m.refresh()
	m.selectID(sel.ID)
	return m, m.notice(ev)
}

// apply finishes a one-key store operation.
func (m Model) apply(ev store.Event, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		return m.fail(err)
	}
	m.errMsg = ""
	m.refresh()
	return m, m.notice(ev)
}

func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.logger.Error("store operation failed", "err", err)
	m.errMsg = err.Error()
	m.refresh()
	return m, nil
}

// notice shows the event's banner and schedules its clear.
func (m *Model) notice(ev store.Event) tea.Cmd {
	if !ev.Changed() {
		return nil
	}
	seq := m.banner.Show(ev.Notice())
	return tea.Tick(notify.Delay, func(time.Time) tea.Msg {
		return bannerExpiredMsg{seq: seq}
	})
}

// refresh re-derives the visible list from the store and the view state.
func (m *Model) refresh() {
	idx := m.list.Index()
	m.visible = view.Filter(m.store.Todos(), m.filter, m.search)
	items := make([]list.Item, len(m.visible))
	for i, t := range m.visible {
		items[i] = item{t}
	}
	m.list.SetItems(items)
	switch {
	case len(items) == 0:
	case idx >= len(items):
		m.list.Select(len(items) - 1)
	case idx >= 0:
		m.list.Select(idx)
	}
}

func (m *Model) selected() (model.Todo, bool) {
	i := m.list.Index()
	if i < 0 || i >= len(m.visible) {
		return model.Todo{}, false
	}
	return m.visible[i], true
}

func (m *Model) selectID(id int64) {
	for i, t := range m.visible {
		if t.ID == id {
			m.list.Select(i)
			return
		}
	}
}

func (m *Model) leaveInput() {
	m.mode = browsing
	m.errMsg = ""
	m.text.SetValue("")
	m.text.Blur()
	m.due.SetValue("")
	m.due.Blur()
	m.dueFocus = false
}

func (m *Model) endMove() {
	m.mode = browsing
	m.grabbed = 0
	m.list.SetDelegate(m.delegate())
}

func (m *Model) delegate() itemDelegate {
	return itemDelegate{theme: m.theme, moving: m.mode == moving, grabbed: m.grabbed, now: m.now}
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w - 4
	// border, header, banner and help lines
	listHeight := h - 8
	if m.mode != browsing && m.mode != moving {
		listHeight -= 4
	}
	if listHeight < 1 {
		listHeight = 1
	}
	m.list.SetSize(w-4, listHeight)
}

// View implements tea.Model.
func (m Model) View() string {
	t := m.theme
	m.resize(m.width, m.height)

	c := view.Count(m.store.Todos())
	header := fmt.Sprintf("%s   %s %d  %s %d  %s %d   %s",
		t.Title.Render("To-Do List"),
		t.Success.Render(t.SymDone), c.Completed,
		t.Pending.Render(t.SymPending), c.Active,
		t.Accent.Render("Total"), c.Total,
		t.Muted.Render(ui.ProgressBar(c.Completed, c.Total, 12)),
	)
	status := t.Muted.Render("filter: ") + t.Accent.Render(m.filter.String())
	if m.search != "" {
		status += t.Muted.Render("  search: ") + t.Accent.Render(m.search)
	}
	if m.mode == moving {
		status += t.Muted.Render("  moving: ↑/↓ pick a spot, enter drops, esc cancels")
	}

	body := m.list.View()
	if len(m.visible) == 0 {
		body = t.Muted.Render("  nothing here")
	}

	lines := []string{header, status, "", body}
	if box := m.inputBox(); box != "" {
		lines = append(lines, box)
	}
	if m.banner.Showing() {
		lines = append(lines, t.Banner.Render(m.banner.Text()))
	}
	if m.errMsg != "" {
		lines = append(lines, t.Error.Render(m.errMsg))
	}
	lines = append(lines, m.help.View(m.keys))

	return ui.Panel(t, lines...)
}

func (m Model) inputBox() string {
	var title, field string
	switch m.mode {
	case adding:
		title, field = "Add new todo", m.text.View()+"\n"+m.due.View()
	case editing:
		title, field = "Edit todo", m.text.View()
	case editingDue:
		title, field = "Due date (empty clears)", m.due.View()
	case searching:
		title, field = "Search", m.text.View()
	default:
		return ""
	}
	if m.errMsg != "" && m.mode != searching {
		title += ": " + m.theme.Error.Render(m.errMsg)
	}
	bar := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
	return bar.Render(title + "\n" + field)
}

// Dark reports the current appearance.
func (m Model) Dark() bool { return m.dark }

// Filter reports the active status filter.
func (m Model) Filter() view.Mode { return m.filter }

// Visible returns the todos currently on screen, in display order.
func (m Model) Visible() []model.Todo { return m.visible }

// Banner returns the banner text, empty when idle.
func (m Model) Banner() string { return m.banner.Text() }
