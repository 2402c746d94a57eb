package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todolist/internal/store"
)

// Run starts the full-screen list and blocks until the user quits.
// Changes are already persisted by the store as they happen.
func Run(s *store.Store, opt Options) error {
	p := tea.NewProgram(New(s, opt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
