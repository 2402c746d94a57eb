package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles palette + symbols for one appearance.
// The TUI switches between Light and Dark at runtime; CLI output uses Current.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done, Overdue, Help, Banner         lipgloss.Style
	Border                                        lipgloss.Color

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
}

var (
	Light = Theme{
		Name:     "light",
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("236")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("166")),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Overdue:  lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		Help:     lipgloss.NewStyle().Faint(true),
		Banner:   lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("28")).Padding(0, 1),
		Border:   lipgloss.Color("250"),

		BoxUnchecked: "☐", BoxChecked: "☑",
		SymDone: "✔", SymPending: "•",
	}

	Dark = Theme{
		Name:     "dark",
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Overdue:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:     lipgloss.NewStyle().Faint(true),
		Banner:   lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("42")).Padding(0, 1),
		Border:   lipgloss.Color("8"),

		BoxUnchecked: "☐", BoxChecked: "☑",
		SymDone: "✔", SymPending: "•",
	}
)

var current = Light

// ThemeFor picks Dark or Light.
func ThemeFor(dark bool) Theme {
	if dark {
		return Dark
	}
	return Light
}

// SetTheme sets the theme used by the package-level helpers.
func SetTheme(dark bool) { current = ThemeFor(dark) }

// Current is the theme used by OK, Fail, Warn and Panel.
func Current() Theme { return current }
