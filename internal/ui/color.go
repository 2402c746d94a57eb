package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
)

// SetColorMode forces colour on or off for both lipgloss and fatih/color.
// "auto" leaves terminal detection alone.
func SetColorMode(mode string) error {
	switch strings.ToLower(mode) {
	case "", "auto":
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
		color.NoColor = false
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
		color.NoColor = true
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", mode)
	}
	return nil
}

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Success.Render(current.SymDone+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Error.Render("✖ "+msg))
}

func Warn(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Pending.Render("! "+msg))
}
