package cli

import (
	"errors"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/ui"
)

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return usagef("usage: %s", cmd.UseLine())
	}
	return nil
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usagef("usage: %s", cmd.UseLine())
		}
		return nil
	}
}

func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return usagef("usage: %s", cmd.UseLine())
		}
		return nil
	}
}

// position parses a 1-based list position.
func position(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, usagef("not a number: %s", arg)
	}
	return n, nil
}

// lookup resolves a 1-based position argument to a todo.
func lookup(s *store.Store, arg string) (model.Todo, error) {
	n, err := position(arg)
	if err != nil {
		return model.Todo{}, err
	}
	td, err := s.At(n)
	if errors.Is(err, store.ErrNotFound) {
		return model.Todo{}, usagef("index out of range: have %d, got %d (run `todo ls` to see valid indexes)", s.Len(), n)
	}
	return td, err
}

// report prints the event's notice; unchanged stores print nothing.
func report(w io.Writer, ev store.Event) {
	if ev.Changed() {
		ui.OK(w, ev.Notice())
	}
}

func validDue(date string) error {
	if !model.ValidDueDate(date) {
		return usagef("due date must look like %s, got %q", model.DateLayout, date)
	}
	return nil
}

