package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func addToggle(topLevel *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:     "done <n>",
		Aliases: []string{"toggle"},
		Short:   "Toggle done for the todo at 1-based position n",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			td, err := lookup(s, args[0])
			if err != nil {
				return err
			}
			ev, err := s.Toggle(td.ID)
			if err != nil {
				return err
			}
			report(cmd.OutOrStdout(), ev)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addRemove(topLevel *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:     "rm <n>",
		Aliases: []string{"delete"},
		Short:   "Remove the todo at 1-based position n",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			td, err := lookup(s, args[0])
			if err != nil {
				return err
			}
			ev, err := s.Remove(td.ID)
			if err != nil {
				return err
			}
			report(cmd.OutOrStdout(), ev)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addEdit(topLevel *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "edit <n> <text...>",
		Short: "Replace the text of the todo at position n",
		Args:  minArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args[1:], " "))
			if text == "" {
				return usagef("edit: empty text")
			}
			s, err := a.openStore(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			td, err := lookup(s, args[0])
			if err != nil {
				return err
			}
			ev, err := s.EditText(td.ID, text)
			if err != nil {
				return err
			}
			report(cmd.OutOrStdout(), ev)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addDue(topLevel *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "due <n> <date>",
		Short: `Set the due date of the todo at position n ("" clears it)`,
		Example: `
todo due 2 2026-11-01
todo due 2 ""
`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := strings.TrimSpace(args[1])
			if err := validDue(date); err != nil {
				return err
			}
			s, err := a.openStore(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			td, err := lookup(s, args[0])
			if err != nil {
				return err
			}
			ev, err := s.EditDueDate(td.ID, date)
			if err != nil {
				return err
			}
			report(cmd.OutOrStdout(), ev)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addMove(topLevel *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "mv <from> <to>",
		Short: "Move the todo at position from to position to",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := position(args[0])
			if err != nil {
				return err
			}
			to, err := position(args[1])
			if err != nil {
				return err
			}
			s, err := a.openStore(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			for _, n := range []int{from, to} {
				if n < 1 || n > s.Len() {
					return usagef("index out of range: have %d, got %d", s.Len(), n)
				}
			}
			ev, err := s.Reorder(from-1, to-1)
			if err != nil {
				return err
			}
			report(cmd.OutOrStdout(), ev)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addBulk(topLevel *cobra.Command, a *app) {
	markAll := &cobra.Command{
		Use:   "mark-all",
		Short: "Mark every todo completed",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.openStore(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			ev, err := s.MarkAllCompleted()
			if err != nil {
				return err
			}
			report(cmd.OutOrStdout(), ev)
			return nil
		},
	}
	clearDone := &cobra.Command{
		Use:   "clear-completed",
		Short: "Delete every completed todo",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.openStore(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			ev, err := s.DeleteCompleted()
			if err != nil {
				return err
			}
			report(cmd.OutOrStdout(), ev)
			return nil
		},
	}
	topLevel.AddCommand(markAll, clearDone)
}
