package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func addAdd(topLevel *cobra.Command, a *app) {
	var due string

	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a todo",
		Example: `
todo add Buy milk
todo add --due 2026-11-01 Pay rent
`,
		Args: minArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return usagef("add: empty text")
			}
			if err := validDue(due); err != nil {
				return err
			}
			s, err := a.openStore(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			ev, err := s.Add(text, due)
			if err != nil {
				return err
			}
			report(cmd.OutOrStdout(), ev)
			return nil
		},
	}
	cmd.Flags().StringVar(&due, "due", "", `due date, example: --due="2026-11-01"`)

	topLevel.AddCommand(cmd)
}
