package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/ui"
	"github.com/idilsaglam/todolist/internal/view"
)

func addStats(topLevel *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show how much is done",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.openStore(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			t := ui.Current()
			c := view.Count(s.Todos())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ui.Panel(t,
				t.Title.Render("Todos"),
				fmt.Sprintf("%s %d done  %s %d active  %d total",
					t.Success.Render(t.SymDone), c.Completed,
					t.Pending.Render(t.SymPending), c.Active, c.Total),
				ui.ProgressBar(c.Completed, c.Total, 28),
			))
			return err
		},
	}
	topLevel.AddCommand(cmd)
}
