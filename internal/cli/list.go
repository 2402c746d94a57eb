package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
	"github.com/idilsaglam/todolist/internal/view"
)

func addList(topLevel *cobra.Command, a *app) {
	var (
		filter string
		search string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List todos",
		Example: `
todo ls
todo ls --filter active --search milk
todo ls --json
`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := view.ParseMode(filter)
			if err != nil {
				return usageError{err}
			}
			s, err := a.openStore(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			all := s.Todos()
			shown := view.Filter(all, mode, search)
			if asJSON {
				b, err := model.MarshalSnapshot(shown)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return err
			}

			if len(shown) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), ui.Current().Muted.Render("nothing here"))
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), table(all, shown, time.Now()))
			return err
		},
	}
	cmd.Flags().StringVar(&filter, "filter", view.All.String(), "all, active or completed")
	cmd.Flags().StringVar(&search, "search", "", "only todos whose text contains this, ignoring case")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the matching todos as JSON")

	topLevel.AddCommand(cmd)
}

// table lays shown out with the positions they have in all, so the numbers
// can be passed straight to done/rm/edit.
func table(all, shown []model.Todo, now time.Time) *uitable.Table {
	pos := make(map[int64]int, len(all))
	for i, t := range all {
		pos[t.ID] = i + 1
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	tbl.AddRow(bold.Sprint("#"), "", bold.Sprint("Todo"), bold.Sprint("Due"))
	for _, t := range shown {
		mark, text := ui.Current().BoxUnchecked, t.Text
		if t.Completed {
			mark, text = green.Sprint(ui.Current().BoxChecked), faint.Sprint(t.Text)
		}
		due := t.DueDate
		if t.Overdue(now) {
			due = red.Sprint(due)
		}
		tbl.AddRow(strconv.Itoa(pos[t.ID]), mark, text, due)
	}
	tbl.RightAlign(0)
	return tbl
}
