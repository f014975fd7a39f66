package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete recorded emotions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs error
			deleted := 0
			for _, arg := range args {
				id, err := app.journal.ResolveID(cmd.Context(), arg)
				if err != nil {
					errs = errors.Join(errs, err)
					continue
				}
				if err := app.journal.DeleteRecords(cmd.Context(), id); err != nil {
					errs = errors.Join(errs, err)
					continue
				}
				deleted++
			}

			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d record(s)\n", deleted); err != nil {
				errs = errors.Join(errs, err)
			}

			return errs
		},
	}
}
