// Package remove implements the delete command.
package remove

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/dessertshop/internal/appcontext"
	"github.com/agentstation/dessertshop/internal/cmd/completion"
	"github.com/agentstation/dessertshop/internal/cmd/cmdutil"
	"github.com/agentstation/dessertshop/internal/validation"
)

// NewCommand creates the delete command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:               "delete ID",
		Aliases:           []string{"rm", "remove"},
		Short:             "Delete a dessert from the catalog",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completion.DessertIDs(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := validation.ParseID(args[0])
			if err != nil {
				return err
			}

			store, err := app.Store()
			if err != nil {
				return err
			}

			return cmdutil.ReportMutation(cmd, app, "deleted", id, store.Delete(id))
		},
	}
}
