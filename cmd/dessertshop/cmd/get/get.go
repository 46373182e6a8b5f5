// Package get implements the get command.
package get

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/dessertshop/internal/appcontext"
	"github.com/agentstation/dessertshop/internal/cmd/completion"
	"github.com/agentstation/dessertshop/internal/cmd/cmdutil"
	"github.com/agentstation/dessertshop/internal/cmd/output"
	"github.com/agentstation/dessertshop/pkg/errors"
)

// NewCommand creates the get command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:               "get ID",
		Aliases:           []string{"show"},
		Short:             "Show one dessert by ID",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completion.DessertIDs(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.Store()
			if err != nil {
				return err
			}

			d, ok := store.FindByID(args[0])
			if !ok {
				return errors.NewNotFoundError("dessert", args[0])
			}
			return output.FormatDessert(cmd.OutOrStdout(), cmdutil.Format(app), d)
		},
	}
}
