// Package search implements the search command.
package search

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/dessertshop/internal/appcontext"
	"github.com/agentstation/dessertshop/internal/cmd/cmdutil"
	"github.com/agentstation/dessertshop/internal/cmd/output"
	"github.com/agentstation/dessertshop/pkg/desserts"
)

// NewCommand creates the search command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var ignoreCase bool

	cmd := &cobra.Command{
		Use:   "search KEYWORD",
		Short: "Find desserts whose name or flavor contains KEYWORD",
		Long: `Search lists, in catalog order, the desserts whose name or flavor
contains KEYWORD. Matching is case-sensitive unless --ignore-case is set.`,
		Example: `  dessertshop search Chocolate
  dessertshop search -i choc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.Store()
			if err != nil {
				return err
			}

			var found []desserts.Dessert
			if ignoreCase {
				found = store.FindByKeywordFold(args[0])
			} else {
				found = store.FindByKeyword(args[0])
			}

			format := cmdutil.Format(app)
			if len(found) == 0 && format.IsTable() {
				return cmdutil.Notice(cmd, app, "No matching results")
			}
			return output.FormatDesserts(cmd.OutOrStdout(), format, found, false)
		},
	}

	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "match regardless of case")

	return cmd
}
