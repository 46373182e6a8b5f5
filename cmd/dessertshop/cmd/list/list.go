// Package list implements the list command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/dessertshop/internal/appcontext"
	"github.com/agentstation/dessertshop/internal/cmd/cmdutil"
	"github.com/agentstation/dessertshop/internal/cmd/output"
)

// NewCommand creates the list command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var indexed bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every dessert in catalog order",
		Example: `  dessertshop list
  dessertshop list --indexed
  dessertshop list -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.Store()
			if err != nil {
				return err
			}

			all := store.ToArray()
			format := cmdutil.Format(app)
			if len(all) == 0 && format.IsTable() {
				return cmdutil.Notice(cmd, app, "No dessert data available")
			}
			return output.FormatDesserts(cmd.OutOrStdout(), format, all, indexed)
		},
	}

	cmd.Flags().BoolVar(&indexed, "indexed", false, "show each dessert's array index")

	return cmd
}
