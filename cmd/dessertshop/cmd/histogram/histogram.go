// Package histogram implements the histogram command.
package histogram

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/dessertshop/internal/appcontext"
	"github.com/agentstation/dessertshop/internal/cmd/cmdutil"
	"github.com/agentstation/dessertshop/internal/cmd/output"
)

// NewCommand creates the histogram command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "histogram",
		Aliases: []string{"prices"},
		Short:   "Count desserts per price range",
		Long: `Histogram counts desserts in the price ranges $0-10, $10-20 and over $20.
A price exactly on a boundary counts in the lower range.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.Store()
			if err != nil {
				return err
			}
			return output.FormatHistogram(cmd.OutOrStdout(), cmdutil.Format(app), store.PriceHistogram())
		},
	}
}
