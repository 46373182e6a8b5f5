// Package cmdutil provides helpers shared by the dessertshop commands.
package cmdutil

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/dessertshop/internal/appcontext"
	"github.com/agentstation/dessertshop/internal/cmd/alerts"
	"github.com/agentstation/dessertshop/internal/cmd/output"
	"github.com/agentstation/dessertshop/internal/validation"
	"github.com/agentstation/dessertshop/pkg/desserts"
	"github.com/agentstation/dessertshop/pkg/logging"
)

// DessertArgsUse is the positional argument list for commands taking a full record.
const DessertArgsUse = "ID NAME FLAVOR PRICE STOCK SEASONAL"

// DessertArgs validates the argument count for DessertArgsUse.
var DessertArgs = cobra.ExactArgs(6)

// ParseDessert builds a dessert from the six positional arguments.
func ParseDessert(args []string) (desserts.Dessert, error) {
	if len(args) != 6 {
		return desserts.Dessert{}, fmt.Errorf("expected 6 arguments (%s), got %d", DessertArgsUse, len(args))
	}
	return validation.Fields{
		ID:       args[0],
		Name:     args[1],
		Flavor:   args[2],
		Price:    args[3],
		Stock:    args[4],
		Seasonal: args[5],
	}.Dessert()
}

// Format returns the output format configured on app.
func Format(app appcontext.Interface) output.Format {
	return output.Format(app.OutputFormat())
}

// ReportMutation prints the outcome of a store mutation and returns err.
// Only a success is printed; failures are returned so the process exits
// non-zero, and a write failure in a one-shot command loses the change.
func ReportMutation(cmd *cobra.Command, app appcontext.Interface, action, id string, err error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithDessert(logging.WithOperation(logging.WithLogger(ctx, app.Logger()), action), id)

	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("Mutation failed")
		return err
	}
	logging.FromContext(ctx).Debug().Msg("Mutation applied")
	return alerts.NewFormatWriter(cmd.OutOrStdout(), Format(app)).
		WriteAlert(alerts.ForMutation(action, id, nil))
}

// Notice prints an informational alert, used for empty results in table mode.
func Notice(cmd *cobra.Command, app appcontext.Interface, message string) error {
	return alerts.NewFormatWriter(cmd.OutOrStdout(), Format(app)).
		WriteAlert(alerts.NewInfo(message))
}
