// Package completion provides shell completion helpers for the CLI.
package completion

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/dessertshop/internal/appcontext"
)

// Supported shells.
const (
	ShellBash       = "bash"
	ShellZsh        = "zsh"
	ShellFish       = "fish"
	ShellPowerShell = "powershell"
)

// Shells lists the shells Generate accepts.
var Shells = []string{ShellBash, ShellZsh, ShellFish, ShellPowerShell}

// Generate writes the completion script for shell to w.
func Generate(root *cobra.Command, w io.Writer, shell string) error {
	switch shell {
	case ShellBash:
		return root.GenBashCompletionV2(w, true)
	case ShellZsh:
		return root.GenZshCompletion(w)
	case ShellFish:
		return root.GenFishCompletion(w, true)
	case ShellPowerShell:
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return fmt.Errorf("unsupported shell %q: must be one of %s", shell, strings.Join(Shells, ", "))
	}
}

// DessertIDs completes the first positional argument with the IDs in the
// store, described by the dessert name.
func DessertIDs(app appcontext.Interface) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		store, err := app.Store()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		var ids []string
		for _, d := range store.ToArray() {
			if strings.HasPrefix(d.ID, toComplete) {
				ids = append(ids, d.ID+"\t"+d.Name)
			}
		}
		return ids, cobra.ShellCompDirectiveNoFileComp
	}
}
