// Package completion implements the completion command.
package completion

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/dessertshop/internal/cmd/completion"
)

// NewCommand creates the completion command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion SHELL",
		Short: "Generate a shell completion script",
		Long: `Completion prints a completion script for bash, zsh, fish or powershell.

Load it in the current shell, for example:
  source <(dessertshop completion bash)`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: completion.Shells,
		RunE: func(cmd *cobra.Command, args []string) error {
			return completion.Generate(cmd.Root(), cmd.OutOrStdout(), args[0])
		},
	}
}
