package commands

import (
	"github.com/spf13/cobra"
	progrockad "go.trai.ch/relock/internal/adapters/telemetry/progrock"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [dirs...]",
		Short: "Reconstruct lockfiles for the given package directories",
		Long: `Reconstruct lockfiles by inspecting the installed dependency tree of each
package directory. Nothing is installed or fetched; the generated document
mirrors what is already on disk. Without arguments the directories from
relock.yaml are used, falling back to the current directory.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			progress, _ := cmd.Flags().GetBool("progress")
			if progress {
				c.app.SetTelemetry(progrockad.New())
			}
			return c.app.Run(cmd.Context(), args)
		},
	}
	cmd.Flags().BoolP("progress", "p", false, "Render live per-directory progress")
	return cmd
}
