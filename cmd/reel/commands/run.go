package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/reel/internal/app"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync [builders...]",
		Short: "Mirror target data from the store into the local builder directory",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			jobs, _ := cmd.Flags().GetInt("jobs")
			return c.app.Sync(cmd.Context(), c.configPath, args, app.SyncOptions{
				Force: force,
				Jobs:  jobs,
			})
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Sync even when the source is unchanged")
	cmd.Flags().IntP("jobs", "j", 1, "Number of builders to sync concurrently")
	return cmd
}

func (c *CLI) newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <builder> [movies...]",
		Short: "Run a builder's test steps locally",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Exec(cmd.Context(), c.configPath, args[0], args[1:])
		},
	}
}
