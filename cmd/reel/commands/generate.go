package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the builder manifest for the orchestration host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			return c.app.Render(cmd.Context(), c.configPath, format)
		},
	}
	cmd.Flags().StringP("format", "f", "yaml", "Output format (yaml or json)")
	return cmd
}

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the generated builders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.List(cmd.Context(), c.configPath)
		},
	}
}

func (c *CLI) newCommandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "command <builder> <movie>",
		Short: "Print the emulator command a builder runs for a movie",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Command(cmd.Context(), c.configPath, args[0], args[1])
		},
	}
}

func (c *CLI) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the targets and generate every builder without rendering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Validate(cmd.Context(), c.configPath)
		},
	}
}
