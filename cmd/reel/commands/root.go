// Package commands implements the CLI commands for reel.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/reel/internal/app"
	"go.trai.ch/reel/internal/build"
	"go.trai.ch/reel/internal/core/domain"
)

// CLI represents the command line interface for reel.
type CLI struct {
	app        *app.App
	rootCmd    *cobra.Command
	setJSON    func(bool)
	configPath string
}

// Option configures a CLI.
type Option func(*CLI)

// WithJSONLogs sets the hook invoked when --json-logs is given.
func WithJSONLogs(fn func(bool)) Option {
	return func(c *CLI) {
		c.setJSON = fn
	}
}

// New creates a new CLI instance with the given app.
func New(a *app.App, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "reel",
		Short:         "Generate test builders for Director movie regression runs",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", domain.SettingsFileName, "Path to the settings file")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		c.app.WithOutput(cmd.OutOrStdout())

		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if jsonLogs && c.setJSON != nil {
			c.setJSON(true)
		}
	}

	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newCommandCmd())
	rootCmd.AddCommand(c.newValidateCmd())
	rootCmd.AddCommand(c.newSyncCmd())
	rootCmd.AddCommand(c.newExecCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets where command output, including manifests, listings and
// result tables, is written. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
