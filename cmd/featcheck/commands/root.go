// Package commands implements the CLI commands for the featcheck tool.
package commands

import (
	"context"
	"io"

	"github.com/basidwild/clawdbox/internal/app"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for featcheck.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "featcheck",
		Short:         "Verify that optional clawdbox capabilities still compile",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("manifest", "m", "featcheck.yaml", "Path to the feature manifest")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newFeaturesCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// GetManifestPath returns the value of the manifest flag.
func (c *CLI) GetManifestPath() string {
	manifest, _ := c.rootCmd.PersistentFlags().GetString("manifest")
	return manifest
}

// SetManifestHook sets up a PersistentPreRun function that retrieves the
// manifest flag and calls the provided callback with its value.
func (c *CLI) SetManifestHook(fn func(string)) {
	c.rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		path, err := cmd.Flags().GetString("manifest")
		if err != nil {
			return err
		}
		fn(path)
		return nil
	}
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
