package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [features...]",
		Short: "Build the runtime with each named feature enabled and assert success",
		Long: `Check builds the clawdbox source tree once per named feature, with
exactly that feature enabled, and fails if any build reports an error.
Without arguments every feature declared in the manifest is checked.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := cmd.Flags().GetInt("jobs")
			if err != nil {
				return err
			}
			return c.app.Run(cmd.Context(), args, jobs)
		},
	}

	cmd.Flags().IntP("jobs", "j", 0, "Number of checks to run in parallel (0 = number of CPUs)")

	return cmd
}
