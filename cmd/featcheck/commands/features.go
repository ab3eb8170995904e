package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newFeaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "List the optional capabilities declared in the manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			features, err := c.app.Features()
			if err != nil {
				return err
			}
			for _, f := range features {
				cmd.Println(f.String())
			}
			return nil
		},
	}
}
