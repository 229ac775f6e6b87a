package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Pull every publishable image instead of building",
		Long: `Pull the published image for every publishable target, in registry order.
Published images are already dependency-resolved, so the dependency graph is
not consulted. The first failed pull aborts the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.PullAll(cmd.Context())
		},
	}
}
