package commands

import "github.com/spf13/cobra"

func (c *CLI) newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show which translation units are stale without compiling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Plan(cmd.Context(), c.configPath)
		},
	}
}
