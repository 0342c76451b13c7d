package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Recompile stale translation units and relink the executable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jobs, _ := cmd.Flags().GetInt("jobs")
			force, _ := cmd.Flags().GetBool("force")
			watch, _ := cmd.Flags().GetBool("watch")

			if jobs < 0 {
				return zerr.With(domain.ErrInvalidJobs, "jobs", jobs)
			}

			opts := domain.BuildOptions{Jobs: jobs, Force: force}
			if watch {
				return c.app.Watch(cmd.Context(), c.configPath, opts)
			}
			return c.app.Build(cmd.Context(), c.configPath, opts)
		},
	}
	cmd.Flags().IntP("jobs", "j", 0, "Number of parallel compiles (default: jobs from the configuration)")
	cmd.Flags().BoolP("force", "B", false, "Recompile every translation unit")
	cmd.Flags().BoolP("watch", "w", false, "Rebuild whenever a source or header file changes")
	return cmd
}
