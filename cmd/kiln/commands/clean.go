package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove build directories and caches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, _ := cmd.Flags().GetBool("env")
			all, _ := cmd.Flags().GetBool("all")

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				Env: env,
				All: all,
			})
		},
	}

	cmd.Flags().BoolP("env", "e", false, "Remove only the cached Visual Studio environment")
	cmd.Flags().BoolP("all", "a", false, "Remove the whole cache directory, including dependencies")

	return cmd
}
