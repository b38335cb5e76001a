package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deskline-inc/deskline/internal/shared/version"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			fmt.Fprintf(cmd.OutOrStdout(), "deskline %s (commit %s, built %s)\n", info.Version, info.Commit, info.BuildTime)
		},
	}
}
