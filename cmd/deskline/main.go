package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/deskline-inc/deskline/internal/interfaces/cli/events"
	"github.com/deskline-inc/deskline/internal/interfaces/cli/migrate"
	"github.com/deskline-inc/deskline/internal/interfaces/cli/server"
	"github.com/deskline-inc/deskline/internal/interfaces/cli/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "deskline",
		Short:        "Deskline - helpdesk ticketing backend",
		Long:         `Deskline serves the helpdesk ticket API and ships its migration and event tooling.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		events.NewCommand(),
		version.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
