package main

import (
	"github.com/spf13/cobra"

	"github.com/RobBrazier/booklister/config"
	"github.com/RobBrazier/booklister/internal/catalog"
	"github.com/RobBrazier/booklister/internal/server"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "booklister",
		Short: "Browse and manage a book collection served by a GraphQL API",
		Long: `Booklister is a web front end and command line client for a remote
book catalog.

Configuration is read from the environment, after loading .env when present.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadConfig(); err != nil {
				return err
			}
			server.SetupLogger()
			return nil
		},
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newBooksCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newWhoamiCmd())

	return cmd
}

// newService builds a catalog client authenticated with API_TOKEN.
func newService() catalog.Service {
	return catalog.NewService(catalog.Options{
		URL:      config.APIURL(),
		Token:    config.APIToken(),
		RetryMax: config.APIRetryMax(),
	})
}
