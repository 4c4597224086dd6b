package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/RobBrazier/booklister/internal/server"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web interface",
		Example: `  # Start on the configured PORT (8080 by default)
  booklister serve

  # Start on a custom port
  booklister serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, cleanup := server.NewServer()
			defer cleanup()
			if port > 0 {
				srv.Addr = fmt.Sprintf(":%d", port)
			}

			serverErr := make(chan error, 1)
			go func() {
				log.Info().Str("addr", srv.Addr).Msg("Booklister available")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			select {
			case <-cmd.Context().Done():
				log.Info().Msg("Shutting down server")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					log.Error().Err(err).Msg("Server shutdown failed")
					return err
				}
				log.Info().Msg("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides PORT)")

	return cmd
}
