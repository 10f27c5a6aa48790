package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/neurograph/neurograph/pkg/server"
)

// newServeCmd creates the serve command.
func newServeCmd(cfg *Config) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve <edgelist>",
		Short: "Serve the graph over a read-only HTTP JSON API",
		Long: `Serve loads the edge list once and exposes structural queries over HTTP.
The graph is frozen before the first request; handlers never mutate it,
so every endpoint is safe under concurrent load.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd.Context(), cfg, args[0])
			if err != nil {
				return err
			}

			if addr == "" {
				addr = cfg.Serve.Addr
			}
			logger := loggerFromContext(cmd.Context())
			srv := &http.Server{
				Addr:              addr,
				Handler:           server.New(g, logger).Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errc := make(chan error, 1)
			go func() { errc <- srv.ListenAndServe() }()
			printInfo("listening on http://%s", addr)

			select {
			case <-cmd.Context().Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("shutdown: %w", err)
				}
				logger.Info("server stopped")
				return cmd.Context().Err()
			case err := <-errc:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to config serve.addr)")
	return cmd
}
