package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rightsteps/internal/apihandlers"
)

func newServeCmd() *cobra.Command {
	var (
		serveAddr string
		servePort int
	)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Starts an HTTP server exposing AI search, catalog browsing, search history,
health and Prometheus metrics. Stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appInstance, err := GetAppFromContext(cmd.Context())
			if err != nil {
				return err
			}
			cfg := appInstance.Config

			if !cmd.Flags().Changed("addr") {
				serveAddr = cfg.Server.Addr
			}
			if !cmd.Flags().Changed("port") {
				servePort = cfg.Server.Port
			}

			if log.GetLevel() < log.DebugLevel {
				gin.SetMode(gin.ReleaseMode)
			}
			router := apihandlers.NewRouter(&apihandlers.APIHandler{App: appInstance})

			listenAddr := net.JoinHostPort(serveAddr, strconv.Itoa(servePort))
			srv := &http.Server{Addr: listenAddr, Handler: router}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Infof("Starting Rightsteps API server on http://%s", listenAddr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("failed to run API server: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			log.Info("Shutting down API server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("graceful shutdown failed: %w", err)
			}
			log.Info("Rightsteps API server stopped.")
			return nil
		},
	}

	serveCmd.Flags().StringVar(&serveAddr, "addr", "0.0.0.0", "Address to listen on (overrides server.addr)")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides server.port)")
	return serveCmd
}
