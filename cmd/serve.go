package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bnema/fibdrv/internal/adapters/httpapi"
	"github.com/bnema/fibdrv/internal/platform/config"
	"github.com/bnema/fibdrv/internal/platform/entrypoint"
	"github.com/spf13/cobra"
)

const serviceName = "fibdrv"

type serveConfig struct {
	Addr            string        `env:"FIBDRV_HTTP_ADDR" envDefault:"127.0.0.1:8080"`
	ShutdownTimeout time.Duration `env:"FIBDRV_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func newServeCmd(app *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose the device over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg serveConfig
			if err := config.ParseEnv(&cfg); err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			return entrypoint.RunWithTelemetry(ctx, serviceName, entrypoint.RunOptions{
				ShutdownTimeout: cfg.ShutdownTimeout,
				Logger:          app.logger,
			}, func(ctx context.Context) error {
				return serveHTTP(ctx, httpapi.NewServer(app.device, app.logger), cfg, app.logger, func(a net.Addr) {
					fmt.Fprintf(out, "listening on %s\n", a)
				})
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: FIBDRV_HTTP_ADDR or 127.0.0.1:8080)")

	return cmd
}

// serveHTTP serves api until ctx is done, then drains in-flight requests and
// releases any session the clients left open.
func serveHTTP(ctx context.Context, api *httpapi.Server, cfg serveConfig, logger *log.Logger, ready func(net.Addr)) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}

	srv := &http.Server{
		Handler:           api.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          logger,
	}

	if ready != nil {
		ready(ln.Addr())
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return api.Close()
		}
		return errors.Join(fmt.Errorf("serve http: %w", err), api.Close())
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := srv.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http: %w", err))
	}
	if err := api.Close(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
