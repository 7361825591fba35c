package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fjod/go_storefront/internal/config"
	storehttp "github.com/fjod/go_storefront/internal/http"
	"github.com/fjod/go_storefront/internal/session"
	"github.com/fjod/go_storefront/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewServeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the storefront HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.HTTPPort, "port", cfg.HTTPPort, "HTTP port")
	cmd.Flags().DurationVar(&cfg.BadgePulse, "badge-pulse", cfg.BadgePulse, "how long the cart badge pulses after a change")
	cmd.Flags().DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "idle time after which a session cart is dropped")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	log, err := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})
	if err != nil {
		return err
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	c, closeCatalog, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	defer closeCatalog()
	log.Info("catalog ready", zap.String("source", cfg.CatalogSource))

	sessions := session.NewRegistry(session.Options{
		TTL:    cfg.SessionTTL,
		Pulse:  cfg.BadgePulse,
		Logger: log,
	})
	defer sessions.Close()

	handler, err := storehttp.NewRouter(storehttp.Deps{
		Catalog:        c,
		Sessions:       sessions,
		Logger:         log,
		RequestTimeout: cfg.RequestTimeout,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("storefront starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server...", zap.Int("live_sessions", sessions.Len()))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
		return err
	}

	log.Info("server exited")
	return nil
}
