package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"posterkit/internal/server"
	"posterkit/internal/web"
)

// Serve runs the poster HTTP server until interrupted.
//
// The listen address comes from config, overridable with --host and --port.
// Shutdown waits up to ten seconds for in-flight requests to drain.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd.String("config"))

	if host := cmd.String("host"); host != "" {
		config.Server.Host = host
	}
	if port := cmd.Int("port"); port != 0 {
		config.Server.Port = port
	}

	if config.Credentials.Spotify.ClientID == "" || config.Credentials.Spotify.ClientSecret == "" {
		r.logger.Warn("Spotify credentials are not configured; catalog requests will fail")
	}

	catalog := r.resolveCatalog(config)

	renderer, err := web.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	router := server.NewBasicRouter()
	router.Use(
		server.RequestID(),
		server.AccessLog(r.logger),
		server.Recover(r.logger),
		server.RateLimit(config.Server.RateLimit, int(config.Server.RateLimit)),
	)
	router.Handler(server.NewPosterHandler(catalog, renderer, r.logger))

	srv := &http.Server{
		Addr:         config.Server.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("starting server", "addr", srv.Addr, "catalog", catalog.Name())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		r.logger.Info("shutting down", "signal", sig)
	case <-ctx.Done():
		r.logger.Info("shutting down", "reason", ctx.Err())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	r.logger.Info("server stopped")
	return nil
}
