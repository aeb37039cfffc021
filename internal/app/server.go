package app

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// runServer starts the HTTP server and blocks until ctx is cancelled.
func (a *App) runServer(ctx context.Context) error {
	// Expired sessions from earlier runs are dead weight; sweep them once
	// at startup.
	if err := a.sessionStorage.DeleteExpiredSessions(ctx); err != nil {
		a.logger.Warn("failed to sweep expired sessions", "error", err)
	}

	serverAddr := fmt.Sprintf(":%s", a.Config.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: a.blogHandler.Routes(a.Config.RequestTimeout),
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutdown signal received, stopping server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	a.logger.Info("server stopped")
	return nil
}
