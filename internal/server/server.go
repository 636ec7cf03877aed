package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"marketdeck/internal/logger"
)

// Serve runs the HTTP server until ctx is cancelled, then drains in-flight
// requests with a short grace period.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	logger.Info(ctx, "HTTP server listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info(shutdownCtx, "Shutting down HTTP server")
	return srv.Shutdown(shutdownCtx)
}
