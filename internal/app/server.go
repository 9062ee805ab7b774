package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Server wraps http.Server with graceful shutdown capabilities.
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	onShutdown      []func(ctx context.Context) error
}

// NewServer creates a new Server listening on port.
func NewServer(handler http.Handler, port string) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadTimeout:       defaultReadTimeout,
			ReadHeaderTimeout: defaultReadTimeout,
			WriteTimeout:      defaultWriteTimeout,
			IdleTimeout:       defaultIdleTimeout,
			MaxHeaderBytes:    1 << 20, // 1MB
		},
		shutdownTimeout: defaultShutdownTimeout,
	}
}

// OnShutdown registers fn to run after the listener has drained. Hooks run in
// registration order and share the shutdown deadline.
func (s *Server) OnShutdown(fn func(ctx context.Context) error) {
	s.onShutdown = append(s.onShutdown, fn)
}

// Run starts the server and blocks until SIGINT or SIGTERM is received.
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.RunContext(ctx)
}

// RunContext starts the server and blocks until ctx is done or the listener fails.
func (s *Server) RunContext(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("Server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		log.Info().Msg("Shutdown requested, draining connections")
	}

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server, then runs the shutdown hooks.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	var errs []error
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		errs = append(errs, err)
	}

	for _, fn := range s.onShutdown {
		if err := fn(ctx); err != nil {
			log.Error().Err(err).Msg("Shutdown hook failed")
			errs = append(errs, err)
		}
	}

	if len(errs) == 0 {
		log.Info().Msg("Server stopped gracefully")
	}
	return errors.Join(errs...)
}
