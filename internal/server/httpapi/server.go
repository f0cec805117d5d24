// Package httpapi exposes the account and tea services over HTTP. It owns
// the router, the authentication gate, and the mapping from service errors
// to status codes; business rules stay in the services.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/teakeeper/internal/logging"
	"github.com/dmitrijs2005/teakeeper/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address    string
	logger     logging.Logger
	accounts   *services.AccountService
	teas       *services.TeaService
	jwtSecret  []byte
	corsOrigin string
}

func NewServer(address string, l logging.Logger, as *services.AccountService, ts *services.TeaService, secretKey string, corsOrigin string) *Server {
	return &Server{
		address:    address,
		logger:     l.With("module", "http_server"),
		accounts:   as,
		teas:       ts,
		jwtSecret:  []byte(secretKey),
		corsOrigin: corsOrigin,
	}
}

// Handler returns the fully assembled HTTP handler. Exposed separately from
// Run so tests and embedders can serve it however they like.
func (s *Server) Handler() http.Handler {
	return s.routes()
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// listener fails. Cancellation triggers a graceful shutdown.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
