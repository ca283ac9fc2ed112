// Package api exposes the calculator over HTTP as JSON for a browser front end.
package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rgehrsitz/marriagecalc/internal/domain"
	"github.com/rgehrsitz/marriagecalc/internal/logging"
)

const maxBodyBytes = 16 << 20

// Service is the calculation surface the API needs
type Service interface {
	GetPrograms(ctx context.Context, countryID string, h domain.Household) (domain.Bundle, error)
	GetCategorizedPrograms(ctx context.Context, countryID string, h domain.Household) (domain.Comparison, error)
	GetHeatmapData(ctx context.Context, countryID string, h domain.Household) (*domain.HeatmapSweep, error)
}

// Server serves the JSON API
type Server struct {
	Service        Service
	Logger         logging.Logger
	AllowedOrigins []string
	Timeout        time.Duration // per-request calculation budget; 0 means none
	AccessLog      io.Writer     // combined access log; nil disables it
}

// NewServer creates a server around a calculation service
func NewServer(service Service, logger logging.Logger) *Server {
	return &Server{
		Service:        service,
		Logger:         logging.OrNop(logger),
		AllowedOrigins: []string{"*"},
	}
}

// NewRouter registers every route
func (s *Server) NewRouter() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.health).Methods(http.MethodGet)
	r.HandleFunc("/api/countries", s.countries).Methods(http.MethodGet)

	r.HandleFunc("/api/{country}/metadata", s.metadata).Methods(http.MethodGet)
	r.HandleFunc("/api/{country}/situation", s.situation).Methods(http.MethodPost)
	r.HandleFunc("/api/{country}/programs", s.programs).Methods(http.MethodPost)
	r.HandleFunc("/api/{country}/compare", s.compare).Methods(http.MethodPost)
	r.HandleFunc("/api/{country}/heatmap", s.heatmap).Methods(http.MethodPost)
	r.HandleFunc("/api/{country}/cell", s.cell).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}

// Handler wraps the router with request ids, CORS, panic recovery and the
// optional access log
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.NewRouter()
	h = withRequestID(h)
	h = handlers.CORS(
		handlers.AllowedOrigins(s.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", RequestIDHeader}),
		handlers.ExposedHeaders([]string{RequestIDHeader}),
	)(h)
	h = handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{s.logger()}))(h)
	if s.AccessLog != nil {
		h = handlers.LoggingHandler(s.AccessLog, h)
	}
	return h
}

// ListenAndServe runs the API until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger().Infof("API listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) logger() logging.Logger {
	return logging.OrNop(s.Logger)
}

// requestContext applies the per-request calculation budget
func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	if s.Timeout > 0 {
		return context.WithTimeout(r.Context(), s.Timeout)
	}
	return context.WithCancel(r.Context())
}

type recoveryLogger struct {
	log logging.Logger
}

func (l recoveryLogger) Println(args ...interface{}) {
	l.log.Errorf("panic: %v", args)
}
