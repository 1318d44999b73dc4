// Package server exposes the profile store and the advisor over a JSON API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"

	"github.com/jwulff/diabeyes-go/internal/advice"
	"github.com/jwulff/diabeyes-go/internal/logger"
	"github.com/jwulff/diabeyes-go/internal/profile"
)

const shutdownTimeout = 5 * time.Second

// Server serves the diabeyes HTTP API.
type Server struct {
	profiles *profile.Store
	advice   advice.Fetcher
	chat     advice.Fetcher
	log      *logger.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger.
func WithLogger(log *logger.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithChat overrides the chat responder. The default is advice.CannedChat.
func WithChat(f advice.Fetcher) Option {
	return func(s *Server) {
		if f != nil {
			s.chat = f
		}
	}
}

// New creates a server over a profile store and an advice collaborator.
// A nil collaborator is replaced by an advice.Client with default settings.
func New(profiles *profile.Store, f advice.Fetcher, opts ...Option) *Server {
	if f == nil {
		f = advice.NewClient("", 0)
	}
	s := &Server{
		profiles: profiles,
		advice:   f,
		chat:     advice.CannedChat{},
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "server")
	return s
}

// Router returns the route table without middleware.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods("GET")

	r.HandleFunc("/api/profile", s.handleGetProfile).Methods("GET")
	r.HandleFunc("/api/profile", s.handleUpdateProfile).Methods("PATCH")
	r.HandleFunc("/api/profile", s.handleSaveProfile).Methods("PUT")
	r.HandleFunc("/api/profile", s.handleResetProfile).Methods("DELETE")

	r.HandleFunc("/api/glucose/classify", s.handleClassify).Methods("GET")
	r.HandleFunc("/api/diet-plan", s.handleDietPlan).Methods("GET")
	r.HandleFunc("/api/exercise-plan", s.handleExercisePlan).Methods("GET")
	r.HandleFunc("/api/health-insights", s.handleHealthInsights).Methods("GET")
	r.HandleFunc("/api/findings/recommendations", s.handleFindingRecommendations).Methods("GET")
	r.HandleFunc("/api/exercise-suggestions", s.handleExerciseSuggestions).Methods("POST")
	r.HandleFunc("/api/chat", s.handleChat).Methods("POST")

	return r
}

// Handler returns the full handler: CORS, request logging and routes.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(s.loggingMiddleware(s.Router()))
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("server starting", "addr", addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// loggingMiddleware logs method, path, status and duration. Bodies carry
// health data and are never logged.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapper.statusCode,
			"duration", time.Since(start),
		)
	})
}

type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
