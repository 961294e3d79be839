// ABOUTME: HTTP server setup and route registration
// ABOUTME: chi router with CORS, request logging and per-IP rate limiting

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"quizzer-app-api/api/handlers"
	"quizzer-app-api/api/middleware"
	"quizzer-app-api/core/interfaces"
)

// Handlers bundles the endpoint handlers registered on the server.
type Handlers struct {
	Tab      *handlers.TabHandler
	Generate *handlers.GenerateHandler
	History  *handlers.HistoryHandler
}

// Server is the HTTP API server.
type Server struct {
	server *http.Server
	logger interfaces.Logger
}

// NewServer builds the router and wraps it in an http.Server listening
// on port.
func NewServer(port string, logger interfaces.Logger, h Handlers, limiter *middleware.RateLimiter) *Server {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	router.Use(middleware.RequestLoggingMiddleware(logger))
	router.Use(limiter.Middleware)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	router.Post("/tab/extract", h.Tab.Extract)

	router.Route("/generate", func(r chi.Router) {
		r.Post("/summary", h.Generate.Summary)
		r.Post("/quiz", h.Generate.Quiz)
		r.Post("/crossword", h.Generate.Crossword)
		r.Post("/suggestions", h.Generate.Suggestions)
		r.Post("/flashcard", h.Generate.Flashcard)
		r.Post("/imagescore", h.Generate.ImageScore)
	})

	router.Post("/history/answers", h.History.Record)
	router.Get("/history/answers", h.History.List)
	router.Get("/flashcards", h.Generate.ListFlashcards)

	return &Server{
		server: &http.Server{
			Addr:         ":" + port,
			Handler:      router,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 5 * time.Minute, // model downloads can be slow
			IdleTimeout:  120 * time.Second,
		},
		logger: logger,
	}
}

// Start begins serving. Blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": s.server.Addr,
	})
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server", nil)
	return s.server.Shutdown(ctx)
}
