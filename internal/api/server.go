package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/priorart/patdoc/internal/config"
	"github.com/priorart/patdoc/internal/pipeline"
)

// Server is the HTTP API server for patdoc.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/patents", s.handleIngest)
		r.Post("/api/patents/batch", s.handleBatchIngest)
		r.Get("/api/patents/jobs/{jobID}", s.handleIngestStatus)

		r.Get("/api/patents", s.handleListPatents)
		r.Get("/api/patents/{docID}", s.handleGetPatent)
		r.Delete("/api/patents/{docID}", s.handleDeletePatent)

		r.Get("/api/patents/{docID}/stats", s.handlePatentStats)
		r.Get("/api/patents/{docID}/bag-of-words", s.handleBagOfWords)
		r.Get("/api/patents/{docID}/encoding", s.handleEncoding)
		r.Post("/api/decode", s.handleDecode)

		r.Get("/api/stats/pipeline", s.handlePipelineStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
