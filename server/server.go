// Package server exposes the movie listings over HTTP as JSON, for web
// front-ends. It is a thin surface over the TMDB client: every request maps
// to one client call and the response is the validated value, re-encoded.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/filmgrid/filmgrid/tmdb"
)

// Server serves movie listings as JSON.
type Server struct {
	api            tmdb.API
	logger         zerolog.Logger
	allowedOrigins []string
}

// New creates a Server. An empty allowedOrigins permits any origin.
func New(api tmdb.API, logger zerolog.Logger, allowedOrigins []string) *Server {
	return &Server{
		api:            api,
		logger:         logger,
		allowedOrigins: allowedOrigins,
	}
}

// Handler returns the full HTTP handler, CORS included.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/movies/{endpoint}", s.handleMovies)
	mux.HandleFunc("GET /api/configuration", s.handleConfiguration)
	mux.HandleFunc("GET /api/languages", s.handleLanguages)

	c := cors.Default()
	if len(s.allowedOrigins) > 0 {
		c = cors.New(cors.Options{AllowedOrigins: s.allowedOrigins})
	}
	return c.Handler(mux)
}

// ListenAndServe serves on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info().Str("addr", addr).Msg("Serving movie listings")
	return srv.ListenAndServe()
}

func (s *Server) handleMovies(w http.ResponseWriter, r *http.Request) {
	endpoint, err := tmdb.ParseListEndpoint(r.PathValue("endpoint"))
	if err != nil {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid page parameter"})
			return
		}
	}

	listing, err := s.api.ListMoviesPage(r.Context(), endpoint, page)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, listing)
}

func (s *Server) handleConfiguration(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.api.Configuration(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	codes, err := s.api.LanguageCodes(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, codes)
}

// writeError maps client errors onto the serving surface. Remote errors are
// mirrored with their TMDB code and message; everything else becomes an
// opaque upstream failure, details stay in the logs.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var apiErr *tmdb.APIError
	if errors.As(err, &apiErr) {
		status := http.StatusBadGateway
		if apiErr.IsNotFound() {
			status = http.StatusNotFound
		}
		s.writeJSON(w, status, map[string]any{
			"status_code":    apiErr.StatusCode,
			"status_message": apiErr.Message,
		})
		return
	}

	s.logger.Error().Err(err).Msg("Upstream request failed")
	s.writeJSON(w, http.StatusBadGateway, map[string]string{"error": "upstream request failed"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error().Err(err).Msg("Failed to write JSON response")
	}
}
