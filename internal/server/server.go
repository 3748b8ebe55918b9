// Package server exposes the formatter and optimizer over HTTP. The HTTP
// layer owns request sanitization and validation; the core formatter behind
// it never fails a validated request.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"fxfmt/internal/beautify"
	"fxfmt/internal/formula"
	"fxfmt/internal/optimize"
	"fxfmt/internal/provider"
	"fxfmt/internal/store"
)

// Server handles the formatting HTTP API.
type Server struct {
	beautifier *beautify.Beautifier
	optimizer  *optimize.Optimizer
	history    store.Store
	name       string
	version    string
	mux        *http.ServeMux
}

// Option configures a Server.
type Option func(*Server)

// WithBeautifier sets the formatter.
func WithBeautifier(b *beautify.Beautifier) Option {
	return func(s *Server) { s.beautifier = b }
}

// WithOptimizer sets the AI optimizer.
func WithOptimizer(o *optimize.Optimizer) Option {
	return func(s *Server) { s.optimizer = o }
}

// WithHistory sets the request-history store. Recording is best effort; a
// failing store only logs.
func WithHistory(h store.Store) Option {
	return func(s *Server) { s.history = h }
}

// WithVersion sets the version reported by the index endpoint.
func WithVersion(version string) Option {
	return func(s *Server) { s.version = version }
}

// New creates a Server with the given options.
func New(opts ...Option) *Server {
	s := &Server{
		name:    "fxfmt",
		version: "dev",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.beautifier == nil {
		s.beautifier = beautify.New()
	}
	if s.optimizer == nil {
		s.optimizer = optimize.New(nil)
	}

	s.mux = http.NewServeMux()
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/format", s.handleFormat)
	s.mux.HandleFunc("/simplify", s.handleSimplify)
	return s
}

// ServeHTTP implements http.Handler with permissive CORS.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.mux.ServeHTTP(w, r)
}

type formulaRequest struct {
	Formula string `json:"formula"`
}

type formatResponse struct {
	Pretty string `json:"pretty"`
}

type simplifyResponse struct {
	Pretty     string `json:"pretty"`
	Simplified string `json:"simplified"`
	Comment    string `json:"comment"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// readFormula decodes, sanitizes, and validates the request body. When ok
// is false the error response has already been written.
func (s *Server) readFormula(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return "", false
	}

	var req formulaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return "", false
	}
	if req.Formula == "" {
		writeError(w, http.StatusUnprocessableEntity, "formula field is required")
		return "", false
	}

	f := formula.Sanitize(req.Formula)
	if err := formula.Validate(f); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return f, true
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"name":    s.name,
		"version": s.version,
		"endpoints": map[string]string{
			"/format":   "POST - beautify a formula",
			"/simplify": "POST - beautify and optimize a formula with AI",
			"/health":   "GET - health check",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	f, ok := s.readFormula(w, r)
	if !ok {
		return
	}

	pretty := s.beautifier.Beautify(f)
	s.record(store.Entry{Kind: store.KindFormat, Formula: f, Pretty: pretty})
	writeJSON(w, http.StatusOK, formatResponse{Pretty: pretty})
}

func (s *Server) handleSimplify(w http.ResponseWriter, r *http.Request) {
	f, ok := s.readFormula(w, r)
	if !ok {
		return
	}

	pretty := s.beautifier.Beautify(f)
	result, err := s.optimizer.Optimize(f, pretty)
	if err != nil {
		if errors.Is(err, optimize.ErrNoProvider) || errors.Is(err, provider.ErrMissingAPIKey) {
			writeError(w, http.StatusInternalServerError, "configuration error: "+err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, "error optimizing formula: "+err.Error())
		}
		return
	}

	s.record(store.Entry{
		Kind:       store.KindSimplify,
		Formula:    f,
		Pretty:     pretty,
		Simplified: result.Simplified,
		Comment:    result.Comment,
	})
	writeJSON(w, http.StatusOK, simplifyResponse{
		Pretty:     pretty,
		Simplified: result.Simplified,
		Comment:    result.Comment,
	})
}

func (s *Server) record(e store.Entry) {
	if s.history == nil {
		return
	}
	if err := s.history.Record(e); err != nil {
		log.Printf("record history: %v", err)
	}
}
