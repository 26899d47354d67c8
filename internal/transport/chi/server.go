// Package chi is the HTTP JSON API over the catalog, search, and suggestion
// services.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	gochi "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/partitura-app/partitura/internal/domain"
	"github.com/partitura-app/partitura/internal/domain/search/request"
	domsug "github.com/partitura-app/partitura/internal/domain/suggest"
	cataloguc "github.com/partitura-app/partitura/internal/usecase/catalog"
	healthuc "github.com/partitura-app/partitura/internal/usecase/health"
	searchuc "github.com/partitura-app/partitura/internal/usecase/search"
	suggestuc "github.com/partitura-app/partitura/internal/usecase/suggest"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the HTTP handlers for the API surface.
type Server struct {
	search        *searchuc.Service
	suggestions   *suggestuc.Service
	catalog       *cataloguc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	suggestions *suggestuc.Service,
	catalog *cataloguc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:      search,
		suggestions: suggestions,
		catalog:     catalog,
		health:      health,
		logger:      logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrWorkNotFound, http.StatusNotFound, codeWorkNotFound),
		sentinelHandler(domain.ErrTermNotFound, http.StatusNotFound, codeTermNotFound),
	}
	return s
}

// Routes mounts all API handlers on the router.
func (s *Server) Routes(r gochi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api", func(r gochi.Router) {
		r.Route("/search", func(r gochi.Router) {
			r.Get("/works", s.SearchWorks)
			r.Get("/terms", s.SearchTerms)
			r.Get("/suggestions", s.Suggestions)
		})
		r.Route("/works", func(r gochi.Router) {
			r.Get("/", s.ListWorks)
			r.Get("/categories", s.Categories)
			r.Get("/{id}", s.GetWork)
		})
		r.Route("/terms", func(r gochi.Router) {
			r.Get("/", s.ListTerms)
			r.Get("/{id}", s.GetTerm)
		})
	})
}

// SearchWorks handles GET /api/search/works.
func (s *Server) SearchWorks(w http.ResponseWriter, r *http.Request) {
	opts, err := searchOptions(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	out, err := s.search.SearchWorks(r.Context(), r.URL.Query().Get("q"), opts)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	results := make([]workHitResponse, len(out.Results))
	for i, h := range out.Results {
		results[i] = workHitToResponse(h)
	}
	writeJSON(w, http.StatusOK, searchWorksResponse{
		Results:       results,
		Total:         out.Total,
		Query:         out.Query,
		Alternatives:  out.Alternatives,
		MinSimilarity: out.MinSimilarity,
	})
}

// SearchTerms handles GET /api/search/terms.
func (s *Server) SearchTerms(w http.ResponseWriter, r *http.Request) {
	opts, err := searchOptions(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	out, err := s.search.SearchTerms(r.Context(), r.URL.Query().Get("q"), opts)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	results := make([]termHitResponse, len(out.Results))
	for i, h := range out.Results {
		results[i] = termHitToResponse(h)
	}
	writeJSON(w, http.StatusOK, searchTermsResponse{
		Results:       results,
		Total:         out.Total,
		Query:         out.Query,
		Alternatives:  out.Alternatives,
		MinSimilarity: out.MinSimilarity,
	})
}

// Suggestions handles GET /api/search/suggestions.
func (s *Server) Suggestions(w http.ResponseWriter, r *http.Request) {
	kind, err := domsug.ParseKind(r.URL.Query().Get("type"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	items := s.suggestions.Suggest(r.Context(), r.URL.Query().Get("q"), kind, limit)
	writeJSON(w, http.StatusOK, suggestionsToResponse(items))
}

// ListWorks handles GET /api/works.
func (s *Server) ListWorks(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	q := r.URL.Query()
	works, total, err := s.catalog.ListWorks(r.Context(), domain.WorkFilter{
		Composer: q.Get("composer"),
		Title:    q.Get("title"),
		Category: q.Get("category"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]workResponse, len(works))
	for i, wk := range works {
		items[i] = workToResponse(wk)
	}
	writeJSON(w, http.StatusOK, workListResponse{Items: items, Total: total})
}

// GetWork handles GET /api/works/{id}.
func (s *Server) GetWork(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	work, err := s.catalog.GetWork(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workToResponse(work))
}

// Categories handles GET /api/works/categories.
func (s *Server) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.catalog.Categories(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]categoryResponse, len(cats))
	for i, c := range cats {
		items[i] = categoryResponse{Name: c.Name, Count: c.Count}
	}
	writeJSON(w, http.StatusOK, items)
}

// ListTerms handles GET /api/terms.
func (s *Server) ListTerms(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	terms, total, err := s.catalog.ListTerms(r.Context(), r.URL.Query().Get("search"), limit, offset)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]termResponse, len(terms))
	for i, t := range terms {
		items[i] = termToResponse(t)
	}
	writeJSON(w, http.StatusOK, termListResponse{Items: items, Total: total})
}

// GetTerm handles GET /api/terms/{id}.
func (s *Server) GetTerm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	term, err := s.catalog.GetTerm(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, termToResponse(term))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}
	writeJSON(w, httpStatus, healthToResponse(report))
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func searchOptions(r *http.Request) (request.Options, error) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		return request.Options{}, err
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		return request.Options{}, err
	}

	opts := request.Options{Limit: limit, Offset: offset}
	if raw := r.URL.Query().Get("min_similarity"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return request.Options{}, errors.New("min_similarity must be a number")
		}
		opts.MinSimilarity = &v
	}
	return opts, nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return v, nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(gochi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// safeDomainMessage returns a sentinel error message for the client without
// exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrWorkNotFound,
		domain.ErrTermNotFound,
		domain.ErrNotFound,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
