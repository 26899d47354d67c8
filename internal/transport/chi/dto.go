package chi

import (
	"time"

	"github.com/partitura-app/partitura/internal/domain"
	"github.com/partitura-app/partitura/internal/domain/search/result"
	domsug "github.com/partitura-app/partitura/internal/domain/suggest"
	healthuc "github.com/partitura-app/partitura/internal/usecase/health"
)

// errorCode is the machine-readable error discriminator in error envelopes.
type errorCode string

const (
	codeBadRequest    errorCode = "bad_request"
	codeWorkNotFound  errorCode = "work_not_found"
	codeTermNotFound  errorCode = "term_not_found"
	codeInternalError errorCode = "internal_error"
)

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

type workResponse struct {
	ID          int64     `json:"id"`
	Composer    string    `json:"composer"`
	Title       string    `json:"work_title"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	FilePath    string    `json:"file_path,omitempty"`
	FileSize    int64     `json:"file_size,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type termResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"term"`
	Definition string    `json:"definition"`
	CreatedAt  time.Time `json:"created_at"`
}

type categoryResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type suggestionResponse struct {
	Value string `json:"value"`
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type workHitResponse struct {
	workResponse
	SimilarityScore float64 `json:"similarity_score"`
	RelevanceScore  int     `json:"relevance_score"`
	MatchType       string  `json:"match_type"`
}

type termHitResponse struct {
	termResponse
	SimilarityScore float64 `json:"similarity_score"`
	RelevanceScore  int     `json:"relevance_score"`
	MatchType       string  `json:"match_type"`
}

type searchWorksResponse struct {
	Results       []workHitResponse `json:"results"`
	Total         int               `json:"total"`
	Query         string            `json:"query"`
	Alternatives  []string          `json:"alternatives"`
	MinSimilarity float64           `json:"min_similarity"`
}

type searchTermsResponse struct {
	Results       []termHitResponse `json:"results"`
	Total         int               `json:"total"`
	Query         string            `json:"query"`
	Alternatives  []string          `json:"alternatives"`
	MinSimilarity float64           `json:"min_similarity"`
}

type workListResponse struct {
	Items []workResponse `json:"items"`
	Total int            `json:"total"`
}

type termListResponse struct {
	Items []termResponse `json:"items"`
	Total int            `json:"total"`
}

type suggestionListResponse struct {
	Items []suggestionResponse `json:"items"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func workToResponse(w domain.Work) workResponse {
	return workResponse{
		ID:          w.ID,
		Composer:    w.Composer,
		Title:       w.Title,
		Category:    w.Category,
		Subcategory: w.Subcategory,
		FilePath:    w.FilePath,
		FileSize:    w.FileSize,
		CreatedAt:   w.CreatedAt,
	}
}

func termToResponse(t domain.Term) termResponse {
	return termResponse{
		ID:         t.ID,
		Name:       t.Name,
		Definition: t.Definition,
		CreatedAt:  t.CreatedAt,
	}
}

func workHitToResponse(h result.WorkHit) workHitResponse {
	return workHitResponse{
		workResponse:    workToResponse(h.Work),
		SimilarityScore: h.Similarity,
		RelevanceScore:  h.Relevance,
		MatchType:       string(h.Match),
	}
}

func termHitToResponse(h result.TermHit) termHitResponse {
	return termHitResponse{
		termResponse:    termToResponse(h.Term),
		SimilarityScore: h.Similarity,
		RelevanceScore:  h.Relevance,
		MatchType:       string(h.Match),
	}
}

func suggestionsToResponse(items []domsug.Suggestion) suggestionListResponse {
	out := make([]suggestionResponse, len(items))
	for i, s := range items {
		out[i] = suggestionResponse{Value: s.Value, Type: s.Type, Count: s.Count}
	}
	return suggestionListResponse{Items: out}
}

func healthToResponse(r healthuc.Report) healthResponse {
	checks := make(map[string]string, len(r.Checks))
	for k, v := range r.Checks {
		checks[k] = string(v)
	}
	return healthResponse{Status: string(r.Status), Checks: checks}
}
