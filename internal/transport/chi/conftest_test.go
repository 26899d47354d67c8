package chi

import (
	"context"
	"net/http"

	gochi "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/partitura-app/partitura/internal/domain"
	domsug "github.com/partitura-app/partitura/internal/domain/suggest"
	cataloguc "github.com/partitura-app/partitura/internal/usecase/catalog"
	healthuc "github.com/partitura-app/partitura/internal/usecase/health"
	searchuc "github.com/partitura-app/partitura/internal/usecase/search"
	suggestuc "github.com/partitura-app/partitura/internal/usecase/suggest"
)

// --- Store stubs ---

type stubStores struct {
	works []domain.Work
	terms []domain.Term

	workErr error
	termErr error
	pingErr error
}

func (s *stubStores) SearchCandidates(_ context.Context, _ []string, _ string) ([]domain.Work, error) {
	return s.works, s.workErr
}

func (s *stubStores) List(_ context.Context, _ domain.WorkFilter) ([]domain.Work, int, error) {
	return s.works, len(s.works), s.workErr
}

func (s *stubStores) Get(_ context.Context, id int64) (domain.Work, error) {
	for _, w := range s.works {
		if w.ID == id {
			return w, nil
		}
	}
	return domain.Work{}, domain.ErrWorkNotFound
}

func (s *stubStores) Categories(_ context.Context) ([]domain.Category, error) {
	return []domain.Category{{Name: "Фортепиано", Count: 2}}, s.workErr
}

func (s *stubStores) DistinctComposers(_ context.Context, _ string, _ int) ([]domsug.Suggestion, error) {
	items := make([]domsug.Suggestion, 0, len(s.works))
	for _, w := range s.works {
		items = append(items, domsug.Suggestion{Value: w.Composer, Type: "composer", Count: 1})
	}
	return items, s.workErr
}

func (s *stubStores) DistinctTitles(_ context.Context, _ string, _ int) ([]domsug.Suggestion, error) {
	return nil, s.workErr
}

func (s *stubStores) DistinctCategories(_ context.Context, _ string, _ int) ([]domsug.Suggestion, error) {
	return nil, s.workErr
}

type stubTermStore struct {
	parent *stubStores
}

func (s *stubTermStore) SearchCandidates(_ context.Context, _ []string, _ string) ([]domain.Term, error) {
	return s.parent.terms, s.parent.termErr
}

func (s *stubTermStore) List(_ context.Context, _ string, _, _ int) ([]domain.Term, int, error) {
	return s.parent.terms, len(s.parent.terms), s.parent.termErr
}

func (s *stubTermStore) Get(_ context.Context, id int64) (domain.Term, error) {
	for _, t := range s.parent.terms {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Term{}, domain.ErrTermNotFound
}

type stubPinger struct {
	err *error
}

func (s *stubPinger) Ping(_ context.Context) error { return *s.err }

// newTestHandler wires a full router over the stub stores.
func newTestHandler(stores *stubStores) http.Handler {
	terms := &stubTermStore{parent: stores}

	searchSvc := searchuc.New(stores, terms, searchuc.Defaults{
		WorksMinSimilarity: 0.6,
		TermsMinSimilarity: 0.5,
	})
	suggestSvc := suggestuc.New(stores, nil, 10)
	catalogSvc := cataloguc.New(stores, terms)
	healthSvc := healthuc.New(&stubPinger{err: &stores.pingErr}, nil)

	server := NewServer(searchSvc, suggestSvc, catalogSvc, healthSvc, zap.NewNop())

	r := gochi.NewRouter()
	server.Routes(r)
	return r
}
