// Package dashboard owns the job-listings screen state: one paginated
// fetch at a time, page math, and a monotonic sequence guard so a stale
// in-flight response can never overwrite a newer one during a fast
// page-flip.
package dashboard

import (
	"context"
	"sync"
	"sync/atomic"

	"jobportal-engine/internal/domain"
	"jobportal-engine/internal/htmltext"
)

// PageSize is fixed by the backend's search endpoint.
const PageSize = 20

const snippetLen = 240

// TotalPages is max(1, ceil(total/PageSize)).
func TotalPages(totalResults int) int {
	if totalResults <= 0 {
		return 1
	}
	return (totalResults + PageSize - 1) / PageSize
}

// Lister is the slice of the backend client the dashboard needs.
type Lister interface {
	FetchJobs(ctx context.Context, keywords, location string, page int) ([]domain.JobRecord, int, error)
}

// Card is one rendered listing: the record plus a plain-text snippet of
// its HTML description.
type Card struct {
	domain.JobRecord
	Snippet string `json:"snippet"`
}

// State is what the UI shell renders.
type State struct {
	Loading      bool   `json:"loading"`
	Error        string `json:"error,omitempty"`
	Jobs         []Card `json:"jobs"`
	Page         int    `json:"page"`
	TotalPages   int    `json:"total_pages"`
	TotalResults int    `json:"total_results"`
	HasPrev      bool   `json:"has_prev"`
	HasNext      bool   `json:"has_next"`
	FromCache    bool   `json:"from_cache,omitempty"`
}

type Screen struct {
	client   Lister
	cache    PageCache // optional
	onLoaded func(State)

	seq uint64

	mu    sync.Mutex
	state State
}

func NewScreen(client Lister, cache PageCache, onLoaded func(State)) *Screen {
	s := &Screen{client: client, cache: cache, onLoaded: onLoaded}
	s.state = State{Page: 1, TotalPages: 1}
	return s
}

func (s *Screen) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Load fetches one page and applies the result unless a newer Load was
// issued meanwhile. Failure leaves the list empty with an inline error;
// there is no retry.
func (s *Screen) Load(ctx context.Context, keywords, location string, page int) State {
	if page < 1 {
		page = 1
	}
	seq := atomic.AddUint64(&s.seq, 1)

	s.mu.Lock()
	s.state.Loading = true
	s.mu.Unlock()

	jobs, total, err := s.client.FetchJobs(ctx, keywords, location, page)

	if err == nil && s.cache != nil {
		_ = s.cache.Save(ctx, keywords, location, page, jobs, total)
	}
	return s.apply(seq, page, jobs, total, err, false)
}

// Warm pre-populates the screen from the page cache so the shell has
// something to render before the first fetch (or while offline). A later
// Load always supersedes it.
func (s *Screen) Warm(ctx context.Context, keywords, location string) {
	if s.cache == nil {
		return
	}
	jobs, total, ok, err := s.cache.Load(ctx, keywords, location, 1)
	if err != nil || !ok {
		return
	}
	seq := atomic.LoadUint64(&s.seq)
	s.apply(seq, 1, jobs, total, nil, true)
}

func (s *Screen) apply(seq uint64, page int, jobs []domain.JobRecord, total int, err error, fromCache bool) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != atomic.LoadUint64(&s.seq) {
		// A newer request owns the screen now.
		return s.state
	}

	if err != nil {
		s.state = State{
			Error:      err.Error(),
			Page:       page,
			TotalPages: 1,
			HasPrev:    page > 1,
		}
		return s.state
	}

	tp := TotalPages(total)
	cards := make([]Card, 0, len(jobs))
	for _, j := range jobs {
		cards = append(cards, Card{JobRecord: j, Snippet: htmltext.Snippet(j.Description, snippetLen)})
	}
	s.state = State{
		Jobs:         cards,
		Page:         page,
		TotalPages:   tp,
		TotalResults: total,
		HasPrev:      page > 1,
		HasNext:      page < tp,
		FromCache:    fromCache,
	}
	if s.onLoaded != nil && !fromCache {
		s.onLoaded(s.state)
	}
	return s.state
}
