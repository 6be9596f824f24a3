package dashboard

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"jobportal-engine/internal/domain"
	"jobportal-engine/internal/store"
)

// PageCache stores the most recently fetched listing pages.
type PageCache interface {
	Save(ctx context.Context, keywords, location string, page int, jobs []domain.JobRecord, total int) error
	Load(ctx context.Context, keywords, location string, page int) ([]domain.JobRecord, int, bool, error)
}

// SQLiteCache backs PageCache with the engine database.
type SQLiteCache struct {
	DB *sql.DB
}

func (c SQLiteCache) Save(ctx context.Context, keywords, location string, page int, jobs []domain.JobRecord, total int) error {
	b, err := json.Marshal(jobs)
	if err != nil {
		return err
	}
	return store.CachePage(ctx, c.DB, store.CachedPage{
		Keywords:     keywords,
		Location:     location,
		Page:         page,
		Payload:      string(b),
		TotalResults: total,
		FetchedAt:    time.Now(),
	})
}

func (c SQLiteCache) Load(ctx context.Context, keywords, location string, page int) ([]domain.JobRecord, int, bool, error) {
	p, ok, err := store.LoadCachedPage(ctx, c.DB, keywords, location, page)
	if err != nil || !ok {
		return nil, 0, false, err
	}
	var jobs []domain.JobRecord
	if err := json.Unmarshal([]byte(p.Payload), &jobs); err != nil {
		return nil, 0, false, nil // unreadable cache rows are just misses
	}
	return jobs, p.TotalResults, true, nil
}
