// Package jobctx persists the job record the interview-prep flow acts on,
// so the flow survives a UI reload when navigation state is gone.
package jobctx

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"

	"jobportal-engine/internal/domain"
	"jobportal-engine/internal/store"
)

// Key is the single well-known slot. Matches the browser app's
// localStorage name so existing exports stay meaningful.
const Key = "practicingJob"

// Store is the persistence adapter behind the AI screens. Only the
// interview-prep flow writes it; everything else reads at most once.
type Store interface {
	Get(ctx context.Context) (domain.JobRecord, bool, error)
	Set(ctx context.Context, job domain.JobRecord) error
	Clear(ctx context.Context) error
}

// SQLite backs the adapter with the engine database.
type SQLite struct {
	DB *sql.DB
}

func (s SQLite) Get(ctx context.Context) (domain.JobRecord, bool, error) {
	payload, ok, err := store.LoadJobContext(ctx, s.DB, Key)
	if err != nil || !ok {
		return domain.JobRecord{}, false, err
	}
	var job domain.JobRecord
	if err := json.Unmarshal([]byte(payload), &job); err != nil {
		// Unreadable payloads are treated as absent, not fatal.
		return domain.JobRecord{}, false, nil
	}
	return job, job.Usable(), nil
}

func (s SQLite) Set(ctx context.Context, job domain.JobRecord) error {
	b, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return store.SaveJobContext(ctx, s.DB, Key, string(b))
}

func (s SQLite) Clear(ctx context.Context) error {
	return store.ClearJobContext(ctx, s.DB, Key)
}

// Memory is the test double.
type Memory struct {
	mu  sync.Mutex
	job *domain.JobRecord
}

func (m *Memory) Get(ctx context.Context) (domain.JobRecord, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.job == nil {
		return domain.JobRecord{}, false, nil
	}
	// Same contract as SQLite: an unusable record reads as absent.
	return *m.job, m.job.Usable(), nil
}

func (m *Memory) Set(ctx context.Context, job domain.JobRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j := job
	m.job = &j
	return nil
}

func (m *Memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.job = nil
	return nil
}
