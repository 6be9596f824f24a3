package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"jobportal-engine/internal/domain"
	"jobportal-engine/internal/jobctx"
)

func writeJSON(w http.ResponseWriter, v any) {
	enc := json.NewEncoder(w)
	_ = enc.Encode(v)
}

func methodMux(m map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h, ok := m[r.Method]; ok {
			h(w, r)
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// resolveJob picks the job a request acts on: navigation state first, the
// persisted context second.
func resolveJob(ctx context.Context, store jobctx.Store, nav *domain.JobRecord) (domain.JobRecord, bool) {
	if nav != nil && nav.Usable() {
		return *nav, true
	}
	job, ok, err := store.Get(ctx)
	if err != nil || !ok {
		return domain.JobRecord{}, false
	}
	return job, true
}

func writeNoJobContext(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, http.StatusConflict, "no_job_context", "No job context found. Please select a job first.")
}
