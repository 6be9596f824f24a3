package httpapi

import (
	"encoding/json"
	"net/http"

	"jobportal-engine/internal/events"
	"jobportal-engine/internal/jobctx"
)

// FeatureMatchScore etc. are the entries of the AI-features modal.
const (
	FeatureMatchScore = "match-score"
	FeatureCourses    = "courses"
	FeatureInterview  = "interview"
)

type FeaturesHandler struct {
	JobCtx jobctx.Store
	Hub    *events.Hub
}

// Open resolves the job the modal acts on. A request carrying a job is a
// fresh selection and replaces the persisted context; one without falls
// back to it. No context anywhere is a 409 the shell turns into the
// "select a job first" notice.
func (h FeaturesHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req jobPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	if req.Job != nil && req.Job.Usable() {
		if err := h.JobCtx.Set(r.Context(), *req.Job); err != nil {
			WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
			return
		}
		reqID := RequestIDFrom(r.Context())
		h.Hub.Publish(events.MakeEvent(reqID, events.TypeJobSelected, 1, map[string]any{"id": req.Job.ID}))
	}

	job, ok := resolveJob(r.Context(), h.JobCtx, req.Job)
	if !ok {
		writeNoJobContext(w, r)
		return
	}

	writeJSON(w, map[string]any{
		"job":      job,
		"features": []string{FeatureMatchScore, FeatureCourses, FeatureInterview},
	})
}
