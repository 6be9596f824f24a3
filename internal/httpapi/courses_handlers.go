package httpapi

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"jobportal-engine/internal/config"
	"jobportal-engine/internal/domain"
	"jobportal-engine/internal/events"
	"jobportal-engine/internal/htmltext"
	"jobportal-engine/internal/jobctx"
)

type CoursesHandler struct {
	AI     AIClient
	JobCtx jobctx.Store
	CfgVal *atomic.Value // stores config.Config
	Hub    *events.Hub
}

// Recommend fetches course recommendations for the context job. An empty
// list is a normal 200; the shell shows its own "no recommendations"
// notice. Backend failures pass the message through verbatim.
func (h CoursesHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req jobPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	job, ok := resolveJob(r.Context(), h.JobCtx, req.Job)
	if !ok {
		writeNoJobContext(w, r)
		return
	}

	cfg := h.CfgVal.Load().(config.Config)
	courses, err := h.AI.PredictCourses(r.Context(), job.Title, htmltext.Plain(job.Description), cfg.Courses.TopN)
	if err != nil {
		WriteError(w, r, http.StatusBadGateway, "backend_error", err.Error())
		return
	}
	if courses == nil {
		courses = []domain.CourseRecommendation{} // keep the JSON array non-null
	}

	h.Hub.Notify(events.TypeCoursesReady)
	writeJSON(w, map[string]any{
		"job_title": job.Title,
		"courses":   courses,
	})
}
