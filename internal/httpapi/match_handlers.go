package httpapi

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"jobportal-engine/internal/domain"
	"jobportal-engine/internal/htmltext"
	"jobportal-engine/internal/jobctx"
	"jobportal-engine/internal/match"
)

// Resume uploads are small documents; anything bigger is not a resume.
const maxResumeBytes = 10 << 20

type MatchHandler struct {
	AI     AIClient
	JobCtx jobctx.Store
}

type matchResponse struct {
	Score       float64 `json:"score"`
	Display     string  `json:"display"`
	Band        string  `json:"band"`
	Explanation string  `json:"explanation"`
}

// Score accepts a multipart form with the resume under "resume" and an
// optional "job" JSON field carrying navigation state. The file must be
// present and .pdf or .txt before anything goes to the backend.
func (h MatchHandler) Score(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxResumeBytes); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_form", "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "resume_required", "Please upload your resume file.")
		return
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".pdf", ".txt":
	default:
		WriteError(w, r, http.StatusBadRequest, "unsupported_file_type", "Only .pdf and .txt resumes are supported.")
		return
	}

	var nav *domain.JobRecord
	if raw := r.FormValue("job"); raw != "" {
		var j domain.JobRecord
		if err := json.Unmarshal([]byte(raw), &j); err != nil {
			WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid job payload")
			return
		}
		nav = &j
	}
	job, ok := resolveJob(r.Context(), h.JobCtx, nav)
	if !ok {
		writeNoJobContext(w, r)
		return
	}

	score, err := h.AI.MatchScore(r.Context(), header.Filename, file, htmltext.Plain(job.Description))
	if err != nil {
		WriteError(w, r, http.StatusBadGateway, "backend_error", err.Error())
		return
	}

	writeJSON(w, matchResponse{
		Score:       score,
		Display:     match.Display(score),
		Band:        match.Band(score),
		Explanation: match.Explanation(score),
	})
}
