package httpapi

import (
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"

	"jobportal-engine/internal/config"
	"jobportal-engine/internal/events"
	"jobportal-engine/internal/interview"
	"jobportal-engine/internal/jobctx"
)

// InterviewHandler owns the single active practice flow. Starting a new
// one replaces the old; that is also how a finished flow gets re-run.
type InterviewHandler struct {
	Client interview.Client
	JobCtx jobctx.Store
	CfgVal *atomic.Value // stores config.Config
	Hub    *events.Hub

	mu   sync.Mutex
	flow *interview.Flow
}

func (h *InterviewHandler) current() *interview.Flow {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.flow
}

// Start creates a fresh flow and runs it to the answering phase (or an
// error phase). Phase errors are screen states, so the response is a 200
// either way.
func (h *InterviewHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req jobPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	cfg := h.CfgVal.Load().(config.Config)
	opts := interview.Options{
		NumTechnical:   cfg.Interview.NumTechnical,
		NumBehavioral:  cfg.Interview.NumBehavioral,
		NumSituational: cfg.Interview.NumSituational,
	}
	flow := interview.NewFlow(h.Client, h.JobCtx, opts, h.Hub.Notify)

	h.mu.Lock()
	h.flow = flow
	h.mu.Unlock()

	writeJSON(w, flow.Start(r.Context(), req.Job))
}

func (h *InterviewHandler) State(w http.ResponseWriter, r *http.Request) {
	flow := h.current()
	if flow == nil {
		WriteError(w, r, http.StatusConflict, "no_interview", "No interview in progress.")
		return
	}
	writeJSON(w, flow.Snapshot())
}

func (h *InterviewHandler) Answers(w http.ResponseWriter, r *http.Request) {
	flow := h.current()
	if flow == nil {
		WriteError(w, r, http.StatusConflict, "no_interview", "No interview in progress.")
		return
	}
	var req answersPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if err := flow.SetAnswers(req.Answers); err != nil {
		WriteError(w, r, http.StatusConflict, "wrong_phase", err.Error())
		return
	}
	writeJSON(w, flow.Snapshot())
}

func (h *InterviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	flow := h.current()
	if flow == nil {
		WriteError(w, r, http.StatusConflict, "no_interview", "No interview in progress.")
		return
	}
	writeJSON(w, flow.Submit(r.Context()))
}
