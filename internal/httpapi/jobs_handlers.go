package httpapi

import (
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"jobportal-engine/internal/config"
	"jobportal-engine/internal/dashboard"
)

type JobsHandler struct {
	Screen *dashboard.Screen
	CfgVal *atomic.Value // stores config.Config
}

// List serves one page of the listings screen. Fetch failures come back
// as a 200 with State.Error set; the shell renders them inline, not as a
// transport failure.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	cfg := h.CfgVal.Load().(config.Config)
	q := r.URL.Query()

	keywords := strings.TrimSpace(q.Get("keywords"))
	if keywords == "" {
		keywords = cfg.Search.Keywords
	}
	location := strings.TrimSpace(q.Get("location"))
	if location == "" {
		location = cfg.Search.Location
	}
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	writeJSON(w, h.Screen.Load(r.Context(), keywords, location, page))
}
