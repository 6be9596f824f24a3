package httpapi

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"sync/atomic"

	"jobportal-engine/internal/config"
	"jobportal-engine/internal/events"
)

type ConfigHandler struct {
	CfgVal      *atomic.Value // stores config.Config
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
	Hub         *events.Hub
}

func (h ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	cur := h.CfgVal.Load().(config.Config)
	writeJSON(w, cur)
}

// Put validates, saves atomically, reloads, then swaps the live config.
// The reload goes through the same loader main() uses so env overlays
// apply consistently.
func (h ConfigHandler) Put(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var incoming config.Config
	if err := dec.Decode(&incoming); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}
	if dec.More() {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: trailing data")
		return
	}

	normalized, vr := config.NormalizeAndValidate(incoming)
	if !vr.OK() {
		// Return structured errors so the UI can show them nicely
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(vr)
		return
	}

	if err := config.SaveAtomic(h.UserCfgPath, normalized); err != nil {
		WriteError(w, r, http.StatusBadRequest, "save_failed", err.Error())
		return
	}

	saved, err := h.LoadCfg()
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "reload_failed", "saved but reload failed: "+err.Error())
		return
	}
	h.CfgVal.Store(saved)
	if h.Hub != nil {
		h.Hub.Notify(events.TypeConfigUpdated)
	}
	writeJSON(w, saved)
}

func (h ConfigHandler) Path(w http.ResponseWriter, r *http.Request) {
	abs, _ := filepath.Abs(h.UserCfgPath)
	writeJSON(w, map[string]any{"path": abs})
}

func (h ConfigHandler) Validate(w http.ResponseWriter, r *http.Request) {
	cur := h.CfgVal.Load().(config.Config)
	_, vr := config.NormalizeAndValidate(cur)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(vr)
}
