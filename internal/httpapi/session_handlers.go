package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync/atomic"

	"jobportal-engine/internal/config"
	"jobportal-engine/internal/secrets"
	"jobportal-engine/internal/session"
)

// SessionSource is what the auth gate consults per request.
type SessionSource interface {
	Snapshot() session.Session
}

type SessionHandler struct {
	Watcher *session.Watcher
	CfgVal  *atomic.Value // stores config.Config
}

func (h SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Watcher.Snapshot())
}

// SetToken stores the identity-provider token in the OS keychain and
// refreshes the session snapshot so the gate opens without waiting for
// the next scheduled check.
func (h SessionHandler) SetToken(w http.ResponseWriter, r *http.Request) {
	var req tokenPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if strings.TrimSpace(req.Token) == "" {
		WriteError(w, r, http.StatusBadRequest, "token_required", "token is empty")
		return
	}

	cfg := h.CfgVal.Load().(config.Config)
	if err := secrets.SetSessionToken(secrets.SessionKeyringAccount(cfg), req.Token); err != nil {
		WriteError(w, r, http.StatusBadRequest, "keyring_error", "failed to store token: "+err.Error())
		return
	}
	_ = h.Watcher.Refresh(r.Context())
	writeJSON(w, h.Watcher.Snapshot())
}

func (h SessionHandler) DeleteToken(w http.ResponseWriter, r *http.Request) {
	cfg := h.CfgVal.Load().(config.Config)
	if err := secrets.DeleteSessionToken(secrets.SessionKeyringAccount(cfg)); err != nil {
		WriteError(w, r, http.StatusBadRequest, "keyring_error", "failed to delete token: "+err.Error())
		return
	}
	_ = h.Watcher.Refresh(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// RequireSession keeps the portal screens behind the sign-in gate. The
// shell redirects to its login screen on the signed_out code.
func RequireSession(src SessionSource) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !src.Snapshot().SignedIn {
				WriteError(w, r, http.StatusUnauthorized, "signed_out", "Please sign in to continue.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
