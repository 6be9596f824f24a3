// config/overlay.go
package config

import "os"

// OverlayEnv applies environment overrides on top of the loaded file.
// The shell (or a .env in the data dir) can point the engine at a
// different backend without editing config.yml.
func OverlayEnv(cfg *Config) {
	if v := os.Getenv("PORTAL_BACKEND_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := os.Getenv("PORTAL_SESSION_URL"); v != "" {
		cfg.Identity.SessionURL = v
	}
}
