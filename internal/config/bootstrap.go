package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

// Default returns the built-in configuration used when no default
// config.yml ships next to the binary. The backend URL matches the
// local development server.
func Default() Config {
	var cfg Config
	cfg.App.Port = 38573
	cfg.App.DataDir = "."
	cfg.Backend.BaseURL = "http://localhost:5000"
	cfg.Backend.TimeoutSeconds = 30
	cfg.Backend.RatePerSec = 4
	cfg.Backend.RateBurst = 4
	cfg.Identity.RefreshSeconds = 30
	cfg.Identity.Account = "default"
	cfg.Search.Keywords = "software engineer"
	cfg.Search.Location = "india"
	cfg.Courses.TopN = 5
	cfg.Interview.NumTechnical = 3
	cfg.Interview.NumBehavioral = 2
	cfg.Interview.NumSituational = 2
	cfg.Cache.MaxAgeDays = 7
	cfg.Cache.SweepSeconds = 3600
	return cfg
}

// EnsureUserConfig makes sure a writable config exists in the data dir.
// Prefers copying the shipped default file; falls back to Default().
func EnsureUserConfig(dataDir string, defaultPath string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	if copyFile(defaultPath, userPath) == nil {
		return userPath, nil
	}

	if err := SaveAtomic(userPath, Default()); err != nil {
		return "", err
	}
	return userPath, nil
}

func copyFile(srcPath, dstPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
