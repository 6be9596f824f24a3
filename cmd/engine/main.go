package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"jobportal-engine/internal/backend"
	"jobportal-engine/internal/config"
	"jobportal-engine/internal/dashboard"
	"jobportal-engine/internal/events"
	"jobportal-engine/internal/httpapi"
	"jobportal-engine/internal/jobctx"
	"jobportal-engine/internal/scheduler"
	"jobportal-engine/internal/secrets"
	"jobportal-engine/internal/session"
	"jobportal-engine/internal/store"
)

func main() {
	// Optional .env next to the binary; the shell sets the same vars when
	// it spawns the engine.
	_ = godotenv.Load()

	// Engine data dir: use env if provided (the shell passes one), else local folder.
	dataDir := os.Getenv("PORTAL_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One engine per data dir.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("instance lock: %v", err)
	}
	if !locked {
		log.Fatalf("another engine is already running for %s", dataDir)
	}
	defer lock.Unlock()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable.
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		cfg, err := config.Load(userCfgPath)
		if err != nil {
			return cfg, err
		}
		config.OverlayEnv(&cfg)
		normalized, vr := config.NormalizeAndValidate(cfg)
		for _, warn := range vr.Warnings {
			log.Printf("level=warn msg=\"config\" detail=%q", warn)
		}
		if !vr.OK() {
			return cfg, fmt.Errorf("invalid config: %s", strings.Join(vr.Errors, "; "))
		}
		return normalized, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	db, err := store.Open(filepath.Join(dataDir, "jobportal.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal(err)
	}

	hub := events.NewHub()

	// Session gate: token lives in the OS keyring, identity checks are
	// cached by the watcher and refreshed on a schedule.
	provider := &session.HTTPProvider{
		SessionURL: cfg.Identity.SessionURL,
		Token: func() (string, error) {
			cur := cfgVal.Load().(config.Config)
			return secrets.GetSessionToken(secrets.SessionKeyringAccount(cur))
		},
	}
	sessions := session.NewWatcher(provider, func(s session.Session) {
		hub.Publish(events.MakeEvent("", events.TypeSessionChanged, 1, s))
	})
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		_ = sessions.Refresh(ctx)
		cancel()
	}

	limiter := backend.NewHostLimiter(cfg.Backend.RatePerSec, cfg.Backend.RateBurst)
	client := backend.New(cfg.Backend.BaseURL, time.Duration(cfg.Backend.TimeoutSeconds)*time.Second, limiter)

	screen := dashboard.NewScreen(client, dashboard.SQLiteCache{DB: db.Pool}, func(dashboard.State) {
		hub.Notify(events.TypeJobsLoaded)
	})
	// Show the cached first page while the first live fetch is in flight.
	{
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		screen.Warm(ctx, cfg.Search.Keywords, cfg.Search.Location)
		cancel()
	}

	mux := httpapi.NewMux(httpapi.Deps{
		DB:          db.Pool,
		Hub:         hub,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
		Sessions:    sessions,
		Screen:      screen,
		JobCtx:      jobctx.SQLite{DB: db.Pool},
		AI:          client,
		Questions:   client,
	})

	srv := &http.Server{ReadHeaderTimeout: 5 * time.Second}

	shutdownToken, err := randomToken(16)
	if err != nil {
		log.Fatal(err)
	}
	mux.HandleFunc("/shutdown", shutdownHandler(&shutdownToken, srv))

	srv.Handler = httpapi.Chain(mux,
		httpapi.Cors,
		httpapi.RequestID,
		httpapi.Recover,
		httpapi.AccessLog,
	)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	if err := writeRuntimeFile(dataDir, ln.Addr().String(), shutdownToken); err != nil {
		log.Fatalf("runtime file: %v", err)
	}
	log.Printf("engine listening on http://%s (data=%s)", ln.Addr(), dataDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		interval := time.Duration(cfg.Identity.RefreshSeconds) * time.Second
		scheduler.Every(ctx, interval, "session-refresh", sessions.Refresh)
		return nil
	})

	g.Go(func() error {
		interval := time.Duration(cfg.Cache.SweepSeconds) * time.Second
		maxAge := time.Duration(cfg.Cache.MaxAgeDays) * 24 * time.Hour
		scheduler.Every(ctx, interval, "cache-sweep", func(context.Context) error {
			deleted, err := store.CleanupStalePages(db.Pool, maxAge)
			if deleted > 0 {
				log.Printf("level=info msg=\"cache sweep\" deleted=%d", deleted)
			}
			return err
		})
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
