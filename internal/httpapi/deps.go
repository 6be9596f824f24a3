package httpapi

import (
	"context"
	"database/sql"
	"io"
	"sync/atomic"

	"jobportal-engine/internal/config"
	"jobportal-engine/internal/dashboard"
	"jobportal-engine/internal/domain"
	"jobportal-engine/internal/events"
	"jobportal-engine/internal/interview"
	"jobportal-engine/internal/jobctx"
	"jobportal-engine/internal/session"
)

// AIClient is the slice of the backend client the AI handlers call.
type AIClient interface {
	PredictCourses(ctx context.Context, jobTitle, jobDescription string, topN int) ([]domain.CourseRecommendation, error)
	MatchScore(ctx context.Context, filename string, resume io.Reader, jobDescription string) (float64, error)
}

type Deps struct {
	DB *sql.DB

	Hub *events.Hub

	// Atomic stores
	CfgVal *atomic.Value // stores config.Config

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Session gate
	Sessions *session.Watcher

	// Screens and flows
	Screen    *dashboard.Screen
	JobCtx    jobctx.Store
	AI        AIClient
	Questions interview.Client
}
