package httpapi

import "net/http"

// NewMux returns the raw mux so main() can still attach /shutdown (needs srv+token).
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	gate := RequireSession(d.Sessions)

	// Session gate
	sh := SessionHandler{Watcher: d.Sessions, CfgVal: d.CfgVal}
	mux.HandleFunc("/session", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Get,
	}))
	mux.HandleFunc("/session/token", methodMux(map[string]http.HandlerFunc{
		http.MethodPost:   sh.SetToken,
		http.MethodDelete: sh.DeleteToken,
	}))

	// Job listings
	jh := JobsHandler{Screen: d.Screen, CfgVal: d.CfgVal}
	mux.Handle("/jobs", gate(methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	})))

	// AI features
	fh := FeaturesHandler{JobCtx: d.JobCtx, Hub: d.Hub}
	mux.Handle("/ai/features", gate(methodMux(map[string]http.HandlerFunc{
		http.MethodPost: fh.Open,
	})))

	ch2 := CoursesHandler{AI: d.AI, JobCtx: d.JobCtx, CfgVal: d.CfgVal, Hub: d.Hub}
	mux.Handle("/ai/courses", gate(methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ch2.Recommend,
	})))

	mh := MatchHandler{AI: d.AI, JobCtx: d.JobCtx}
	mux.Handle("/ai/match-score", gate(methodMux(map[string]http.HandlerFunc{
		http.MethodPost: mh.Score,
	})))

	ih := &InterviewHandler{Client: d.Questions, JobCtx: d.JobCtx, CfgVal: d.CfgVal, Hub: d.Hub}
	mux.Handle("/ai/interview", gate(methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ih.State,
	})))
	mux.Handle("/ai/interview/start", gate(methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ih.Start,
	})))
	mux.Handle("/ai/interview/answers", gate(methodMux(map[string]http.HandlerFunc{
		http.MethodPut: ih.Answers,
	})))
	mux.Handle("/ai/interview/submit", gate(methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ih.Submit,
	})))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
		Hub:         d.Hub,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))
	mux.HandleFunc("/config/validate", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Validate,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	// Health and maintenance
	mux.HandleFunc("/health", HealthHandler{}.Health)
	mux.HandleFunc("/db/checkpoint", DBHandler{DB: d.DB}.Checkpoint)

	return mux
}
