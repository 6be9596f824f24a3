package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims and defaults the search fields, then checks
// everything the engine needs before it will talk to the backend.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	out.Backend.BaseURL = strings.TrimRight(strings.TrimSpace(out.Backend.BaseURL), "/")
	out.Identity.SessionURL = strings.TrimSpace(out.Identity.SessionURL)
	out.Search.Keywords = strings.TrimSpace(out.Search.Keywords)
	out.Search.Location = strings.TrimSpace(out.Search.Location)

	if out.Search.Keywords == "" {
		out.Search.Keywords = "software engineer"
	}
	if out.Search.Location == "" {
		out.Search.Location = "india"
	}
	if out.Courses.TopN <= 0 {
		out.Courses.TopN = 5
	}

	// ---- Validation rules ----

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Backend.BaseURL == "" {
		res.addErr("backend.base_url is required")
	} else if u, err := url.Parse(out.Backend.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		res.addErr("backend.base_url must be an absolute URL: %q", out.Backend.BaseURL)
	}
	if out.Backend.TimeoutSeconds <= 0 {
		res.addErr("backend.timeout_seconds must be > 0")
	}
	if out.Backend.RatePerSec <= 0 {
		res.addErr("backend.rate_per_sec must be > 0")
	} else if out.Backend.RatePerSec > 20 {
		res.addWarn("backend.rate_per_sec is high (%.0f); the backend may throttle you.", out.Backend.RatePerSec)
	}
	if out.Backend.RateBurst <= 0 {
		res.addErr("backend.rate_burst must be > 0")
	}

	if out.Identity.RefreshSeconds <= 0 {
		res.addErr("identity.refresh_seconds must be > 0")
	} else if out.Identity.RefreshSeconds < 5 {
		res.addWarn("identity.refresh_seconds is very low (%d); session polling will be noisy.", out.Identity.RefreshSeconds)
	}
	if out.Identity.SessionURL != "" {
		if u, err := url.Parse(out.Identity.SessionURL); err != nil || u.Scheme == "" || u.Host == "" {
			res.addErr("identity.session_url must be an absolute URL: %q", out.Identity.SessionURL)
		}
	}

	if out.Courses.TopN > 20 {
		res.addWarn("courses.top_n is %d; the backend caps recommendations well below that.", out.Courses.TopN)
	}

	ni := out.Interview
	if ni.NumTechnical < 0 || ni.NumBehavioral < 0 || ni.NumSituational < 0 {
		res.addErr("interview question counts cannot be negative")
	}
	if ni.NumTechnical+ni.NumBehavioral+ni.NumSituational == 0 {
		res.addErr("interview must request at least one question")
	}

	if out.Cache.MaxAgeDays <= 0 {
		res.addErr("cache.max_age_days must be > 0")
	}
	if out.Cache.SweepSeconds <= 0 {
		res.addErr("cache.sweep_seconds must be > 0")
	}

	return out, res
}
