// Package events fans engine-side state changes out to the UI shell over
// the /events SSE stream. The shell treats every event as a hint to
// re-fetch the affected screen, so payloads stay small.
package events

import (
	"encoding/json"
	"time"
)

// Event types the shell subscribes to.
const (
	TypeSessionChanged  = "session_changed"
	TypeJobsLoaded      = "jobs_loaded"
	TypeJobSelected     = "job_selected"
	TypeQuestionsReady  = "questions_ready"
	TypeEvaluationReady = "evaluation_ready"
	TypeCoursesReady    = "courses_ready"
	TypeConfigUpdated   = "config_updated"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
