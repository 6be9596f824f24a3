package httpapi

import "jobportal-engine/internal/domain"

// jobPayload is the optional navigation-state job the shell attaches to AI
// requests. When absent, handlers fall back to the persisted job context.
type jobPayload struct {
	Job *domain.JobRecord `json:"job"`
}

type tokenPayload struct {
	Token string `json:"token"`
}

type answersPayload struct {
	Answers map[int]string `json:"answers"`
}
