// Package session models the identity-provider session as an injected
// capability. Screens never reach for a global: they are handed a Provider
// (or its cached snapshot) and can be tested against a fake.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Session struct {
	SignedIn  bool      `json:"signed_in"`
	UserID    string    `json:"user_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

type Provider interface {
	Current(ctx context.Context) (Session, error)
}

// TokenSource hands out the stored identity token. Wired to the OS
// keyring in production.
type TokenSource func() (string, error)

// HTTPProvider asks the identity provider who is signed in. With no
// session URL configured it degrades to "token present means signed in",
// which keeps local development off the network.
type HTTPProvider struct {
	SessionURL string
	Token      TokenSource
	HC         *http.Client
}

func (p *HTTPProvider) Current(ctx context.Context) (Session, error) {
	now := time.Now().UTC()

	tok, err := p.Token()
	if err != nil || tok == "" {
		return Session{SignedIn: false, CheckedAt: now}, nil
	}

	if p.SessionURL == "" {
		return Session{SignedIn: true, CheckedAt: now}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.SessionURL, nil)
	if err != nil {
		return Session{}, err
	}
	req.Header.Set("Authorization", "Bearer "+tok)

	hc := p.HC
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	res, err := hc.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("identity provider: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
		return Session{SignedIn: false, CheckedAt: now}, nil
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return Session{}, fmt.Errorf("identity provider: status %d", res.StatusCode)
	}

	var body struct {
		UserID string `json:"user_id"`
		Email  string `json:"email"`
		Name   string `json:"name"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return Session{}, fmt.Errorf("identity provider: decode: %w", err)
	}
	return Session{
		SignedIn:  true,
		UserID:    body.UserID,
		Email:     body.Email,
		Name:      body.Name,
		CheckedAt: now,
	}, nil
}

// Static is the test double: always returns the same answer.
type Static struct {
	S   Session
	Err error
}

func (s Static) Current(ctx context.Context) (Session, error) { return s.S, s.Err }
