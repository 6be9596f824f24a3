package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func token(s string) TokenSource {
	return func() (string, error) { return s, nil }
}

func TestHTTPProvider_NoTokenMeansSignedOut(t *testing.T) {
	p := &HTTPProvider{SessionURL: "http://identity.invalid/session", Token: token("")}
	s, err := p.Current(context.Background())
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if s.SignedIn {
		t.Error("no token should mean signed out, without any network call")
	}
}

func TestHTTPProvider_NoURLDegradesToTokenPresence(t *testing.T) {
	p := &HTTPProvider{Token: token("tok-123")}
	s, err := p.Current(context.Background())
	if err != nil || !s.SignedIn {
		t.Errorf("session = %+v err = %v, want signed in", s, err)
	}
}

func TestHTTPProvider_SignedIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("Authorization = %q", got)
		}
		_, _ = w.Write([]byte(`{"user_id":"u1","email":"dev@example.com","name":"Dev"}`))
	}))
	defer srv.Close()

	p := &HTTPProvider{SessionURL: srv.URL, Token: token("tok-123")}
	s, err := p.Current(context.Background())
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if !s.SignedIn || s.Email != "dev@example.com" {
		t.Errorf("session = %+v", s)
	}
}

func TestHTTPProvider_UnauthorizedIsSignedOutNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := &HTTPProvider{SessionURL: srv.URL, Token: token("expired")}
	s, err := p.Current(context.Background())
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if s.SignedIn {
		t.Error("401 should report signed out")
	}
}

func TestWatcher_RefreshAndChangeCallback(t *testing.T) {
	var changes []bool
	w := NewWatcher(Static{S: Session{SignedIn: true}}, func(s Session) {
		changes = append(changes, s.SignedIn)
	})

	if w.Snapshot().SignedIn {
		t.Fatal("initial snapshot should be signed out")
	}
	if err := w.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if !w.Snapshot().SignedIn {
		t.Error("snapshot not updated")
	}
	if len(changes) != 1 || !changes[0] {
		t.Errorf("onChange calls = %v, want one signed-in transition", changes)
	}
}

func TestWatcher_ErrorKeepsSnapshot(t *testing.T) {
	w := NewWatcher(Static{Err: errors.New("identity down")}, nil)
	w.val.Store(Session{SignedIn: true})

	if err := w.Refresh(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if !w.Snapshot().SignedIn {
		t.Error("transient error must not flip the session to signed out")
	}
}
