package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pennywise-app/pennywise-backend/internal/guard"
)

type stubSession struct {
	signedIn bool
}

func (s *stubSession) IsSignedIn() bool { return s.signedIn }

func TestGuardRedirectsAnonymousToSignIn(t *testing.T) {
	m := NewGuardMiddleware(&stubSession{signedIn: false})

	mounted := false
	h := m.Guard(guard.AuthenticatedOnly)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mounted = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if mounted {
		t.Fatalf("guarded handler ran for an anonymous user")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/auth" {
		t.Fatalf("Location = %q, want /auth", loc)
	}
}

func TestGuardRedirectsSignedInToDashboard(t *testing.T) {
	m := NewGuardMiddleware(&stubSession{signedIn: true})

	mounted := false
	h := m.Guard(guard.AnonymousOnly)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mounted = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/signin", nil))

	if mounted {
		t.Fatalf("anonymous-only handler ran for a signed-in user")
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("Location = %q, want /dashboard", loc)
	}
}

func TestGuardAllows(t *testing.T) {
	m := NewGuardMiddleware(&stubSession{signedIn: true})

	mounted := false
	h := m.Guard(guard.AuthenticatedOnly)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mounted = true
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if !mounted {
		t.Fatalf("allowed navigation did not reach the handler")
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}
