package middleware

import (
	"net/http"

	"github.com/pennywise-app/pennywise-backend/internal/guard"
)

const (
	signInPath    = "/auth"
	dashboardPath = "/dashboard"
)

// sessionState is the slice of the session store the guard needs.
type sessionState interface {
	IsSignedIn() bool
}

type guardMiddleware struct {
	session sessionState
}

func NewGuardMiddleware(session sessionState) *guardMiddleware {
	return &guardMiddleware{session: session}
}

// Guard enforces the navigation rules for a route kind: blocked entries
// are redirected instead of served, and the wrapped handler never runs.
func (m *guardMiddleware) Guard(kind guard.RouteKind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch guard.Decide(kind, m.session.IsSignedIn()) {
			case guard.RedirectSignIn:
				http.Redirect(w, r, signInPath, http.StatusSeeOther)
			case guard.RedirectDashboard:
				http.Redirect(w, r, dashboardPath, http.StatusSeeOther)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
