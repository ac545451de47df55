package middleware

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"

	"github.com/pennywise-app/pennywise-backend/internal/identity"
	"github.com/pennywise-app/pennywise-backend/internal/models"
	"github.com/pennywise-app/pennywise-backend/internal/session"
	"github.com/pennywise-app/pennywise-backend/pkg/logger"
)

// tokenVerifier is the slice of the Firebase auth client the restore
// path needs. *auth.Client satisfies it.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
}

// sessionRestorer is the slice of the session store the restore path
// needs.
type sessionRestorer interface {
	IsSignedIn() bool
	Restore(sess identity.Session) *models.User
}

type restoreMiddleware struct {
	verifier tokenVerifier
	session  sessionRestorer
}

func NewRestoreMiddleware(verifier tokenVerifier, sess sessionRestorer) *restoreMiddleware {
	return &restoreMiddleware{verifier: verifier, session: sess}
}

var _ sessionRestorer = (*session.Store)(nil)

// RestoreSession repopulates the session store from a valid bearer
// token before guarded navigation routes decide. Best effort: a
// missing or invalid token leaves the session as-is and the request
// proceeds, so the guard still sees signed-out and redirects.
func (m *restoreMiddleware) RestoreSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.session.IsSignedIn() {
			next.ServeHTTP(w, r)
			return
		}

		parts := strings.Fields(r.Header.Get("Authorization"))
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			next.ServeHTTP(w, r)
			return
		}

		token, err := m.verifier.VerifyIDToken(r.Context(), parts[1])
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromContext(r.Context())
		sess := identity.Session{UID: token.UID}
		if rec, err := m.verifier.GetUser(r.Context(), token.UID); err != nil {
			log.Warn("user record lookup failed during session restore",
				"uid", token.UID, "error", err)
		} else {
			sess.Email = rec.Email
			sess.DisplayName = rec.DisplayName
			sess.PhotoURL = rec.PhotoURL
		}

		m.session.Restore(sess)
		log.Info("session restored from token", "uid", token.UID)
		next.ServeHTTP(w, r)
	})
}
