// Package identity adapts the hosted identity provider behind the narrow
// contract the session store consumes. Nothing outside this package talks
// to the provider's account API directly.
package identity

import (
	"context"
)

// Session is the provider's view of an authenticated identity.
type Session struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
}

// Provider is the boundary contract. Implementations return AuthError for
// credential problems and ExternalServiceError when the provider itself
// is unreachable.
type Provider interface {
	CreateAccount(ctx context.Context, email, password, displayName string) (Session, error)
	Authenticate(ctx context.Context, email, password string) (Session, error)
	UpdateProfile(ctx context.Context, uid string, displayName, photoURL *string) error
	EndSession(ctx context.Context, uid string) error
}
