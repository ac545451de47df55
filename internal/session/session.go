// Package session holds the single source of truth for "who is signed
// in". The store is an explicit object wired in at startup and handed to
// the components that need identity; there is no package-level state.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/pennywise-app/pennywise-backend/internal/errs"
	"github.com/pennywise-app/pennywise-backend/internal/identity"
	"github.com/pennywise-app/pennywise-backend/internal/models"
	"github.com/pennywise-app/pennywise-backend/pkg/logger"
)

// Firebase rejects shorter passwords; checking here keeps the failure
// local and synchronous.
const minPasswordLength = 6

type profileStore interface {
	CreateUser(ctx context.Context, user *models.User) error
}

// Store owns the current identity's lifecycle: set on sign-in or restore,
// cleared on sign-out. All identity reads go through it.
type Store struct {
	provider identity.Provider
	profiles profileStore

	mu      sync.RWMutex
	current *models.User
	subs    map[int]chan *models.User
	nextSub int
}

func NewStore(provider identity.Provider, profiles profileStore) *Store {
	return &Store{
		provider: provider,
		profiles: profiles,
		subs:     make(map[int]chan *models.User),
	}
}

// Subscribe returns a channel that receives the current identity (nil
// when signed out) on every change, primed with the value at subscribe
// time. The returned func cancels the subscription. Slow consumers only
// ever lag by one emission: a newer value replaces an unread one.
func (s *Store) Subscribe() (<-chan *models.User, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan *models.User, 1)
	ch <- s.current
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
}

// SignUp creates a provider account, then the profile document. These two
// writes are not atomic: if the profile write fails the provider account
// already exists and the session is live, so the identity is still set
// and the error is returned for the caller to surface.
func (s *Store) SignUp(ctx context.Context, email, password, displayName string) (*models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return nil, errs.NewValidationError("email and password are required")
	}
	if len(password) < minPasswordLength {
		return nil, errs.NewAuthError("password must be at least 6 characters")
	}

	sess, err := s.provider.CreateAccount(ctx, email, password, displayName)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		UID:         sess.UID,
		Email:       sess.Email,
		DisplayName: sess.DisplayName,
		CreatedAt:   time.Now(),
	}

	if err := s.profiles.CreateUser(ctx, user); err != nil {
		log.Error("profile document write failed after account creation",
			"uid", sess.UID, "error", err)
		s.set(user)
		return nil, err
	}

	log.Info("user signed up", "uid", sess.UID)
	s.set(user)
	return user, nil
}

// SignIn authenticates and populates the identity. On failure the session
// state is left unchanged.
func (s *Store) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, errs.NewValidationError("email and password are required")
	}

	sess, err := s.provider.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	user := userFromSession(sess)
	s.set(user)
	logger.FromContext(ctx).Info("user signed in", "uid", user.UID)
	return user, nil
}

// SignOut clears the identity. Idempotent: signing out while signed out
// is a no-op.
func (s *Store) SignOut(ctx context.Context) error {
	uid, ok := s.CurrentUID()
	if !ok {
		return nil
	}
	if err := s.provider.EndSession(ctx, uid); err != nil {
		return err
	}
	s.set(nil)
	logger.FromContext(ctx).Info("user signed out", "uid", uid)
	return nil
}

// Restore sets the identity from an externally validated session, e.g. a
// verified token presented at startup.
func (s *Store) Restore(sess identity.Session) *models.User {
	user := userFromSession(sess)
	s.set(user)
	return user
}

// Current returns the signed-in user, or nil.
func (s *Store) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// CurrentUID is a synchronous best-effort read of the identity's key.
func (s *Store) CurrentUID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return "", false
	}
	return s.current.UID, true
}

func (s *Store) IsSignedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

func (s *Store) set(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = u
	for _, ch := range s.subs {
		// Replace an unread value rather than blocking.
		select {
		case ch <- u:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- u
		}
	}
}

func userFromSession(sess identity.Session) *models.User {
	return &models.User{
		UID:         sess.UID,
		Email:       sess.Email,
		DisplayName: sess.DisplayName,
		PhotoURL:    sess.PhotoURL,
		CreatedAt:   time.Now(),
	}
}
