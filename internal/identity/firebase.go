package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"

	"github.com/pennywise-app/pennywise-backend/internal/errs"
)

// firebaseProvider backs the Provider contract with Firebase Auth.
// Account management goes through the admin SDK; password sign-in has no
// admin API, so it goes through the Identity Toolkit REST endpoint with
// the project's web API key.
type firebaseProvider struct {
	auth           *auth.Client
	http           *http.Client
	apiKey         string
	signInEndpoint string
}

func NewFirebaseProvider(authClient *auth.Client, apiKey, signInEndpoint string) *firebaseProvider {
	return &firebaseProvider{
		auth:           authClient,
		http:           &http.Client{Timeout: 10 * time.Second},
		apiKey:         apiKey,
		signInEndpoint: signInEndpoint,
	}
}

func (p *firebaseProvider) CreateAccount(ctx context.Context, email, password, displayName string) (Session, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}

	u, err := p.auth.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return Session{}, errs.NewAlreadyExistsError("an account with this email already exists")
		}
		return Session{}, errs.NewExternalServiceError("firebase-auth", "account creation failed", true, err)
	}

	return sessionFromRecord(u), nil
}

func (p *firebaseProvider) Authenticate(ctx context.Context, email, password string) (Session, error) {
	body, err := json.Marshal(map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return Session{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.signInEndpoint+"?key="+p.apiKey, bytes.NewReader(body))
	if err != nil {
		return Session{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return Session{}, errs.NewExternalServiceError("identity-toolkit", "sign-in request failed", true, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Session{}, mapSignInError(resp)
	}

	var result struct {
		LocalID string `json:"localId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Session{}, errs.NewExternalServiceError("identity-toolkit", "malformed sign-in response", false, err)
	}

	// The REST response omits profile fields we need, so read the full
	// account record.
	u, err := p.auth.GetUser(ctx, result.LocalID)
	if err != nil {
		return Session{}, errs.NewExternalServiceError("firebase-auth", "failed to load account", true, err)
	}
	return sessionFromRecord(u), nil
}

func (p *firebaseProvider) UpdateProfile(ctx context.Context, uid string, displayName, photoURL *string) error {
	update := &auth.UserToUpdate{}
	changed := false
	if displayName != nil {
		update = update.DisplayName(*displayName)
		changed = true
	}
	if photoURL != nil {
		update = update.PhotoURL(*photoURL)
		changed = true
	}
	if !changed {
		return nil
	}

	if _, err := p.auth.UpdateUser(ctx, uid, update); err != nil {
		if auth.IsUserNotFound(err) {
			return errs.NewNotFoundError("account not found")
		}
		return errs.NewExternalServiceError("firebase-auth", "profile update failed", true, err)
	}
	return nil
}

func (p *firebaseProvider) EndSession(ctx context.Context, uid string) error {
	if uid == "" {
		return nil
	}
	if err := p.auth.RevokeRefreshTokens(ctx, uid); err != nil {
		if auth.IsUserNotFound(err) {
			// Signing out an already-deleted account is fine.
			return nil
		}
		return errs.NewExternalServiceError("firebase-auth", "session revocation failed", true, err)
	}
	return nil
}

func sessionFromRecord(u *auth.UserRecord) Session {
	return Session{
		UID:         u.UID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
	}
}

func mapSignInError(resp *http.Response) error {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	msg := payload.Error.Message
	switch {
	case msg == "EMAIL_NOT_FOUND",
		msg == "INVALID_PASSWORD",
		strings.HasPrefix(msg, "INVALID_LOGIN_CREDENTIALS"):
		return errs.NewAuthError("invalid email or password")
	case strings.HasPrefix(msg, "TOO_MANY_ATTEMPTS_TRY_LATER"):
		return errs.NewAuthError("too many attempts, try again later")
	case msg == "USER_DISABLED":
		return errs.NewAuthError("this account has been disabled")
	default:
		return errs.NewExternalServiceError("identity-toolkit", "sign-in rejected: "+msg,
			resp.StatusCode >= http.StatusInternalServerError, nil)
	}
}
