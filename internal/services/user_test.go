package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pennywise-app/pennywise-backend/internal/dto"
	"github.com/pennywise-app/pennywise-backend/internal/errs"
	"github.com/pennywise-app/pennywise-backend/internal/identity"
	"github.com/pennywise-app/pennywise-backend/internal/models"
	"github.com/pennywise-app/pennywise-backend/pkg/helpers"
)

type stubUserStore struct {
	user          *models.User
	updatedUID    string
	updatedFields map[string]any
	calls         int
}

func (s *stubUserStore) GetUser(context.Context, string) (*models.User, error) {
	s.calls++
	return s.user, nil
}

func (s *stubUserStore) UpdateUser(_ context.Context, uid string, fields map[string]any) error {
	s.calls++
	s.updatedUID = uid
	s.updatedFields = fields
	return nil
}

type stubIdentity struct {
	updatedUID  string
	displayName *string
	photoURL    *string
	updateErr   error
	calls       int
}

func (s *stubIdentity) CreateAccount(context.Context, string, string, string) (identity.Session, error) {
	return identity.Session{}, nil
}

func (s *stubIdentity) Authenticate(context.Context, string, string) (identity.Session, error) {
	return identity.Session{}, nil
}

func (s *stubIdentity) UpdateProfile(_ context.Context, uid string, displayName, photoURL *string) error {
	s.calls++
	s.updatedUID = uid
	s.displayName = displayName
	s.photoURL = photoURL
	return s.updateErr
}

func (s *stubIdentity) EndSession(context.Context, string) error { return nil }

func TestUpdateProfile(t *testing.T) {
	store := &stubUserStore{user: &models.User{UID: "user-1", DisplayName: "Ada"}}
	provider := &stubIdentity{}
	svc := NewUserService(store, provider)

	user, err := svc.UpdateProfile(helpers.TestCtx(), "user-1", dto.UpdateProfileRequest{
		DisplayName: helpers.Ptr("Ada"),
		PhotoURL:    helpers.Ptr("https://example.com/ada.png"),
	})
	require.NoError(t, err)
	require.Equal(t, "user-1", user.UID)

	require.Equal(t, "user-1", provider.updatedUID)
	require.Equal(t, "Ada", *provider.displayName)
	require.Equal(t, map[string]any{
		"displayName": "Ada",
		"photoURL":    "https://example.com/ada.png",
	}, store.updatedFields)
}

func TestUpdateProfileValidation(t *testing.T) {
	tests := []struct {
		name string
		req  dto.UpdateProfileRequest
	}{
		{"no fields", dto.UpdateProfileRequest{}},
		{"empty display name", dto.UpdateProfileRequest{DisplayName: helpers.Ptr("")}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &stubUserStore{}
			provider := &stubIdentity{}
			svc := NewUserService(store, provider)

			_, err := svc.UpdateProfile(helpers.TestCtx(), "user-1", tc.req)

			var verr *errs.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Zero(t, provider.calls)
			require.Zero(t, store.calls)
		})
	}
}

func TestUpdateProfileProviderFailureSkipsStore(t *testing.T) {
	store := &stubUserStore{}
	provider := &stubIdentity{updateErr: errs.NewAuthError("user not found")}
	svc := NewUserService(store, provider)

	_, err := svc.UpdateProfile(helpers.TestCtx(), "user-1", dto.UpdateProfileRequest{
		DisplayName: helpers.Ptr("Ada"),
	})

	var aerr *errs.AuthError
	require.ErrorAs(t, err, &aerr)
	require.Zero(t, store.calls)
}

func TestGetProfile(t *testing.T) {
	store := &stubUserStore{user: &models.User{UID: "user-1", Email: "ada@example.com"}}
	svc := NewUserService(store, &stubIdentity{})

	user, err := svc.GetProfile(helpers.TestCtx(), "user-1")
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", user.Email)
}
