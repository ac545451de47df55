package services

import (
	"context"

	"github.com/pennywise-app/pennywise-backend/internal/dto"
	"github.com/pennywise-app/pennywise-backend/internal/errs"
	"github.com/pennywise-app/pennywise-backend/internal/identity"
	"github.com/pennywise-app/pennywise-backend/internal/models"
	"github.com/pennywise-app/pennywise-backend/pkg/logger"
)

type userUSStore interface {
	GetUser(ctx context.Context, uid string) (*models.User, error)
	UpdateUser(ctx context.Context, uid string, fields map[string]any) error
}

type userService struct {
	store    userUSStore
	provider identity.Provider
}

func NewUserService(store userUSStore, provider identity.Provider) *userService {
	return &userService{store: store, provider: provider}
}

func (s *userService) GetProfile(ctx context.Context, uid string) (*models.User, error) {
	return s.store.GetUser(ctx, uid)
}

// UpdateProfile changes the mutable profile fields on both the identity
// provider and the profile document. Identity fields (uid, email,
// createdAt) are immutable here.
func (s *userService) UpdateProfile(ctx context.Context, uid string, req dto.UpdateProfileRequest) (*models.User, error) {
	if req.DisplayName == nil && req.PhotoURL == nil {
		return nil, errs.NewValidationError("no fields to update")
	}
	if req.DisplayName != nil && *req.DisplayName == "" {
		return nil, errs.NewValidationError("display name cannot be empty")
	}

	if err := s.provider.UpdateProfile(ctx, uid, req.DisplayName, req.PhotoURL); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.DisplayName != nil {
		fields["displayName"] = *req.DisplayName
	}
	if req.PhotoURL != nil {
		fields["photoURL"] = *req.PhotoURL
	}
	if err := s.store.UpdateUser(ctx, uid, fields); err != nil {
		// The provider accepted the change; the document is now behind.
		logger.FromContext(ctx).Error("profile document update failed", "error", err)
		return nil, err
	}

	return s.store.GetUser(ctx, uid)
}
