package services

import (
	"context"

	"github.com/pennywise-app/pennywise-backend/internal/aggregate"
	"github.com/pennywise-app/pennywise-backend/internal/dto"
	"github.com/pennywise-app/pennywise-backend/internal/errs"
	"github.com/pennywise-app/pennywise-backend/internal/feed"
	"github.com/pennywise-app/pennywise-backend/internal/models"
)

type goalGSStore interface {
	Add(ctx context.Context, g *models.Goal) (string, error)
	ListAll(ctx context.Context, uid string) ([]models.Goal, error)
	Watch(ctx context.Context, uid string) *feed.Feed[models.Goal]
	Update(ctx context.Context, uid, id string, fields map[string]any) error
	Delete(ctx context.Context, uid, id string) error
}

type goalService struct {
	store goalGSStore
}

func NewGoalService(store goalGSStore) *goalService {
	return &goalService{store: store}
}

func validPriority(p string) bool {
	switch p {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return true
	}
	return false
}

func (s *goalService) Create(ctx context.Context, uid string, req dto.CreateGoalRequest) (*dto.GoalResponse, error) {
	if req.Name == "" {
		return nil, errs.NewValidationError("name is required")
	}
	if req.TargetAmount <= 0 {
		return nil, errs.NewValidationError("target amount must be greater than 0")
	}
	if req.CurrentSaved < 0 {
		return nil, errs.NewValidationError("saved amount cannot be negative")
	}
	if !validPriority(req.Priority) {
		return nil, errs.NewValidationError("priority must be low, medium or high")
	}

	targetDate, err := dto.ParseEventTime(req.TargetDate)
	if err != nil {
		return nil, err
	}
	if targetDate.IsZero() {
		return nil, errs.NewValidationError("target date is required")
	}

	goal := &models.Goal{
		UserID:       uid,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		CurrentSaved: req.CurrentSaved,
		TargetDate:   targetDate,
		Priority:     req.Priority,
	}

	if _, err := s.store.Add(ctx, goal); err != nil {
		return nil, err
	}

	resp := dto.NewGoalResponse(*goal, aggregate.GoalProgress(*goal))
	return &resp, nil
}

func (s *goalService) List(ctx context.Context, uid string) ([]dto.GoalResponse, error) {
	goals, err := s.store.ListAll(ctx, uid)
	if err != nil {
		return nil, err
	}

	out := make([]dto.GoalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, dto.NewGoalResponse(g, aggregate.GoalProgress(g)))
	}
	return out, nil
}

func (s *goalService) Watch(ctx context.Context, uid string) *feed.Feed[models.Goal] {
	return s.store.Watch(ctx, uid)
}

func (s *goalService) Update(ctx context.Context, uid, id string, req dto.UpdateGoalRequest) error {
	fields := map[string]any{}

	if req.Name != nil {
		if *req.Name == "" {
			return errs.NewValidationError("name cannot be empty")
		}
		fields["name"] = *req.Name
	}
	if req.TargetAmount != nil {
		if *req.TargetAmount <= 0 {
			return errs.NewValidationError("target amount must be greater than 0")
		}
		fields["targetAmount"] = *req.TargetAmount
	}
	if req.CurrentSaved != nil {
		if *req.CurrentSaved < 0 {
			return errs.NewValidationError("saved amount cannot be negative")
		}
		fields["currentSaved"] = *req.CurrentSaved
	}
	if req.TargetDate != nil {
		targetDate, err := dto.ParseEventTime(*req.TargetDate)
		if err != nil {
			return err
		}
		if targetDate.IsZero() {
			return errs.NewValidationError("target date cannot be empty")
		}
		fields["targetDate"] = targetDate
	}
	if req.Priority != nil {
		if !validPriority(*req.Priority) {
			return errs.NewValidationError("priority must be low, medium or high")
		}
		fields["priority"] = *req.Priority
	}

	if len(fields) == 0 {
		return errs.NewValidationError("no fields to update")
	}
	return s.store.Update(ctx, uid, id, fields)
}

func (s *goalService) Delete(ctx context.Context, uid, id string) error {
	return s.store.Delete(ctx, uid, id)
}
