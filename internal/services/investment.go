package services

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/pennywise-app/pennywise-backend/internal/aggregate"
	"github.com/pennywise-app/pennywise-backend/internal/catalog"
	"github.com/pennywise-app/pennywise-backend/internal/dto"
	"github.com/pennywise-app/pennywise-backend/internal/errs"
	"github.com/pennywise-app/pennywise-backend/internal/feed"
	"github.com/pennywise-app/pennywise-backend/internal/models"
)

type investmentISStore interface {
	Add(ctx context.Context, inv *models.Investment) (string, error)
	ListAll(ctx context.Context, uid string) ([]models.Investment, error)
	Watch(ctx context.Context, uid string) *feed.Feed[models.Investment]
	Update(ctx context.Context, uid, id string, fields map[string]any) error
	Delete(ctx context.Context, uid, id string) error
}

type investmentService struct {
	store investmentISStore
}

func NewInvestmentService(store investmentISStore) *investmentService {
	return &investmentService{store: store}
}

func (s *investmentService) Create(ctx context.Context, uid string, req dto.CreateInvestmentRequest) (*dto.InvestmentResponse, error) {
	if req.Name == "" {
		return nil, errs.NewValidationError("name is required")
	}
	if !catalog.InvestmentTypeKnown(req.Type) {
		return nil, errs.NewValidationError("unknown investment type")
	}
	if req.Amount <= 0 {
		return nil, errs.NewValidationError("amount must be greater than 0")
	}
	if req.Interest < 0 {
		return nil, errs.NewValidationError("interest rate cannot be negative")
	}

	startDate, err := dto.ParseEventTime(req.StartDate)
	if err != nil {
		return nil, err
	}
	if startDate.IsZero() {
		return nil, errs.NewValidationError("start date is required")
	}

	inv := &models.Investment{
		UserID:    uid,
		Name:      req.Name,
		Type:      req.Type,
		Amount:    req.Amount,
		Interest:  req.Interest,
		StartDate: startDate,
	}
	// A zero duration means open-ended and is stored as absent.
	if req.Duration != nil {
		if *req.Duration < 0 {
			return nil, errs.NewValidationError("duration cannot be negative")
		}
		if *req.Duration > 0 {
			inv.Duration = req.Duration
		}
	}

	if _, err := s.store.Add(ctx, inv); err != nil {
		return nil, err
	}

	resp := investmentResponse(*inv)
	return &resp, nil
}

func (s *investmentService) List(ctx context.Context, uid string) ([]dto.InvestmentResponse, error) {
	invs, err := s.store.ListAll(ctx, uid)
	if err != nil {
		return nil, err
	}

	out := make([]dto.InvestmentResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, investmentResponse(inv))
	}
	return out, nil
}

func (s *investmentService) Watch(ctx context.Context, uid string) *feed.Feed[models.Investment] {
	return s.store.Watch(ctx, uid)
}

func (s *investmentService) Update(ctx context.Context, uid, id string, req dto.UpdateInvestmentRequest) error {
	fields := map[string]any{}

	if req.Name != nil {
		if *req.Name == "" {
			return errs.NewValidationError("name cannot be empty")
		}
		fields["name"] = *req.Name
	}
	if req.Type != nil {
		if !catalog.InvestmentTypeKnown(*req.Type) {
			return errs.NewValidationError("unknown investment type")
		}
		fields["type"] = *req.Type
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return errs.NewValidationError("amount must be greater than 0")
		}
		fields["amount"] = *req.Amount
	}
	if req.Interest != nil {
		if *req.Interest < 0 {
			return errs.NewValidationError("interest rate cannot be negative")
		}
		fields["interest"] = *req.Interest
	}
	if req.StartDate != nil {
		startDate, err := dto.ParseEventTime(*req.StartDate)
		if err != nil {
			return err
		}
		if startDate.IsZero() {
			return errs.NewValidationError("start date cannot be empty")
		}
		fields["startDate"] = startDate
	}
	if req.Duration != nil {
		if *req.Duration < 0 {
			return errs.NewValidationError("duration cannot be negative")
		}
		// Zero means open-ended, same as on create: clear the field
		// rather than storing a zero that would look like a term.
		if *req.Duration == 0 {
			fields["duration"] = firestore.Delete
		} else {
			fields["duration"] = *req.Duration
		}
	}

	if len(fields) == 0 {
		return errs.NewValidationError("no fields to update")
	}
	return s.store.Update(ctx, uid, id, fields)
}

func (s *investmentService) Delete(ctx context.Context, uid, id string) error {
	return s.store.Delete(ctx, uid, id)
}

func investmentResponse(inv models.Investment) dto.InvestmentResponse {
	return dto.InvestmentResponse{
		Investment:     inv,
		ExpectedReturn: aggregate.ExpectedReturn(inv),
		MaturityDate:   aggregate.MaturityDate(inv),
		TypeColor:      catalog.InvestmentTypeColor(inv.Type),
	}
}
