package services

import (
	"context"
	"time"

	"github.com/pennywise-app/pennywise-backend/internal/aggregate"
	"github.com/pennywise-app/pennywise-backend/internal/catalog"
	"github.com/pennywise-app/pennywise-backend/internal/dto"
	"github.com/pennywise-app/pennywise-backend/internal/errs"
	"github.com/pennywise-app/pennywise-backend/internal/feed"
	"github.com/pennywise-app/pennywise-backend/internal/models"
	"github.com/pennywise-app/pennywise-backend/pkg/logger"
)

const defaultRecentLimit = 3

type transactionTSStore interface {
	Add(ctx context.Context, t *models.Transaction) (string, error)
	ListAll(ctx context.Context, uid string) ([]models.Transaction, error)
	ListRecent(ctx context.Context, uid string, limit int) ([]models.Transaction, error)
	Watch(ctx context.Context, uid string) *feed.Feed[models.Transaction]
	WatchRecent(ctx context.Context, uid string, limit int) *feed.Feed[models.Transaction]
	Update(ctx context.Context, uid, id string, fields map[string]any) error
	Delete(ctx context.Context, uid, id string) error
}

type transactionService struct {
	store transactionTSStore
}

func NewTransactionService(store transactionTSStore) *transactionService {
	return &transactionService{store: store}
}

// Create validates the form input, stamps the category's display color
// onto the record and persists it. Validation failures never reach the
// store.
func (s *transactionService) Create(ctx context.Context, uid string, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	if req.Amount <= 0 {
		return nil, errs.NewValidationError("amount must be greater than 0")
	}
	if req.Category == "" {
		return nil, errs.NewValidationError("category is required")
	}

	color, ok := catalog.CategoryColor(req.Type, req.Category)
	if !ok {
		return nil, errs.NewValidationError("unknown category for transaction type")
	}

	// Event time, not record-creation time: the user may backdate or
	// schedule the financial event.
	createdAt, err := dto.ParseEventTime(req.CreatedAt)
	if err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	account := req.Account
	if account == "" {
		account = "cash"
	}

	txn := &models.Transaction{
		UserID:    uid,
		Type:      req.Type,
		Amount:    req.Amount,
		Category:  req.Category,
		Account:   account,
		Note:      req.Note,
		Color:     color,
		CreatedAt: createdAt,
	}

	if _, err := s.store.Add(ctx, txn); err != nil {
		logger.FromContext(ctx).Error("failed to create transaction", "error", err)
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) List(ctx context.Context, uid string) ([]models.Transaction, error) {
	return s.store.ListAll(ctx, uid)
}

func (s *transactionService) ListRecent(ctx context.Context, uid string, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.store.ListRecent(ctx, uid, limit)
}

// Page returns one page of the full history plus the clamped pager, so a
// client asking for a page past the end gets the last page, not an error.
func (s *transactionService) Page(ctx context.Context, uid string, page, pageSize int) (dto.TransactionPageResponse, error) {
	txns, err := s.store.ListAll(ctx, uid)
	if err != nil {
		return dto.TransactionPageResponse{}, err
	}

	pager := aggregate.Pager{Page: page, PageSize: pageSize, Total: len(txns)}.Clamp()
	from, to := pager.Slice()

	return dto.TransactionPageResponse{
		Transactions: txns[from:to],
		Pager:        pager,
		MaxPage:      pager.MaxPage(),
	}, nil
}

func (s *transactionService) Overview(ctx context.Context, uid string) (aggregate.Overview, error) {
	txns, err := s.store.ListAll(ctx, uid)
	if err != nil {
		return aggregate.Overview{}, err
	}
	return aggregate.ComputeOverview(txns), nil
}

func (s *transactionService) ExpenseSummary(ctx context.Context, uid string) (aggregate.ExpenseSummary, error) {
	txns, err := s.store.ListAll(ctx, uid)
	if err != nil {
		return aggregate.ExpenseSummary{}, err
	}
	return aggregate.ComputeExpenseSummary(txns), nil
}

func (s *transactionService) Watch(ctx context.Context, uid string, limit int) *feed.Feed[models.Transaction] {
	if limit > 0 {
		return s.store.WatchRecent(ctx, uid, limit)
	}
	return s.store.Watch(ctx, uid)
}

// Update merges the provided fields. Changing the category requires the
// type as well, because category lists are per type and the color tag is
// re-stamped from the catalog on this write.
func (s *transactionService) Update(ctx context.Context, uid, id string, req dto.UpdateTransactionRequest) error {
	fields := map[string]any{}

	if req.Amount != nil {
		if *req.Amount <= 0 {
			return errs.NewValidationError("amount must be greater than 0")
		}
		fields["amount"] = *req.Amount
	}
	if req.Category != nil || req.Type != nil {
		if req.Category == nil || req.Type == nil {
			return errs.NewValidationError("type and category must be updated together")
		}
		color, ok := catalog.CategoryColor(*req.Type, *req.Category)
		if !ok {
			return errs.NewValidationError("unknown category for transaction type")
		}
		fields["type"] = *req.Type
		fields["category"] = *req.Category
		fields["color"] = color
	}
	if req.Account != nil {
		fields["account"] = *req.Account
	}
	if req.Note != nil {
		fields["note"] = *req.Note
	}
	if req.CreatedAt != nil {
		createdAt, err := dto.ParseEventTime(*req.CreatedAt)
		if err != nil {
			return err
		}
		if createdAt.IsZero() {
			return errs.NewValidationError("createdAt cannot be empty")
		}
		fields["createdAt"] = createdAt
	}

	if len(fields) == 0 {
		return errs.NewValidationError("no fields to update")
	}
	return s.store.Update(ctx, uid, id, fields)
}

func (s *transactionService) Delete(ctx context.Context, uid, id string) error {
	return s.store.Delete(ctx, uid, id)
}
