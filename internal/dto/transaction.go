package dto

import (
	"github.com/pennywise-app/pennywise-backend/internal/aggregate"
	"github.com/pennywise-app/pennywise-backend/internal/models"
)

type CreateTransactionRequest struct {
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Account  string  `json:"account"`
	Note     string  `json:"note"`
	// CreatedAt is the event time as typed by the user. Optional; defaults
	// to now. Accepted layouts are listed in time.go.
	CreatedAt string `json:"createdAt"`
}

// UpdateTransactionRequest carries partial fields; nil means "leave as is".
type UpdateTransactionRequest struct {
	Type      *string  `json:"type"`
	Amount    *float64 `json:"amount"`
	Category  *string  `json:"category"`
	Account   *string  `json:"account"`
	Note      *string  `json:"note"`
	CreatedAt *string  `json:"createdAt"`
}

type TransactionPageResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Pager        aggregate.Pager      `json:"pager"`
	MaxPage      int                  `json:"maxPage"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}
