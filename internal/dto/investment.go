package dto

import (
	"time"

	"github.com/pennywise-app/pennywise-backend/internal/models"
)

type CreateInvestmentRequest struct {
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Interest  float64 `json:"interest"`
	StartDate string  `json:"startDate"`
	Duration  *int    `json:"duration"`
}

type UpdateInvestmentRequest struct {
	Name      *string  `json:"name"`
	Type      *string  `json:"type"`
	Amount    *float64 `json:"amount"`
	Interest  *float64 `json:"interest"`
	StartDate *string  `json:"startDate"`
	Duration  *int     `json:"duration"`
}

// InvestmentResponse is an investment plus its derived projections.
// MaturityDate is absent for open-ended investments.
type InvestmentResponse struct {
	models.Investment
	ExpectedReturn float64    `json:"expectedReturn"`
	MaturityDate   *time.Time `json:"maturityDate,omitempty"`
	TypeColor      string     `json:"typeColor"`
}
