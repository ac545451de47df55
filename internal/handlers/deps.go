package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/pennywise-app/pennywise-backend/internal/response"
	"github.com/pennywise-app/pennywise-backend/internal/session"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Session         *session.Store
	Firebase        *auth.Client
	TransactionSvc  TransactionService
	GoalSvc         GoalService
	InvestmentSvc   InvestmentService
	DashboardSvc    DashboardService
	UserSvc         UserService
}
