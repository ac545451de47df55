package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/pennywise-app/pennywise-backend/internal/bootstrap"
	"github.com/pennywise-app/pennywise-backend/internal/config"
	"github.com/pennywise-app/pennywise-backend/internal/handlers"
	"github.com/pennywise-app/pennywise-backend/internal/identity"
	"github.com/pennywise-app/pennywise-backend/internal/response"
	"github.com/pennywise-app/pennywise-backend/internal/router"
	"github.com/pennywise-app/pennywise-backend/internal/services"
	"github.com/pennywise-app/pennywise-backend/internal/session"
	"github.com/pennywise-app/pennywise-backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	ustore := store.NewUserStore(bs.Firestore)
	tstore := store.NewTransactionStore(bs.Firestore)
	gstore := store.NewGoalStore(bs.Firestore)
	istore := store.NewInvestmentStore(bs.Firestore)

	// identity and session
	provider := identity.NewFirebaseProvider(bs.Firebase, bs.APIKey, cfg.SignInEndpoint)
	sess := session.NewStore(provider, ustore)

	// services
	tserv := services.NewTransactionService(tstore)
	gserv := services.NewGoalService(gstore)
	iserv := services.NewInvestmentService(istore)
	dserv := services.NewDashboardService(tstore, gstore, istore)
	userv := services.NewUserService(ustore, provider)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Session = sess
	deps.Firebase = bs.Firebase
	deps.TransactionSvc = tserv
	deps.GoalSvc = gserv
	deps.InvestmentSvc = iserv
	deps.DashboardSvc = dserv
	deps.UserSvc = userv

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
