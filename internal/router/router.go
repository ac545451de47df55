package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pennywise-app/pennywise-backend/internal/guard"
	"github.com/pennywise-app/pennywise-backend/internal/handlers"
	"github.com/pennywise-app/pennywise-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(chimiddleware.RequestID)
	r.Use(lm.LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	ah := handlers.NewAuthHandlers(deps)
	th := handlers.NewTransactionHandlers(deps)
	gh := handlers.NewGoalHandlers(deps)
	ih := handlers.NewInvestmentHandlers(deps)
	dh := handlers.NewDashboardHandlers(deps)
	uh := handlers.NewUserHandlers(deps)
	ch := handlers.NewCatalogHandlers(deps)

	gm := middleware.NewGuardMiddleware(deps.Session)

	// Entry routes: signed-in users are bounced away from the sign-in and
	// sign-up forms. Sign-out and the session lookup stay open.
	r.Route("/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(gm.Guard(guard.AnonymousOnly))
			r.Mount("/", ah.EntryRoutes())
		})
		r.Post("/signout", ah.SignOut)
		r.Get("/session", ah.GetSession)
	})

	// Navigation entry for the app shell: a valid bearer token restores
	// the session first, then signed-out visitors are bounced to the
	// sign-in entry and signed-in ones get their session.
	rm := middleware.NewRestoreMiddleware(deps.Firebase, deps.Session)
	r.With(rm.RestoreSession, gm.Guard(guard.AuthenticatedOnly)).Get("/dashboard", ah.GetSession)

	// API routes require a verified bearer token.
	m := middleware.NewMiddleware(deps.Firebase)
	r.Route("/api", func(r chi.Router) {
		r.Use(m.FirebaseAuth)
		r.Mount("/transactions", th.TransactionRoutes())
		r.Mount("/goals", gh.GoalRoutes())
		r.Mount("/investments", ih.InvestmentRoutes())
		r.Mount("/dashboard", dh.DashboardRoutes())
		r.Mount("/profile", uh.UserRoutes())
		r.Mount("/catalog", ch.CatalogRoutes())
	})

	return r
}
