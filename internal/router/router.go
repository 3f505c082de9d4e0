package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mthorsell/cashlens-backend/internal/handlers"
	"github.com/mthorsell/cashlens-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)

	auth := middleware.NewMiddleware(deps.Firebase)
	r.Use(auth.FirebaseAuth)

	ush := handlers.NewUserHandlers(deps)
	txh := handlers.NewTransactionHandlers(deps)
	dbh := handlers.NewDashboardHandlers(deps)
	nrh := handlers.NewNarrativeHandlers(deps)

	dashRoutes := dbh.DashboardRoutes()
	dashRoutes.Mount("/narrative", nrh.NarrativeRoutes())

	r.Mount("/users", ush.UserRoutes())
	r.Mount("/transactions", txh.TransactionRoutes())
	r.Mount("/dashboard", dashRoutes)
	return r
}
