package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/mthorsell/cashlens-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	UserSvc         UserService
	TransactionSvc  TransactionService
	DashboardSvc    DashboardService
	NarrativeSvc    NarrativeService
	Firebase        *auth.Client
}
