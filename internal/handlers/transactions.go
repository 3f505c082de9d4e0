package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mthorsell/cashlens-backend/internal/dto"
	"github.com/mthorsell/cashlens-backend/internal/errs"
	"github.com/mthorsell/cashlens-backend/internal/middleware"
	"github.com/mthorsell/cashlens-backend/internal/models"
	"github.com/mthorsell/cashlens-backend/internal/response"
)

type TransactionService interface {
	Replace(ctx context.Context, uid string, txs []models.Transaction) (int, error)
}

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	TransactionSvc  TransactionService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		TransactionSvc:  deps.TransactionSvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Put("/", h.Replace)
	return r
}

func (h *transactionHandlers) Replace(w http.ResponseWriter, r *http.Request) {
	var req dto.ReplaceTransactionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if req.Transactions == nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("transactions field is required"))
		return
	}

	uid := middleware.UID(r.Context())
	count, err := h.TransactionSvc.Replace(r.Context(), uid, req.Transactions)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.ReplaceTransactionsResponse{Count: count})
}
