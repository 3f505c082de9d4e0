package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mthorsell/cashlens-backend/internal/dto"
	"github.com/mthorsell/cashlens-backend/internal/middleware"
	"github.com/mthorsell/cashlens-backend/internal/response"
)

type NarrativeService interface {
	Explain(ctx context.Context, uid string, mode dto.CashFlowMode) (dto.NarrativeResponse, error)
}

type narrativeHandlers struct {
	ResponseHandler response.ResponseHandler
	NarrativeSvc    NarrativeService
}

func NewNarrativeHandlers(deps *Deps) *narrativeHandlers {
	return &narrativeHandlers{
		ResponseHandler: deps.ResponseHandler,
		NarrativeSvc:    deps.NarrativeSvc,
	}
}

func (h *narrativeHandlers) NarrativeRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Explain)
	return r
}

func (h *narrativeHandlers) Explain(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	mode := dto.ParseCashFlowMode(r.URL.Query().Get("mode"))

	narrative, err := h.NarrativeSvc.Explain(r.Context(), uid, mode)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, narrative)
}
