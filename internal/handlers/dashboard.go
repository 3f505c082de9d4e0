package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mthorsell/cashlens-backend/internal/dto"
	"github.com/mthorsell/cashlens-backend/internal/middleware"
	"github.com/mthorsell/cashlens-backend/internal/response"
)

type DashboardService interface {
	GetDashboard(ctx context.Context, uid string, mode dto.CashFlowMode) (dto.DashboardModel, error)
	GetKpis(ctx context.Context, uid string, mode dto.CashFlowMode, tf dto.Timeframe) (dto.KpiView, error)
	ProjectScenario(ctx context.Context, uid string, mode dto.CashFlowMode, in dto.ScenarioInput) ([]dto.ScenarioPoint, error)
}

type dashboardHandlers struct {
	ResponseHandler response.ResponseHandler
	DashboardSvc    DashboardService
}

func NewDashboardHandlers(deps *Deps) *dashboardHandlers {
	return &dashboardHandlers{
		ResponseHandler: deps.ResponseHandler,
		DashboardSvc:    deps.DashboardSvc,
	}
}

func (h *dashboardHandlers) DashboardRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetDashboard)
	r.Get("/kpis", h.GetKpis)
	r.Post("/scenario", h.ProjectScenario)
	return r
}

func (h *dashboardHandlers) GetDashboard(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	mode := dto.ParseCashFlowMode(r.URL.Query().Get("mode"))

	model, err := h.DashboardSvc.GetDashboard(r.Context(), uid, mode)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, model)
}

func (h *dashboardHandlers) GetKpis(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	mode := dto.ParseCashFlowMode(r.URL.Query().Get("mode"))
	tf := dto.Timeframe(r.URL.Query().Get("timeframe"))
	if tf == "" {
		tf = dto.TimeframeThisMonth
	}

	view, err := h.DashboardSvc.GetKpis(r.Context(), uid, mode, tf)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, view)
}

func (h *dashboardHandlers) ProjectScenario(w http.ResponseWriter, r *http.Request) {
	var req dto.ScenarioInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	uid := middleware.UID(r.Context())
	mode := dto.ParseCashFlowMode(r.URL.Query().Get("mode"))

	points, err := h.DashboardSvc.ProjectScenario(r.Context(), uid, mode, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, points)
}
