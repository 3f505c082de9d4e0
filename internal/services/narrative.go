package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mthorsell/cashlens-backend/internal/dto"
	"github.com/mthorsell/cashlens-backend/internal/models"
	"github.com/mthorsell/cashlens-backend/pkg/helpers"
	"github.com/mthorsell/cashlens-backend/pkg/logger"
)

type vertexClient interface {
	GenerateContent(ctx context.Context, req dto.VertexGenerateRequest) (dto.VertexGenerateResponse, error)
}

type narrativeDashboard interface {
	GetDashboard(ctx context.Context, uid string, mode dto.CashFlowMode) (dto.DashboardModel, error)
}

type narrativeStore interface {
	Get(ctx context.Context, uid string, mode string) (*models.Narrative, error)
	Save(ctx context.Context, uid string, n models.Narrative) error
}

type narrativeService struct {
	vertex    vertexClient
	dashboard narrativeDashboard
	store     narrativeStore
	ttl       time.Duration
	clockNow  func() time.Time
}

func NewNarrativeService(vertex vertexClient, dashboard narrativeDashboard, store narrativeStore, ttl time.Duration) *narrativeService {
	return &narrativeService{
		vertex:    vertex,
		dashboard: dashboard,
		store:     store,
		ttl:       ttl,
		clockNow:  time.Now,
	}
}

// Explain returns a short generated narrative of the user's dashboard,
// serving a cached one while it is fresh. The dashboard numbers themselves
// are computed deterministically; only the prose is generated.
func (s *narrativeService) Explain(ctx context.Context, uid string, mode dto.CashFlowMode) (dto.NarrativeResponse, error) {
	log := logger.FromContext(ctx)

	if cached, err := s.store.Get(ctx, uid, string(mode)); err == nil && cached != nil {
		if s.clockNow().Sub(cached.GeneratedAt) < s.ttl {
			return dto.NarrativeResponse{
				Mode:        mode,
				Text:        cached.Text,
				GeneratedAt: cached.GeneratedAt,
				Cached:      true,
			}, nil
		}
	}

	model, err := s.dashboard.GetDashboard(ctx, uid, mode)
	if err != nil {
		return dto.NarrativeResponse{}, err
	}

	resp, err := s.vertex.GenerateContent(ctx, dto.VertexGenerateRequest{
		System:          narrativeSystemPrompt,
		UserMessage:     narrativePrompt(model),
		Temperature:     helpers.Ptr(float32(0.4)),
		MaxOutputTokens: helpers.Ptr(int32(512)),
	})
	if err != nil {
		return dto.NarrativeResponse{}, err
	}

	now := s.clockNow()
	narrative := models.Narrative{
		Mode:        string(mode),
		Text:        resp.Text,
		GeneratedAt: now,
	}
	if err := s.store.Save(ctx, uid, narrative); err != nil {
		// Serving the fresh text matters more than caching it.
		log.Warn("failed to cache narrative", "error", err)
	}

	return dto.NarrativeResponse{
		Mode:        mode,
		Text:        resp.Text,
		GeneratedAt: now,
	}, nil
}

const narrativeSystemPrompt = "You are a concise personal-finance assistant. " +
	"Summarize the dashboard facts you are given in 3-5 short sentences. " +
	"Never invent numbers; only restate the ones provided."

// narrativePrompt flattens the deterministic summary bullets and forecast
// notes into the generation prompt.
func narrativePrompt(model dto.DashboardModel) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Cash-flow mode: %s.\n", model.Mode)
	for _, bullet := range model.SummaryBullets {
		fmt.Fprintf(&b, "- %s\n", bullet)
	}
	for _, note := range model.ForecastNotes {
		fmt.Fprintf(&b, "- %s\n", note.Note)
	}
	if model.ForecastMargins.Note != "" {
		fmt.Fprintf(&b, "- Suggested margins: revenue %+.0f%%, expenses %+.0f%% (%s)\n",
			model.ForecastMargins.RevenuePct, model.ForecastMargins.ExpensePct, model.ForecastMargins.Note)
	}
	return b.String()
}
