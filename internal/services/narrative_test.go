package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mthorsell/cashlens-backend/internal/dto"
	"github.com/mthorsell/cashlens-backend/internal/models"
	"github.com/mthorsell/cashlens-backend/pkg/helpers"
)

type stubVertex struct {
	req  dto.VertexGenerateRequest
	text string
	err  error
}

func (s *stubVertex) GenerateContent(_ context.Context, req dto.VertexGenerateRequest) (dto.VertexGenerateResponse, error) {
	s.req = req
	return dto.VertexGenerateResponse{Text: s.text}, s.err
}

type stubNarrativeDashboard struct {
	model dto.DashboardModel
	err   error
}

func (s *stubNarrativeDashboard) GetDashboard(_ context.Context, _ string, mode dto.CashFlowMode) (dto.DashboardModel, error) {
	s.model.Mode = mode
	return s.model, s.err
}

type stubNarrativeStore struct {
	cached  *models.Narrative
	saved   *models.Narrative
	saveErr error
}

func (s *stubNarrativeStore) Get(_ context.Context, _ string, _ string) (*models.Narrative, error) {
	return s.cached, nil
}

func (s *stubNarrativeStore) Save(_ context.Context, _ string, n models.Narrative) error {
	s.saved = &n
	return s.saveErr
}

func narrativeFixtureModel() dto.DashboardModel {
	return dto.DashboardModel{
		SummaryBullets: []string{"2024-06 net cash flow was 2100.00 on revenue of 5200.00 (savings rate 40.4%)."},
		ForecastNotes:  []dto.ForecastModelNote{{Note: "revenue follows a linear trend of +100.00/month (R² 1.00)."}},
	}
}

func TestExplainServesFreshCache(t *testing.T) {
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	vertex := &stubVertex{text: "should not be called"}
	store := &stubNarrativeStore{cached: &models.Narrative{
		Mode:        "total",
		Text:        "cached text",
		GeneratedAt: now.Add(-time.Hour),
	}}
	svc := NewNarrativeService(vertex, &stubNarrativeDashboard{}, store, 12*time.Hour)
	svc.clockNow = func() time.Time { return now }

	resp, err := svc.Explain(helpers.TestCtx(), "uid-123", dto.CashFlowModeTotal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Cached || resp.Text != "cached text" {
		t.Fatalf("fresh cache should be served: %+v", resp)
	}
	if vertex.req.UserMessage != "" {
		t.Fatalf("vertex should not be called on a cache hit")
	}
}

func TestExplainRegeneratesStaleCache(t *testing.T) {
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	vertex := &stubVertex{text: "fresh narrative"}
	store := &stubNarrativeStore{cached: &models.Narrative{
		Mode:        "total",
		Text:        "stale text",
		GeneratedAt: now.Add(-24 * time.Hour),
	}}
	svc := NewNarrativeService(vertex, &stubNarrativeDashboard{model: narrativeFixtureModel()}, store, 12*time.Hour)
	svc.clockNow = func() time.Time { return now }

	resp, err := svc.Explain(helpers.TestCtx(), "uid-123", dto.CashFlowModeTotal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Cached || resp.Text != "fresh narrative" {
		t.Fatalf("stale cache should be regenerated: %+v", resp)
	}
	if resp.GeneratedAt != now {
		t.Fatalf("unexpected generation time: %v", resp.GeneratedAt)
	}
	if store.saved == nil || store.saved.Text != "fresh narrative" {
		t.Fatalf("fresh narrative should be cached: %+v", store.saved)
	}
	// The prompt carries the deterministic facts, never raw transactions.
	if !strings.Contains(vertex.req.UserMessage, "2024-06 net cash flow") {
		t.Fatalf("prompt should include the summary bullets: %q", vertex.req.UserMessage)
	}
	if vertex.req.System == "" {
		t.Fatalf("system prompt should be set")
	}
}

func TestExplainToleratesSaveFailure(t *testing.T) {
	vertex := &stubVertex{text: "fresh narrative"}
	store := &stubNarrativeStore{saveErr: errors.New("firestore down")}
	svc := NewNarrativeService(vertex, &stubNarrativeDashboard{model: narrativeFixtureModel()}, store, 12*time.Hour)

	resp, err := svc.Explain(helpers.TestCtx(), "uid-123", dto.CashFlowModeTotal)
	if err != nil {
		t.Fatalf("save failure must not fail the request: %v", err)
	}
	if resp.Text != "fresh narrative" {
		t.Fatalf("unexpected text: %q", resp.Text)
	}
}

func TestExplainVertexError(t *testing.T) {
	wantErr := errors.New("vertex unavailable")
	svc := NewNarrativeService(&stubVertex{err: wantErr}, &stubNarrativeDashboard{model: narrativeFixtureModel()}, &stubNarrativeStore{}, 12*time.Hour)

	if _, err := svc.Explain(helpers.TestCtx(), "uid-123", dto.CashFlowModeTotal); !errors.Is(err, wantErr) {
		t.Fatalf("vertex error should propagate, got %v", err)
	}
}

func TestExplainDashboardError(t *testing.T) {
	wantErr := errors.New("ledger unavailable")
	svc := NewNarrativeService(&stubVertex{}, &stubNarrativeDashboard{err: wantErr}, &stubNarrativeStore{}, 12*time.Hour)

	if _, err := svc.Explain(helpers.TestCtx(), "uid-123", dto.CashFlowModeTotal); !errors.Is(err, wantErr) {
		t.Fatalf("dashboard error should propagate, got %v", err)
	}
}
