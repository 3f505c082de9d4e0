package services

import (
	"context"

	"github.com/mthorsell/cashlens-backend/internal/dto"
	"github.com/mthorsell/cashlens-backend/internal/errs"
	"github.com/mthorsell/cashlens-backend/internal/models"
	"github.com/mthorsell/cashlens-backend/pkg/logger"
)

// dashboardTransactionStore is the Firestore storage interface feeding the
// engine.
type dashboardTransactionStore interface {
	ListAll(ctx context.Context, uid string) ([]models.Transaction, error)
}

type dashboardService struct {
	txs dashboardTransactionStore
}

func NewDashboardService(txs dashboardTransactionStore) *dashboardService {
	return &dashboardService{txs: txs}
}

func (s *dashboardService) GetDashboard(ctx context.Context, uid string, mode dto.CashFlowMode) (dto.DashboardModel, error) {
	txs, err := s.txs.ListAll(ctx, uid)
	if err != nil {
		return dto.DashboardModel{}, err
	}
	model := BuildDashboardModel(txs, mode)
	logger.FromContext(ctx).Debug("dashboard model built",
		"transactions", len(txs), "months", len(model.Rollups), "mode", mode)
	return model, nil
}

func (s *dashboardService) GetKpis(ctx context.Context, uid string, mode dto.CashFlowMode, tf dto.Timeframe) (dto.KpiView, error) {
	comparable := false
	for _, candidate := range dto.ComparisonTimeframes {
		if candidate == tf {
			comparable = true
			break
		}
	}
	if !comparable {
		return dto.KpiView{}, errs.NewValidationError("timeframe does not support comparison: " + string(tf))
	}
	model, err := s.GetDashboard(ctx, uid, mode)
	if err != nil {
		return dto.KpiView{}, err
	}
	cmp := model.Comparisons[tf]
	return dto.KpiView{
		Timeframe:  tf,
		Cards:      BuildKpiCards(cmp),
		Comparison: cmp,
	}, nil
}

func (s *dashboardService) ProjectScenario(ctx context.Context, uid string, mode dto.CashFlowMode, in dto.ScenarioInput) ([]dto.ScenarioPoint, error) {
	model, err := s.GetDashboard(ctx, uid, mode)
	if err != nil {
		return nil, err
	}
	return ProjectScenario(model, in), nil
}

// BuildDashboardModel is the pure whole-model computation: a deterministic
// function of (transactions, mode), recomputed wholesale on every input
// change. The latest month is derived once here and threaded to every
// component rather than re-inferred ad hoc.
func BuildDashboardModel(txs []models.Transaction, mode dto.CashFlowMode) dto.DashboardModel {
	rollups := BuildMonthlyRollups(txs, mode)
	model := dto.DashboardModel{
		Mode:        mode,
		Rollups:     rollups,
		Aggregates:  make(map[dto.Timeframe]dto.KpiAggregate, len(dto.AggregateTimeframes)),
		Comparisons: make(map[dto.Timeframe]dto.KpiTimeframeComparison, len(dto.ComparisonTimeframes)),
	}
	if len(rollups) > 0 {
		model.LatestMonth = rollups[len(rollups)-1].Month
	}
	if len(rollups) > 1 {
		model.PreviousMonth = rollups[len(rollups)-2].Month
	}

	for _, tf := range dto.AggregateTimeframes {
		model.Aggregates[tf] = AggregateWindow(tf, SelectWindow(rollups, tf))
	}
	for _, tf := range dto.ComparisonTimeframes {
		current, previous := SelectComparisonBlocks(rollups, tf)
		model.Comparisons[tf] = CompareAggregates(tf,
			AggregateWindow(tf, current), AggregateWindow(tf, previous))
	}

	model.Signals = BuildTrajectorySignals(model.Comparisons)
	model.Cards = BuildKpiCards(model.Comparisons[dto.TimeframeThisMonth])
	model.TrendPoints = buildTrendPoints(rollups)
	model.Forecast, model.ForecastNotes = BuildForecast(rollups, ForecastHorizonMax)

	_, revenues, expenses := rollupSeries(rollups)
	model.ForecastMargins = SuggestedMargins(revenues, expenses)

	model.CategorySlices = ExpenseSlices(txs, model.LatestMonth)
	model.TopPayees = TopPayees(txs, model.LatestMonth)
	model.Movers = CategoryMovers(txs, model.LatestMonth, model.PreviousMonth)
	model.Opportunities, model.OpportunityTotal = Opportunities(txs, rollups, model.LatestMonth)
	model.SummaryBullets = SummaryBullets(model)
	if len(model.CategorySlices) > 0 {
		top := model.CategorySlices[0]
		model.DigHere = &top
	}
	return model
}
