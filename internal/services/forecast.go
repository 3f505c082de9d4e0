package services

import (
	"fmt"
	"math"

	"github.com/mthorsell/cashlens-backend/internal/dto"
	"github.com/mthorsell/cashlens-backend/internal/months"
)

// ForecastHorizonMax is how many projected months the engine precomputes, so
// UI range controls never trigger a recomputation.
const ForecastHorizonMax = 36

// BuildForecast appends up to horizon projected months after the actual
// rollups. Revenue and expense component lines are floored at zero; net can
// go negative. A malformed latest month key stops projection (no synthetic
// keys can be derived), leaving just the actual prefix.
func BuildForecast(rollups []dto.MonthlyRollup, horizon int) ([]dto.CashFlowForecastPoint, []dto.ForecastModelNote) {
	points := make([]dto.CashFlowForecastPoint, 0, len(rollups)+horizon)
	for _, r := range rollups {
		points = append(points, dto.CashFlowForecastPoint{
			Month:       r.Month,
			Revenue:     r.Revenue,
			Expenses:    r.Expenses,
			NetCashFlow: r.NetCashFlow,
			Status:      dto.ForecastStatusActual,
		})
	}
	if len(rollups) == 0 {
		return points, nil
	}
	if horizon < 0 {
		horizon = 0
	}
	if horizon > ForecastHorizonMax {
		horizon = ForecastHorizonMax
	}

	keys, revenues, expenses := rollupSeries(rollups)
	revModel := chooseTrendModel(revenues)
	expModel := chooseTrendModel(expenses)
	seasonal := fitSeasonality(keys, expenses)

	notes := []dto.ForecastModelNote{
		modelNote("revenue", revModel, false),
		modelNote("expenses", expModel, seasonal.confident),
	}

	latest := rollups[len(rollups)-1].Month
	if !months.IsValid(latest) {
		return points, notes
	}
	for k := 1; k <= horizon; k++ {
		key, err := months.Add(latest, k)
		if err != nil {
			break
		}
		rev := math.Max(0, revModel.projectionAt(k))
		exp := expModel.projectionAt(k)
		if seasonal.confident {
			exp += seasonal.adjustmentFor(months.Number(key))
		}
		exp = math.Max(0, exp)
		points = append(points, dto.CashFlowForecastPoint{
			Month:       key,
			Revenue:     round2(rev),
			Expenses:    round2(exp),
			NetCashFlow: round2(rev - exp),
			Status:      dto.ForecastStatusProjected,
		})
	}
	return points, notes
}

func modelNote(series string, m trendModel, seasonalApplied bool) dto.ForecastModelNote {
	note := dto.ForecastModelNote{
		Series:             series,
		Model:              m.Kind,
		Slope:              m.Slope,
		RSquared:           m.RSquared,
		SeasonalityApplied: seasonalApplied,
	}
	if m.Kind == dto.TrendModelLinear {
		note.Note = fmt.Sprintf("%s follows a linear trend of %+.2f/month (R² %.2f).", series, m.Slope, m.RSquared)
	} else {
		note.Note = fmt.Sprintf("%s projected flat at its recent average of %.2f; trend not confident enough.", series, m.Baseline)
	}
	if seasonalApplied {
		note.Note += " Recurring monthly pattern applied."
	}
	return note
}

// rollupSeries extracts the parallel month-key, revenue, and expense series.
func rollupSeries(rollups []dto.MonthlyRollup) (keys []string, revenues, expenses []float64) {
	keys = make([]string, len(rollups))
	revenues = make([]float64, len(rollups))
	expenses = make([]float64, len(rollups))
	for i, r := range rollups {
		keys[i] = r.Month
		revenues[i] = r.Revenue
		expenses[i] = r.Expenses
	}
	return keys, revenues, expenses
}

// buildTrendPoints mirrors the rollups as chart-ready income/expense/net
// points.
func buildTrendPoints(rollups []dto.MonthlyRollup) []dto.TrendPoint {
	out := make([]dto.TrendPoint, len(rollups))
	for i, r := range rollups {
		out[i] = dto.TrendPoint{
			Month:   r.Month,
			Income:  r.Revenue,
			Expense: r.Expenses,
			Net:     r.NetCashFlow,
		}
	}
	return out
}
