package services

import (
	"math"

	"github.com/mthorsell/cashlens-backend/internal/dto"
)

// AggregateWindow summarizes a window of rollups. Savings rate is recomputed
// from the summed totals, not averaged across monthly rates. Net cash flow is
// the sum of the monthly nets, which already reflect the cash-flow mode.
func AggregateWindow(tf dto.Timeframe, window []dto.MonthlyRollup) dto.KpiAggregate {
	agg := dto.KpiAggregate{Timeframe: tf}
	if len(window) == 0 {
		return agg
	}
	for _, r := range window {
		agg.Revenue += r.Revenue
		agg.Expenses += r.Expenses
		agg.NetCashFlow += r.NetCashFlow
		agg.TransactionCount += r.TransactionCount
	}
	agg.StartMonth = window[0].Month
	agg.EndMonth = window[len(window)-1].Month
	agg.MonthCount = len(window)
	if agg.Revenue > epsilon {
		agg.SavingsRate = round2(agg.NetCashFlow / agg.Revenue * 100)
	}
	agg.Revenue = round2(agg.Revenue)
	agg.Expenses = round2(agg.Expenses)
	agg.NetCashFlow = round2(agg.NetCashFlow)
	return agg
}

// CompareAggregates pairs a current window's aggregate with its prior
// window's, per metric.
func CompareAggregates(tf dto.Timeframe, current, previous dto.KpiAggregate) dto.KpiTimeframeComparison {
	return dto.KpiTimeframeComparison{
		Timeframe:   tf,
		Label:       ComparisonLabel(tf, current, previous),
		Current:     current,
		Previous:    previous,
		Revenue:     compareMetric(current.Revenue, previous.Revenue),
		Expenses:    compareMetric(current.Expenses, previous.Expenses),
		NetCashFlow: compareMetric(current.NetCashFlow, previous.NetCashFlow),
		SavingsRate: compareMetric(current.SavingsRate, previous.SavingsRate),
	}
}

// compareMetric leaves PercentChange nil when the previous value is too close
// to zero: there is no comparable baseline, and callers render it as "n/a".
func compareMetric(current, previous float64) dto.MetricComparison {
	m := dto.MetricComparison{
		Current:  current,
		Previous: previous,
		Delta:    round2(current - previous),
	}
	if math.Abs(previous) > epsilon {
		pct := round2((current - previous) / math.Abs(previous) * 100)
		m.PercentChange = &pct
	}
	return m
}

// BuildKpiCards turns one comparison into the four headline cards.
func BuildKpiCards(cmp dto.KpiTimeframeComparison) []dto.KpiCard {
	return []dto.KpiCard{
		metricCard("revenue", "Revenue", cmp.Revenue),
		metricCard("expenses", "Expenses", cmp.Expenses),
		metricCard("netCashFlow", "Net Cash Flow", cmp.NetCashFlow),
		metricCard("savingsRate", "Savings Rate", cmp.SavingsRate),
	}
}

func metricCard(metric, label string, m dto.MetricComparison) dto.KpiCard {
	return dto.KpiCard{
		Metric:        metric,
		Label:         label,
		Value:         m.Current,
		Delta:         m.Delta,
		PercentChange: m.PercentChange,
		Direction:     deltaDirection(m.Delta),
	}
}

func deltaDirection(delta float64) string {
	switch {
	case delta > epsilon:
		return dto.DirectionUp
	case delta < -epsilon:
		return dto.DirectionDown
	default:
		return dto.DirectionFlat
	}
}
