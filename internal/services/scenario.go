package services

import (
	"fmt"
	"math"

	"github.com/mthorsell/cashlens-backend/internal/dto"
	"github.com/mthorsell/cashlens-backend/internal/months"
)

const (
	scenarioDefaultMonths  = 12
	scenarioMaxMonths      = 36
	scenarioBaselineMonths = 3
)

// ProjectScenario applies compound growth/decay to the trailing-3-month
// baseline averages, independent of the trend model. Returns an empty slice
// when there is no baseline to project from.
func ProjectScenario(model dto.DashboardModel, in dto.ScenarioInput) []dto.ScenarioPoint {
	if len(model.Rollups) == 0 {
		return []dto.ScenarioPoint{}
	}

	base := model.Rollups
	if len(base) > scenarioBaselineMonths {
		base = base[len(base)-scenarioBaselineMonths:]
	}
	var baseRevenue, baseExpenses float64
	for _, r := range base {
		baseRevenue += r.Revenue
		baseExpenses += r.Expenses
	}
	baseRevenue /= float64(len(base))
	baseExpenses /= float64(len(base))

	count := in.Months
	if count <= 0 {
		count = scenarioDefaultMonths
	}
	if count > scenarioMaxMonths {
		count = scenarioMaxMonths
	}

	growth := 1 + in.RevenueGrowthPct/100
	decay := 1 - in.ExpenseReductionPct/100
	latest := model.Rollups[len(model.Rollups)-1].Month
	labelFromLatest := months.IsValid(latest)

	revenue, expenses := baseRevenue, baseExpenses
	var cumulative float64
	out := make([]dto.ScenarioPoint, 0, count)
	for k := 1; k <= count; k++ {
		revenue *= growth
		expenses *= decay
		expenses = math.Max(0, expenses)
		net := revenue - expenses
		cumulative += net

		key := fmt.Sprintf("month %d", k)
		if labelFromLatest {
			if added, err := months.Add(latest, k); err == nil {
				key = added
			}
		}
		out = append(out, dto.ScenarioPoint{
			Month:         key,
			Revenue:       round2(revenue),
			Expenses:      round2(expenses),
			Net:           round2(net),
			CumulativeNet: round2(cumulative),
		})
	}
	return out
}
