package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mthorsell/cashlens-backend/internal/dto"
	"github.com/mthorsell/cashlens-backend/internal/models"
)

const (
	expenseSliceLimit  = 7
	topPayeeLimit      = 8
	moverLimit         = 8
	opportunityLimit   = 8
	opportunityMinGap  = 50.0
	baselineMonthCount = 3
	fallbackTrimRate   = 0.03

	unknownPayee          = "Unknown"
	uncategorizedCategory = "Uncategorized"
)

// categoryExpenseTotals sums expense amounts per category for one month.
func categoryExpenseTotals(txs []models.Transaction, month string) map[string]float64 {
	totals := make(map[string]float64)
	for _, tx := range txs {
		if tx.Month != month || tx.Type != models.TransactionTypeExpense {
			continue
		}
		totals[categoryLabel(tx.Category)] += tx.Amount
	}
	return totals
}

// ExpenseSlices returns the latest month's top expense categories, with
// shares normalized to the shown slices' own sum so they total 100.
func ExpenseSlices(txs []models.Transaction, latestMonth string) []dto.CategorySlice {
	totals := categoryExpenseTotals(txs, latestMonth)
	ranked := rankTotals(totals, expenseSliceLimit)
	var sum float64
	for _, e := range ranked {
		sum += e.amount
	}
	if sum <= epsilon {
		return []dto.CategorySlice{}
	}
	out := make([]dto.CategorySlice, len(ranked))
	for i, e := range ranked {
		out[i] = dto.CategorySlice{
			Category: e.key,
			Amount:   round2(e.amount),
			Share:    round2(e.amount / sum * 100),
		}
	}
	return out
}

// TopPayees returns the latest month's top payees by expense total.
// Transactions without a payee land in the "Unknown" bucket.
func TopPayees(txs []models.Transaction, latestMonth string) []dto.PayeeTotal {
	totals := make(map[string]float64)
	for _, tx := range txs {
		if tx.Month != latestMonth || tx.Type != models.TransactionTypeExpense {
			continue
		}
		payee := strings.TrimSpace(tx.Payee)
		if payee == "" {
			payee = unknownPayee
		}
		totals[payee] += tx.Amount
	}
	ranked := rankTotals(totals, topPayeeLimit)
	out := make([]dto.PayeeTotal, len(ranked))
	for i, e := range ranked {
		out[i] = dto.PayeeTotal{Payee: e.key, Amount: round2(e.amount)}
	}
	return out
}

// CategoryMovers returns the categories whose expense totals changed most,
// in absolute terms, between the previous and latest months.
func CategoryMovers(txs []models.Transaction, latestMonth, previousMonth string) []dto.CategoryMover {
	current := categoryExpenseTotals(txs, latestMonth)
	previous := map[string]float64{}
	if previousMonth != "" {
		previous = categoryExpenseTotals(txs, previousMonth)
	}

	seen := make(map[string]bool, len(current)+len(previous))
	var movers []dto.CategoryMover
	for _, totals := range []map[string]float64{current, previous} {
		for cat := range totals {
			if seen[cat] {
				continue
			}
			seen[cat] = true
			m := compareMetric(current[cat], previous[cat])
			movers = append(movers, dto.CategoryMover{
				Category:      cat,
				Current:       round2(m.Current),
				Previous:      round2(m.Previous),
				Delta:         m.Delta,
				PercentChange: m.PercentChange,
			})
		}
	}
	sort.Slice(movers, func(i, j int) bool {
		di, dj := abs(movers[i].Delta), abs(movers[j].Delta)
		if di != dj {
			return di > dj
		}
		return movers[i].Category < movers[j].Category
	})
	if len(movers) > moverLimit {
		movers = movers[:moverLimit]
	}
	return movers
}

// Opportunities flags categories whose latest-month spend overran the mean of
// their up-to-3 prior months by more than the threshold. When nothing
// qualifies, a generic trim of the latest month's total expenses is offered.
func Opportunities(txs []models.Transaction, rollups []dto.MonthlyRollup, latestMonth string) ([]dto.Opportunity, float64) {
	out := []dto.Opportunity{}
	if latestMonth == "" {
		return out, 0
	}

	var prior []string
	for _, r := range rollups {
		if r.Month < latestMonth {
			prior = append(prior, r.Month)
		}
	}
	if len(prior) > baselineMonthCount {
		prior = prior[len(prior)-baselineMonthCount:]
	}

	current := categoryExpenseTotals(txs, latestMonth)
	if len(prior) > 0 {
		baselines := make(map[string]float64, len(current))
		for _, month := range prior {
			for cat, amount := range categoryExpenseTotals(txs, month) {
				baselines[cat] += amount
			}
		}
		for cat, amount := range current {
			baseline := baselines[cat] / float64(len(prior))
			overrun := amount - baseline
			if overrun <= opportunityMinGap {
				continue
			}
			out = append(out, dto.Opportunity{
				Title:   fmt.Sprintf("Trim %s spending", cat),
				Savings: round2(overrun),
				Hint: fmt.Sprintf("%s ran %.0f above its recent %d-month baseline of %.0f.",
					cat, overrun, len(prior), baseline),
			})
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i].Savings != out[j].Savings {
				return out[i].Savings > out[j].Savings
			}
			return out[i].Title < out[j].Title
		})
		if len(out) > opportunityLimit {
			out = out[:opportunityLimit]
		}
	}

	if len(out) == 0 {
		var latestExpenses float64
		for _, amount := range current {
			latestExpenses += amount
		}
		if latestExpenses > epsilon {
			out = append(out, dto.Opportunity{
				Title:   "Across-the-board trim",
				Savings: round2(latestExpenses * fallbackTrimRate),
				Hint:    "No single category stands out; shaving 3% off total spending is a realistic target.",
			})
		}
	}

	var total float64
	for _, o := range out {
		total += o.Savings
	}
	return out, round2(total)
}

// SummaryBullets renders a handful of narrative bullets from the computed
// model parts.
func SummaryBullets(model dto.DashboardModel) []string {
	if len(model.Rollups) == 0 {
		return []string{"No transactions yet."}
	}
	latest := model.Rollups[len(model.Rollups)-1]
	bullets := []string{
		fmt.Sprintf("%s net cash flow was %.2f on revenue of %.2f (savings rate %.1f%%).",
			latest.Month, latest.NetCashFlow, latest.Revenue, latest.SavingsRate),
	}
	if cmp, ok := model.Comparisons[dto.TimeframeThisMonth]; ok {
		if cmp.Revenue.PercentChange != nil {
			bullets = append(bullets, fmt.Sprintf("Revenue moved %+.1f%% month over month.", *cmp.Revenue.PercentChange))
		} else {
			bullets = append(bullets, "No prior month to compare revenue against yet.")
		}
	}
	if len(model.Movers) > 0 {
		m := model.Movers[0]
		bullets = append(bullets, fmt.Sprintf("%s moved the most month over month (%+.2f).", m.Category, m.Delta))
	}
	if model.OpportunityTotal > epsilon {
		bullets = append(bullets, fmt.Sprintf("Flagged savings opportunities total %.2f.", model.OpportunityTotal))
	}
	return bullets
}

func categoryLabel(category string) string {
	c := strings.TrimSpace(category)
	if c == "" {
		return uncategorizedCategory
	}
	return c
}

type rankedTotal struct {
	key    string
	amount float64
}

func rankTotals(totals map[string]float64, limit int) []rankedTotal {
	ranked := make([]rankedTotal, 0, len(totals))
	for k, v := range totals {
		ranked = append(ranked, rankedTotal{key: k, amount: v})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].amount != ranked[j].amount {
			return ranked[i].amount > ranked[j].amount
		}
		return ranked[i].key < ranked[j].key
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
