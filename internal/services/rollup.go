package services

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/mthorsell/cashlens-backend/internal/dto"
	"github.com/mthorsell/cashlens-backend/internal/models"
	"github.com/mthorsell/cashlens-backend/internal/months"
)

// epsilon guards every division against a near-zero denominator.
const epsilon = 1e-9

// capitalDistributionCategory is matched exactly against normalized category
// segments. Broader synonym matching is a possible future enhancement, not
// the current rule.
const capitalDistributionCategory = "capital distribution"

type rollupAccumulator struct {
	revenue             float64
	expenses            float64
	capitalDistribution float64
	count               int
}

// BuildMonthlyRollups aggregates transactions into per-month buckets in a
// single pass. Under operating mode, capital-distribution expenses are
// excluded from net cash flow; Expenses always reports the gross total.
// Output is sorted ascending by month key; empty input yields an empty slice.
func BuildMonthlyRollups(txs []models.Transaction, mode dto.CashFlowMode) []dto.MonthlyRollup {
	buckets := make(map[string]*rollupAccumulator)
	for _, tx := range txs {
		b := buckets[tx.Month]
		if b == nil {
			b = &rollupAccumulator{}
			buckets[tx.Month] = b
		}
		b.count++
		switch tx.Type {
		case models.TransactionTypeIncome:
			b.revenue += tx.Amount
		case models.TransactionTypeExpense:
			b.expenses += tx.Amount
			if IsCapitalDistribution(tx.Category) {
				b.capitalDistribution += tx.Amount
			}
		}
	}

	out := make([]dto.MonthlyRollup, 0, len(buckets))
	for month, b := range buckets {
		effective := b.expenses
		if mode == dto.CashFlowModeOperating {
			effective -= b.capitalDistribution
		}
		net := b.revenue - effective
		var rate float64
		if b.revenue > epsilon {
			rate = net / b.revenue * 100
		}
		out = append(out, dto.MonthlyRollup{
			Month:            month,
			Revenue:          round2(b.revenue),
			Expenses:         round2(b.expenses),
			NetCashFlow:      round2(net),
			SavingsRate:      round2(rate),
			TransactionCount: b.count,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return months.Compare(out[i].Month, out[j].Month) < 0
	})
	return out
}

// IsCapitalDistribution reports whether any colon-separated segment of the
// category equals "capital distribution", ignoring case and punctuation.
func IsCapitalDistribution(category string) bool {
	for _, segment := range strings.Split(category, ":") {
		if normalizeCategorySegment(segment) == capitalDistributionCategory {
			return true
		}
	}
	return false
}

func normalizeCategorySegment(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
