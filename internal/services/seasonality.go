package services

import (
	"github.com/mthorsell/cashlens-backend/internal/months"
)

// Seasonality confidence gate. Like the trend thresholds these are tuned
// policy values pinned by tests.
const (
	seasonalMinMonths         = 18
	seasonalMinDistinctMonths = 10
	seasonalMinStrength       = 0.45
	seasonalMinAutocorr       = 0.35
	seasonalLag               = 12
)

// seasonalModel holds per-calendar-month-number adjustments to add on top of
// a trend projection. Adjustments are re-centered so their weighted mean is
// zero and the trend is not double-counted.
type seasonalModel struct {
	adjustments map[int]float64
	confident   bool
	strength    float64
	autocorr    float64
}

func (m seasonalModel) adjustmentFor(monthNumber int) float64 {
	return m.adjustments[monthNumber]
}

// fitSeasonality groups each month's regression residual by calendar month
// number. Confidence requires enough history, enough distinct month numbers,
// and either a strong seasonal signal or a lag-12 autocorrelation.
func fitSeasonality(monthKeys []string, values []float64) seasonalModel {
	model := seasonalModel{adjustments: make(map[int]float64)}
	n := len(values)
	if n < seasonalMinMonths || n != len(monthKeys) {
		return model
	}

	slope, intercept, _ := linearRegression(values)
	residuals := make([]float64, n)
	groups := make(map[int][]float64)
	for i, v := range values {
		residuals[i] = v - (intercept + slope*float64(i))
		num := months.Number(monthKeys[i])
		if num == 0 {
			continue
		}
		groups[num] = append(groups[num], residuals[i])
	}
	if len(groups) < seasonalMinDistinctMonths {
		return model
	}

	var weighted float64
	var total int
	for num, rs := range groups {
		m := mean(rs)
		model.adjustments[num] = m
		weighted += m * float64(len(rs))
		total += len(rs)
	}
	offset := weighted / float64(total)
	for num := range model.adjustments {
		model.adjustments[num] -= offset
	}

	// Strength compares the spread of the applied adjustments against the
	// residual noise left after removing both trend and seasonality.
	applied := make([]float64, 0, n)
	deseasoned := make([]float64, 0, n)
	for i := range values {
		a := model.adjustmentFor(months.Number(monthKeys[i]))
		applied = append(applied, a)
		deseasoned = append(deseasoned, residuals[i]-a)
	}
	noise := stdev(deseasoned)
	signal := stdev(applied)
	switch {
	case noise > epsilon:
		model.strength = signal / noise
	case signal > epsilon:
		model.strength = 1
	}

	model.autocorr = autocorrelation(residuals, seasonalLag)
	model.confident = model.strength >= seasonalMinStrength || model.autocorr >= seasonalMinAutocorr
	return model
}

func autocorrelation(values []float64, lag int) float64 {
	n := len(values)
	if n <= lag {
		return 0
	}
	m := mean(values)
	var den float64
	for _, v := range values {
		den += (v - m) * (v - m)
	}
	if den <= epsilon {
		return 0
	}
	var num float64
	for i := lag; i < n; i++ {
		num += (values[i] - m) * (values[i-lag] - m)
	}
	return num / den
}
