package services

import (
	"fmt"
	"math"

	"github.com/mthorsell/cashlens-backend/internal/dto"
)

// Trend-model selection thresholds. These are product-tuned policy, not
// statistical law; tests pin the current behavior.
const (
	trendMinObservations       = 6
	trendMinRSquared           = 0.35
	trendSlopeRangeFraction    = 0.03
	trendSlopeBaselineFraction = 0.005
	trendSlopeFloor            = 1.0

	rollingWindowMax     = 3
	reportingSlopeWindow = 6

	marginMinHistory = 6
	volatilityWindow = 12
)

// trendModel is the per-series fit chosen for projection. Kind is either
// linear-trend or rolling-average; a rolling-average model projects the
// constant baseline and reports the average month-over-month delta as slope.
type trendModel struct {
	Kind      string
	Slope     float64
	Intercept float64
	RSquared  float64
	Baseline  float64
	n         int
}

// linearRegression fits ordinary least squares against index 0..n-1.
func linearRegression(values []float64) (slope, intercept, rSquared float64) {
	n := float64(len(values))
	if n < 2 {
		return 0, 0, 0
	}
	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}
	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return 0, 0, 0
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n

	meanY := sumY / n
	var ssRes, ssTot float64
	for i, y := range values {
		predicted := slope*float64(i) + intercept
		ssRes += (y - predicted) * (y - predicted)
		ssTot += (y - meanY) * (y - meanY)
	}
	if ssTot == 0 {
		return slope, intercept, 1
	}
	return slope, intercept, 1 - ssRes/ssTot
}

func rollingAverage(values []float64, window int) float64 {
	if window > len(values) {
		window = len(values)
	}
	if window == 0 {
		return 0
	}
	var sum float64
	for _, v := range values[len(values)-window:] {
		sum += v
	}
	return sum / float64(window)
}

// chooseTrendModel picks linear-trend only when the fit is long enough,
// explains enough variance, and has a slope that clears the materiality
// floor; anything weaker falls back to a flat rolling-average projection.
func chooseTrendModel(values []float64) trendModel {
	m := trendModel{Kind: dto.TrendModelRolling, n: len(values)}
	if len(values) == 0 {
		return m
	}
	m.Baseline = rollingAverage(values, rollingWindowMax)

	slope, intercept, r2 := linearRegression(values)
	if len(values) >= trendMinObservations && r2 >= trendMinRSquared &&
		math.Abs(slope) >= slopeThreshold(values, m.Baseline) {
		m.Kind = dto.TrendModelLinear
		m.Slope = slope
		m.Intercept = intercept
		m.RSquared = r2
		return m
	}

	m.RSquared = r2
	m.Slope = averageMonthlyDelta(values)
	return m
}

func slopeThreshold(values []float64, baseline float64) float64 {
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	t := trendSlopeRangeFraction * (hi - lo)
	t = math.Max(t, trendSlopeBaselineFraction*math.Abs(baseline))
	return math.Max(t, trendSlopeFloor)
}

// averageMonthlyDelta is the mean month-over-month change of the trailing
// window, used as the reporting slope for rolling-average models.
func averageMonthlyDelta(values []float64) float64 {
	v := tailFloats(values, reportingSlopeWindow)
	if len(v) < 2 {
		return 0
	}
	var sum float64
	for i := 1; i < len(v); i++ {
		sum += v[i] - v[i-1]
	}
	return sum / float64(len(v)-1)
}

// projectionAt evaluates the model k months past the last observed index.
func (m trendModel) projectionAt(k int) float64 {
	if m.Kind == dto.TrendModelLinear {
		return m.Intercept + m.Slope*float64(m.n-1+k)
	}
	return m.Baseline
}

// volatilityScore blends coefficient of variation with the mean absolute
// month-over-month relative change, over the trailing year.
func volatilityScore(values []float64) float64 {
	v := tailFloats(values, volatilityWindow)
	if len(v) == 0 {
		return 0
	}
	m := mean(v)
	var cv float64
	if math.Abs(m) > epsilon {
		cv = stdev(v) / math.Abs(m)
	}
	var sum float64
	var count int
	for i := 1; i < len(v); i++ {
		if math.Abs(v[i-1]) > epsilon {
			sum += math.Abs((v[i] - v[i-1]) / v[i-1])
			count++
		}
	}
	var rel float64
	if count > 0 {
		rel = sum / float64(count)
	}
	return 0.6*cv + 0.4*rel
}

// marginStep maps a volatility score below Threshold to Margin; scores past
// every step take the series' final margin.
type marginStep struct {
	Threshold float64
	Margin    float64
}

var revenueMarginSteps = []marginStep{
	{0.05, 0}, {0.10, -5}, {0.15, -10}, {0.20, -15},
	{0.25, -20}, {0.30, -25}, {0.35, -30}, {0.40, -35},
}

var expenseMarginSteps = []marginStep{
	{0.05, 0}, {0.15, 5}, {0.25, 10}, {0.35, 15},
}

const (
	revenueMarginFloor = -40
	expenseMarginCap   = 20
)

// SuggestedMargins maps series volatility to conservative planning margins:
// a revenue haircut and an expense pad. With under six months of history
// both default to zero with an explanatory note.
func SuggestedMargins(revenues, expenses []float64) dto.ForecastMargins {
	if len(revenues) < marginMinHistory {
		return dto.ForecastMargins{
			Note: fmt.Sprintf("Fewer than %d months of history; no safety margin suggested.", marginMinHistory),
		}
	}
	revVol := volatilityScore(revenues)
	expVol := volatilityScore(expenses)
	return dto.ForecastMargins{
		RevenuePct: marginFor(revVol, revenueMarginSteps, revenueMarginFloor),
		ExpensePct: marginFor(expVol, expenseMarginSteps, expenseMarginCap),
		Note: fmt.Sprintf("Based on revenue volatility %.2f and expense volatility %.2f over the trailing year.",
			revVol, expVol),
	}
}

func marginFor(vol float64, steps []marginStep, last float64) float64 {
	for _, s := range steps {
		if vol < s.Threshold {
			return s.Margin
		}
	}
	return last
}

func tailFloats(values []float64, n int) []float64 {
	if n > len(values) {
		n = len(values)
	}
	return values[len(values)-n:]
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stdev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var ss float64
	for _, v := range values {
		ss += (v - m) * (v - m)
	}
	return math.Sqrt(ss / float64(len(values)))
}
