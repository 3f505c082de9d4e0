package services

import (
	"fmt"
	"math"
	"testing"

	"github.com/mthorsell/cashlens-backend/internal/months"
)

// seasonalFixture builds n sequential month keys ending 2024-12, with a
// constant base value plus a spike every December.
func seasonalFixture(n int, base, decemberSpike float64) (keys []string, values []float64) {
	keys = make([]string, n)
	values = make([]float64, n)
	for i := 0; i < n; i++ {
		year := 2024 - (n-1-i)/12
		month := 12 - (n-1-i)%12
		keys[i] = fmt.Sprintf("%04d-%02d", year, month)
		values[i] = base
		if month == 12 {
			values[i] += decemberSpike
		}
	}
	return keys, values
}

func TestFitSeasonalityConfidentOnRecurringSpike(t *testing.T) {
	keys, values := seasonalFixture(24, 1000, 600)
	model := fitSeasonality(keys, values)
	if !model.confident {
		t.Fatalf("recurring spike over 24 months should be confident: strength %.3f autocorr %.3f",
			model.strength, model.autocorr)
	}
	if model.adjustmentFor(12) <= 0 {
		t.Fatalf("december adjustment should be positive, got %.2f", model.adjustmentFor(12))
	}
	// Non-spike months absorb a small negative adjustment from re-centering.
	if model.adjustmentFor(6) >= 0 {
		t.Fatalf("june adjustment should be slightly negative, got %.2f", model.adjustmentFor(6))
	}
}

func TestFitSeasonalityAdjustmentsAreCentered(t *testing.T) {
	keys, values := seasonalFixture(24, 1000, 600)
	model := fitSeasonality(keys, values)

	// Weighted by observation count per month number, the adjustments must
	// sum to (approximately) zero so the trend line is not shifted.
	counts := make(map[int]int)
	for _, k := range keys {
		counts[months.Number(k)]++
	}
	var weighted float64
	for num, adj := range model.adjustments {
		weighted += adj * float64(counts[num])
	}
	if math.Abs(weighted) > 1e-6 {
		t.Fatalf("weighted adjustment mean should be ~0, got %.6f", weighted)
	}
}

func TestFitSeasonalityGateShortHistory(t *testing.T) {
	keys, values := seasonalFixture(12, 1000, 600)
	model := fitSeasonality(keys, values)
	if model.confident {
		t.Fatalf("12 months should never pass the seasonality gate")
	}
	if model.adjustmentFor(12) != 0 {
		t.Fatalf("unconfident model should carry no adjustments, got %.2f", model.adjustmentFor(12))
	}
}

func TestFitSeasonalityNotConfidentOnFlatSeries(t *testing.T) {
	keys, values := seasonalFixture(24, 1000, 0)
	model := fitSeasonality(keys, values)
	if model.confident {
		t.Fatalf("flat series has no seasonal pattern: strength %.3f autocorr %.3f",
			model.strength, model.autocorr)
	}
}

func TestFitSeasonalityMismatchedInput(t *testing.T) {
	_, values := seasonalFixture(24, 1000, 600)
	model := fitSeasonality([]string{"2024-01"}, values)
	if model.confident || len(model.adjustments) != 0 {
		t.Fatalf("mismatched key/value lengths should yield an empty model: %+v", model)
	}
}
