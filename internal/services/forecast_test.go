package services

import (
	"testing"

	"github.com/mthorsell/cashlens-backend/internal/dto"
)

func trendingRollups(end string, n int, revStart, revStep, expFlat float64) []dto.MonthlyRollup {
	rollups := monthsOf(end, n)
	for i := range rollups {
		rollups[i].Revenue = revStart + revStep*float64(i)
		rollups[i].Expenses = expFlat
		rollups[i].NetCashFlow = rollups[i].Revenue - expFlat
	}
	return rollups
}

func TestBuildForecastChronology(t *testing.T) {
	rollups := trendingRollups("2024-06", 6, 1000, 100, 800)
	points, notes := BuildForecast(rollups, 3)

	if len(points) != 9 {
		t.Fatalf("expected 6 actual + 3 projected points, got %d", len(points))
	}
	for i, p := range points[:6] {
		if p.Status != dto.ForecastStatusActual {
			t.Fatalf("point %d should be actual, got %s", i, p.Status)
		}
		if p.Month != rollups[i].Month || p.Revenue != rollups[i].Revenue {
			t.Fatalf("actual prefix must mirror the rollups: %+v vs %+v", p, rollups[i])
		}
	}
	wantProjected := []string{"2024-07", "2024-08", "2024-09"}
	for i, p := range points[6:] {
		if p.Status != dto.ForecastStatusProjected {
			t.Fatalf("projected point %d has status %s", i, p.Status)
		}
		if p.Month != wantProjected[i] {
			t.Fatalf("projected month %d: got %s want %s", i, p.Month, wantProjected[i])
		}
	}

	if len(notes) != 2 {
		t.Fatalf("expected one note per series, got %d", len(notes))
	}
	if notes[0].Series != "revenue" || notes[1].Series != "expenses" {
		t.Fatalf("unexpected note order: %+v", notes)
	}
	if notes[0].Model != dto.TrendModelLinear {
		t.Fatalf("clean revenue trend should be linear: %+v", notes[0])
	}
}

func TestBuildForecastContinuesTrend(t *testing.T) {
	rollups := trendingRollups("2024-06", 6, 1000, 100, 800)
	points, _ := BuildForecast(rollups, 2)
	first := points[6]
	if first.Revenue != 1600 {
		t.Fatalf("expected first projected revenue 1600, got %.2f", first.Revenue)
	}
	if first.Expenses != 800 {
		t.Fatalf("flat expenses should project at 800, got %.2f", first.Expenses)
	}
	if first.NetCashFlow != 800 {
		t.Fatalf("unexpected projected net: %.2f", first.NetCashFlow)
	}
}

func TestBuildForecastFloorsComponentsAtZero(t *testing.T) {
	// Revenue declining 100/month from 600: the projection crosses zero.
	rollups := trendingRollups("2024-06", 6, 600, -100, 50)
	points, _ := BuildForecast(rollups, 4)
	for _, p := range points[6:] {
		if p.Revenue < 0 || p.Expenses < 0 {
			t.Fatalf("component lines must not go negative: %+v", p)
		}
	}
	last := points[len(points)-1]
	if last.Revenue != 0 {
		t.Fatalf("deep projection should be floored at 0, got %.2f", last.Revenue)
	}
	// Net may still be negative once revenue bottoms out.
	if last.NetCashFlow != -50 {
		t.Fatalf("unexpected floored net: %.2f", last.NetCashFlow)
	}
}

func TestBuildForecastEmptyInput(t *testing.T) {
	points, notes := BuildForecast(nil, 12)
	if len(points) != 0 || notes != nil {
		t.Fatalf("empty rollups should produce no forecast: %v %v", points, notes)
	}
}

func TestBuildForecastMalformedLatestMonth(t *testing.T) {
	rollups := trendingRollups("2024-06", 6, 1000, 100, 800)
	rollups[len(rollups)-1].Month = "junk"
	points, notes := BuildForecast(rollups, 6)
	if len(points) != 6 {
		t.Fatalf("malformed latest month should stop projection, got %d points", len(points))
	}
	if len(notes) != 2 {
		t.Fatalf("model notes should still be produced, got %d", len(notes))
	}
}

func TestBuildForecastHorizonClamp(t *testing.T) {
	rollups := trendingRollups("2024-06", 6, 1000, 100, 800)
	points, _ := BuildForecast(rollups, 500)
	if len(points) != 6+ForecastHorizonMax {
		t.Fatalf("horizon should clamp to %d, got %d projected", ForecastHorizonMax, len(points)-6)
	}
	points, _ = BuildForecast(rollups, -3)
	if len(points) != 6 {
		t.Fatalf("negative horizon should project nothing, got %d points", len(points))
	}
}
