package services

import (
	"fmt"

	"github.com/mthorsell/cashlens-backend/internal/dto"
	"github.com/mthorsell/cashlens-backend/internal/months"
)

// trailingCount maps trailing-N timeframes to N. TTM is the canonical key
// for the trailing-12 window.
func trailingCount(tf dto.Timeframe) (int, bool) {
	switch tf {
	case dto.TimeframeThisMonth:
		return 1, true
	case dto.TimeframeLast3Months:
		return 3, true
	case dto.TimeframeTTM:
		return 12, true
	case dto.TimeframeLast24Months:
		return 24, true
	case dto.TimeframeLast36Months:
		return 36, true
	}
	return 0, false
}

// SelectWindow extracts the subsequence of rollup months belonging to the
// timeframe. Rollups must already be sorted ascending by month.
func SelectWindow(rollups []dto.MonthlyRollup, tf dto.Timeframe) []dto.MonthlyRollup {
	if n, ok := trailingCount(tf); ok {
		return tailRollups(rollups, n)
	}
	switch tf {
	case dto.TimeframeLastMonth:
		if len(rollups) < 2 {
			return nil
		}
		return copyRollups(rollups[len(rollups)-2 : len(rollups)-1])
	case dto.TimeframeYTD:
		return ytdWindow(rollups)
	case dto.TimeframeAllDates:
		return copyRollups(rollups)
	}
	return nil
}

// SelectComparisonBlocks returns the current window and its symmetric prior
// window. For trailing-N timeframes the prior block is all-or-nothing: with
// fewer than 2N months available it stays empty rather than partially filled.
func SelectComparisonBlocks(rollups []dto.MonthlyRollup, tf dto.Timeframe) (current, previous []dto.MonthlyRollup) {
	if n, ok := trailingCount(tf); ok {
		current = tailRollups(rollups, n)
		if len(rollups) >= 2*n {
			previous = copyRollups(rollups[len(rollups)-2*n : len(rollups)-n])
		}
		return current, previous
	}
	if tf == dto.TimeframeYTD {
		current = ytdWindow(rollups)
		previous = priorYTDWindow(rollups)
		return current, previous
	}
	return nil, nil
}

// ytdWindow selects the months of the latest rollup's calendar year up to
// and including it. A malformed latest month degrades to just that month.
func ytdWindow(rollups []dto.MonthlyRollup) []dto.MonthlyRollup {
	if len(rollups) == 0 {
		return nil
	}
	latest := rollups[len(rollups)-1]
	year := months.Year(latest.Month)
	if year == 0 {
		return tailRollups(rollups, 1)
	}
	var out []dto.MonthlyRollup
	for _, r := range rollups {
		if months.Year(r.Month) == year && months.Compare(r.Month, latest.Month) <= 0 {
			out = append(out, r)
		}
	}
	return out
}

// priorYTDWindow selects the same calendar months of the year before the
// latest rollup's year.
func priorYTDWindow(rollups []dto.MonthlyRollup) []dto.MonthlyRollup {
	if len(rollups) == 0 {
		return nil
	}
	latest := rollups[len(rollups)-1]
	year := months.Year(latest.Month)
	latestNumber := months.Number(latest.Month)
	if year == 0 || latestNumber == 0 {
		return nil
	}
	var out []dto.MonthlyRollup
	for _, r := range rollups {
		if months.Year(r.Month) == year-1 && months.Number(r.Month) <= latestNumber {
			out = append(out, r)
		}
	}
	return out
}

// ComparisonLabel composes the human-readable header for a comparison. The
// structured start/end months travel alongside it on the aggregates, so the
// presentation layer may format its own instead.
func ComparisonLabel(tf dto.Timeframe, current, previous dto.KpiAggregate) string {
	if current.MonthCount == 0 {
		return "No data yet"
	}
	end := months.Label(current.EndMonth)

	if tf == dto.TimeframeThisMonth {
		if previous.MonthCount == 0 {
			return end + " (no prior month)"
		}
		return fmt.Sprintf("%s vs %s", end, months.Label(previous.EndMonth))
	}
	if tf == dto.TimeframeYTD {
		if previous.MonthCount == 0 {
			return fmt.Sprintf("YTD through %s (no prior year)", end)
		}
		return fmt.Sprintf("YTD through %s vs same months %d", end, months.Year(previous.EndMonth))
	}
	n, _ := trailingCount(tf)
	if previous.MonthCount == 0 {
		return fmt.Sprintf("Last %d Months through %s (no prior period)", n, end)
	}
	return fmt.Sprintf("Last %d Months through %s vs prior %d months", n, end, n)
}

func tailRollups(rollups []dto.MonthlyRollup, n int) []dto.MonthlyRollup {
	if n > len(rollups) {
		n = len(rollups)
	}
	if n == 0 {
		return nil
	}
	return copyRollups(rollups[len(rollups)-n:])
}

func copyRollups(rollups []dto.MonthlyRollup) []dto.MonthlyRollup {
	out := make([]dto.MonthlyRollup, len(rollups))
	copy(out, rollups)
	return out
}
