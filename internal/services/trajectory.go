package services

import (
	"github.com/mthorsell/cashlens-backend/internal/dto"
)

// BuildTrajectorySignals derives the three fixed-horizon signals from the
// comparison map: monthly from thisMonth, short-term from last3Months,
// long-term from the trailing twelve.
func BuildTrajectorySignals(comparisons map[dto.Timeframe]dto.KpiTimeframeComparison) dto.TrajectorySignals {
	return dto.TrajectorySignals{
		MonthlyTrend:   signalFrom(comparisons[dto.TimeframeThisMonth]),
		ShortTermTrend: signalFrom(comparisons[dto.TimeframeLast3Months]),
		LongTermTrend:  signalFrom(comparisons[dto.TimeframeTTM]),
	}
}

// signalFrom forces flat/neutral when either window is empty so a spurious
// delta from empty-vs-empty data never produces a false green or red.
func signalFrom(cmp dto.KpiTimeframeComparison) dto.TrajectorySignal {
	s := dto.TrajectorySignal{
		Timeframe: cmp.Timeframe,
		Delta:     cmp.NetCashFlow.Delta,
		Direction: dto.DirectionFlat,
		Light:     dto.LightNeutral,
	}
	s.HasSufficientHistory = cmp.Current.MonthCount >= 1 && cmp.Previous.MonthCount >= 1
	if !s.HasSufficientHistory {
		return s
	}
	s.Direction = deltaDirection(s.Delta)
	switch s.Direction {
	case dto.DirectionUp:
		s.Light = dto.LightGreen
	case dto.DirectionDown:
		s.Light = dto.LightRed
	}
	return s
}
