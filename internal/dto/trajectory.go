package dto

// Trajectory directions and lights.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
	DirectionFlat = "flat"

	LightGreen   = "green"
	LightRed     = "red"
	LightNeutral = "neutral"
)

// TrajectorySignal wraps one comparison's net-cash-flow delta into a fixed
// up/down/flat indicator. Without sufficient history on both sides the signal
// is forced flat/neutral regardless of the raw delta.
type TrajectorySignal struct {
	Timeframe            Timeframe `json:"timeframe"`
	Delta                float64   `json:"delta"`
	Direction            string    `json:"direction"`
	Light                string    `json:"light"`
	HasSufficientHistory bool      `json:"hasSufficientHistory"`
}

// TrajectorySignals holds the three fixed-horizon signals.
type TrajectorySignals struct {
	MonthlyTrend   TrajectorySignal `json:"monthlyTrend"`
	ShortTermTrend TrajectorySignal `json:"shortTermTrend"`
	LongTermTrend  TrajectorySignal `json:"longTermTrend"`
}
