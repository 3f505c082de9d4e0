package dto

// DashboardModel is the full derived view of one user's ledger under one
// cash-flow mode. It is a pure function of (transactions, mode): recomputed
// wholesale on every input change, never patched incrementally.
type DashboardModel struct {
	Mode          CashFlowMode `json:"mode"`
	LatestMonth   string       `json:"latestMonth"`
	PreviousMonth string       `json:"previousMonth"`

	Rollups     []MonthlyRollup                      `json:"rollups"`
	Aggregates  map[Timeframe]KpiAggregate           `json:"aggregates"`
	Comparisons map[Timeframe]KpiTimeframeComparison `json:"comparisons"`
	Signals     TrajectorySignals                    `json:"signals"`
	Cards       []KpiCard                            `json:"cards"`

	TrendPoints     []TrendPoint            `json:"trendPoints"`
	Forecast        []CashFlowForecastPoint `json:"forecast"`
	ForecastNotes   []ForecastModelNote     `json:"forecastNotes"`
	ForecastMargins ForecastMargins         `json:"forecastMargins"`

	CategorySlices   []CategorySlice `json:"categorySlices"`
	TopPayees        []PayeeTotal    `json:"topPayees"`
	Movers           []CategoryMover `json:"movers"`
	Opportunities    []Opportunity   `json:"opportunities"`
	OpportunityTotal float64         `json:"opportunityTotal"`

	SummaryBullets []string       `json:"summaryBullets"`
	DigHere        *CategorySlice `json:"digHere,omitempty"`
}

// KpiView is the single-timeframe slice of the dashboard served by the
// KPI endpoint: the four cards plus the backing comparison.
type KpiView struct {
	Timeframe  Timeframe              `json:"timeframe"`
	Cards      []KpiCard              `json:"cards"`
	Comparison KpiTimeframeComparison `json:"comparison"`
}
