package dto

// Forecast point status.
const (
	ForecastStatusActual    = "actual"
	ForecastStatusProjected = "projected"
)

// Trend model kinds.
const (
	TrendModelLinear  = "linear-trend"
	TrendModelRolling = "rolling-average"
)

// TrendPoint is one month of the income/expense/net chart series.
type TrendPoint struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// CashFlowForecastPoint is one month of the forecast series. The actual
// prefix mirrors the monthly rollups exactly; projected points are
// synthesized strictly after the last actual month.
type CashFlowForecastPoint struct {
	Month       string  `json:"month"`
	Revenue     float64 `json:"revenue"`
	Expenses    float64 `json:"expenses"`
	NetCashFlow float64 `json:"netCashFlow"`
	Status      string  `json:"status"`
}

// ForecastModelNote explains which model a series was projected with.
type ForecastModelNote struct {
	Series             string  `json:"series"` // revenue | expenses
	Model              string  `json:"model"`
	Slope              float64 `json:"slope"`
	RSquared           float64 `json:"rSquared"`
	SeasonalityApplied bool    `json:"seasonalityApplied"`
	Note               string  `json:"note"`
}

// ForecastMargins suggests safety margins derived from series volatility.
// RevenuePct is zero or negative (haircut); ExpensePct zero or positive
// (padding).
type ForecastMargins struct {
	RevenuePct float64 `json:"revenuePct"`
	ExpensePct float64 `json:"expensePct"`
	Note       string  `json:"note"`
}
