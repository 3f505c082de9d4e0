package dto

// Timeframe names a rule for selecting a contiguous window of rollup months.
type Timeframe string

const (
	TimeframeThisMonth    Timeframe = "thisMonth"
	TimeframeLastMonth    Timeframe = "lastMonth"
	TimeframeLast3Months  Timeframe = "last3Months"
	TimeframeTTM          Timeframe = "ttm" // trailing 12 months
	TimeframeLast24Months Timeframe = "last24Months"
	TimeframeLast36Months Timeframe = "last36Months"
	TimeframeYTD          Timeframe = "ytd"
	TimeframeAllDates     Timeframe = "allDates"
)

// AggregateTimeframes is every timeframe the dashboard summarizes.
var AggregateTimeframes = []Timeframe{
	TimeframeThisMonth,
	TimeframeLastMonth,
	TimeframeLast3Months,
	TimeframeTTM,
	TimeframeLast24Months,
	TimeframeLast36Months,
	TimeframeYTD,
	TimeframeAllDates,
}

// ComparisonTimeframes is the subset with a defined prior window.
var ComparisonTimeframes = []Timeframe{
	TimeframeThisMonth,
	TimeframeLast3Months,
	TimeframeYTD,
	TimeframeTTM,
	TimeframeLast24Months,
	TimeframeLast36Months,
}

// ParseTimeframe maps a request string to a timeframe; ok is false for
// anything outside the fixed enum.
func ParseTimeframe(s string) (Timeframe, bool) {
	for _, tf := range AggregateTimeframes {
		if s == string(tf) {
			return tf, true
		}
	}
	return "", false
}

// KpiAggregate summarizes a window of rollups. An empty window yields a
// zeroed aggregate with MonthCount 0 and empty start/end months.
type KpiAggregate struct {
	Timeframe        Timeframe `json:"timeframe"`
	StartMonth       string    `json:"startMonth"`
	EndMonth         string    `json:"endMonth"`
	MonthCount       int       `json:"monthCount"`
	TransactionCount int       `json:"transactionCount"`
	Revenue          float64   `json:"revenue"`
	Expenses         float64   `json:"expenses"`
	NetCashFlow      float64   `json:"netCashFlow"`
	SavingsRate      float64   `json:"savingsRate"`
}

// MetricComparison pairs one metric's current and previous window values.
// PercentChange is nil when the previous value is too close to zero for a
// relative change to mean anything.
type MetricComparison struct {
	Current       float64  `json:"current"`
	Previous      float64  `json:"previous"`
	Delta         float64  `json:"delta"`
	PercentChange *float64 `json:"percentChange,omitempty"`
}

// KpiTimeframeComparison pairs a current window's aggregate with its prior
// window's, per metric. Label is the composed header string; the structured
// start/end month pairs are exposed alongside it so presentation code can
// format its own.
type KpiTimeframeComparison struct {
	Timeframe   Timeframe        `json:"timeframe"`
	Label       string           `json:"label"`
	Current     KpiAggregate     `json:"current"`
	Previous    KpiAggregate     `json:"previous"`
	Revenue     MetricComparison `json:"revenue"`
	Expenses    MetricComparison `json:"expenses"`
	NetCashFlow MetricComparison `json:"netCashFlow"`
	SavingsRate MetricComparison `json:"savingsRate"`
}

// KpiCard is one headline metric with its trend arrow.
type KpiCard struct {
	Metric        string   `json:"metric"`
	Label         string   `json:"label"`
	Value         float64  `json:"value"`
	Delta         float64  `json:"delta"`
	PercentChange *float64 `json:"percentChange,omitempty"`
	Direction     string   `json:"direction"` // up | down | flat
}
