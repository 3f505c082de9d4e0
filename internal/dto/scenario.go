package dto

// ScenarioInput is the what-if lever set applied to the trailing baseline.
// Percentages are taken as given; only the month count is clamped.
type ScenarioInput struct {
	RevenueGrowthPct    float64 `json:"revenueGrowthPct"`
	ExpenseReductionPct float64 `json:"expenseReductionPct"`
	Months              int     `json:"months"`
}

// ScenarioPoint is one projected month under a scenario. Growth and reduction
// compound month over month.
type ScenarioPoint struct {
	Month         string  `json:"month"`
	Revenue       float64 `json:"revenue"`
	Expenses      float64 `json:"expenses"`
	Net           float64 `json:"net"`
	CumulativeNet float64 `json:"cumulativeNet"`
}
