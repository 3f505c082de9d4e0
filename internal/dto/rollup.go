package dto

// CashFlowMode selects whether capital-distribution expense entries count
// against net cash flow (total) or are excluded from it (operating).
type CashFlowMode string

const (
	CashFlowModeOperating CashFlowMode = "operating"
	CashFlowModeTotal     CashFlowMode = "total"
)

// ParseCashFlowMode maps a request string to a mode, defaulting to total.
func ParseCashFlowMode(s string) CashFlowMode {
	if s == string(CashFlowModeOperating) {
		return CashFlowModeOperating
	}
	return CashFlowModeTotal
}

// MonthlyRollup is one month's aggregated revenue/expense/net/savings-rate.
// Expenses always reports the gross expense total; NetCashFlow already
// reflects the cash-flow mode the rollups were built under.
type MonthlyRollup struct {
	Month            string  `json:"month"`
	Revenue          float64 `json:"revenue"`
	Expenses         float64 `json:"expenses"`
	NetCashFlow      float64 `json:"netCashFlow"`
	SavingsRate      float64 `json:"savingsRate"`
	TransactionCount int     `json:"transactionCount"`
}
