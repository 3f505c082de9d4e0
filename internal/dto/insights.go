package dto

// CategorySlice is one slice of the latest month's expense breakdown. Shares
// are normalized across the shown slices so they always sum to 100.
type CategorySlice struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Share    float64 `json:"share"`
}

// PayeeTotal is one payee's expense total for the latest month.
type PayeeTotal struct {
	Payee  string  `json:"payee"`
	Amount float64 `json:"amount"`
}

// CategoryMover is a category whose expense total changed month over month.
type CategoryMover struct {
	Category      string   `json:"category"`
	Current       float64  `json:"current"`
	Previous      float64  `json:"previous"`
	Delta         float64  `json:"delta"`
	PercentChange *float64 `json:"percentChange,omitempty"`
}

// Opportunity flags a category overspend relative to its own recent baseline.
type Opportunity struct {
	Title   string  `json:"title"`
	Savings float64 `json:"savings"`
	Hint    string  `json:"hint"`
}
