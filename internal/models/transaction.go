package models

import (
	"time"
)

// TransactionType classifies a ledger entry by the sign of its raw amount.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction is one normalized ledger entry. The import collaborator parses
// and types raw rows before they reach the engine; the engine itself never
// mutates a transaction. Type is income iff RawAmount >= 0 and Amount is
// always abs(RawAmount).
type Transaction struct {
	TransactionID string          `firestore:"transactionId" json:"transactionId"`
	Date          string          `firestore:"date" json:"date"`   // YYYY-MM-DD
	Month         string          `firestore:"month" json:"month"` // YYYY-MM
	Type          TransactionType `firestore:"type" json:"type"`
	Amount        float64         `firestore:"amount" json:"amount"`
	Category      string          `firestore:"category" json:"category"`
	Payee         string          `firestore:"payee" json:"payee,omitempty"`
	RawAmount     float64         `firestore:"rawAmount" json:"rawAmount"`
	CreatedAt     time.Time       `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time       `firestore:"updatedAt" json:"updatedAt"`
}
