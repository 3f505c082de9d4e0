package models

import (
	"time"
)

// User holds the profile plus the persisted dashboard preferences. The
// preferences only seed defaults for the dashboard endpoints; the engine
// itself takes mode and timeframe as explicit parameters on every call.
type User struct {
	UID              string    `firestore:"uid" json:"uid"`
	Email            string    `firestore:"email" json:"email"`
	FirstName        string    `firestore:"firstName" json:"firstName"`
	LastName         string    `firestore:"lastName" json:"lastName"`
	CashFlowMode     string    `firestore:"cashFlowMode" json:"cashFlowMode"`
	DefaultTimeframe string    `firestore:"defaultTimeframe" json:"defaultTimeframe"`
	ForecastHorizon  int       `firestore:"forecastHorizon" json:"forecastHorizon"`
	CreatedAt        time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `firestore:"updatedAt" json:"updatedAt"`
}
