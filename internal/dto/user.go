package dto

// RegisterUserRequest creates the user profile document.
type RegisterUserRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UpdatePreferencesRequest updates the persisted dashboard preferences.
// Nil fields are left unchanged.
type UpdatePreferencesRequest struct {
	CashFlowMode     *string `json:"cashFlowMode,omitempty"`
	DefaultTimeframe *string `json:"defaultTimeframe,omitempty"`
	ForecastHorizon  *int    `json:"forecastHorizon,omitempty"`
}

// PreferencesResponse is the persisted dashboard preference set.
type PreferencesResponse struct {
	CashFlowMode     string `json:"cashFlowMode"`
	DefaultTimeframe string `json:"defaultTimeframe"`
	ForecastHorizon  int    `json:"forecastHorizon"`
}
