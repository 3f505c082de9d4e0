package dto

import "time"

// NarrativeResponse is the generated dashboard narrative plus cache metadata.
type NarrativeResponse struct {
	Mode        CashFlowMode `json:"mode"`
	Text        string       `json:"text"`
	GeneratedAt time.Time    `json:"generatedAt"`
	Cached      bool         `json:"cached"`
}
