package models

import "time"

// Narrative is a cached model-generated summary of a user's dashboard,
// keyed by cash-flow mode. Regenerated when the TTL lapses.
type Narrative struct {
	Mode        string    `firestore:"mode" json:"mode"`
	Text        string    `firestore:"text" json:"text"`
	GeneratedAt time.Time `firestore:"generatedAt" json:"generatedAt"`
}
