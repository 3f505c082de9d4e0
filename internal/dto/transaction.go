package dto

import "github.com/mthorsell/cashlens-backend/internal/models"

// ReplaceTransactionsRequest carries a full normalized feed from the import
// collaborator. The feed replaces whatever was stored before; the engine has
// no incremental update path.
type ReplaceTransactionsRequest struct {
	Transactions []models.Transaction `json:"transactions"`
}

// ReplaceTransactionsResponse reports how many rows were stored.
type ReplaceTransactionsResponse struct {
	Count int `json:"count"`
}
