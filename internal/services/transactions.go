package services

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/mthorsell/cashlens-backend/internal/models"
	"github.com/mthorsell/cashlens-backend/pkg/logger"
)

type transactionFeedStore interface {
	ReplaceAll(ctx context.Context, uid string, txs []models.Transaction) error
	ListAll(ctx context.Context, uid string) ([]models.Transaction, error)
}

type transactionService struct {
	store transactionFeedStore
}

func NewTransactionService(store transactionFeedStore) *transactionService {
	return &transactionService{store: store}
}

// Replace stores a full normalized feed, defensively re-normalizing each row:
// the type/sign invariant is re-derived from RawAmount, the month key falls
// back to the date prefix, blank categories default, and missing IDs get one.
func (s *transactionService) Replace(ctx context.Context, uid string, txs []models.Transaction) (int, error) {
	normalized := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		normalized = append(normalized, normalizeTransaction(tx))
	}
	if err := s.store.ReplaceAll(ctx, uid, normalized); err != nil {
		return 0, err
	}
	logger.FromContext(ctx).Info("transaction feed replaced", "count", len(normalized))
	return len(normalized), nil
}

func normalizeTransaction(tx models.Transaction) models.Transaction {
	if tx.TransactionID == "" {
		tx.TransactionID = uuid.New().String()
	}
	if tx.RawAmount >= 0 {
		tx.Type = models.TransactionTypeIncome
	} else {
		tx.Type = models.TransactionTypeExpense
	}
	tx.Amount = math.Abs(tx.RawAmount)
	if tx.Month == "" && len(tx.Date) >= 7 {
		tx.Month = tx.Date[:7]
	}
	if strings.TrimSpace(tx.Category) == "" {
		tx.Category = uncategorizedCategory
	}
	tx.Payee = strings.TrimSpace(tx.Payee)
	return tx
}
