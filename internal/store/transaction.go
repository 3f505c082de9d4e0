package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/mthorsell/cashlens-backend/internal/errs"
	"github.com/mthorsell/cashlens-backend/internal/models"
)

type transactionStore struct {
	client *firestore.Client
}

func NewTransactionStore(client *firestore.Client) *transactionStore {
	return &transactionStore{client: client}
}

func (s *transactionStore) txCollection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("transactions")
}

// ReplaceAll swaps the user's stored feed for the given one. The engine has
// no incremental path, so the whole collection is rewritten: existing docs
// are deleted and the new feed bulk-written in one BulkWriter pass.
func (s *transactionStore) ReplaceAll(ctx context.Context, uid string, txs []models.Transaction) error {
	existing, err := s.txCollection(uid).DocumentRefs(ctx).GetAll()
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to list existing transactions", err)
	}

	bw := s.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(existing)+len(txs))

	for _, ref := range existing {
		job, err := bw.Delete(ref)
		if err != nil {
			bw.End()
			return errs.NewDatabaseError("delete", "failed to delete transaction", err)
		}
		jobs = append(jobs, job)
	}

	now := time.Now()
	for _, t := range txs {
		t.UpdatedAt = now
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		job, err := bw.Set(s.txCollection(uid).Doc(t.TransactionID), t)
		if err != nil {
			bw.End()
			return errs.NewDatabaseError("create", "failed to write transaction", err)
		}
		jobs = append(jobs, job)
	}

	// Flush and close the writer, then wait on each job for errors.
	bw.End()
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return errs.NewDatabaseError("create", "transaction feed write failed", err)
		}
	}
	return nil
}

// ListAll streams the user's full feed ordered by month then date.
func (s *transactionStore) ListAll(ctx context.Context, uid string) ([]models.Transaction, error) {
	iter := s.txCollection(uid).Query.
		OrderBy("month", firestore.Asc).
		OrderBy("date", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var out []models.Transaction
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list transactions", err)
		}
		var tx models.Transaction
		if err := doc.DataTo(&tx); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse transaction data", err)
		}
		out = append(out, tx)
	}
	return out, nil
}
