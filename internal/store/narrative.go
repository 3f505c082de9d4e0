package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mthorsell/cashlens-backend/internal/errs"
	"github.com/mthorsell/cashlens-backend/internal/models"
)

type narrativeStore struct {
	client *firestore.Client
}

func NewNarrativeStore(client *firestore.Client) *narrativeStore {
	return &narrativeStore{client: client}
}

func (s *narrativeStore) doc(uid, mode string) *firestore.DocumentRef {
	return s.client.Collection("users").Doc(uid).Collection("narratives").Doc(mode)
}

// Get returns the cached narrative for a mode, or nil when none exists.
func (s *narrativeStore) Get(ctx context.Context, uid, mode string) (*models.Narrative, error) {
	snap, err := s.doc(uid, mode).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, errs.NewDatabaseError("read", "failed to get narrative", err)
	}
	var n models.Narrative
	if err := snap.DataTo(&n); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse narrative data", err)
	}
	return &n, nil
}

func (s *narrativeStore) Save(ctx context.Context, uid string, n models.Narrative) error {
	if n.GeneratedAt.IsZero() {
		n.GeneratedAt = time.Now()
	}
	if _, err := s.doc(uid, n.Mode).Set(ctx, n); err != nil {
		return errs.NewDatabaseError("create", "failed to save narrative", err)
	}
	return nil
}
