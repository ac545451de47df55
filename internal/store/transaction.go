package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/pennywise-app/pennywise-backend/internal/errs"
	"github.com/pennywise-app/pennywise-backend/internal/feed"
	"github.com/pennywise-app/pennywise-backend/internal/models"
)

type transactionStore struct {
	client *firestore.Client
	owned  ownedCollection
}

func NewTransactionStore(client *firestore.Client) *transactionStore {
	return &transactionStore{
		client: client,
		owned: ownedCollection{
			collection: client.Collection("transactions"),
			kind:       "transaction",
		},
	}
}

func (s *transactionStore) ownerQuery(uid string) firestore.Query {
	return s.owned.collection.Where("userId", "==", uid).OrderBy("createdAt", firestore.Desc)
}

func decodeTransaction(d *firestore.DocumentSnapshot) (models.Transaction, error) {
	var t models.Transaction
	if err := d.DataTo(&t); err != nil {
		return models.Transaction{}, err
	}
	t.ID = d.Ref.ID
	return t, nil
}

// Add persists the transaction under a fresh ID. CreatedAt is the caller's
// event time; the zero value falls back to now.
func (s *transactionStore) Add(ctx context.Context, t *models.Transaction) (string, error) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	doc := s.owned.collection.Doc(uuid.NewString())
	if _, err := doc.Create(ctx, t); err != nil {
		return "", errs.NewDatabaseError("create", "failed to create transaction", err)
	}
	t.ID = doc.ID
	return doc.ID, nil
}

func (s *transactionStore) ListAll(ctx context.Context, uid string) ([]models.Transaction, error) {
	return getAll(ctx, s.ownerQuery(uid), decodeTransaction)
}

func (s *transactionStore) ListRecent(ctx context.Context, uid string, limit int) ([]models.Transaction, error) {
	return getAll(ctx, s.ownerQuery(uid).Limit(limit), decodeTransaction)
}

// Watch returns a live feed of the owner's full transaction set, newest
// first, re-emitted on every change.
func (s *transactionStore) Watch(ctx context.Context, uid string) *feed.Feed[models.Transaction] {
	return watchQuery(ctx, s.ownerQuery(uid), decodeTransaction)
}

// WatchRecent is Watch bounded to the most recent limit records.
func (s *transactionStore) WatchRecent(ctx context.Context, uid string, limit int) *feed.Feed[models.Transaction] {
	return watchQuery(ctx, s.ownerQuery(uid).Limit(limit), decodeTransaction)
}

func (s *transactionStore) Update(ctx context.Context, uid, id string, fields map[string]any) error {
	return s.owned.update(ctx, uid, id, fields)
}

func (s *transactionStore) Delete(ctx context.Context, uid, id string) error {
	return s.owned.delete(ctx, uid, id)
}
