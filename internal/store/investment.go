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

type investmentStore struct {
	client *firestore.Client
	owned  ownedCollection
}

func NewInvestmentStore(client *firestore.Client) *investmentStore {
	return &investmentStore{
		client: client,
		owned: ownedCollection{
			collection: client.Collection("investments"),
			kind:       "investment",
		},
	}
}

func (s *investmentStore) ownerQuery(uid string) firestore.Query {
	return s.owned.collection.Where("userId", "==", uid).OrderBy("createdAt", firestore.Desc)
}

func decodeInvestment(d *firestore.DocumentSnapshot) (models.Investment, error) {
	var inv models.Investment
	if err := d.DataTo(&inv); err != nil {
		return models.Investment{}, err
	}
	inv.ID = d.Ref.ID
	return inv, nil
}

// Add persists the investment under a fresh ID. CreatedAt is
// server-assigned and not user-editable.
func (s *investmentStore) Add(ctx context.Context, inv *models.Investment) (string, error) {
	inv.CreatedAt = time.Now()
	doc := s.owned.collection.Doc(uuid.NewString())
	if _, err := doc.Create(ctx, inv); err != nil {
		return "", errs.NewDatabaseError("create", "failed to create investment", err)
	}
	inv.ID = doc.ID
	return doc.ID, nil
}

func (s *investmentStore) ListAll(ctx context.Context, uid string) ([]models.Investment, error) {
	return getAll(ctx, s.ownerQuery(uid), decodeInvestment)
}

func (s *investmentStore) Watch(ctx context.Context, uid string) *feed.Feed[models.Investment] {
	return watchQuery(ctx, s.ownerQuery(uid), decodeInvestment)
}

func (s *investmentStore) Update(ctx context.Context, uid, id string, fields map[string]any) error {
	return s.owned.update(ctx, uid, id, fields)
}

func (s *investmentStore) Delete(ctx context.Context, uid, id string) error {
	return s.owned.delete(ctx, uid, id)
}
