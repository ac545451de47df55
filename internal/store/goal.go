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

type goalStore struct {
	client *firestore.Client
	owned  ownedCollection
}

func NewGoalStore(client *firestore.Client) *goalStore {
	return &goalStore{
		client: client,
		owned: ownedCollection{
			collection: client.Collection("goals"),
			kind:       "goal",
		},
	}
}

func (s *goalStore) ownerQuery(uid string) firestore.Query {
	return s.owned.collection.Where("userId", "==", uid).OrderBy("createdAt", firestore.Desc)
}

func decodeGoal(d *firestore.DocumentSnapshot) (models.Goal, error) {
	var g models.Goal
	if err := d.DataTo(&g); err != nil {
		return models.Goal{}, err
	}
	g.ID = d.Ref.ID
	return g, nil
}

// Add persists the goal under a fresh ID. CreatedAt is server-assigned
// and not user-editable.
func (s *goalStore) Add(ctx context.Context, g *models.Goal) (string, error) {
	g.CreatedAt = time.Now()
	doc := s.owned.collection.Doc(uuid.NewString())
	if _, err := doc.Create(ctx, g); err != nil {
		return "", errs.NewDatabaseError("create", "failed to create goal", err)
	}
	g.ID = doc.ID
	return doc.ID, nil
}

func (s *goalStore) ListAll(ctx context.Context, uid string) ([]models.Goal, error) {
	return getAll(ctx, s.ownerQuery(uid), decodeGoal)
}

func (s *goalStore) Watch(ctx context.Context, uid string) *feed.Feed[models.Goal] {
	return watchQuery(ctx, s.ownerQuery(uid), decodeGoal)
}

func (s *goalStore) Update(ctx context.Context, uid, id string, fields map[string]any) error {
	return s.owned.update(ctx, uid, id, fields)
}

func (s *goalStore) Delete(ctx context.Context, uid, id string) error {
	return s.owned.delete(ctx, uid, id)
}
