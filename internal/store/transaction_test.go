package store

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/pennywise-app/pennywise-backend/internal/errs"
	"github.com/pennywise-app/pennywise-backend/internal/models"
)

func emulatorClient(t *testing.T) *firestore.Client {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "test-project")
	if err != nil {
		t.Fatalf("firestore client error: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestTransactionStoreWithEmulator(t *testing.T) {
	ctx := context.Background()
	store := NewTransactionStore(emulatorClient(t))

	base := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
	var ids []string
	for i, txn := range []models.Transaction{
		{UserID: "alice", Type: models.TransactionExpense, Amount: 3, Category: "Food", Account: "cash", CreatedAt: base},
		{UserID: "alice", Type: models.TransactionIncome, Amount: 100, Category: "Salary", Account: "bank", CreatedAt: base.Add(time.Hour)},
		{UserID: "bob", Type: models.TransactionExpense, Amount: 12, Category: "Travel", Account: "cash", CreatedAt: base},
	} {
		id, err := store.Add(ctx, &txn)
		if err != nil {
			t.Fatalf("seed transaction %d error: %v", i, err)
		}
		ids = append(ids, id)
	}

	// Owner filtering and newest-first ordering.
	results, err := store.ListAll(ctx, "alice")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results for alice, got %d", len(results))
	}
	if results[0].Category != "Salary" || results[1].Category != "Food" {
		t.Fatalf("expected newest first, got %s then %s", results[0].Category, results[1].Category)
	}

	recent, err := store.ListRecent(ctx, "alice", 1)
	if err != nil {
		t.Fatalf("list recent error: %v", err)
	}
	if len(recent) != 1 || recent[0].Category != "Salary" {
		t.Fatalf("expected only the newest record, got %+v", recent)
	}

	// A foreign record reads the same as a missing one.
	err = store.Update(ctx, "alice", ids[2], map[string]any{"amount": 99.0})
	var nf *errs.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not found for foreign update, got %v", err)
	}
	err = store.Delete(ctx, "alice", ids[2])
	if !errors.As(err, &nf) {
		t.Fatalf("expected not found for foreign delete, got %v", err)
	}

	// Deleting a missing id is a no-op.
	if err := store.Delete(ctx, "alice", "does-not-exist"); err != nil {
		t.Fatalf("expected idempotent delete, got %v", err)
	}

	// Owned update sticks.
	if err := store.Update(ctx, "alice", ids[0], map[string]any{"note": "lunch out"}); err != nil {
		t.Fatalf("update error: %v", err)
	}
	results, err = store.ListAll(ctx, "alice")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if results[1].Note != "lunch out" {
		t.Fatalf("update not applied: %+v", results[1])
	}
}

func TestTransactionWatchWithEmulator(t *testing.T) {
	ctx := context.Background()
	store := NewTransactionStore(emulatorClient(t))

	f := store.Watch(ctx, "carol")
	defer f.Close()

	// First emission is the current (empty) result set.
	select {
	case snapshot := <-f.Updates():
		if len(snapshot) != 0 {
			t.Fatalf("expected empty initial snapshot, got %d records", len(snapshot))
		}
	case <-time.After(10 * time.Second):
		t.Fatal("no initial snapshot")
	}

	if _, err := store.Add(ctx, &models.Transaction{
		UserID: "carol", Type: models.TransactionExpense, Amount: 7, Category: "Food", Account: "cash",
	}); err != nil {
		t.Fatalf("add error: %v", err)
	}

	deadline := time.After(10 * time.Second)
	for {
		select {
		case snapshot := <-f.Updates():
			if len(snapshot) == 1 && snapshot[0].Amount == 7 {
				return
			}
		case <-deadline:
			t.Fatal("change never surfaced on the feed")
		}
	}
}
