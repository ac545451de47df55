package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pennywise-app/pennywise-backend/internal/errs"
)

// ownedCollection is the shared write path for the flat record
// collections. Every document carries a userId field; updates and deletes
// verify it before touching the document, which makes the authorization
// boundary explicit instead of delegating it to store access rules. A
// record owned by someone else reads the same as a missing record.
type ownedCollection struct {
	collection *firestore.CollectionRef
	kind       string // for error messages: "transaction", "goal", ...
}

// update merges fields into the record after the ownership check.
func (c *ownedCollection) update(ctx context.Context, uid, id string, fields map[string]any) error {
	if err := c.checkOwner(ctx, uid, id); err != nil {
		return err
	}
	if _, err := c.collection.Doc(id).Set(ctx, fields, firestore.MergeAll); err != nil {
		return errs.NewDatabaseError("update", "failed to update "+c.kind, err)
	}
	return nil
}

// delete removes the record. A missing id is an idempotent no-op; a
// foreign record is not found.
func (c *ownedCollection) delete(ctx context.Context, uid, id string) error {
	doc, err := c.collection.Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		return errs.NewDatabaseError("read", "failed to load "+c.kind, err)
	}
	if owner, _ := doc.Data()["userId"].(string); owner != uid {
		return errs.NewNotFoundError(c.kind + " not found")
	}
	if _, err := c.collection.Doc(id).Delete(ctx); err != nil {
		return errs.NewDatabaseError("delete", "failed to delete "+c.kind, err)
	}
	return nil
}

func (c *ownedCollection) checkOwner(ctx context.Context, uid, id string) error {
	doc, err := c.collection.Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errs.NewNotFoundError(c.kind + " not found")
		}
		return errs.NewDatabaseError("read", "failed to load "+c.kind, err)
	}
	if owner, _ := doc.Data()["userId"].(string); owner != uid {
		return errs.NewNotFoundError(c.kind + " not found")
	}
	return nil
}
