package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pennywise-app/pennywise-backend/internal/errs"
	"github.com/pennywise-app/pennywise-backend/internal/feed"
)

// watchQuery attaches a snapshot listener to q and republishes every
// emission as a full decoded record slice. The feed ends cleanly when the
// caller closes it (or ctx is done) and with a DatabaseError otherwise.
func watchQuery[T any](ctx context.Context, q firestore.Query, decode func(*firestore.DocumentSnapshot) (T, error)) *feed.Feed[T] {
	ctx, cancel := context.WithCancel(ctx)
	f, producer := feed.New[T](cancel)

	go func() {
		it := q.Snapshots(ctx)
		defer it.Stop()

		for {
			snap, err := it.Next()
			if err != nil {
				if ctx.Err() != nil || status.Code(err) == codes.Canceled {
					producer.Done()
					return
				}
				producer.Fail(errs.NewDatabaseError("watch", "snapshot listener failed", err))
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				producer.Fail(errs.NewDatabaseError("watch", "failed to read snapshot documents", err))
				return
			}

			records := make([]T, 0, len(docs))
			for _, d := range docs {
				rec, err := decode(d)
				if err != nil {
					producer.Fail(errs.NewDatabaseError("watch", "failed to parse document", err))
					return
				}
				records = append(records, rec)
			}
			producer.Publish(records)
		}
	}()

	return f
}

// getAll runs q once and decodes every document.
func getAll[T any](ctx context.Context, q firestore.Query, decode func(*firestore.DocumentSnapshot) (T, error)) ([]T, error) {
	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to run query", err)
	}
	records := make([]T, 0, len(docs))
	for _, d := range docs {
		rec, err := decode(d)
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse document", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
