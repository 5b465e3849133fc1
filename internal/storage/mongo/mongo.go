// Package mongo persists each board as a single aggregate document and
// applies every mutation as one conditional update scoped to the
// narrowest sub-path. Serialization of conflicting writes is delegated
// entirely to the store; there are no in-process locks and no retries.
package mongo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	internal_errors "github.com/brainiacs-dev/brainiacs/internal/errors"
)

type Storage struct {
	boards *mongo.Collection
}

func New(ctx context.Context, uri, dbName string) (*Storage, error) {
	slog.Info("connecting to board store", "db", dbName)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, err
	}

	slog.Info("successfully connected to board store")
	return &Storage{boards: client.Database(dbName).Collection("boards")}, nil
}

func (s *Storage) Cleanup(ctx context.Context) error {
	return s.boards.Database().Client().Disconnect(ctx)
}

// storeErr maps driver failures to the transient StoreUnavailable class.
// The caller gets no partial results and performs no retry.
func storeErr(err error) error {
	slog.Error("board store failure", "err", err)
	return internal_errors.StoreUnavailable("Board store unavailable")
}
