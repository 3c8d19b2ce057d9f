package contracts

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/vintaro/marketplace-service/internal/pkg/writeplan"
)

// Committer applies a collection of buffered writes atomically. Usecases
// stay independent of the storage driver; in production this is the
// writeplan Firestore adapter.
type Committer interface {
	// Apply atomically applies the provided write plan.
	Apply(ctx context.Context, plan *writeplan.Plan) error
}

// TxRunner extends Committer for usecases that must read and write inside
// the same transaction (checkout reads the listing before marking it sold).
type TxRunner interface {
	Committer

	// RunWith executes fn in a read-write transaction; the returned plan is
	// buffered into the same transaction.
	RunWith(ctx context.Context, fn func(ctx context.Context, tx *firestore.Transaction) (*writeplan.Plan, error)) error
}
