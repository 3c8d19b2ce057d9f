package writeplan

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
)

// Adapter applies write plans against Firestore. It also satisfies the
// transaction-runner contract used by usecases that need reads and writes in
// the same transaction (checkout).
type Adapter struct {
	client *firestore.Client
}

func NewAdapter(client *firestore.Client) *Adapter {
	return &Adapter{client: client}
}

// Apply commits all ops of the plan in a single read-write transaction.
func (a *Adapter) Apply(ctx context.Context, plan *Plan) error {
	if plan == nil || plan.IsEmpty() {
		return nil
	}
	if a.client == nil {
		return fmt.Errorf("writeplan: firestore client is nil")
	}

	return a.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		return applyOps(tx, a.client, plan.Ops())
	})
}

// RunWith executes fn inside a transaction; fn may stage reads and then hand
// back a plan to be buffered into the same transaction.
func (a *Adapter) RunWith(ctx context.Context, fn func(ctx context.Context, tx *firestore.Transaction) (*Plan, error)) error {
	if a.client == nil {
		return fmt.Errorf("writeplan: firestore client is nil")
	}

	return a.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		plan, err := fn(ctx, tx)
		if err != nil {
			return err
		}
		if plan == nil || plan.IsEmpty() {
			return nil
		}
		return applyOps(tx, a.client, plan.Ops())
	})
}

func applyOps(tx *firestore.Transaction, client *firestore.Client, ops []*Op) error {
	for _, op := range ops {
		ref := client.Collection(op.Collection).Doc(op.DocID)
		var err error
		switch op.Kind {
		case OpCreate:
			err = tx.Create(ref, op.Data)
		case OpSet:
			if op.Merge {
				err = tx.Set(ref, op.Data, firestore.MergeAll)
			} else {
				err = tx.Set(ref, op.Data)
			}
		case OpUpdate:
			err = tx.Update(ref, op.Updates)
		case OpDelete:
			err = tx.Delete(ref)
		default:
			err = fmt.Errorf("writeplan: unknown op kind %d", op.Kind)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
