package repo

import (
	contracts "github.com/vintaro/marketplace-service/internal/app/listing/contracts"
	"github.com/vintaro/marketplace-service/internal/models/m_outbox"
	"github.com/vintaro/marketplace-service/internal/pkg/writeplan"
)

// OutboxRepo builds outbox document ops for the notification pipeline.
type OutboxRepo struct{}

func NewOutboxRepo() *OutboxRepo {
	return &OutboxRepo{}
}

func (r *OutboxRepo) InsertOp(e *contracts.OutboxEvent) *writeplan.Op {
	if e == nil {
		return nil
	}
	return &writeplan.Op{
		Kind:       writeplan.OpCreate,
		Collection: m_outbox.Collection,
		DocID:      e.EventID,
		Data: m_outbox.BuildInsertMap(
			e.EventID, e.EventType, e.AggregateID, e.PayloadJSON, e.Status, e.CreatedAtUTC,
		),
	}
}
