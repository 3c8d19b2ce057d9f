package contracts

import (
	"time"

	"github.com/vintaro/marketplace-service/internal/pkg/writeplan"
)

// OutboxRepo is the write-side repository interface for the transactional
// outbox. It returns buffered ops; it does not apply them.
type OutboxRepo interface {
	InsertOp(e *OutboxEvent) *writeplan.Op
}

// OutboxEvent is the application-level representation of an event persisted
// to the outbox collection. Usecases enrich domain events into this shape.
type OutboxEvent struct {
	EventID      string
	EventType    string
	AggregateID  string
	PayloadJSON  string
	Status       string
	CreatedAtUTC time.Time
}
