package shared

import (
	"time"

	"github.com/google/uuid"

	contracts "github.com/vintaro/marketplace-service/internal/app/listing/contracts"
	"github.com/vintaro/marketplace-service/internal/app/listing/domain"
	"github.com/vintaro/marketplace-service/internal/pkg/writeplan"
)

// AppendEvents enriches the aggregate's domain events into outbox documents
// and adds them to the plan, so listing mutation and events commit together.
func AppendEvents(plan *writeplan.Plan, outbox contracts.OutboxRepo, events []domain.DomainEvent, now time.Time) error {
	for _, ev := range events {
		payload, err := MarshalDomainEventPayload(ev)
		if err != nil {
			return err
		}
		plan.Add(outbox.InsertOp(&contracts.OutboxEvent{
			EventID:      uuid.New().String(),
			EventType:    ev.EventType(),
			AggregateID:  ev.AggregateID(),
			PayloadJSON:  payload,
			Status:       "pending",
			CreatedAtUTC: now,
		}))
	}
	return nil
}
