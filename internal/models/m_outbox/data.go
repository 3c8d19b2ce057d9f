package m_outbox

import "time"

// BuildInsertMap constructs the field map for an outbox document.
func BuildInsertMap(eventID, eventType, aggregateID, payload, status string, createdAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		FldEventID:     eventID,
		FldEventType:   eventType,
		FldAggregateID: aggregateID,
		FldPayload:     payload,
		FldStatus:      status,
		FldCreatedAt:   createdAt.UTC(),
		FldProcessedAt: nil,
	}
}
