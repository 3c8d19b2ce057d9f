package m_outbox

// Field constants for the outbox collection. This service only appends
// documents; the external notification pipeline drains them.
const (
	Collection = "outbox"

	FldEventID     = "eventId"
	FldEventType   = "eventType"
	FldAggregateID = "aggregateId"
	FldPayload     = "payload"
	FldStatus      = "status"
	FldCreatedAt   = "createdAt"
	FldProcessedAt = "processedAt"
)
