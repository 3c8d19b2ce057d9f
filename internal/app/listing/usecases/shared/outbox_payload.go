package shared

import (
	"encoding/json"
	"fmt"

	"github.com/vintaro/marketplace-service/internal/app/listing/domain"
)

// MarshalDomainEventPayload converts a domain event into a JSON payload for
// the outbox. The domain layer avoids serialization concerns; this adapter
// extracts primitives (Money as numerator/denominator) so payloads stay
// useful to the notification pipeline.
func MarshalDomainEventPayload(ev domain.DomainEvent) (string, error) {
	if ev == nil {
		return "{}", nil
	}

	switch e := ev.(type) {
	case *domain.ListingCreatedEvent:
		payload := map[string]interface{}{
			"listing_id": e.ListingID,
			"title":      e.Title,
			"category":   e.Category,
			"seller_id":  e.SellerID,
			"price": map[string]interface{}{
				"numerator":   e.Price.Numerator(),
				"denominator": e.Price.Denominator(),
			},
			"created_at": e.CreatedAt,
		}
		b, err := json.Marshal(payload)
		return string(b), err

	case *domain.ListingUpdatedEvent:
		payload := map[string]interface{}{
			"listing_id": e.ListingID,
			"changes":    e.Changes,
			"updated_at": e.UpdatedAt,
		}
		b, err := json.Marshal(payload)
		return string(b), err

	case *domain.ListingStatusChangedEvent:
		payload := map[string]interface{}{
			"listing_id": e.ListingID,
			"from":       string(e.From),
			"to":         string(e.To),
			"changed_at": e.ChangedAt,
		}
		b, err := json.Marshal(payload)
		return string(b), err

	case *domain.ListingPriceChangedEvent:
		payload := map[string]interface{}{
			"listing_id": e.ListingID,
			"old_price": map[string]interface{}{
				"numerator":   e.OldPrice.Numerator(),
				"denominator": e.OldPrice.Denominator(),
			},
			"new_price": map[string]interface{}{
				"numerator":   e.NewPrice.Numerator(),
				"denominator": e.NewPrice.Denominator(),
			},
			"changed_at": e.ChangedAt,
		}
		b, err := json.Marshal(payload)
		return string(b), err

	case *domain.ListingSoldEvent:
		payload := map[string]interface{}{
			"listing_id": e.ListingID,
			"buyer_id":   e.BuyerID,
			"order_id":   e.OrderID,
			"sold_at":    e.SoldAt,
		}
		b, err := json.Marshal(payload)
		return string(b), err
	}

	// Fallback: marshal the event directly.
	b, err := json.Marshal(ev)
	if err != nil {
		return "", fmt.Errorf("marshal outbox payload for %T: %w", ev, err)
	}
	return string(b), nil
}
