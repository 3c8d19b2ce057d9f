package domain

import "time"

// DomainEvent is a marker interface for all domain events.
// Events feed the outbox collection, from which the external notification
// pipeline delivers emails and push messages.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// ListingCreatedEvent is raised when a new listing is created.
type ListingCreatedEvent struct {
	ListingID string
	Title     string
	Category  string
	SellerID  string
	Price     *Money
	CreatedAt time.Time
}

func (e *ListingCreatedEvent) EventType() string     { return "listing.created" }
func (e *ListingCreatedEvent) AggregateID() string   { return e.ListingID }
func (e *ListingCreatedEvent) OccurredAt() time.Time { return e.CreatedAt }

// ListingUpdatedEvent is raised when listing details change.
type ListingUpdatedEvent struct {
	ListingID string
	UpdatedAt time.Time
	Changes   map[string]interface{}
}

func (e *ListingUpdatedEvent) EventType() string     { return "listing.updated" }
func (e *ListingUpdatedEvent) AggregateID() string   { return e.ListingID }
func (e *ListingUpdatedEvent) OccurredAt() time.Time { return e.UpdatedAt }

// ListingStatusChangedEvent is raised on any lifecycle transition.
type ListingStatusChangedEvent struct {
	ListingID string
	From      Status
	To        Status
	ChangedAt time.Time
}

func (e *ListingStatusChangedEvent) EventType() string     { return "listing.status_changed" }
func (e *ListingStatusChangedEvent) AggregateID() string   { return e.ListingID }
func (e *ListingStatusChangedEvent) OccurredAt() time.Time { return e.ChangedAt }

// ListingPriceChangedEvent is raised when the asking price changes.
type ListingPriceChangedEvent struct {
	ListingID string
	OldPrice  *Money
	NewPrice  *Money
	ChangedAt time.Time
}

func (e *ListingPriceChangedEvent) EventType() string     { return "listing.price_changed" }
func (e *ListingPriceChangedEvent) AggregateID() string   { return e.ListingID }
func (e *ListingPriceChangedEvent) OccurredAt() time.Time { return e.ChangedAt }

// ListingSoldEvent is raised when a listing is sold through checkout.
type ListingSoldEvent struct {
	ListingID string
	BuyerID   string
	OrderID   string
	SoldAt    time.Time
}

func (e *ListingSoldEvent) EventType() string     { return "listing.sold" }
func (e *ListingSoldEvent) AggregateID() string   { return e.ListingID }
func (e *ListingSoldEvent) OccurredAt() time.Time { return e.SoldAt }
