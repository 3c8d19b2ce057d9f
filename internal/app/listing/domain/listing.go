package domain

import (
	"strings"
	"time"
)

// Field constants for change tracking
const (
	FieldTitle       = "title"
	FieldCategory    = "category"
	FieldSubcategory = "subcategory"
	FieldCondition   = "condition"
	FieldSize        = "size"
	FieldPrice       = "price"
	FieldYear        = "year"
	FieldFeatured    = "featured"
	FieldUntimed     = "untimed"
	FieldMultibuy    = "multibuy"
	FieldStatus      = "status"
	FieldReleaseAt   = "release_at"
)

// Status represents the lifecycle state of a listing.
type Status string

const (
	// StatusDraft indicates a listing the seller is still preparing.
	StatusDraft Status = "draft"

	// StatusPendingApproval indicates a submitted listing awaiting moderation.
	StatusPendingApproval Status = "pending_approval"

	// StatusAvailable indicates a listing that buyers can see and purchase.
	StatusAvailable Status = "available"

	// StatusOnHold indicates a listing temporarily pulled by moderation.
	StatusOnHold Status = "on_hold"

	// StatusSold indicates a listing purchased through checkout.
	StatusSold Status = "sold"
)

// NonDraftStatuses is the default status set admins browse when they supply
// no explicit status filter.
var NonDraftStatuses = []Status{StatusAvailable, StatusSold, StatusPendingApproval, StatusOnHold}

// Listing is the aggregate root for the marketplace listing domain.
// It owns the search-field invariants: titleLowercase is always the folded
// title and keywords is always the token set of the title.
type Listing struct {
	id             string
	title          string
	titleLowercase string
	keywords       []string
	category       string
	subcategory    string
	condition      string
	size           string
	price          *Money
	year           int64
	sellerID       string
	sellerVerified bool
	featured       bool
	untimed        bool
	multibuy       bool
	status         Status
	releaseAt      *time.Time
	createdAt      time.Time
	updatedAt      time.Time
	views          int64
	changes        *ChangeTracker
	events         []DomainEvent
}

// NewListingInput carries the seller-supplied fields for a new listing.
type NewListingInput struct {
	Title          string
	Category       string
	Subcategory    string
	Condition      string
	Size           string
	Price          *Money
	Year           int64
	SellerID       string
	SellerVerified bool
	Untimed        bool
	Multibuy       bool
	ReleaseAt      *time.Time
}

// NewListing creates a new Listing in Draft status and derives the search
// fields from the title.
func NewListing(id string, in NewListingInput, now time.Time) (*Listing, error) {
	if err := validateTitle(in.Title); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Category) == "" {
		return nil, ErrEmptyCategory
	}
	if strings.TrimSpace(in.SellerID) == "" {
		return nil, ErrEmptySeller
	}
	if err := validatePrice(in.Price); err != nil {
		return nil, err
	}
	if err := validateYear(in.Year); err != nil {
		return nil, err
	}
	if in.ReleaseAt != nil && !in.ReleaseAt.After(now) {
		return nil, ErrReleaseInPast
	}

	title := strings.TrimSpace(in.Title)
	l := &Listing{
		id:             id,
		title:          title,
		titleLowercase: FoldTitle(title),
		keywords:       SearchTokens(title),
		category:       strings.TrimSpace(in.Category),
		subcategory:    strings.TrimSpace(in.Subcategory),
		condition:      strings.TrimSpace(in.Condition),
		size:           strings.TrimSpace(in.Size),
		price:          in.Price,
		year:           in.Year,
		sellerID:       in.SellerID,
		sellerVerified: in.SellerVerified,
		untimed:        in.Untimed,
		multibuy:       in.Multibuy,
		status:         StatusDraft,
		releaseAt:      in.ReleaseAt,
		createdAt:      now,
		updatedAt:      now,
		changes:        NewChangeTracker(),
		events:         make([]DomainEvent, 0),
	}

	l.events = append(l.events, &ListingCreatedEvent{
		ListingID: l.id,
		Title:     l.title,
		Category:  l.category,
		SellerID:  l.sellerID,
		Price:     l.price,
		CreatedAt: now,
	})

	return l, nil
}

// ListingState carries persisted fields for reconstruction.
type ListingState struct {
	ID             string
	Title          string
	Category       string
	Subcategory    string
	Condition      string
	Size           string
	Price          *Money
	Year           int64
	SellerID       string
	SellerVerified bool
	Featured       bool
	Untimed        bool
	Multibuy       bool
	Status         Status
	ReleaseAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Views          int64
}

// ReconstructListing rebuilds a Listing from persisted state.
// Used by repositories and usecases when loading from the database.
func ReconstructListing(s ListingState) *Listing {
	return &Listing{
		id:             s.ID,
		title:          s.Title,
		titleLowercase: FoldTitle(s.Title),
		keywords:       SearchTokens(s.Title),
		category:       s.Category,
		subcategory:    s.Subcategory,
		condition:      s.Condition,
		size:           s.Size,
		price:          s.Price,
		year:           s.Year,
		sellerID:       s.SellerID,
		sellerVerified: s.SellerVerified,
		featured:       s.Featured,
		untimed:        s.Untimed,
		multibuy:       s.Multibuy,
		status:         s.Status,
		releaseAt:      s.ReleaseAt,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
		views:          s.Views,
		changes:        NewChangeTracker(),
		events:         make([]DomainEvent, 0),
	}
}

// Getters

func (l *Listing) ID() string             { return l.id }
func (l *Listing) Title() string          { return l.title }
func (l *Listing) TitleLowercase() string { return l.titleLowercase }
func (l *Listing) Keywords() []string     { return l.keywords }
func (l *Listing) Category() string       { return l.category }
func (l *Listing) Subcategory() string    { return l.subcategory }
func (l *Listing) Condition() string      { return l.condition }
func (l *Listing) Size() string           { return l.size }
func (l *Listing) Price() *Money          { return l.price }
func (l *Listing) Year() int64            { return l.year }
func (l *Listing) SellerID() string       { return l.sellerID }
func (l *Listing) SellerVerified() bool   { return l.sellerVerified }
func (l *Listing) Featured() bool         { return l.featured }
func (l *Listing) Untimed() bool          { return l.untimed }
func (l *Listing) Multibuy() bool         { return l.multibuy }
func (l *Listing) Status() Status         { return l.status }
func (l *Listing) ReleaseAt() *time.Time  { return l.releaseAt }
func (l *Listing) CreatedAt() time.Time   { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time   { return l.updatedAt }
func (l *Listing) Views() int64           { return l.views }
func (l *Listing) IsDraft() bool          { return l.status == StatusDraft }

func (l *Listing) Changes() *ChangeTracker     { return l.changes }
func (l *Listing) DomainEvents() []DomainEvent { return l.events }

// Business methods

// UpdateDetails applies partial updates to the descriptive fields.
// A title change recomputes titleLowercase and keywords so the stored search
// fields never drift from the title.
func (l *Listing) UpdateDetails(title, subcategory, condition, size string, now time.Time) error {
	if l.status == StatusSold {
		return ErrListingSold
	}

	changes := make(map[string]interface{})

	if title != "" {
		if err := validateTitle(title); err != nil {
			return err
		}
		trimmed := strings.TrimSpace(title)
		if trimmed != l.title {
			l.title = trimmed
			l.titleLowercase = FoldTitle(trimmed)
			l.keywords = SearchTokens(trimmed)
			l.changes.MarkDirty(FieldTitle)
			changes["title"] = l.title
		}
	}
	if subcategory != "" {
		trimmed := strings.TrimSpace(subcategory)
		if trimmed != l.subcategory {
			l.subcategory = trimmed
			l.changes.MarkDirty(FieldSubcategory)
			changes["subcategory"] = l.subcategory
		}
	}
	if condition != "" {
		trimmed := strings.TrimSpace(condition)
		if trimmed != l.condition {
			l.condition = trimmed
			l.changes.MarkDirty(FieldCondition)
			changes["condition"] = l.condition
		}
	}
	if size != "" {
		trimmed := strings.TrimSpace(size)
		if trimmed != l.size {
			l.size = trimmed
			l.changes.MarkDirty(FieldSize)
			changes["size"] = l.size
		}
	}

	if len(changes) > 0 {
		l.updatedAt = now
		l.events = append(l.events, &ListingUpdatedEvent{
			ListingID: l.id,
			UpdatedAt: now,
			Changes:   changes,
		})
	}

	return nil
}

// UpdatePrice changes the asking price.
func (l *Listing) UpdatePrice(newPrice *Money, now time.Time) error {
	if l.status == StatusSold {
		return ErrListingSold
	}
	if err := validatePrice(newPrice); err != nil {
		return err
	}

	if !newPrice.Equals(l.price) {
		old := l.price
		l.price = newPrice
		l.changes.MarkDirty(FieldPrice)
		l.updatedAt = now

		l.events = append(l.events, &ListingPriceChangedEvent{
			ListingID: l.id,
			OldPrice:  old,
			NewPrice:  newPrice,
			ChangedAt: now,
		})
	}

	return nil
}

// SetFeatured toggles the featured flag. Moderation only.
func (l *Listing) SetFeatured(featured bool, now time.Time) {
	if l.featured == featured {
		return
	}
	l.featured = featured
	l.changes.MarkDirty(FieldFeatured)
	l.updatedAt = now
}

// ScheduleRelease sets or clears the public release time. A scheduled
// listing stays invisible to callers below the business tier until the
// instant passes.
func (l *Listing) ScheduleRelease(at *time.Time, now time.Time) error {
	if l.status == StatusSold {
		return ErrListingSold
	}
	if at != nil && !at.After(now) {
		return ErrReleaseInPast
	}
	l.releaseAt = at
	l.changes.MarkDirty(FieldReleaseAt)
	l.updatedAt = now
	return nil
}

// Submit moves a draft into the moderation queue.
func (l *Listing) Submit(now time.Time) error {
	if l.status != StatusDraft {
		return ErrListingNotDraft
	}
	l.transition(StatusPendingApproval, now)
	return nil
}

// Approve makes a pending listing publicly available.
func (l *Listing) Approve(now time.Time) error {
	if l.status != StatusPendingApproval {
		return ErrListingNotPending
	}
	l.transition(StatusAvailable, now)
	return nil
}

// Hold pulls an available listing from the marketplace.
func (l *Listing) Hold(now time.Time) error {
	if l.status != StatusAvailable {
		return ErrListingNotAvailable
	}
	l.transition(StatusOnHold, now)
	return nil
}

// ReleaseHold returns a held listing to the marketplace.
func (l *Listing) ReleaseHold(now time.Time) error {
	if l.status != StatusOnHold {
		return ErrListingOnHold
	}
	l.transition(StatusAvailable, now)
	return nil
}

// MarkSold records a successful checkout.
func (l *Listing) MarkSold(buyerID, orderID string, now time.Time) error {
	if l.status != StatusAvailable {
		return ErrListingNotAvailable
	}
	l.transition(StatusSold, now)
	l.events = append(l.events, &ListingSoldEvent{
		ListingID: l.id,
		BuyerID:   buyerID,
		OrderID:   orderID,
		SoldAt:    now,
	})
	return nil
}

func (l *Listing) transition(to Status, now time.Time) {
	from := l.status
	l.status = to
	l.changes.MarkDirty(FieldStatus)
	l.updatedAt = now

	l.events = append(l.events, &ListingStatusChangedEvent{
		ListingID: l.id,
		From:      from,
		To:        to,
		ChangedAt: now,
	})
}

// ClearEvents clears the accumulated domain events.
// Should be called after events have been published.
func (l *Listing) ClearEvents() {
	l.events = make([]DomainEvent, 0)
}

// Validation helpers

func validateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return ErrEmptyTitle
	}
	if len(trimmed) > 255 {
		return ErrTitleTooLong
	}
	return nil
}

func validatePrice(price *Money) error {
	if price == nil {
		return ErrZeroPrice
	}
	if price.IsNegative() {
		return ErrNegativePrice
	}
	if price.IsZero() {
		return ErrZeroPrice
	}
	return nil
}

func validateYear(year int64) error {
	if year == 0 {
		return nil // year is optional
	}
	if year < 1000 || year > 2200 {
		return ErrInvalidYear
	}
	return nil
}
