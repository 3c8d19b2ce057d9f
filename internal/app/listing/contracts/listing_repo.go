package contracts

import (
	domain "github.com/vintaro/marketplace-service/internal/app/listing/domain"
	"github.com/vintaro/marketplace-service/internal/pkg/writeplan"
)

// ListingRepo is the write-side repository interface for listings.
// Methods return buffered write ops; they never apply them.
type ListingRepo interface {
	// CreateOp returns an op that creates the listing document (or nil).
	CreateOp(l *domain.Listing) *writeplan.Op

	// UpdateOp returns an op that updates the listing according to its
	// ChangeTracker (or nil when nothing changed).
	UpdateOp(l *domain.Listing) *writeplan.Op

	// ViewIncrementOp returns an op that bumps the view counter.
	ViewIncrementOp(listingID string) *writeplan.Op
}
