package contracts

import (
	"context"

	domain "github.com/vintaro/marketplace-service/internal/app/listing/domain"
	"github.com/vintaro/marketplace-service/internal/app/listing/dto"
)

// ReadModel is the query-side contract for listings.
type ReadModel interface {
	GetListing(ctx context.Context, listingID string) (*dto.ListingDTO, error)

	// Search executes the role-gated listing search. It degrades to an empty
	// page rather than failing; see the search_listings query for the policy.
	Search(ctx context.Context, params dto.SearchParams, role domain.Role) (*dto.SearchResult, error)
}
