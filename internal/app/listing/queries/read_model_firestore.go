package queries

import (
	"context"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"

	domain "github.com/vintaro/marketplace-service/internal/app/listing/domain"
	"github.com/vintaro/marketplace-service/internal/app/listing/dto"
	"github.com/vintaro/marketplace-service/internal/app/listing/queries/get_listing"
	"github.com/vintaro/marketplace-service/internal/app/listing/queries/search_listings"
)

// FirestoreReadModel is an infrastructure adapter that satisfies
// contracts.ReadModel. It composes the individual query implementations.
type FirestoreReadModel struct {
	getQ    *get_listing.FirestoreGetListingQuery
	searchQ *search_listings.FirestoreSearchQuery
}

func NewFirestoreReadModel(client *firestore.Client, log *zap.Logger) *FirestoreReadModel {
	return &FirestoreReadModel{
		getQ:    get_listing.NewFirestoreGetListingQuery(client),
		searchQ: search_listings.NewFirestoreSearchQuery(client, log),
	}
}

func (rm *FirestoreReadModel) GetListing(ctx context.Context, listingID string) (*dto.ListingDTO, error) {
	return rm.getQ.GetListing(ctx, listingID)
}

func (rm *FirestoreReadModel) Search(ctx context.Context, params dto.SearchParams, role domain.Role) (*dto.SearchResult, error) {
	return rm.searchQ.Search(ctx, params, role)
}
