package get_listing

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/vintaro/marketplace-service/internal/app/listing/domain"
	"github.com/vintaro/marketplace-service/internal/app/listing/dto"
	"github.com/vintaro/marketplace-service/internal/models/m_listing"
)

// FirestoreGetListingQuery reads a single listing document.
type FirestoreGetListingQuery struct {
	Client *firestore.Client
}

func NewFirestoreGetListingQuery(client *firestore.Client) *FirestoreGetListingQuery {
	return &FirestoreGetListingQuery{Client: client}
}

func (q *FirestoreGetListingQuery) GetListing(ctx context.Context, listingID string) (*dto.ListingDTO, error) {
	doc, err := q.Client.Collection(m_listing.Collection).Doc(listingID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}

	rec := m_listing.FromDoc(doc)
	out := &dto.ListingDTO{
		ListingID:      rec.ID,
		Title:          rec.Title,
		TitleLowercase: rec.TitleLowercase,
		Keywords:       rec.Keywords,
		Category:       rec.Category,
		Subcategory:    rec.Subcategory,
		Condition:      rec.Condition,
		Size:           rec.Size,
		Price:          rec.Price,
		PriceNum:       rec.PriceNum,
		PriceDen:       rec.PriceDen,
		Year:           rec.Year,
		SellerID:       rec.SellerID,
		SellerVerified: rec.SellerVerified,
		Featured:       rec.Featured,
		Untimed:        rec.Untimed,
		Multibuy:       rec.Multibuy,
		Status:         rec.Status,
		ReleaseAt:      rec.ReleaseAt,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
		Views:          rec.Views,
	}
	return out, nil
}
