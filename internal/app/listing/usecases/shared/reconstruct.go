package shared

import (
	domain "github.com/vintaro/marketplace-service/internal/app/listing/domain"
	"github.com/vintaro/marketplace-service/internal/app/listing/dto"
)

// ListingFromDTO rehydrates the aggregate from a read-model DTO.
func ListingFromDTO(d *dto.ListingDTO) *domain.Listing {
	num, den := d.PriceNum, d.PriceDen
	if den == 0 {
		// Legacy documents persisted only the float price.
		num, den = int64(d.Price*100), 100
	}

	return domain.ReconstructListing(domain.ListingState{
		ID:             d.ListingID,
		Title:          d.Title,
		Category:       d.Category,
		Subcategory:    d.Subcategory,
		Condition:      d.Condition,
		Size:           d.Size,
		Price:          domain.NewMoney(num, den),
		Year:           d.Year,
		SellerID:       d.SellerID,
		SellerVerified: d.SellerVerified,
		Featured:       d.Featured,
		Untimed:        d.Untimed,
		Multibuy:       d.Multibuy,
		Status:         domain.Status(d.Status),
		ReleaseAt:      d.ReleaseAt,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
		Views:          d.Views,
	})
}
