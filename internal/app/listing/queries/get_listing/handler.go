package get_listing

import (
	"context"

	contracts "github.com/vintaro/marketplace-service/internal/app/listing/contracts"
	"github.com/vintaro/marketplace-service/internal/app/listing/dto"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

func (h *Handler) Execute(ctx context.Context, listingID string) (*dto.ListingDTO, error) {
	return h.readModel.GetListing(ctx, listingID)
}
