package search_listings

import (
	"context"

	contracts "github.com/vintaro/marketplace-service/internal/app/listing/contracts"
	domain "github.com/vintaro/marketplace-service/internal/app/listing/domain"
	"github.com/vintaro/marketplace-service/internal/app/listing/dto"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

func (h *Handler) Execute(ctx context.Context, params dto.SearchParams, role domain.Role) (*dto.SearchResult, error) {
	return h.readModel.Search(ctx, params, role)
}
