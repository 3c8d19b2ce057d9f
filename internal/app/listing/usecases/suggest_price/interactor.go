package suggest_price

import (
	"context"

	contracts "github.com/vintaro/marketplace-service/internal/app/listing/contracts"
	"github.com/vintaro/marketplace-service/internal/app/listing/domain"
	"github.com/vintaro/marketplace-service/internal/pkg/aipricing"
)

// Pricer is the slice of the AI client this usecase needs.
type Pricer interface {
	SuggestPrice(ctx context.Context, title, category, condition string, year int64, recentViews int64) (*aipricing.Suggestion, error)
}

// Request asks for a price band and condition grade for an existing listing.
type Request struct {
	ListingID  string
	CallerID   string
	CallerRole domain.Role
}

// Interactor feeds listing context to the pricing model. Suggestions are
// advisory; nothing is written.
type Interactor struct {
	ReadModel contracts.ReadModel
	Pricer    Pricer
}

func NewInteractor(readModel contracts.ReadModel, pricer Pricer) *Interactor {
	return &Interactor{ReadModel: readModel, Pricer: pricer}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (*aipricing.Suggestion, error) {
	l, err := it.ReadModel.GetListing(ctx, req.ListingID)
	if err != nil {
		return nil, err
	}

	// Only the owner or staff may price-check an unsold listing.
	if !req.CallerRole.AtLeast(domain.RoleAdmin) && l.SellerID != req.CallerID {
		return nil, domain.ErrNotListingOwner
	}

	return it.Pricer.SuggestPrice(ctx, l.Title, l.Category, l.Condition, l.Year, l.Views)
}
