package suggest_price

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vintaro/marketplace-service/internal/app/listing/domain"
	"github.com/vintaro/marketplace-service/internal/app/listing/dto"
	"github.com/vintaro/marketplace-service/internal/pkg/aipricing"
)

type fakeReadModel struct {
	listing *dto.ListingDTO
}

func (f *fakeReadModel) GetListing(_ context.Context, id string) (*dto.ListingDTO, error) {
	if f.listing == nil || f.listing.ListingID != id {
		return nil, domain.ErrListingNotFound
	}
	return f.listing, nil
}

func (f *fakeReadModel) Search(_ context.Context, _ dto.SearchParams, _ domain.Role) (*dto.SearchResult, error) {
	return &dto.SearchResult{}, nil
}

type fakePricer struct {
	gotTitle string
	out      *aipricing.Suggestion
}

func (f *fakePricer) SuggestPrice(_ context.Context, title, _, _ string, _ int64, _ int64) (*aipricing.Suggestion, error) {
	f.gotTitle = title
	return f.out, nil
}

func TestSuggestPrice_OwnerGetsSuggestion(t *testing.T) {
	pricer := &fakePricer{out: &aipricing.Suggestion{SuggestedPrice: 180, Grade: "excellent"}}
	it := NewInteractor(&fakeReadModel{listing: &dto.ListingDTO{
		ListingID: "lst-1",
		Title:     "Air Jordan 1",
		SellerID:  "seller-1",
	}}, pricer)

	s, err := it.Execute(context.Background(), Request{
		ListingID:  "lst-1",
		CallerID:   "seller-1",
		CallerRole: domain.RoleSeller,
	})
	require.NoError(t, err)
	assert.Equal(t, 180.0, s.SuggestedPrice)
	assert.Equal(t, "Air Jordan 1", pricer.gotTitle)
}

func TestSuggestPrice_StrangerRejected(t *testing.T) {
	it := NewInteractor(&fakeReadModel{listing: &dto.ListingDTO{
		ListingID: "lst-1",
		SellerID:  "seller-1",
	}}, &fakePricer{out: &aipricing.Suggestion{}})

	_, err := it.Execute(context.Background(), Request{
		ListingID:  "lst-1",
		CallerID:   "rival-seller",
		CallerRole: domain.RoleSeller,
	})
	assert.ErrorIs(t, err, domain.ErrNotListingOwner)
}

func TestSuggestPrice_AdminAllowed(t *testing.T) {
	it := NewInteractor(&fakeReadModel{listing: &dto.ListingDTO{
		ListingID: "lst-1",
		SellerID:  "seller-1",
	}}, &fakePricer{out: &aipricing.Suggestion{}})

	_, err := it.Execute(context.Background(), Request{
		ListingID:  "lst-1",
		CallerID:   "admin-1",
		CallerRole: domain.RoleAdmin,
	})
	assert.NoError(t, err)
}
