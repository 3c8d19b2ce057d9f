package update_listing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vintaro/marketplace-service/internal/app/listing/domain"
	"github.com/vintaro/marketplace-service/internal/app/listing/dto"
	"github.com/vintaro/marketplace-service/internal/app/listing/repo"
	"github.com/vintaro/marketplace-service/internal/models/m_listing"
	"github.com/vintaro/marketplace-service/internal/pkg/clock"
	"github.com/vintaro/marketplace-service/internal/pkg/writeplan"
)

type fakeCommitter struct {
	applied *writeplan.Plan
}

func (f *fakeCommitter) Apply(_ context.Context, plan *writeplan.Plan) error {
	f.applied = plan
	return nil
}

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

func storedListing() *dto.ListingDTO {
	now := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	return &dto.ListingDTO{
		ListingID:      "lst-1",
		Title:          "Air Jordan 1",
		TitleLowercase: "air jordan 1",
		Keywords:       []string{"air", "jordan", "1"},
		Category:       "sneakers",
		PriceNum:       19999,
		PriceDen:       100,
		SellerID:       "seller-1",
		Status:         "available",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func newTestInteractor(l *dto.ListingDTO) (*Interactor, *fakeCommitter) {
	cm := &fakeCommitter{}
	it := NewInteractor(
		repo.NewListingRepo(), repo.NewOutboxRepo(), cm,
		&fakeReadModel{listing: l},
		clock.NewFake(time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)),
	)
	return it, cm
}

func strp(s string) *string { return &s }
func i64p(v int64) *int64   { return &v }

func planUpdate(t *testing.T, plan *writeplan.Plan, path string) interface{} {
	t.Helper()
	require.NotNil(t, plan)
	require.NotEmpty(t, plan.Ops())
	for _, u := range plan.Ops()[0].Updates {
		if u.Path == path {
			return u.Value
		}
	}
	t.Fatalf("no update for %s", path)
	return nil
}

// A title edit must rewrite the derived search fields in the same commit.
func TestUpdateListing_TitleRewritesSearchFields(t *testing.T) {
	it, cm := newTestInteractor(storedListing())

	err := it.Execute(context.Background(), Request{
		ListingID:  "lst-1",
		CallerID:   "seller-1",
		CallerRole: domain.RoleSeller,
		Title:      strp("Nike Dunk Low"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Nike Dunk Low", planUpdate(t, cm.applied, m_listing.FldTitle))
	assert.Equal(t, "nike dunk low", planUpdate(t, cm.applied, m_listing.FldTitleLowercase))
	assert.Equal(t, []string{"nike", "dunk", "low"}, planUpdate(t, cm.applied, m_listing.FldKeywords))
}

func TestUpdateListing_OwnerCheck(t *testing.T) {
	it, cm := newTestInteractor(storedListing())

	err := it.Execute(context.Background(), Request{
		ListingID:  "lst-1",
		CallerID:   "other-seller",
		CallerRole: domain.RoleSeller,
		Title:      strp("Hijacked"),
	})
	assert.ErrorIs(t, err, domain.ErrNotListingOwner)
	assert.Nil(t, cm.applied)
}

func TestUpdateListing_AdminEditsAnyListing(t *testing.T) {
	it, cm := newTestInteractor(storedListing())

	err := it.Execute(context.Background(), Request{
		ListingID:  "lst-1",
		CallerID:   "admin-1",
		CallerRole: domain.RoleAdmin,
		Title:      strp("Moderated title"),
	})
	require.NoError(t, err)
	assert.NotNil(t, cm.applied)
}

func TestUpdateListing_PriceChange(t *testing.T) {
	it, cm := newTestInteractor(storedListing())

	err := it.Execute(context.Background(), Request{
		ListingID:  "lst-1",
		CallerID:   "seller-1",
		CallerRole: domain.RoleSeller,
		PriceNum:   i64p(14999),
		PriceDen:   i64p(100),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(14999), planUpdate(t, cm.applied, m_listing.FldPriceNum))
	assert.Equal(t, 149.99, planUpdate(t, cm.applied, m_listing.FldPrice))
}

func TestUpdateListing_ZeroDenominatorRejected(t *testing.T) {
	it, cm := newTestInteractor(storedListing())

	err := it.Execute(context.Background(), Request{
		ListingID:  "lst-1",
		CallerID:   "seller-1",
		CallerRole: domain.RoleSeller,
		PriceNum:   i64p(100),
		PriceDen:   i64p(0),
	})
	assert.ErrorIs(t, err, domain.ErrZeroPrice)
	assert.Nil(t, cm.applied)
}

func TestUpdateListing_ClearRelease(t *testing.T) {
	l := storedListing()
	at := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	l.ReleaseAt = &at
	it, cm := newTestInteractor(l)

	err := it.Execute(context.Background(), Request{
		ListingID:    "lst-1",
		CallerID:     "seller-1",
		CallerRole:   domain.RoleSeller,
		ClearRelease: true,
	})
	require.NoError(t, err)
	assert.Nil(t, planUpdate(t, cm.applied, m_listing.FldReleaseAt))
}

func TestUpdateListing_SoldListingRejected(t *testing.T) {
	l := storedListing()
	l.Status = "sold"
	it, _ := newTestInteractor(l)

	err := it.Execute(context.Background(), Request{
		ListingID:  "lst-1",
		CallerID:   "seller-1",
		CallerRole: domain.RoleSeller,
		Title:      strp("Re-listing"),
	})
	assert.ErrorIs(t, err, domain.ErrListingSold)
}
