package set_listing_status

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

// fakeReadModel serves a single listing by id.
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

func draftListing() *dto.ListingDTO {
	now := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	return &dto.ListingDTO{
		ListingID: "lst-1",
		Title:     "Air Jordan 1",
		Category:  "sneakers",
		PriceNum:  19999,
		PriceDen:  100,
		SellerID:  "seller-1",
		Status:    "draft",
		CreatedAt: now,
		UpdatedAt: now,
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

func statusUpdate(t *testing.T, plan *writeplan.Plan) string {
	t.Helper()
	require.NotNil(t, plan)
	require.NotEmpty(t, plan.Ops())
	for _, u := range plan.Ops()[0].Updates {
		if u.Path == m_listing.FldStatus {
			return u.Value.(string)
		}
	}
	t.Fatal("no status update in plan")
	return ""
}

func TestSubmit_ByOwner(t *testing.T) {
	it, cm := newTestInteractor(draftListing())

	err := it.Execute(context.Background(), Request{
		ListingID:  "lst-1",
		CallerID:   "seller-1",
		CallerRole: domain.RoleSeller,
		Transition: TransitionSubmit,
	})
	require.NoError(t, err)
	assert.Equal(t, "pending_approval", statusUpdate(t, cm.applied))
}

func TestSubmit_ByStrangerRejected(t *testing.T) {
	it, cm := newTestInteractor(draftListing())

	err := it.Execute(context.Background(), Request{
		ListingID:  "lst-1",
		CallerID:   "someone-else",
		CallerRole: domain.RoleSeller,
		Transition: TransitionSubmit,
	})
	assert.ErrorIs(t, err, domain.ErrNotListingOwner)
	assert.Nil(t, cm.applied)
}

func TestSubmit_AdminOverridesOwnership(t *testing.T) {
	it, cm := newTestInteractor(draftListing())

	err := it.Execute(context.Background(), Request{
		ListingID:  "lst-1",
		CallerID:   "admin-1",
		CallerRole: domain.RoleAdmin,
		Transition: TransitionSubmit,
	})
	require.NoError(t, err)
	assert.NotNil(t, cm.applied)
}

func TestApprove_RequiresAdmin(t *testing.T) {
	l := draftListing()
	l.Status = "pending_approval"
	it, cm := newTestInteractor(l)

	err := it.Execute(context.Background(), Request{
		ListingID:  "lst-1",
		CallerID:   "seller-1",
		CallerRole: domain.RoleSeller,
		Transition: TransitionApprove,
	})
	assert.ErrorIs(t, err, domain.ErrRoleForbidden)
	assert.Nil(t, cm.applied)
}

func TestApprove_ByAdmin(t *testing.T) {
	l := draftListing()
	l.Status = "pending_approval"
	it, cm := newTestInteractor(l)

	err := it.Execute(context.Background(), Request{
		ListingID:  "lst-1",
		CallerID:   "admin-1",
		CallerRole: domain.RoleAdmin,
		Transition: TransitionApprove,
	})
	require.NoError(t, err)
	assert.Equal(t, "available", statusUpdate(t, cm.applied))
}

func TestHoldAndRelease(t *testing.T) {
	l := draftListing()
	l.Status = "available"
	it, cm := newTestInteractor(l)

	err := it.Execute(context.Background(), Request{
		ListingID:  "lst-1",
		CallerID:   "admin-1",
		CallerRole: domain.RoleAdmin,
		Transition: TransitionHold,
	})
	require.NoError(t, err)
	assert.Equal(t, "on_hold", statusUpdate(t, cm.applied))

	l.Status = "on_hold"
	it, cm = newTestInteractor(l)
	err = it.Execute(context.Background(), Request{
		ListingID:  "lst-1",
		CallerID:   "admin-1",
		CallerRole: domain.RoleAdmin,
		Transition: TransitionReleaseHold,
	})
	require.NoError(t, err)
	assert.Equal(t, "available", statusUpdate(t, cm.applied))
}

func TestInvalidTransitionPropagates(t *testing.T) {
	l := draftListing()
	l.Status = "available"
	it, _ := newTestInteractor(l)

	err := it.Execute(context.Background(), Request{
		ListingID:  "lst-1",
		CallerID:   "admin-1",
		CallerRole: domain.RoleAdmin,
		Transition: TransitionApprove,
	})
	assert.ErrorIs(t, err, domain.ErrListingNotPending)
}

func TestUnknownTransitionRejected(t *testing.T) {
	it, _ := newTestInteractor(draftListing())

	err := it.Execute(context.Background(), Request{
		ListingID:  "lst-1",
		CallerID:   "admin-1",
		CallerRole: domain.RoleAdmin,
		Transition: Transition("promote"),
	})
	assert.ErrorIs(t, err, domain.ErrRoleForbidden)
}

func TestMissingListing(t *testing.T) {
	it, _ := newTestInteractor(nil)

	err := it.Execute(context.Background(), Request{
		ListingID:  "lst-404",
		CallerID:   "admin-1",
		CallerRole: domain.RoleAdmin,
		Transition: TransitionSubmit,
	})
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}
