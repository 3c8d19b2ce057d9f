package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestListing(t *testing.T) (*Listing, time.Time) {
	t.Helper()
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	l, err := NewListing("lst-1", NewListingInput{
		Title:    "Air Jordan 1 Chicago",
		Category: "sneakers",
		Price:    NewMoney(19999, 100),
		Year:     1985,
		SellerID: "seller-1",
	}, now)
	require.NoError(t, err)
	return l, now
}

func TestNewListing_DerivesSearchFields(t *testing.T) {
	l, _ := newTestListing(t)

	assert.Equal(t, "air jordan 1 chicago", l.TitleLowercase())
	assert.Equal(t, []string{"air", "jordan", "1", "chicago"}, l.Keywords())
	assert.Equal(t, StatusDraft, l.Status())
	assert.True(t, l.IsDraft())

	require.Len(t, l.DomainEvents(), 1)
	assert.Equal(t, "listing.created", l.DomainEvents()[0].EventType())
}

func TestNewListing_Validation(t *testing.T) {
	now := time.Now()
	base := NewListingInput{
		Title:    "ok",
		Category: "sneakers",
		Price:    NewMoney(100, 100),
		SellerID: "s",
	}

	in := base
	in.Title = "  "
	_, err := NewListing("id", in, now)
	assert.ErrorIs(t, err, ErrEmptyTitle)

	in = base
	in.Category = ""
	_, err = NewListing("id", in, now)
	assert.ErrorIs(t, err, ErrEmptyCategory)

	in = base
	in.SellerID = ""
	_, err = NewListing("id", in, now)
	assert.ErrorIs(t, err, ErrEmptySeller)

	in = base
	in.Price = NewMoney(0, 100)
	_, err = NewListing("id", in, now)
	assert.ErrorIs(t, err, ErrZeroPrice)

	in = base
	in.Price = NewMoney(-500, 100)
	_, err = NewListing("id", in, now)
	assert.ErrorIs(t, err, ErrNegativePrice)

	in = base
	in.Year = 42
	_, err = NewListing("id", in, now)
	assert.ErrorIs(t, err, ErrInvalidYear)

	in = base
	past := now.Add(-time.Hour)
	in.ReleaseAt = &past
	_, err = NewListing("id", in, now)
	assert.ErrorIs(t, err, ErrReleaseInPast)
}

func TestNewListing_YearIsOptional(t *testing.T) {
	now := time.Now()
	_, err := NewListing("id", NewListingInput{
		Title:    "Vintage poster",
		Category: "art",
		Price:    NewMoney(500, 100),
		SellerID: "s",
	}, now)
	assert.NoError(t, err)
}

// TestUpdateDetails_TitleSyncsSearchFields covers the core invariant: the
// stored search fields always match the current title.
func TestUpdateDetails_TitleSyncsSearchFields(t *testing.T) {
	l, now := newTestListing(t)
	l.ClearEvents()
	later := now.Add(time.Minute)

	require.NoError(t, l.UpdateDetails("Nike Dunk Low Panda", "", "", "", later))

	assert.Equal(t, "Nike Dunk Low Panda", l.Title())
	assert.Equal(t, "nike dunk low panda", l.TitleLowercase())
	assert.Equal(t, []string{"nike", "dunk", "low", "panda"}, l.Keywords())
	assert.True(t, l.Changes().Dirty(FieldTitle))
	assert.Equal(t, later, l.UpdatedAt())
	require.Len(t, l.DomainEvents(), 1)
}

func TestUpdateDetails_NoopLeavesAggregateClean(t *testing.T) {
	l, now := newTestListing(t)
	l.ClearEvents()

	require.NoError(t, l.UpdateDetails("", "", "", "", now.Add(time.Minute)))

	assert.False(t, l.Changes().HasChanges())
	assert.Empty(t, l.DomainEvents())
	assert.Equal(t, now, l.UpdatedAt())
}

func TestUpdatePrice(t *testing.T) {
	l, now := newTestListing(t)
	l.ClearEvents()

	require.NoError(t, l.UpdatePrice(NewMoney(14999, 100), now.Add(time.Minute)))
	assert.True(t, l.Changes().Dirty(FieldPrice))
	assert.True(t, l.Price().Equals(NewMoney(14999, 100)))

	err := l.UpdatePrice(NewMoney(-1, 100), now.Add(time.Minute))
	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestStatusMachine_HappyPath(t *testing.T) {
	l, now := newTestListing(t)

	require.NoError(t, l.Submit(now))
	assert.Equal(t, StatusPendingApproval, l.Status())

	require.NoError(t, l.Approve(now))
	assert.Equal(t, StatusAvailable, l.Status())

	require.NoError(t, l.Hold(now))
	assert.Equal(t, StatusOnHold, l.Status())

	require.NoError(t, l.ReleaseHold(now))
	assert.Equal(t, StatusAvailable, l.Status())

	require.NoError(t, l.MarkSold("buyer-1", "order-1", now))
	assert.Equal(t, StatusSold, l.Status())
	assert.False(t, l.IsDraft())
}

func TestStatusMachine_InvalidTransitions(t *testing.T) {
	l, now := newTestListing(t)

	// Draft listings cannot be approved, held or sold.
	assert.ErrorIs(t, l.Approve(now), ErrListingNotPending)
	assert.ErrorIs(t, l.Hold(now), ErrListingNotAvailable)
	assert.ErrorIs(t, l.MarkSold("b", "o", now), ErrListingNotAvailable)
	assert.ErrorIs(t, l.ReleaseHold(now), ErrListingOnHold)

	require.NoError(t, l.Submit(now))
	assert.ErrorIs(t, l.Submit(now), ErrListingNotDraft)
}

func TestMarkSold_EmitsSoldEvent(t *testing.T) {
	l, now := newTestListing(t)
	require.NoError(t, l.Submit(now))
	require.NoError(t, l.Approve(now))
	l.ClearEvents()

	require.NoError(t, l.MarkSold("buyer-1", "order-1", now))

	require.Len(t, l.DomainEvents(), 2) // status change + sold
	sold, ok := l.DomainEvents()[1].(*ListingSoldEvent)
	require.True(t, ok)
	assert.Equal(t, "buyer-1", sold.BuyerID)
	assert.Equal(t, "order-1", sold.OrderID)
}

func TestSoldListingRejectsEdits(t *testing.T) {
	l, now := newTestListing(t)
	require.NoError(t, l.Submit(now))
	require.NoError(t, l.Approve(now))
	require.NoError(t, l.MarkSold("b", "o", now))

	assert.ErrorIs(t, l.UpdateDetails("New title", "", "", "", now), ErrListingSold)
	assert.ErrorIs(t, l.UpdatePrice(NewMoney(1, 1), now), ErrListingSold)
	future := now.Add(time.Hour)
	assert.ErrorIs(t, l.ScheduleRelease(&future, now), ErrListingSold)
}

func TestScheduleRelease(t *testing.T) {
	l, now := newTestListing(t)

	future := now.Add(24 * time.Hour)
	require.NoError(t, l.ScheduleRelease(&future, now))
	require.NotNil(t, l.ReleaseAt())
	assert.True(t, l.Changes().Dirty(FieldReleaseAt))

	require.NoError(t, l.ScheduleRelease(nil, now))
	assert.Nil(t, l.ReleaseAt())

	past := now.Add(-time.Second)
	assert.ErrorIs(t, l.ScheduleRelease(&past, now), ErrReleaseInPast)
}

func TestReconstructListing_RederivesSearchFields(t *testing.T) {
	now := time.Now().UTC()
	l := ReconstructListing(ListingState{
		ID:        "lst-2",
		Title:     "Charizard Holo PSA 9",
		Category:  "cards",
		Price:     NewMoney(50000, 100),
		SellerID:  "seller-2",
		Status:    StatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	})

	assert.Equal(t, "charizard holo psa 9", l.TitleLowercase())
	assert.Contains(t, l.Keywords(), "charizard")
	assert.False(t, l.Changes().HasChanges())
	assert.Empty(t, l.DomainEvents())
}
