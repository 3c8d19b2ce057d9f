package send_message

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vintaro/marketplace-service/internal/app/listing/domain"
	"github.com/vintaro/marketplace-service/internal/app/listing/dto"
	"github.com/vintaro/marketplace-service/internal/models/m_thread"
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

func newTestInteractor() (*Interactor, *fakeCommitter) {
	cm := &fakeCommitter{}
	rm := &fakeReadModel{listing: &dto.ListingDTO{
		ListingID: "lst-1",
		SellerID:  "seller-1",
		Status:    "available",
	}}
	it := NewInteractor(rm, cm, clock.NewFake(time.Date(2026, 7, 2, 8, 0, 0, 0, time.UTC)))
	return it, cm
}

func TestSendMessage_BuyerToSeller(t *testing.T) {
	it, cm := newTestInteractor()

	res, err := it.Execute(context.Background(), Request{
		ListingID:  "lst-1",
		BuyerID:    "buyer-1",
		SenderID:   "buyer-1",
		SenderRole: domain.RoleBuyer,
		Body:       "Is this still available?",
	})
	require.NoError(t, err)
	assert.Equal(t, "lst-1_buyer-1", res.ThreadID)
	require.NotEmpty(t, res.MessageID)

	require.NotNil(t, cm.applied)
	ops := cm.applied.Ops()
	require.Len(t, ops, 2)

	// Thread upsert merges so repeat messages never clobber the thread.
	assert.Equal(t, m_thread.Collection, ops[0].Collection)
	assert.Equal(t, writeplan.OpSet, ops[0].Kind)
	assert.True(t, ops[0].Merge)
	assert.Equal(t, res.ThreadID, ops[0].DocID)

	assert.Equal(t, m_thread.MessagesCollection, ops[1].Collection)
	assert.Equal(t, writeplan.OpCreate, ops[1].Kind)
	assert.Equal(t, "Is this still available?", ops[1].Data[m_thread.FldBody])
	assert.Equal(t, "buyer-1", ops[1].Data[m_thread.FldSenderID])
}

func TestSendMessage_SellerReplyUsesSameThread(t *testing.T) {
	it, _ := newTestInteractor()

	res, err := it.Execute(context.Background(), Request{
		ListingID:  "lst-1",
		BuyerID:    "buyer-1",
		SenderID:   "seller-1",
		SenderRole: domain.RoleSeller,
		Body:       "Yes, it is.",
	})
	require.NoError(t, err)
	assert.Equal(t, "lst-1_buyer-1", res.ThreadID)
}

func TestSendMessage_EmptyBodyRejected(t *testing.T) {
	it, cm := newTestInteractor()

	_, err := it.Execute(context.Background(), Request{
		ListingID: "lst-1",
		BuyerID:   "buyer-1",
		SenderID:  "buyer-1",
		Body:      "   ",
	})
	assert.ErrorIs(t, err, ErrEmptyBody)
	assert.Nil(t, cm.applied)
}

func TestSendMessage_StrangerRejected(t *testing.T) {
	it, cm := newTestInteractor()

	_, err := it.Execute(context.Background(), Request{
		ListingID:  "lst-1",
		BuyerID:    "buyer-1",
		SenderID:   "lurker-9",
		SenderRole: domain.RoleBuyer,
		Body:       "hi",
	})
	assert.ErrorIs(t, err, ErrNotParticipant)
	assert.Nil(t, cm.applied)
}

func TestSendMessage_AdminMayJoin(t *testing.T) {
	it, _ := newTestInteractor()

	_, err := it.Execute(context.Background(), Request{
		ListingID:  "lst-1",
		BuyerID:    "buyer-1",
		SenderID:   "admin-1",
		SenderRole: domain.RoleAdmin,
		Body:       "Please keep payment on-platform.",
	})
	assert.NoError(t, err)
}

func TestSendMessage_BodyIsTrimmed(t *testing.T) {
	it, cm := newTestInteractor()

	_, err := it.Execute(context.Background(), Request{
		ListingID:  "lst-1",
		BuyerID:    "buyer-1",
		SenderID:   "buyer-1",
		SenderRole: domain.RoleBuyer,
		Body:       "  hello  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", cm.applied.Ops()[1].Data[m_thread.FldBody])
}
