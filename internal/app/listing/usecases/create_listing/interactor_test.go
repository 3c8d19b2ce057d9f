package create_listing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vintaro/marketplace-service/internal/app/listing/domain"
	"github.com/vintaro/marketplace-service/internal/app/listing/repo"
	"github.com/vintaro/marketplace-service/internal/models/m_listing"
	"github.com/vintaro/marketplace-service/internal/models/m_outbox"
	"github.com/vintaro/marketplace-service/internal/pkg/clock"
	"github.com/vintaro/marketplace-service/internal/pkg/writeplan"
)

// fakeCommitter records the applied plan instead of writing to Firestore.
type fakeCommitter struct {
	applied *writeplan.Plan
	err     error
}

func (f *fakeCommitter) Apply(_ context.Context, plan *writeplan.Plan) error {
	f.applied = plan
	return f.err
}

func validRequest() Request {
	return Request{
		Title:    "Air Jordan 1 Chicago",
		Category: "sneakers",
		PriceNum: 19999,
		PriceDen: 100,
		Year:     1985,
		SellerID: "seller-1",
	}
}

func TestCreateListing_CommitsListingAndOutboxTogether(t *testing.T) {
	cm := &fakeCommitter{}
	clk := clock.NewFake(time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC))
	it := NewInteractor(repo.NewListingRepo(), repo.NewOutboxRepo(), cm, clk)

	id, err := it.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.NotNil(t, cm.applied)
	ops := cm.applied.Ops()
	require.Len(t, ops, 2)

	assert.Equal(t, m_listing.Collection, ops[0].Collection)
	assert.Equal(t, writeplan.OpCreate, ops[0].Kind)
	assert.Equal(t, id, ops[0].DocID)
	assert.Equal(t, "draft", ops[0].Data[m_listing.FldStatus])

	assert.Equal(t, m_outbox.Collection, ops[1].Collection)
	assert.Equal(t, "listing.created", ops[1].Data[m_outbox.FldEventType])
	assert.Equal(t, "pending", ops[1].Data[m_outbox.FldStatus])
	assert.Equal(t, id, ops[1].Data[m_outbox.FldAggregateID])
}

func TestCreateListing_ZeroDenominatorRejected(t *testing.T) {
	cm := &fakeCommitter{}
	it := NewInteractor(repo.NewListingRepo(), repo.NewOutboxRepo(), cm, clock.NewFake(time.Now()))

	req := validRequest()
	req.PriceDen = 0

	_, err := it.Execute(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrZeroPrice)
	assert.Nil(t, cm.applied)
}

func TestCreateListing_DomainValidationPropagates(t *testing.T) {
	cm := &fakeCommitter{}
	it := NewInteractor(repo.NewListingRepo(), repo.NewOutboxRepo(), cm, clock.NewFake(time.Now()))

	req := validRequest()
	req.Title = "   "

	_, err := it.Execute(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.Nil(t, cm.applied)
}

func TestCreateListing_IDsAreTimeSortable(t *testing.T) {
	cm := &fakeCommitter{}
	clk := clock.NewFake(time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC))
	it := NewInteractor(repo.NewListingRepo(), repo.NewOutboxRepo(), cm, clk)

	first, err := it.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	clk.Advance(time.Second)
	second, err := it.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Less(t, first, second)
}
