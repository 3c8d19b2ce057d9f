package create_wanted

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vintaro/marketplace-service/internal/app/listing/domain"
	"github.com/vintaro/marketplace-service/internal/models/m_wanted"
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

func TestCreateWanted(t *testing.T) {
	cm := &fakeCommitter{}
	it := NewInteractor(cm, clock.NewFake(time.Date(2026, 7, 3, 12, 0, 0, 0, time.UTC)))

	id, err := it.Execute(context.Background(), Request{
		Title:     "  Charizard Base Set Holo  ",
		Category:  "cards",
		BuyerID:   "buyer-1",
		BuyerRole: domain.RoleBuyer,
		MaxPrice:  800,
		Notes:     "PSA 8 or better",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.NotNil(t, cm.applied)
	ops := cm.applied.Ops()
	require.Len(t, ops, 1)

	assert.Equal(t, m_wanted.Collection, ops[0].Collection)
	assert.Equal(t, id, ops[0].DocID)
	assert.Equal(t, "Charizard Base Set Holo", ops[0].Data[m_wanted.FldTitle])
	assert.Equal(t, "buyer-1", ops[0].Data[m_wanted.FldBuyerID])
	assert.Equal(t, 800.0, ops[0].Data[m_wanted.FldMaxPrice])
}

func TestCreateWanted_AnonymousRejected(t *testing.T) {
	cm := &fakeCommitter{}
	it := NewInteractor(cm, clock.NewFake(time.Now()))

	_, err := it.Execute(context.Background(), Request{
		Title:     "Anything",
		BuyerID:   "",
		BuyerRole: domain.RoleAnonymous,
	})
	assert.ErrorIs(t, err, domain.ErrRoleForbidden)
	assert.Nil(t, cm.applied)
}

func TestCreateWanted_EmptyTitleRejected(t *testing.T) {
	cm := &fakeCommitter{}
	it := NewInteractor(cm, clock.NewFake(time.Now()))

	_, err := it.Execute(context.Background(), Request{
		Title:     "   ",
		BuyerID:   "buyer-1",
		BuyerRole: domain.RoleBuyer,
	})
	assert.ErrorIs(t, err, ErrEmptyWantedTitle)
}
