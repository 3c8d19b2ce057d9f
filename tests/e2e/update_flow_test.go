package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vintaro/marketplace-service/internal/app/listing/domain"
	"github.com/vintaro/marketplace-service/internal/app/listing/queries/get_listing"
	"github.com/vintaro/marketplace-service/internal/app/listing/usecases/create_listing"
	"github.com/vintaro/marketplace-service/internal/app/listing/usecases/update_listing"
)

func strp(s string) *string { return &s }

func TestUpdateFlow_TitleKeepsSearchFieldsInSync(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	id, err := createUC.Execute(ctx, create_listing.Request{
		Title:    "Vintage Leica M3",
		Category: "cameras-e2e",
		PriceNum: 220000,
		PriceDen: 100,
		SellerID: "seller-e2e-6",
	})
	require.NoError(t, err)

	require.NoError(t, updateUC.Execute(ctx, update_listing.Request{
		ListingID:  id,
		CallerID:   "seller-e2e-6",
		CallerRole: domain.RoleSeller,
		Title:      strp("Leica M6 TTL Black"),
	}))

	l, err := get_listing.NewHandler(readModel).Execute(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, "Leica M6 TTL Black", l.Title)
	assert.Equal(t, "leica m6 ttl black", l.TitleLowercase)
	assert.ElementsMatch(t, []string{"leica", "m6", "ttl", "black"}, l.Keywords)

	// Ownership is enforced against the stored seller.
	err = updateUC.Execute(ctx, update_listing.Request{
		ListingID:  id,
		CallerID:   "someone-else",
		CallerRole: domain.RoleSeller,
		Title:      strp("Hijacked"),
	})
	assert.ErrorIs(t, err, domain.ErrNotListingOwner)
}
