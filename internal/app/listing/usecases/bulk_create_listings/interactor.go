package bulk_create_listings

import (
	"context"
	"crypto/rand"

	"cloud.google.com/go/firestore"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/vintaro/marketplace-service/internal/app/listing/domain"
	"github.com/vintaro/marketplace-service/internal/app/listing/usecases/create_listing"
	"github.com/vintaro/marketplace-service/internal/models/m_listing"
	"github.com/vintaro/marketplace-service/internal/pkg/clock"
)

// RowResult reports the outcome for one row of a bulk upload.
type RowResult struct {
	Index     int
	ListingID string
	Err       error
}

// Interactor implements the seller bulk-listing tool. Rows are validated
// through the domain constructor and written with the store's bulk writer;
// rows are independent, so one bad row never fails the batch.
type Interactor struct {
	Client *firestore.Client
	Clock  clock.Clock
	Log    *zap.Logger
}

func NewInteractor(client *firestore.Client, clk clock.Clock, log *zap.Logger) *Interactor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Interactor{Client: client, Clock: clk, Log: log}
}

// Execute creates all valid rows as drafts owned by sellerID.
func (it *Interactor) Execute(ctx context.Context, sellerID string, sellerVerified bool, rows []create_listing.Request) []RowResult {
	now := it.Clock.Now()
	results := make([]RowResult, len(rows))

	bw := it.Client.BulkWriter(ctx)
	col := it.Client.Collection(m_listing.Collection)

	for i, row := range rows {
		results[i].Index = i

		if row.PriceDen == 0 {
			results[i].Err = domain.ErrZeroPrice
			continue
		}

		id := ulid.MustNew(ulid.Timestamp(now), rand.Reader).String()
		listing, err := domain.NewListing(id, domain.NewListingInput{
			Title:          row.Title,
			Category:       row.Category,
			Subcategory:    row.Subcategory,
			Condition:      row.Condition,
			Size:           row.Size,
			Price:          domain.NewMoney(row.PriceNum, row.PriceDen),
			Year:           row.Year,
			SellerID:       sellerID,
			SellerVerified: sellerVerified,
			Untimed:        row.Untimed,
			Multibuy:       row.Multibuy,
			ReleaseAt:      row.ReleaseAt,
		}, now)
		if err != nil {
			results[i].Err = err
			continue
		}

		price := listing.Price()
		data := m_listing.BuildCreateMap(
			listing.Title(), listing.TitleLowercase(), listing.Keywords(),
			listing.Category(), listing.Subcategory(), listing.Condition(), listing.Size(),
			price.Float64(), price.Numerator(), price.Denominator(), listing.Year(),
			listing.SellerID(), listing.SellerVerified(), listing.Featured(),
			listing.Untimed(), listing.Multibuy(),
			string(listing.Status()), listing.IsDraft(), listing.ReleaseAt(),
			listing.CreatedAt(), listing.UpdatedAt(),
		)

		if _, err := bw.Create(col.Doc(id), data); err != nil {
			results[i].Err = err
			continue
		}
		results[i].ListingID = id
	}

	bw.End()

	for _, r := range results {
		if r.Err != nil {
			it.Log.Warn("bulk create: row rejected",
				zap.Int("index", r.Index), zap.Error(r.Err))
		}
	}
	return results
}
