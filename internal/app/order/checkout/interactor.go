package checkout

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	contracts "github.com/vintaro/marketplace-service/internal/app/listing/contracts"
	"github.com/vintaro/marketplace-service/internal/app/listing/domain"
	shared "github.com/vintaro/marketplace-service/internal/app/listing/usecases/shared"
	"github.com/vintaro/marketplace-service/internal/models/m_listing"
	"github.com/vintaro/marketplace-service/internal/models/m_order"
	"github.com/vintaro/marketplace-service/internal/pkg/clock"
	"github.com/vintaro/marketplace-service/internal/pkg/writeplan"
)

// ErrOwnListing indicates a seller attempting to buy their own listing.
var ErrOwnListing = errors.New("cannot purchase your own listing")

// Request is a single-listing checkout.
type Request struct {
	ListingID string
	BuyerID   string
	BuyerRole domain.Role
}

// Result reports the created order.
type Result struct {
	OrderID string
}

// Interactor performs checkout as one read-modify-write transaction:
// read the listing, verify it is still available, mark it sold, create the
// order and the outbox events, all atomically. Two concurrent buyers race
// on the transaction; the loser's MarkSold fails on the refreshed read.
type Interactor struct {
	ListingRepo contracts.ListingRepo
	OutboxRepo  contracts.OutboxRepo
	Tx          contracts.TxRunner
	Client      *firestore.Client
	Clock       clock.Clock
}

func NewInteractor(listingRepo contracts.ListingRepo, outboxRepo contracts.OutboxRepo, tx contracts.TxRunner, client *firestore.Client, clk clock.Clock) *Interactor {
	return &Interactor{
		ListingRepo: listingRepo,
		OutboxRepo:  outboxRepo,
		Tx:          tx,
		Client:      client,
		Clock:       clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (*Result, error) {
	if !req.BuyerRole.AtLeast(domain.RoleBuyer) {
		return nil, domain.ErrRoleForbidden
	}

	now := it.Clock.Now()
	orderID := uuid.New().String()

	err := it.Tx.RunWith(ctx, func(ctx context.Context, tx *firestore.Transaction) (*writeplan.Plan, error) {
		doc, err := tx.Get(it.Client.Collection(m_listing.Collection).Doc(req.ListingID))
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return nil, domain.ErrListingNotFound
			}
			return nil, err
		}

		rec := m_listing.FromDoc(doc)
		if rec.SellerID == req.BuyerID {
			return nil, ErrOwnListing
		}

		listing := listingFromRecord(rec)
		if err := listing.MarkSold(req.BuyerID, orderID, now); err != nil {
			return nil, err
		}

		plan := writeplan.NewPlan()
		plan.Add(it.ListingRepo.UpdateOp(listing))

		price := listing.Price()
		plan.Add(&writeplan.Op{
			Kind:       writeplan.OpCreate,
			Collection: m_order.Collection,
			DocID:      orderID,
			Data: m_order.BuildInsertMap(
				orderID, listing.ID(), req.BuyerID, listing.SellerID(),
				price.Float64(), price.Numerator(), price.Denominator(),
				"created", now,
			),
		})

		if err := shared.AppendEvents(plan, it.OutboxRepo, listing.DomainEvents(), now); err != nil {
			return nil, err
		}
		return plan, nil
	})
	if err != nil {
		return nil, err
	}

	return &Result{OrderID: orderID}, nil
}

func listingFromRecord(rec *m_listing.Record) *domain.Listing {
	num, den := rec.PriceNum, rec.PriceDen
	if den == 0 {
		num, den = int64(rec.Price*100), 100
	}
	return domain.ReconstructListing(domain.ListingState{
		ID:             rec.ID,
		Title:          rec.Title,
		Category:       rec.Category,
		Subcategory:    rec.Subcategory,
		Condition:      rec.Condition,
		Size:           rec.Size,
		Price:          domain.NewMoney(num, den),
		Year:           rec.Year,
		SellerID:       rec.SellerID,
		SellerVerified: rec.SellerVerified,
		Featured:       rec.Featured,
		Untimed:        rec.Untimed,
		Multibuy:       rec.Multibuy,
		Status:         domain.Status(rec.Status),
		ReleaseAt:      rec.ReleaseAt,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
		Views:          rec.Views,
	})
}
