package create_listing

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	contracts "github.com/vintaro/marketplace-service/internal/app/listing/contracts"
	"github.com/vintaro/marketplace-service/internal/app/listing/domain"
	shared "github.com/vintaro/marketplace-service/internal/app/listing/usecases/shared"
	"github.com/vintaro/marketplace-service/internal/pkg/clock"
	"github.com/vintaro/marketplace-service/internal/pkg/writeplan"
)

// Request is the application-level create-listing request.
type Request struct {
	Title          string
	Category       string
	Subcategory    string
	Condition      string
	Size           string
	PriceNum       int64
	PriceDen       int64
	Year           int64
	SellerID       string
	SellerVerified bool
	Untimed        bool
	Multibuy       bool
	ReleaseAt      *time.Time
}

// Interactor creates a listing and writes its outbox events in one commit.
type Interactor struct {
	ListingRepo contracts.ListingRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	Clock       clock.Clock
}

func NewInteractor(listingRepo contracts.ListingRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		ListingRepo: listingRepo,
		OutboxRepo:  outboxRepo,
		Committer:   committer,
		Clock:       clk,
	}
}

// Execute builds the aggregate, validates through the domain constructor and
// commits the create plus outbox events atomically. Returns the new id.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	if req.PriceDen == 0 {
		return "", domain.ErrZeroPrice
	}

	now := it.Clock.Now()

	// ULIDs keep listing ids sortable by creation time.
	id := ulid.MustNew(ulid.Timestamp(now), rand.Reader).String()

	listing, err := domain.NewListing(id, domain.NewListingInput{
		Title:          req.Title,
		Category:       req.Category,
		Subcategory:    req.Subcategory,
		Condition:      req.Condition,
		Size:           req.Size,
		Price:          domain.NewMoney(req.PriceNum, req.PriceDen),
		Year:           req.Year,
		SellerID:       req.SellerID,
		SellerVerified: req.SellerVerified,
		Untimed:        req.Untimed,
		Multibuy:       req.Multibuy,
		ReleaseAt:      req.ReleaseAt,
	}, now)
	if err != nil {
		return "", err
	}

	plan := writeplan.NewPlan()
	plan.Add(it.ListingRepo.CreateOp(listing))
	if err := shared.AppendEvents(plan, it.OutboxRepo, listing.DomainEvents(), now); err != nil {
		return "", err
	}

	if err := it.Committer.Apply(ctx, plan); err != nil {
		return "", err
	}

	return listing.ID(), nil
}
