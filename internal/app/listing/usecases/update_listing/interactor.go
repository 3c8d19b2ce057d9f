package update_listing

import (
	"context"
	"time"

	contracts "github.com/vintaro/marketplace-service/internal/app/listing/contracts"
	"github.com/vintaro/marketplace-service/internal/app/listing/domain"
	shared "github.com/vintaro/marketplace-service/internal/app/listing/usecases/shared"
	"github.com/vintaro/marketplace-service/internal/pkg/clock"
	"github.com/vintaro/marketplace-service/internal/pkg/writeplan"
)

// Request represents a partial listing update. Nil fields are left alone.
type Request struct {
	ListingID    string
	CallerID     string
	CallerRole   domain.Role
	Title        *string
	Subcategory  *string
	Condition    *string
	Size         *string
	PriceNum     *int64
	PriceDen     *int64
	ReleaseAt    *time.Time
	ClearRelease bool
}

// Interactor applies partial updates through the aggregate so the derived
// search fields stay in sync with the title.
type Interactor struct {
	ListingRepo contracts.ListingRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	ReadModel   contracts.ReadModel
	Clock       clock.Clock
}

func NewInteractor(listingRepo contracts.ListingRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		ListingRepo: listingRepo,
		OutboxRepo:  outboxRepo,
		Committer:   committer,
		ReadModel:   readModel,
		Clock:       clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	now := it.Clock.Now()

	dtoOut, err := it.ReadModel.GetListing(ctx, req.ListingID)
	if err != nil {
		return err
	}

	// Sellers edit their own listings; admins edit anything.
	if !req.CallerRole.AtLeast(domain.RoleAdmin) && dtoOut.SellerID != req.CallerID {
		return domain.ErrNotListingOwner
	}

	listing := shared.ListingFromDTO(dtoOut)

	title, subcategory, condition, size := "", "", "", ""
	if req.Title != nil {
		title = *req.Title
	}
	if req.Subcategory != nil {
		subcategory = *req.Subcategory
	}
	if req.Condition != nil {
		condition = *req.Condition
	}
	if req.Size != nil {
		size = *req.Size
	}
	if err := listing.UpdateDetails(title, subcategory, condition, size, now); err != nil {
		return err
	}

	if req.PriceNum != nil && req.PriceDen != nil {
		if *req.PriceDen == 0 {
			return domain.ErrZeroPrice
		}
		if err := listing.UpdatePrice(domain.NewMoney(*req.PriceNum, *req.PriceDen), now); err != nil {
			return err
		}
	}

	if req.ClearRelease {
		if err := listing.ScheduleRelease(nil, now); err != nil {
			return err
		}
	} else if req.ReleaseAt != nil {
		if err := listing.ScheduleRelease(req.ReleaseAt, now); err != nil {
			return err
		}
	}

	plan := writeplan.NewPlan()
	plan.Add(it.ListingRepo.UpdateOp(listing))
	if err := shared.AppendEvents(plan, it.OutboxRepo, listing.DomainEvents(), now); err != nil {
		return err
	}

	return it.Committer.Apply(ctx, plan)
}
