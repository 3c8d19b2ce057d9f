package set_listing_status

import (
	"context"

	contracts "github.com/vintaro/marketplace-service/internal/app/listing/contracts"
	"github.com/vintaro/marketplace-service/internal/app/listing/domain"
	shared "github.com/vintaro/marketplace-service/internal/app/listing/usecases/shared"
	"github.com/vintaro/marketplace-service/internal/pkg/clock"
	"github.com/vintaro/marketplace-service/internal/pkg/writeplan"
)

// Transition names the requested lifecycle change.
type Transition string

const (
	TransitionSubmit      Transition = "submit"
	TransitionApprove     Transition = "approve"
	TransitionHold        Transition = "hold"
	TransitionReleaseHold Transition = "release_hold"
)

// Request carries the transition request plus explicit caller identity.
type Request struct {
	ListingID  string
	CallerID   string
	CallerRole domain.Role
	Transition Transition
}

// Interactor drives the listing status machine. Submit is a seller action
// on the seller's own listing; approve/hold/release are moderation actions.
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

	switch req.Transition {
	case TransitionSubmit:
		if !req.CallerRole.AtLeast(domain.RoleAdmin) && dtoOut.SellerID != req.CallerID {
			return domain.ErrNotListingOwner
		}
	case TransitionApprove, TransitionHold, TransitionReleaseHold:
		if !req.CallerRole.AtLeast(domain.RoleAdmin) {
			return domain.ErrRoleForbidden
		}
	default:
		return domain.ErrRoleForbidden
	}

	listing := shared.ListingFromDTO(dtoOut)

	switch req.Transition {
	case TransitionSubmit:
		err = listing.Submit(now)
	case TransitionApprove:
		err = listing.Approve(now)
	case TransitionHold:
		err = listing.Hold(now)
	case TransitionReleaseHold:
		err = listing.ReleaseHold(now)
	}
	if err != nil {
		return err
	}

	plan := writeplan.NewPlan()
	plan.Add(it.ListingRepo.UpdateOp(listing))
	if err := shared.AppendEvents(plan, it.OutboxRepo, listing.DomainEvents(), now); err != nil {
		return err
	}

	return it.Committer.Apply(ctx, plan)
}
