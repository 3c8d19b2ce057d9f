package record_view

import (
	"context"

	contracts "github.com/vintaro/marketplace-service/internal/app/listing/contracts"
	"github.com/vintaro/marketplace-service/internal/pkg/writeplan"
)

// Interactor bumps a listing's view counter. Fire-and-forget semantics:
// the caller does not block page rendering on it.
type Interactor struct {
	ListingRepo contracts.ListingRepo
	Committer   contracts.Committer
}

func NewInteractor(listingRepo contracts.ListingRepo, committer contracts.Committer) *Interactor {
	return &Interactor{ListingRepo: listingRepo, Committer: committer}
}

func (it *Interactor) Execute(ctx context.Context, listingID string) error {
	plan := writeplan.NewPlan()
	plan.Add(it.ListingRepo.ViewIncrementOp(listingID))
	return it.Committer.Apply(ctx, plan)
}
