package create_wanted

import (
	"context"
	"crypto/rand"
	"errors"
	"strings"

	"github.com/oklog/ulid/v2"

	contracts "github.com/vintaro/marketplace-service/internal/app/listing/contracts"
	"github.com/vintaro/marketplace-service/internal/app/listing/domain"
	"github.com/vintaro/marketplace-service/internal/models/m_wanted"
	"github.com/vintaro/marketplace-service/internal/pkg/clock"
	"github.com/vintaro/marketplace-service/internal/pkg/writeplan"
)

// ErrEmptyWantedTitle indicates a wanted listing without a title.
var ErrEmptyWantedTitle = errors.New("wanted listing title cannot be empty")

// Request is the application-level create-wanted request.
type Request struct {
	Title     string
	Category  string
	BuyerID   string
	BuyerRole domain.Role
	MaxPrice  float64
	Notes     string
}

// Interactor creates a wanted-to-buy listing.
type Interactor struct {
	Committer contracts.Committer
	Clock     clock.Clock
}

func NewInteractor(committer contracts.Committer, clk clock.Clock) *Interactor {
	return &Interactor{Committer: committer, Clock: clk}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	if !req.BuyerRole.AtLeast(domain.RoleBuyer) {
		return "", domain.ErrRoleForbidden
	}
	if strings.TrimSpace(req.Title) == "" {
		return "", ErrEmptyWantedTitle
	}

	now := it.Clock.Now()
	id := ulid.MustNew(ulid.Timestamp(now), rand.Reader).String()

	plan := writeplan.NewPlan()
	plan.Add(&writeplan.Op{
		Kind:       writeplan.OpCreate,
		Collection: m_wanted.Collection,
		DocID:      id,
		Data: map[string]interface{}{
			m_wanted.FldWantedID:  id,
			m_wanted.FldTitle:     strings.TrimSpace(req.Title),
			m_wanted.FldCategory:  strings.TrimSpace(req.Category),
			m_wanted.FldBuyerID:   req.BuyerID,
			m_wanted.FldMaxPrice:  req.MaxPrice,
			m_wanted.FldNotes:     strings.TrimSpace(req.Notes),
			m_wanted.FldCreatedAt: now,
		},
	})

	if err := it.Committer.Apply(ctx, plan); err != nil {
		return "", err
	}
	return id, nil
}
