package send_message

import (
	"context"
	"crypto/rand"
	"errors"
	"strings"

	"github.com/oklog/ulid/v2"

	contracts "github.com/vintaro/marketplace-service/internal/app/listing/contracts"
	"github.com/vintaro/marketplace-service/internal/app/listing/domain"
	"github.com/vintaro/marketplace-service/internal/models/m_thread"
	"github.com/vintaro/marketplace-service/internal/pkg/clock"
	"github.com/vintaro/marketplace-service/internal/pkg/writeplan"
)

var (
	// ErrEmptyBody indicates a message with no content.
	ErrEmptyBody = errors.New("message body cannot be empty")

	// ErrNotParticipant indicates a sender who is neither the buyer nor
	// the listing's seller.
	ErrNotParticipant = errors.New("sender is not a participant of this conversation")
)

// Request is a message sent in the context of a listing.
type Request struct {
	ListingID  string
	BuyerID    string // the non-seller side of the conversation
	SenderID   string
	SenderRole domain.Role
	Body       string
}

// Result reports the thread the message landed in.
type Result struct {
	ThreadID  string
	MessageID string
}

// Interactor writes a message and upserts its thread in one commit.
// Thread ids are deterministic per listing/buyer pair.
type Interactor struct {
	ReadModel contracts.ReadModel
	Committer contracts.Committer
	Clock     clock.Clock
}

func NewInteractor(readModel contracts.ReadModel, committer contracts.Committer, clk clock.Clock) *Interactor {
	return &Interactor{ReadModel: readModel, Committer: committer, Clock: clk}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Body) == "" {
		return nil, ErrEmptyBody
	}

	listing, err := it.ReadModel.GetListing(ctx, req.ListingID)
	if err != nil {
		return nil, err
	}

	if req.SenderID != req.BuyerID && req.SenderID != listing.SellerID &&
		!req.SenderRole.AtLeast(domain.RoleAdmin) {
		return nil, ErrNotParticipant
	}

	now := it.Clock.Now()
	threadID := m_thread.ThreadID(req.ListingID, req.BuyerID)
	messageID := ulid.MustNew(ulid.Timestamp(now), rand.Reader).String()

	plan := writeplan.NewPlan()
	plan.Add(&writeplan.Op{
		Kind:       writeplan.OpSet,
		Merge:      true,
		Collection: m_thread.Collection,
		DocID:      threadID,
		Data:       m_thread.BuildThreadMap(threadID, req.ListingID, req.BuyerID, listing.SellerID, now),
	})
	plan.Add(&writeplan.Op{
		Kind:       writeplan.OpCreate,
		Collection: m_thread.MessagesCollection,
		DocID:      messageID,
		Data:       m_thread.BuildMessageMap(messageID, threadID, req.SenderID, strings.TrimSpace(req.Body), now),
	})

	if err := it.Committer.Apply(ctx, plan); err != nil {
		return nil, err
	}

	return &Result{ThreadID: threadID, MessageID: messageID}, nil
}
