package marketplace

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	marketplacev1 "github.com/vintaro/marketplace-service/proto/marketplace/v1"

	"github.com/vintaro/marketplace-service/internal/app/listing/domain"
	"github.com/vintaro/marketplace-service/internal/app/listing/queries/get_listing"
	"github.com/vintaro/marketplace-service/internal/app/listing/queries/search_listings"
	"github.com/vintaro/marketplace-service/internal/app/listing/usecases/bulk_create_listings"
	"github.com/vintaro/marketplace-service/internal/app/listing/usecases/create_listing"
	"github.com/vintaro/marketplace-service/internal/app/listing/usecases/record_view"
	"github.com/vintaro/marketplace-service/internal/app/listing/usecases/set_listing_status"
	"github.com/vintaro/marketplace-service/internal/app/listing/usecases/suggest_price"
	"github.com/vintaro/marketplace-service/internal/app/listing/usecases/update_listing"
	"github.com/vintaro/marketplace-service/internal/app/messaging/send_message"
	"github.com/vintaro/marketplace-service/internal/app/order/checkout"
	"github.com/vintaro/marketplace-service/internal/app/wanted/create_wanted"
	"github.com/vintaro/marketplace-service/internal/app/wanted/list_wanted"
)

// Commands groups write interactors.
// Keep transport layer depending on application layer only.
type Commands struct {
	Create       *create_listing.Interactor
	Update       *update_listing.Interactor
	SetStatus    *set_listing_status.Interactor
	RecordView   *record_view.Interactor
	BulkCreate   *bulk_create_listings.Interactor
	Checkout     *checkout.Interactor
	SendMessage  *send_message.Interactor
	SuggestPrice *suggest_price.Interactor
	CreateWanted *create_wanted.Interactor
}

// Queries groups read handlers.
type Queries struct {
	Search     *search_listings.Handler
	Get        *get_listing.Handler
	ListWanted *list_wanted.FirestoreListWantedQuery
}

// Handler is a thin gRPC transport adapter.
// It reads caller claims, validates input, maps proto <-> application DTOs
// and delegates to CQRS handlers.
type Handler struct {
	marketplacev1.UnimplementedMarketplaceServiceServer

	commands Commands
	queries  Queries
}

func NewHandler(cmd Commands, qry Queries) *Handler {
	return &Handler{commands: cmd, queries: qry}
}

func (h *Handler) SearchListings(ctx context.Context, req *marketplacev1.SearchListingsRequest) (*marketplacev1.SearchListingsReply, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	c := claimsFromContext(ctx)

	res, err := h.queries.Search.Execute(ctx, mapSearchParams(req), c.Role)
	if err != nil {
		return nil, mapError(err)
	}

	listings, err := mapListingsToProto(res.Listings)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	reply := &marketplacev1.SearchListingsReply{
		Listings:      listings,
		HasMore:       res.HasMore,
		LastVisibleId: res.LastVisibleID,
	}
	if res.TotalCount != nil {
		reply.TotalCount = res.TotalCount
	}
	return reply, nil
}

func (h *Handler) GetListing(ctx context.Context, req *marketplacev1.GetListingRequest) (*marketplacev1.GetListingReply, error) {
	if req == nil || req.ListingId == "" {
		return nil, status.Error(codes.InvalidArgument, "listing_id is required")
	}

	dtoOut, err := h.queries.Get.Execute(ctx, req.ListingId)
	if err != nil {
		return nil, mapError(err)
	}

	pb, err := mapListingDTOToProto(dtoOut)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &marketplacev1.GetListingReply{Listing: pb}, nil
}

func (h *Handler) CreateListing(ctx context.Context, req *marketplacev1.CreateListingRequest) (*marketplacev1.CreateListingReply, error) {
	if err := validateCreateListing(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	c := claimsFromContext(ctx)
	if !c.Role.AtLeast(domain.RoleSeller) {
		return nil, mapError(domain.ErrRoleForbidden)
	}

	id, err := h.commands.Create.Execute(ctx, mapCreateListingRequest(req, c))
	if err != nil {
		return nil, mapError(err)
	}
	return &marketplacev1.CreateListingReply{ListingId: id}, nil
}

func (h *Handler) UpdateListing(ctx context.Context, req *marketplacev1.UpdateListingRequest) (*marketplacev1.UpdateListingReply, error) {
	if err := validateUpdateListing(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	c := claimsFromContext(ctx)

	if err := h.commands.Update.Execute(ctx, mapUpdateListingRequest(req, c)); err != nil {
		return nil, mapError(err)
	}
	return &marketplacev1.UpdateListingReply{}, nil
}

func (h *Handler) SetListingStatus(ctx context.Context, req *marketplacev1.SetListingStatusRequest) (*marketplacev1.SetListingStatusReply, error) {
	if req == nil || req.ListingId == "" {
		return nil, status.Error(codes.InvalidArgument, "listing_id is required")
	}
	switch set_listing_status.Transition(req.Transition) {
	case set_listing_status.TransitionSubmit,
		set_listing_status.TransitionApprove,
		set_listing_status.TransitionHold,
		set_listing_status.TransitionReleaseHold:
	default:
		return nil, status.Error(codes.InvalidArgument, "unknown transition")
	}
	c := claimsFromContext(ctx)

	err := h.commands.SetStatus.Execute(ctx, set_listing_status.Request{
		ListingID:  req.ListingId,
		CallerID:   c.UserID,
		CallerRole: c.Role,
		Transition: set_listing_status.Transition(req.Transition),
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &marketplacev1.SetListingStatusReply{}, nil
}

func (h *Handler) RecordView(ctx context.Context, req *marketplacev1.RecordViewRequest) (*marketplacev1.RecordViewReply, error) {
	if req == nil || req.ListingId == "" {
		return nil, status.Error(codes.InvalidArgument, "listing_id is required")
	}

	if err := h.commands.RecordView.Execute(ctx, req.ListingId); err != nil {
		return nil, mapError(err)
	}
	return &marketplacev1.RecordViewReply{}, nil
}

func (h *Handler) BulkCreateListings(ctx context.Context, req *marketplacev1.BulkCreateListingsRequest) (*marketplacev1.BulkCreateListingsReply, error) {
	if req == nil || len(req.Rows) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one row is required")
	}
	c := claimsFromContext(ctx)
	if !c.Role.AtLeast(domain.RoleSeller) {
		return nil, mapError(domain.ErrRoleForbidden)
	}

	rows := make([]create_listing.Request, 0, len(req.Rows))
	for _, r := range req.Rows {
		rows = append(rows, mapCreateListingRequest(r, c))
	}

	results := h.commands.BulkCreate.Execute(ctx, c.UserID, false, rows)

	reply := &marketplacev1.BulkCreateListingsReply{}
	for _, r := range results {
		row := &marketplacev1.BulkCreateListingsReply_Row{
			Index:     int32(r.Index),
			ListingId: r.ListingID,
		}
		if r.Err != nil {
			row.Error = r.Err.Error()
		}
		reply.Rows = append(reply.Rows, row)
	}
	return reply, nil
}

func (h *Handler) Checkout(ctx context.Context, req *marketplacev1.CheckoutRequest) (*marketplacev1.CheckoutReply, error) {
	if req == nil || req.ListingId == "" {
		return nil, status.Error(codes.InvalidArgument, "listing_id is required")
	}
	c := claimsFromContext(ctx)

	res, err := h.commands.Checkout.Execute(ctx, checkout.Request{
		ListingID: req.ListingId,
		BuyerID:   c.UserID,
		BuyerRole: c.Role,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &marketplacev1.CheckoutReply{OrderId: res.OrderID}, nil
}

func (h *Handler) SendMessage(ctx context.Context, req *marketplacev1.SendMessageRequest) (*marketplacev1.SendMessageReply, error) {
	if err := validateSendMessage(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	c := claimsFromContext(ctx)

	res, err := h.commands.SendMessage.Execute(ctx, send_message.Request{
		ListingID:  req.ListingId,
		BuyerID:    req.BuyerId,
		SenderID:   c.UserID,
		SenderRole: c.Role,
		Body:       req.Body,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &marketplacev1.SendMessageReply{ThreadId: res.ThreadID, MessageId: res.MessageID}, nil
}

func (h *Handler) SuggestPrice(ctx context.Context, req *marketplacev1.SuggestPriceRequest) (*marketplacev1.SuggestPriceReply, error) {
	if req == nil || req.ListingId == "" {
		return nil, status.Error(codes.InvalidArgument, "listing_id is required")
	}
	if h.commands.SuggestPrice == nil {
		return nil, status.Error(codes.Unimplemented, "price suggestions are not enabled")
	}
	c := claimsFromContext(ctx)

	s, err := h.commands.SuggestPrice.Execute(ctx, suggest_price.Request{
		ListingID:  req.ListingId,
		CallerID:   c.UserID,
		CallerRole: c.Role,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &marketplacev1.SuggestPriceReply{
		SuggestedPrice: s.SuggestedPrice,
		LowPrice:       s.LowPrice,
		HighPrice:      s.HighPrice,
		Grade:          s.Grade,
		Reasoning:      s.Reasoning,
	}, nil
}

func (h *Handler) CreateWanted(ctx context.Context, req *marketplacev1.CreateWantedRequest) (*marketplacev1.CreateWantedReply, error) {
	if req == nil || req.Title == "" {
		return nil, status.Error(codes.InvalidArgument, "title is required")
	}
	c := claimsFromContext(ctx)

	id, err := h.commands.CreateWanted.Execute(ctx, create_wanted.Request{
		Title:     req.Title,
		Category:  req.Category,
		BuyerID:   c.UserID,
		BuyerRole: c.Role,
		MaxPrice:  req.MaxPrice,
		Notes:     req.Notes,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &marketplacev1.CreateWantedReply{WantedId: id}, nil
}

func (h *Handler) ListWanted(ctx context.Context, req *marketplacev1.ListWantedRequest) (*marketplacev1.ListWantedReply, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	items, err := h.queries.ListWanted.ListWanted(ctx, req.Category)
	if err != nil {
		return nil, mapError(err)
	}

	reply := &marketplacev1.ListWantedReply{}
	for _, w := range items {
		pb := &marketplacev1.ListWantedReply_Wanted{
			Id:       w.WantedID,
			Title:    w.Title,
			Category: w.Category,
			BuyerId:  w.BuyerID,
			MaxPrice: w.MaxPrice,
			Notes:    w.Notes,
		}
		if !w.CreatedAt.IsZero() {
			pb.CreatedAt = timestamppb.New(w.CreatedAt)
		}
		reply.Wanted = append(reply.Wanted, pb)
	}
	return reply, nil
}
