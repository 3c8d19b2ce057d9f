package marketplace

import (
	"fmt"

	"google.golang.org/protobuf/types/known/timestamppb"

	marketplacev1 "github.com/vintaro/marketplace-service/proto/marketplace/v1"

	"github.com/vintaro/marketplace-service/internal/app/listing/dto"
	"github.com/vintaro/marketplace-service/internal/app/listing/usecases/create_listing"
	"github.com/vintaro/marketplace-service/internal/app/listing/usecases/update_listing"
)

func mapSearchParams(req *marketplacev1.SearchListingsRequest) dto.SearchParams {
	p := dto.SearchParams{
		Query:        req.GetQuery(),
		Categories:   req.GetCategories(),
		Subcategory:  req.GetSubcategory(),
		Conditions:   req.GetConditions(),
		Sizes:        req.GetSizes(),
		SellerIDs:    req.GetSellerIds(),
		VerifiedOnly: req.GetVerifiedOnly(),
		Untimed:      req.GetUntimed(),
		MultibuyOnly: req.GetMultibuyOnly(),
		Sort:         dto.SortKey(req.GetSort()),
		LastID:       req.GetLastId(),
		Statuses:     req.GetStatuses(),
	}
	if req.MinPrice != nil {
		v := req.GetMinPrice()
		p.MinPrice = &v
	}
	if req.MaxPrice != nil {
		v := req.GetMaxPrice()
		p.MaxPrice = &v
	}
	if req.MinYear != nil {
		v := req.GetMinYear()
		p.MinYear = &v
	}
	if req.MaxYear != nil {
		v := req.GetMaxYear()
		p.MaxYear = &v
	}
	return p
}

func mapCreateListingRequest(req *marketplacev1.CreateListingRequest, c Claims) create_listing.Request {
	out := create_listing.Request{
		Title:       req.GetTitle(),
		Category:    req.GetCategory(),
		Subcategory: req.GetSubcategory(),
		Condition:   req.GetCondition(),
		Size:        req.GetSize(),
		PriceNum:    req.GetPrice().GetNumerator(),
		PriceDen:    req.GetPrice().GetDenominator(),
		Year:        req.GetYear(),
		SellerID:    c.UserID,
		Untimed:     req.GetUntimed(),
		Multibuy:    req.GetMultibuyEnabled(),
	}
	if req.PublicReleaseAt != nil {
		t := req.PublicReleaseAt.AsTime()
		out.ReleaseAt = &t
	}
	return out
}

func mapUpdateListingRequest(req *marketplacev1.UpdateListingRequest, c Claims) update_listing.Request {
	out := update_listing.Request{
		ListingID:    req.GetListingId(),
		CallerID:     c.UserID,
		CallerRole:   c.Role,
		Title:        req.Title,
		Subcategory:  req.Subcategory,
		Condition:    req.Condition,
		Size:         req.Size,
		ClearRelease: req.GetClearPublicRelease(),
	}
	if req.Price != nil {
		num, den := req.Price.Numerator, req.Price.Denominator
		out.PriceNum, out.PriceDen = &num, &den
	}
	if req.PublicReleaseAt != nil {
		t := req.PublicReleaseAt.AsTime()
		out.ReleaseAt = &t
	}
	return out
}

func mapListingDTOToProto(in *dto.ListingDTO) (*marketplacev1.Listing, error) {
	if in == nil {
		return nil, fmt.Errorf("nil listing")
	}

	out := &marketplacev1.Listing{
		Id:              in.ListingID,
		Title:           in.Title,
		Category:        in.Category,
		Subcategory:     in.Subcategory,
		Condition:       in.Condition,
		Size:            in.Size,
		Price:           &marketplacev1.Money{Numerator: in.PriceNum, Denominator: in.PriceDen},
		Year:            in.Year,
		SellerId:        in.SellerID,
		SellerVerified:  in.SellerVerified,
		Featured:        in.Featured,
		Untimed:         in.Untimed,
		MultibuyEnabled: in.Multibuy,
		Status:          mapStatusToProto(in.Status),
		Views:           in.Views,
	}
	if in.ReleaseAt != nil {
		out.PublicReleaseAt = timestamppb.New(*in.ReleaseAt)
	}
	if !in.CreatedAt.IsZero() {
		out.CreatedAt = timestamppb.New(in.CreatedAt)
	}
	if !in.UpdatedAt.IsZero() {
		out.UpdatedAt = timestamppb.New(in.UpdatedAt)
	}
	return out, nil
}

func mapListingsToProto(in []*dto.ListingDTO) ([]*marketplacev1.Listing, error) {
	out := make([]*marketplacev1.Listing, 0, len(in))
	for _, l := range in {
		pb, err := mapListingDTOToProto(l)
		if err != nil {
			return nil, err
		}
		out = append(out, pb)
	}
	return out, nil
}

func mapStatusToProto(s string) marketplacev1.ListingStatus {
	switch s {
	case "draft":
		return marketplacev1.ListingStatus_LISTING_STATUS_DRAFT
	case "pending_approval":
		return marketplacev1.ListingStatus_LISTING_STATUS_PENDING_APPROVAL
	case "available":
		return marketplacev1.ListingStatus_LISTING_STATUS_AVAILABLE
	case "on_hold":
		return marketplacev1.ListingStatus_LISTING_STATUS_ON_HOLD
	case "sold":
		return marketplacev1.ListingStatus_LISTING_STATUS_SOLD
	default:
		return marketplacev1.ListingStatus_LISTING_STATUS_UNSPECIFIED
	}
}
