package marketplace

import (
	"fmt"

	marketplacev1 "github.com/vintaro/marketplace-service/proto/marketplace/v1"
)

func validateCreateListing(req *marketplacev1.CreateListingRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if req.GetTitle() == "" {
		return fmt.Errorf("title is required")
	}
	if req.GetCategory() == "" {
		return fmt.Errorf("category is required")
	}
	if req.Price == nil {
		return fmt.Errorf("price is required")
	}
	if req.Price.Denominator == 0 {
		return fmt.Errorf("price.denominator must be non-zero")
	}
	return nil
}

func validateUpdateListing(req *marketplacev1.UpdateListingRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if req.GetListingId() == "" {
		return fmt.Errorf("listing_id is required")
	}
	if req.Title == nil && req.Subcategory == nil && req.Condition == nil &&
		req.Size == nil && req.Price == nil && req.PublicReleaseAt == nil &&
		!req.GetClearPublicRelease() {
		return fmt.Errorf("at least one field must be provided")
	}
	if req.Price != nil && req.Price.Denominator == 0 {
		return fmt.Errorf("price.denominator must be non-zero")
	}
	return nil
}

func validateSendMessage(req *marketplacev1.SendMessageRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if req.GetListingId() == "" {
		return fmt.Errorf("listing_id is required")
	}
	if req.GetBuyerId() == "" {
		return fmt.Errorf("buyer_id is required")
	}
	if req.GetBody() == "" {
		return fmt.Errorf("body is required")
	}
	return nil
}
