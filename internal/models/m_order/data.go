package m_order

import "time"

// BuildInsertMap constructs the field map for a new order document.
func BuildInsertMap(orderID, listingID, buyerID, sellerID string,
	amount float64, amountNum, amountDen int64, status string, createdAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		FldOrderID:   orderID,
		FldListingID: listingID,
		FldBuyerID:   buyerID,
		FldSellerID:  sellerID,
		FldAmount:    amount,
		FldAmountNum: amountNum,
		FldAmountDen: amountDen,
		FldStatus:    status,
		FldCreatedAt: createdAt.UTC(),
	}
}
