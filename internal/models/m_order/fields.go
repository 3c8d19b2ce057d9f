package m_order

// Field constants for the orders collection.
const (
	Collection = "orders"

	FldOrderID   = "orderId"
	FldListingID = "listingId"
	FldBuyerID   = "buyerId"
	FldSellerID  = "sellerId"
	FldAmount    = "amount"
	FldAmountNum = "amountNumerator"
	FldAmountDen = "amountDenominator"
	FldStatus    = "status"
	FldCreatedAt = "createdAt"
)
