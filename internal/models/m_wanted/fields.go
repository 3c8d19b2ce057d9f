package m_wanted

// Field constants for the wanted-to-buy collection.
const (
	Collection = "wanted"

	FldWantedID  = "wantedId"
	FldTitle     = "title"
	FldCategory  = "category"
	FldBuyerID   = "buyerId"
	FldMaxPrice  = "maxPrice"
	FldNotes     = "notes"
	FldCreatedAt = "createdAt"
)
