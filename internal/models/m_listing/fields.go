package m_listing

// Field constants for the listings collection.
const (
	Collection = "listings"

	FldTitle          = "title"
	FldTitleLowercase = "titleLowercase"
	FldKeywords       = "keywords"
	FldCategory       = "category"
	FldSubcategory    = "subcategory"
	FldCondition      = "condition"
	FldSize           = "size"
	FldPrice          = "price"
	FldPriceNum       = "priceNumerator"
	FldPriceDen       = "priceDenominator"
	FldYear           = "year"
	FldSellerID       = "sellerId"
	FldSellerVerified = "sellerVerified"
	FldFeatured       = "featured"
	FldUntimed        = "untimed"
	FldMultibuy       = "multibuyEnabled"
	FldStatus         = "status"
	FldDraft          = "draft"
	FldReleaseAt      = "publicReleaseAt"
	FldCreatedAt      = "createdAt"
	FldUpdatedAt      = "updatedAt"
	FldViews          = "views"
)
