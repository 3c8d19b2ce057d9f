package dto

import "time"

// ListingDTO contains full listing fields returned by read queries.
// Timestamps are normalized to time.Time at the data-access boundary
// (m_listing.FromDoc) regardless of how they were serialized in storage.
type ListingDTO struct {
	ListingID      string
	Title          string
	TitleLowercase string
	Keywords       []string
	Category       string
	Subcategory    string
	Condition      string
	Size           string
	Price          float64
	PriceNum       int64
	PriceDen       int64
	Year           int64
	SellerID       string
	SellerVerified bool
	Featured       bool
	Untimed        bool
	Multibuy       bool
	Status         string
	ReleaseAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Views          int64
}

// SortKey enumerates the sort orders a search caller may request.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortYearAsc   SortKey = "year-asc"
	SortYearDesc  SortKey = "year-desc"
	SortViews     SortKey = "views"
	SortTitle     SortKey = "title"
)

// SearchParams is the structured search/filter input for listing search.
// Zero values mean "not supplied".
type SearchParams struct {
	Query        string
	Categories   []string
	Subcategory  string
	Conditions   []string
	Sizes        []string
	SellerIDs    []string
	MinPrice     *float64
	MaxPrice     *float64
	MinYear      *int64
	MaxYear      *int64
	VerifiedOnly bool
	Untimed      bool
	MultibuyOnly bool
	Sort         SortKey
	LastID       string   // pagination cursor: id of the previous page's last item
	Statuses     []string // privileged callers only
}

// SearchResult is one page of search output.
type SearchResult struct {
	Listings      []*ListingDTO
	HasMore       bool
	LastVisibleID string
	// TotalCount is present only on an uncursored first page of a
	// non-text-search query.
	TotalCount *int64
}

// WantedDTO is a wanted-to-buy listing as returned by read queries.
type WantedDTO struct {
	WantedID  string
	Title     string
	Category  string
	BuyerID   string
	MaxPrice  float64
	Notes     string
	CreatedAt time.Time
}
