package search_listings

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/vintaro/marketplace-service/internal/app/listing/domain"
	"github.com/vintaro/marketplace-service/internal/app/listing/dto"
	"github.com/vintaro/marketplace-service/internal/models/m_listing"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

func findFilter(t *testing.T, plan queryPlan, path string) fieldFilter {
	t.Helper()
	for _, f := range plan.filters {
		if f.Path == path {
			return f
		}
	}
	t.Fatalf("no filter on %s in %+v", path, plan.filters)
	return fieldFilter{}
}

func hasFilter(plan queryPlan, path string) bool {
	for _, f := range plan.filters {
		if f.Path == path {
			return true
		}
	}
	return false
}

// TestSelectRangeDimension_Priority verifies that text beats price beats year
// for the single inequality slot.
func TestSelectRangeDimension_Priority(t *testing.T) {
	p := dto.SearchParams{
		Query:    "air jordan",
		MinPrice: f64(10),
		MinYear:  i64(1990),
	}
	assert.Equal(t, dimTextPrefix, selectRangeDimension(p))

	p.Query = ""
	assert.Equal(t, dimPrice, selectRangeDimension(p))

	p.MinPrice = nil
	assert.Equal(t, dimYear, selectRangeDimension(p))

	p.MinYear = nil
	assert.Equal(t, dimNone, selectRangeDimension(p))
}

// TestSelectRangeDimension_TokenVsPrefix verifies the single-word cutover to
// the keyword set.
func TestSelectRangeDimension_TokenVsPrefix(t *testing.T) {
	assert.Equal(t, dimTextToken, selectRangeDimension(dto.SearchParams{Query: "jordan"}))
	assert.Equal(t, dimTextPrefix, selectRangeDimension(dto.SearchParams{Query: "air jordan"}))
	// Two characters or fewer stays a prefix range.
	assert.Equal(t, dimTextPrefix, selectRangeDimension(dto.SearchParams{Query: "aj"}))
}

func TestBuildPlan_TokenSearchOrdersByFoldedTitle(t *testing.T) {
	plan := buildPlan(dto.SearchParams{Query: "Jordan"}, domain.RoleBuyer)

	require.Equal(t, dimTextToken, plan.dim)
	f := findFilter(t, plan, m_listing.FldKeywords)
	assert.Equal(t, "array-contains", f.Op)
	assert.Equal(t, "jordan", f.Value)

	require.Len(t, plan.orders, 1)
	assert.Equal(t, m_listing.FldTitleLowercase, plan.orders[0].Path)
	assert.False(t, plan.orders[0].Desc)
}

func TestBuildPlan_PrefixSearchBoundsTheRange(t *testing.T) {
	plan := buildPlan(dto.SearchParams{Query: "air jordan"}, domain.RoleBuyer)

	require.Equal(t, dimTextPrefix, plan.dim)

	var lower, upper *fieldFilter
	for i, f := range plan.filters {
		if f.Path == m_listing.FldTitleLowercase {
			switch f.Op {
			case ">=":
				lower = &plan.filters[i]
			case "<=":
				upper = &plan.filters[i]
			}
		}
	}
	require.NotNil(t, lower)
	require.NotNil(t, upper)
	assert.Equal(t, "air jordan", lower.Value)
	assert.Equal(t, "air jordan"+prefixSentinel, upper.Value)

	require.Len(t, plan.orders, 1)
	assert.Equal(t, m_listing.FldTitleLowercase, plan.orders[0].Path)
}

// TestBuildPlan_TextDemotesRanges verifies that price and year constraints
// supplied alongside a text query become post-filters, not query filters.
func TestBuildPlan_TextDemotesRanges(t *testing.T) {
	plan := buildPlan(dto.SearchParams{
		Query:    "jordan",
		MinPrice: f64(50),
		MaxPrice: f64(500),
		MinYear:  i64(1985),
	}, domain.RoleBuyer)

	assert.False(t, hasFilter(plan, m_listing.FldPrice))
	assert.False(t, hasFilter(plan, m_listing.FldYear))

	require.NotNil(t, plan.postMinPrice)
	require.NotNil(t, plan.postMaxPrice)
	require.NotNil(t, plan.postMinYear)
	assert.Equal(t, 50.0, *plan.postMinPrice)
	assert.Equal(t, 500.0, *plan.postMaxPrice)
	assert.EqualValues(t, 1985, *plan.postMinYear)
	assert.Nil(t, plan.postMaxYear)
}

// TestBuildPlan_PriceRangeLeadsSort verifies the inequality field is always
// the primary sort key and couples to the requested price direction.
func TestBuildPlan_PriceRangeLeadsSort(t *testing.T) {
	plan := buildPlan(dto.SearchParams{
		MinPrice: f64(10),
		Sort:     dto.SortPriceDesc,
	}, domain.RoleBuyer)

	require.Equal(t, dimPrice, plan.dim)
	require.NotEmpty(t, plan.orders)
	assert.Equal(t, m_listing.FldPrice, plan.orders[0].Path)
	assert.True(t, plan.orders[0].Desc)
	// Price is already the requested sort; no secondary order repeats it.
	require.Len(t, plan.orders, 1)
}

func TestBuildPlan_PriceRangeWithNewestSort(t *testing.T) {
	plan := buildPlan(dto.SearchParams{
		MaxPrice: f64(100),
		MinYear:  i64(2000),
		Sort:     dto.SortNewest,
	}, domain.RoleBuyer)

	require.Equal(t, dimPrice, plan.dim)
	require.Len(t, plan.orders, 2)
	assert.Equal(t, m_listing.FldPrice, plan.orders[0].Path)
	assert.False(t, plan.orders[0].Desc)
	assert.Equal(t, m_listing.FldCreatedAt, plan.orders[1].Path)
	assert.True(t, plan.orders[1].Desc)

	// Year lost the slot and runs in memory.
	assert.False(t, hasFilter(plan, m_listing.FldYear))
	require.NotNil(t, plan.postMinYear)
	assert.EqualValues(t, 2000, *plan.postMinYear)
}

func TestBuildPlan_YearRangeLeadsSort(t *testing.T) {
	plan := buildPlan(dto.SearchParams{
		MinYear: i64(1980),
		MaxYear: i64(1989),
		Sort:    dto.SortYearDesc,
	}, domain.RoleBuyer)

	require.Equal(t, dimYear, plan.dim)
	assert.Equal(t, ">=", findFilter(t, plan, m_listing.FldYear).Op)
	require.NotEmpty(t, plan.orders)
	assert.Equal(t, m_listing.FldYear, plan.orders[0].Path)
	assert.True(t, plan.orders[0].Desc)
	assert.Nil(t, plan.postMinYear)
	assert.Nil(t, plan.postMaxYear)
}

// TestBuildPlan_FeaturedFirstOnBrowse verifies featured listings lead the
// recency and popularity sorts when no range dimension is active.
func TestBuildPlan_FeaturedFirstOnBrowse(t *testing.T) {
	plan := buildPlan(dto.SearchParams{}, domain.RoleBuyer)

	require.Equal(t, dimNone, plan.dim)
	require.Len(t, plan.orders, 2)
	assert.Equal(t, m_listing.FldFeatured, plan.orders[0].Path)
	assert.True(t, plan.orders[0].Desc)
	assert.Equal(t, m_listing.FldCreatedAt, plan.orders[1].Path)
	assert.True(t, plan.orders[1].Desc)

	// Title sort browses alphabetically with no featured boost.
	plan = buildPlan(dto.SearchParams{Sort: dto.SortTitle}, domain.RoleBuyer)
	require.Len(t, plan.orders, 1)
	assert.Equal(t, m_listing.FldTitleLowercase, plan.orders[0].Path)
}

// TestBuildPlan_StatusGateByRole verifies ordinary callers are pinned to
// available listings while admins choose their statuses.
func TestBuildPlan_StatusGateByRole(t *testing.T) {
	plan := buildPlan(dto.SearchParams{Statuses: []string{"sold"}}, domain.RoleBuyer)
	f := findFilter(t, plan, m_listing.FldStatus)
	assert.Equal(t, "==", f.Op)
	assert.Equal(t, "available", f.Value)

	plan = buildPlan(dto.SearchParams{Statuses: []string{"sold"}}, domain.RoleAdmin)
	f = findFilter(t, plan, m_listing.FldStatus)
	assert.Equal(t, "in", f.Op)
	assert.Equal(t, []string{"sold"}, f.Value)
}

func TestBuildPlan_AdminDefaultStatuses(t *testing.T) {
	plan := buildPlan(dto.SearchParams{}, domain.RoleAdmin)

	f := findFilter(t, plan, m_listing.FldStatus)
	require.Equal(t, "in", f.Op)
	vals, ok := f.Value.([]string)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"available", "sold", "pending_approval", "on_hold"}, vals)
}

// TestBuildPlan_DisjunctionCap verifies multi-selects beyond the store limit
// are silently truncated to the first ten values.
func TestBuildPlan_DisjunctionCap(t *testing.T) {
	var cats []string
	for i := 0; i < 15; i++ {
		cats = append(cats, fmt.Sprintf("cat-%02d", i))
	}

	plan := buildPlan(dto.SearchParams{Categories: cats}, domain.RoleBuyer)

	f := findFilter(t, plan, m_listing.FldCategory)
	require.Equal(t, "in", f.Op)
	vals, ok := f.Value.([]string)
	require.True(t, ok)
	require.Len(t, vals, maxDisjunction)
	assert.Equal(t, cats[:maxDisjunction], vals)
}

// TestBuildPlan_CountOnlyOnUncursoredBrowse verifies the total count runs on
// the first page of non-text searches only.
func TestBuildPlan_CountOnlyOnUncursoredBrowse(t *testing.T) {
	assert.True(t, buildPlan(dto.SearchParams{}, domain.RoleBuyer).wantCount)
	assert.True(t, buildPlan(dto.SearchParams{MinPrice: f64(5)}, domain.RoleBuyer).wantCount)
	assert.False(t, buildPlan(dto.SearchParams{LastID: "abc"}, domain.RoleBuyer).wantCount)
	assert.False(t, buildPlan(dto.SearchParams{Query: "jordan"}, domain.RoleBuyer).wantCount)
}

// TestBuildPlan_CountFiltersAreEqualityOnly verifies range filters never
// reach the aggregation query.
func TestBuildPlan_CountFiltersAreEqualityOnly(t *testing.T) {
	plan := buildPlan(dto.SearchParams{
		Categories: []string{"sneakers"},
		MinPrice:   f64(10),
	}, domain.RoleBuyer)

	for _, f := range plan.countFilters {
		assert.NotEqual(t, m_listing.FldPrice, f.Path)
	}
	// Equality filters appear in both the main and the count query.
	assert.Len(t, plan.countFilters, 2) // status + category
}

func TestBuildPlan_ReleaseGateByRole(t *testing.T) {
	assert.True(t, buildPlan(dto.SearchParams{}, domain.RoleAnonymous).gateRelease)
	assert.True(t, buildPlan(dto.SearchParams{}, domain.RoleBuyer).gateRelease)
	assert.True(t, buildPlan(dto.SearchParams{}, domain.RoleSeller).gateRelease)
	assert.False(t, buildPlan(dto.SearchParams{}, domain.RoleBusiness).gateRelease)
	assert.False(t, buildPlan(dto.SearchParams{}, domain.RoleAdmin).gateRelease)
}

func TestBuildPlan_EqualityFilters(t *testing.T) {
	plan := buildPlan(dto.SearchParams{
		Categories:   []string{"sneakers"},
		Subcategory:  "basketball",
		Conditions:   []string{"new", "like-new"},
		Sizes:        []string{"42"},
		SellerIDs:    []string{"seller-1"},
		VerifiedOnly: true,
		Untimed:      true,
		MultibuyOnly: true,
	}, domain.RoleBuyer)

	assert.Equal(t, "in", findFilter(t, plan, m_listing.FldCategory).Op)
	assert.Equal(t, "==", findFilter(t, plan, m_listing.FldSubcategory).Op)
	assert.Equal(t, "in", findFilter(t, plan, m_listing.FldCondition).Op)
	assert.Equal(t, "in", findFilter(t, plan, m_listing.FldSize).Op)
	assert.Equal(t, "in", findFilter(t, plan, m_listing.FldSellerID).Op)
	assert.Equal(t, true, findFilter(t, plan, m_listing.FldSellerVerified).Value)
	assert.Equal(t, true, findFilter(t, plan, m_listing.FldUntimed).Value)
	assert.Equal(t, true, findFilter(t, plan, m_listing.FldMultibuy).Value)
}
