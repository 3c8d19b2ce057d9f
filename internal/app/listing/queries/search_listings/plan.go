package search_listings

import (
	"strings"

	domain "github.com/vintaro/marketplace-service/internal/app/listing/domain"
	"github.com/vintaro/marketplace-service/internal/app/listing/dto"
	"github.com/vintaro/marketplace-service/internal/models/m_listing"
)

const (
	// pageSize is the fixed search page size.
	pageSize = 24

	// maxDisjunction is the store's limit on values in a single "in" filter.
	// Longer multi-selects are truncated, not rejected; browse prefers
	// best-effort results over errors.
	maxDisjunction = 10

	// prefixSentinel closes a lexicographic prefix range: every string with
	// prefix p sorts within [p, p+prefixSentinel].
	prefixSentinel = ""
)

// rangeDim identifies which range-style input won the single inequality
// slot of the query.
type rangeDim int

const (
	dimNone rangeDim = iota
	dimTextToken
	dimTextPrefix
	dimPrice
	dimYear
)

// fieldFilter is one Where clause of the planned query.
type fieldFilter struct {
	Path  string
	Op    string
	Value interface{}
}

// orderSpec is one OrderBy clause of the planned query.
type orderSpec struct {
	Path string
	Desc bool
}

// queryPlan is the complete, store-agnostic description of one search:
// the filters and sorts the query engine executes, the constraints demoted
// to in-memory post-filters, and whether a count aggregation runs.
type queryPlan struct {
	dim     rangeDim
	filters []fieldFilter
	orders  []orderSpec

	// countFilters is the equality-only subset used by the count
	// aggregation; range filters and sorts are excluded per the engine's
	// aggregation rules.
	countFilters []fieldFilter
	wantCount    bool

	// Constraints the engine could not take alongside the winning range
	// dimension, applied in memory to the fetched page.
	postMinPrice *float64
	postMaxPrice *float64
	postMinYear  *int64
	postMaxYear  *int64

	// gateRelease excludes listings whose public release time is still in
	// the future. Business-tier and above see scheduled listings.
	gateRelease bool
}

// rangeDimensionTable orders the candidate range dimensions by priority.
// The store permits inequality filters on one field per query, and that
// field must be the primary sort key, so exactly one candidate wins; the
// losers demote to post-filters.
var rangeDimensionTable = []struct {
	dim    rangeDim
	active func(p dto.SearchParams) bool
}{
	{dimTextPrefix, func(p dto.SearchParams) bool { return strings.TrimSpace(p.Query) != "" }},
	{dimPrice, func(p dto.SearchParams) bool { return p.MinPrice != nil || p.MaxPrice != nil }},
	{dimYear, func(p dto.SearchParams) bool { return p.MinYear != nil || p.MaxYear != nil }},
}

func selectRangeDimension(p dto.SearchParams) rangeDim {
	for _, c := range rangeDimensionTable {
		if c.active(p) {
			if c.dim == dimTextPrefix {
				// Single whole words above two characters match the
				// precomputed keyword set instead of a title prefix range;
				// that is an equality-class filter, not an inequality.
				q := strings.ToLower(strings.TrimSpace(p.Query))
				if !strings.ContainsAny(q, " \t") && len(q) > 2 {
					return dimTextToken
				}
			}
			return c.dim
		}
	}
	return dimNone
}

// buildPlan deterministically derives the query plan from the search
// parameters and the caller's role.
func buildPlan(p dto.SearchParams, role domain.Role) queryPlan {
	plan := queryPlan{dim: selectRangeDimension(p)}

	// Visibility gate: only admins choose statuses; everyone else sees
	// available listings only.
	if role.CanFilterStatus() {
		statuses := p.Statuses
		if len(statuses) == 0 {
			for _, s := range domain.NonDraftStatuses {
				statuses = append(statuses, string(s))
			}
		}
		plan.addEquality(fieldFilter{m_listing.FldStatus, "in", capValues(statuses)})
	} else {
		plan.addEquality(fieldFilter{m_listing.FldStatus, "==", string(domain.StatusAvailable)})
	}

	// Combinable equality filters.
	if len(p.Categories) > 0 {
		plan.addEquality(fieldFilter{m_listing.FldCategory, "in", capValues(p.Categories)})
	}
	if p.Subcategory != "" {
		plan.addEquality(fieldFilter{m_listing.FldSubcategory, "==", p.Subcategory})
	}
	if len(p.Conditions) > 0 {
		plan.addEquality(fieldFilter{m_listing.FldCondition, "in", capValues(p.Conditions)})
	}
	if len(p.Sizes) > 0 {
		plan.addEquality(fieldFilter{m_listing.FldSize, "in", capValues(p.Sizes)})
	}
	if len(p.SellerIDs) > 0 {
		plan.addEquality(fieldFilter{m_listing.FldSellerID, "in", capValues(p.SellerIDs)})
	}
	if p.VerifiedOnly {
		plan.addEquality(fieldFilter{m_listing.FldSellerVerified, "==", true})
	}
	if p.Untimed {
		plan.addEquality(fieldFilter{m_listing.FldUntimed, "==", true})
	}
	if p.MultibuyOnly {
		plan.addEquality(fieldFilter{m_listing.FldMultibuy, "==", true})
	}

	sortField, sortDesc := sortSpec(p.Sort)

	switch plan.dim {
	case dimTextToken:
		token := strings.ToLower(strings.TrimSpace(p.Query))
		plan.filters = append(plan.filters, fieldFilter{m_listing.FldKeywords, "array-contains", token})
		plan.orders = append(plan.orders, orderSpec{m_listing.FldTitleLowercase, false})
		plan.demoteRanges(p)

	case dimTextPrefix:
		q := strings.ToLower(strings.TrimSpace(p.Query))
		plan.filters = append(plan.filters,
			fieldFilter{m_listing.FldTitleLowercase, ">=", q},
			fieldFilter{m_listing.FldTitleLowercase, "<=", q + prefixSentinel},
		)
		// The inequality field must lead the sort order.
		plan.orders = append(plan.orders, orderSpec{m_listing.FldTitleLowercase, false})
		plan.demoteRanges(p)

	case dimPrice:
		if p.MinPrice != nil {
			plan.filters = append(plan.filters, fieldFilter{m_listing.FldPrice, ">=", *p.MinPrice})
		}
		if p.MaxPrice != nil {
			plan.filters = append(plan.filters, fieldFilter{m_listing.FldPrice, "<=", *p.MaxPrice})
		}
		priceDesc := p.Sort == dto.SortPriceDesc
		plan.orders = append(plan.orders, orderSpec{m_listing.FldPrice, priceDesc})
		if sortField != m_listing.FldPrice {
			plan.orders = append(plan.orders, orderSpec{sortField, sortDesc})
		}
		plan.postMinYear, plan.postMaxYear = p.MinYear, p.MaxYear

	case dimYear:
		if p.MinYear != nil {
			plan.filters = append(plan.filters, fieldFilter{m_listing.FldYear, ">=", *p.MinYear})
		}
		if p.MaxYear != nil {
			plan.filters = append(plan.filters, fieldFilter{m_listing.FldYear, "<=", *p.MaxYear})
		}
		yearDesc := p.Sort == dto.SortYearDesc
		plan.orders = append(plan.orders, orderSpec{m_listing.FldYear, yearDesc})
		if sortField != m_listing.FldYear {
			plan.orders = append(plan.orders, orderSpec{sortField, sortDesc})
		}

	case dimNone:
		// Featured listings surface first on recency and popularity sorts.
		if sortField == m_listing.FldCreatedAt || sortField == m_listing.FldViews {
			plan.orders = append(plan.orders, orderSpec{m_listing.FldFeatured, true})
		}
		plan.orders = append(plan.orders, orderSpec{sortField, sortDesc})
	}

	plan.gateRelease = !role.SeesScheduledListings()
	plan.wantCount = p.LastID == "" && strings.TrimSpace(p.Query) == ""

	return plan
}

// addEquality records a filter in both the main query and the count query.
func (plan *queryPlan) addEquality(f fieldFilter) {
	plan.filters = append(plan.filters, f)
	plan.countFilters = append(plan.countFilters, f)
}

// demoteRanges moves any price/year range constraints into post-filters;
// the text dimension already holds the inequality slot.
func (plan *queryPlan) demoteRanges(p dto.SearchParams) {
	plan.postMinPrice, plan.postMaxPrice = p.MinPrice, p.MaxPrice
	plan.postMinYear, plan.postMaxYear = p.MinYear, p.MaxYear
}

// sortSpec maps a requested sort key to its field and direction.
// Unknown or empty keys fall back to newest-first.
func sortSpec(key dto.SortKey) (string, bool) {
	switch key {
	case dto.SortPriceAsc:
		return m_listing.FldPrice, false
	case dto.SortPriceDesc:
		return m_listing.FldPrice, true
	case dto.SortYearAsc:
		return m_listing.FldYear, false
	case dto.SortYearDesc:
		return m_listing.FldYear, true
	case dto.SortViews:
		return m_listing.FldViews, true
	case dto.SortTitle:
		return m_listing.FldTitleLowercase, false
	default:
		return m_listing.FldCreatedAt, true
	}
}

func capValues(vals []string) []string {
	if len(vals) > maxDisjunction {
		vals = vals[:maxDisjunction]
	}
	out := make([]string, len(vals))
	copy(out, vals)
	return out
}
