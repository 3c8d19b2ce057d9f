package search_listings

import (
	"time"

	"github.com/vintaro/marketplace-service/internal/models/m_listing"
)

// passesPostFilters applies the constraints the query engine could not take
// alongside the winning range dimension. Post-filters run against the
// fetched page only; a page may therefore come back short even when more
// matching documents exist.
func (plan *queryPlan) passesPostFilters(rec *m_listing.Record, now time.Time) bool {
	if plan.postMinPrice != nil || plan.postMaxPrice != nil {
		if plan.postMinPrice != nil && rec.Price < *plan.postMinPrice {
			return false
		}
		if plan.postMaxPrice != nil && rec.Price > *plan.postMaxPrice {
			return false
		}
	}

	// An in-query year inequality would skip documents without the field;
	// the demoted filter matches that behavior.
	if plan.postMinYear != nil || plan.postMaxYear != nil {
		if rec.Year == 0 {
			return false
		}
		if plan.postMinYear != nil && rec.Year < *plan.postMinYear {
			return false
		}
		if plan.postMaxYear != nil && rec.Year > *plan.postMaxYear {
			return false
		}
	}

	if plan.gateRelease && rec.ReleaseAt != nil && rec.ReleaseAt.After(now) {
		return false
	}

	return true
}
