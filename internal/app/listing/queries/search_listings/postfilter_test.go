package search_listings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vintaro/marketplace-service/internal/models/m_listing"
)

func TestPassesPostFilters_DemotedPriceRange(t *testing.T) {
	plan := queryPlan{postMinPrice: f64(50), postMaxPrice: f64(200)}
	now := time.Now()

	assert.True(t, plan.passesPostFilters(&m_listing.Record{Price: 50}, now))
	assert.True(t, plan.passesPostFilters(&m_listing.Record{Price: 200}, now))
	assert.False(t, plan.passesPostFilters(&m_listing.Record{Price: 49.99}, now))
	assert.False(t, plan.passesPostFilters(&m_listing.Record{Price: 200.01}, now))
}

func TestPassesPostFilters_DemotedYearRange(t *testing.T) {
	plan := queryPlan{postMinYear: i64(1980), postMaxYear: i64(1989)}
	now := time.Now()

	assert.True(t, plan.passesPostFilters(&m_listing.Record{Year: 1985}, now))
	assert.False(t, plan.passesPostFilters(&m_listing.Record{Year: 1979}, now))
	assert.False(t, plan.passesPostFilters(&m_listing.Record{Year: 1990}, now))
}

// A document without a year would never match an in-query year inequality;
// the demoted filter keeps that behavior.
func TestPassesPostFilters_MissingYearExcluded(t *testing.T) {
	plan := queryPlan{postMinYear: i64(1980)}
	assert.False(t, plan.passesPostFilters(&m_listing.Record{Year: 0}, time.Now()))

	unconstrained := queryPlan{}
	assert.True(t, unconstrained.passesPostFilters(&m_listing.Record{Year: 0}, time.Now()))
}

func TestPassesPostFilters_ReleaseGate(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	gated := queryPlan{gateRelease: true}
	assert.False(t, gated.passesPostFilters(&m_listing.Record{ReleaseAt: &future}, now))
	assert.True(t, gated.passesPostFilters(&m_listing.Record{ReleaseAt: &past}, now))
	assert.True(t, gated.passesPostFilters(&m_listing.Record{ReleaseAt: nil}, now))

	// Business tier and above see scheduled listings.
	open := queryPlan{gateRelease: false}
	assert.True(t, open.passesPostFilters(&m_listing.Record{ReleaseAt: &future}, now))
}

func TestPassesPostFilters_Combined(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)
	plan := queryPlan{
		postMinPrice: f64(10),
		postMinYear:  i64(2000),
		gateRelease:  true,
	}

	ok := &m_listing.Record{Price: 25, Year: 2010}
	assert.True(t, plan.passesPostFilters(ok, now))

	badPrice := &m_listing.Record{Price: 5, Year: 2010}
	assert.False(t, plan.passesPostFilters(badPrice, now))

	scheduled := &m_listing.Record{Price: 25, Year: 2010, ReleaseAt: &future}
	assert.False(t, plan.passesPostFilters(scheduled, now))
}
